package models

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestMissingFieldError_Is(t *testing.T) {
	err := fmt.Errorf("rendering: %w", &MissingFieldError{TaskID: 10, Field: "objective"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatal("expected wrapped MissingFieldError to match ErrMissingField")
	}
	if errors.Is(err, ErrIO) {
		t.Error("MissingFieldError should not match ErrIO")
	}

	var mf *MissingFieldError
	if !errors.As(err, &mf) {
		t.Fatal("expected errors.As to find *MissingFieldError")
	}
	if mf.Field != "objective" || mf.TaskID != 10 {
		t.Errorf("unexpected fields: %+v", mf)
	}
	if got, want := mf.Error(), `task 10: missing field "objective"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestIOError_IsAndUnwrap(t *testing.T) {
	err := &IOError{Op: "write", Path: "/x/y.md", Err: fs.ErrPermission}
	if !errors.Is(err, ErrIO) {
		t.Error("expected IOError to match ErrIO")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("expected IOError to unwrap to fs.ErrPermission")
	}
	if errors.Is(err, ErrMissingField) {
		t.Error("IOError should not match ErrMissingField")
	}
}

func TestTaskTable_IDsAscending(t *testing.T) {
	table := TaskTable{30: {}, 10: {}, 20: {}}
	ids := table.IDs()
	want := []int{10, 20, 30}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestTaskTable_IDsEmpty(t *testing.T) {
	if ids := (TaskTable{}).IDs(); len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}
}

func TestTaskRecord_Accessors(t *testing.T) {
	r := TaskRecord{FieldFolder: "F", FieldFilename: "N.md"}
	if r.Folder() != "F" {
		t.Errorf("Folder() = %q", r.Folder())
	}
	if r.Filename() != "N.md" {
		t.Errorf("Filename() = %q", r.Filename())
	}
}
