package storage

import (
	"embed"
	"fmt"
	"os"

	"github.com/valter-silva-au/taskdocs/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/tasks.yaml
var defaultsFS embed.FS

// TaskTableFile represents the top-level structure of a tasks.yaml file.
type TaskTableFile struct {
	Version string                    `yaml:"version"`
	Tasks   map[int]models.TaskRecord `yaml:"tasks"`
}

// TaskTableSource defines where a run's task table comes from.
type TaskTableSource interface {
	Load() (models.TaskTable, error)
	// Name identifies the source in diagnostics.
	Name() string
}

type fileTaskTableSource struct {
	path string
}

// NewFileTaskTableSource creates a TaskTableSource that reads a YAML task
// table from path.
func NewFileTaskTableSource(path string) TaskTableSource {
	return &fileTaskTableSource{path: path}
}

func (s *fileTaskTableSource) Name() string { return s.path }

// Load reads and parses the task table file.
func (s *fileTaskTableSource) Load() (models.TaskTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading task table %s: %w", s.path, err)
	}
	table, err := ParseTaskTable(data)
	if err != nil {
		return nil, fmt.Errorf("loading task table %s: %w", s.path, err)
	}
	return table, nil
}

type embeddedTaskTableSource struct{}

// NewDefaultTaskTableSource returns the task table compiled into the binary.
func NewDefaultTaskTableSource() TaskTableSource {
	return embeddedTaskTableSource{}
}

func (embeddedTaskTableSource) Name() string { return "built-in task table" }

func (embeddedTaskTableSource) Load() (models.TaskTable, error) {
	data, err := defaultsFS.ReadFile("defaults/tasks.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading built-in task table: %w", err)
	}
	return ParseTaskTable(data)
}

// ParseTaskTable decodes a tasks.yaml document. A document without a tasks
// section yields an empty table.
func ParseTaskTable(data []byte) (models.TaskTable, error) {
	var f TaskTableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing task table: %w", err)
	}

	table := make(models.TaskTable, len(f.Tasks))
	for id, rec := range f.Tasks {
		if rec == nil {
			rec = models.TaskRecord{}
		}
		table[id] = rec
	}
	return table, nil
}

// SaveTaskTable writes table to path as a tasks.yaml document.
func SaveTaskTable(path string, table models.TaskTable) error {
	f := TaskTableFile{Version: "1.0", Tasks: map[int]models.TaskRecord(table)}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshalling task table: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing task table %s: %w", path, err)
	}
	return nil
}
