package core

import (
	"fmt"
	"io"

	"github.com/valter-silva-au/taskdocs/internal/storage"
	"github.com/valter-silva-au/taskdocs/pkg/models"
)

// EventLogger is the subset of the observability event log the generator
// needs. Defining it here avoids importing the observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// Event types passed to the EventLogger. They match the constants of the
// observability package.
const (
	EventRunStarted   = "run.started"
	EventDocCreated   = "doc.created"
	EventRunFailed    = "run.failed"
	EventRunCompleted = "run.completed"
)

// pathFields must be present in every record whatever the template
// references, since they decide where the document is written.
var pathFields = []string{models.FieldFolder, models.FieldFilename}

// GenerateOptions narrows or alters a generation run.
type GenerateOptions struct {
	// Only restricts the run to these task ids. Empty means every task.
	Only []int
	// DryRun renders every document but writes nothing.
	DryRun bool
}

// GeneratedDoc describes one document produced by a run.
type GeneratedDoc struct {
	TaskID   int
	Filename string
	Path     string
}

// GenerateResult holds the outputs of a successful run.
type GenerateResult struct {
	Docs   []GeneratedDoc
	DryRun bool
}

// Count returns the number of documents produced.
func (r *GenerateResult) Count() int { return len(r.Docs) }

// DocGenerator renders and writes one document per task.
type DocGenerator interface {
	Generate(table models.TaskTable, opts GenerateOptions) (*GenerateResult, error)
}

// docGenerator coordinates the Renderer and the storage DocWriter. Output is
// human-readable progress; events go to the optional EventLogger.
type docGenerator struct {
	renderer Renderer
	writer   storage.DocWriter
	out      io.Writer
	events   EventLogger
}

// NewDocGenerator creates a DocGenerator. out receives the per-file progress
// lines and may be io.Discard. events may be nil.
func NewDocGenerator(renderer Renderer, writer storage.DocWriter, out io.Writer, events EventLogger) DocGenerator {
	if out == nil {
		out = io.Discard
	}
	return &docGenerator{
		renderer: renderer,
		writer:   writer,
		out:      out,
		events:   events,
	}
}

// Generate processes the table once in ascending id order and stops at the
// first error. Documents written before the failure stay on disk.
func (g *docGenerator) Generate(table models.TaskTable, opts GenerateOptions) (*GenerateResult, error) {
	ids, err := selectTasks(table, opts.Only)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(g.out, "Criando arquivos de documentação de tarefas...")
	g.logEvent(EventRunStarted, map[string]any{"tasks": len(ids), "dry_run": opts.DryRun})

	result := &GenerateResult{DryRun: opts.DryRun}
	for _, id := range ids {
		doc, err := g.generateOne(id, table[id], opts.DryRun)
		if err != nil {
			g.logEvent(EventRunFailed, map[string]any{"task_id": id, "error": err.Error()})
			return nil, err
		}
		result.Docs = append(result.Docs, doc)
	}

	if opts.DryRun {
		fmt.Fprintf(g.out, "Total de %d arquivos seriam criados!\n", result.Count())
	} else {
		fmt.Fprintf(g.out, "Total de %d arquivos criados!\n", result.Count())
	}
	g.logEvent(EventRunCompleted, map[string]any{"count": result.Count(), "dry_run": opts.DryRun})
	return result, nil
}

func (g *docGenerator) generateOne(id int, record models.TaskRecord, dryRun bool) (GeneratedDoc, error) {
	for _, f := range pathFields {
		if _, ok := record[f]; !ok {
			return GeneratedDoc{}, fmt.Errorf("resolving path for task %d: %w", id, &models.MissingFieldError{TaskID: id, Field: f})
		}
	}

	content, err := g.renderer.Render(id, record)
	if err != nil {
		return GeneratedDoc{}, fmt.Errorf("rendering task %d: %w", id, err)
	}

	doc := GeneratedDoc{TaskID: id, Filename: record.Filename()}
	if dryRun {
		doc.Path = g.writer.Path(record.Folder(), record.Filename())
		fmt.Fprintf(g.out, "Seria criado: %s\n", doc.Filename)
		return doc, nil
	}

	doc.Path, err = g.writer.Write(record.Folder(), record.Filename(), content)
	if err != nil {
		return GeneratedDoc{}, fmt.Errorf("writing task %d: %w", id, err)
	}
	fmt.Fprintf(g.out, "Criado: %s\n", doc.Filename)
	g.logEvent(EventDocCreated, map[string]any{"task_id": id, "path": doc.Path})
	return doc, nil
}

// selectTasks returns the ids to process in ascending order. Every id in only
// must exist in the table.
func selectTasks(table models.TaskTable, only []int) ([]int, error) {
	if len(only) == 0 {
		return table.IDs(), nil
	}

	wanted := make(map[int]bool, len(only))
	for _, id := range only {
		if _, ok := table[id]; !ok {
			return nil, fmt.Errorf("task %d: %w", id, models.ErrUnknownTask)
		}
		wanted[id] = true
	}

	var ids []int
	for _, id := range table.IDs() {
		if wanted[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// logEvent writes to the event log when one is configured. Failures to log
// never fail a run.
func (g *docGenerator) logEvent(eventType string, data map[string]any) {
	if g.events == nil {
		return
	}
	_ = g.events.LogEvent(eventType, data)
}
