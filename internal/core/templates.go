package core

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"sort"
	"text/template"
	"text/template/parse"

	"github.com/valter-silva-au/taskdocs/pkg/models"
)

//go:embed templates/task.md
var templateFS embed.FS

// Renderer turns a TaskRecord into the document text.
type Renderer interface {
	Render(taskID int, record models.TaskRecord) (string, error)
	// Fields returns the placeholders the template references, sorted.
	Fields() []string
}

// templateRenderer implements Renderer with text/template. Placeholders are
// written {{.field_name}} and are looked up in the record.
type templateRenderer struct {
	tmpl   *template.Template
	fields []string
}

// NewRenderer parses text as a task template.
func NewRenderer(name, text string) (Renderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &templateRenderer{tmpl: tmpl, fields: templateFields(tmpl)}, nil
}

// NewDefaultRenderer returns a Renderer for the built-in task template.
func NewDefaultRenderer() (Renderer, error) {
	text, err := DefaultTemplate()
	if err != nil {
		return nil, err
	}
	return NewRenderer("task.md", text)
}

// LoadRenderer reads a custom template file and parses it.
func LoadRenderer(path string) (Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return NewRenderer(path, string(data))
}

// DefaultTemplate returns the raw built-in task template.
func DefaultTemplate() (string, error) {
	data, err := templateFS.ReadFile("templates/task.md")
	if err != nil {
		return "", fmt.Errorf("reading built-in task template: %w", err)
	}
	return string(data), nil
}

func (r *templateRenderer) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Render substitutes the record's values into the template. Values are
// inserted verbatim; nothing is escaped or re-parsed.
func (r *templateRenderer) Render(taskID int, record models.TaskRecord) (string, error) {
	for _, field := range r.fields {
		if _, ok := record[field]; !ok {
			return "", &models.MissingFieldError{TaskID: taskID, Field: field}
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, map[string]string(record)); err != nil {
		return "", fmt.Errorf("executing template for task %d: %w", taskID, err)
	}
	return buf.String(), nil
}

// templateFields collects the first identifier of every field reference
// ({{.name}} or {{.name.more}}) in tmpl and its associated templates.
func templateFields(tmpl *template.Template) []string {
	seen := make(map[string]bool)
	for _, t := range tmpl.Templates() {
		if t.Tree != nil {
			collectFields(t.Tree.Root, seen)
		}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func collectFields(node parse.Node, seen map[string]bool) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, child := range n.Nodes {
			collectFields(child, seen)
		}
	case *parse.ActionNode:
		collectFields(n.Pipe, seen)
	case *parse.PipeNode:
		if n == nil {
			return
		}
		for _, cmd := range n.Cmds {
			collectFields(cmd, seen)
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			collectFields(arg, seen)
		}
	case *parse.FieldNode:
		if len(n.Ident) > 0 {
			seen[n.Ident[0]] = true
		}
	case *parse.ChainNode:
		collectFields(n.Node, seen)
	case *parse.IfNode:
		collectBranch(&n.BranchNode, seen)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, seen)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, seen)
	case *parse.TemplateNode:
		collectFields(n.Pipe, seen)
	}
}

func collectBranch(b *parse.BranchNode, seen map[string]bool) {
	collectFields(b.Pipe, seen)
	collectFields(b.List, seen)
	collectFields(b.ElseList, seen)
}
