package cli

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/valter-silva-au/taskdocs/internal/core"
	"github.com/valter-silva-au/taskdocs/internal/observability"
	"github.com/valter-silva-au/taskdocs/internal/storage"
	"github.com/valter-silva-au/taskdocs/pkg/models"
)

// useTestWiring points the CLI at services built directly from core and
// storage, with base_dir defaulting to baseDir.
func useTestWiring(t *testing.T, baseDir string) {
	t.Helper()
	origLoader, origFactory := ConfigLoader, ServicesFactory
	t.Cleanup(func() {
		ConfigLoader = origLoader
		ServicesFactory = origFactory
	})

	ConfigLoader = func(string) (*models.GeneratorConfig, error) {
		return &models.GeneratorConfig{BaseDir: baseDir}, nil
	}
	ServicesFactory = testServices
}

func testServices(cfg *models.GeneratorConfig, out io.Writer) (*Services, error) {
	svc := &Services{Config: cfg}

	if cfg.TasksFile != "" {
		svc.Tables = storage.NewFileTaskTableSource(cfg.TasksFile)
	} else {
		svc.Tables = storage.NewDefaultTaskTableSource()
	}

	var err error
	if cfg.TemplateFile != "" {
		svc.Renderer, err = core.LoadRenderer(cfg.TemplateFile)
	} else {
		svc.Renderer, err = core.NewDefaultRenderer()
	}
	if err != nil {
		return nil, err
	}

	var events core.EventLogger
	if cfg.EventLog != "" {
		svc.EventLog, err = observability.NewJSONLEventLog(cfg.EventLog)
		if err != nil {
			return nil, err
		}
		events = testEventLogger{log: svc.EventLog}
		svc.Close = svc.EventLog.Close
	}

	svc.Generator = core.NewDocGenerator(svc.Renderer, storage.NewDocWriter(cfg.BaseDir), out, events)
	return svc, nil
}

type testEventLogger struct {
	log observability.EventLog
}

func (l testEventLogger) LogEvent(eventType string, data map[string]any) error {
	return l.log.Write(observability.Event{
		Level: observability.LevelFor(eventType),
		Type:  eventType,
		Data:  data,
	})
}

// runCLI executes the root command with args and returns everything it
// printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
// so state does not leak between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(interface{ Replace([]string) error }); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
