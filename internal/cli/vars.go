package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskdocs/internal/core"
	"github.com/valter-silva-au/taskdocs/internal/observability"
	"github.com/valter-silva-au/taskdocs/internal/storage"
	"github.com/valter-silva-au/taskdocs/pkg/models"
)

// Services are the wired components a command runs against.
type Services struct {
	Config    *models.GeneratorConfig
	Tables    storage.TaskTableSource
	Renderer  core.Renderer
	Generator core.DocGenerator
	// EventLog is nil when event logging is disabled.
	EventLog observability.EventLog
	Close    func() error
}

// Wiring hooks, set during app initialization in app.go.
var (
	// ConfigLoader loads configuration from a file, or by searching for
	// .taskdocs.yaml when the path is empty.
	ConfigLoader func(configFile string) (*models.GeneratorConfig, error)
	// ServicesFactory builds Services for the effective configuration.
	ServicesFactory func(cfg *models.GeneratorConfig, out io.Writer) (*Services, error)
)

// Persistent flag values shared by every command.
var (
	configFlag   string
	baseDirFlag  string
	tasksFlag    string
	templateFlag string
	eventLogFlag string
)

// effectiveConfig loads the configuration and applies any flags the user
// set explicitly.
func effectiveConfig(cmd *cobra.Command) (*models.GeneratorConfig, error) {
	if ConfigLoader == nil {
		return nil, fmt.Errorf("configuration loader not initialized")
	}
	cfg, err := ConfigLoader(configFlag)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-dir") {
		cfg.BaseDir = baseDirFlag
	}
	if flags.Changed("tasks") {
		cfg.TasksFile = tasksFlag
	}
	if flags.Changed("template") {
		cfg.TemplateFile = templateFlag
	}
	if flags.Changed("event-log") {
		cfg.EventLog = eventLogFlag
	}
	return cfg, nil
}

// setupServices resolves configuration and wires Services. Callers must
// invoke the returned Services' Close.
func setupServices(cmd *cobra.Command) (*Services, error) {
	if ServicesFactory == nil {
		return nil, fmt.Errorf("services not initialized")
	}
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return nil, err
	}
	svc, err := ServicesFactory(cfg, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	if svc.Close == nil {
		svc.Close = func() error { return nil }
	}
	return svc, nil
}
