// Package internal provides the App struct that wires all components of
// taskdocs together and initializes the CLI layer.
package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/taskdocs/internal/cli"
	"github.com/valter-silva-au/taskdocs/internal/core"
	"github.com/valter-silva-au/taskdocs/internal/observability"
	"github.com/valter-silva-au/taskdocs/internal/storage"
	"github.com/valter-silva-au/taskdocs/pkg/models"
)

// App holds all service dependencies for one taskdocs run.
type App struct {
	Config *models.GeneratorConfig

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Storage layer
	Tables storage.TaskTableSource
	Writer storage.DocWriter

	// Core services
	Renderer  core.Renderer
	Generator core.DocGenerator

	// Observability
	EventLog observability.EventLog
}

// NewApp validates cfg and wires the generator against it. out receives the
// generator's progress output.
func NewApp(cfg *models.GeneratorConfig, out io.Writer) (*App, error) {
	app := &App{Config: cfg}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(".")
	if err := app.ConfigMgr.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	// --- Storage layer ---
	if cfg.TasksFile != "" {
		app.Tables = storage.NewFileTaskTableSource(cfg.TasksFile)
	} else {
		app.Tables = storage.NewDefaultTaskTableSource()
	}
	app.Writer = storage.NewDocWriter(cfg.BaseDir)

	// --- Core services ---
	var err error
	if cfg.TemplateFile != "" {
		app.Renderer, err = core.LoadRenderer(cfg.TemplateFile)
	} else {
		app.Renderer, err = core.NewDefaultRenderer()
	}
	if err != nil {
		return nil, err
	}

	// --- Observability ---
	var evtAdapter core.EventLogger
	if cfg.EventLog != "" {
		app.EventLog, err = observability.NewJSONLEventLog(cfg.EventLog)
		if err != nil {
			return nil, err
		}
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}

	app.Generator = core.NewDocGenerator(app.Renderer, app.Writer, out, evtAdapter)
	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// Services returns the CLI view of the wired components.
func (a *App) Services() *cli.Services {
	return &cli.Services{
		Config:    a.Config,
		Tables:    a.Tables,
		Renderer:  a.Renderer,
		Generator: a.Generator,
		EventLog:  a.EventLog,
		Close:     a.Close,
	}
}

// LoadConfig reads configuration from configFile, or from .taskdocs.yaml in
// the directory ResolveConfigDir picks when configFile is empty.
func LoadConfig(configFile string) (*models.GeneratorConfig, error) {
	var cm core.ConfigurationManager
	if configFile != "" {
		cm = core.NewFileConfigurationManager(configFile)
	} else {
		cm = core.NewConfigurationManager(ResolveConfigDir())
	}
	cfg, err := cm.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// Wire connects the CLI package to the App constructors.
func Wire() {
	cli.ConfigLoader = LoadConfig
	cli.ServicesFactory = func(cfg *models.GeneratorConfig, out io.Writer) (*cli.Services, error) {
		app, err := NewApp(cfg, out)
		if err != nil {
			return nil, err
		}
		return app.Services(), nil
	}
}

// ResolveConfigDir determines the directory searched for .taskdocs.yaml.
// TASKDOCS_HOME wins; otherwise the nearest ancestor of the working
// directory holding .taskdocs.yaml; otherwise the working directory.
func ResolveConfigDir() string {
	if home := os.Getenv("TASKDOCS_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, core.ConfigFileName+".yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   observability.LevelFor(eventType),
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
