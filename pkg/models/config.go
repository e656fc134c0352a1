package models

// GeneratorConfig holds the settings read from .taskdocs.yaml via Viper,
// environment variables and CLI flags.
type GeneratorConfig struct {
	// BaseDir is the root under which folder/filename are resolved.
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
	// TasksFile is a YAML task table. Empty selects the embedded default table.
	TasksFile string `yaml:"tasks,omitempty" mapstructure:"tasks"`
	// TemplateFile overrides the embedded task template.
	TemplateFile string `yaml:"template,omitempty" mapstructure:"template"`
	// EventLog is the JSONL event log path. Empty disables event logging.
	EventLog string `yaml:"event_log,omitempty" mapstructure:"event_log"`
}
