// Package core contains the business logic of taskdocs: configuration,
// template rendering and the document generator.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/taskdocs/pkg/models"
)

const (
	// ConfigFileName is the configuration file name without extension.
	ConfigFileName = ".taskdocs"
	// EnvPrefix prefixes environment overrides, e.g. TASKDOCS_BASE_DIR.
	EnvPrefix = "TASKDOCS"
)

// configPathKeys are the keys holding filesystem paths. Relative values read
// from a config file are resolved against that file's directory.
var configPathKeys = []string{"base_dir", "tasks", "template", "event_log"}

// ConfigurationManager defines the interface for loading and validating the
// generator configuration.
type ConfigurationManager interface {
	LoadConfig() (*models.GeneratorConfig, error)
	ValidateConfig(cfg *models.GeneratorConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading .taskdocs.yaml and TASKDOCS_* environment variables.
type viperConfigManager struct {
	// configDir is searched for .taskdocs.yaml when configFile is empty.
	configDir  string
	configFile string
}

// NewConfigurationManager creates a ConfigurationManager that looks for
// .taskdocs.yaml in configDir.
func NewConfigurationManager(configDir string) ConfigurationManager {
	return &viperConfigManager{configDir: configDir}
}

// NewFileConfigurationManager creates a ConfigurationManager that reads the
// given file. Unlike the directory search, a missing file is an error.
func NewFileConfigurationManager(configFile string) ConfigurationManager {
	return &viperConfigManager{configFile: configFile}
}

// defaultConfig returns a GeneratorConfig populated with defaults.
func defaultConfig() *models.GeneratorConfig {
	return &models.GeneratorConfig{
		BaseDir: ".",
	}
}

// LoadConfig reads the configuration file and environment. If no file is
// found in the search directory, defaults plus environment are returned.
func (cm *viperConfigManager) LoadConfig() (*models.GeneratorConfig, error) {
	def := defaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if cm.configFile != "" {
		if _, err := os.Stat(cm.configFile); err != nil {
			return nil, fmt.Errorf("reading %s: %w", cm.configFile, err)
		}
		v.SetConfigFile(cm.configFile)
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(cm.configDir)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("base_dir", def.BaseDir)
	v.SetDefault("tasks", def.TasksFile)
	v.SetDefault("template", def.TemplateFile)
	v.SetDefault("event_log", def.EventLog)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading %s: %w", configLabel(cm), err)
		}
	}

	paths := make(map[string]string, len(configPathKeys))
	for _, key := range configPathKeys {
		val := v.GetString(key)
		if used := v.ConfigFileUsed(); used != "" && val != "" && v.InConfig(key) && !envSet(key) {
			val = resolveAgainst(filepath.Dir(used), val)
		}
		paths[key] = val
	}

	return &models.GeneratorConfig{
		BaseDir:      paths["base_dir"],
		TasksFile:    paths["tasks"],
		TemplateFile: paths["template"],
		EventLog:     paths["event_log"],
	}, nil
}

// ValidateConfig checks cfg for invalid values and returns a message listing
// every problem found.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GeneratorConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if strings.TrimSpace(cfg.BaseDir) == "" {
		errs = append(errs, "base_dir must not be empty")
	}
	if cfg.EventLog != "" && cfg.EventLog == cfg.TasksFile {
		errs = append(errs, "event_log must not point at the tasks file")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func configLabel(cm *viperConfigManager) string {
	if cm.configFile != "" {
		return cm.configFile
	}
	return ConfigFileName + ".yaml"
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + strings.ToUpper(key))
	return ok
}

func resolveAgainst(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
