package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskdocs/internal/core"
	"github.com/valter-silva-au/taskdocs/internal/storage"
	"github.com/valter-silva-au/taskdocs/pkg/models"
	"gopkg.in/yaml.v3"
)

var initBaseDirFlag string

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter .taskdocs.yaml and tasks.yaml",
	Long: `Initialize a directory with a .taskdocs.yaml configuration and a
tasks.yaml holding a copy of the built-in task table, ready to edit.

Safe to run on existing directories -- files that already exist are
skipped and not overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}
		if err := os.MkdirAll(absDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", absDir, err)
		}

		out := cmd.OutOrStdout()

		configPath := filepath.Join(absDir, core.ConfigFileName+".yaml")
		created, err := writeIfMissing(configPath, func() error {
			data, err := yaml.Marshal(&models.GeneratorConfig{BaseDir: initBaseDirFlag, TasksFile: "tasks.yaml"})
			if err != nil {
				return fmt.Errorf("marshalling config: %w", err)
			}
			return os.WriteFile(configPath, data, 0o644)
		})
		if err != nil {
			return err
		}
		reportInit(out, absDir, configPath, created)

		tasksPath := filepath.Join(absDir, "tasks.yaml")
		created, err = writeIfMissing(tasksPath, func() error {
			table, err := storage.NewDefaultTaskTableSource().Load()
			if err != nil {
				return err
			}
			return storage.SaveTaskTable(tasksPath, table)
		})
		if err != nil {
			return err
		}
		reportInit(out, absDir, tasksPath, created)
		return nil
	},
}

// writeIfMissing calls write unless path already exists.
func writeIfMissing(path string, write func() error) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := write(); err != nil {
		return false, err
	}
	return true, nil
}

func reportInit(out io.Writer, base, path string, created bool) {
	rel, _ := filepath.Rel(base, path)
	if created {
		fmt.Fprintf(out, "Created: %s\n", rel)
	} else {
		fmt.Fprintf(out, "Skipped (already exists): %s\n", rel)
	}
}

func init() {
	initCmd.Flags().StringVar(&initBaseDirFlag, "docs-dir", "tasks", "base_dir written to the new config")
	rootCmd.AddCommand(initCmd)
}
