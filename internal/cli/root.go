package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskdocs/internal/core"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	onlyFlag   []int
	dryRunFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "taskdocs",
	Short: "Generate Markdown task documentation from a task table",
	Long: `taskdocs renders one Markdown document per task of a task table using a
fixed template and writes it to <base_dir>/<folder>/<filename>, creating
folders as needed and replacing existing files.

Run without arguments to generate every task. The run stops at the first
error; documents already written stay on disk.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := setupServices(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()

		table, err := svc.Tables.Load()
		if err != nil {
			return err
		}

		_, err = svc.Generator.Generate(table, core.GenerateOptions{
			Only:   onlyFlag,
			DryRun: dryRunFlag,
		})
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskdocs %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFlag, "config", "", "Config file (default: .taskdocs.yaml in the nearest directory)")
	pf.StringVar(&baseDirFlag, "base-dir", "", "Root under which folder/filename are resolved")
	pf.StringVar(&tasksFlag, "tasks", "", "Task table YAML file (default: built-in table)")
	pf.StringVar(&templateFlag, "template", "", "Task template file (default: built-in template)")
	pf.StringVar(&eventLogFlag, "event-log", "", "Append run events to this JSONL file")

	rootCmd.Flags().IntSliceVar(&onlyFlag, "only", nil, "Generate only these task ids (comma-separated)")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Render every task and report target paths without writing")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
