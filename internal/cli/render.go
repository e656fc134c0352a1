package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskdocs/pkg/models"
)

var renderCmd = &cobra.Command{
	Use:   "render <task-id>",
	Short: "Print one rendered task document",
	Long: `Render the document for a single task and print it to stdout instead of
writing it under base_dir.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q: %w", args[0], err)
		}

		svc, err := setupServices(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()

		table, err := svc.Tables.Load()
		if err != nil {
			return err
		}
		rec, ok := table[id]
		if !ok {
			return fmt.Errorf("task %d: %w", id, models.ErrUnknownTask)
		}

		content, err := svc.Renderer.Render(id, rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
