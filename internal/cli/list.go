package cli

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks of the task table",
	Long: `List every task of the configured task table in ascending id order,
with the path (relative to base_dir) its document is written to.`,
	Args: cobra.NoArgs,
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

		out := cmd.OutOrStdout()
		st := newOutputStyles(out)
		fmt.Fprintln(out, st.header.Render(fmt.Sprintf("%d tasks from %s", len(table), svc.Tables.Name())))
		for _, id := range table.IDs() {
			rec := table[id]
			fmt.Fprintf(out, "%s\t%s\n", st.id.Render(fmt.Sprintf("%d", id)), path.Join(rec.Folder(), rec.Filename()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
