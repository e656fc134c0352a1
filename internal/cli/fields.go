package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields the task template requires",
	Long: `Print every placeholder the active template references. Each task record
must supply a value for all of them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := setupServices(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()

		out := cmd.OutOrStdout()
		for _, f := range svc.Renderer.Fields() {
			fmt.Fprintln(out, f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
