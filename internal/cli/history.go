package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valter-silva-au/taskdocs/internal/observability"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past generation runs from the event log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := setupServices(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = svc.Close() }()

		if svc.EventLog == nil {
			return fmt.Errorf("event log not configured (set event_log or --event-log)")
		}

		events, err := svc.EventLog.Read(observability.EventFilter{})
		if err != nil {
			return err
		}
		runs := observability.SummarizeRuns(events)

		out := cmd.OutOrStdout()
		st := newOutputStyles(out)
		if len(runs) == 0 {
			fmt.Fprintln(out, st.dim.Render("No runs recorded."))
			return nil
		}
		for _, r := range runs {
			status := r.Status()
			if status != "ok" {
				status = st.failed.Render(status)
			}
			mode := ""
			if r.DryRun {
				mode = " (dry run)"
			}
			fmt.Fprintf(out, "%s  %-10s %d docs%s\n", r.Started.Local().Format("2006-01-02 15:04:05"), status, r.Docs, mode)
			if r.Error != "" {
				fmt.Fprintf(out, "    %s\n", st.dim.Render(r.Error))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
