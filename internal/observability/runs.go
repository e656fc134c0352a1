package observability

import (
	"fmt"
	"time"
)

// RunSummary describes one generator run reconstructed from the event log.
type RunSummary struct {
	Started  time.Time
	Finished time.Time
	DryRun   bool
	// Docs counts doc.created events seen during the run.
	Docs int
	// Completed is false when the run failed or never logged its end.
	Completed bool
	Error     string
}

// Status returns a one-word description of the run outcome.
func (r RunSummary) Status() string {
	switch {
	case r.Completed:
		return "ok"
	case r.Error != "":
		return "failed"
	default:
		return "incomplete"
	}
}

// SummarizeRuns groups events into runs. Each run.started opens a new run;
// events before the first run.started are ignored.
func SummarizeRuns(events []Event) []RunSummary {
	var runs []RunSummary
	var cur *RunSummary

	for _, e := range events {
		switch e.Type {
		case EventRunStarted:
			runs = append(runs, RunSummary{Started: e.Time, DryRun: boolData(e, "dry_run")})
			cur = &runs[len(runs)-1]
		case EventDocCreated:
			if cur != nil {
				cur.Docs++
			}
		case EventRunCompleted:
			if cur != nil {
				cur.Completed = true
				cur.Finished = e.Time
				cur = nil
			}
		case EventRunFailed:
			if cur != nil {
				cur.Error = stringData(e, "error")
				cur.Finished = e.Time
				cur = nil
			}
		}
	}
	return runs
}

func boolData(e Event, key string) bool {
	b, _ := e.Data[key].(bool)
	return b
}

func stringData(e Event, key string) string {
	v, ok := e.Data[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
