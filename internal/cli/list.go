package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phrazzld/workstream/internal/health"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks with derived health columns",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	tasks := sess.svc.ListTasks()
	metrics := sess.svc.Health()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tOWNER\tSTATUS\tAGE\tIDLE\tAT RISK")
	for i, task := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%dd\t%s\n",
			shortID(task.ID.String()),
			task.Title,
			task.Owner,
			task.Status,
			formatAge(metrics[i]),
			metrics[i].InactivityDays,
			riskLabel(metrics[i]),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d task(s)\n", len(tasks))
	return nil
}

// formatAge shows hours for same-day tasks and whole days otherwise.
func formatAge(m health.TaskHealth) string {
	if m.AgeDays == 0 {
		return fmt.Sprintf("%dh", m.AgeHours)
	}
	return fmt.Sprintf("%dd", m.AgeDays)
}

func riskLabel(m health.TaskHealth) string {
	if !m.AtRisk {
		return "-"
	}
	switch {
	case m.Blocked:
		return "yes (blocked)"
	case m.LongRunning:
		return "yes (long-running)"
	default:
		return "yes (inactive)"
	}
}

// shortID truncates a UUID for display; full ids come from export.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
