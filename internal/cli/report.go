package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show status distribution and ownership workload",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	report := sess.svc.Report()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Total: %d  Blocked: %d  At risk: %d  Long-running: %d\n\n",
		report.Total, report.Blocked, report.AtRisk, report.LongRunning)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCOUNT")
	for _, sc := range report.ByStatus {
		fmt.Fprintf(w, "%s\t%d\n", sc.Status, sc.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OWNER\tOPEN TASKS")
	for _, ol := range report.ByOwner {
		fmt.Fprintf(w, "%s\t%d\n", ol.Owner, ol.Open)
	}
	return w.Flush()
}
