package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/workstream/internal/health"
)

var summaryMarkdown bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the daily stand-up summary",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().
		BoolVar(&summaryMarkdown, "markdown", false, "Render as Markdown instead of plain text")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	summary := sess.svc.DailySummary()
	if summaryMarkdown {
		fmt.Fprint(cmd.OutOrStdout(), health.RenderMarkdown(summary))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), health.RenderText(summary))
	return nil
}
