package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import tasks from a CSV file into the snapshot",
	Long: `Merge the rows of the given CSV file into the current snapshot. Every
row is re-validated with the same rules as task creation; rows that fail
are reported with their line number and skipped, and the rest of the file
is still imported.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	accepted, rejected, err := sess.svc.Import(f)
	if err != nil {
		return err
	}

	if err := sess.save(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d task(s) from %s\n", accepted, args[0])
	for _, rowErr := range rejected {
		fmt.Fprintf(out, "  %v\n", rowErr)
	}
	if len(rejected) > 0 {
		fmt.Fprintf(out, "%d row(s) rejected\n", len(rejected))
	}
	return nil
}
