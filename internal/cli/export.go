package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the snapshot as CSV",
	Long: `Write every task as CSV to the given path, or to stdout when no path
is given. The column set matches the import format, so an exported file
can be re-imported as-is.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return sess.svc.Export(cmd.OutOrStdout())
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	if err := sess.svc.Export(f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d task(s) to %s\n", len(sess.svc.ListTasks()), args[0])
	return nil
}
