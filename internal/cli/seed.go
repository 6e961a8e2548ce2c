package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the snapshot with a small demo data set",
	RunE:  runSeed,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard every task in the snapshot",
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(resetCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	if err := sess.svc.SeedDemo(); err != nil {
		return err
	}
	if err := sess.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d demo task(s)\n", len(sess.svc.ListTasks()))
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	sess.svc.Reset()
	if err := sess.save(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "All tasks discarded")
	return nil
}
