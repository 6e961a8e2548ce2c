// Package cli implements the command-line host for the task dashboard.
// Each command is a thin wrapper over the task service: load the snapshot
// file (when present), perform one operation, and save the snapshot back
// if anything was mutated. State never outlives a run except through an
// explicit snapshot file.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	snapshotPath    string
	longRunningDays int
	inactivityDays  int
)

// rootCmd is initialized at declaration so it exists before the init()
// functions in the other command files run and call rootCmd.AddCommand.
var rootCmd = &cobra.Command{
	Use:   "workstream",
	Short: "WorkStream Monitor - task ownership, status, and execution risk",
	Long: `WorkStream Monitor tracks a small team's tasks and derives execution-risk
metrics: age, inactivity, blocked and long-running flags, status and
ownership distributions, and a daily stand-up summary.

All state is in memory for the duration of a command; use --file to read
and write a CSV snapshot between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().
		StringVarP(&snapshotPath, "file", "f", "", "Snapshot CSV path (default from config)")
	rootCmd.PersistentFlags().
		IntVar(&longRunningDays, "long-running-days", 0, "Override the long-running threshold in days")
	rootCmd.PersistentFlags().
		IntVar(&inactivityDays, "inactivity-days", 0, "Override the inactivity threshold in days")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
