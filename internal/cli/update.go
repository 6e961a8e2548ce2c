package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/phrazzld/workstream/internal/domain"
)

var (
	updateTitle       string
	updateOwner       string
	updateStatus      string
	updateDescription string
)

var updateCmd = &cobra.Command{
	Use:   "update <task-id>",
	Short: "Apply a quick update to an existing task",
	Long: `Update any subset of a task's title, owner, status, and description.
Flags that are not set leave the corresponding field unchanged. The update
is all-or-nothing: if the result would be invalid, the task is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateOwner, "owner", "", "New owner")
	updateCmd.Flags().StringVar(&updateStatus, "status", "", "New status")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "New description")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid task ID %q: %w", args[0], err)
	}

	var patch domain.TaskUpdate
	if cmd.Flags().Changed("title") {
		patch.Title = &updateTitle
	}
	if cmd.Flags().Changed("owner") {
		patch.Owner = &updateOwner
	}
	if cmd.Flags().Changed("status") {
		status, err := domain.ParseStatus(updateStatus)
		if err != nil {
			return fmt.Errorf("%w: %q (valid: %v)", err, updateStatus, domain.Statuses())
		}
		patch.Status = &status
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &updateDescription
	}

	if patch.IsZero() {
		return fmt.Errorf("nothing to update: set at least one of --title, --owner, --status, --description")
	}

	sess, err := openSession()
	if err != nil {
		return err
	}

	task, err := sess.svc.UpdateTask(id, patch)
	if err != nil {
		return err
	}

	if err := sess.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s (%s, %s)\n", task.ID, task.Owner, task.Status)
	return nil
}
