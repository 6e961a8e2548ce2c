package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phrazzld/workstream/internal/domain"
)

var (
	createTitle       string
	createOwner       string
	createStatus      string
	createDescription string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Task title (required)")
	createCmd.Flags().StringVar(&createOwner, "owner", "", "Responsible person (required)")
	createCmd.Flags().
		StringVar(&createStatus, "status", string(domain.StatusPlanned), "Initial status")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Optional description")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("owner")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}

	status, err := domain.ParseStatus(createStatus)
	if err != nil {
		return fmt.Errorf("%w: %q (valid: %v)", err, createStatus, domain.Statuses())
	}

	task, err := sess.svc.CreateTask(createTitle, createOwner, status, createDescription)
	if err != nil {
		return err
	}

	if err := sess.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s, %s)\n", task.ID, task.Owner, task.Status)
	return nil
}
