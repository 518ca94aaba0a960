package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/task-list/internal/model"
)

func newAddCmd() *cobra.Command {
	var in model.TaskInput

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Example: `  task-list add "Buy milk"
  task-list add "Write report" --desc "Q3 numbers" --date 2025-06-01 --priority high`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			a.printOnChange(cmd.OutOrStdout())
			in.Title = strings.Join(args, " ")
			_, err = a.service.Create(cmd.Context(), in)
			return err
		},
	}
	cmd.Flags().StringVar(&in.Description, "desc", "", "Description")
	cmd.Flags().StringVar(&in.DueDate, "date", "", "Due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&in.Priority, "priority", string(model.PriorityLow), "low, medium or high")
	return cmd
}
