package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	taskCmd := &cobra.Command{Use: "task", Short: "Task operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Get("/task")
			return printResult(resp, err)
		},
	}
	taskCmd.AddCommand(listCmd)

	var priority, due string
	addCmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("--due must be YYYY-MM-DD: %w", err)
			}
			resp, err := apiClient().R().
				SetBody(map[string]interface{}{
					"task":     args[0],
					"priority": priority,
					"dueDate":  dueDate.Format(time.RFC3339),
				}).
				Post("/task")
			return printResult(resp, err)
		},
	}
	addCmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority: low, medium or high")
	addCmd.Flags().StringVarP(&due, "due", "d", "", "Due date as YYYY-MM-DD (required)")
	_ = addCmd.MarkFlagRequired("due")
	taskCmd.AddCommand(addCmd)

	doneCmd := &cobra.Command{
		Use:   "done TASK_ID",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().
				SetBody(map[string]string{"status": "completed"}).
				Patch("/task/" + args[0])
			return printResult(resp, err)
		},
	}
	taskCmd.AddCommand(doneCmd)

	rmCmd := &cobra.Command{
		Use:   "rm TASK_ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Delete("/task/" + args[0])
			return printResult(resp, err)
		},
	}
	taskCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(taskCmd)
}
