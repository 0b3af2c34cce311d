package main

import (
	"github.com/spf13/cobra"
)

func init() {
	journalCmd := &cobra.Command{Use: "journal", Short: "Journal operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Get("/journal")
			return printResult(resp, err)
		},
	}
	journalCmd.AddCommand(listCmd)

	var title, mood string
	addCmd := &cobra.Command{
		Use:   "add CONTENT",
		Short: "Write a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"content": args[0], "mood": mood}
			if title != "" {
				payload["title"] = title
			}
			resp, err := apiClient().R().SetBody(payload).Post("/journal")
			return printResult(resp, err)
		},
	}
	addCmd.Flags().StringVar(&title, "title", "", "Optional entry title")
	addCmd.Flags().StringVarP(&mood, "mood", "m", "neutral", "Mood: happy, sad, neutral or stressed")
	journalCmd.AddCommand(addCmd)

	rmCmd := &cobra.Command{
		Use:   "rm ENTRY_ID",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := apiClient().R().Delete("/journal/" + args[0])
			return printResult(resp, err)
		},
	}
	journalCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(journalCmd)
}
