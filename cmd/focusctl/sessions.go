package main

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	sessionCmd := &cobra.Command{Use: "session", Short: "Record and list focus and meditation sessions"}

	var minutes int
	var status string
	focusCmd := &cobra.Command{
		Use:   "focus",
		Short: "Record a finished pomodoro ending now",
		RunE: func(cmd *cobra.Command, args []string) error {
			end := time.Now().UTC()
			start := end.Add(-time.Duration(minutes) * time.Minute)
			resp, err := apiClient().R().
				SetBody(map[string]interface{}{
					"startTime": start.Format(time.RFC3339),
					"endTime":   end.Format(time.RFC3339),
					"duration":  minutes,
					"status":    status,
				}).
				Post("/pomodoro")
			return printResult(resp, err)
		},
	}
	focusCmd.Flags().IntVarP(&minutes, "minutes", "m", 25, "Session length in minutes")
	focusCmd.Flags().StringVarP(&status, "status", "s", "completed", "Session status: completed or skipped")
	sessionCmd.AddCommand(focusCmd)

	var medMinutes int
	meditationCmd := &cobra.Command{
		Use:   "meditation",
		Short: "Record a meditation session ending now",
		RunE: func(cmd *cobra.Command, args []string) error {
			end := time.Now().UTC()
			start := end.Add(-time.Duration(medMinutes) * time.Minute)
			resp, err := apiClient().R().
				SetBody(map[string]interface{}{
					"startTime": start.Format(time.RFC3339),
					"endTime":   end.Format(time.RFC3339),
					"duration":  medMinutes,
				}).
				Post("/meditation")
			return printResult(resp, err)
		},
	}
	meditationCmd.Flags().IntVarP(&medMinutes, "minutes", "m", 10, "Session length in minutes")
	sessionCmd.AddCommand(meditationCmd)

	listCmd := &cobra.Command{
		Use:       "list KIND",
		Short:     "List recorded sessions (focus or meditation)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"focus", "meditation"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/pomodoro"
			if args[0] == "meditation" {
				path = "/meditation"
			}
			resp, err := apiClient().R().Get(path)
			return printResult(resp, err)
		},
	}
	sessionCmd.AddCommand(listCmd)

	rootCmd.AddCommand(sessionCmd)
}
