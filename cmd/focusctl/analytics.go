package main

import (
	"github.com/spf13/cobra"
)

func init() {
	analyticsCmd := &cobra.Command{Use: "analytics", Short: "Dashboard analytics"}

	for use, path := range map[string]string{
		"stats":        "/analytics/stats",
		"trends":       "/analytics/weekly-trends",
		"distribution": "/analytics/productivity-distribution",
		"mood":         "/analytics/daily-mood",
		"achievements": "/analytics/achievements",
	} {
		p := path
		analyticsCmd.AddCommand(&cobra.Command{
			Use:   use,
			Short: "Fetch " + p,
			RunE: func(cmd *cobra.Command, args []string) error {
				resp, err := apiClient().R().Get(p)
				return printResult(resp, err)
			},
		})
	}

	rootCmd.AddCommand(analyticsCmd)
}
