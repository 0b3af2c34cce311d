package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	authCmd := &cobra.Command{Use: "auth", Short: "Account operations"}

	var name, email, password string
	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" || password == "" {
				return fmt.Errorf("--name, --email and --password required")
			}
			resp, err := apiClient().R().
				SetBody(map[string]string{"name": name, "email": email, "password": password}).
				Post("/signup")
			return printResult(resp, err)
		},
	}
	signupCmd.Flags().StringVarP(&name, "name", "n", "", "Display name (required)")
	signupCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	signupCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	authCmd.AddCommand(signupCmd)

	var inEmail, inPassword string
	signinCmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and print a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inEmail == "" || inPassword == "" {
				return fmt.Errorf("--email and --password required")
			}
			resp, err := apiClient().R().
				SetBody(map[string]string{"email": inEmail, "password": inPassword}).
				Post("/signin")
			return printResult(resp, err)
		},
	}
	signinCmd.Flags().StringVarP(&inEmail, "email", "e", "", "Email (required)")
	signinCmd.Flags().StringVarP(&inPassword, "password", "p", "", "Password (required)")
	authCmd.AddCommand(signinCmd)

	rootCmd.AddCommand(authCmd)
}
