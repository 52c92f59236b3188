package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if username == "" {
				username, err = promptLine("Username: ")
				if err != nil {
					return err
				}
			}

			fmt.Print("Password: ")
			password, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.Login(cmd.Context(), username, string(password)); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			name := username
			if profile, err := client.Profile(cmd.Context()); err == nil && profile.Username != "" {
				name = profile.Username
			}
			fmt.Printf("Logged in as %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (prompted if omitted)")
	return cmd
}
