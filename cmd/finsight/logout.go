package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			// Local tokens are cleared even if the backend call fails.
			if err := client.Logout(cmd.Context()); err != nil {
				fmt.Printf("Backend logout failed (%s), local session cleared anyway.\n", err)
				return nil
			}

			fmt.Println("Logged out.")
			return nil
		},
	}
}
