package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			notifications, err := client.Notifications(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load notifications: %w", err)
			}

			if len(notifications) == 0 {
				fmt.Println("Nothing new.")
				return nil
			}

			for _, n := range notifications {
				if n.Message != "" {
					fmt.Printf("• %s: %s\n", n.Title, n.Message)
				} else {
					fmt.Printf("• %s\n", n.Title)
				}
				if n.Timestamp != "" {
					fmt.Printf("  %s\n", n.Timestamp)
				}
			}
			return nil
		},
	}
}
