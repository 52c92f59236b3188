package main

import (
	"fmt"
	"time"

	"github.com/finsight-cli/finsight/internal/dashboard"
	"github.com/finsight-cli/finsight/internal/render"
	"github.com/finsight-cli/finsight/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func dashboardCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the finance dashboard",
		Long: `Show the full dashboard: balances, spending analysis, recent
transactions, budgets, AI insights, savings goals, bills and
notifications.

By default this opens the interactive full-screen view. With --plain
the dashboard is printed once and the command exits, which suits
scripts and dumb terminals.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if !client.Session().Authenticated() {
				return fmt.Errorf("not logged in - run 'finsight login' first")
			}

			if plain {
				snap := dashboard.LoadSnapshot(cmd.Context(), client, time.Now())
				render.Dashboard(snap)
				return nil
			}

			return tui.Run(cmd.Context(), tui.Config{
				Backend:    client,
				Recognizer: newRecognizer(),
				Theme:      viper.GetString("ui.theme"),
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print once instead of opening the interactive view")
	return cmd
}
