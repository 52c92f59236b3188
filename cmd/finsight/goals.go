package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/finsight-cli/finsight/internal/display"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals with progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			goals, err := client.GoalProgress(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}

			if len(goals) == 0 {
				fmt.Println("No savings goals yet. Use 'finsight goals add' to create one.")
				return nil
			}

			now := time.Now()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "Goal\tSaved\tTarget\tProgress\tStatus")
			for _, g := range goals {
				progress := display.Goal(g.Saved, g.Target, g.Deadline, now)
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n",
					g.Name,
					display.Money(g.Saved),
					display.Money(g.Target),
					progress.Percent,
					progress.Status,
				)
			}
			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		targetStr string
		deadline  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := decimal.NewFromString(targetStr)
			if err != nil {
				return fmt.Errorf("invalid target %q: %w", targetStr, err)
			}
			if target.Sign() <= 0 {
				return fmt.Errorf("target must be positive")
			}

			due, err := time.Parse("2006-01-02", deadline)
			if err != nil {
				return fmt.Errorf("invalid deadline %q, want YYYY-MM-DD", deadline)
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.AddGoal(cmd.Context(), args[0], target, due); err != nil {
				return fmt.Errorf("failed to add goal: %w", err)
			}
			fmt.Printf("Goal %q added: %s by %s\n", args[0], display.Money(target), due.Format("Jan 2, 2006"))
			return nil
		},
	}

	cmd.Flags().StringVar(&targetStr, "target", "", "target amount (required)")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline as YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}
