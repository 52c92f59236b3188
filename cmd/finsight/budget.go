package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/finsight-cli/finsight/internal/display"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
		Long:  `List budgets, create new ones, and act on the backend's budget insights.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(createBudgetCmd())
	cmd.AddCommand(budgetInsightsCmd())
	cmd.AddCommand(acceptBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with utilization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			budgets, err := client.Budgets(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println("No budgets yet. Use 'finsight budget create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "Category\tSpent\tLimit\tUsed")
			for _, b := range budgets {
				pct := display.UtilizationPercent(b.Spent, b.Limit)
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\n",
					b.Category,
					display.Money(b.Spent),
					display.Money(b.Limit),
					pct,
				)
			}
			return nil
		},
	}
}

func createBudgetCmd() *cobra.Command {
	var limitStr string

	cmd := &cobra.Command{
		Use:   "create <category>",
		Short: "Create a budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := decimal.NewFromString(limitStr)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", limitStr, err)
			}
			if limit.Sign() <= 0 {
				return fmt.Errorf("limit must be positive")
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.CreateBudget(cmd.Context(), args[0], limit); err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}
			fmt.Printf("Budget for %s set to %s\n", args[0], display.Money(limit))
			return nil
		},
	}

	cmd.Flags().StringVar(&limitStr, "limit", "", "monthly limit (required)")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func budgetInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show per-category spending forecasts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			insights, err := client.BudgetInsights(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load budget insights: %w", err)
			}

			overspending := false
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Category\tAverage\tForecast\tSuggested limit\tRecommendation")
			for _, in := range insights {
				marker := ""
				if in.Overspending() {
					overspending = true
					marker = " ⚠"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\n",
					in.Category,
					marker,
					display.Money(in.AverageSpending),
					display.Money(in.ForecastedSpending),
					display.Money(in.RecommendedLimit()),
					in.SavingsRecommendation,
				)
			}
			_ = w.Flush()

			if !overspending {
				fmt.Println("\nYour budget is optimized.")
			} else {
				fmt.Println("\nRun 'finsight budget accept <category>' to apply a suggested limit.")
			}
			return nil
		},
	}
}

func acceptBudgetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "accept <category>",
		Short: "Apply the suggested budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			insights, err := client.BudgetInsights(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load budget insights: %w", err)
			}

			for _, in := range insights {
				if !strings.EqualFold(in.Category, args[0]) {
					continue
				}

				limit := in.RecommendedLimit()
				if !yes {
					ok, promptErr := confirmPrompt(fmt.Sprintf(
						"Set the %s budget to %s", in.Category, display.Money(limit)))
					if promptErr != nil {
						return promptErr
					}
					if !ok {
						fmt.Println("Aborted.")
						return nil
					}
				}

				message, acceptErr := client.AcceptSuggestedBudget(cmd.Context(), in.Category, limit)
				if acceptErr != nil {
					return fmt.Errorf("failed to apply suggested budget: %w", acceptErr)
				}
				fmt.Println(message)
				return nil
			}

			return fmt.Errorf("no budget insight for category %q", args[0])
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "apply without confirmation")
	return cmd
}
