package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/finsight-cli/finsight/internal/api"
	"github.com/finsight-cli/finsight/internal/display"
	"github.com/finsight-cli/finsight/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    `List, add, and delete transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			transactions, err := client.Transactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			if len(transactions) == 0 {
				fmt.Println("No transactions found. Use 'finsight transactions add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "ID\tDate\tCategory\tDescription\tAmount")
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 10),
				strings.Repeat("-", 16),
				strings.Repeat("-", 30),
				strings.Repeat("-", 12))

			for _, tx := range transactions {
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\n",
					tx.ID,
					tx.Date.Format("2006-01-02"),
					display.CategoryToken(tx.Category()).Icon,
					tx.Category(),
					tx.DisplayName(),
					display.SignedMoney(tx.Amount, tx.Income()),
				)
			}
			return nil
		},
	}
}

func addTransactionCmd() *cobra.Command {
	var (
		amountStr   string
		category    string
		kind        string
		date        string
		description string
		currency    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}
			if amount.Sign() <= 0 {
				return fmt.Errorf("amount must be positive")
			}

			categoryType := model.CategoryType(strings.ToLower(kind))
			if categoryType != model.TypeIncome && categoryType != model.TypeExpense {
				return fmt.Errorf("--type must be income or expense")
			}

			when := time.Now()
			if date != "" {
				when, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
				}
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			categoryID, err := resolveCategory(cmd, client, category, categoryType)
			if err != nil {
				return err
			}

			if err := client.CreateTransaction(cmd.Context(), api.NewTransaction{
				Date:         when,
				CategoryType: categoryType,
				CategoryID:   categoryID,
				Amount:       amount,
				Currency:     currency,
				Description:  description,
			}); err != nil {
				return fmt.Errorf("failed to create transaction: %w", err)
			}

			fmt.Printf("Added %s %s (%s)\n", categoryType, display.Money(amount), category)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&category, "category", "", "category name (required)")
	cmd.Flags().StringVar(&kind, "type", "expense", "income or expense")
	cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")
	cmd.Flags().StringVar(&currency, "currency", "INR", "currency code")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			if !yes {
				ok, promptErr := confirmPrompt(fmt.Sprintf("Delete transaction %d", id))
				if promptErr != nil {
					return promptErr
				}
				if !ok {
					fmt.Println("Aborted.")
					return nil
				}
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.DeleteTransaction(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}
			fmt.Printf("Deleted transaction %d\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without confirmation")
	return cmd
}

// resolveCategory matches a category name case-insensitively against
// the backend's category list.
func resolveCategory(cmd *cobra.Command, client *api.Client, name string, kind model.CategoryType) (int64, error) {
	categories, err := client.Categories(cmd.Context())
	if err != nil {
		return 0, fmt.Errorf("failed to load categories: %w", err)
	}

	var available []string
	for _, c := range categories {
		if c.Type != kind {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return c.ID, nil
		}
		available = append(available, c.Name)
	}

	return 0, fmt.Errorf("unknown %s category %q (available: %s)", kind, name, strings.Join(available, ", "))
}
