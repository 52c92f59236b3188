package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/finsight-cli/finsight/internal/display"
	"github.com/spf13/cobra"
)

func billsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bills",
		Short: "List upcoming recurring payments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			bills, err := client.UpcomingBills(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load bills: %w", err)
			}

			if len(bills) == 0 {
				fmt.Println("No upcoming bills.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "Bill\tCategory\tAmount\tFrequency\tDue")
			for _, bill := range bills {
				due := fmt.Sprintf("in %d days", bill.DaysRemaining)
				switch {
				case bill.DaysRemaining < 0:
					due = "overdue"
				case bill.DaysRemaining == 0:
					due = "today"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					bill.Name,
					bill.Category,
					display.Money(bill.Amount),
					bill.Frequency,
					due,
				)
			}
			return nil
		},
	}
}
