package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/fintrack/internal/adapter/http/dto"
)

var (
	baseURL    string
	timeout    time.Duration
	outputJSON bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fintrack",
		Short:         "Fintrack CLI tool",
		Long:          `A command line interface for recording and reviewing personal income and expenses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the fintrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print raw JSON")

	rootCmd.AddCommand(transactionsCmd(), summaryCmd())
	return rootCmd
}

func client() *apiClient {
	return newAPIClient(baseURL, timeout)
}

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Transaction operations",
	}

	var (
		txType string
		limit  int
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if txType != "" {
				q.Set("type", txType)
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			path := "/api/v1/transactions"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var resp dto.TransactionListResponse
			if err := client().do(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printTransactions(cmd.OutOrStdout(), resp.Transactions)
			return nil
		},
	}
	listCmd.Flags().StringVar(&txType, "type", "", "Only income or expense")
	listCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of transactions")

	getCmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.TransactionResponse
			if err := client().do(cmd.Context(), http.MethodGet, "/api/v1/transactions/"+url.PathEscape(args[0]), nil, &resp); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction (negative amount for an expense)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}

			var resp dto.TransactionResponse
			if err := client().do(cmd.Context(), http.MethodPost, "/api/v1/transactions", req, &resp); err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s (%s)\n", resp.Type, resp.Amount.StringFixed(2), resp.ID)
			return nil
		},
	}
	addTransactionFlags(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace a transaction's amount, date and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := requestFromFlags(cmd)
			if err != nil {
				return err
			}

			var resp dto.TransactionResponse
			if err := client().do(cmd.Context(), http.MethodPut, "/api/v1/transactions/"+url.PathEscape(args[0]), req, &resp); err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", resp.ID)
			return nil
		},
	}
	addTransactionFlags(editCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client().do(cmd.Context(), http.MethodDelete, "/api/v1/transactions/"+url.PathEscape(args[0]), nil, nil); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, addCmd, editCmd, deleteCmd)
	return cmd
}

func addTransactionFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "Signed amount, e.g. 2500 or -42.10")
	cmd.Flags().String("date", time.Now().Format("2006-01-02"), "Date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().String("description", "", "Free-text description")
	_ = cmd.MarkFlagRequired("amount")
}

func requestFromFlags(cmd *cobra.Command) (dto.TransactionRequest, error) {
	amount, err := cmd.Flags().GetString("amount")
	if err != nil {
		return dto.TransactionRequest{}, err
	}
	date, err := cmd.Flags().GetString("date")
	if err != nil {
		return dto.TransactionRequest{}, err
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		return dto.TransactionRequest{}, err
	}
	return dto.TransactionRequest{
		Amount:      dto.Amount(amount),
		Date:        date,
		Description: description,
	}, nil
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show balance and this month's totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.SummaryResponse
			if err := client().do(cmd.Context(), http.MethodGet, "/api/v1/summary", nil, &resp); err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			printSummary(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	monthlyCmd := &cobra.Command{
		Use:   "monthly",
		Short: "Show income and expenses for the last six months",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.MonthlySeriesResponse
			if err := client().do(cmd.Context(), http.MethodGet, "/api/v1/summary/monthly", nil, &resp); err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET")
			for _, p := range resp.Months {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Month, p.Income.StringFixed(2), p.Expenses.StringFixed(2), p.Net.StringFixed(2))
			}
			return w.Flush()
		},
	}

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Show expenses by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.CategoryBreakdownResponse
			if err := client().do(cmd.Context(), http.MethodGet, "/api/v1/summary/categories", nil, &resp); err != nil {
				return err
			}
			if outputJSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses recorded")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
			for _, c := range resp.Categories {
				fmt.Fprintf(w, "%s\t%s\t%s%%\n", c.Category, c.Amount.StringFixed(2), c.Percentage.StringFixed(1))
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(monthlyCmd, categoriesCmd)
	return cmd
}

func printTransactions(out io.Writer, txs []dto.TransactionResponse) {
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions yet")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tAMOUNT\tDESCRIPTION")
	for _, t := range txs {
		amount := t.Amount.StringFixed(2)
		if t.Type == "expense" {
			amount = "-" + amount
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Date.Format("Jan 02, 2006"), t.Type, amount, truncate(t.Description, 40))
	}
	w.Flush()
}

func printSummary(out io.Writer, s dto.SummaryResponse) {
	fmt.Fprintf(out, "Total balance:   %s\n", s.TotalBalance.StringFixed(2))
	fmt.Fprintf(out, "%s income:  %s\n", s.Month, s.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(out, "%s expenses: %s\n", s.Month, s.MonthlyExpenses.StringFixed(2))
	fmt.Fprintf(out, "%s net:     %s\n", s.Month, s.MonthlyNet.StringFixed(2))
	fmt.Fprintf(out, "Transactions:    %d (%d income, %d expense)\n", s.Count, s.IncomeCount, s.ExpenseCount)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
