package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	tenant  string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankrecon-cli",
		Short: "Bank reconciliation CLI tool",
		Long:  `A command line interface for interacting with the bank reconciliation API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the reconciliation API")
	rootCmd.PersistentFlags().StringVar(&tenant, "tenant", "", "Tenant ID sent with every request")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Statement commands
	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Statement operations",
	}
	statementCmd.AddCommand(importStatementCmd())
	statementCmd.AddCommand(listStatementsCmd())
	statementCmd.AddCommand(getStatementCmd())
	statementCmd.AddCommand(autoMatchCmd())
	rootCmd.AddCommand(statementCmd)

	// Transaction commands
	transactionCmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction operations",
	}
	transactionCmd.AddCommand(matchTransactionCmd())
	transactionCmd.AddCommand(createPaymentCmd())
	transactionCmd.AddCommand(listUnmatchedCmd())
	rootCmd.AddCommand(transactionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func importStatementCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			payload := map[string]string{
				"file_name": args[0],
				"content":   base64.StdEncoding.EncodeToString(content),
			}
			if format != "" {
				payload["format"] = format
			}

			return doRequest(http.MethodPost, "/api/v1/statements/import", payload)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Override format detection (xml, csv, mt940)")

	return cmd
}

func listStatementsCmd() *cobra.Command {
	var (
		account string
		status  string
		limit   int
		offset  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List imported statements",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/statements/?account_number=%s&status=%s&limit=%d&offset=%d",
				account, status, limit, offset)
			return doRequest(http.MethodGet, path, nil)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Filter by account number")
	cmd.Flags().StringVar(&status, "status", "", "Filter by statement status")
	cmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func getStatementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a statement with its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, "/api/v1/statements/"+args[0], nil)
		},
	}
}

func autoMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <id>",
		Short: "Run auto-matching over a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/statements/"+args[0]+"/match", nil)
		},
	}
}

func matchTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <transaction-id> <invoice-id>",
		Short: "Manually match a transaction to an invoice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"invoice_id": args[1]}
			return doRequest(http.MethodPost, "/api/v1/transactions/"+args[0]+"/match", payload)
		},
	}
}

func createPaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payment <transaction-id>",
		Short: "Create a payment from a matched transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodPost, "/api/v1/transactions/"+args[0]+"/payment", nil)
		},
	}
}

func listUnmatchedCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "unmatched",
		Short: "List unmatched transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRequest(http.MethodGet, fmt.Sprintf("/api/v1/transactions/unmatched?limit=%d", limit), nil)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum transactions to return")

	return cmd
}

func doRequest(method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tenant != "" {
		req.Header.Set("X-Tenant-ID", tenant)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	var pretty any
	if err := json.Unmarshal(respBody, &pretty); err != nil {
		fmt.Println(string(respBody))
		return nil
	}

	printJSON(pretty)

	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}
