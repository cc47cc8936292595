package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/dto"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerguard-cli",
		Short: "LedgerGuard CLI tool",
		Long:  `A command line interface for interacting with the LedgerGuard API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerGuard API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account code operations",
	}

	var accountType, parentCode, code, excludeID string

	suggestCmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the next free account code",
		Run: func(cmd *cobra.Command, args []string) {
			suggestCode(accountType, parentCode)
		},
	}
	suggestCmd.Flags().StringVar(&accountType, "type", "", "Account type (ASSET, LIABILITY, EQUITY, INCOME, EXPENSE)")
	suggestCmd.Flags().StringVar(&parentCode, "parent", "", "Parent account code")
	suggestCmd.MarkFlagRequired("type")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an account code against the chart",
		Run: func(cmd *cobra.Command, args []string) {
			validateCode(code, accountType, parentCode, excludeID)
		},
	}
	validateCmd.Flags().StringVar(&code, "code", "", "Account code to validate")
	validateCmd.Flags().StringVar(&accountType, "type", "", "Account type")
	validateCmd.Flags().StringVar(&parentCode, "parent", "", "Parent account code")
	validateCmd.Flags().StringVar(&excludeID, "exclude", "", "Account ID to exclude from duplicate checks")
	validateCmd.MarkFlagRequired("code")
	validateCmd.MarkFlagRequired("type")

	accountCmd.AddCommand(suggestCmd, validateCmd)
	rootCmd.AddCommand(accountCmd)

	// Entry commands
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Journal entry operations",
	}

	var entryFile string

	entryValidateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a journal entry from a JSON file",
		Run: func(cmd *cobra.Command, args []string) {
			validateEntry(entryFile)
		},
	}
	entryValidateCmd.Flags().StringVarP(&entryFile, "file", "f", "", "Path to the entry JSON file")
	entryValidateCmd.MarkFlagRequired("file")

	entryCmd.AddCommand(entryValidateCmd)
	rootCmd.AddCommand(entryCmd)

	// Chart commands
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart of accounts operations",
	}

	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit the chart for structural problems",
		Run: func(cmd *cobra.Command, args []string) {
			auditChart()
		},
	}

	chartCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(chartCmd)

	// Report commands
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Reporting operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the trial balance by account type",
		Run: func(cmd *cobra.Command, args []string) {
			showBalance()
		},
	}

	var ledgerAccount, ledgerFrom, ledgerTo string

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Show one account's ledger over a date range",
		Run: func(cmd *cobra.Command, args []string) {
			showLedger(ledgerAccount, ledgerFrom, ledgerTo)
		},
	}
	ledgerCmd.Flags().StringVar(&ledgerAccount, "account", "", "Account code")
	ledgerCmd.Flags().StringVar(&ledgerFrom, "from", "", "Range start (YYYY-MM-DD, defaults to current month)")
	ledgerCmd.Flags().StringVar(&ledgerTo, "to", "", "Range end (YYYY-MM-DD, defaults to current month)")
	ledgerCmd.MarkFlagRequired("account")

	reportCmd.AddCommand(balanceCmd, ledgerCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func suggestCode(accountType, parentCode string) {
	body := postJSON("/api/v1/accounts/suggest-code", dto.SuggestCodeRequest{
		Type:       accountType,
		ParentCode: parentCode,
	})

	var resp dto.SuggestCodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Suggested code: %s\n", resp.Code)
}

func validateCode(code, accountType, parentCode, excludeID string) {
	body := postJSON("/api/v1/accounts/validate-code", dto.ValidateCodeRequest{
		Code:       code,
		Type:       accountType,
		ParentCode: parentCode,
		ExcludeID:  excludeID,
	})

	printVerdict(body)
}

func validateEntry(path string) {
	payload, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	var req dto.ValidateEntryRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		fmt.Printf("Invalid entry file: %v\n", err)
		os.Exit(1)
	}

	body := postJSON("/api/v1/entries/validate", req)
	printVerdict(body)
}

func auditChart() {
	body := getJSON("/api/v1/chart/audit")

	var resp dto.AuditResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if resp.Clean {
		fmt.Println("Chart audit PASSED")
		return
	}

	fmt.Printf("Chart audit found %d problem(s):\n", len(resp.Findings))
	for _, f := range resp.Findings {
		fmt.Printf("  [%s] %s\n", f.Rule, f.Message)
	}
	os.Exit(1)
}

func showBalance() {
	body := getJSON("/api/v1/reports/balance")

	var resp dto.BalanceReportResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Assets:      %s\n", resp.Assets)
	fmt.Printf("Liabilities: %s\n", resp.Liabilities)
	fmt.Printf("Equity:      %s\n", resp.Equity)
	fmt.Printf("Income:      %s\n", resp.Income)
	fmt.Printf("Expense:     %s\n", resp.Expense)
	fmt.Printf("General:     %s\n", resp.General)
}

func showLedger(account, from, to string) {
	q := url.Values{}
	q.Set("account", account)
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}

	body := getJSON("/api/v1/reports/ledger?" + q.Encode())

	var resp dto.LedgerReportResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ledger for %s (%s), %s to %s\n", resp.AccountCode, resp.AccountName, resp.From, resp.To)
	fmt.Printf("Opening balance: %s\n", resp.OpeningBalance)
	for _, m := range resp.Movements {
		fmt.Printf("  %s  %-30s  debit %12s  credit %12s  balance %12s\n",
			m.Date, m.Description, m.Debit, m.Credit, m.Balance)
	}
	fmt.Printf("Totals: debit %s, credit %s\n", resp.TotalDebits, resp.TotalCredits)
	fmt.Printf("Closing balance: %s\n", resp.ClosingBalance)
}

func printVerdict(body []byte) {
	var resp dto.VerdictResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if resp.Valid {
		fmt.Println("VALID")
		return
	}

	fmt.Println(formatViolation(resp.Violation))
	os.Exit(1)
}

func formatViolation(v *dto.ViolationResponse) string {
	if v == nil {
		return "INVALID"
	}
	out := fmt.Sprintf("INVALID [%s] %s", v.Rule, v.Message)
	if len(v.Lines) > 0 {
		out += fmt.Sprintf(" (lines %v)", v.Lines)
	}
	return out
}

func postJSON(path string, payload any) []byte {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Failed to encode request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

func getJSON(path string) []byte {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	return readResponse(resp)
}

func readResponse(resp *http.Response) []byte {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	return body
}
