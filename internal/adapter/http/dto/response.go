package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

// SuggestCodeResponse carries a code proposal.
type SuggestCodeResponse struct {
	Code string `json:"code"`
}

// ViolationResponse is the wire form of a domain violation.
type ViolationResponse struct {
	Rule           string `json:"rule"`
	Message        string `json:"message"`
	ExpectedPrefix string `json:"expected_prefix,omitempty"`
	RangeMin       int    `json:"range_min,omitempty"`
	RangeMax       int    `json:"range_max,omitempty"`
	ConflictID     string `json:"conflict_id,omitempty"`
	ConflictName   string `json:"conflict_name,omitempty"`
	Lines          []int  `json:"lines,omitempty"`
}

// VerdictResponse is the outcome of a validation call. A violation is a
// verdict, not a transport error, so it rides on a 200.
type VerdictResponse struct {
	Valid     bool               `json:"valid"`
	Violation *ViolationResponse `json:"violation,omitempty"`
}

// ViolationFromDomain converts a domain violation to its wire form.
func ViolationFromDomain(v *domain.Violation) *ViolationResponse {
	if v == nil {
		return nil
	}
	return &ViolationResponse{
		Rule:           string(v.Rule),
		Message:        v.Message,
		ExpectedPrefix: v.ExpectedPrefix,
		RangeMin:       v.RangeMin,
		RangeMax:       v.RangeMax,
		ConflictID:     v.ConflictID,
		ConflictName:   v.ConflictName,
		Lines:          v.Lines,
	}
}

// VerdictFromDomain wraps a violation (or its absence) as a verdict.
func VerdictFromDomain(v *domain.Violation) VerdictResponse {
	return VerdictResponse{
		Valid:     v == nil,
		Violation: ViolationFromDomain(v),
	}
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Nature     string          `json:"balance_nature"`
	Imputable  bool            `json:"imputable"`
	Active     bool            `json:"active"`
	ParentCode string          `json:"parent_code,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
}

// AccountFromDomain converts a domain account to its wire form.
func AccountFromDomain(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		Code:       a.Code,
		Name:       a.Name,
		Type:       string(a.Type),
		Nature:     string(a.Nature()),
		Imputable:  a.Imputable,
		Active:     a.Active,
		ParentCode: a.ParentCode,
		Balance:    a.Balance,
	}
}

// TreeNodeResponse is one node of the account tree.
type TreeNodeResponse struct {
	Account  AccountResponse    `json:"account"`
	Children []TreeNodeResponse `json:"children,omitempty"`
}

// TreeFromDomain converts tree nodes to wire form.
func TreeFromDomain(nodes []*domain.TreeNode) []TreeNodeResponse {
	result := make([]TreeNodeResponse, len(nodes))
	for i, n := range nodes {
		result[i] = TreeNodeResponse{
			Account:  AccountFromDomain(&n.Account),
			Children: TreeFromDomain(n.Children),
		}
	}
	return result
}

// BalanceReportResponse carries the per-type balance totals.
type BalanceReportResponse struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Equity      decimal.Decimal `json:"equity"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	General     decimal.Decimal `json:"general"`
}

// BalanceFromDomain converts the balance report to wire form.
func BalanceFromDomain(r domain.BalanceReport) BalanceReportResponse {
	return BalanceReportResponse{
		Assets:      r.Assets,
		Liabilities: r.Liabilities,
		Equity:      r.Equity,
		Income:      r.Income,
		Expense:     r.Expense,
		General:     r.General,
	}
}

// AuditResponse lists chart findings.
type AuditResponse struct {
	Clean    bool                `json:"clean"`
	Findings []ViolationResponse `json:"findings,omitempty"`
}

// AuditFromDomain converts audit findings to wire form.
func AuditFromDomain(findings []domain.Violation) AuditResponse {
	resp := AuditResponse{Clean: len(findings) == 0}
	for i := range findings {
		resp.Findings = append(resp.Findings, *ViolationFromDomain(&findings[i]))
	}
	return resp
}

// JournalEntryResponse is one entry in the journal report.
type JournalEntryResponse struct {
	Date        string                `json:"date"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines"`
}

// JournalLineResponse is one line of a reported entry.
type JournalLineResponse struct {
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// JournalReportResponse is the journal book over a date range.
type JournalReportResponse struct {
	From        string                 `json:"from"`
	To          string                 `json:"to"`
	Entries     []JournalEntryResponse `json:"entries"`
	TotalDebit  decimal.Decimal        `json:"total_debit"`
	TotalCredit decimal.Decimal        `json:"total_credit"`
}

// JournalReportFromDomain converts the report to wire form.
func JournalReportFromDomain(r *usecase.JournalReport, loc *time.Location) JournalReportResponse {
	if loc == nil {
		loc = time.UTC
	}
	resp := JournalReportResponse{
		From:        r.From.In(loc).Format(dateLayout),
		To:          r.To.In(loc).Format(dateLayout),
		Entries:     make([]JournalEntryResponse, len(r.Entries)),
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
	}
	for i, e := range r.Entries {
		lines := make([]JournalLineResponse, len(e.Lines))
		for j, l := range e.Lines {
			lines[j] = JournalLineResponse{
				AccountCode: l.AccountCode,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Memo:        l.Memo,
			}
		}
		resp.Entries[i] = JournalEntryResponse{
			Date:        e.Date.In(loc).Format(dateLayout),
			Description: e.Description,
			Lines:       lines,
		}
	}
	return resp
}

// LedgerMovementResponse is one posting in a ledger report.
type LedgerMovementResponse struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Memo        string          `json:"memo,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerReportResponse is one account's ledger view over a date range.
type LedgerReportResponse struct {
	AccountCode    string                   `json:"account_code"`
	AccountName    string                   `json:"account_name"`
	From           string                   `json:"from"`
	To             string                   `json:"to"`
	OpeningBalance decimal.Decimal          `json:"opening_balance"`
	TotalDebits    decimal.Decimal          `json:"total_debits"`
	TotalCredits   decimal.Decimal          `json:"total_credits"`
	ClosingBalance decimal.Decimal          `json:"closing_balance"`
	Movements      []LedgerMovementResponse `json:"movements"`
}

// LedgerReportFromDomain converts the ledger report to wire form.
func LedgerReportFromDomain(r *usecase.LedgerReport, loc *time.Location) LedgerReportResponse {
	if loc == nil {
		loc = time.UTC
	}
	resp := LedgerReportResponse{
		AccountCode:    r.AccountCode,
		AccountName:    r.AccountName,
		From:           r.From.In(loc).Format(dateLayout),
		To:             r.To.In(loc).Format(dateLayout),
		OpeningBalance: r.OpeningBalance,
		TotalDebits:    r.TotalDebits,
		TotalCredits:   r.TotalCredits,
		ClosingBalance: r.ClosingBalance,
		Movements:      make([]LedgerMovementResponse, len(r.Movements)),
	}
	for i, m := range r.Movements {
		resp.Movements[i] = LedgerMovementResponse{
			Date:        m.Date.In(loc).Format(dateLayout),
			Description: m.Description,
			Memo:        m.Memo,
			Debit:       m.Debit,
			Credit:      m.Credit,
			Balance:     m.Balance,
		}
	}
	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
