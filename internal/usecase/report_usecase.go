package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerguard/ledgerguard/internal/domain"
)

// ReportUseCase builds read-only views over the snapshot: the account tree,
// the balance report, chart audits and the journal book.
type ReportUseCase struct {
	snapshots SnapshotSource
	logger    zerolog.Logger
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(snapshots SnapshotSource, logger zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{snapshots: snapshots, logger: logger}
}

// Tree returns the active chart of accounts as a parent/child hierarchy.
func (uc *ReportUseCase) Tree(ctx context.Context) ([]*domain.TreeNode, error) {
	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account snapshot: %w", err)
	}
	return domain.NewChart(accounts).Tree(), nil
}

// Balance returns per-type totals over imputable accounts.
func (uc *ReportUseCase) Balance(ctx context.Context) (domain.BalanceReport, error) {
	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return domain.BalanceReport{}, fmt.Errorf("loading account snapshot: %w", err)
	}
	return domain.NewChart(accounts).BalanceReport(), nil
}

// Audit sweeps the chart for structural findings.
func (uc *ReportUseCase) Audit(ctx context.Context) ([]domain.Violation, error) {
	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account snapshot: %w", err)
	}

	findings := domain.NewChart(accounts).Audit()
	if len(findings) > 0 {
		uc.logger.Warn().Int("findings", len(findings)).Msg("chart audit found structural problems")
	}
	return findings, nil
}

// JournalReport is the journal book over a date range.
type JournalReport struct {
	From        time.Time
	To          time.Time
	Entries     []domain.JournalEntry
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ErrInvalidRange reports a report range whose end precedes its start.
var ErrInvalidRange = fmt.Errorf("report range end precedes start")

// ErrUnknownAccount reports a ledger request for a code outside the chart.
var ErrUnknownAccount = fmt.Errorf("unknown account code")

// Journal returns the entries within [from, to] with their running totals.
func (uc *ReportUseCase) Journal(ctx context.Context, from, to time.Time) (*JournalReport, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	entries, err := uc.snapshots.JournalEntries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading journal entries: %w", err)
	}

	debit, credit := domain.JournalTotals(entries)
	return &JournalReport{
		From:        from,
		To:          to,
		Entries:     entries,
		TotalDebit:  debit,
		TotalCredit: credit,
	}, nil
}

// LedgerReport is a single account's view of the journal over a date range:
// the movements that touched it, their totals, and the balance carried into
// and out of the window.
type LedgerReport struct {
	AccountCode    string
	AccountName    string
	From           time.Time
	To             time.Time
	OpeningBalance decimal.Decimal
	Movements      []domain.LedgerMovement
	TotalDebits    decimal.Decimal
	TotalCredits   decimal.Decimal
	ClosingBalance decimal.Decimal
}

// Ledger builds the ledger view for accountCode over [from, to]. The opening
// balance is reconstructed from the account's movements before the window.
func (uc *ReportUseCase) Ledger(ctx context.Context, accountCode string, from, to time.Time) (*LedgerReport, error) {
	if to.Before(from) {
		return nil, ErrInvalidRange
	}

	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account snapshot: %w", err)
	}

	account, ok := domain.NewChart(accounts).Lookup(accountCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, accountCode)
	}

	opening := decimal.Zero
	if !from.IsZero() {
		prior, err := uc.snapshots.JournalEntries(ctx, time.Time{}, from.AddDate(0, 0, -1))
		if err != nil {
			return nil, fmt.Errorf("loading prior journal entries: %w", err)
		}
		_, debits, credits := domain.LedgerFor(accountCode, prior, decimal.Zero)
		opening = debits.Sub(credits)
	}

	entries, err := uc.snapshots.JournalEntries(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("loading journal entries: %w", err)
	}

	movements, debits, credits := domain.LedgerFor(accountCode, entries, opening)
	return &LedgerReport{
		AccountCode:    accountCode,
		AccountName:    account.Name,
		From:           from,
		To:             to,
		OpeningBalance: opening,
		Movements:      movements,
		TotalDebits:    debits,
		TotalCredits:   credits,
		ClosingBalance: opening.Add(debits).Sub(credits),
	}, nil
}
