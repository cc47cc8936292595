package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func ledgerEntries() []JournalEntry {
	return []JournalEntry{
		{
			Date:        time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC),
			Description: "cash sale",
			Lines: []JournalLine{
				{AccountCode: "110", Debit: decimal.NewFromInt(300)},
				{AccountCode: "410", Credit: decimal.NewFromInt(300)},
			},
		},
		{
			Date:        time.Date(2026, time.August, 12, 0, 0, 0, 0, time.UTC),
			Description: "rent",
			Lines: []JournalLine{
				{AccountCode: "510", Debit: decimal.NewFromInt(120), Memo: "august"},
				{AccountCode: "110", Credit: decimal.NewFromInt(120)},
			},
		},
		{
			Date:        time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC),
			Description: "owner draw",
			Lines: []JournalLine{
				{AccountCode: "310", Debit: decimal.NewFromInt(50)},
				{AccountCode: "110", Credit: decimal.NewFromInt(50)},
			},
		},
	}
}

func TestLedgerFor(t *testing.T) {
	movements, debits, credits := LedgerFor("110", ledgerEntries(), decimal.Zero)

	if len(movements) != 3 {
		t.Fatalf("movements = %d, want 3", len(movements))
	}
	if !debits.Equal(decimal.NewFromInt(300)) || !credits.Equal(decimal.NewFromInt(170)) {
		t.Fatalf("totals = %s/%s, want 300/170", debits, credits)
	}

	// Running balance: +300, -120, -50.
	wantBalances := []int64{300, 180, 130}
	for i, m := range movements {
		if !m.Balance.Equal(decimal.NewFromInt(wantBalances[i])) {
			t.Fatalf("movement %d balance = %s, want %d", i, m.Balance, wantBalances[i])
		}
	}
	if movements[1].Description != "rent" {
		t.Fatalf("movement 1 description = %q", movements[1].Description)
	}
}

func TestLedgerFor_OpeningBalanceSeedsRunningTotal(t *testing.T) {
	movements, debits, credits := LedgerFor("110", ledgerEntries()[1:], decimal.NewFromInt(300))

	if len(movements) != 2 {
		t.Fatalf("movements = %d, want 2", len(movements))
	}
	if !debits.IsZero() || !credits.Equal(decimal.NewFromInt(170)) {
		t.Fatalf("window totals exclude the opening, got %s/%s", debits, credits)
	}
	if !movements[1].Balance.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("closing running balance = %s, want 130", movements[1].Balance)
	}
}

func TestLedgerFor_UntouchedAccount(t *testing.T) {
	movements, debits, credits := LedgerFor("210", ledgerEntries(), decimal.Zero)

	if len(movements) != 0 {
		t.Fatalf("expected no movements, got %d", len(movements))
	}
	if !debits.IsZero() || !credits.IsZero() {
		t.Fatalf("expected zero totals, got %s/%s", debits, credits)
	}
}

func TestLedgerFor_MemoCarriedFromLine(t *testing.T) {
	movements, _, _ := LedgerFor("510", ledgerEntries(), decimal.Zero)

	if len(movements) != 1 || movements[0].Memo != "august" {
		t.Fatalf("expected the line memo on the movement, got %+v", movements)
	}
}
