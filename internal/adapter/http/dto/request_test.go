package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestValidateEntryRequest_ToDomain(t *testing.T) {
	req := ValidateEntryRequest{
		Date:        "2026-09-01",
		Description: "Opening balances",
		Lines: []JournalLineRequest{
			{AccountCode: "110", Debit: decimal.NewFromInt(500)},
			{AccountCode: "310", Credit: decimal.NewFromInt(500), Memo: "capital"},
		},
	}

	entry, err := req.ToDomain(time.UTC)
	if err != nil {
		t.Fatalf("ToDomain failed: %v", err)
	}

	want := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if !entry.Date.Equal(want) {
		t.Fatalf("date = %v, want %v", entry.Date, want)
	}
	if entry.Description != "Opening balances" || len(entry.Lines) != 2 {
		t.Fatalf("entry not mapped: %+v", entry)
	}
	if entry.Lines[1].Memo != "capital" {
		t.Fatalf("memo not forwarded: %+v", entry.Lines[1])
	}
}

func TestValidateEntryRequest_ToDomain_ReportingZone(t *testing.T) {
	caracas := time.FixedZone("VET", -4*60*60)

	req := ValidateEntryRequest{Date: "2026-09-01"}
	entry, err := req.ToDomain(caracas)
	if err != nil {
		t.Fatalf("ToDomain failed: %v", err)
	}

	// Midnight in the reporting zone, not UTC midnight.
	if entry.Date.Hour() != 0 || entry.Date.Location() != caracas {
		t.Fatalf("date not anchored in reporting zone: %v", entry.Date)
	}
	if entry.Date.UTC().Day() != 1 || entry.Date.UTC().Hour() != 4 {
		t.Fatalf("unexpected instant: %v", entry.Date.UTC())
	}
}

func TestValidateEntryRequest_ToDomain_EmptyDate(t *testing.T) {
	req := ValidateEntryRequest{Description: "no date yet"}

	entry, err := req.ToDomain(time.UTC)
	if err != nil {
		t.Fatalf("ToDomain failed: %v", err)
	}
	if !entry.Date.IsZero() {
		t.Fatalf("expected zero date, got %v", entry.Date)
	}
}

func TestValidateEntryRequest_ToDomain_MalformedDate(t *testing.T) {
	for _, date := range []string{"01/09/2026", "2026-9-1", "yesterday"} {
		req := ValidateEntryRequest{Date: date}
		if _, err := req.ToDomain(time.UTC); err == nil {
			t.Errorf("expected error for date %q", date)
		}
	}
}
