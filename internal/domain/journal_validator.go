package domain

import (
	"strings"
	"time"
)

// ValidateEntry decides whether a proposed journal entry may be submitted.
// Checks run in a fixed order and stop at the first failure: date present,
// date not after today, date not before the last recorded entry, description
// non-empty, at least two lines, every line posted to an active imputable
// account, and debit/credit sums equal to the cent with a strictly positive
// total.
//
// All date comparisons reduce to calendar dates in loc, the fixed reporting
// timezone (nil means UTC). lastEntryDate's zero value means the ledger has
// no entries yet.
func ValidateEntry(entry JournalEntry, accounts []Account, lastEntryDate, today time.Time, loc *time.Location) *Violation {
	if loc == nil {
		loc = time.UTC
	}

	if entry.Date.IsZero() {
		return violationf(RuleMissingDate, "entry date is required")
	}

	entryDay := civilDate(entry.Date, loc)
	if entryDay > civilDate(today, loc) {
		return violationf(RuleFutureDate, "entry date %s is in the future", entry.Date.In(loc).Format("2006-01-02"))
	}

	if !lastEntryDate.IsZero() && entryDay < civilDate(lastEntryDate, loc) {
		return violationf(RuleDateBeforeLastEntry, "entry date %s is before the last recorded entry (%s)",
			entry.Date.In(loc).Format("2006-01-02"), lastEntryDate.In(loc).Format("2006-01-02"))
	}

	if strings.TrimSpace(entry.Description) == "" {
		return violationf(RuleMissingDescription, "entry description is required")
	}

	if len(entry.Lines) < MinEntryLines {
		return violationf(RuleInsufficientLines, "entry needs at least %d lines, got %d", MinEntryLines, len(entry.Lines))
	}

	if v := checkReferences(entry.Lines, accounts); v != nil {
		return v
	}

	debit, credit := entry.Totals()
	if !debit.Round(2).Equal(credit.Round(2)) {
		return violationf(RuleUnbalanced, "debits (%s) do not equal credits (%s)",
			debit.StringFixed(2), credit.StringFixed(2))
	}
	if !debit.Round(2).IsPositive() {
		return violationf(RuleZeroTotal, "entry total must be greater than zero")
	}

	return nil
}

// checkReferences collects every line whose account is missing, inactive or
// non-imputable into a single referential violation.
func checkReferences(lines []JournalLine, accounts []Account) *Violation {
	byCode := make(map[string]*Account, len(accounts))
	for i := range accounts {
		byCode[accounts[i].Code] = &accounts[i]
	}

	var bad []int
	var codes []string
	for i, l := range lines {
		a, ok := byCode[l.AccountCode]
		if !ok || !a.Postable() {
			bad = append(bad, i+1)
			codes = append(codes, l.AccountCode)
		}
	}
	if len(bad) == 0 {
		return nil
	}

	v := violationf(RuleInvalidAccountReference, "lines reference accounts that are not active imputable accounts: %s",
		strings.Join(codes, ", "))
	v.Lines = bad
	return v
}

// civilDate collapses an instant to a comparable calendar-day ordinal in loc.
func civilDate(t time.Time, loc *time.Location) int {
	y, m, d := t.In(loc).Date()
	return y*10000 + int(m)*100 + d
}
