package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinEntryLines is the smallest number of lines a balanced entry can carry.
const MinEntryLines = 2

// JournalLine is one side of a double-entry posting. At most one of Debit
// and Credit may be nonzero.
type JournalLine struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Memo        string
}

// JournalEntry is one balanced accounting transaction proposed by a caller.
// The zero Date means "not supplied"; only the calendar date is meaningful.
type JournalEntry struct {
	Date        time.Time
	Description string
	Lines       []JournalLine
}

// Totals returns the debit and credit sums across lines.
func (e *JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// ValidateLine enforces the per-line data-model invariants: amounts are
// non-negative and at most one side is set. index is the 1-based position
// reported back to the caller. The entry validator does not repeat these
// checks; input surfaces run them while lines are being composed.
func ValidateLine(line JournalLine, index int) *Violation {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		v := violationf(RuleNegativeAmount, "line %d: amounts must not be negative", index)
		v.Lines = []int{index}
		return v
	}
	if line.Debit.IsPositive() && line.Credit.IsPositive() {
		v := violationf(RuleBothSidesSet, "line %d: debit and credit are mutually exclusive", index)
		v.Lines = []int{index}
		return v
	}
	return nil
}

// JournalTotals sums debit and credit across a set of entries, for the
// journal book report.
func JournalTotals(entries []JournalEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for i := range entries {
		d, c := entries[i].Totals()
		debit = debit.Add(d)
		credit = credit.Add(c)
	}
	return debit, credit
}
