package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerMovement is one posting against a single account, with the running
// balance after applying it. The balance accumulates debit minus credit.
type LedgerMovement struct {
	Date        time.Time
	Description string
	Memo        string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// LedgerFor extracts the movements touching accountCode from entries, in
// input order, seeding the running balance with opening. It also returns
// the movement totals for the window. Entries that never post to the
// account contribute nothing.
func LedgerFor(accountCode string, entries []JournalEntry, opening decimal.Decimal) (movements []LedgerMovement, debits, credits decimal.Decimal) {
	balance := opening
	debits, credits = decimal.Zero, decimal.Zero

	for _, e := range entries {
		for _, l := range e.Lines {
			if l.AccountCode != accountCode {
				continue
			}

			debits = debits.Add(l.Debit)
			credits = credits.Add(l.Credit)
			balance = balance.Add(l.Debit).Sub(l.Credit)

			movements = append(movements, LedgerMovement{
				Date:        e.Date,
				Description: e.Description,
				Memo:        l.Memo,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Balance:     balance,
			})
		}
	}
	return movements, debits, credits
}
