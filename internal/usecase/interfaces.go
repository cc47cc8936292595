package usecase

import (
	"context"
	"time"

	"github.com/ledgerguard/ledgerguard/internal/domain"
)

// SnapshotSource provides the read-only state the validators consume: the
// current chart of accounts and the ledger's journal history. Implementations
// talk to the backing accounting API; a cache may sit in front.
type SnapshotSource interface {
	Accounts(ctx context.Context) ([]domain.Account, error)
	// LastEntryDate returns the zero time when the ledger has no entries.
	LastEntryDate(ctx context.Context) (time.Time, error)
	// JournalEntries returns entries within [from, to], inclusive. A zero
	// from means from the ledger's beginning.
	JournalEntries(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)
}

// Clock abstracts "now" so temporal rules stay testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
