package mocks

import (
	"context"
	"time"

	"github.com/ledgerguard/ledgerguard/internal/domain"
)

// MockSource is a func-field mock implementation of usecase.SnapshotSource.
// Unset funcs fall back to the fixture data.
type MockSource struct {
	Snapshot []domain.Account
	LastDate time.Time
	Entries  []domain.JournalEntry

	AccountsFunc       func(ctx context.Context) ([]domain.Account, error)
	LastEntryDateFunc  func(ctx context.Context) (time.Time, error)
	JournalEntriesFunc func(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error)
}

func NewMockSource(accounts []domain.Account) *MockSource {
	return &MockSource{Snapshot: accounts}
}

func (m *MockSource) Accounts(ctx context.Context) ([]domain.Account, error) {
	if m.AccountsFunc != nil {
		return m.AccountsFunc(ctx)
	}
	return m.Snapshot, nil
}

func (m *MockSource) LastEntryDate(ctx context.Context) (time.Time, error) {
	if m.LastEntryDateFunc != nil {
		return m.LastEntryDateFunc(ctx)
	}
	return m.LastDate, nil
}

func (m *MockSource) JournalEntries(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	if m.JournalEntriesFunc != nil {
		return m.JournalEntriesFunc(ctx, from, to)
	}
	return m.Entries, nil
}

// FixedClock is a Clock pinned to a single instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}
