package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/infrastructure/metrics"
)

// ValidationUseCase runs the hierarchy engine and the journal validator over
// the current snapshot. It holds no mutable state; every call fetches the
// snapshot and evaluates the pure domain rules against it.
type ValidationUseCase struct {
	snapshots SnapshotSource
	clock     Clock
	loc       *time.Location
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewValidationUseCase creates a new ValidationUseCase. loc is the fixed
// reporting timezone used for every date comparison; nil means UTC. m may be
// nil to disable metrics.
func NewValidationUseCase(snapshots SnapshotSource, clock Clock, loc *time.Location, m *metrics.Metrics, logger zerolog.Logger) *ValidationUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ValidationUseCase{
		snapshots: snapshots,
		clock:     clock,
		loc:       loc,
		metrics:   m,
		logger:    logger,
	}
}

// SuggestCodeInput carries the candidate account being composed.
type SuggestCodeInput struct {
	Type       string
	ParentCode string
}

// SuggestCode proposes a code for a new account. The suggestion is advisory
// and may collide in a full block; ValidateAccountCode is the authority.
func (uc *ValidationUseCase) SuggestCode(ctx context.Context, input SuggestCodeInput) (string, error) {
	typ, err := domain.ParseAccountType(input.Type)
	if err != nil {
		return "", err
	}

	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return "", fmt.Errorf("loading account snapshot: %w", err)
	}

	code := domain.SuggestCode(typ, input.ParentCode, accounts)
	if uc.metrics != nil {
		uc.metrics.SuggestionsIssued.Inc()
	}
	uc.logger.Debug().
		Str("type", string(typ)).
		Str("parent_code", input.ParentCode).
		Str("code", code).
		Msg("suggested account code")

	return code, nil
}

// ValidateCodeInput carries a user-supplied code to check.
type ValidateCodeInput struct {
	Code       string
	Type       string
	ParentCode string
	ExcludeID  string
}

// ValidateAccountCode checks a code against the hierarchy rules. A non-nil
// violation is a verdict, not an error; the error return covers snapshot and
// input faults only.
func (uc *ValidationUseCase) ValidateAccountCode(ctx context.Context, input ValidateCodeInput) (*domain.Violation, error) {
	typ, err := domain.ParseAccountType(input.Type)
	if err != nil {
		return nil, err
	}

	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account snapshot: %w", err)
	}

	v := domain.ValidateCode(input.Code, typ, input.ParentCode, accounts, input.ExcludeID)
	if uc.metrics != nil {
		uc.metrics.CodeValidations.WithLabelValues(outcome(v)).Inc()
		if v != nil {
			uc.metrics.ViolationsByRule.WithLabelValues(string(v.Rule)).Inc()
		}
	}
	return v, nil
}

// ValidateEntry checks a proposed journal entry against the structural,
// referential and temporal rules.
func (uc *ValidationUseCase) ValidateEntry(ctx context.Context, entry domain.JournalEntry) (*domain.Violation, error) {
	accounts, err := uc.snapshots.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading account snapshot: %w", err)
	}

	lastDate, err := uc.snapshots.LastEntryDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading last entry date: %w", err)
	}

	v := domain.ValidateEntry(entry, accounts, lastDate, uc.clock.Now(), uc.loc)
	if uc.metrics != nil {
		uc.metrics.EntryValidations.WithLabelValues(outcome(v)).Inc()
		if v != nil {
			uc.metrics.ViolationsByRule.WithLabelValues(string(v.Rule)).Inc()
		}
	}
	return v, nil
}

func outcome(v *domain.Violation) string {
	if v == nil {
		return metrics.OutcomeValid
	}
	return metrics.OutcomeInvalid
}
