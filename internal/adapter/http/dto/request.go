package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// SuggestCodeRequest asks for a code proposal for a new account.
type SuggestCodeRequest struct {
	Type       string `json:"type"`
	ParentCode string `json:"parent_code,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SuggestCodeRequest) ToUseCaseInput() usecase.SuggestCodeInput {
	return usecase.SuggestCodeInput{
		Type:       r.Type,
		ParentCode: r.ParentCode,
	}
}

// ValidateCodeRequest asks for a verdict on a user-supplied code.
type ValidateCodeRequest struct {
	Code       string `json:"code"`
	Type       string `json:"type"`
	ParentCode string `json:"parent_code,omitempty"`
	ExcludeID  string `json:"exclude_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *ValidateCodeRequest) ToUseCaseInput() usecase.ValidateCodeInput {
	return usecase.ValidateCodeInput{
		Code:       r.Code,
		Type:       r.Type,
		ParentCode: r.ParentCode,
		ExcludeID:  r.ExcludeID,
	}
}

// JournalLineRequest is one line of a proposed entry.
type JournalLineRequest struct {
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo,omitempty"`
}

// ValidateEntryRequest asks for a verdict on a proposed journal entry.
type ValidateEntryRequest struct {
	Date        string               `json:"date"`
	Description string               `json:"description"`
	Lines       []JournalLineRequest `json:"lines"`
}

// ToDomain converts the request to a domain entry. The date is interpreted
// as a calendar day in loc, the reporting timezone. An empty date maps to
// the zero time so the validator reports MissingDate; a malformed date is a
// request error.
func (r *ValidateEntryRequest) ToDomain(loc *time.Location) (domain.JournalEntry, error) {
	if loc == nil {
		loc = time.UTC
	}
	entry := domain.JournalEntry{
		Description: r.Description,
		Lines:       make([]domain.JournalLine, len(r.Lines)),
	}

	if r.Date != "" {
		d, err := time.ParseInLocation(dateLayout, r.Date, loc)
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("invalid date %q: expected %s", r.Date, dateLayout)
		}
		entry.Date = d
	}

	for i, l := range r.Lines {
		entry.Lines[i] = domain.JournalLine{
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}
	return entry, nil
}
