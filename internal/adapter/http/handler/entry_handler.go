package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/dto"
	"github.com/ledgerguard/ledgerguard/internal/domain"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	ValidateEntry(ctx context.Context, entry domain.JournalEntry) (*domain.Violation, error)
}

// EntryHandler handles journal-entry HTTP requests.
type EntryHandler struct {
	entries EntryService
	loc     *time.Location
}

// NewEntryHandler creates a new EntryHandler. loc is the reporting timezone
// used to interpret wire dates.
func NewEntryHandler(entries EntryService, loc *time.Location) *EntryHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &EntryHandler{entries: entries, loc: loc}
}

// Validate returns a verdict on a proposed journal entry. Per-line
// data-model checks run first so a malformed line is reported before the
// entry-level rules see it.
func (h *EntryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := req.ToDomain(h.loc)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid entry", err.Error())
		return
	}

	for i, l := range entry.Lines {
		if v := domain.ValidateLine(l, i+1); v != nil {
			writeVerdict(w, v)
			return
		}
	}

	v, err := h.entries.ValidateEntry(r.Context(), entry)
	if err != nil {
		writeError(w, mapError(err), "failed to validate entry", err.Error())
		return
	}

	writeVerdict(w, v)
}
