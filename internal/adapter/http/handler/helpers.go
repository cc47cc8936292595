package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/dto"
	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeVerdict writes a validation outcome. Violations are verdicts, not
// transport errors, so both shapes ride on a 200.
func writeVerdict(w http.ResponseWriter, v *domain.Violation) {
	writeJSON(w, http.StatusOK, dto.VerdictFromDomain(v))
}

// mapError maps use case errors to HTTP status codes. Snapshot failures are
// upstream faults, not client errors.
func mapError(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownAccountType):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnknownAccount):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
