package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/dto"
	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

// CodeService defines the behavior needed by AccountHandler.
type CodeService interface {
	SuggestCode(ctx context.Context, input usecase.SuggestCodeInput) (string, error)
	ValidateAccountCode(ctx context.Context, input usecase.ValidateCodeInput) (*domain.Violation, error)
}

// AccountHandler handles account-code HTTP requests.
type AccountHandler struct {
	codes CodeService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(codes CodeService) *AccountHandler {
	return &AccountHandler{codes: codes}
}

// SuggestCode proposes a code for a new account.
func (h *AccountHandler) SuggestCode(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	code, err := h.codes.SuggestCode(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapError(err), "failed to suggest code", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SuggestCodeResponse{Code: code})
}

// ValidateCode returns a verdict on a user-supplied code.
func (h *AccountHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	v, err := h.codes.ValidateAccountCode(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapError(err), "failed to validate code", err.Error())
		return
	}

	writeVerdict(w, v)
}
