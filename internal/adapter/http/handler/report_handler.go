package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/dto"
	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	Tree(ctx context.Context) ([]*domain.TreeNode, error)
	Balance(ctx context.Context) (domain.BalanceReport, error)
	Audit(ctx context.Context) ([]domain.Violation, error)
	Journal(ctx context.Context, from, to time.Time) (*usecase.JournalReport, error)
	Ledger(ctx context.Context, accountCode string, from, to time.Time) (*usecase.LedgerReport, error)
}

// ReportHandler serves the read-only chart and journal views.
type ReportHandler struct {
	reports ReportService
	loc     *time.Location
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports ReportService, loc *time.Location) *ReportHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportHandler{reports: reports, loc: loc}
}

// Tree returns the active account hierarchy.
func (h *ReportHandler) Tree(w http.ResponseWriter, r *http.Request) {
	nodes, err := h.reports.Tree(r.Context())
	if err != nil {
		writeError(w, mapError(err), "failed to build account tree", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.TreeFromDomain(nodes))
}

// Balance returns per-type totals over imputable accounts.
func (h *ReportHandler) Balance(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Balance(r.Context())
	if err != nil {
		writeError(w, mapError(err), "failed to build balance report", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(report))
}

// Audit returns chart-wide structural findings.
func (h *ReportHandler) Audit(w http.ResponseWriter, r *http.Request) {
	findings, err := h.reports.Audit(r.Context())
	if err != nil {
		writeError(w, mapError(err), "failed to audit chart", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.AuditFromDomain(findings))
}

// Journal returns the journal book between the from and to query dates,
// defaulting to the current month in the reporting timezone.
func (h *ReportHandler) Journal(w http.ResponseWriter, r *http.Request) {
	from, to, err := h.parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	report, err := h.reports.Journal(r.Context(), from, to)
	if err != nil {
		writeError(w, mapError(err), "failed to build journal report", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.JournalReportFromDomain(report, h.loc))
}

// Ledger returns a single account's movements between the from and to query
// dates, with opening and closing balances.
func (h *ReportHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	accountCode := r.URL.Query().Get("account")
	if accountCode == "" {
		writeError(w, http.StatusBadRequest, "missing account parameter", "the account query parameter is required")
		return
	}

	from, to, err := h.parseRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date range", err.Error())
		return
	}

	report, err := h.reports.Ledger(r.Context(), accountCode, from, to)
	if err != nil {
		writeError(w, mapError(err), "failed to build ledger report", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.LedgerReportFromDomain(report, h.loc))
}

func (h *ReportHandler) parseRange(r *http.Request) (from, to time.Time, err error) {
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		from, err = time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if raw := q.Get("to"); raw != "" {
		to, err = time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if from.IsZero() || to.IsZero() {
		now := time.Now().In(h.loc)
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.loc)
		last := first.AddDate(0, 1, -1)
		if from.IsZero() {
			from = first
		}
		if to.IsZero() {
			to = last
		}
	}
	return from, to, nil
}
