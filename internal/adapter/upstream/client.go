package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerguard/ledgerguard/internal/domain"
)

// dateLayout is the calendar-date format used by the accounting API.
const dateLayout = "2006-01-02"

// Config holds upstream client settings.
type Config struct {
	BaseURL              string
	Timeout              time.Duration
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMaxElapsedTime  time.Duration
}

// Client implements usecase.SnapshotSource against the backing accounting
// API. Transient failures (network errors, 5xx) are retried with
// exponential backoff; 4xx responses are permanent.
type Client struct {
	cfg    Config
	http   *http.Client
	loc    *time.Location
	logger zerolog.Logger
}

// NewClient creates a new Client. loc is the reporting timezone used to
// interpret calendar dates in API payloads; nil means UTC.
func NewClient(cfg Config, loc *time.Location, logger zerolog.Logger) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		loc:    loc,
		logger: logger,
	}
}

type accountPayload struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	Imputable  bool            `json:"imputable"`
	Active     bool            `json:"active"`
	ParentCode string          `json:"parent_code"`
	Balance    decimal.Decimal `json:"balance"`
}

// Accounts fetches the full chart of accounts.
func (c *Client) Accounts(ctx context.Context) ([]domain.Account, error) {
	var payload []accountPayload
	if err := c.getJSON(ctx, "/api/v1/accounts", &payload); err != nil {
		return nil, err
	}

	accounts := make([]domain.Account, 0, len(payload))
	for _, p := range payload {
		typ, err := domain.ParseAccountType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", p.Code, err)
		}
		accounts = append(accounts, domain.Account{
			ID:         p.ID,
			Code:       p.Code,
			Name:       p.Name,
			Type:       typ,
			Imputable:  p.Imputable,
			Active:     p.Active,
			ParentCode: p.ParentCode,
			Balance:    p.Balance,
		})
	}
	return accounts, nil
}

// LastEntryDate fetches the date of the most recent journal entry. The zero
// time means the ledger is empty.
func (c *Client) LastEntryDate(ctx context.Context) (time.Time, error) {
	var payload struct {
		Date string `json:"date"`
	}
	if err := c.getJSON(ctx, "/api/v1/journal-entries/last-date", &payload); err != nil {
		return time.Time{}, err
	}
	if payload.Date == "" {
		return time.Time{}, nil
	}

	d, err := time.ParseInLocation(dateLayout, payload.Date, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing last entry date %q: %w", payload.Date, err)
	}
	return d, nil
}

type entryPayload struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Lines       []struct {
		AccountCode string          `json:"account_code"`
		Debit       decimal.Decimal `json:"debit"`
		Credit      decimal.Decimal `json:"credit"`
		Memo        string          `json:"memo"`
	} `json:"lines"`
}

// JournalEntries fetches the entries within [from, to].
func (c *Client) JournalEntries(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	q := url.Values{}
	q.Set("from", from.In(c.loc).Format(dateLayout))
	q.Set("to", to.In(c.loc).Format(dateLayout))

	var payload []entryPayload
	if err := c.getJSON(ctx, "/api/v1/journal-entries?"+q.Encode(), &payload); err != nil {
		return nil, err
	}

	entries := make([]domain.JournalEntry, 0, len(payload))
	for _, p := range payload {
		d, err := time.ParseInLocation(dateLayout, p.Date, c.loc)
		if err != nil {
			return nil, fmt.Errorf("parsing entry date %q: %w", p.Date, err)
		}
		entry := domain.JournalEntry{
			Date:        d,
			Description: p.Description,
			Lines:       make([]domain.JournalLine, len(p.Lines)),
		}
		for i, l := range p.Lines {
			entry.Lines[i] = domain.JournalLine{
				AccountCode: l.AccountCode,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Memo:        l.Memo,
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Ping checks that the accounting API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("accounting API unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// getJSON performs a GET with retry and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	b := backoff.NewExponentialBackOff()
	if c.cfg.RetryInitialInterval > 0 {
		b.InitialInterval = c.cfg.RetryInitialInterval
	}
	if c.cfg.RetryMaxInterval > 0 {
		b.MaxInterval = c.cfg.RetryMaxInterval
	}
	b.MaxElapsedTime = c.cfg.RetryMaxElapsedTime

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("upstream request failed, retrying")
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode >= 500:
			c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("upstream error, retrying")
			return fmt.Errorf("upstream returned status %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, body))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding upstream response: %w", err))
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(b, ctx))
}
