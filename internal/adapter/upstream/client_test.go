package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerguard/ledgerguard/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:              srv.URL,
		Timeout:              2 * time.Second,
		RetryInitialInterval: time.Millisecond,
		RetryMaxInterval:     5 * time.Millisecond,
		RetryMaxElapsedTime:  200 * time.Millisecond,
	}, time.UTC, zerolog.Nop())

	return client, srv
}

func TestClient_Accounts(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"a1","code":"100","name":"Assets","type":"ASSET","imputable":false,"active":true,"parent_code":"","balance":"0"},
			{"id":"a2","code":"110","name":"Cash","type":"ASSET","imputable":true,"active":true,"parent_code":"100","balance":"1500.25"}
		]`))
	}))

	accounts, err := client.Accounts(context.Background())
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[1].Type != domain.TypeAsset || !accounts[1].Imputable {
		t.Fatalf("account not mapped: %+v", accounts[1])
	}
	if accounts[1].Balance.String() != "1500.25" {
		t.Fatalf("balance = %s, want 1500.25", accounts[1].Balance)
	}
}

func TestClient_Accounts_RevenueNormalized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"i1","code":"400","name":"Revenue","type":"REVENUE","active":true,"balance":"0"}]`))
	}))

	accounts, err := client.Accounts(context.Background())
	if err != nil {
		t.Fatalf("Accounts failed: %v", err)
	}
	if accounts[0].Type != domain.TypeIncome {
		t.Fatalf("expected REVENUE to map to INCOME, got %v", accounts[0].Type)
	}
}

func TestClient_Accounts_RetriesServerErrors(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))

	accounts, err := client.Accounts(context.Background())
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if accounts == nil || calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestClient_Accounts_ClientErrorIsPermanent(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	if _, err := client.Accounts(context.Background()); err == nil {
		t.Fatal("expected an error for 404")
	}
	if calls != 1 {
		t.Fatalf("4xx should not be retried, got %d calls", calls)
	}
}

func TestClient_LastEntryDate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date":"2026-08-15"}`))
	}))

	d, err := client.LastEntryDate(context.Background())
	if err != nil {
		t.Fatalf("LastEntryDate failed: %v", err)
	}
	want := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Fatalf("date = %v, want %v", d, want)
	}
}

func TestClient_LastEntryDate_EmptyLedger(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date":""}`))
	}))

	d, err := client.LastEntryDate(context.Background())
	if err != nil {
		t.Fatalf("LastEntryDate failed: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("expected zero time for empty ledger, got %v", d)
	}
}

func TestClient_JournalEntries(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("from") != "2026-08-01" || q.Get("to") != "2026-08-31" {
			t.Errorf("unexpected range %s..%s", q.Get("from"), q.Get("to"))
		}
		w.Write([]byte(`[
			{"date":"2026-08-10","description":"August rent","lines":[
				{"account_code":"510","debit":"900","credit":"0"},
				{"account_code":"110","debit":"0","credit":"900"}
			]}
		]`))
	}))

	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	entries, err := client.JournalEntries(context.Background(), from, to)
	if err != nil {
		t.Fatalf("JournalEntries failed: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Lines) != 2 {
		t.Fatalf("unexpected entries: %+v", entries)
	}
	if entries[0].Description != "August rent" {
		t.Fatalf("description = %q", entries[0].Description)
	}
}

func TestClient_Ping(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}
