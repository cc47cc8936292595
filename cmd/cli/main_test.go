package main

import (
	"testing"

	"github.com/ledgerguard/ledgerguard/internal/adapter/http/dto"
)

func TestFormatViolation(t *testing.T) {
	if got := formatViolation(nil); got != "INVALID" {
		t.Fatalf("expected bare INVALID for nil violation, got %q", got)
	}

	got := formatViolation(&dto.ViolationResponse{
		Rule:    "DUPLICATE_CODE",
		Message: "code 110 already belongs to account \"Cash\"",
	})
	want := `INVALID [DUPLICATE_CODE] code 110 already belongs to account "Cash"`
	if got != want {
		t.Fatalf("formatViolation = %q, want %q", got, want)
	}

	got = formatViolation(&dto.ViolationResponse{
		Rule:    "INVALID_ACCOUNT_REFERENCE",
		Message: "lines reference unknown or non-postable accounts",
		Lines:   []int{1, 3},
	})
	if got != "INVALID [INVALID_ACCOUNT_REFERENCE] lines reference unknown or non-postable accounts (lines [1 3])" {
		t.Fatalf("unexpected formatting with lines: %q", got)
	}
}
