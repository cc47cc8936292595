package domain

import (
	"errors"
	"testing"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    AccountType
		wantErr bool
	}{
		{name: "asset", raw: "ASSET", want: TypeAsset},
		{name: "lowercase", raw: "expense", want: TypeExpense},
		{name: "whitespace", raw: "  EQUITY ", want: TypeEquity},
		{name: "legacy revenue normalizes to income", raw: "REVENUE", want: TypeIncome},
		{name: "unknown", raw: "GOODWILL", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAccountType(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownAccountType) {
					t.Fatalf("expected ErrUnknownAccountType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseAccountType(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAccountType_Mapping(t *testing.T) {
	tests := []struct {
		typ    AccountType
		prefix byte
		nature BalanceNature
	}{
		{TypeAsset, '1', NatureDebit},
		{TypeLiability, '2', NatureCredit},
		{TypeEquity, '3', NatureCredit},
		{TypeIncome, '4', NatureCredit},
		{TypeExpense, '5', NatureDebit},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.PrefixDigit(); got != tt.prefix {
				t.Errorf("PrefixDigit() = %c, want %c", got, tt.prefix)
			}
			if got := tt.typ.Nature(); got != tt.nature {
				t.Errorf("Nature() = %s, want %s", got, tt.nature)
			}
		})
	}
}

func TestAccount_Postable(t *testing.T) {
	tests := []struct {
		name      string
		imputable bool
		active    bool
		want      bool
	}{
		{name: "active imputable", imputable: true, active: true, want: true},
		{name: "inactive", imputable: true, active: false, want: false},
		{name: "structural", imputable: false, active: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Account{Code: "110", Type: TypeAsset, Imputable: tt.imputable, Active: tt.active}
			if got := a.Postable(); got != tt.want {
				t.Fatalf("Postable() = %v, want %v", got, tt.want)
			}
		})
	}
}
