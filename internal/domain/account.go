package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account within the chart of accounts.
type AccountType string

const (
	TypeAsset     AccountType = "ASSET"
	TypeLiability AccountType = "LIABILITY"
	TypeEquity    AccountType = "EQUITY"
	TypeIncome    AccountType = "INCOME"
	TypeExpense   AccountType = "EXPENSE"
)

// BalanceNature is the side on which an account normally increases.
type BalanceNature string

const (
	NatureDebit  BalanceNature = "DEBIT"
	NatureCredit BalanceNature = "CREDIT"
)

// ErrUnknownAccountType reports a type outside the closed enumeration.
var ErrUnknownAccountType = fmt.Errorf("unknown account type")

// typeTable is the single shared mapping from account type to code prefix
// digit and balance nature, consumed by both the hierarchy engine and the
// journal validator.
var typeTable = map[AccountType]struct {
	prefix byte
	nature BalanceNature
}{
	TypeAsset:     {'1', NatureDebit},
	TypeLiability: {'2', NatureCredit},
	TypeEquity:    {'3', NatureCredit},
	TypeIncome:    {'4', NatureCredit},
	TypeExpense:   {'5', NatureDebit},
}

// ParseAccountType normalizes a raw type string. The legacy synonym
// REVENUE maps to INCOME.
func ParseAccountType(raw string) (AccountType, error) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(raw)))
	if t == "REVENUE" {
		t = TypeIncome
	}
	if _, ok := typeTable[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, raw)
	}
	return t, nil
}

// Valid reports whether t is one of the five known types.
func (t AccountType) Valid() bool {
	_, ok := typeTable[t]
	return ok
}

// PrefixDigit returns the single digit every code of this type starts with.
func (t AccountType) PrefixDigit() byte {
	return typeTable[t].prefix
}

// Nature returns the balance nature derived from the type.
func (t AccountType) Nature() BalanceNature {
	return typeTable[t].nature
}

// Account is one node in the chart of accounts.
type Account struct {
	ID         string
	Code       string
	Name       string
	Type       AccountType
	Imputable  bool
	Active     bool
	ParentCode string
	Balance    decimal.Decimal
}

// Nature returns the account's balance nature, derived from its type.
func (a *Account) Nature() BalanceNature {
	return a.Type.Nature()
}

// Postable reports whether journal lines may post to this account.
func (a *Account) Postable() bool {
	return a.Active && a.Imputable
}
