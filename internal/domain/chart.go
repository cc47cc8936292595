package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Chart is a read-only index over an account snapshot.
type Chart struct {
	accounts []Account
	byCode   map[string]*Account
}

// NewChart indexes a snapshot. The snapshot is not copied; callers must not
// mutate it while the chart is in use.
func NewChart(accounts []Account) *Chart {
	c := &Chart{
		accounts: accounts,
		byCode:   make(map[string]*Account, len(accounts)),
	}
	for i := range accounts {
		c.byCode[accounts[i].Code] = &accounts[i]
	}
	return c
}

// Lookup resolves a code to its account.
func (c *Chart) Lookup(code string) (*Account, bool) {
	a, ok := c.byCode[code]
	return a, ok
}

// Accounts returns the underlying snapshot.
func (c *Chart) Accounts() []Account {
	return c.accounts
}

// Audit sweeps the whole chart for structural findings: parent references
// that resolve to nothing, children hanging off imputable accounts, and
// codes whose leading digit disagrees with the account type.
func (c *Chart) Audit() []Violation {
	var findings []Violation
	for i := range c.accounts {
		a := &c.accounts[i]

		if a.ParentCode != "" {
			parent, ok := c.byCode[a.ParentCode]
			switch {
			case !ok:
				v := violationf(RuleDanglingParent, "account %s references missing parent %s", a.Code, a.ParentCode)
				v.ConflictID = a.ID
				findings = append(findings, *v)
			case parent.Imputable:
				v := violationf(RuleParentImputable, "account %s is a child of imputable account %s", a.Code, a.ParentCode)
				v.ConflictID = a.ID
				findings = append(findings, *v)
			}
		}

		if a.Type.Valid() && len(a.Code) > 0 && a.Code[0] != a.Type.PrefixDigit() {
			v := violationf(RuleTypePrefixMismatch, "account %s has type %s but does not start with %c",
				a.Code, a.Type, a.Type.PrefixDigit())
			v.ConflictID = a.ID
			v.ExpectedPrefix = string(a.Type.PrefixDigit())
			findings = append(findings, *v)
		}
	}
	return findings
}

// TreeNode is one account with its resolved children.
type TreeNode struct {
	Account  Account
	Children []*TreeNode
}

// Tree arranges active accounts into their parent/child hierarchy, ordered
// by code at every level. Accounts with a dangling parent surface as roots
// so the view never loses them.
func (c *Chart) Tree() []*TreeNode {
	nodes := make(map[string]*TreeNode, len(c.accounts))
	for i := range c.accounts {
		a := c.accounts[i]
		if !a.Active {
			continue
		}
		nodes[a.Code] = &TreeNode{Account: a}
	}

	var roots []*TreeNode
	for _, n := range nodes {
		if parent, ok := nodes[n.Account.ParentCode]; ok && n.Account.ParentCode != n.Account.Code {
			parent.Children = append(parent.Children, n)
		} else {
			roots = append(roots, n)
		}
	}

	var sortNodes func([]*TreeNode)
	sortNodes = func(ns []*TreeNode) {
		sort.Slice(ns, func(i, j int) bool { return ns[i].Account.Code < ns[j].Account.Code })
		for _, n := range ns {
			sortNodes(n.Children)
		}
	}
	sortNodes(roots)

	return roots
}

// BalanceReport aggregates imputable account balances per type.
type BalanceReport struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
	Income      decimal.Decimal
	Expense     decimal.Decimal
	// General is assets minus liabilities and equity.
	General decimal.Decimal
}

// BalanceReport sums the balances of imputable accounts by type.
func (c *Chart) BalanceReport() BalanceReport {
	r := BalanceReport{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		Equity:      decimal.Zero,
		Income:      decimal.Zero,
		Expense:     decimal.Zero,
	}
	for i := range c.accounts {
		a := &c.accounts[i]
		if !a.Imputable {
			continue
		}
		switch a.Type {
		case TypeAsset:
			r.Assets = r.Assets.Add(a.Balance)
		case TypeLiability:
			r.Liabilities = r.Liabilities.Add(a.Balance)
		case TypeEquity:
			r.Equity = r.Equity.Add(a.Balance)
		case TypeIncome:
			r.Income = r.Income.Add(a.Balance)
		case TypeExpense:
			r.Expense = r.Expense.Add(a.Balance)
		}
	}
	r.General = r.Assets.Sub(r.Liabilities.Add(r.Equity))
	return r
}
