package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestChart_Audit(t *testing.T) {
	accounts := []Account{
		{ID: "1", Code: "100", Name: "Assets", Type: TypeAsset, Active: true},
		{ID: "2", Code: "110", Name: "Cash", Type: TypeAsset, Active: true, ParentCode: "100"},
		{ID: "3", Code: "120", Name: "Orphan", Type: TypeAsset, Active: true, ParentCode: "190"},
		{ID: "4", Code: "111", Name: "Petty cash", Type: TypeAsset, Imputable: true, Active: true, ParentCode: "110"},
		{ID: "5", Code: "112", Name: "Child of leaf", Type: TypeAsset, Active: true, ParentCode: "111"},
		{ID: "6", Code: "510", Name: "Mistyped", Type: TypeIncome, Active: true},
	}

	findings := NewChart(accounts).Audit()

	byRule := make(map[Rule]int)
	for _, f := range findings {
		byRule[f.Rule]++
	}
	if byRule[RuleDanglingParent] != 1 {
		t.Errorf("dangling parent findings = %d, want 1", byRule[RuleDanglingParent])
	}
	if byRule[RuleParentImputable] != 1 {
		t.Errorf("imputable parent findings = %d, want 1", byRule[RuleParentImputable])
	}
	if byRule[RuleTypePrefixMismatch] != 1 {
		t.Errorf("type prefix findings = %d, want 1", byRule[RuleTypePrefixMismatch])
	}
	if len(findings) != 3 {
		t.Fatalf("total findings = %d, want 3: %v", len(findings), findings)
	}
}

func TestChart_Audit_CleanChart(t *testing.T) {
	accounts := []Account{
		{ID: "1", Code: "100", Name: "Assets", Type: TypeAsset, Active: true},
		{ID: "2", Code: "110", Name: "Cash", Type: TypeAsset, Imputable: true, Active: true, ParentCode: "100"},
	}
	if findings := NewChart(accounts).Audit(); len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", findings)
	}
}

func TestChart_Tree(t *testing.T) {
	accounts := []Account{
		{ID: "1", Code: "200", Name: "Liabilities", Type: TypeLiability, Active: true},
		{ID: "2", Code: "100", Name: "Assets", Type: TypeAsset, Active: true},
		{ID: "3", Code: "120", Name: "Banks", Type: TypeAsset, Active: true, ParentCode: "100"},
		{ID: "4", Code: "110", Name: "Cash", Type: TypeAsset, Active: true, ParentCode: "100"},
		{ID: "5", Code: "111", Name: "Petty cash", Type: TypeAsset, Imputable: true, Active: true, ParentCode: "110"},
		{ID: "6", Code: "130", Name: "Closed", Type: TypeAsset, Active: false, ParentCode: "100"},
	}

	roots := NewChart(accounts).Tree()

	if len(roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(roots))
	}
	if roots[0].Account.Code != "100" || roots[1].Account.Code != "200" {
		t.Fatalf("root order = %s, %s", roots[0].Account.Code, roots[1].Account.Code)
	}

	assets := roots[0]
	if len(assets.Children) != 2 {
		t.Fatalf("asset children = %d, want 2 (inactive excluded)", len(assets.Children))
	}
	if assets.Children[0].Account.Code != "110" || assets.Children[1].Account.Code != "120" {
		t.Fatalf("child order = %s, %s", assets.Children[0].Account.Code, assets.Children[1].Account.Code)
	}
	if len(assets.Children[0].Children) != 1 || assets.Children[0].Children[0].Account.Code != "111" {
		t.Fatalf("grandchildren wrong: %+v", assets.Children[0].Children)
	}
}

func TestChart_Tree_DanglingParentBecomesRoot(t *testing.T) {
	accounts := []Account{
		{ID: "1", Code: "120", Name: "Orphan", Type: TypeAsset, Active: true, ParentCode: "190"},
	}
	roots := NewChart(accounts).Tree()
	if len(roots) != 1 || roots[0].Account.Code != "120" {
		t.Fatalf("expected orphan as root, got %+v", roots)
	}
}

func TestChart_BalanceReport(t *testing.T) {
	accounts := []Account{
		{ID: "1", Code: "100", Name: "Assets", Type: TypeAsset, Active: true, Balance: decimal.NewFromInt(999)},
		{ID: "2", Code: "111", Name: "Cash", Type: TypeAsset, Imputable: true, Active: true, Balance: decimal.NewFromInt(150)},
		{ID: "3", Code: "112", Name: "Bank", Type: TypeAsset, Imputable: true, Active: true, Balance: decimal.NewFromInt(50)},
		{ID: "4", Code: "211", Name: "Payables", Type: TypeLiability, Imputable: true, Active: true, Balance: decimal.NewFromInt(120)},
		{ID: "5", Code: "311", Name: "Capital", Type: TypeEquity, Imputable: true, Active: true, Balance: decimal.NewFromInt(60)},
		{ID: "6", Code: "411", Name: "Sales", Type: TypeIncome, Imputable: true, Active: true, Balance: decimal.NewFromInt(30)},
		{ID: "7", Code: "511", Name: "Rent", Type: TypeExpense, Imputable: true, Active: true, Balance: decimal.NewFromInt(10)},
	}

	r := NewChart(accounts).BalanceReport()

	if !r.Assets.Equal(decimal.NewFromInt(200)) {
		t.Errorf("assets = %s, want 200 (structural accounts excluded)", r.Assets)
	}
	if !r.Liabilities.Equal(decimal.NewFromInt(120)) {
		t.Errorf("liabilities = %s, want 120", r.Liabilities)
	}
	if !r.Equity.Equal(decimal.NewFromInt(60)) {
		t.Errorf("equity = %s, want 60", r.Equity)
	}
	if !r.Income.Equal(decimal.NewFromInt(30)) {
		t.Errorf("income = %s, want 30", r.Income)
	}
	if !r.Expense.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expense = %s, want 10", r.Expense)
	}
	if !r.General.Equal(decimal.NewFromInt(20)) {
		t.Errorf("general = %s, want 20", r.General)
	}
}

func TestChart_Lookup(t *testing.T) {
	chart := NewChart([]Account{{ID: "1", Code: "110", Name: "Cash", Type: TypeAsset, Active: true}})

	if a, ok := chart.Lookup("110"); !ok || a.ID != "1" {
		t.Fatalf("Lookup(110) = (%v, %v)", a, ok)
	}
	if _, ok := chart.Lookup("999"); ok {
		t.Fatal("Lookup(999) should miss")
	}
}
