package domain

import "fmt"

// Rule identifies a validation rule that a candidate failed.
type Rule string

// Hierarchy engine rules.
const (
	RuleDuplicateCode            Rule = "DUPLICATE_CODE"
	RuleCodeTooLong              Rule = "CODE_TOO_LONG"
	RuleTypePrefixMismatch       Rule = "TYPE_PREFIX_MISMATCH"
	RuleParentPrefixMismatch     Rule = "PARENT_PREFIX_MISMATCH"
	RuleOutOfParentRange         Rule = "OUT_OF_PARENT_RANGE"
	RuleNotMultipleOfTen         Rule = "NOT_MULTIPLE_OF_TEN"
	RuleMustBeMultipleOfTen      Rule = "MUST_BE_MULTIPLE_OF_TEN"
	RuleCodeNotGreaterThanParent Rule = "CODE_NOT_GREATER_THAN_PARENT"
	RuleParentIsLevelThree       Rule = "PARENT_IS_LEVEL_THREE"
)

// Journal validator rules.
const (
	RuleMissingDate             Rule = "MISSING_DATE"
	RuleFutureDate              Rule = "FUTURE_DATE"
	RuleDateBeforeLastEntry     Rule = "DATE_BEFORE_LAST_ENTRY"
	RuleMissingDescription      Rule = "MISSING_DESCRIPTION"
	RuleInsufficientLines       Rule = "INSUFFICIENT_LINES"
	RuleInvalidAccountReference Rule = "INVALID_ACCOUNT_REFERENCE"
	RuleUnbalanced              Rule = "UNBALANCED"
	RuleZeroTotal               Rule = "ZERO_TOTAL"
)

// Line-level data-model rules.
const (
	RuleNegativeAmount Rule = "NEGATIVE_AMOUNT"
	RuleBothSidesSet   Rule = "BOTH_SIDES_SET"
)

// Chart audit rules.
const (
	RuleDanglingParent  Rule = "DANGLING_PARENT"
	RuleParentImputable Rule = "PARENT_IMPUTABLE"
)

// Violation is a structured rejection reason. It is always returned as a
// value, never raised; the presentation layer owns message rendering and
// localization, so Message is a plain diagnostic string while the typed
// fields carry the data needed to render a user-facing message.
type Violation struct {
	Rule    Rule
	Message string

	// ExpectedPrefix is set on prefix-mismatch rules.
	ExpectedPrefix string
	// RangeMin/RangeMax bound the allowed numeric codes on range rules.
	RangeMin int
	RangeMax int
	// ConflictID/ConflictName identify the account holding a duplicate code.
	ConflictID   string
	ConflictName string
	// Lines are 1-based line numbers on line-scoped journal rules.
	Lines []int
}

// Error makes Violation usable as an error value.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Message)
}

func violationf(rule Rule, format string, args ...any) *Violation {
	return &Violation{Rule: rule, Message: fmt.Sprintf(format, args...)}
}
