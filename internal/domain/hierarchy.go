package domain

import "strconv"

// MaxCodeLength bounds account codes to 8 digits.
const MaxCodeLength = 8

// Level reports the structural depth of a numeric code value: multiples of
// 100 are level 1, other multiples of 10 are level 2, everything else is
// level 3. Level-3 accounts may never be parents.
func Level(value int) int {
	switch {
	case value%100 == 0:
		return 1
	case value%10 == 0:
		return 2
	default:
		return 3
	}
}

// SuggestCode proposes a code for a new account of the given type, optionally
// under parentCode. The suggestion is advisory: it never fails, and in a
// fully occupied block it returns a value that ValidateCode will reject as a
// duplicate. ValidateCode remains the single authority.
func SuggestCode(typ AccountType, parentCode string, accounts []Account) string {
	used := usedCodes(accounts)

	if parentCode != "" {
		if p, err := strconv.Atoi(parentCode); err == nil {
			return suggestChild(p, used)
		}
		// Unparseable parent codes fall through to the type-block scan.
	}

	d := typ.PrefixDigit()
	high := -1
	for _, a := range accounts {
		if len(a.Code) != 3 || a.Code[0] != d {
			continue
		}
		if v, err := strconv.Atoi(a.Code); err == nil && v > high {
			high = v
		}
	}
	if high < 0 {
		return string(d) + "00"
	}

	base := int(d-'0') * 100
	next := (high/10 + 1) * 10
	if next <= base+99 && !used[strconv.Itoa(next)] {
		return strconv.Itoa(next)
	}
	for c := base; c <= base+99; c++ {
		if !used[strconv.Itoa(c)] {
			return strconv.Itoa(c)
		}
	}
	return string(d) + "00"
}

func suggestChild(parent int, used map[string]bool) string {
	switch Level(parent) {
	case 1:
		for c := parent + 10; c <= parent+90; c += 10 {
			if !used[strconv.Itoa(c)] {
				return strconv.Itoa(c)
			}
		}
		return strconv.Itoa(parent + 10)
	case 2:
		end := parent/10*10 + 9
		for c := parent + 1; c <= end; c++ {
			if !used[strconv.Itoa(c)] {
				return strconv.Itoa(c)
			}
		}
		return strconv.Itoa(parent + 1)
	default:
		// A level-3 parent has no valid children; callers rely on
		// ValidateCode to reject the result.
		return strconv.Itoa(parent + 1)
	}
}

func usedCodes(accounts []Account) map[string]bool {
	used := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		used[a.Code] = true
	}
	return used
}

// ValidateCode checks a user-supplied code against the hierarchy rules in a
// fixed precedence order and returns the first violation, or nil. An empty
// code is "not yet specified" and is left to the caller's required-field
// check. excludeID names an account to skip during duplicate detection when
// re-validating an edit. Prefix and length checks run before any numeric
// parsing, so non-digit codes fail there rather than as an internal fault.
func ValidateCode(code string, typ AccountType, parentCode string, accounts []Account, excludeID string) *Violation {
	if code == "" {
		return nil
	}

	for i := range accounts {
		a := &accounts[i]
		if a.Code == code && a.ID != excludeID {
			v := violationf(RuleDuplicateCode, "code %s already belongs to account %q", code, a.Name)
			v.ConflictID = a.ID
			v.ConflictName = a.Name
			return v
		}
	}

	if len(code) > MaxCodeLength {
		return violationf(RuleCodeTooLong, "code %s exceeds %d digits", code, MaxCodeLength)
	}

	d := typ.PrefixDigit()
	if code[0] != d {
		v := violationf(RuleTypePrefixMismatch, "codes for type %s must start with %c", typ, d)
		v.ExpectedPrefix = string(d)
		return v
	}

	if parentCode == "" {
		return nil
	}

	if code[0] != parentCode[0] {
		v := violationf(RuleParentPrefixMismatch, "code must start with the same leading digit as parent %s", parentCode)
		v.ExpectedPrefix = string(parentCode[0])
		return v
	}

	p, err := strconv.Atoi(parentCode)
	if err != nil {
		// The parent came from the snapshot, so its code passed these same
		// rules; a non-numeric parent leaves nothing further to check.
		return nil
	}

	value, parseErr := strconv.Atoi(code)

	switch Level(p) {
	case 1:
		lo, hi := p, p+99
		if parseErr != nil || value < lo || value > hi {
			return rangeViolation(code, lo, hi)
		}
		if value%10 != 0 {
			return violationf(RuleMustBeMultipleOfTen, "code %s must be a multiple of 10 under parent %s", code, parentCode)
		}
		if value <= p {
			return violationf(RuleCodeNotGreaterThanParent, "code %s must be greater than parent %s", code, parentCode)
		}
	case 2:
		lo, hi := p+1, p+9
		if parseErr != nil || value/10 != p/10 {
			return rangeViolation(code, lo, hi)
		}
		if value%10 == 0 {
			return violationf(RuleNotMultipleOfTen, "code %s must not be a multiple of 10 under parent %s", code, parentCode)
		}
		if value <= p {
			return violationf(RuleCodeNotGreaterThanParent, "code %s must be greater than parent %s", code, parentCode)
		}
	default:
		return violationf(RuleParentIsLevelThree, "account %s is a unit account and cannot have children", parentCode)
	}

	return nil
}

func rangeViolation(code string, lo, hi int) *Violation {
	v := violationf(RuleOutOfParentRange, "code %s must lie in [%d, %d]", code, lo, hi)
	v.RangeMin = lo
	v.RangeMax = hi
	return v
}
