package jellyschema

import (
	"regexp"
	"strconv"
)

// dateRegexStd is a plain RE2 pattern (no lookaheads needed), so stdlib
// regexp suffices here unlike the hostname/email patterns.
var dateRegexStd = regexp.MustCompile(`^(\d\d\d\d)-(\d\d)-(\d\d)$`)

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	days := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month < 1 || month > 12 {
		return 0
	}
	n := days[month-1]
	if month == 2 && isLeapYear(year) {
		n = 29
	}
	return n
}

func isValidDate(s string) bool {
	m := dateRegexStd.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(year, month)
}

// newDateDataType registers `date`, grounded on
// _examples/original_source/src/data_types/date/mod.rs, including its
// exact leap-year and days-per-month handling.
func newDateDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if !isValidDate(s) {
			return ValidationStateFromError(ctx.ValidationError("type", "expected `date`"))
		}
		return NewValidationState()
	})
	return NewDataType("date", "type: string\n", validator, nil)
}
