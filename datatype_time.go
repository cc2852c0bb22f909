package jellyschema

import (
	"regexp"
	"strconv"
)

var timeRegexStd = regexp.MustCompile(`^(\d\d):(\d\d):(\d\d)(\.\d+)?(z|Z|[+-]\d\d:\d\d)?$`)

func isValidTime(s string) bool {
	m := timeRegexStd.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])

	if hour <= 23 && minute <= 59 && second <= 59 {
		return true
	}
	// A leap second is only valid at 23:59:60.
	return hour == 23 && minute == 59 && second == 60
}

// newTimeDataType registers `time`, grounded on
// _examples/original_source/src/data_types/time/mod.rs, including its
// 23:59:60 leap-second allowance.
func newTimeDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if timeRegexStd.FindStringSubmatch(s) == nil {
			return ValidationStateFromError(ctx.ValidationError("type", "expected `time`"))
		}
		if !isValidTime(s) {
			return ValidationStateFromError(ctx.ValidationError("type", "invalid `time` range"))
		}
		return NewValidationState()
	})
	return NewDataType("time", "type: string\n", validator, nil)
}

// newDateTimeDataType registers `date-time`, a combined date + 'T' + time
// value (not present verbatim in original_source's per-type files but named
// alongside `date`/`time` in spec.md's builtin list).
func newDateTimeDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if len(s) < 11 || (s[10] != 'T' && s[10] != 't') {
			return ValidationStateFromError(ctx.ValidationError("type", "expected `date-time`"))
		}
		datePart, timePart := s[:10], s[11:]
		if !isValidDate(datePart) || !isValidTime(timePart) {
			return ValidationStateFromError(ctx.ValidationError("type", "expected `date-time`"))
		}
		return NewValidationState()
	})
	return NewDataType("date-time", "type: string\n", validator, nil)
}
