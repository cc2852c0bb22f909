package jellyschema

import (
	"github.com/dlclark/regexp2"
	"golang.org/x/net/idna"
)

// hostnameMaxLength mirrors RFC 1035's 255-octet limit, carried over from
// the original Rust implementation's hostname data type.
const hostnameMaxLength = 255

var hostnameRegex = mustCompileRegex(`^(?i)[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[-0-9a-z]{0,61}[0-9a-z])?)*$`)

func mustCompileRegex(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		panic("jellyschema: invalid builtin regex: " + err.Error())
	}
	return re
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}

func isHostname(s string) bool {
	if len([]rune(s)) > hostnameMaxLength {
		return false
	}
	matched, err := hostnameRegex.MatchString(s)
	return err == nil && matched
}

// newHostnameDataType registers `hostname`, grounded on
// _examples/original_source/src/data_types/hostname/mod.rs: an RFC
// 952/1123-style label grammar plus a 255-character ceiling. ASCII input is
// judged by the label regex alone; input containing non-ASCII characters is
// not matched against the regex and is accepted when
// golang.org/x/net/idna's Lookup profile can convert it to ASCII.
func newHostnameDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if len([]rune(s)) > hostnameMaxLength {
			return ValidationStateFromError(ctx.ValidationError("type", "maximum hostname length is %d characters", hostnameMaxLength))
		}
		if !isASCII(s) {
			if _, err := idna.Lookup.ToASCII(s); err != nil {
				return ValidationStateFromError(ctx.ValidationError("type", "doesn't match regular expression"))
			}
			return NewValidationState()
		}
		if !isHostname(s) {
			return ValidationStateFromError(ctx.ValidationError("type", "doesn't match regular expression"))
		}
		return NewValidationState()
	})
	return NewDataType("hostname", "type: string\n", validator, nil)
}
