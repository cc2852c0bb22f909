package jellyschema

import "github.com/dlclark/regexp2"

// patternKeyword compiles `pattern:`, an ECMA-flavored regular expression
// run against string values. dlclark/regexp2 is used instead of stdlib
// regexp because JellySchema's patterns (and the builtin data types built
// on the same engine, see datatype_hostname.go/datatype_email.go) rely on
// lookaheads that RE2 cannot express.
type patternKeyword struct{}

func newPatternKeyword() Keyword { return patternKeyword{} }

func (patternKeyword) Name() string { return "pattern" }

func (patternKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["pattern"]
	if !present {
		return nil, nil
	}
	pattern, ok := rawValue.(string)
	if !ok {
		return nil, ctx.CompilationError("pattern", "expected a string, got %s", getDataType(rawValue))
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, ctx.CompilationError("pattern", "invalid regular expression: %s", err)
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		matched, err := re.MatchString(s)
		if err != nil || !matched {
			return ValidationStateFromError(vctx.ValidationError("pattern", "doesn't match regular expression"))
		}
		return NewValidationState()
	}), nil
}
