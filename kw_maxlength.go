package jellyschema

// maxLengthKeyword compiles `maxLength:`. Length is counted in Unicode code
// points, not bytes, so multi-byte characters count once each.
type maxLengthKeyword struct{}

func newMaxLengthKeyword() Keyword { return maxLengthKeyword{} }

func (maxLengthKeyword) Name() string { return "maxLength" }

func (maxLengthKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["maxLength"]
	if !present {
		return nil, nil
	}
	bound, ok := nonNegativeInt(rawValue)
	if !ok {
		return nil, ctx.CompilationError("maxLength", "expected a non-negative integer, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if codePointLength(s) > bound {
			return ValidationStateFromError(vctx.ValidationError("maxLength", "is longer than %d characters", bound))
		}
		return NewValidationState()
	}), nil
}
