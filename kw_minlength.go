package jellyschema

// minLengthKeyword compiles `minLength:`. Length is counted in Unicode code
// points, not bytes.
type minLengthKeyword struct{}

func newMinLengthKeyword() Keyword { return minLengthKeyword{} }

func (minLengthKeyword) Name() string { return "minLength" }

func (minLengthKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["minLength"]
	if !present {
		return nil, nil
	}
	bound, ok := nonNegativeInt(rawValue)
	if !ok {
		return nil, ctx.CompilationError("minLength", "expected a non-negative integer, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if codePointLength(s) < bound {
			return ValidationStateFromError(vctx.ValidationError("minLength", "is shorter than %d characters", bound))
		}
		return NewValidationState()
	}), nil
}
