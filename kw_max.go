package jellyschema

// maxKeyword compiles `max:`, the inclusive upper bound for number/integer
// values.
type maxKeyword struct{}

func newMaxKeyword() Keyword { return maxKeyword{} }

func (maxKeyword) Name() string { return "max" }

func (maxKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["max"]
	if !present {
		return nil, nil
	}
	bound, ok := numberToRat(rawValue)
	if !ok {
		return nil, ctx.CompilationError("max", "expected a number, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		n, ok := numericRatForValidation(value)
		if !ok {
			return NewValidationState()
		}
		if n.Cmp(bound) > 0 {
			return ValidationStateFromError(vctx.ValidationError("max", "is greater than %s", formatRat(bound)))
		}
		return NewValidationState()
	}), nil
}
