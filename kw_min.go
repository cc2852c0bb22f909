package jellyschema

// minKeyword compiles `min:`, the inclusive lower bound for number/integer
// values. Non-numeric values are skipped (type mismatches are `type`'s job).
type minKeyword struct{}

func newMinKeyword() Keyword { return minKeyword{} }

func (minKeyword) Name() string { return "min" }

func (minKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["min"]
	if !present {
		return nil, nil
	}
	bound, ok := numberToRat(rawValue)
	if !ok {
		return nil, ctx.CompilationError("min", "expected a number, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		n, ok := numericRatForValidation(value)
		if !ok {
			return NewValidationState()
		}
		if n.Cmp(bound) < 0 {
			return ValidationStateFromError(vctx.ValidationError("min", "is less than %s", formatRat(bound)))
		}
		return NewValidationState()
	}), nil
}
