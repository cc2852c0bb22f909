package jellyschema

// multipleOfKeyword compiles `multipleOf:`. Comparison is done in exact
// rational arithmetic via big.Rat rather than float64 ULP tolerance, so
// e.g. `multipleOf: 0.01` against `0.3` is judged correctly regardless of
// binary floating point representation error.
type multipleOfKeyword struct{}

func newMultipleOfKeyword() Keyword { return multipleOfKeyword{} }

func (multipleOfKeyword) Name() string { return "multipleOf" }

func (multipleOfKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["multipleOf"]
	if !present {
		return nil, nil
	}
	divisor, ok := numberToRat(rawValue)
	if !ok {
		return nil, ctx.CompilationError("multipleOf", "expected a number, got %s", getDataType(rawValue))
	}
	if divisor.Sign() == 0 {
		return nil, ctx.CompilationError("multipleOf", "must not be zero")
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		n, ok := numericRatForValidation(value)
		if !ok {
			return NewValidationState()
		}
		if !isMultipleOf(n, divisor) {
			return ValidationStateFromError(vctx.ValidationError("multipleOf", "is not a multiple of %s", formatRat(divisor)))
		}
		return NewValidationState()
	}), nil
}
