package jellyschema

// exclusiveMaxKeyword compiles `exclusiveMax:`, the exclusive upper bound.
type exclusiveMaxKeyword struct{}

func newExclusiveMaxKeyword() Keyword { return exclusiveMaxKeyword{} }

func (exclusiveMaxKeyword) Name() string { return "exclusiveMax" }

func (exclusiveMaxKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["exclusiveMax"]
	if !present {
		return nil, nil
	}
	bound, ok := numberToRat(rawValue)
	if !ok {
		return nil, ctx.CompilationError("exclusiveMax", "expected a number, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		n, ok := numericRatForValidation(value)
		if !ok {
			return NewValidationState()
		}
		if n.Cmp(bound) >= 0 {
			return ValidationStateFromError(vctx.ValidationError("exclusiveMax", "is greater than or equal to %s", formatRat(bound)))
		}
		return NewValidationState()
	}), nil
}
