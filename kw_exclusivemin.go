package jellyschema

// exclusiveMinKeyword compiles `exclusiveMin:`, the exclusive lower bound.
type exclusiveMinKeyword struct{}

func newExclusiveMinKeyword() Keyword { return exclusiveMinKeyword{} }

func (exclusiveMinKeyword) Name() string { return "exclusiveMin" }

func (exclusiveMinKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["exclusiveMin"]
	if !present {
		return nil, nil
	}
	bound, ok := numberToRat(rawValue)
	if !ok {
		return nil, ctx.CompilationError("exclusiveMin", "expected a number, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		n, ok := numericRatForValidation(value)
		if !ok {
			return NewValidationState()
		}
		if n.Cmp(bound) <= 0 {
			return ValidationStateFromError(vctx.ValidationError("exclusiveMin", "is less than or equal to %s", formatRat(bound)))
		}
		return NewValidationState()
	}), nil
}
