package jellyschema

// minItemsKeyword compiles `minItems:`.
type minItemsKeyword struct{}

func newMinItemsKeyword() Keyword { return minItemsKeyword{} }

func (minItemsKeyword) Name() string { return "minItems" }

func (minItemsKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["minItems"]
	if !present {
		return nil, nil
	}
	bound, ok := nonNegativeInt(rawValue)
	if !ok {
		return nil, ctx.CompilationError("minItems", "expected a non-negative integer, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		items, ok := value.([]any)
		if !ok {
			return NewValidationState()
		}
		if len(items) < bound {
			return ValidationStateFromError(vctx.ValidationError("minItems", "has fewer than %d items", bound))
		}
		return NewValidationState()
	}), nil
}
