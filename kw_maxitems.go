package jellyschema

// maxItemsKeyword compiles `maxItems:`.
type maxItemsKeyword struct{}

func newMaxItemsKeyword() Keyword { return maxItemsKeyword{} }

func (maxItemsKeyword) Name() string { return "maxItems" }

func (maxItemsKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["maxItems"]
	if !present {
		return nil, nil
	}
	bound, ok := nonNegativeInt(rawValue)
	if !ok {
		return nil, ctx.CompilationError("maxItems", "expected a non-negative integer, got %s", getDataType(rawValue))
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		items, ok := value.([]any)
		if !ok {
			return NewValidationState()
		}
		if len(items) > bound {
			return ValidationStateFromError(vctx.ValidationError("maxItems", "has more than %d items", bound))
		}
		return NewValidationState()
	}), nil
}
