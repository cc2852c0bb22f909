package jellyschema

// itemsKeyword compiles `items:`. The value is either a single schema,
// applied to every array element, or a non-empty array of schemas (tuple
// form). In tuple form every schema is tried against every element; an
// element is valid only if it matches exactly one of the schemas.
type itemsKeyword struct{}

func newItemsKeyword() Keyword { return itemsKeyword{} }

func (itemsKeyword) Name() string { return "items" }

func (itemsKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["items"]
	if !present {
		return nil, nil
	}

	switch v := rawValue.(type) {
	case []any:
		if len(v) == 0 {
			return nil, ctx.CompilationError("items", "expected at least one schema")
		}
		tuple := make([]*Schema, len(v))
		for i, fragment := range v {
			sub, err := scope.CompileFromValue(fragment, ctx.Push(i))
			if err != nil {
				return nil, err
			}
			tuple[i] = sub
		}
		return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
			items, ok := value.([]any)
			if !ok {
				return NewValidationState()
			}
			for i, item := range items {
				itemCtx := vctx.Push(i)

				validCount := 0
				var firstInvalid *ValidationState
				matchedMoreThanOne := false

				for _, schema := range tuple {
					state := schema.Validate(item, itemCtx)
					if state.IsValid() {
						validCount++
					} else if firstInvalid == nil {
						firstInvalid = &state
					}
					if validCount > 1 {
						matchedMoreThanOne = true
						break
					}
				}

				if matchedMoreThanOne {
					return ValidationStateFromError(itemCtx.ValidationError("items", "matches more than one schema"))
				}
				if validCount != 1 {
					if firstInvalid != nil {
						return *firstInvalid
					}
					return ValidationStateFromError(itemCtx.ValidationError("items", "does not match any schema"))
				}
			}
			return NewValidationState()
		}), nil

	case map[string]any, string:
		sub, err := scope.CompileFromValue(v, ctx)
		if err != nil {
			return nil, err
		}
		return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
			items, ok := value.([]any)
			if !ok {
				return NewValidationState()
			}
			state := NewValidationState()
			for i, item := range items {
				state.Append(sub.Validate(item, vctx.Push(i)))
			}
			return state
		}), nil

	default:
		return nil, ctx.CompilationError("items", "expected schema or an array of schemas")
	}
}
