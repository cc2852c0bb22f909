package jellyschema

import "reflect"

// uniqueItemsKeyword compiles `uniqueItems:`. `true` requires every array
// element to be pairwise distinct; an array of JSON paths instead requires
// the tuples of values looked up at those paths to be pairwise distinct
// across elements (e.g. `uniqueItems: ["$.id"]` allows duplicate objects as
// long as their "id" differs).
type uniqueItemsKeyword struct{}

func newUniqueItemsKeyword() Keyword { return uniqueItemsKeyword{} }

func (uniqueItemsKeyword) Name() string { return "uniqueItems" }

func (uniqueItemsKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["uniqueItems"]
	if !present {
		return nil, nil
	}

	switch v := rawValue.(type) {
	case bool:
		if !v {
			return nil, nil
		}
		return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
			return validateUniqueBy(value, vctx, func(item any) any { return item })
		}), nil

	case []any:
		if len(v) == 0 {
			return nil, ctx.CompilationError("uniqueItems", "expected at least one JSON path")
		}
		paths := make([]Path, len(v))
		for i, raw := range v {
			s, ok := raw.(string)
			if !ok {
				return nil, ctx.CompilationError("uniqueItems", "expected JSON path")
			}
			p, err := ParsePath(s)
			if err != nil {
				return nil, ctx.CompilationError("uniqueItems", "expected JSON path")
			}
			paths[i] = p
		}
		return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
			return validateUniqueBy(value, vctx, func(item any) any {
				tuple := make([]any, len(paths))
				for i, p := range paths {
					v, _ := Lookup(item, p)
					tuple[i] = v
				}
				return tuple
			})
		}), nil

	default:
		return nil, ctx.CompilationError("uniqueItems", "expected boolean or an array of JSON paths")
	}
}

func validateUniqueBy(value any, ctx *WalkContext, key func(any) any) ValidationState {
	items, ok := value.([]any)
	if !ok {
		return NewValidationState()
	}
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if reflect.DeepEqual(key(items[i]), key(items[j])) {
				return ValidationStateFromError(ctx.Push(j).ValidationError("uniqueItems", "item is not unique"))
			}
		}
	}
	return NewValidationState()
}
