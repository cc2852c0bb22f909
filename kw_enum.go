package jellyschema

import "reflect"

// enumKeyword compiles `enum:`. Its value must be a non-empty array; each
// element is either a literal value or, for values that need an
// accompanying label, an object of the form {value: <literal>, ...}.
type enumKeyword struct{}

func newEnumKeyword() Keyword { return enumKeyword{} }

func (enumKeyword) Name() string { return "enum" }

func (enumKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["enum"]
	if !present {
		return nil, nil
	}

	items, ok := rawValue.([]any)
	if !ok {
		return nil, ctx.CompilationError("enum", "expected an array, got %s", getDataType(rawValue))
	}
	if len(items) == 0 {
		return nil, ctx.CompilationError("enum", "must contain at least one item")
	}

	values := make([]any, 0, len(items))
	for _, item := range items {
		obj, isObject := item.(map[string]any)
		if !isObject {
			values = append(values, item)
			continue
		}
		v, hasValue := obj["value"]
		if !hasValue {
			return nil, ctx.CompilationError("enum", "missing keyword \"value\"")
		}
		values = append(values, v)
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		matches := 0
		valueNum, valueIsNum := numericRatForValidation(value)
		for _, candidate := range values {
			if candidateNum, ok := numericRatForValidation(candidate); ok && valueIsNum {
				if valueNum.Cmp(candidateNum) == 0 {
					matches++
				}
				continue
			}
			if reflect.DeepEqual(value, candidate) {
				matches++
			}
		}
		if matches == 1 {
			return NewValidationState()
		}
		return ValidationStateFromError(vctx.ValidationError("enum", "value is not one of the allowed values"))
	}), nil
}
