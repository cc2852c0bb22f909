package jellyschema

import "reflect"

// constKeyword compiles `const:`. Any scalar, list, or object value is
// accepted verbatim. A numeric constant matches any number of equal value,
// whatever its Go type; every other value is compared by deep equality.
type constKeyword struct{}

func newConstKeyword() Keyword { return constKeyword{} }

func (constKeyword) Name() string { return "const" }

func (constKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	want, present := raw["const"]
	if !present {
		return nil, nil
	}

	wantNum, wantIsNum := numericRatForValidation(want)

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		if n, ok := numericRatForValidation(value); ok && wantIsNum {
			if n.Cmp(wantNum) != 0 {
				return ValidationStateFromError(vctx.ValidationError("const", "value does not equal the constant"))
			}
			return NewValidationState()
		}
		if !reflect.DeepEqual(value, want) {
			return ValidationStateFromError(vctx.ValidationError("const", "value does not equal the constant"))
		}
		return NewValidationState()
	}), nil
}
