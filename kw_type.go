package jellyschema

import "strings"

// typeKeyword compiles `type:`. Missing `type:` defaults to "object". A
// trailing `?` (`string?`) marks the node optional (null is then accepted
// regardless of what the rest of the schema requires). The name must be one
// of the six JSON primitives or a name registered in the scope's
// DataTypeMap.
type typeKeyword struct{}

func newTypeKeyword() Keyword { return typeKeyword{} }

func (typeKeyword) Name() string { return "type" }

// splitTypeName strips an optional trailing '?' from a `type:` value,
// returning the bare name and whether '?' was present.
func splitTypeName(raw string) (string, bool) {
	if strings.HasSuffix(raw, "?") {
		return strings.TrimSuffix(raw, "?"), true
	}
	return raw, false
}

// typeNameAndOptional returns the effective type name and optionality for
// raw's `type:` entry (defaulting to "object", not optional, if absent),
// without re-validating — callers use this after the keyword pass already
// succeeded.
func typeNameAndOptional(raw map[string]any) (string, bool) {
	v, ok := raw["type"]
	if !ok {
		return "object", false
	}
	s, ok := v.(string)
	if !ok {
		return "object", false
	}
	name, optional := splitTypeName(s)
	return name, optional
}

func (typeKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["type"]
	name := "object"
	if present {
		s, ok := rawValue.(string)
		if !ok {
			return nil, ctx.CompilationError("type", "expected a string, got %s", getDataType(rawValue))
		}
		name = s
	}

	bareName, optional := splitTypeName(name)

	if IsBuiltinType(bareName) {
		return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
			if value == nil {
				if optional {
					return NewValidationState()
				}
				return ValidationStateFromError(vctx.ValidationError("type", "'%s' expected", bareName))
			}
			if getDataType(value) != bareName {
				return ValidationStateFromError(vctx.ValidationError("type", "'%s' expected", bareName))
			}
			return NewValidationState()
		}), nil
	}

	custom, ok := scope.DataTypes().Lookup(bareName)
	if !ok {
		return nil, ctx.CompilationError("type", "unknown data type %q", bareName)
	}

	fragmentSchema, err := scope.Compile([]byte(custom.Schema()))
	if err != nil {
		return nil, ctx.CompilationError("type", "custom type %q has an invalid schema: %s", bareName, err)
	}
	customValidator := custom.Validator()

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		if value == nil && optional {
			return NewValidationState()
		}
		state := fragmentSchema.Validate(value, vctx)
		if state.IsInvalid() {
			return state
		}
		if customValidator != nil {
			state.Append(customValidator.Validate(value, vctx))
		}
		return state
	}), nil
}
