package jellyschema

// propertiesKeyword compiles `properties:`, `keys:`/`values:`, and
// `additionalProperties:` together, since all three govern how a single
// object's members are validated. `additionalProperties` defaults to
// `false` when absent. `properties` is a list of single-key objects, one
// per known property name. `keys`/`values` must appear together or not at
// all; `keys` must itself require `type: string` and carry a `pattern:`.
type propertiesKeyword struct{}

func newPropertiesKeyword() Keyword { return propertiesKeyword{} }

func (propertiesKeyword) Name() string { return "properties" }

type compiledProperty struct {
	name   string
	schema *Schema
}

func (propertiesKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	additionalAllowed := false
	if rawValue, present := raw["additionalProperties"]; present {
		b, ok := rawValue.(bool)
		if !ok {
			return nil, ctx.CompilationError("additionalProperties", "expected a boolean, got %s", getDataType(rawValue))
		}
		additionalAllowed = b
	}

	var known []compiledProperty
	if rawValue, present := raw["properties"]; present {
		list, ok := rawValue.([]any)
		if !ok {
			return nil, ctx.CompilationError("properties", "expected an array, got %s", getDataType(rawValue))
		}
		for _, entry := range list {
			obj, ok := entry.(map[string]any)
			if !ok || len(obj) != 1 {
				return nil, ctx.CompilationError("properties", "expected one schema object")
			}
			for name, fragment := range obj {
				sub, err := scope.CompileFromValue(fragment, ctx.Push(name))
				if err != nil {
					return nil, err
				}
				known = append(known, compiledProperty{name: name, schema: sub})
			}
		}
	}

	keysRaw, hasKeys := raw["keys"]
	valuesRaw, hasValues := raw["values"]
	if hasKeys != hasValues {
		return nil, ctx.CompilationError("properties", "\"keys\" and \"values\" must both be present or both be absent")
	}

	var keysSchema, valuesSchema *Schema
	if hasKeys {
		keyObj, ok := keysRaw.(map[string]any)
		if !ok {
			return nil, ctx.CompilationError("keys", "expected a schema object")
		}
		if t, _ := keyObj["type"].(string); t != "string" {
			return nil, ctx.CompilationError("keys", "expected \"type\" to be \"string\"")
		}
		if _, ok := keyObj["pattern"]; !ok {
			return nil, ctx.CompilationError("keys", "expected a \"pattern\"")
		}
		var err error
		keysSchema, err = scope.CompileFromValue(keyObj, ctx.Push("keys"))
		if err != nil {
			return nil, err
		}
		valuesSchema, err = scope.CompileFromValue(valuesRaw, ctx.Push("values"))
		if err != nil {
			return nil, err
		}
	}

	return ValidatorFunc(func(value any, vctx *WalkContext) ValidationState {
		object, ok := value.(map[string]any)
		if !ok {
			return NewValidationState()
		}

		state := NewValidationState()
		seen := make(map[string]bool, len(known))

		for key, member := range object {
			memberCtx := vctx.Push(key)

			var matched *compiledProperty
			for i := range known {
				if known[i].name == key {
					matched = &known[i]
					break
				}
			}

			if matched != nil {
				seen[key] = true
				state.Append(matched.schema.Validate(member, memberCtx))
				continue
			}

			if keysSchema != nil && keysSchema.Validate(key, memberCtx).IsValid() {
				state.Append(valuesSchema.Validate(member, memberCtx))
				continue
			}

			if !additionalAllowed {
				state.AddError(memberCtx.ValidationError("additionalProperties", "not allowed"))
			}
		}

		for _, prop := range known {
			if !seen[prop.name] {
				state.Append(prop.schema.Validate(nil, vctx.Push(prop.name)))
			}
		}

		return state
	}), nil
}
