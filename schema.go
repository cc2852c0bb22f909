package jellyschema

// Schema is a compiled node of the validator tree: the raw YAML value it was
// compiled from, plus the ordered list of Validators contributed by the
// keywords present on it. Schema is immutable once built by Scope.Compile.
// Every fragment is compiled into its own *Schema: identical fragments at
// different places in a document are compiled separately, not shared.
type Schema struct {
	// Raw is the decoded YAML value this node was compiled from (normally a
	// map[string]any, but a bare custom-type name like `string` produces a
	// synthetic {"type": "string"} fragment).
	Raw any

	// Path is where this node sits in the overall schema document.
	Path Path

	// Optional marks this node as accepting null (set by a trailing `?` on
	// the `type:` keyword's value, e.g. `type: string?`).
	Optional bool

	// Generate is set when this node carries `generate: true`.
	Generate bool

	// Annotations holds the raw values of annotation keywords (title,
	// description, help, warning, placeholder, hidden, collapsed,
	// collapsible, readOnly, writeOnly, addable, removable, orderable)
	// present on this node, keyed by keyword name. They carry no validation
	// behavior; the serializers read the same keys from Raw, not from here.
	Annotations map[string]any

	validators []Validator
	generator  Generator
	scope      *Scope
}

// Validate walks value against every validator compiled onto this node and
// returns the merged ValidationState. Each validator is responsible for its
// own type guard — e.g. the `type` keyword's validator is what rejects a
// null value on a non-optional node; a `minLength` validator silently skips
// a non-string value instead of raising its own error. A null value on an
// Optional node is accepted without running any validator. Validate itself
// never panics.
func (s *Schema) Validate(value any, ctx *WalkContext) ValidationState {
	if value == nil && s.Optional {
		return NewValidationState()
	}
	state := NewValidationState()
	for _, v := range s.validators {
		state.Append(v.Validate(value, ctx))
	}
	return state
}

// Generate produces a conforming value for this node. A node with a
// registered Generator (typically a custom data type's Generator()) defers
// to it directly. An `object` or `array` node instead recurses into its
// `properties`/`items` sub-schemas and assembles a document from whichever
// of them produce a value, matching how `generate: true` is meant to be
// sprinkled on just the fields a sample document needs. A node that is
// neither generator-backed nor composite, but still carries `generate:
// true`, is a compile-time contract nothing can satisfy and reports
// GenerateValueError.
func (s *Schema) Generate(ctx *WalkContext) (any, error) {
	if s.generator != nil {
		return s.generator.Generate(ctx)
	}

	name := "object"
	if rawMap, ok := s.Raw.(map[string]any); ok {
		name, _ = typeNameAndOptional(rawMap)
		if s.scope != nil {
			switch name {
			case "object":
				return s.generateObject(rawMap, ctx)
			case "array":
				return s.generateArray(rawMap, ctx)
			}
		}
	}

	if s.Generate {
		return nil, &GenerateValueError{DataType: name, Message: "no generator registered for this type"}
	}
	return nil, nil
}

func (s *Schema) generateObject(raw map[string]any, ctx *WalkContext) (any, error) {
	list, ok := raw["properties"].([]any)
	if !ok {
		if s.Generate {
			return map[string]any{}, nil
		}
		return nil, nil
	}

	result := map[string]any{}
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok || len(obj) != 1 {
			continue
		}
		for name, fragment := range obj {
			childCtx := ctx.Push(name)
			child, err := s.scope.CompileFromValue(fragment, childCtx)
			if err != nil {
				return nil, err
			}
			if !child.wantsGeneration() {
				continue
			}
			value, err := child.Generate(childCtx)
			if err != nil {
				return nil, err
			}
			if value != nil {
				result[name] = value
			}
		}
	}

	if len(result) == 0 && !s.Generate {
		return nil, nil
	}
	return result, nil
}

func (s *Schema) generateArray(raw map[string]any, ctx *WalkContext) (any, error) {
	itemsRaw, ok := raw["items"]
	if !ok {
		if s.Generate {
			return []any{}, nil
		}
		return nil, nil
	}

	if tuple, ok := itemsRaw.([]any); ok {
		result := make([]any, 0, len(tuple))
		for i, fragment := range tuple {
			childCtx := ctx.Push(i)
			child, err := s.scope.CompileFromValue(fragment, childCtx)
			if err != nil {
				return nil, err
			}
			if !child.wantsGeneration() {
				continue
			}
			value, err := child.Generate(childCtx)
			if err != nil {
				return nil, err
			}
			if value != nil {
				result = append(result, value)
			}
		}
		if len(result) == 0 && !s.Generate {
			return nil, nil
		}
		return result, nil
	}

	childCtx := ctx.Push(0)
	child, err := s.scope.CompileFromValue(itemsRaw, childCtx)
	if err != nil {
		return nil, err
	}
	if !child.wantsGeneration() {
		if s.Generate {
			return []any{}, nil
		}
		return nil, nil
	}
	value, err := child.Generate(childCtx)
	if err != nil {
		return nil, err
	}
	if value == nil {
		if s.Generate {
			return []any{}, nil
		}
		return nil, nil
	}
	return []any{value}, nil
}

// wantsGeneration reports whether a document generator assembling a parent
// object or array should descend into this node at all: a node explicitly
// marked `generate: true`, or a composite (`object`/`array`) node that might
// have a flagged field somewhere beneath it. A plain leaf node with a
// generator but no `generate: true` is left out of automatic assembly —
// calling its Generate directly still works, for a caller that names it
// explicitly.
func (s *Schema) wantsGeneration() bool {
	if s.Generate {
		return true
	}
	rawMap, ok := s.Raw.(map[string]any)
	if !ok {
		return false
	}
	name, _ := typeNameAndOptional(rawMap)
	return name == "object" || name == "array"
}

// AddValidator appends a compiled keyword's Validator to this node. Used
// only by the compiler while building the tree.
func (s *Schema) AddValidator(v Validator) {
	if v != nil {
		s.validators = append(s.validators, v)
	}
}

// SetGenerator installs the generator this node's data type contributed.
func (s *Schema) SetGenerator(g Generator) {
	s.generator = g
}
