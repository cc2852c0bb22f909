package jellyschema

import (
	"github.com/goccy/go-yaml"
)

// Scope is the immutable compile-time environment shared by every node of a
// walk: the ordered keyword registry and the data-type registry. A single
// Scope compiles any number of schema documents; it holds no per-document
// state.
type Scope struct {
	keywords  []Keyword
	dataTypes DataTypeMap
}

// NewScope builds a Scope from an explicit keyword order and data-type
// registry. Most callers should use DefaultScope or ScopeBuilder instead.
func NewScope(keywords []Keyword, dataTypes DataTypeMap) *Scope {
	return &Scope{keywords: keywords, dataTypes: dataTypes}
}

// DataTypes returns the scope's custom data-type registry.
func (s *Scope) DataTypes() DataTypeMap {
	return s.dataTypes
}

// Compile decodes rawYAML and compiles it into a Schema rooted at the
// document, per spec.md's "deserialize then compile" pipeline. A YAML syntax
// error surfaces as *DeserializeSchemaError; a structurally invalid schema
// surfaces as *CompileSchemaError.
func (s *Scope) Compile(rawYAML []byte) (*Schema, error) {
	var value any
	if err := yaml.Unmarshal(rawYAML, &value); err != nil {
		return nil, &DeserializeSchemaError{Err: err}
	}
	value = normalizeYAMLValue(value)

	ctx := NewWalkContext()
	schema, err := s.CompileFromValue(value, ctx)
	if err != nil {
		return nil, err
	}
	debugLogger.Debug("jellyschema: compiled schema", "keywords", len(s.keywords), "path", ctx.JSONPath())
	return schema, nil
}

// CompileFromValue compiles an already-decoded value (a full document or a
// sub-schema fragment reached while compiling a parent node, e.g. `items` or
// a `properties` entry) at the given cursor.
//
// A bare string value is shorthand for `{type: <value>}` (`hostname`,
// `string?`, …), matching how JellySchema schemas write inline type
// references instead of a full object.
func (s *Scope) CompileFromValue(value any, ctx *WalkContext) (*Schema, error) {
	switch v := value.(type) {
	case string:
		return s.CompileFromValue(map[string]any{"type": v}, ctx)
	case map[string]any:
		return s.compileObject(v, ctx)
	default:
		return nil, ctx.CompilationError("schema", "expected a schema object or a type name, got %s", getDataType(value))
	}
}

func (s *Scope) compileObject(raw map[string]any, ctx *WalkContext) (*Schema, error) {
	schema := &Schema{Raw: raw, Path: ctx.Path(), scope: s}

	for _, kw := range s.keywords {
		validator, err := kw.Compile(raw, ctx, s)
		if err != nil {
			return nil, err
		}
		schema.AddValidator(validator)
	}

	if g, _ := raw["generate"].(bool); g {
		schema.Generate = true
	}

	name, optional := typeNameAndOptional(raw)
	schema.Optional = optional

	if !IsBuiltinType(name) {
		if dt, ok := s.dataTypes.Lookup(name); ok && dt.Generator() != nil {
			schema.SetGenerator(dt.Generator())
		}
	}

	for _, name := range annotationKeywordNames {
		if v, ok := raw[name]; ok {
			if schema.Annotations == nil {
				schema.Annotations = make(map[string]any)
			}
			schema.Annotations[name] = v
		}
	}

	return schema, nil
}

// decodeYAMLFragment decodes a small literal YAML fragment (used for a
// builtin DataType's static Schema() string) into a normalized map, for
// callers that need to inspect its structure rather than compile it.
func decodeYAMLFragment(fragment string) (map[string]any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(fragment), &value); err != nil {
		return nil, &DeserializeSchemaError{Err: err}
	}
	value = normalizeYAMLValue(value)
	obj, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return obj, nil
}

// normalizeYAMLValue walks goccy/go-yaml's decoded output, recursing into
// nested map[string]any and []any values (map[string]interface{} and
// map[string]any are the same type). Values of any other type, including
// maps of other concrete types, are returned unchanged.
func normalizeYAMLValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, e := range val {
			val[k] = normalizeYAMLValue(e)
		}
		return val
	case []any:
		for i, e := range val {
			val[i] = normalizeYAMLValue(e)
		}
		return val
	default:
		return val
	}
}
