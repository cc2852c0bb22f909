package jellyschema

import (
	"github.com/go-json-experiment/json"
)

// draftSchemaURL is the fixed `$schema` value every serialized document
// advertises, per spec.md §4.5.
const draftSchemaURL = "http://json-schema.org/draft-04/schema#"

// customTypeFormats maps a JellySchema custom data type name onto the
// standard Draft-4 `format` value it corresponds to, per spec.md §4.5's
// primitive mapping table. A type absent from this map but also absent from
// noFormatTypes falls back to its own name as the format, so a consumer
// still gets a hint even for a type the table doesn't enumerate by name —
// this is what the "round-trips" testable property in spec.md §8 asks for.
var customTypeFormats = map[string]string{
	"email":        "email",
	"hostname":     "hostname",
	"date":         "date",
	"date-time":    "date-time",
	"time":         "time",
	"uri":          "uri",
	"uuidv4":       "uuid",
	"ipv4-address": "ipv4",
	"ipv6-address": "ipv6",
	"file":         "data-url",
}

// noFormatTypes are custom data types the mapping table gives dedicated
// "extra keywords" instead of a format value: their own fragment schema
// (type + bounds/widget hints) is the entire story.
var noFormatTypes = map[string]bool{
	"port":       true,
	"text":       true,
	"password":   true,
	"stringlist": true,
}

// SerializeSchema walks raw (a decoded schema fragment, as produced by
// Scope.Compile's YAML decode step) and emits a deterministic JSON Schema
// Draft-4-plus-extensions document. It is a pure function of the raw tree:
// it performs no validation and never consults a compiled Schema's
// Validators.
func SerializeSchema(raw any, scope *Scope) (map[string]any, error) {
	doc, err := serializeFragment(raw, scope)
	if err != nil {
		return nil, err
	}
	doc["$schema"] = draftSchemaURL
	return doc, nil
}

func serializeFragment(raw any, scope *Scope) (map[string]any, error) {
	switch v := raw.(type) {
	case string:
		return serializeFragment(map[string]any{"type": v}, scope)
	case map[string]any:
		return serializeObject(v, scope)
	default:
		return map[string]any{}, nil
	}
}

func serializeObject(raw map[string]any, scope *Scope) (map[string]any, error) {
	out := map[string]any{}

	if err := serializeType(raw, scope, out); err != nil {
		return nil, err
	}

	serializeConstAndEnum(raw, out)
	serializeNumericBounds(raw, out)

	if v, ok := raw["maxLength"]; ok {
		out["maxLength"] = v
	}
	if v, ok := raw["minLength"]; ok {
		out["minLength"] = v
	}
	if v, ok := raw["pattern"]; ok {
		out["pattern"] = v
	}
	if v, ok := raw["maxItems"]; ok {
		out["maxItems"] = v
	}
	if v, ok := raw["minItems"]; ok {
		out["minItems"] = v
	}

	if err := serializeItems(raw, scope, out); err != nil {
		return nil, err
	}
	if err := serializeUniqueItems(raw, out); err != nil {
		return nil, err
	}
	if err := serializeProperties(raw, scope, out); err != nil {
		return nil, err
	}

	if v, ok := raw["title"]; ok {
		out["title"] = v
	}
	if v, ok := raw["description"]; ok {
		out["description"] = v
	}
	if v, ok := raw["readOnly"]; ok {
		out["readOnly"] = v
	}
	if v, ok := raw["writeOnly"]; ok {
		out["writeOnly"] = v
	}

	if v, ok := raw["$version"]; ok {
		out["$$version"] = v
	}
	if v, ok := raw["formula"]; ok {
		out["$$formula"] = v
	}
	if v, ok := raw["mapping"]; ok {
		out["$$mapping"] = v
	}

	return out, nil
}

func serializeType(raw map[string]any, scope *Scope, out map[string]any) error {
	name, optional := typeNameAndOptional(raw)

	resolved := name
	if !IsBuiltinType(name) {
		if scope != nil {
			if dt, ok := scope.DataTypes().Lookup(name); ok {
				fragmentSchema := map[string]any{}
				if err := yamlFragmentInto(dt.Schema(), fragmentSchema); err == nil {
					merged, err := serializeObject(fragmentSchema, scope)
					if err == nil {
						for k, v := range merged {
							if _, exists := out[k]; !exists {
								out[k] = v
							}
						}
						if t, ok := merged["type"].(string); ok {
							resolved = t
						}
					}
				}
			}
		}
		if !noFormatTypes[name] {
			if format, ok := customTypeFormats[name]; ok {
				out["format"] = format
			} else {
				out["format"] = name
			}
		}
	}

	if optional {
		out["type"] = []any{resolved, "null"}
	} else {
		out["type"] = resolved
	}
	return nil
}

// serializeConstAndEnum implements spec.md §4.5's const/enum emission
// rules: Draft-4 has no `const` keyword, so `const: X` becomes `enum:
// [X]`; a plain `enum: [...]` of scalar values passes through unchanged;
// an `enum` of `{value, title}` objects becomes a Draft-4-expressible
// `oneOf: [{title, enum: [value]}, ...]` instead, since Draft-4's bare
// `enum` carries no room for a per-value title.
func serializeConstAndEnum(raw map[string]any, out map[string]any) {
	if v, ok := raw["const"]; ok {
		out["enum"] = []any{v}
	}

	v, ok := raw["enum"]
	if !ok {
		return
	}
	items, ok := v.([]any)
	if !ok {
		return
	}

	if len(items) > 0 {
		if _, isTitled := items[0].(map[string]any); isTitled {
			oneOf := make([]any, 0, len(items))
			for _, item := range items {
				obj, ok := item.(map[string]any)
				if !ok {
					continue
				}
				entry := map[string]any{"enum": []any{obj["value"]}}
				if title, ok := obj["title"]; ok {
					entry["title"] = title
				}
				oneOf = append(oneOf, entry)
			}
			out["oneOf"] = oneOf
			return
		}
	}
	out["enum"] = items
}

func serializeNumericBounds(raw map[string]any, out map[string]any) {
	if v, ok := raw["exclusiveMin"]; ok {
		out["minimum"] = v
		out["exclusiveMinimum"] = true
	} else if v, ok := raw["min"]; ok {
		out["minimum"] = v
	}

	if v, ok := raw["exclusiveMax"]; ok {
		out["maximum"] = v
		out["exclusiveMaximum"] = true
	} else if v, ok := raw["max"]; ok {
		out["maximum"] = v
	}

	if v, ok := raw["multipleOf"]; ok {
		out["multipleOf"] = v
	}
}

func serializeItems(raw map[string]any, scope *Scope, out map[string]any) error {
	v, ok := raw["items"]
	if !ok {
		return nil
	}
	switch items := v.(type) {
	case []any:
		serialized := make([]any, len(items))
		for i, fragment := range items {
			s, err := serializeFragment(fragment, scope)
			if err != nil {
				return err
			}
			serialized[i] = s
		}
		out["items"] = serialized
	default:
		s, err := serializeFragment(v, scope)
		if err != nil {
			return err
		}
		out["items"] = s
	}
	return nil
}

func serializeUniqueItems(raw map[string]any, out map[string]any) error {
	v, ok := raw["uniqueItems"]
	if !ok {
		return nil
	}
	switch u := v.(type) {
	case bool:
		out["uniqueItems"] = u
	case []any:
		out["uniqueItems"] = true
		out["$$uniqueItemProperties"] = u
	}
	return nil
}

func serializeProperties(raw map[string]any, scope *Scope, out map[string]any) error {
	v, ok := raw["properties"]
	if !ok {
		if additional, ok := raw["additionalProperties"]; ok {
			out["additionalProperties"] = additional
		}
		if keys, ok := raw["keys"]; ok {
			if values, ok := raw["values"]; ok {
				return serializeKeysValues(keys, values, scope, out)
			}
		}
		return nil
	}

	list, ok := v.([]any)
	if !ok {
		return nil
	}

	properties := map[string]any{}
	order := make([]any, 0, len(list))
	required := make([]any, 0, len(list))

	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok || len(obj) != 1 {
			continue
		}
		for name, fragment := range obj {
			serialized, err := serializeFragment(fragment, scope)
			if err != nil {
				return err
			}
			properties[name] = serialized

			order = append(order, name)
			if fragmentObj, ok := fragment.(map[string]any); ok {
				if _, optional := typeNameAndOptional(fragmentObj); !optional {
					required = append(required, name)
				}
			} else if typeName, ok := fragment.(string); ok {
				if _, optional := splitTypeName(typeName); !optional {
					required = append(required, name)
				}
			} else {
				required = append(required, name)
			}
		}
	}

	out["properties"] = properties
	out["$$order"] = order
	if len(required) > 0 {
		out["required"] = required
	}

	if additional, ok := raw["additionalProperties"]; ok {
		out["additionalProperties"] = additional
	} else {
		out["additionalProperties"] = false
	}

	if keys, ok := raw["keys"]; ok {
		if values, ok := raw["values"]; ok {
			return serializeKeysValues(keys, values, scope, out)
		}
	}

	return nil
}

func serializeKeysValues(keys, values any, scope *Scope, out map[string]any) error {
	keysObj, ok := keys.(map[string]any)
	if !ok {
		return nil
	}
	pattern, _ := keysObj["pattern"].(string)
	serializedValues, err := serializeFragment(values, scope)
	if err != nil {
		return err
	}
	out["patternProperties"] = map[string]any{pattern: serializedValues}
	return nil
}

// yamlFragmentInto decodes a builtin data type's static schema fragment
// (always a small literal YAML string, e.g. "type: string\n") into dst.
func yamlFragmentInto(fragment string, dst map[string]any) error {
	decoded, err := decodeYAMLFragment(fragment)
	if err != nil {
		return err
	}
	for k, v := range decoded {
		dst[k] = v
	}
	return nil
}

// MarshalSchemaJSON serializes raw into a deterministic JSON document, using
// go-json-experiment/json's Deterministic mode so map key order never
// varies between runs (matching the teacher's `schema.go` MarshalJSON use
// of the same library for the same reason).
func MarshalSchemaJSON(raw any, scope *Scope) ([]byte, error) {
	doc, err := SerializeSchema(raw, scope)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc, json.Deterministic(true))
}
