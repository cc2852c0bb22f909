package jellyschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstKeyword(t *testing.T) {
	schema := compileYAML(t, "const: 42\n")
	assert.True(t, schema.Validate(42, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(43, NewWalkContext()).IsInvalid())
}

func TestEnumKeyword(t *testing.T) {
	schema := compileYAML(t, "enum: [red, green, blue]\n")
	assert.True(t, schema.Validate("red", NewWalkContext()).IsValid())
	assert.True(t, schema.Validate("purple", NewWalkContext()).IsInvalid())
}

func TestEnumWithValueObjects(t *testing.T) {
	schema := compileYAML(t, "enum:\n  - value: 1\n    title: One\n  - value: 2\n    title: Two\n")
	assert.True(t, schema.Validate(1, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(3, NewWalkContext()).IsInvalid())
}

func TestItemsTupleForm(t *testing.T) {
	// Tuple form tries every schema against every element: an element is
	// valid only if it matches exactly one of the schemas, regardless of
	// position (spec.md §4.4).
	schema := compileYAML(t, "type: array\nitems:\n  - type: number\n    min: 10\n  - type: number\n    min: 20\n")
	assert.True(t, schema.Validate([]any{11}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate([]any{20}, NewWalkContext()).IsInvalid())
	assert.True(t, schema.Validate([]any{8}, NewWalkContext()).IsInvalid())
}

func TestItemsSingleSchemaForm(t *testing.T) {
	schema := compileYAML(t, "type: array\nitems: string\n")
	assert.True(t, schema.Validate([]any{"a", "b"}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate([]any{"a", 1}, NewWalkContext()).IsInvalid())
}

func TestArrayLengthKeywords(t *testing.T) {
	schema := compileYAML(t, "type: array\nminItems: 1\nmaxItems: 2\nitems: string\n")
	assert.True(t, schema.Validate([]any{"a"}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate([]any{}, NewWalkContext()).IsInvalid())
	assert.True(t, schema.Validate([]any{"a", "b", "c"}, NewWalkContext()).IsInvalid())
}

func TestUniqueItemsBoolean(t *testing.T) {
	schema := compileYAML(t, "type: array\nuniqueItems: true\nitems: integer\n")
	assert.True(t, schema.Validate([]any{1, 2, 3}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate([]any{1, 2, 1}, NewWalkContext()).IsInvalid())
}

func TestUniqueItemsReportsOffendingIndex(t *testing.T) {
	schema := compileYAML(t, "type: array\nitems:\n  type: string\nuniqueItems: true\n")
	state := schema.Validate([]any{"a", "b", "a"}, NewWalkContext())
	assert.True(t, state.IsInvalid())
	errs := state.Errors()
	assert.Len(t, errs, 1)
	assert.Equal(t, "$[2]", errs[0].DataPath.String())
	assert.True(t, schema.Validate([]any{"a", "b"}, NewWalkContext()).IsValid())
}

func TestUniqueItemsByPath(t *testing.T) {
	schema := compileYAML(t, "type: array\nuniqueItems:\n  - $.id\nitems:\n  properties:\n    - id: integer\n")
	assert.True(t, schema.Validate([]any{
		map[string]any{"id": 1},
		map[string]any{"id": 2},
	}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate([]any{
		map[string]any{"id": 1},
		map[string]any{"id": 1},
	}, NewWalkContext()).IsInvalid())
}

func TestPropertiesKnownAndAdditional(t *testing.T) {
	schema := compileYAML(t, "properties:\n  - name: string\n  - age: integer?\n")
	assert.True(t, schema.Validate(map[string]any{"name": "alice"}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(map[string]any{"name": "alice", "extra": 1}, NewWalkContext()).IsInvalid())
	assert.True(t, schema.Validate(map[string]any{"name": 5}, NewWalkContext()).IsInvalid())
}

func TestPropertiesRequiredVsOptional(t *testing.T) {
	schema := compileYAML(t, "properties:\n  - name: string\n  - nickname: string?\n")
	assert.True(t, schema.Validate(map[string]any{"name": "alice"}, NewWalkContext()).IsValid())

	schema = compileYAML(t, "additionalProperties: true\nproperties:\n  - name: string\n")
	assert.True(t, schema.Validate(map[string]any{"extra": 1, "name": "alice"}, NewWalkContext()).IsValid())
}

func TestKeysValuesPatternProperties(t *testing.T) {
	schema := compileYAML(t, "keys:\n  type: string\n  pattern: '^opt_'\nvalues: string\n")
	assert.True(t, schema.Validate(map[string]any{"opt_a": "x"}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(map[string]any{"bad": "x"}, NewWalkContext()).IsInvalid())
}

func TestKeysValuesPatternFallsThroughToAdditionalProperties(t *testing.T) {
	schema := compileYAML(t, "additionalProperties: true\nkeys:\n  type: string\n  pattern: '^opt_'\nvalues: string\n")
	assert.True(t, schema.Validate(map[string]any{"opt_a": "x"}, NewWalkContext()).IsValid())
	assert.True(t, schema.Validate(map[string]any{"bad": "x"}, NewWalkContext()).IsValid())
}

func TestAnnotationKeywords(t *testing.T) {
	schema := compileYAML(t, "type: string\ntitle: Name\nhidden: true\n")
	assert.Equal(t, "Name", schema.Annotations["title"])
	assert.Equal(t, true, schema.Annotations["hidden"])
}

func TestVersionKeyword(t *testing.T) {
	schema := compileYAML(t, "$version: 1\n")
	assert.NotNil(t, schema)

	scope := DefaultScope()
	_, err := scope.Compile([]byte("$version: 2\n"))
	assert.Error(t, err)
}
