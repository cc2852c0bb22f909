package jellyschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializeYAML(t *testing.T, yamlSrc string) map[string]any {
	t.Helper()
	scope := DefaultScope()
	schema, err := scope.Compile([]byte(yamlSrc))
	require.NoError(t, err)
	doc, err := SerializeSchema(schema.Raw, scope)
	require.NoError(t, err)
	return doc
}

func TestSerializeBasicObject(t *testing.T) {
	doc := serializeYAML(t, "properties:\n  - name: string\n  - age: integer?\n")
	assert.Equal(t, "object", doc["type"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "age")
	assert.Equal(t, []any{"integer", "null"}, props["age"].(map[string]any)["type"])
	assert.Equal(t, []any{"name"}, doc["required"])
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestSerializeOrderExtension(t *testing.T) {
	doc := serializeYAML(t, "properties:\n  - b: string\n  - a: string\n")
	assert.Equal(t, []any{"b", "a"}, doc["$$order"])
}

func TestSerializeExclusiveBounds(t *testing.T) {
	doc := serializeYAML(t, "type: integer\nexclusiveMin: 1\nmax: 10\n")
	assert.EqualValues(t, 1, doc["minimum"])
	assert.Equal(t, true, doc["exclusiveMinimum"])
	assert.EqualValues(t, 10, doc["maximum"])
}

func TestSerializeUniqueItemsPathExtension(t *testing.T) {
	doc := serializeYAML(t, "type: array\nuniqueItems:\n  - $.id\nitems:\n  properties:\n    - id: integer\n")
	assert.Equal(t, true, doc["uniqueItems"])
	assert.Equal(t, []any{"$.id"}, doc["$$uniqueItemProperties"])
}

func TestSerializeCustomTypeEmitsFormat(t *testing.T) {
	doc := serializeYAML(t, "type: email\n")
	assert.Equal(t, "string", doc["type"])
	assert.Equal(t, "email", doc["format"])
}

func TestSerializeFormulaAndMappingPassthrough(t *testing.T) {
	doc := serializeYAML(t, "type: string\nformula: \"a + b\"\nmapping:\n  x: 1\n")
	assert.Equal(t, "a + b", doc["$$formula"])
	mapping, ok := doc["$$mapping"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, mapping, "x")
}

func TestSerializeConstBecomesEnum(t *testing.T) {
	doc := serializeYAML(t, "type: string\nconst: \"fixed\"\n")
	assert.Equal(t, []any{"fixed"}, doc["enum"])
}

func TestSerializeTitledEnumBecomesOneOf(t *testing.T) {
	doc := serializeYAML(t, "type: string\nenum:\n  - value: a\n    title: Alpha\n  - value: b\n    title: Beta\n")
	oneOf, ok := doc["oneOf"].([]any)
	require.True(t, ok)
	require.Len(t, oneOf, 2)
	first, ok := oneOf[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Alpha", first["title"])
	assert.Equal(t, []any{"a"}, first["enum"])
}

func TestSerializeSchemaAdvertisesDraft4(t *testing.T) {
	doc := serializeYAML(t, "type: string\n")
	assert.Equal(t, "http://json-schema.org/draft-04/schema#", doc["$schema"])
}

func TestSerializeNoFormatTypesOmitFormat(t *testing.T) {
	for _, typeName := range []string{"text", "password", "port", "stringlist"} {
		doc := serializeYAML(t, "type: "+typeName+"\n")
		assert.NotContains(t, doc, "format", "type %s should not emit a format key", typeName)
	}
}

func TestSerializeFileTypeUsesDataURLFormat(t *testing.T) {
	doc := serializeYAML(t, "type: file\n")
	assert.Equal(t, "data-url", doc["format"])
}

func TestSerializePortDefaultBounds(t *testing.T) {
	doc := serializeYAML(t, "type: port\n")
	assert.EqualValues(t, 0, doc["minimum"])
	assert.EqualValues(t, 65535, doc["maximum"])
}

func TestMarshalSchemaJSONIsDeterministic(t *testing.T) {
	scope := DefaultScope()
	schema, err := scope.Compile([]byte("properties:\n  - b: string\n  - a: string\n"))
	require.NoError(t, err)

	out1, err := MarshalSchemaJSON(schema.Raw, scope)
	require.NoError(t, err)
	out2, err := MarshalSchemaJSON(schema.Raw, scope)
	require.NoError(t, err)
	assert.Equal(t, out1, out2)
}
