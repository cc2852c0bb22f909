package jellyschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateObjectAssemblesMarkedFields(t *testing.T) {
	schema := compileYAML(t, "properties:\n  - id:\n      type: uuidv4\n      generate: true\n  - name: string?\n")

	value, err := schema.Generate(NewWalkContext())
	require.NoError(t, err)

	doc, ok := value.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, doc, "id")
	assert.NotContains(t, doc, "name")

	id, ok := doc["id"].(string)
	require.True(t, ok)

	idSchema := compileYAML(t, "type: uuidv4\n")
	assert.True(t, idSchema.Validate(id, NewWalkContext()).IsValid())
}

func TestGenerateArrayOfGeneratedItems(t *testing.T) {
	schema := compileYAML(t, "type: array\ngenerate: true\nitems:\n  type: uuidv4\n  generate: true\n")

	value, err := schema.Generate(NewWalkContext())
	require.NoError(t, err)

	items, ok := value.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestGenerateWithoutGeneratorReturnsNil(t *testing.T) {
	schema := compileYAML(t, "type: string\n")
	value, err := schema.Generate(NewWalkContext())
	require.NoError(t, err)
	assert.Nil(t, value)
}
