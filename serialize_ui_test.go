package jellyschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serializeUIFromYAML(t *testing.T, yamlSrc string) map[string]any {
	t.Helper()
	scope := DefaultScope()
	schema, err := scope.Compile([]byte(yamlSrc))
	require.NoError(t, err)
	return SerializeUI(schema.Raw, scope)
}

func TestSerializeUIHelpWarningPlaceholder(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: string\nhelp: Enter your name\nwarning: Careful\nplaceholder: Jane Doe\n")
	assert.Equal(t, "Enter your name", ui["ui:help"])
	assert.Equal(t, "Careful", ui["ui:warning"])
	assert.Equal(t, "Jane Doe", ui["ui:placeholder"])
}

func TestSerializeUITextWidgetIsTextarea(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: text\n")
	assert.Equal(t, "textarea", ui["ui:widget"])
}

func TestSerializeUIPasswordWidget(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: password\n")
	assert.Equal(t, "password", ui["ui:widget"])
}

func TestSerializeUIHiddenOverridesWidget(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: text\nhidden: true\n")
	assert.Equal(t, "hidden", ui["ui:widget"])
}

func TestSerializeUIReadOnly(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: string\nreadOnly: true\n")
	assert.Equal(t, true, ui["ui:readonly"])
}

func TestSerializeUIOptionsOmittedWhenAllTrue(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: array\nitems: string\naddable: true\nremovable: true\norderable: true\n")
	assert.NotContains(t, ui, "ui:options")
}

func TestSerializeUIOptionsEmittedWhenOverridden(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: array\nitems: string\naddable: false\n")
	options, ok := ui["ui:options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, options["addable"])
	assert.Equal(t, true, options["removable"])
	assert.Equal(t, true, options["orderable"])
}

func TestSerializeUIPropertiesOrderAndNesting(t *testing.T) {
	ui := serializeUIFromYAML(t, "properties:\n  - b:\n      type: string\n      help: second\n  - a: string\n")
	assert.Equal(t, []any{"b", "a"}, ui["ui:order"])

	bField, ok := ui["b"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "second", bField["ui:help"])

	_, ok = ui["a"].(map[string]any)
	require.True(t, ok)
}

func TestSerializeUIItemsSingleSchema(t *testing.T) {
	ui := serializeUIFromYAML(t, "type: array\nitems:\n  type: string\n  help: one item\n")
	items, ok := ui["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "one item", items["ui:help"])
}
