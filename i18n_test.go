package jellyschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizerRendersMessage(t *testing.T) {
	localizer, err := NewLocalizer("en")
	require.NoError(t, err)

	msg := localizer.Message("minLength.violation", map[string]any{"min": 3})
	assert.Contains(t, msg, "3")
}

func TestLocalizerRendersTypeMismatch(t *testing.T) {
	localizer, err := NewLocalizer("en")
	require.NoError(t, err)

	msg := localizer.Message("type.mismatch", map[string]any{"type": "string"})
	assert.Contains(t, msg, "string")
}
