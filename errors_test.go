package jellyschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileSchemaErrorMessage(t *testing.T) {
	p, _ := ParsePath("$.name")
	err := &CompileSchemaError{Path: p, Keyword: "type", Message: "unknown data type"}
	assert.Contains(t, err.Error(), "$['name']")
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "unknown data type")
}

func TestDeserializeSchemaErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := &DeserializeSchemaError{Err: inner}
	assert.ErrorIs(t, err, inner)
}

func TestGenerateValueErrorMessage(t *testing.T) {
	err := &GenerateValueError{DataType: "uuidv4", Message: "no generator registered for this type"}
	assert.Contains(t, err.Error(), "uuidv4")
	assert.Contains(t, err.Error(), "no generator registered")
}
