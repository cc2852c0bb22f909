package jellyschema

import (
	"encoding/base64"
	"regexp"
)

var fileRegex = regexp.MustCompile(`^data:.*;name=(.*);([a-zA-Z0-9]+),(.*)$`)

// newFileDataType registers `file`, grounded on
// _examples/original_source/src/data_types/file/mod.rs: a data URI with a
// mandatory file name and base64 encoding.
func newFileDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		m := fileRegex.FindStringSubmatch(s)
		if m == nil {
			return ValidationStateFromError(ctx.ValidationError("type", "expected `file`"))
		}
		name, encoding, body := m[1], m[2], m[3]
		if name == "" {
			return ValidationStateFromError(ctx.ValidationError("type", "expected file name"))
		}
		if encoding != "base64" {
			return ValidationStateFromError(ctx.ValidationError("type", "expected base64 encoding"))
		}
		if _, err := base64.StdEncoding.DecodeString(body); err != nil {
			return ValidationStateFromError(ctx.ValidationError("type", "unable to decode base64"))
		}
		return NewValidationState()
	})
	return NewDataType("file", "type: string\n", validator, nil)
}
