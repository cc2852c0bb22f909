package jellyschema

import "encoding/base64"

// newBinaryDataType registers `binary`, grounded on
// _examples/original_source/src/data_types/binary/mod.rs: any value that
// base64-decodes successfully.
func newBinaryDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		if _, err := base64.StdEncoding.DecodeString(s); err != nil {
			return ValidationStateFromError(ctx.ValidationError("type", "unable to decode base64"))
		}
		return NewValidationState()
	})
	return NewDataType("binary", "type: string\n", validator, nil)
}
