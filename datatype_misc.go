package jellyschema

import "net/url"

// newPasswordDataType registers `password`: a plain string whose only
// distinguishing trait is the UI treatment (masked input, `writeOnly`),
// carried by the serializer rather than by a custom validator.
func newPasswordDataType() DataType {
	return NewDataType("password", "type: string\nwriteOnly: true\n", nil, nil)
}

// newTextDataType registers `text`: a string rendered as a multi-line field
// in the UI serializer, with no extra validation beyond `type: string`.
func newTextDataType() DataType {
	return NewDataType("text", "type: string\n", nil, nil)
}

// newURIDataType registers `uri`.
func newURIDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" {
			return ValidationStateFromError(ctx.ValidationError("type", "expected `uri`"))
		}
		return NewValidationState()
	})
	return NewDataType("uri", "type: string\n", validator, nil)
}

// newStringlistDataType registers `stringlist`: an array of strings,
// expressed entirely through its fragment schema.
func newStringlistDataType() DataType {
	return NewDataType("stringlist", "type: array\nitems:\n  type: string\n", nil, nil)
}
