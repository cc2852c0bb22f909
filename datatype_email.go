package jellyschema

var emailRegex = mustCompileRegex(`^(?i)[a-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?(?:\.[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?)*$`)

// newEmailDataType registers `email`, grounded on
// _examples/original_source/src/data_types/email/mod.rs.
func newEmailDataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		matched, err := emailRegex.MatchString(s)
		if err != nil || !matched {
			return ValidationStateFromError(ctx.ValidationError("type", "doesn't match regular expression"))
		}
		return NewValidationState()
	})
	return NewDataType("email", "type: string\n", validator, nil)
}
