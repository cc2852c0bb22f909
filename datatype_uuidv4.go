package jellyschema

import "github.com/google/uuid"

// newUUIDv4DataType registers `uuidv4`, grounded on
// _examples/original_source/src/data_types/uuidv4/mod.rs: parse plus an
// explicit version-4 check, and a generator that emits a fresh random UUID
// the same way `uuid::Uuid::new_v4()` does.
func newUUIDv4DataType() DataType {
	validator := ValidatorFunc(func(value any, ctx *WalkContext) ValidationState {
		s, ok := value.(string)
		if !ok {
			return NewValidationState()
		}
		id, err := uuid.Parse(s)
		if err != nil || id.Version() != 4 {
			return ValidationStateFromError(ctx.ValidationError("type", "expected valid UUIDv4"))
		}
		return NewValidationState()
	})
	generator := GeneratorFunc(func(ctx *WalkContext) (any, error) {
		return uuid.New().String(), nil
	})
	return NewDataType("uuidv4", "type: string\n", validator, generator)
}
