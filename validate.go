package jellyschema

// ValidateDataError is a single accumulated validation failure, bound to the
// path of the value that failed and the keyword that rejected it.
type ValidateDataError struct {
	DataPath Path
	Keyword  string
	Message  string
}

func (e *ValidateDataError) Error() string {
	return e.DataPath.String() + ": " + e.Keyword + ": " + e.Message
}

// ValidationState accumulates zero or more ValidateDataErrors produced while
// walking a value against a compiled Schema. It never panics and is never
// used to signal a fatal condition — that is CompileError's job.
type ValidationState struct {
	errs []ValidateDataError
}

// NewValidationState returns an empty, valid state.
func NewValidationState() ValidationState {
	return ValidationState{}
}

// ValidationStateFromError builds a single-error state, the common case for
// a Validator that found exactly one problem.
func ValidationStateFromError(err *ValidateDataError) ValidationState {
	if err == nil {
		return NewValidationState()
	}
	return ValidationState{errs: []ValidateDataError{*err}}
}

// Append merges other's errors into this state and returns the receiver,
// so call sites can chain: state.Append(child.Validate(...)).
func (s *ValidationState) Append(other ValidationState) *ValidationState {
	s.errs = append(s.errs, other.errs...)
	return s
}

// AddError appends a single error to the state.
func (s *ValidationState) AddError(err *ValidateDataError) *ValidationState {
	if err != nil {
		s.errs = append(s.errs, *err)
	}
	return s
}

// IsValid reports whether the state accumulated no errors.
func (s ValidationState) IsValid() bool {
	return len(s.errs) == 0
}

// IsInvalid is the negation of IsValid.
func (s ValidationState) IsInvalid() bool {
	return !s.IsValid()
}

// Errors returns the accumulated errors in the order they were recorded.
func (s ValidationState) Errors() []ValidateDataError {
	return s.errs
}

// Validator is implemented by every compiled keyword and data type. Validate
// never panics; malformed or unexpected values are reported as
// ValidateDataErrors, not errors or panics.
type Validator interface {
	Validate(value any, ctx *WalkContext) ValidationState
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(value any, ctx *WalkContext) ValidationState

func (f ValidatorFunc) Validate(value any, ctx *WalkContext) ValidationState {
	return f(value, ctx)
}
