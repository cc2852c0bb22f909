package jellyschema

import (
	"errors"
	"fmt"
)

// CompileError is the fatal error hierarchy: anything returned by the
// compiler is either a DeserializeSchemaError (the raw input wasn't even
// valid YAML) or a CompileSchemaError (the YAML was well-formed but the
// schema it describes is invalid). Unlike ValidationState, CompileErrors are
// never accumulated — the compiler stops at the first one.
type CompileError interface {
	error
	compileError()
}

// DeserializeSchemaError wraps a failure to parse the raw schema text into a
// value at all (bad YAML syntax).
type DeserializeSchemaError struct {
	Err error
}

func (e *DeserializeSchemaError) Error() string {
	return fmt.Sprintf("jellyschema: failed to deserialize schema: %s", e.Err)
}

func (e *DeserializeSchemaError) Unwrap() error { return e.Err }

func (*DeserializeSchemaError) compileError() {}

// CompileSchemaError reports a structurally invalid schema: a keyword's
// value violates its contract, at a specific path.
type CompileSchemaError struct {
	Path    Path
	Keyword string
	Message string
}

func (e *CompileSchemaError) Error() string {
	return fmt.Sprintf("jellyschema: %s: keyword %q: %s", e.Path.String(), e.Keyword, e.Message)
}

func (*CompileSchemaError) compileError() {}

// === Scope and Registry Related Errors ===
var (
	// ErrUnknownType names the failure of a `type:` keyword that names
	// neither a builtin primitive nor a registered custom data type. The
	// `type` keyword reports that case as a *CompileSchemaError with Keyword
	// "type"; that error does not wrap ErrUnknownType.
	ErrUnknownType = errors.New("jellyschema: unknown data type")

	// ErrUnknownKeyword names a schema key with no registered compiler. The
	// compiler does not return it: keys that no registered keyword reads
	// are ignored.
	ErrUnknownKeyword = errors.New("jellyschema: unknown keyword")

	// ErrDuplicateKeyword is returned when ScopeBuilder.Keyword is called
	// twice for the same keyword name.
	ErrDuplicateKeyword = errors.New("jellyschema: duplicate keyword registration")

	// ErrDuplicateDataType names a second registration of the same data type
	// name. ScopeBuilder.DataType does not return it: a later registration
	// replaces the earlier one.
	ErrDuplicateDataType = errors.New("jellyschema: duplicate data type registration")
)

// === Path Related Errors ===
var (
	// ErrInvalidPath is returned by ParsePath on malformed path grammar.
	ErrInvalidPath = errors.New("jellyschema: invalid path")
)

// === Schema Fragment Related Errors ===
var (
	// ErrSchemaNotObject names a raw schema fragment that is not a YAML
	// mapping. The compiler reports that case as a *CompileSchemaError that
	// does not wrap ErrSchemaNotObject.
	ErrSchemaNotObject = errors.New("jellyschema: schema fragment must be an object")
)

// === Generation Related Errors ===

// GenerateValueError reports a failure to produce a generated value for a
// data type, named by DataType so a caller can tell which type's generator
// was missing or failed.
type GenerateValueError struct {
	DataType string
	Message  string
}

func (e *GenerateValueError) Error() string {
	return fmt.Sprintf("jellyschema: %s: %s", e.DataType, e.Message)
}
