package jellyschema

// builtinTypes are the primitive type names the `type:` keyword accepts
// without consulting the DataTypeMap, mirroring
// original_source/src/validators/type_.rs's is_builtin_type.
var builtinTypes = map[string]bool{
	"array":   true,
	"object":  true,
	"boolean": true,
	"integer": true,
	"number":  true,
	"string":  true,
}

// IsBuiltinType reports whether name is one of the six JSON primitive type
// names understood directly by the `type` keyword.
func IsBuiltinType(name string) bool {
	return builtinTypes[name]
}

// DataType is a pluggable custom type registered under a name other than
// one of the six builtins. Schema is a YAML fragment (e.g. `type: string\npattern: ...`)
// compiled like any other schema; Validator, if non-nil, runs in addition to
// that fragment's own compiled validators; Generator, if non-nil, lets
// `generate: true` produce a conforming value.
type DataType interface {
	Name() string
	Schema() string
	Validator() Validator
	Generator() Generator
}

// dataType is the concrete DataType implementation used by every builtin
// registration in datatypes_default.go.
type dataType struct {
	name      string
	schema    string
	validator Validator
	generator Generator
}

func NewDataType(name, schema string, validator Validator, generator Generator) DataType {
	return &dataType{name: name, schema: schema, validator: validator, generator: generator}
}

func (d *dataType) Name() string         { return d.name }
func (d *dataType) Schema() string       { return d.schema }
func (d *dataType) Validator() Validator { return d.validator }
func (d *dataType) Generator() Generator { return d.generator }

// DataTypeMap is an immutable name-indexed registry of DataTypes, built by
// ScopeBuilder and consulted by the `type` keyword's compiler.
type DataTypeMap struct {
	byName map[string]DataType
}

func NewDataTypeMap(types ...DataType) DataTypeMap {
	m := DataTypeMap{byName: make(map[string]DataType, len(types))}
	for _, t := range types {
		m.byName[t.Name()] = t
	}
	return m
}

func (m DataTypeMap) Lookup(name string) (DataType, bool) {
	t, ok := m.byName[name]
	return t, ok
}

func (m DataTypeMap) With(t DataType) DataTypeMap {
	out := DataTypeMap{byName: make(map[string]DataType, len(m.byName)+1)}
	for k, v := range m.byName {
		out.byName[k] = v
	}
	out.byName[t.Name()] = t
	return out
}
