// Package jellyschema compiles a compact YAML schema dialect into an
// executable validator tree, validates arbitrary JSON values against it with
// per-path errors, and serializes the compiled tree into a JSON Schema
// Draft-4-plus-extensions document and a companion UI descriptor.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for the builtin
// format validators this package's data types are built on.
package jellyschema
