package jellyschema

// ScopeBuilder assembles a Scope from a keyword order and a set of data
// types, mirroring the teacher's chainable Compiler configuration (With*/
// Register* methods returning the receiver). Start from NewScopeBuilder
// (empty) or DefaultScopeBuilder (the fixed default keyword order plus every
// builtin data type) and layer custom keywords/types on top.
type ScopeBuilder struct {
	keywords     []Keyword
	keywordNames map[string]bool
	dataTypes    DataTypeMap
	err          error
}

// NewScopeBuilder returns an empty builder with no keywords or data types
// registered.
func NewScopeBuilder() *ScopeBuilder {
	return &ScopeBuilder{keywordNames: make(map[string]bool)}
}

// DefaultScopeBuilder returns a builder pre-loaded with the fixed default
// keyword order (keywords_default.go) and every builtin data type
// (datatypes_default.go).
func DefaultScopeBuilder() *ScopeBuilder {
	b := NewScopeBuilder()
	for _, kw := range defaultKeywords() {
		b.Keyword(kw)
	}
	b.dataTypes = defaultDataTypes()
	return b
}

// Keyword registers kw, appended after anything already registered. It is a
// no-op (recording an error surfaced at Build) if the same keyword name was
// already registered.
func (b *ScopeBuilder) Keyword(kw Keyword) *ScopeBuilder {
	if b.err != nil {
		return b
	}
	if b.keywordNames[kw.Name()] {
		b.err = ErrDuplicateKeyword
		return b
	}
	b.keywordNames[kw.Name()] = true
	b.keywords = append(b.keywords, kw)
	return b
}

// DataType registers a custom data type under its own name, replacing any
// type previously registered with the same name.
func (b *ScopeBuilder) DataType(dt DataType) *ScopeBuilder {
	if b.err != nil {
		return b
	}
	b.dataTypes = b.dataTypes.With(dt)
	return b
}

// Build finalizes the builder into an immutable Scope, or returns the first
// error recorded by a prior builder call.
func (b *ScopeBuilder) Build() (*Scope, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewScope(b.keywords, b.dataTypes), nil
}

// DefaultScope is a convenience for DefaultScopeBuilder().Build(), which
// cannot fail since the default registration never produces a builder
// error.
func DefaultScope() *Scope {
	scope, err := DefaultScopeBuilder().Build()
	if err != nil {
		panic("jellyschema: default scope construction failed: " + err.Error())
	}
	return scope
}
