package jellyschema

// versionKeyword compiles `$version:`. Only the literal value 1 is
// currently supported.
type versionKeyword struct{}

func newVersionKeyword() Keyword { return versionKeyword{} }

func (versionKeyword) Name() string { return "$version" }

func (versionKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["$version"]
	if !present {
		return nil, nil
	}
	if !isInteger(rawValue) {
		return nil, ctx.CompilationError("$version", "expected a number")
	}
	n, ok := numberToRat(rawValue)
	if !ok || !n.IsInt() || n.Num().Sign() < 0 || n.Num().Int64() != 1 {
		return nil, ctx.CompilationError("$version", "version `1` supported only")
	}
	return nil, nil
}
