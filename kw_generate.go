package jellyschema

// generateKeyword compiles `generate:`. It must be a boolean if present and
// never contributes a Validator — it is purely a flag, read by
// Scope.compileObject into Schema.Generate and consumed by Schema.Generate.
type generateKeyword struct{}

func newGenerateKeyword() Keyword { return generateKeyword{} }

func (generateKeyword) Name() string { return "generate" }

func (generateKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw["generate"]
	if !present {
		return nil, nil
	}
	if _, ok := rawValue.(bool); !ok {
		return nil, ctx.CompilationError("generate", "expected a boolean, got %s", getDataType(rawValue))
	}
	return nil, nil
}
