package jellyschema

// Keyword is a compiler plug-in for one schema keyword (e.g. "type",
// "minLength", "properties"). Compile inspects the raw YAML value bound to
// the keyword's name at the current cursor and either rejects it with a
// CompileError, contributes no runtime behavior (nil Validator, nil error),
// or returns a Validator that will run at validation time.
//
// Keyword implementations never accumulate errors: a single bad value stops
// compilation, matching spec.md's "CompileError is never accumulated".
type Keyword interface {
	// Name is the schema key this keyword compiles, e.g. "minLength".
	Name() string

	// Compile inspects raw (the whole schema object at the current cursor,
	// not just this keyword's value) and returns a Validator to run at
	// validation time, or nil if this keyword contributes none.
	Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error)
}

// KeywordFunc adapts a plain function to the Keyword interface.
type KeywordFunc struct {
	KeywordName string
	CompileFunc func(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error)
}

func (k KeywordFunc) Name() string { return k.KeywordName }

func (k KeywordFunc) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	return k.CompileFunc(raw, ctx, scope)
}
