package jellyschema

// Generator produces a value conforming to a compiled data type, used by
// Schema.Generate when a node was marked `generate: true`. It is the only
// part of the `generate:` keyword's behavior that lives in this package —
// writing the generated document to a file or wiring it to a CLI flag is
// left to callers, matching the Non-goal on filler/CLI tooling.
type Generator interface {
	Generate(ctx *WalkContext) (any, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(ctx *WalkContext) (any, error)

func (f GeneratorFunc) Generate(ctx *WalkContext) (any, error) { return f(ctx) }
