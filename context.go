package jellyschema

import "fmt"

// WalkContext is a cursor carrying the current Path through a compile or
// validate walk. It is immutable: Push returns a new cursor sharing the
// parent's path prefix, so sibling branches of the walk never interfere
// with each other's position.
type WalkContext struct {
	path Path
}

// NewWalkContext returns a WalkContext positioned at the document root.
func NewWalkContext() *WalkContext {
	return &WalkContext{path: NewPath()}
}

// Push returns a new WalkContext with segment appended to the path.
// segment must be a string (property name) or an int (array index);
// any other type panics, since it indicates a programming error in the
// caller, not malformed user input.
func (c *WalkContext) Push(segment any) *WalkContext {
	var item PathItem
	switch v := segment.(type) {
	case string:
		item = NamePathItem(v)
	case int:
		item = IndexPathItem(v)
	default:
		panic(fmt.Sprintf("jellyschema: WalkContext.Push: unsupported segment type %T", segment))
	}
	return &WalkContext{path: c.path.Push(item)}
}

// Path returns the cursor's current Path.
func (c *WalkContext) Path() Path {
	return c.path
}

// JSONPath renders the cursor's current path in canonical bracket form.
func (c *WalkContext) JSONPath() string {
	return c.path.String()
}

// CompilationError builds a fatal CompileError bound to the cursor's current
// path and the given keyword.
func (c *WalkContext) CompilationError(keyword, format string, args ...any) error {
	return &CompileSchemaError{
		Path:    c.path,
		Keyword: keyword,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationError builds an accumulable ValidateDataError bound to the
// cursor's current path and the given keyword.
func (c *WalkContext) ValidationError(keyword, format string, args ...any) *ValidateDataError {
	return &ValidateDataError{
		DataPath: c.path,
		Keyword:  keyword,
		Message:  fmt.Sprintf(format, args...),
	}
}
