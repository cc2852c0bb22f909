package jellyschema

// Annotation keywords carry no validation behavior of their own — they
// describe how a schema node should be presented in a generated UI. Each
// still participates in compilation (so a wrong-typed value is still a
// compile error) and is copied into Schema.Annotations by the compiler;
// serialize_ui.go reads the same keys from the raw fragment. Grouped in one file because, unlike the numeric/string/
// array keywords, every annotation shares exactly one of two contracts:
// "must be a string" or "must be a boolean".
var annotationKeywordNames = []string{
	"title", "description", "help", "warning", "placeholder",
	"hidden", "collapsed", "collapsible", "readOnly", "writeOnly",
	"addable", "removable", "orderable",
}

var stringAnnotationKeywords = map[string]bool{
	"title": true, "description": true, "help": true,
	"warning": true, "placeholder": true,
}

type annotationKeyword struct {
	name string
}

func (k annotationKeyword) Name() string { return k.name }

func (k annotationKeyword) Compile(raw map[string]any, ctx *WalkContext, scope *Scope) (Validator, error) {
	rawValue, present := raw[k.name]
	if !present {
		return nil, nil
	}
	if stringAnnotationKeywords[k.name] {
		if _, ok := rawValue.(string); !ok {
			return nil, ctx.CompilationError(k.name, "expected a string, got %s", getDataType(rawValue))
		}
		return nil, nil
	}
	if _, ok := rawValue.(bool); !ok {
		return nil, ctx.CompilationError(k.name, "expected a boolean, got %s", getDataType(rawValue))
	}
	return nil, nil
}

func defaultAnnotationKeywords() []Keyword {
	keywords := make([]Keyword, len(annotationKeywordNames))
	for i, name := range annotationKeywordNames {
		keywords[i] = annotationKeyword{name: name}
	}
	return keywords
}
