package jellyschema

// SerializeUI walks raw (a decoded schema fragment, the same shape
// SerializeSchema consumes) and produces the companion UI descriptor
// object spec.md §4.5 calls for: a map carrying only `ui:`-prefixed keys,
// derived from annotation keywords and the node's `type`/`hidden`/
// `writeOnly` — never from a compiled Schema's Validators.
func SerializeUI(raw any, scope *Scope) map[string]any {
	switch v := raw.(type) {
	case string:
		return SerializeUI(map[string]any{"type": v}, scope)
	case map[string]any:
		return uiObjectFromFragment(v, scope)
	default:
		return map[string]any{}
	}
}

func uiObjectFromFragment(raw map[string]any, scope *Scope) map[string]any {
	out := map[string]any{}

	if v, ok := raw["help"].(string); ok {
		out["ui:help"] = v
	}
	if v, ok := raw["warning"].(string); ok {
		out["ui:warning"] = v
	}
	if v, ok := raw["placeholder"].(string); ok {
		out["ui:placeholder"] = v
	}
	if widget, ok := uiWidget(raw); ok {
		out["ui:widget"] = widget
	}
	if v, ok := raw["readOnly"].(bool); ok && v {
		out["ui:readonly"] = true
	}
	if v, ok := raw["collapsed"].(bool); ok {
		out["ui:collapsed"] = v
	}
	if v, ok := raw["collapsible"].(bool); ok {
		out["ui:collapsible"] = v
	}

	if options := uiOptions(raw); options != nil {
		out["ui:options"] = options
	}

	if err := uiProperties(raw, scope, out); err != nil {
		return out
	}
	uiItems(raw, scope, out)
	uiKeys(raw, out)

	return out
}

// uiWidget derives the `ui:widget` hint from a node's own type and
// writeOnly/hidden annotations, per spec.md §4.5's primitive table
// ("text" -> textarea, "password" -> password widget) plus the explicit
// `hidden` annotation.
func uiWidget(raw map[string]any) (string, bool) {
	if v, ok := raw["hidden"].(bool); ok && v {
		return "hidden", true
	}
	name, _ := typeNameAndOptional(raw)
	switch name {
	case "text":
		return "textarea", true
	case "password":
		return "password", true
	}
	if v, ok := raw["writeOnly"].(bool); ok && v {
		return "password", true
	}
	return "", false
}

// uiOptions emits `ui:options` only when at least one of addable/
// removable/orderable differs from its all-true default, per spec.md
// §4.5 ("emitted only when any differs from `true`").
func uiOptions(raw map[string]any) map[string]any {
	addable := boolOrDefault(raw, "addable", true)
	removable := boolOrDefault(raw, "removable", true)
	orderable := boolOrDefault(raw, "orderable", true)

	if addable && removable && orderable {
		return nil
	}
	return map[string]any{
		"addable":   addable,
		"removable": removable,
		"orderable": orderable,
	}
}

func boolOrDefault(raw map[string]any, key string, def bool) bool {
	if v, ok := raw[key].(bool); ok {
		return v
	}
	return def
}

// uiProperties walks an object node's `properties` list, emitting
// `ui:order` (declaration order, mirroring SerializeSchema's `$$order`)
// plus one nested entry per property keyed by its own name.
func uiProperties(raw map[string]any, scope *Scope, out map[string]any) error {
	list, ok := raw["properties"].([]any)
	if !ok {
		return nil
	}

	order := make([]any, 0, len(list))
	for _, entry := range list {
		obj, ok := entry.(map[string]any)
		if !ok || len(obj) != 1 {
			continue
		}
		for name, fragment := range obj {
			order = append(order, name)
			out[name] = SerializeUI(fragment, scope)
		}
	}
	out["ui:order"] = order
	return nil
}

// uiItems mirrors the array-node case: a single nested `items` entry for
// the single-schema form, a list of entries for the tuple form.
func uiItems(raw map[string]any, scope *Scope, out map[string]any) {
	v, ok := raw["items"]
	if !ok {
		return
	}
	switch items := v.(type) {
	case []any:
		serialized := make([]any, len(items))
		for i, fragment := range items {
			serialized[i] = SerializeUI(fragment, scope)
		}
		out["items"] = serialized
	default:
		out["items"] = SerializeUI(v, scope)
	}
}

// uiKeys handles the dynamic-key-object form (`keys`/`values`): spec.md
// §4.5 calls for `ui:keys.ui:title` describing the dynamic key itself.
func uiKeys(raw map[string]any, out map[string]any) {
	keysObj, ok := raw["keys"].(map[string]any)
	if !ok {
		return
	}
	title, ok := keysObj["title"].(string)
	if !ok {
		return
	}
	out["ui:keys"] = map[string]any{"ui:title": title}
}
