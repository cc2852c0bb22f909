package jellyschema

import "strconv"

// PathItem is a single step in a Path: either a property name or an array
// index.
type PathItem struct {
	name    string
	index   int
	isIndex bool
}

// NamePathItem builds a property-name path item.
func NamePathItem(name string) PathItem {
	return PathItem{name: name}
}

// IndexPathItem builds an array-index path item.
func IndexPathItem(index int) PathItem {
	return PathItem{index: index, isIndex: true}
}

// IsIndex reports whether the item is an array index rather than a property
// name.
func (i PathItem) IsIndex() bool {
	return i.isIndex
}

// Name returns the property name; only meaningful when !IsIndex().
func (i PathItem) Name() string {
	return i.name
}

// Index returns the array index; only meaningful when IsIndex().
func (i PathItem) Index() int {
	return i.index
}

func (i PathItem) String() string {
	if i.isIndex {
		return "[" + strconv.Itoa(i.index) + "]"
	}
	return "['" + i.name + "']"
}

// Path is an immutable, ordered sequence of path items locating a value
// inside a JSON document. The empty Path denotes the document root.
type Path struct {
	items []PathItem
}

// NewPath returns the root path.
func NewPath() Path {
	return Path{}
}

// Push returns a new Path with item appended at the end. Path is never
// mutated in place: callers share the parent's prefix for free.
func (p Path) Push(item PathItem) Path {
	items := make([]PathItem, len(p.items)+1)
	copy(items, p.items)
	items[len(p.items)] = item
	return Path{items: items}
}

// Items returns the path's items in order. The returned slice must not be
// mutated by the caller.
func (p Path) Items() []PathItem {
	return p.items
}

// Len reports the number of items in the path.
func (p Path) Len() int {
	return len(p.items)
}

// String renders the path in canonical bracket notation, e.g. $['a'][0].
func (p Path) String() string {
	s := "$"
	for _, item := range p.items {
		s += item.String()
	}
	return s
}

// Lookup walks value segment by segment following path, returning the
// located value and true, or (nil, false) if any segment fails to resolve
// (wrong container kind, missing property, or out-of-range index). It never
// panics on malformed input.
func Lookup(value any, path Path) (any, bool) {
	current := value
	for _, item := range path.items {
		if item.IsIndex() {
			arr, ok := current.([]any)
			if !ok {
				return nil, false
			}
			if item.Index() < 0 || item.Index() >= len(arr) {
				return nil, false
			}
			current = arr[item.Index()]
			continue
		}

		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		v, exists := obj[item.Name()]
		if !exists {
			return nil, false
		}
		current = v
	}
	return current, true
}
