package jellyschema

import "testing"

func TestGetDataType(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{nil, "null"},
		{true, "boolean"},
		{"hi", "string"},
		{5, "integer"},
		{5.0, "integer"},
		{5.5, "number"},
		{[]any{1, 2}, "array"},
		{map[string]any{"a": 1}, "object"},
	}
	for _, c := range cases {
		if got := getDataType(c.value); got != c.want {
			t.Errorf("getDataType(%#v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestCodePointLength(t *testing.T) {
	if got := codePointLength("héllo"); got != 5 {
		t.Errorf("codePointLength(héllo) = %d, want 5", got)
	}
	if got := codePointLength("日本語"); got != 3 {
		t.Errorf("codePointLength(日本語) = %d, want 3", got)
	}
}
