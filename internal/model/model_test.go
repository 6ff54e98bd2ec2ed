package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Kind
	}{
		{"class", Class},
		{"  Class ", Class},
		{"func", Function},
		{"FUNCTION", Function},
		{"const", Constant},
		{"constant", Constant},
		{"callback", Callback},
		{"widget", Global},
		{"", Global},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseKind(tt.in))
		})
	}
}

func TestParseSide(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Client, ParseSide("client"))
	assert.Equal(t, Server, ParseSide(" SERVER "))
	assert.Equal(t, Shared, ParseSide("shared"))
	assert.Equal(t, Both, ParseSide("both"))
	assert.Equal(t, Unknown, ParseSide(""))
	assert.Equal(t, Unknown, ParseSide("browser"))
}

func TestKindNested(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{Constructor, Method, Property, Callback} {
		assert.True(t, k.Nested(), k)
	}
	for _, k := range []Kind{Class, Function, Event, Global, Constant} {
		assert.False(t, k.Nested(), k)
	}
}

func TestEntityFieldsAlwaysPresent(t *testing.T) {
	t.Parallel()

	e := Entity{Kind: Function, Side: Unknown, Category: DefaultCategory}
	f := e.Fields()

	for _, key := range []string{
		"kind", "name", "description", "version", "deprecated", "extends",
		"side", "category", "notes", "params", "returns", "example_code",
		"declaration", "cancellable", "static", "read_only",
	} {
		_, ok := f[key]
		assert.True(t, ok, "missing key %q", key)
	}
	assert.Nil(t, f["returns"])
	assert.Equal(t, []string{}, f["notes"])
}

func TestEntityFieldsValues(t *testing.T) {
	t.Parallel()

	e := Entity{
		Kind:    Event,
		Name:    "onPlayerJoin",
		Side:    Server,
		Params:  []Param{{Type: "int", Name: "pid", Description: "player id"}},
		Returns: &Returns{Type: "bool", Description: "ok"},
		Example: "x()",
	}
	f := e.Fields()

	assert.Equal(t, "event", f["kind"])
	assert.Equal(t, "server", f["side"])
	assert.Equal(t, "x()", f["example_code"])

	params, ok := f["params"].([]Fields)
	require.True(t, ok)
	require.Len(t, params, 1)
	assert.Equal(t, "pid", params[0]["name"])

	ret, ok := f["returns"].(Fields)
	require.True(t, ok)
	assert.Equal(t, "bool", ret["type"])
}

func TestSortedClasses(t *testing.T) {
	t.Parallel()

	d := NewDocs()
	for _, e := range []Entity{
		{Kind: Class, Name: "B", Side: Server, Category: "Math"},
		{Kind: Class, Name: "A", Side: Server, Category: "Math"},
		{Kind: Class, Name: "Z", Side: Client, Category: "Zeta"},
		{Kind: Class, Name: "C", Side: Server, Category: "Audio"},
	} {
		d.Classes[KeyOf(&e)] = &ClassDoc{Definition: e}
	}

	var names []string
	for _, c := range d.SortedClasses() {
		names = append(names, c.Definition.Name)
	}
	assert.Equal(t, []string{"Z", "C", "A", "B"}, names)
}

func TestConstGroupFields(t *testing.T) {
	t.Parallel()

	g := &ConstGroup{
		Side:     Client,
		Category: "Flags",
		Elements: []ConstElement{{Name: "A"}, {Name: "B", Description: "second"}},
	}
	f := g.Fields()
	assert.Equal(t, "client", f["side"])
	assert.Equal(t, "Flags", f["category"])
	elements, ok := f["elements"].([]Fields)
	require.True(t, ok)
	require.Len(t, elements, 2)
	assert.Equal(t, "second", elements[1]["description"])
}
