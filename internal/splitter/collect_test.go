package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

func TestCollector_Lookup(t *testing.T) {
	c := NewCollector(domain.Node{
		"pet":    map[string]any{"type": "object"},
		"Pet":    map[string]any{"type": "string"},
		"zebra":  map[string]any{},
		"ZEBRA2": map[string]any{},
	})

	name, def, ok := c.Lookup("#/definitions/Pet")
	require.True(t, ok)
	assert.Equal(t, "Pet", name, "exact match wins")
	assert.Equal(t, "string", def.(map[string]any)["type"])

	name, _, ok = c.Lookup("#/definitions/PET")
	require.True(t, ok)
	assert.Equal(t, "Pet", name, "lexically first case variant wins")

	name, _, ok = c.Lookup("#/definitions/Zebra")
	require.True(t, ok)
	assert.Equal(t, "zebra", name)

	name, _, ok = c.Lookup("#/definitions/zebra2")
	require.True(t, ok)
	assert.Equal(t, "ZEBRA2", name)

	_, _, ok = c.Lookup("#/definitions/Missing")
	assert.False(t, ok)

	_, _, ok = c.Lookup("#/definitions/")
	assert.False(t, ok)

	_, _, ok = c.Lookup("common.json#/definitions/pet")
	assert.False(t, ok, "external references stay unresolved")

	_, _, ok = c.Lookup("Pet")
	assert.False(t, ok)
}

func TestCollector_ExternalReference(t *testing.T) {
	doc := mustDecode(t, `{
	  "definitions": {
	    "page": {"type": "object", "properties": {"size": {"type": "integer"}}},
	    "list": {"type": "object", "properties": {"page": {"$ref": "common.json#/definitions/page"}}}
	  }
	}`)
	Normalize(doc)
	c := NewCollector(doc["definitions"].(map[string]any))

	out := domain.Node{}
	unresolved := c.Collect(map[string]any{"$ref": "#/definitions/List"}, out)

	assert.Equal(t, []string{"common.json#/definitions/Page"}, unresolved)
	assert.ElementsMatch(t, []string{"List"}, keysOf(out))
}

func TestCollector_TransitiveClosure(t *testing.T) {
	doc := mustDecode(t, storeSpec)
	Normalize(doc)
	c := NewCollector(doc["definitions"].(map[string]any))

	out := domain.Node{}
	unresolved := c.Collect(map[string]any{
		"type":  "array",
		"items": map[string]any{"$ref": "#/definitions/Order"},
	}, out)

	assert.Empty(t, unresolved)
	assert.ElementsMatch(t, []string{"Order", "OrderLine", "Customer"}, keysOf(out))
	assert.Equal(t, doc["definitions"].(map[string]any)["orderLine"], out["OrderLine"])
}

func TestCollector_Cycles(t *testing.T) {
	tests := []struct {
		name string
		defs string
		want []string
	}{
		{
			name: "self reference",
			defs: `{"Node": {"type": "object", "properties": {"next": {"$ref": "#/definitions/Node"}}}}`,
			want: []string{"Node"},
		},
		{
			name: "two cycle",
			defs: `{
			  "A": {"type": "object", "properties": {"b": {"$ref": "#/definitions/B"}}},
			  "B": {"type": "object", "properties": {"a": {"$ref": "#/definitions/A"}}}
			}`,
			want: []string{"A", "B"},
		},
		{
			name: "long cycle through arrays",
			defs: `{
			  "A": {"type": "array", "items": {"$ref": "#/definitions/B"}},
			  "B": {"type": "object", "properties": {"c": {"$ref": "#/definitions/C"}}},
			  "C": {"type": "object", "properties": {"d": {"type": "array", "items": {"$ref": "#/definitions/D"}}}},
			  "D": {"type": "object", "properties": {"a": {"$ref": "#/definitions/A"}}}
			}`,
			want: []string{"A", "B", "C", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(mustDecode(t, tt.defs))
			out := domain.Node{}

			first := tt.want[0]
			c.Collect(map[string]any{"$ref": "#/definitions/" + first}, out)

			assert.ElementsMatch(t, tt.want, keysOf(out))
		})
	}
}

func TestCollector_SkipsDefinitionsAlreadyCollected(t *testing.T) {
	c := NewCollector(domain.Node{
		"Outer": map[string]any{"type": "object", "properties": map[string]any{
			"inner": map[string]any{"$ref": "#/definitions/Inner"},
		}},
		"Inner": map[string]any{"type": "string"},
	})

	placeholder := map[string]any{"type": "object"}
	out := domain.Node{"Outer": placeholder}

	c.Collect(map[string]any{"$ref": "#/definitions/Outer"}, out)

	assert.Equal(t, placeholder, out["Outer"])
	assert.NotContains(t, out, "Inner", "an already collected definition is not descended into again")
}

func TestCollector_UnresolvedRefs(t *testing.T) {
	c := NewCollector(domain.Node{"Known": map[string]any{"type": "string"}})
	out := domain.Node{}

	unresolved := c.Collect(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"known":   map[string]any{"$ref": "#/definitions/Known"},
			"missing": map[string]any{"$ref": "#/definitions/Ghost"},
		},
	}, out)

	assert.Equal(t, []string{"#/definitions/Ghost"}, unresolved)
	assert.Equal(t, []string{"Known"}, keysOf(out))
}

func TestCollector_CapitalizesKeys(t *testing.T) {
	c := NewCollector(domain.Node{"widget": map[string]any{"type": "string"}})
	out := domain.Node{}

	c.Collect(map[string]any{"$ref": "#/definitions/Widget"}, out)

	assert.Equal(t, []string{"Widget"}, keysOf(out))
}

func TestCollector_IgnoresShapesWithoutMatchingType(t *testing.T) {
	c := NewCollector(domain.Node{"A": map[string]any{}, "B": map[string]any{}})

	cases := []any{
		nil,
		"leaf",
		map[string]any{"type": "string"},
		// properties without type "object" are not followed
		map[string]any{"properties": map[string]any{"a": map[string]any{"$ref": "#/definitions/A"}}},
		// items without type "array" are not followed
		map[string]any{"type": "object", "items": map[string]any{"$ref": "#/definitions/B"}},
	}

	for _, schema := range cases {
		out := domain.Node{}
		c.Collect(schema, out)
		assert.Empty(t, out, "schema %v", schema)
	}
}

func TestCollector_Composition(t *testing.T) {
	defs := mustDecode(t, `{
	  "Base": {"type": "object", "properties": {"id": {"type": "string"}}},
	  "Extra": {"type": "object"},
	  "Tag": {"type": "string"},
	  "Pet": {"allOf": [{"$ref": "#/definitions/Base"}, {"type": "object", "properties": {"x": {"$ref": "#/definitions/Extra"}}}]},
	  "Labels": {"type": "object", "additionalProperties": {"$ref": "#/definitions/Tag"}}
	}`)
	root := map[string]any{"type": "object", "properties": map[string]any{
		"pet":    map[string]any{"$ref": "#/definitions/Pet"},
		"labels": map[string]any{"$ref": "#/definitions/Labels"},
	}}

	t.Run("disabled", func(t *testing.T) {
		out := domain.Node{}
		NewCollector(defs).Collect(root, out)
		assert.ElementsMatch(t, []string{"Pet", "Labels"}, keysOf(out))
	})

	t.Run("enabled", func(t *testing.T) {
		out := domain.Node{}
		NewCollector(defs, WithComposition(true)).Collect(root, out)
		assert.ElementsMatch(t, []string{"Pet", "Base", "Extra", "Labels", "Tag"}, keysOf(out))
	})
}

func TestExtractRefName(t *testing.T) {
	assert.Equal(t, "Pet", extractRefName("#/definitions/Pet"))
	assert.Equal(t, "Pet", extractRefName("models.json#/definitions/Pet"))
	assert.Equal(t, "Pet", extractRefName("Pet"))
	assert.Equal(t, "", extractRefName("#/definitions/"))
}

func keysOf(m domain.Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
