package splitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CapitalizesDefinitionRefs(t *testing.T) {
	doc := mustDecode(t, widgetsSpec)

	changes := Normalize(doc)

	assert.Equal(t, 2, changes)
	for _, ref := range collectRefs(doc) {
		name, ok := definitionName(ref)
		require.True(t, ok, "unexpected ref %s", ref)
		assert.Equal(t, upperFirst(name), name, "ref %s should be capitalized", ref)
	}

	// The definitions table keeps its original keys.
	defs := doc["definitions"].(map[string]any)
	assert.Contains(t, defs, "widget")
	assert.Contains(t, defs, "color")
	assert.NotContains(t, defs, "Widget")
}

func TestNormalize_Idempotent(t *testing.T) {
	once := mustDecode(t, storeSpec)
	twice := mustDecode(t, storeSpec)

	first := Normalize(once)
	Normalize(twice)
	second := Normalize(twice)

	assert.Equal(t, 7, first)
	assert.Zero(t, second)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed the document (-once +twice):\n%s", diff)
	}
}

func TestNormalize_WalksArraysAndNestedObjects(t *testing.T) {
	doc := mustDecode(t, `{
	  "a": [{"$ref": "#/definitions/one"}, [{"deep": {"$ref": "#/definitions/two"}}]],
	  "b": {"c": {"d": {"$ref": "#/definitions/three"}}}
	}`)

	assert.Equal(t, 3, Normalize(doc))
	assert.ElementsMatch(t,
		[]string{"#/definitions/One", "#/definitions/Two", "#/definitions/Three"},
		collectRefs(doc))
}

func TestNormalize_LeavesOtherRefsAlone(t *testing.T) {
	doc := mustDecode(t, `{
	  "p": {"$ref": "#/parameters/limit"},
	  "r": {"$ref": "#/responses/notFound"},
	  "u": {"$ref": "#/definitions/_private"},
	  "n": {"$ref": "#/definitions/2fa"},
	  "e": {"$ref": "#/definitions/"},
	  "x": {"$ref": 42}
	}`)

	assert.Zero(t, Normalize(doc))
	assert.Equal(t, "#/parameters/limit", doc["p"].(map[string]any)["$ref"])
	assert.Equal(t, "#/definitions/_private", doc["u"].(map[string]any)["$ref"])
}

func TestNormalize_KeepsPrefixBeforeDefinitions(t *testing.T) {
	doc := mustDecode(t, `{"s": {"$ref": "common.json#/definitions/page"}}`)

	assert.Equal(t, 1, Normalize(doc))
	assert.Equal(t, "common.json#/definitions/Page", doc["s"].(map[string]any)["$ref"])
}

func TestNormalize_NonObjectInput(t *testing.T) {
	assert.Zero(t, Normalize(nil))
	assert.Zero(t, Normalize("#/definitions/x"))
	assert.Zero(t, Normalize(3.5))
}

func TestCapitalizeRef(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		changed bool
	}{
		{"lowercase", "#/definitions/pet", "#/definitions/Pet", true},
		{"already upper", "#/definitions/Pet", "#/definitions/Pet", false},
		{"unicode", "#/definitions/élan", "#/definitions/Élan", true},
		{"no prefix", "#/components/schemas/pet", "#/components/schemas/pet", false},
		{"empty name", "#/definitions/", "#/definitions/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := capitalizeRef(tt.ref)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}
