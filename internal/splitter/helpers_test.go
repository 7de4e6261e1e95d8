package splitter

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

func mustDecode(t *testing.T, src string) domain.Node {
	t.Helper()
	var doc domain.Node
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(src), &doc))
	return doc
}

// collectRefs returns every $ref value found under node.
func collectRefs(node any) []string {
	var refs []string
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if ref, ok := child.(string); ok && key == domain.KeyRef {
				refs = append(refs, ref)
				continue
			}
			refs = append(refs, collectRefs(child)...)
		}
	case []any:
		for _, child := range v {
			refs = append(refs, collectRefs(child)...)
		}
	}
	return refs
}

func definitionName(ref string) (string, bool) {
	idx := strings.Index(ref, domain.DefinitionsPrefix)
	if idx < 0 {
		return "", false
	}
	return ref[idx+len(domain.DefinitionsPrefix):], true
}

const widgetsSpec = `{
  "swagger": "2.0",
  "info": {"title": "Widgets API", "version": "1.0.0"},
  "consumes": ["application/json"],
  "produces": ["application/json"],
  "paths": {
    "/widgets": {
      "get": {
        "tags": ["Widgets"],
        "responses": {
          "200": {"description": "ok", "schema": {"$ref": "#/definitions/widget"}}
        }
      }
    }
  },
  "definitions": {
    "widget": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "color": {"$ref": "#/definitions/color"}
      }
    },
    "color": {"type": "string", "enum": ["red", "blue"]}
  }
}`

const storeSpec = `{
  "swagger": "2.0",
  "info": {"title": "Store", "version": "2.1"},
  "paths": {
    "/orders": {
      "parameters": [{"name": "tenant", "in": "header", "type": "string"}],
      "get": {
        "tags": ["Orders"],
        "responses": {
          "200": {"schema": {"type": "array", "items": {"$ref": "#/definitions/order"}}},
          "404": {"schema": {"$ref": "#/definitions/Error"}}
        }
      },
      "post": {
        "tags": ["Orders", "Admin"],
        "parameters": [
          {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/NewOrder"}},
          {"name": "dryRun", "in": "query", "type": "boolean"}
        ],
        "responses": {"201": {"description": "created"}}
      }
    },
    "/users": {
      "put": {
        "tags": ["Users"],
        "requestBody": {
          "content": {
            "application/json": {"schema": {"$ref": "#/definitions/user"}}
          }
        },
        "responses": {"204": {"description": "updated"}}
      },
      "delete": {
        "tags": ["Admin"],
        "responses": {"204": {"description": "gone"}}
      }
    },
    "/health": {
      "get": {
        "tags": [],
        "responses": {"200": {"schema": {"$ref": "#/definitions/Status"}}}
      }
    },
    "/metrics": {
      "get": {
        "responses": {"200": {"schema": {"$ref": "#/definitions/Status"}}}
      }
    }
  },
  "definitions": {
    "order": {
      "type": "object",
      "properties": {
        "id": {"type": "integer"},
        "lines": {"type": "array", "items": {"$ref": "#/definitions/orderLine"}},
        "customer": {"$ref": "#/definitions/customer"}
      }
    },
    "orderLine": {
      "type": "object",
      "properties": {"order": {"$ref": "#/definitions/order"}, "sku": {"type": "string"}}
    },
    "customer": {"type": "object", "properties": {"name": {"type": "string"}}},
    "NewOrder": {"type": "object", "properties": {"lines": {"type": "array", "items": {"$ref": "#/definitions/orderLine"}}}},
    "Error": {"type": "object", "properties": {"message": {"type": "string"}}},
    "user": {"type": "object", "properties": {"address": {"$ref": "#/definitions/address"}}},
    "address": {"type": "object", "properties": {"city": {"type": "string"}}},
    "Status": {"type": "string"}
  }
}`
