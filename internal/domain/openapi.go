// Package domain provides core models and interfaces for the spec splitter.
package domain

// Node is a decoded JSON object. Documents are kept in this generic form so
// that keys the splitter does not know about survive the round trip.
type Node = map[string]any

// Keys and prefixes of a Swagger 2.0 document.
const (
	KeySwagger     = "swagger"
	KeyInfo        = "info"
	KeyConsumes    = "consumes"
	KeyProduces    = "produces"
	KeyPaths       = "paths"
	KeyDefinitions = "definitions"
	KeyRef         = "$ref"

	DefinitionsPrefix = "#/definitions/"
)

// HTTPMethods lists the path item keys that hold operations.
var HTTPMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// IsHTTPMethod reports whether a path item key holds an operation.
func IsHTTPMethod(key string) bool {
	for _, m := range HTTPMethods {
		if key == m {
			return true
		}
	}
	return false
}

// TagDocument is the self-contained document emitted for a single tag.
// Field order matches the order keys are written out.
type TagDocument struct {
	Swagger     any  `json:"swagger,omitempty" yaml:"swagger,omitempty"`
	Info        any  `json:"info,omitempty" yaml:"info,omitempty"`
	Consumes    any  `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces    any  `json:"produces,omitempty" yaml:"produces,omitempty"`
	Paths       Node `json:"paths" yaml:"paths"`
	Definitions Node `json:"definitions" yaml:"definitions"`
}

// NewTagDocument seeds a tag document with the shared metadata of root.
func NewTagDocument(root Node) *TagDocument {
	return &TagDocument{
		Swagger:     root[KeySwagger],
		Info:        root[KeyInfo],
		Consumes:    root[KeyConsumes],
		Produces:    root[KeyProduces],
		Paths:       make(Node),
		Definitions: make(Node),
	}
}
