package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

const (
	yamlFormat = "yaml"
	yamlIndent = 2
)

// YAMLEncoder writes tag documents as YAML.
type YAMLEncoder struct{}

// NewYAMLEncoder creates a new YAML encoder.
func NewYAMLEncoder() *YAMLEncoder {
	return &YAMLEncoder{}
}

// Extension returns the file extension.
func (e *YAMLEncoder) Extension() string {
	return "." + yamlFormat
}

// Encode writes doc to output as a YAML document.
func (e *YAMLEncoder) Encode(doc *domain.TagDocument, output io.Writer) error {
	plain := &domain.TagDocument{
		Swagger:     toPlain(doc.Swagger),
		Info:        toPlain(doc.Info),
		Consumes:    toPlain(doc.Consumes),
		Produces:    toPlain(doc.Produces),
		Paths:       toPlain(doc.Paths).(map[string]any),
		Definitions: toPlain(doc.Definitions).(map[string]any),
	}

	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(plain); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// toPlain copies v, turning json.Number into int64 or float64 so that YAML
// writes numbers rather than quoted strings.
func toPlain(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = toPlain(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = toPlain(child)
		}
		return out
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
