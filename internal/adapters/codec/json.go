// Package codec reads the input document and writes tag documents to disk.
package codec

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

const (
	jsonFormat = "json"
	jsonIndent = "  "
)

// api keeps numbers as json.Number so integer and decimal literals are
// written back the way they were read.
var api = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// LoadFile reads and decodes the JSON document at path.
func LoadFile(ctx context.Context, path string) (domain.Node, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.InputError{Path: path, Message: "failed to read file", Cause: err}
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, &domain.InputError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	return doc, nil
}

// Decode parses a JSON document whose root must be an object.
func Decode(data []byte) (domain.Node, error) {
	var root any
	if err := api.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be a JSON object, got %T", root)
	}

	return doc, nil
}

// Marshal encodes v as indented JSON with sorted map keys.
func Marshal(v any) ([]byte, error) {
	return api.MarshalIndent(v, "", jsonIndent)
}

// JSONEncoder writes tag documents as pretty-printed JSON.
type JSONEncoder struct{}

// NewJSONEncoder creates a new JSON encoder.
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

// Extension returns the file extension.
func (e *JSONEncoder) Extension() string {
	return "." + jsonFormat
}

// Encode writes doc to output with two-space indentation.
func (e *JSONEncoder) Encode(doc *domain.TagDocument, output io.Writer) error {
	data, err := Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if _, err := output.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}
