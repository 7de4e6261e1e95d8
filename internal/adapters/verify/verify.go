// Package verify checks that emitted tag documents load as Swagger 2.0.
package verify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/adapters/codec"
	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

// Result describes one verified document.
type Result struct {
	Paths       int
	Operations  int
	Definitions int
	// Dangling holds definition references with no target in the document.
	Dangling []string
}

// Document encodes doc, decodes it again as a Swagger 2.0 model and looks
// for definition references that the document cannot resolve.
func Document(doc *domain.TagDocument) (*Result, error) {
	data, err := codec.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var spec openapi2.T
	if err := spec.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("document does not load as Swagger 2.0: %w", err)
	}

	c := &checker{
		definitions: spec.Definitions,
		dangling:    make(map[string]struct{}),
	}
	result := &Result{
		Paths:       len(spec.Paths),
		Definitions: len(spec.Definitions),
	}

	for _, item := range spec.Paths {
		if item == nil {
			continue
		}
		for _, param := range item.Parameters {
			c.parameter(param)
		}
		for _, op := range item.Operations() {
			result.Operations++
			c.operation(op)
		}
	}

	for _, def := range spec.Definitions {
		c.schemaRef(def)
	}

	for ref := range c.dangling {
		result.Dangling = append(result.Dangling, ref)
	}
	sort.Strings(result.Dangling)

	return result, nil
}

type checker struct {
	definitions map[string]*openapi2.SchemaRef
	dangling    map[string]struct{}
}

func (c *checker) operation(op *openapi2.Operation) {
	for _, param := range op.Parameters {
		c.parameter(param)
	}
	for _, resp := range op.Responses {
		if resp != nil {
			c.schemaRef(resp.Schema)
		}
	}
}

func (c *checker) parameter(param *openapi2.Parameter) {
	if param != nil {
		c.schemaRef(param.Schema)
	}
}

func (c *checker) schemaRef(ref *openapi2.SchemaRef) {
	if ref == nil {
		return
	}

	if ref.Ref != "" {
		c.resolve(ref.Ref)
		return
	}

	s := ref.Value
	if s == nil {
		return
	}

	for _, prop := range s.Properties {
		c.schemaRef(prop)
	}
	c.schemaRef(s.Items)
	c.schemaRef(s.Not)
	for _, member := range s.AllOf {
		c.schemaRef(member)
	}
	c.additional(s.AdditionalProperties.Schema)
}

// additional walks an additionalProperties schema, which kin-openapi keeps
// in the OpenAPI 3 model even inside Swagger 2.0 documents.
func (c *checker) additional(ref *openapi3.SchemaRef) {
	if ref == nil {
		return
	}

	if ref.Ref != "" {
		c.resolve(ref.Ref)
		return
	}

	s := ref.Value
	if s == nil {
		return
	}

	for _, prop := range s.Properties {
		c.additional(prop)
	}
	c.additional(s.Items)
	c.additional(s.Not)
	c.additional(s.AdditionalProperties.Schema)
	for _, group := range []openapi3.SchemaRefs{s.AllOf, s.AnyOf, s.OneOf} {
		for _, member := range group {
			c.additional(member)
		}
	}
}

func (c *checker) resolve(ref string) {
	// Only local definition references can be checked here.
	if !strings.HasPrefix(ref, domain.DefinitionsPrefix) {
		return
	}
	if _, ok := c.definitions[ref[len(domain.DefinitionsPrefix):]]; !ok {
		c.dangling[ref] = struct{}{}
	}
}
