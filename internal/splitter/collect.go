package splitter

import (
	"sort"
	"strings"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

// compositionKeys hold lists of subschemas.
var compositionKeys = []string{"allOf", "anyOf", "oneOf"}

// Collector resolves definition references against a read-only definitions
// table and copies every definition reachable from a schema into a tag
// document.
type Collector struct {
	definitions       domain.Node
	folded            map[string]string
	followComposition bool
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithComposition makes the collector also descend into allOf, anyOf and
// oneOf members and additionalProperties.
func WithComposition(enabled bool) CollectorOption {
	return func(c *Collector) {
		c.followComposition = enabled
	}
}

// NewCollector creates a collector over the given definitions table.
func NewCollector(definitions domain.Node, opts ...CollectorOption) *Collector {
	c := &Collector{
		definitions: definitions,
		folded:      make(map[string]string, len(definitions)),
	}

	// Names that differ only by case resolve to the lexically first one.
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key := strings.ToLower(name)
		if _, exists := c.folded[key]; !exists {
			c.folded[key] = name
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Lookup finds the definition named by the last segment of a local
// "#/definitions/" ref. An exact match wins over a case-insensitive one.
// References into other documents never match.
func (c *Collector) Lookup(ref string) (string, any, bool) {
	if !strings.HasPrefix(ref, domain.DefinitionsPrefix) {
		return "", nil, false
	}

	name := extractRefName(ref)
	if name == "" {
		return "", nil, false
	}

	if def, ok := c.definitions[name]; ok {
		return name, def, true
	}

	if match, ok := c.folded[strings.ToLower(name)]; ok {
		return match, c.definitions[match], true
	}

	return "", nil, false
}

// Collect adds to out every definition transitively reachable from schema,
// keyed by its name with the first character uppercased. Definitions already
// in out are not visited again. It returns the references that matched no
// definition; those are skipped, not treated as errors.
func (c *Collector) Collect(schema any, out domain.Node) []string {
	w := &collection{
		collector: c,
		out:       out,
		visited:   make(map[string]struct{}),
	}
	w.schema(schema)
	return w.unresolved
}

// collection is the state of one Collect call.
type collection struct {
	collector  *Collector
	out        domain.Node
	visited    map[string]struct{}
	unresolved []string
}

func (w *collection) schema(node any) {
	s, ok := node.(map[string]any)
	if !ok {
		return
	}

	if ref, ok := s[domain.KeyRef].(string); ok && ref != "" {
		w.ref(ref)
		return
	}

	switch s["type"] {
	case "object":
		if props, ok := s["properties"].(map[string]any); ok {
			for _, prop := range props {
				w.schema(prop)
			}
		}
	case "array":
		w.schema(s["items"])
	}

	if w.collector.followComposition {
		for _, key := range compositionKeys {
			members, _ := s[key].([]any)
			for _, member := range members {
				w.schema(member)
			}
		}
		w.schema(s["additionalProperties"])
	}
}

func (w *collection) ref(ref string) {
	name, def, ok := w.collector.Lookup(ref)
	if !ok {
		w.unresolved = append(w.unresolved, ref)
		return
	}

	canonical := upperFirst(name)
	if _, seen := w.visited[canonical]; seen {
		return
	}
	w.visited[canonical] = struct{}{}

	if _, present := w.out[canonical]; present {
		return
	}

	// Insert before descending: a cycle that leads back here must find the
	// definition already present.
	w.out[canonical] = def
	w.schema(def)
}

// extractRefName returns the last path segment of a reference.
func extractRefName(ref string) string {
	if idx := strings.LastIndex(ref, "/"); idx >= 0 {
		return ref[idx+1:]
	}
	return ref
}
