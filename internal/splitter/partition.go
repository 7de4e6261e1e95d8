package splitter

import (
	"sort"
	"strings"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

// Grouping selects how much of a path item is copied into a tag document.
type Grouping string

const (
	// GroupByPath copies the whole path item, sibling methods included.
	GroupByPath Grouping = "path"
	// GroupByOperation copies only the methods that carry the tag.
	GroupByOperation Grouping = "operation"
)

// Groupings lists the supported grouping modes.
var Groupings = []string{string(GroupByPath), string(GroupByOperation)}

// Options controls a split.
type Options struct {
	Grouping          Grouping
	FollowComposition bool
}

// Result holds the tag documents produced by a split.
type Result struct {
	// Documents maps each tag to its document.
	Documents map[string]*domain.TagDocument
	// Summaries maps each tag to what was placed in its document.
	Summaries map[string]*domain.TagSummary
	// RefChanges is the number of references rewritten by Normalize.
	RefChanges int
}

// Tags returns the tags in sorted order.
func (r *Result) Tags() []string {
	tags := make([]string, 0, len(r.Documents))
	for tag := range r.Documents {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Report builds a split report. source names the input document.
func (r *Result) Report(source string, root domain.Node) *domain.SplitReport {
	report := &domain.SplitReport{
		Source:     source,
		RefChanges: r.RefChanges,
	}

	if info, ok := root[domain.KeyInfo].(map[string]any); ok {
		report.Title, _ = info["title"].(string)
		report.Version, _ = info["version"].(string)
	}

	for _, tag := range r.Tags() {
		report.Tags = append(report.Tags, *r.Summaries[tag])
	}

	return report
}

// Split normalizes doc in place and partitions it by tag.
func Split(doc domain.Node, opts Options) (*Result, error) {
	changes := Normalize(doc)

	result, err := Partition(doc, opts)
	if err != nil {
		return nil, err
	}
	result.RefChanges = changes

	return result, nil
}

// Partition groups the operations of doc by tag. Operations without tags
// are left out. Every tag document receives the definitions its operations'
// responses, request bodies and parameters reach.
func Partition(doc domain.Node, opts Options) (*Result, error) {
	if opts.Grouping == "" {
		opts.Grouping = GroupByPath
	}
	if opts.Grouping != GroupByPath && opts.Grouping != GroupByOperation {
		return nil, &domain.ConfigError{Option: "grouping", Value: string(opts.Grouping), Allowed: Groupings}
	}

	definitions, _ := doc[domain.KeyDefinitions].(map[string]any)
	p := &partitioner{
		root:      doc,
		opts:      opts,
		collector: NewCollector(definitions, WithComposition(opts.FollowComposition)),
		result: &Result{
			Documents: make(map[string]*domain.TagDocument),
			Summaries: make(map[string]*domain.TagSummary),
		},
		unresolved: make(map[string]map[string]struct{}),
	}

	paths, _ := doc[domain.KeyPaths].(map[string]any)
	for _, pathKey := range sortedKeys(paths) {
		pathItem, ok := paths[pathKey].(map[string]any)
		if !ok {
			continue
		}
		for _, method := range sortedKeys(pathItem) {
			op, ok := pathItem[method].(map[string]any)
			if !ok {
				continue
			}
			for _, tag := range operationTags(op) {
				p.add(tag, pathKey, pathItem, method, op)
			}
		}
	}

	p.finish()

	return p.result, nil
}

type partitioner struct {
	root       domain.Node
	opts       Options
	collector  *Collector
	result     *Result
	unresolved map[string]map[string]struct{}
}

// bucket returns the document for tag, creating it on first use.
func (p *partitioner) bucket(tag string) (*domain.TagDocument, *domain.TagSummary) {
	doc, ok := p.result.Documents[tag]
	if !ok {
		doc = domain.NewTagDocument(p.root)
		p.result.Documents[tag] = doc
		p.result.Summaries[tag] = &domain.TagSummary{Tag: tag}
		p.unresolved[tag] = make(map[string]struct{})
	}
	return doc, p.result.Summaries[tag]
}

func (p *partitioner) add(tag, pathKey string, pathItem domain.Node, method string, op domain.Node) {
	doc, summary := p.bucket(tag)

	_, seen := doc.Paths[pathKey]
	if !seen {
		summary.Paths = append(summary.Paths, pathKey)
	}
	summary.Operations = append(summary.Operations, domain.OperationRef{
		Method: strings.ToUpper(method),
		Path:   pathKey,
	})

	var schemas []any
	switch p.opts.Grouping {
	case GroupByOperation:
		item, ok := doc.Paths[pathKey].(map[string]any)
		if !ok {
			item = pathLevelKeys(pathItem)
			doc.Paths[pathKey] = item
			schemas = parameterSchemas(pathItem["parameters"])
		}
		item[method] = op
		schemas = append(schemas, operationSchemas(op)...)
	default:
		// The whole path item is emitted, so every operation under it must
		// have its definitions available in this document.
		doc.Paths[pathKey] = pathItem
		if !seen {
			schemas = pathItemSchemas(pathItem)
		}
	}

	for _, schema := range schemas {
		for _, ref := range p.collector.Collect(schema, doc.Definitions) {
			p.unresolved[tag][ref] = struct{}{}
		}
	}
}

// finish fills in the definition and unresolved lists of every summary.
func (p *partitioner) finish() {
	for tag, summary := range p.result.Summaries {
		summary.Definitions = sortedKeys(p.result.Documents[tag].Definitions)
		summary.Unresolved = sortedSet(p.unresolved[tag])
	}
}

// operationTags returns the distinct, non-empty string tags of op.
func operationTags(op domain.Node) []string {
	raw, _ := op["tags"].([]any)

	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		tag, ok := t.(string)
		if !ok || tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

// operationSchemas returns the schemas of op's responses, request body
// content and parameters. Swagger 2.0 and OpenAPI 3 shapes are both read.
func operationSchemas(op domain.Node) []any {
	var schemas []any

	if responses, ok := op["responses"].(map[string]any); ok {
		for _, code := range sortedKeys(responses) {
			if response, ok := responses[code].(map[string]any); ok && response["schema"] != nil {
				schemas = append(schemas, response["schema"])
			}
		}
	}

	if body, ok := op["requestBody"].(map[string]any); ok {
		if content, ok := body["content"].(map[string]any); ok {
			for _, mediaType := range sortedKeys(content) {
				if media, ok := content[mediaType].(map[string]any); ok && media["schema"] != nil {
					schemas = append(schemas, media["schema"])
				}
			}
		}
	}

	return append(schemas, parameterSchemas(op["parameters"])...)
}

// pathItemSchemas returns the schemas of the shared parameters and of every
// operation in a path item.
func pathItemSchemas(pathItem domain.Node) []any {
	schemas := parameterSchemas(pathItem["parameters"])
	for _, method := range sortedKeys(pathItem) {
		if op, ok := pathItem[method].(map[string]any); ok {
			schemas = append(schemas, operationSchemas(op)...)
		}
	}
	return schemas
}

// parameterSchemas returns the body schemas of a parameter list.
func parameterSchemas(raw any) []any {
	params, _ := raw.([]any)

	var schemas []any
	for _, item := range params {
		if param, ok := item.(map[string]any); ok && param["schema"] != nil {
			schemas = append(schemas, param["schema"])
		}
	}
	return schemas
}

// pathLevelKeys copies the entries of a path item that are not operations,
// such as shared parameters and extensions.
func pathLevelKeys(pathItem domain.Node) domain.Node {
	item := make(domain.Node)
	for key, value := range pathItem {
		if !domain.IsHTTPMethod(key) {
			item[key] = value
		}
	}
	return item
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
