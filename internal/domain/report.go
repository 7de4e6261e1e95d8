package domain

// OperationRef identifies one operation in a path table.
type OperationRef struct {
	Method string
	Path   string
}

// TagSummary describes what ended up in one tag document.
type TagSummary struct {
	Tag         string
	File        string
	Paths       []string
	Operations  []OperationRef
	Definitions []string
	Unresolved  []string // $ref values with no matching definition
}

// SplitReport summarises a whole split run for rendering.
type SplitReport struct {
	Source     string
	Title      string
	Version    string
	RefChanges int
	Tags       []TagSummary
}

// DefinitionCount returns the number of definitions emitted across all tags,
// counting a definition once per tag that carries it.
func (r *SplitReport) DefinitionCount() int {
	n := 0
	for _, t := range r.Tags {
		n += len(t.Definitions)
	}
	return n
}
