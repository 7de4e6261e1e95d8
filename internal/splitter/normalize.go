// Package splitter partitions a monolithic Swagger 2.0 document into one
// self-contained document per tag.
//
// The work happens in three steps: Normalize capitalizes every
// "#/definitions/" reference in place, a Collector pulls the definitions an
// operation needs into a tag document, and Partition walks the path table
// and groups operations by tag. Split runs all of them.
package splitter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gaurav-nelson/rhacs-api-docs-gen/internal/domain"
)

// Normalize rewrites every local definition reference under node so that the
// definition name starts with an uppercase character. The document is
// modified in place. It returns the number of references rewritten, so a
// second run over the same document returns zero.
func Normalize(node any) int {
	changes := 0

	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			if key == domain.KeyRef {
				if ref, ok := child.(string); ok {
					if fixed, changed := capitalizeRef(ref); changed {
						v[key] = fixed
						changes++
					}
					continue
				}
			}
			changes += Normalize(child)
		}
	case []any:
		for _, child := range v {
			changes += Normalize(child)
		}
	}

	return changes
}

// capitalizeRef uppercases the first character of the definition name in a
// "#/definitions/" reference. Anything before the prefix is kept as is.
func capitalizeRef(ref string) (string, bool) {
	idx := strings.Index(ref, domain.DefinitionsPrefix)
	if idx < 0 {
		return ref, false
	}

	start := idx + len(domain.DefinitionsPrefix)
	r, _ := utf8.DecodeRuneInString(ref[start:])
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return ref, false
	}

	return ref[:start] + upperFirst(ref[start:]), true
}

// upperFirst returns s with its first character uppercased.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
