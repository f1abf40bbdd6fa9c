package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher does case-insensitive substring tests against a folded query.
type matcher struct {
	fold  cases.Caser
	query string
}

func newMatcher(query string) matcher {
	fold := cases.Fold()
	return matcher{fold: fold, query: fold.String(query)}
}

func (m matcher) match(s string) bool {
	if m.query == "" {
		return true
	}
	return strings.Contains(m.fold.String(s), m.query)
}
