// Package lookup implements incremental suggestions and exact-match
// resolution of company names against the category dataset.
package lookup

import (
	"strings"

	"aimlookup/dataset"
)

const DefaultSuggestionLimit = 10

// Suggestion is one clickable autocomplete entry.
type Suggestion struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

// Index is a linear substring index over normalized names. Names must already
// be normalized; the index keeps dataset order.
type Index struct {
	names []string
	limit int
}

func NewIndex(names []string, limit int) *Index {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	return &Index{names: names, limit: limit}
}

func CompanyIndex(companies []dataset.Company, limit int) *Index {
	names := make([]string, 0, len(companies))
	for _, company := range companies {
		names = append(names, company.Name)
	}
	return NewIndex(names, limit)
}

func EquityIndex(equities []dataset.Equity, limit int) *Index {
	names := make([]string, 0, len(equities))
	for _, equity := range equities {
		names = append(names, equity.Name)
	}
	return NewIndex(names, limit)
}

// Suggest returns the first matches, in dataset order, whose normalized name
// contains the normalized query. An empty query yields no suggestions.
func (i *Index) Suggest(query string) []Suggestion {
	key := dataset.Normalize(query)
	if key == "" {
		return []Suggestion{}
	}

	out := make([]Suggestion, 0, i.limit)
	for _, name := range i.names {
		if !strings.Contains(name, key) {
			continue
		}
		out = append(out, Suggestion{Name: name, Display: dataset.ToDisplayCase(name)})
		if len(out) == i.limit {
			break
		}
	}
	return out
}

func (i *Index) Len() int {
	return len(i.names)
}
