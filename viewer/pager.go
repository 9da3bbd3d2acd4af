package viewer

import (
	"strings"

	"aimlookup/dataset"
)

// Pager holds the full detail list, the filtered subset and the position in
// it. Index stays within [0, Len()-1] whenever the subset is non-empty.
type Pager struct {
	all      []dataset.Detail
	filtered []dataset.Detail
	index    int
}

func NewPager(records []dataset.Detail) *Pager {
	return &Pager{all: records, filtered: records}
}

// Search filters the full list by a lowercase substring of the company name
// and resets the index. Unlike lookup keys, periods are not stripped.
func (p *Pager) Search(query string) {
	p.index = 0
	needle := strings.ToLower(query)
	if needle == "" {
		p.filtered = p.all
		return
	}

	filtered := make([]dataset.Detail, 0)
	for _, record := range p.all {
		if strings.Contains(strings.ToLower(record.CompanyName), needle) {
			filtered = append(filtered, record)
		}
	}
	p.filtered = filtered
}

func (p *Pager) Next() {
	if p.HasNext() {
		p.index++
	}
}

func (p *Pager) Prev() {
	if p.HasPrev() {
		p.index--
	}
}

func (p *Pager) HasPrev() bool {
	return len(p.filtered) > 0 && p.index > 0
}

func (p *Pager) HasNext() bool {
	return p.index < len(p.filtered)-1
}

// Seek moves to index, clamped to the filtered subset.
func (p *Pager) Seek(index int) {
	switch {
	case len(p.filtered) == 0 || index < 0:
		p.index = 0
	case index >= len(p.filtered):
		p.index = len(p.filtered) - 1
	default:
		p.index = index
	}
}

func (p *Pager) Current() (dataset.Detail, bool) {
	if len(p.filtered) == 0 {
		return dataset.Detail{}, false
	}
	return p.filtered[p.index], true
}

func (p *Pager) Index() int { return p.index }

func (p *Pager) Len() int { return len(p.filtered) }

func (p *Pager) Total() int { return len(p.all) }
