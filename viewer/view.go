package viewer

import (
	"fmt"

	"aimlookup/dataset"
)

// View is one detail record shaped for rendering. Every collapsible region
// carries its own id derived from its position in the record.
type View struct {
	Found         bool
	Query         string
	Index         int
	Len           int
	HasPrev       bool
	HasNext       bool
	Record        dataset.Detail
	RevenueShare  Collapsible
	BasicIndustry []IndustryRow
}

// Build renders the pager's current record.
func Build(p *Pager, query string, limit int) View {
	view := View{
		Query:   query,
		Index:   p.Index(),
		Len:     p.Len(),
		HasPrev: p.HasPrev(),
		HasNext: p.HasNext(),
	}
	record, ok := p.Current()
	if !ok {
		return view
	}

	view.Found = true
	view.Record = record
	view.RevenueShare = Collapse(record.RevenueShareAnalysis, limit)
	view.RevenueShare.ID = "revenue-share"
	view.BasicIndustry = ParseIndustryTable(record.BasicIndustry, limit)
	for i := range view.BasicIndustry {
		view.BasicIndustry[i].Justification.ID = fmt.Sprintf("industry-justification-%d", i)
	}
	return view
}
