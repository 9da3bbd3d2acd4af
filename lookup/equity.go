package lookup

import "aimlookup/dataset"

// EquityMatch is the resolution of one equity-list company.
type EquityMatch struct {
	Company string
	Result  Result
}

// CrossReference resolves every equity against the category dataset in
// equity-list order.
func (r *Resolver) CrossReference(equities []dataset.Equity) []EquityMatch {
	out := make([]EquityMatch, 0, len(equities))
	for _, equity := range equities {
		out = append(out, EquityMatch{
			Company: equity.DisplayName,
			Result:  r.Resolve(equity.Name),
		})
	}
	return out
}
