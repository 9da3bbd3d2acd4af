package classify

import (
	"fmt"

	"aimlookup/dataset"
	"aimlookup/storage"
)

// SectorStore is the read side of the classification index.
type SectorStore interface {
	ListNSECompaniesByIndustry(industry string) ([]storage.NSECompany, error)
	ListCategoryCompanies() ([]storage.CategoryCompany, error)
}

type SectorMatch struct {
	CompanyName      string
	NormalizedName   string
	Category         string
	NatureOfActivity string
	SourceFile       string
}

// SectorReport lists the companies of one basic industry split by whether a
// category file names them.
type SectorReport struct {
	Sector   string
	Found    []SectorMatch
	NotFound []string
}

// SectorCompanies looks up every company of sector and resolves it against
// the category files. When several files name a company, the first imported
// one wins.
func SectorCompanies(store SectorStore, sector string) (SectorReport, error) {
	report := SectorReport{Sector: sector}

	members, err := store.ListNSECompaniesByIndustry(sector)
	if err != nil {
		return report, fmt.Errorf("list sector companies: %w", err)
	}
	categorized, err := store.ListCategoryCompanies()
	if err != nil {
		return report, fmt.Errorf("list category companies: %w", err)
	}

	firstByName := make(map[string]storage.CategoryCompany, len(categorized))
	for _, company := range categorized {
		if _, exists := firstByName[company.NormalizedName]; !exists {
			firstByName[company.NormalizedName] = company
		}
	}

	seen := make(map[string]bool, len(members))
	for _, member := range members {
		key := dataset.Normalize(member.CompanyName)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		company, ok := firstByName[key]
		if !ok {
			report.NotFound = append(report.NotFound, key)
			continue
		}
		report.Found = append(report.Found, SectorMatch{
			CompanyName:      member.CompanyName,
			NormalizedName:   key,
			Category:         company.Category,
			NatureOfActivity: company.NatureOfActivity,
			SourceFile:       company.SourceFile,
		})
	}
	return report, nil
}
