// Package dataset holds the typed record shapes of the published AIM datasets
// and decodes them from parsed CSV tables.
package dataset

import (
	"errors"
	"fmt"
	"strings"

	"aimlookup/importer"
)

// Published column headers. They are matched byte-for-byte, including the
// trailing space on the revenue share column.
const (
	ColumnCompanyName = "Company Name"
	ColumnIndustry    = "Industry"
	ColumnCategory    = "Category"

	ColumnEquityName = "NAME OF COMPANY"

	ColumnAnalysisYear           = "Analysis Year"
	ColumnAIMCategory            = "AIM Category"
	ColumnRevenueShareAnalysis   = "Revenue Share Analysis "
	ColumnReviewStatus           = "Review Status"
	ColumnPendingReviewComments  = "Pending Review Comments"
	ColumnBasicIndustry          = "Basic Industry (Basic_Ind_Code)"
	ColumnBWC2017Category        = "BWC 2017 Category"
	ColumnActivitiesFromBWCGuide = "Activities from BWC Guide"
)

const (
	CategoryGreen = "green"
	CategoryRed   = "red"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

// Company is one row of the category dataset. Name is the normalized key.
type Company struct {
	Name        string
	DisplayName string
	Industry    string
	Category    string
}

// IsGreen and IsRed compare the category case-insensitively without trimming.
func (c Company) IsGreen() bool { return strings.EqualFold(c.Category, CategoryGreen) }
func (c Company) IsRed() bool   { return strings.EqualFold(c.Category, CategoryRed) }

// Equity is one row of the equity list. Name is the normalized key.
type Equity struct {
	Name        string
	DisplayName string
}

// Detail is one row of the detail dataset. Fields are kept verbatim.
type Detail struct {
	CompanyName            string
	AnalysisYear           string
	AIMCategory            string
	RevenueShareAnalysis   string
	ReviewStatus           string
	PendingReviewComments  string
	BasicIndustry          string
	BWC2017Category        string
	ActivitiesFromBWCGuide string
}

// DecodeCompanies decodes the category dataset, normalizing names and
// dropping rows whose name normalizes to empty.
func DecodeCompanies(table *importer.Table) ([]Company, error) {
	if err := requireColumns(table, ColumnCompanyName, ColumnIndustry, ColumnCategory); err != nil {
		return nil, err
	}

	out := make([]Company, 0, len(table.Records))
	for _, record := range table.Records {
		raw := record.Get(ColumnCompanyName)
		key := Normalize(raw)
		if key == "" {
			continue
		}
		out = append(out, Company{
			Name:        key,
			DisplayName: strings.TrimSpace(raw),
			Industry:    record.Get(ColumnIndustry),
			Category:    record.Get(ColumnCategory),
		})
	}
	return out, nil
}

// DecodeEquities decodes the equity list with the same filtering rules as
// DecodeCompanies.
func DecodeEquities(table *importer.Table) ([]Equity, error) {
	if err := requireColumns(table, ColumnEquityName); err != nil {
		return nil, err
	}

	out := make([]Equity, 0, len(table.Records))
	for _, record := range table.Records {
		raw := record.Get(ColumnEquityName)
		key := Normalize(raw)
		if key == "" {
			continue
		}
		out = append(out, Equity{Name: key, DisplayName: strings.TrimSpace(raw)})
	}
	return out, nil
}

// DecodeDetails decodes the detail dataset. Rows are not normalized; the
// viewer searches on the raw company name.
func DecodeDetails(table *importer.Table) ([]Detail, error) {
	if err := requireColumns(table,
		ColumnCompanyName,
		ColumnAnalysisYear,
		ColumnAIMCategory,
		ColumnRevenueShareAnalysis,
		ColumnReviewStatus,
		ColumnPendingReviewComments,
		ColumnBasicIndustry,
		ColumnBWC2017Category,
		ColumnActivitiesFromBWCGuide,
	); err != nil {
		return nil, err
	}

	out := make([]Detail, 0, len(table.Records))
	for _, record := range table.Records {
		out = append(out, Detail{
			CompanyName:            record.Get(ColumnCompanyName),
			AnalysisYear:           record.Get(ColumnAnalysisYear),
			AIMCategory:            record.Get(ColumnAIMCategory),
			RevenueShareAnalysis:   record.Get(ColumnRevenueShareAnalysis),
			ReviewStatus:           record.Get(ColumnReviewStatus),
			PendingReviewComments:  record.Get(ColumnPendingReviewComments),
			BasicIndustry:          record.Get(ColumnBasicIndustry),
			BWC2017Category:        record.Get(ColumnBWC2017Category),
			ActivitiesFromBWCGuide: record.Get(ColumnActivitiesFromBWCGuide),
		})
	}
	return out, nil
}

func requireColumns(table *importer.Table, columns ...string) error {
	if table == nil {
		return fmt.Errorf("%w: %w: no table", importer.ErrParse, ErrMissingColumn)
	}
	missing := make([]string, 0, len(columns))
	for _, column := range columns {
		if !table.HasHeader(column) {
			missing = append(missing, fmt.Sprintf("%q", column))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w: %s", importer.ErrParse, ErrMissingColumn, strings.Join(missing, ", "))
}
