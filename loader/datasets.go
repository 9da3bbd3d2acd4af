package loader

import (
	"context"
	"fmt"

	"aimlookup/dataset"
	"aimlookup/importer"
	"aimlookup/lookup"
)

// Fetcher downloads and parses one remote CSV dataset.
type Fetcher interface {
	Fetch(ctx context.Context, target string) (*importer.Table, error)
}

// Sources are the published dataset URLs.
type Sources struct {
	Category string
	Equity   string
	Detail   string
}

// LookupData backs the category lookup variant.
type LookupData struct {
	Companies []dataset.Company
	Index     *lookup.Index
	Resolver  *lookup.Resolver
}

// EquityData backs the equity variant: suggestions over the equity list,
// resolution against the category dataset.
type EquityData struct {
	Equities []dataset.Equity
	Index    *lookup.Index
	Resolver *lookup.Resolver
}

type RecordsData struct {
	Details []dataset.Detail
}

func LoadCompanies(ctx context.Context, f Fetcher, target string) ([]dataset.Company, error) {
	table, err := f.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("load category dataset: %w", err)
	}
	companies, err := dataset.DecodeCompanies(table)
	if err != nil {
		return nil, fmt.Errorf("decode category dataset: %w", err)
	}
	return companies, nil
}

func LoadLookup(f Fetcher, src Sources, limit int) func(context.Context) (*LookupData, error) {
	return func(ctx context.Context) (*LookupData, error) {
		companies, err := LoadCompanies(ctx, f, src.Category)
		if err != nil {
			return nil, err
		}
		return &LookupData{
			Companies: companies,
			Index:     lookup.CompanyIndex(companies, limit),
			Resolver:  lookup.NewResolver(companies),
		}, nil
	}
}

// LoadEquity fetches the category dataset first and only then the equity
// list. A category failure stops the load before the equity request.
func LoadEquity(f Fetcher, src Sources, limit int) func(context.Context) (*EquityData, error) {
	return func(ctx context.Context) (*EquityData, error) {
		companies, err := LoadCompanies(ctx, f, src.Category)
		if err != nil {
			return nil, err
		}

		table, err := f.Fetch(ctx, src.Equity)
		if err != nil {
			return nil, fmt.Errorf("load equity dataset: %w", err)
		}
		equities, err := dataset.DecodeEquities(table)
		if err != nil {
			return nil, fmt.Errorf("decode equity dataset: %w", err)
		}
		return &EquityData{
			Equities: equities,
			Index:    lookup.EquityIndex(equities, limit),
			Resolver: lookup.NewResolver(companies),
		}, nil
	}
}

func LoadRecords(f Fetcher, src Sources) func(context.Context) (*RecordsData, error) {
	return func(ctx context.Context) (*RecordsData, error) {
		table, err := f.Fetch(ctx, src.Detail)
		if err != nil {
			return nil, fmt.Errorf("load detail dataset: %w", err)
		}
		details, err := dataset.DecodeDetails(table)
		if err != nil {
			return nil, fmt.Errorf("decode detail dataset: %w", err)
		}
		return &RecordsData{Details: details}, nil
	}
}
