// Package classify builds and queries the offline classification index used
// by dataset curators: NSE basic industries and the category company files.
package classify

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"aimlookup/dataset"
	"aimlookup/importer"
	"aimlookup/storage"

	"go.uber.org/zap"
)

const (
	CategoryGreen         = "GREEN"
	CategoryRed           = "RED"
	CategoryOrange        = "ORANGE"
	CategoryGrey          = "GREY"
	CategoryUnknown       = "UNKNOWN"
	ColumnBasicIndustry   = "Basic Industry"
	categoryFileMarker    = "_Companies_"
	industryFileMarker    = "_Industry_"
	CategoryFilesPattern  = "**/*_Companies_*.{csv,xlsx}"
	IndustryFilesPattern  = "**/*_Industry_*.txt"
	DefaultScoreThreshold = 85
)

var natureOfActivityColumns = []string{"Nature of Activity", "Nature Of Activity"}

var ErrUnsupportedFile = errors.New("unsupported classification file")

// CategoryFromFileName derives the category from a file name. Earlier
// colours take precedence: a name containing both green and red is GREEN.
func CategoryFromFileName(name string) string {
	lower := strings.ToLower(filepath.Base(name))
	switch {
	case strings.Contains(lower, "green"):
		return CategoryGreen
	case strings.Contains(lower, "red"):
		return CategoryRed
	case strings.Contains(lower, "orange"):
		return CategoryOrange
	case strings.Contains(lower, "grey"):
		return CategoryGrey
	default:
		return CategoryUnknown
	}
}

func IsCategoryFile(path string) bool {
	return strings.Contains(filepath.Base(path), categoryFileMarker)
}

func IsIndustryFile(path string) bool {
	base := filepath.Base(path)
	return strings.Contains(base, industryFileMarker) && strings.EqualFold(filepath.Ext(base), ".txt")
}

// DecodeNSECompanies reads the NSE classification table.
func DecodeNSECompanies(table *importer.Table, sourceFile string) ([]storage.NSECompany, error) {
	if !table.HasHeader(dataset.ColumnCompanyName) || !table.HasHeader(ColumnBasicIndustry) {
		return nil, fmt.Errorf("%w: %s needs %q and %q columns", ErrUnsupportedFile, sourceFile, dataset.ColumnCompanyName, ColumnBasicIndustry)
	}

	out := make([]storage.NSECompany, 0, len(table.Records))
	for _, record := range table.Records {
		name := strings.TrimSpace(record.Get(dataset.ColumnCompanyName))
		if name == "" {
			continue
		}
		out = append(out, storage.NSECompany{
			CompanyName:   name,
			BasicIndustry: record.Get(ColumnBasicIndustry),
			SourceFile:    sourceFile,
		})
	}
	return out, nil
}

// DecodeCategoryCompanies reads one category company file. The category comes
// from the file name; the nature of activity column is optional.
func DecodeCategoryCompanies(table *importer.Table, sourceFile string) ([]storage.CategoryCompany, error) {
	if !table.HasHeader(dataset.ColumnCompanyName) {
		return nil, fmt.Errorf("%w: %s needs a %q column", ErrUnsupportedFile, sourceFile, dataset.ColumnCompanyName)
	}
	activityColumn, _ := table.FirstHeader(natureOfActivityColumns...)
	category := CategoryFromFileName(sourceFile)

	out := make([]storage.CategoryCompany, 0, len(table.Records))
	for _, record := range table.Records {
		raw := record.Get(dataset.ColumnCompanyName)
		key := dataset.Normalize(raw)
		if key == "" {
			continue
		}
		company := storage.CategoryCompany{
			CompanyName:    strings.TrimSpace(raw),
			NormalizedName: key,
			Category:       category,
			SourceFile:     sourceFile,
		}
		if activityColumn != "" {
			company.NatureOfActivity = record.Get(activityColumn)
		}
		out = append(out, company)
	}
	return out, nil
}

// IndexStore is the write side of the classification index.
type IndexStore interface {
	InsertNSECompanies(companies []storage.NSECompany) (int, error)
	InsertCategoryCompanies(companies []storage.CategoryCompany) (int, error)
}

// FileResult reports the outcome of importing one file.
type FileResult struct {
	Path     string
	Kind     string
	Category string
	Rows     int
	Inserted int
}

// ImportFiles reads each path (CSV or Excel) and stores its rows. Files whose
// name contains _Companies_ are category files; anything else must be an NSE
// classification file.
func ImportFiles(store IndexStore, paths []string, logger *zap.Logger) ([]FileResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		table, err := importer.ReadFile(path, "")
		if err != nil {
			return results, fmt.Errorf("read %s: %w", path, err)
		}
		source := filepath.Base(path)

		result := FileResult{Path: path}
		if IsCategoryFile(path) {
			companies, err := DecodeCategoryCompanies(table, source)
			if err != nil {
				return results, err
			}
			inserted, err := store.InsertCategoryCompanies(companies)
			if err != nil {
				return results, fmt.Errorf("store %s: %w", path, err)
			}
			result.Kind = "category"
			result.Category = CategoryFromFileName(source)
			result.Rows = len(companies)
			result.Inserted = inserted
		} else {
			companies, err := DecodeNSECompanies(table, source)
			if err != nil {
				return results, err
			}
			inserted, err := store.InsertNSECompanies(companies)
			if err != nil {
				return results, fmt.Errorf("store %s: %w", path, err)
			}
			result.Kind = "nse"
			result.Rows = len(companies)
			result.Inserted = inserted
		}

		logger.Info("classification file imported",
			zap.String("file", path),
			zap.String("kind", result.Kind),
			zap.String("category", result.Category),
			zap.Int("rows", result.Rows),
			zap.Int("inserted", result.Inserted),
		)
		results = append(results, result)
	}
	return results, nil
}
