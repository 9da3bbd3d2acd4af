package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"aimlookup/config"
	"aimlookup/internal/classify"
	"aimlookup/output"
	"aimlookup/storage"

	"github.com/spf13/cobra"
)

const defaultSectorList = "NSE_BasicSector_List.txt"

var (
	classifyDBPath   string
	classifySectors  string
	classifyDir      string
	classifyOutput   string
	classifyFormat   string
	classifyMinScore int
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Query and categorise the offline classification index.",
	Long: `Commands for dataset curators working on the classification index built by
"aimlookup index".`,
	Example: `
  # Companies of one basic industry and their categories
  aimlookup classify sector "Cement & Cement Products"

  # Categorise every basic industry sector
  aimlookup classify sectors --dir ./classification --output ./sectors.xlsx
`,
}

var classifySectorCmd = &cobra.Command{
	Use:   "sector <basic industry...>",
	Short: "List the companies of one basic industry and their categories",
	Long: `List every NSE company whose basic industry equals the given sector (trimmed,
case-insensitive) and resolve it against the category files. When several files
name a company, the first imported file wins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := storage.OpenSQLite(resolveIndexDB(classifyDBPath))
		if err != nil {
			return err
		}
		defer store.Close()

		report, err := classify.SectorCompanies(store, strings.Join(args, " "))
		if err != nil {
			return err
		}
		printSectorReport(cmd.OutOrStdout(), report)
		return nil
	},
}

var classifySectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Categorise industry sectors by fuzzy matching against industry lists",
	Long: `Assign a category to every sector by fuzzy matching it against the
*_Industry_*.txt lists found below --dir. Sectors that score below the threshold
are retried against the "Nature of Activity" of the indexed category companies.

Sectors are read from --sectors (one per line). When that file does not exist,
the distinct basic industries of the classification index are used.

Result rows (Industry Sector, Category, Comments, Match Score) are written to
--output as CSV or Excel.`,
	Example: `
  # Categorise sectors listed in NSE_BasicSector_List.txt
  aimlookup classify sectors --dir ./classification --output ./sectors.csv

  # Use the index as sector source and a stricter threshold
  aimlookup classify sectors --sectors "" --threshold 90 --output ./sectors.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		threshold := cfg.Classify.Threshold
		if cmd.Flags().Changed("threshold") {
			threshold = classifyMinScore
		}

		format := output.FormatForPath(classifyOutput, classifyFormat)
		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}

		store, err := storage.OpenSQLite(resolveIndexDB(classifyDBPath))
		if err != nil {
			return err
		}
		defer store.Close()

		sectors, err := loadSectors(classifySectors, store)
		if err != nil {
			return err
		}
		if len(sectors) == 0 {
			return fmt.Errorf("no sectors to categorise: provide --sectors or run aimlookup index first")
		}

		paths, err := globFiles(classifyDir, classify.IndustryFilesPattern)
		if err != nil {
			return err
		}
		industryFiles := make([]classify.IndustryFile, 0, len(paths))
		for _, path := range paths {
			file, err := classify.ReadIndustryFile(path)
			if err != nil {
				return err
			}
			industryFiles = append(industryFiles, file)
		}

		companies, err := store.ListCategoryCompanies()
		if err != nil {
			return err
		}

		results, summary := classify.CategorizeSectors(sectors, industryFiles, companies, classify.Options{
			Threshold: threshold,
			Logger:    logger,
		})
		if err := writer.Write(classifyOutput, output.SectorSheet(results)); err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), summary)
		fmt.Fprintf(cmd.OutOrStdout(), "Results written. Rows: %d, Industry files: %d, Format: %s, File: %s\n", len(results), len(industryFiles), format, classifyOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.AddCommand(classifySectorCmd)
	classifyCmd.AddCommand(classifySectorsCmd)

	classifyCmd.PersistentFlags().StringVar(&classifyDBPath, "db", "", "Path to the SQLite classification index (default from index.db)")

	classifySectorsCmd.Flags().StringVar(&classifySectors, "sectors", defaultSectorList, "Sector list file, one sector per line (falls back to the index)")
	classifySectorsCmd.Flags().StringVar(&classifyDir, "dir", ".", "Directory searched recursively for *_Industry_*.txt files")
	classifySectorsCmd.Flags().StringVarP(&classifyOutput, "output", "o", "", "Output file path")
	classifySectorsCmd.Flags().StringVarP(&classifyFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	classifySectorsCmd.Flags().IntVar(&classifyMinScore, "threshold", classify.DefaultScoreThreshold, "Minimum match score 1-100 (default from classify.threshold)")

	_ = classifySectorsCmd.MarkFlagRequired("output")
}

type industryLister interface {
	ListBasicIndustries() ([]string, error)
}

// loadSectors reads the sector list file, or lists the indexed basic
// industries when the file is absent.
func loadSectors(path string, store industryLister) ([]string, error) {
	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			return classify.ReadSectorList(path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("check sector list %s: %w", path, err)
		}
	}
	sectors, err := store.ListBasicIndustries()
	if err != nil {
		return nil, fmt.Errorf("list basic industries: %w", err)
	}
	return sectors, nil
}

func printSectorReport(w io.Writer, report classify.SectorReport) {
	fmt.Fprintf(w, "Sector: %s\n", report.Sector)
	fmt.Fprintf(w, "Found in category files: %d\n", len(report.Found))
	for _, match := range report.Found {
		fmt.Fprintf(w, "  %s [%s] %s\n", match.CompanyName, match.Category, match.SourceFile)
		if match.NatureOfActivity != "" {
			fmt.Fprintf(w, "    Nature of Activity: %s\n", match.NatureOfActivity)
		}
	}
	fmt.Fprintf(w, "Not found: %d\n", len(report.NotFound))
	for _, name := range report.NotFound {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func printSummary(w io.Writer, summary classify.Summary) {
	fmt.Fprintf(w, "Sectors: %d, Categorized: %d, Uncategorized: %d\n", summary.Total, summary.Categorized, summary.Uncategorized)

	categories := make([]string, 0, len(summary.Counts))
	for category := range summary.Counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(w, "  %s: %d\n", category, summary.Counts[category])
	}
	fmt.Fprintf(w, "Match score max: %.0f, mean: %.2f, median: %.2f\n", summary.MaxScore, summary.MeanScore, summary.MedianScore)
}
