package cmd

import (
	"fmt"
	"io"

	"aimlookup/config"
	"aimlookup/loader"
	"aimlookup/viewer"

	"github.com/spf13/cobra"
)

var (
	recordsSearch string
	recordsIndex  int
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Print one record of the detail dataset",
	Long: `Fetch the detail dataset and print one record.

--search filters records by a case-insensitive substring of the company name.
--index selects a position within the filtered set (0-based, clamped).`,
	Example: `
  # First record
  aimlookup records

  # Third record whose company name contains "bank"
  aimlookup records --search bank --index 2
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		client, err := newFetcher(cfg)
		if err != nil {
			return err
		}

		data, err := runLoad(cmd.Context(), "records", cfg, loader.LoadRecords(client, sourcesFromConfig(cfg)))
		if err != nil {
			return err
		}

		pager := viewer.NewPager(data.Details)
		pager.Search(recordsSearch)
		pager.Seek(recordsIndex)
		printRecord(cmd.OutOrStdout(), viewer.Build(pager, recordsSearch, cfg.Viewer.CollapseWords))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)

	recordsCmd.Flags().StringVar(&recordsSearch, "search", "", "Filter records by company name substring")
	recordsCmd.Flags().IntVar(&recordsIndex, "index", 0, "Record position within the filtered set (0-based)")
}

func printRecord(w io.Writer, view viewer.View) {
	if !view.Found {
		fmt.Fprintln(w, "No records found")
		return
	}

	record := view.Record
	fmt.Fprintf(w, "Record %d of %d\n", view.Index+1, view.Len)
	fmt.Fprintf(w, "Company Name: %s\n", record.CompanyName)
	fmt.Fprintf(w, "Analysis Year: %s\n", record.AnalysisYear)
	fmt.Fprintf(w, "AIM Category: %s\n", record.AIMCategory)
	fmt.Fprintf(w, "Revenue Share Analysis: %s\n", view.RevenueShare.Text)
	fmt.Fprintf(w, "Review Status: %s\n", record.ReviewStatus)
	fmt.Fprintf(w, "Pending Review Comments: %s\n", record.PendingReviewComments)
	fmt.Fprintln(w, "Basic Industry:")
	for _, row := range view.BasicIndustry {
		if row.Placeholder {
			fmt.Fprintf(w, "  %s\n", viewer.NotAvailable)
			continue
		}
		fmt.Fprintf(w, "  %s | %s | %s | %s\n", row.Sector, row.Industry, row.Share, row.Justification.Text)
	}
	fmt.Fprintf(w, "BWC 2017 Category: %s\n", record.BWC2017Category)
	fmt.Fprintf(w, "Activities from BWC Guide: %s\n", record.ActivitiesFromBWCGuide)
}
