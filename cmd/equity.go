package cmd

import (
	"fmt"

	"aimlookup/config"
	"aimlookup/loader"
	"aimlookup/output"

	"github.com/spf13/cobra"
)

var (
	equityOutput string
	equityFormat string
)

var equityCmd = &cobra.Command{
	Use:   "equity",
	Short: "Work with the equity list cross-referenced against the category dataset.",
}

var equityExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the equity cross-reference to CSV/Excel",
	Long: `Fetch the category dataset and the equity list, resolve every equity against
the categories and write one row per equity:

  Company, Matched, Industry, Category

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export to CSV
  aimlookup equity export --output ./equity.csv

  # Export to Excel
  aimlookup equity export --output ./equity.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		format := output.FormatForPath(equityOutput, equityFormat)
		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}

		client, err := newFetcher(cfg)
		if err != nil {
			return err
		}
		data, err := runLoad(cmd.Context(), "equity", cfg, loader.LoadEquity(client, sourcesFromConfig(cfg), cfg.Lookup.SuggestionLimit))
		if err != nil {
			return err
		}

		matches := data.Resolver.CrossReference(data.Equities)
		if err := writer.Write(equityOutput, output.EquitySheet(matches)); err != nil {
			return err
		}

		matched := 0
		for _, match := range matches {
			if match.Result.Matched {
				matched++
			}
		}
		fmt.Printf("Export completed. Equities: %d, Matched: %d, Format: %s, File: %s\n", len(matches), matched, format, equityOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(equityCmd)
	equityCmd.AddCommand(equityExportCmd)

	equityExportCmd.Flags().StringVarP(&equityOutput, "output", "o", "", "Output file path")
	equityExportCmd.Flags().StringVarP(&equityFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")

	_ = equityExportCmd.MarkFlagRequired("output")
}
