package cmd

import (
	"fmt"
	"io"
	"strings"

	"aimlookup/config"
	"aimlookup/loader"
	"aimlookup/lookup"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <company name...>",
	Short: "Resolve one company against the category dataset",
	Long: `Fetch the category dataset and resolve a company name by exact match.

The name is normalized (trimmed, trailing periods removed, lowercased) before
matching, exactly as in the web UI.`,
	Example: `
  # Resolve one company
  aimlookup lookup "Tesla Inc."

  # Arguments are joined with spaces
  aimlookup lookup jbs s.a.
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		client, err := newFetcher(cfg)
		if err != nil {
			return err
		}

		data, err := runLoad(cmd.Context(), "lookup", cfg, loader.LoadLookup(client, sourcesFromConfig(cfg), cfg.Lookup.SuggestionLimit))
		if err != nil {
			return err
		}

		printResult(cmd.OutOrStdout(), data.Resolver.Resolve(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func printResult(w io.Writer, result lookup.Result) {
	if !result.Matched {
		fmt.Fprintln(w, result.Message)
		return
	}
	fmt.Fprintf(w, "Company Name: %s\n", result.CompanyName)
	fmt.Fprintf(w, "Industry: %s\n", result.Industry)
	fmt.Fprintf(w, "Category: %s\n", result.Category)
	if !result.Categorized {
		fmt.Fprintln(w, "Note: category is neither green nor red")
	}
}
