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

var suggestEquity bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <query...>",
	Short: "List autocomplete suggestions for a query",
	Long: `Print the suggestions the web UI would offer for a query.

By default suggestions come from the category dataset. With --equity they come
from the equity list instead, as on the /equity page.`,
	Example: `
  # Suggestions from the category dataset
  aimlookup suggest tes

  # Suggestions from the equity list
  aimlookup suggest --equity bank
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

		src := sourcesFromConfig(cfg)
		limit := cfg.Lookup.SuggestionLimit
		var index *lookup.Index
		if suggestEquity {
			data, err := runLoad(cmd.Context(), "equity", cfg, loader.LoadEquity(client, src, limit))
			if err != nil {
				return err
			}
			index = data.Index
		} else {
			data, err := runLoad(cmd.Context(), "lookup", cfg, loader.LoadLookup(client, src, limit))
			if err != nil {
				return err
			}
			index = data.Index
		}

		printSuggestions(cmd.OutOrStdout(), index.Suggest(strings.Join(args, " ")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().BoolVar(&suggestEquity, "equity", false, "Suggest from the equity list instead of the category dataset")
}

func printSuggestions(w io.Writer, suggestions []lookup.Suggestion) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions.")
		return
	}
	for _, suggestion := range suggestions {
		fmt.Fprintln(w, suggestion.Display)
	}
}
