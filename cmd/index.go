package cmd

import (
	"fmt"
	"strings"

	"aimlookup/config"
	"aimlookup/internal/classify"
	"aimlookup/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	indexInputs []string
	indexGlob   string
	indexDBPath string
	indexReset  bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Import local classification files into the SQLite classification index",
	Long: `Read classification files (CSV or Excel) and store them in a local SQLite index.

Two kinds of files are recognised:
- category files, whose name contains "_Companies_" (e.g. AIM_Green_Companies_2024.csv).
  The category comes from the file name: green, red, orange, grey, else UNKNOWN.
- the NSE classification file with "Company Name" and "Basic Industry" columns.

--glob adds every category file below a directory (pattern ` + classify.CategoryFilesPattern + `).
Rows already present are ignored, so imports can be repeated.`,
	Example: `
  # Import the NSE classification and two category files
  aimlookup index -i NSE_Classification.xlsx -i AIM_Green_Companies.csv -i AIM_Red_Companies.csv

  # Import every category file under a directory into a fresh index
  aimlookup index -i NSE_Classification.csv --glob ./classification --reset --db ./aimlookup.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := append([]string{}, indexInputs...)
		if strings.TrimSpace(indexGlob) != "" {
			matched, err := globFiles(indexGlob, classify.CategoryFilesPattern)
			if err != nil {
				return err
			}
			paths = append(paths, matched...)
		}
		if len(paths) == 0 {
			return fmt.Errorf("no input files: use -i and/or --glob")
		}

		store, err := storage.OpenSQLite(resolveIndexDB(indexDBPath))
		if err != nil {
			return err
		}
		defer store.Close()

		if indexReset {
			deleted, err := store.DeleteAll()
			if err != nil {
				return err
			}
			fmt.Printf("Index reset. Rows deleted: %d\n", deleted)
		}

		results, err := classify.ImportFiles(store, paths, logger)
		if err != nil {
			return err
		}
		for _, result := range results {
			label := result.Kind
			if result.Category != "" {
				label = label + "/" + result.Category
			}
			fmt.Printf("  %s [%s]: rows %d, new %d\n", result.Path, label, result.Rows, result.Inserted)
		}

		nse, category, err := store.Counts()
		if err != nil {
			return err
		}
		fmt.Printf("Index completed. Files: %d, NSE companies: %d, Category companies: %d\n", len(results), nse, category)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringArrayVarP(&indexInputs, "input", "i", nil, "Classification file to import (repeatable)")
	indexCmd.Flags().StringVar(&indexGlob, "glob", "", "Directory searched recursively for category files")
	indexCmd.Flags().StringVar(&indexDBPath, "db", "", "Path to the SQLite classification index (default from index.db)")
	indexCmd.Flags().BoolVar(&indexReset, "reset", false, "Delete all indexed rows before importing")
}

func resolveIndexDB(flagValue string) string {
	if strings.TrimSpace(flagValue) != "" {
		return flagValue
	}
	return viper.GetString(config.KeyIndexDB)
}
