package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the active configuration file.",
	Long: `Delete the configuration file currently selected by aimlookup.

The file named by --configFile is deleted even when it failed to load.
Without an active configuration file, the command returns an error.`,
	Example: `
  # Delete active config
  aimlookup config delete

  # Delete config at a custom path
  aimlookup --configFile ./custom-aimlookup.yaml config delete
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := deleteConfigFile(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}
		fmt.Printf("Configuration file successfully deleted: %s\n", configPath)
		return nil
	},
}

func deleteConfigFile(configFileFlag, configFileUsed string) (string, error) {
	configPath := configFileFlag
	if configPath == "" {
		configPath = configFileUsed
	}
	if configPath == "" {
		return "", fmt.Errorf("no configuration file found")
	}

	if err := os.Remove(configPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("no configuration file at %s", configPath)
		}
		return "", fmt.Errorf("error deleting configuration file: %w", err)
	}
	return configPath, nil
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}
