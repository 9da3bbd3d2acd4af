package cmd

import (
	"fmt"
	"io"

	"aimlookup/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the effective configuration as YAML and the resolved config file path.

Values come from the config file, AIMLOOKUP_* environment variables and defaults,
with the environment taking precedence. The configuration is validated
before printing.`,
	Example: `
  # Show active configuration
  aimlookup config show

  # Show the effect of an environment override
  AIMLOOKUP_SERVER_PORT=9090 aimlookup config show
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return printConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), cfg)
	},
}

func printConfig(w io.Writer, configPath string, cfg *config.Config) error {
	if configPath != "" {
		fmt.Fprintln(w, "Config file loaded from:", configPath)
	} else {
		fmt.Fprintln(w, "No config file loaded; showing defaults and environment overrides.")
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintln(w, "Configuration:")
	_, err = w.Write(content)
	return err
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
