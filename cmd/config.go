package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage aimlookup configuration file values.",
	Long: `Create, edit, display, and delete the aimlookup configuration file.

The configuration stores the relay and dataset sources plus UI tuning:
- relay.url / relay.timeout / relay.user_agent
- sources.category / sources.equity / sources.detail
- lookup.suggestion_limit, viewer.collapse_words
- loader.quote_interval / loader.progress_interval / loader.progress_step / loader.quotes
- server.port, log.level, index.db, classify.threshold

Every key can be overridden by an environment variable, e.g. AIMLOOKUP_SERVER_PORT.`,
	Example: `
  # Create default config in $HOME/.aimlookup.yaml
  aimlookup config create

  # Show active config and source file
  aimlookup config show

  # Open active config in editor (creates example if missing)
  aimlookup config edit

  # Delete active config file
  aimlookup config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
