package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"aimlookup/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultConfigName = ".aimlookup.yaml"

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the active config in an editor.",
	Long: `Open the active aimlookup config file in your editor.

Editor selection order:
1) $VISUAL
2) $EDITOR
3) vi

If no config file exists yet, this command creates one with the example template first.
After the editor exits, the content is validated; relay and source URLs must be absolute.`,
	Example: `
  # Edit active config
  aimlookup config edit

  # Edit with a specific editor
  EDITOR="code --wait" aimlookup config edit
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := resolveConfigPath(cfgFile, viper.ConfigFileUsed())
		if err != nil {
			return err
		}

		created, err := writeConfigTemplate(configPath, false)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("No config file found. Created example config at: %s\n", configPath)
		}

		editor := resolveEditorValue(os.Getenv("VISUAL"), os.Getenv("EDITOR"))
		editorCommand, err := buildEditorCommand(editor, configPath)
		if err != nil {
			return err
		}
		editorCommand.Stdin = os.Stdin
		editorCommand.Stdout = os.Stdout
		editorCommand.Stderr = os.Stderr
		if err := editorCommand.Run(); err != nil {
			return fmt.Errorf("opening editor failed: %w", err)
		}

		if err := validateConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("Configuration saved and validated: %s\n", configPath)
		return nil
	},
}

// resolveConfigPath prefers --configFile, then the file viper loaded, then
// $HOME/.aimlookup.yaml.
func resolveConfigPath(configFileFlag, configFileUsed string) (string, error) {
	if strings.TrimSpace(configFileFlag) != "" {
		return configFileFlag, nil
	}
	if strings.TrimSpace(configFileUsed) != "" {
		return configFileUsed, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigName), nil
}

// writeConfigTemplate writes the example template to path. An existing file
// is kept unless force is set. It reports whether the file was written.
func writeConfigTemplate(path string, force bool) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil && !force:
		return false, nil
	case err != nil && !os.IsNotExist(err):
		return false, fmt.Errorf("checking config file failed: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating config directory failed: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.ExampleYAML()), 0o600); err != nil {
		return false, fmt.Errorf("writing example config failed: %w", err)
	}
	return true, nil
}

func validateConfigFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading edited config failed: %w", err)
	}
	if _, err := config.ValidateYAMLContent(content); err != nil {
		return fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return nil
}

func resolveEditorValue(visual, editor string) string {
	for _, candidate := range []string{visual, editor} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return "vi"
}

func buildEditorCommand(editorValue, configPath string) (*exec.Cmd, error) {
	fields := strings.Fields(strings.TrimSpace(editorValue))
	if len(fields) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}

	args := append(fields[1:], configPath)
	return exec.Command(fields[0], args...), nil
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
