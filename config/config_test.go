package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestValidateYAMLContent_ExampleIsValid(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(ExampleYAML()))
	if err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
	if cfg.Relay.URL != DefaultRelayURL || cfg.Relay.Timeout != 60*time.Second {
		t.Fatalf("unexpected relay config %+v", cfg.Relay)
	}
	if cfg.Loader.ProgressInterval != 500*time.Millisecond || cfg.Loader.ProgressStep != 10 {
		t.Fatalf("unexpected loader config %+v", cfg.Loader)
	}
	if cfg.Lookup.SuggestionLimit != 10 || cfg.Viewer.CollapseWords != 10 || cfg.Classify.Threshold != 85 {
		t.Fatalf("unexpected limits %+v %+v %+v", cfg.Lookup, cfg.Viewer, cfg.Classify)
	}
}

func TestValidateYAMLContent_DefaultsFillMissingKeys(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte("server:\n  port: 9090\n"))
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port override, got %d", cfg.Server.Port)
	}
	if cfg.Sources.Category != DefaultCategorySource || cfg.Log.Level != "info" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestValidateYAMLContent_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "relay url", content: "relay:\n  url: \"not a url\"\n", want: "URL"},
		{name: "suggestion limit", content: "lookup:\n  suggestion_limit: 0\n", want: "SuggestionLimit"},
		{name: "progress step", content: "loader:\n  progress_step: 150\n", want: "ProgressStep"},
		{name: "log level", content: "log:\n  level: verbose\n", want: "Level"},
		{name: "timeout", content: "relay:\n  timeout: 0s\n", want: KeyRelayTimeout},
		{name: "bad yaml", content: "relay: [", want: "read config content"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateYAMLContent([]byte(tt.content))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestConfigureEnv_OverridesKeys(t *testing.T) {
	t.Setenv("AIMLOOKUP_SERVER_PORT", "9191")
	t.Setenv("AIMLOOKUP_LOG_LEVEL", "debug")

	v := viper.New()
	setDefaults(v)
	ConfigureEnv(v)

	cfg, err := loadAndValidateFromViper(v)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9191 || cfg.Log.Level != "debug" {
		t.Fatalf("expected env overrides, got port=%d level=%s", cfg.Server.Port, cfg.Log.Level)
	}
}
