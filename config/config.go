package config

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "AIMLOOKUP"

	KeyRelayURL               = "relay.url"
	KeyRelayTimeout           = "relay.timeout"
	KeyRelayUserAgent         = "relay.user_agent"
	KeySourcesCategory        = "sources.category"
	KeySourcesEquity          = "sources.equity"
	KeySourcesDetail          = "sources.detail"
	KeyLookupSuggestionLimit  = "lookup.suggestion_limit"
	KeyViewerCollapseWords    = "viewer.collapse_words"
	KeyLoaderQuoteInterval    = "loader.quote_interval"
	KeyLoaderProgressInterval = "loader.progress_interval"
	KeyLoaderProgressStep     = "loader.progress_step"
	KeyLoaderQuotes           = "loader.quotes"
	KeyServerPort             = "server.port"
	KeyLogLevel               = "log.level"
	KeyIndexDB                = "index.db"
	KeyClassifyThreshold      = "classify.threshold"
)

const (
	DefaultRelayURL       = "https://api.allorigins.win/get"
	DefaultCategorySource = "https://drive.google.com/uc?export=download&id=13QfE7MqQxBavedhPmYPXamxIf09PpAYd"
	DefaultEquitySource   = "https://archives.nseindia.com/content/equities/EQUITY_L.csv"
	DefaultDetailSource   = "https://docs.google.com/spreadsheets/d/1iE1BrdJK4A-k5XNi_fRkR5FQ7YgS5MTJv-1A_v2aAxg/export?format=csv"
	DefaultServerPort     = 8080
	DefaultIndexDB        = "aimlookup.db"
)

type Config struct {
	Relay    RelayConfig    `mapstructure:"relay" yaml:"relay" validate:"required"`
	Sources  SourcesConfig  `mapstructure:"sources" yaml:"sources" validate:"required"`
	Lookup   LookupConfig   `mapstructure:"lookup" yaml:"lookup"`
	Viewer   ViewerConfig   `mapstructure:"viewer" yaml:"viewer"`
	Loader   LoaderConfig   `mapstructure:"loader" yaml:"loader"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Index    IndexConfig    `mapstructure:"index" yaml:"index"`
	Classify ClassifyConfig `mapstructure:"classify" yaml:"classify"`
}

type RelayConfig struct {
	URL       string        `mapstructure:"url" yaml:"url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" yaml:"timeout"`
	UserAgent string        `mapstructure:"user_agent" yaml:"user_agent"`
}

type SourcesConfig struct {
	Category string `mapstructure:"category" yaml:"category" validate:"required,url"`
	Equity   string `mapstructure:"equity" yaml:"equity" validate:"required,url"`
	Detail   string `mapstructure:"detail" yaml:"detail" validate:"required,url"`
}

type LookupConfig struct {
	SuggestionLimit int `mapstructure:"suggestion_limit" yaml:"suggestion_limit" validate:"min=1"`
}

type ViewerConfig struct {
	CollapseWords int `mapstructure:"collapse_words" yaml:"collapse_words" validate:"min=1"`
}

type LoaderConfig struct {
	QuoteInterval    time.Duration `mapstructure:"quote_interval" yaml:"quote_interval"`
	ProgressInterval time.Duration `mapstructure:"progress_interval" yaml:"progress_interval"`
	ProgressStep     int           `mapstructure:"progress_step" yaml:"progress_step" validate:"min=1,max=100"`
	Quotes           []string      `mapstructure:"quotes" yaml:"quotes"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" yaml:"port" validate:"min=1,max=65535"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

type IndexConfig struct {
	DB string `mapstructure:"db" yaml:"db" validate:"required"`
}

type ClassifyConfig struct {
	Threshold int `mapstructure:"threshold" yaml:"threshold" validate:"min=1,max=100"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# aimlookup configuration
relay:
  url: "` + DefaultRelayURL + `"
  timeout: 60s
  user_agent: "aimlookup"

sources:
  category: "` + DefaultCategorySource + `"
  equity: "` + DefaultEquitySource + `"
  detail: "` + DefaultDetailSource + `"

lookup:
  suggestion_limit: 10

viewer:
  collapse_words: 10

loader:
  quote_interval: 5s
  progress_interval: 500ms
  progress_step: 10

server:
  port: 8080

log:
  level: info

index:
  db: aimlookup.db

classify:
  threshold: 85
`
}

// ConfigureEnv makes every key overridable as AIMLOOKUP_<SECTION>_<KEY>.
func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateDurations(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRelayURL, DefaultRelayURL)
	v.SetDefault(KeyRelayTimeout, 60*time.Second)
	v.SetDefault(KeyRelayUserAgent, "aimlookup")
	v.SetDefault(KeySourcesCategory, DefaultCategorySource)
	v.SetDefault(KeySourcesEquity, DefaultEquitySource)
	v.SetDefault(KeySourcesDetail, DefaultDetailSource)
	v.SetDefault(KeyLookupSuggestionLimit, 10)
	v.SetDefault(KeyViewerCollapseWords, 10)
	v.SetDefault(KeyLoaderQuoteInterval, 5*time.Second)
	v.SetDefault(KeyLoaderProgressInterval, 500*time.Millisecond)
	v.SetDefault(KeyLoaderProgressStep, 10)
	v.SetDefault(KeyLoaderQuotes, []string{})
	v.SetDefault(KeyServerPort, DefaultServerPort)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyIndexDB, DefaultIndexDB)
	v.SetDefault(KeyClassifyThreshold, 85)
}

func validateDurations(cfg Config) error {
	durations := []struct {
		key   string
		value time.Duration
	}{
		{KeyRelayTimeout, cfg.Relay.Timeout},
		{KeyLoaderQuoteInterval, cfg.Loader.QuoteInterval},
		{KeyLoaderProgressInterval, cfg.Loader.ProgressInterval},
	}
	for _, d := range durations {
		if d.value <= 0 {
			return fmt.Errorf("validation failed: %s must be a positive duration, got %s", d.key, d.value)
		}
	}
	return nil
}
