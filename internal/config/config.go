package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"

	"github.com/ArnautVasile/asana-go/pkg/asana"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	AsanaPAT    string        `mapstructure:"ASANA_PAT"`
	AuthMode    string        `mapstructure:"ASANA_AUTH_MODE"`
	OAuthToken  string        `mapstructure:"ASANA_OAUTH_TOKEN"`
	BaseURL     string        `mapstructure:"ASANA_BASE_URL"`
	HTTPTimeout time.Duration `mapstructure:"ASANA_HTTP_TIMEOUT"`

	OutDir    string `mapstructure:"OUT_DIR"`
	OutFormat string `mapstructure:"OUT_FORMAT"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`

	// OAuth app credentials, only needed by the oauth commands.
	ClientID     string `mapstructure:"ASANA_CLIENT_ID"`
	ClientSecret string `mapstructure:"ASANA_CLIENT_SECRET"`
	RedirectURL  string `mapstructure:"ASANA_REDIRECT_URL"`
}

var keys = []string{
	"ASANA_PAT",
	"ASANA_AUTH_MODE",
	"ASANA_OAUTH_TOKEN",
	"ASANA_BASE_URL",
	"ASANA_HTTP_TIMEOUT",
	"OUT_DIR",
	"OUT_FORMAT",
	"LOG_LEVEL",
	"ASANA_CLIENT_ID",
	"ASANA_CLIENT_SECRET",
	"ASANA_REDIRECT_URL",
}

func defaults() *Config {
	return &Config{
		AuthMode:    string(asana.AuthBasic),
		BaseURL:     asana.DefaultBaseURL,
		HTTPTimeout: 30 * time.Second,
		OutDir:      "out",
		OutFormat:   FormatJSON,
		LogLevel:    "info",
	}
}

// Load reads .env (or the given files) into the process environment without
// overriding variables that are already set, then parses the environment.
func Load(filenames ...string) (*Config, error) {
	_ = godotenv.Load(filenames...)
	return Parse(os.LookupEnv)
}

// Parse builds a Config from lookup. Keys that are not set keep their
// defaults.
func Parse(lookup func(string) (string, bool)) (*Config, error) {
	raw := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := lookup(k); ok {
			raw[k] = strings.TrimSpace(v)
		}
	}

	cfg := defaults()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return cfg, nil
}

// Validate checks what every API command needs.
func (c *Config) Validate() error {
	var result *multierror.Error

	mode, err := asana.ParseAuthMode(c.AuthMode)
	if err != nil {
		result = multierror.Append(result, err)
	}
	switch mode {
	case asana.AuthBasic:
		if c.AsanaPAT == "" {
			result = multierror.Append(result, errors.New("ASANA_PAT is not set (.env or env var)"))
		}
	case asana.AuthOAuth:
		if c.OAuthToken == "" {
			result = multierror.Append(result, errors.New("ASANA_OAUTH_TOKEN is not set (.env or env var)"))
		}
	}

	if c.HTTPTimeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("ASANA_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout))
	}
	if c.OutFormat != FormatJSON && c.OutFormat != FormatYAML {
		result = multierror.Append(result, fmt.Errorf("OUT_FORMAT must be %q or %q, got %q", FormatJSON, FormatYAML, c.OutFormat))
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		result = multierror.Append(result, fmt.Errorf("unknown LOG_LEVEL %q", c.LogLevel))
	}

	return result.ErrorOrNil()
}

// ValidateOAuthApp checks the app credentials used by the oauth commands.
func (c *Config) ValidateOAuthApp() error {
	var result *multierror.Error
	if c.ClientID == "" {
		result = multierror.Append(result, errors.New("ASANA_CLIENT_ID is not set"))
	}
	if c.ClientSecret == "" {
		result = multierror.Append(result, errors.New("ASANA_CLIENT_SECRET is not set"))
	}
	if c.RedirectURL == "" {
		result = multierror.Append(result, errors.New("ASANA_REDIRECT_URL is not set"))
	}
	return result.ErrorOrNil()
}

// ClientConfig maps the loaded settings onto the API client's Config.
func (c *Config) ClientConfig(logger hclog.Logger) (asana.Config, error) {
	mode, err := asana.ParseAuthMode(c.AuthMode)
	if err != nil {
		return asana.Config{}, err
	}
	return asana.Config{
		APIKey:     c.AsanaPAT,
		AuthMode:   mode,
		OAuthToken: c.OAuthToken,
		BaseURL:    c.BaseURL,
		Timeout:    c.HTTPTimeout,
		Logger:     logger,
	}, nil
}
