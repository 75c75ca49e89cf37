package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnautVasile/asana-go/pkg/asana"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "basic", cfg.AuthMode)
	assert.Equal(t, asana.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "out", cfg.OutDir)
	assert.Equal(t, FormatJSON, cfg.OutFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(lookupFrom(map[string]string{
		"ASANA_PAT":          " pat ",
		"ASANA_AUTH_MODE":    "oauth",
		"ASANA_OAUTH_TOKEN":  "tok",
		"ASANA_HTTP_TIMEOUT": "5s",
		"OUT_DIR":            "/tmp/snap",
		"OUT_FORMAT":         "yaml",
		"LOG_LEVEL":          "debug",
		"ASANA_CLIENT_ID":    "cid",
	}))
	require.NoError(t, err)

	assert.Equal(t, "pat", cfg.AsanaPAT)
	assert.Equal(t, "oauth", cfg.AuthMode)
	assert.Equal(t, "tok", cfg.OAuthToken)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/snap", cfg.OutDir)
	assert.Equal(t, FormatYAML, cfg.OutFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cid", cfg.ClientID)
	assert.Equal(t, asana.DefaultBaseURL, cfg.BaseURL)
}

func TestParse_BadDuration(t *testing.T) {
	_, err := Parse(lookupFrom(map[string]string{"ASANA_HTTP_TIMEOUT": "soon"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		errors int
	}{
		{"basic ok", map[string]string{"ASANA_PAT": "pat"}, 0},
		{"basic missing pat", nil, 1},
		{"oauth ok", map[string]string{"ASANA_AUTH_MODE": "oauth", "ASANA_OAUTH_TOKEN": "tok"}, 0},
		{"oauth missing token", map[string]string{"ASANA_AUTH_MODE": "oauth", "ASANA_PAT": "pat"}, 1},
		{"unknown mode", map[string]string{"ASANA_AUTH_MODE": "digest"}, 1},
		{"everything wrong", map[string]string{
			"ASANA_HTTP_TIMEOUT": "0s",
			"OUT_FORMAT":         "xml",
			"LOG_LEVEL":          "loud",
		}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(lookupFrom(tt.env))
			require.NoError(t, err)

			err = cfg.Validate()
			if tt.errors == 0 {
				assert.NoError(t, err)
				return
			}
			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, tt.errors)
		})
	}
}

func TestValidateOAuthApp(t *testing.T) {
	cfg, err := Parse(lookupFrom(map[string]string{"ASANA_CLIENT_ID": "cid"}))
	require.NoError(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, cfg.ValidateOAuthApp(), &merr)
	assert.Len(t, merr.Errors, 2)

	cfg.ClientSecret = "secret"
	cfg.RedirectURL = "urn:ietf:wg:oauth:2.0:oob"
	assert.NoError(t, cfg.ValidateOAuthApp())
}

func TestClientConfig(t *testing.T) {
	cfg, err := Parse(lookupFrom(map[string]string{
		"ASANA_AUTH_MODE":    "bearer",
		"ASANA_OAUTH_TOKEN":  "tok",
		"ASANA_BASE_URL":     "http://localhost:9999/api/1.0",
		"ASANA_HTTP_TIMEOUT": "2s",
	}))
	require.NoError(t, err)

	cc, err := cfg.ClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, asana.AuthOAuth, cc.AuthMode)
	assert.Equal(t, "tok", cc.OAuthToken)
	assert.Equal(t, "http://localhost:9999/api/1.0", cc.BaseURL)
	assert.Equal(t, 2*time.Second, cc.Timeout)

	c, err := asana.New(cc)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/api/1.0/", c.BaseURL())
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ASANA_PAT=from-file\nOUT_DIR=file-out\n"), 0o600))

	t.Setenv("ASANA_PAT", "from-env")
	// Registers cleanup for the key godotenv will set.
	t.Setenv("OUT_DIR", "")
	require.NoError(t, os.Unsetenv("OUT_DIR"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AsanaPAT)
	assert.Equal(t, "file-out", cfg.OutDir)
}
