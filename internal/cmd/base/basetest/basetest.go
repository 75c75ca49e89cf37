// Package basetest builds base.Commands wired to a fake Asana API.
package basetest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/internal/config"
)

// New returns a command whose API calls go to routes, mounted under
// /api/1.0, and whose files go to an in-memory Fs.
func New(t *testing.T, routes func(r chi.Router), env map[string]string) (*base.Command, *cli.MockUi) {
	t.Helper()

	r := chi.NewRouter()
	if routes != nil {
		r.Route("/api/1.0", routes)
	}
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	vars := map[string]string{
		"ASANA_PAT":      "test_api_key",
		"ASANA_BASE_URL": srv.URL + "/api/1.0",
		"LOG_LEVEL":      "error",
	}
	for k, v := range env {
		vars[k] = v
	}
	cfg, err := config.Parse(func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	})
	require.NoError(t, err)

	ui := cli.NewMockUi()
	c := base.New(hclog.NewNullLogger(), ui, cfg)
	c.Fs = afero.NewMemMapFs()
	c.OpenURL = func(string) error { return nil }
	return c, ui
}

// Input feeds lines to the UI's Ask.
func Input(ui *cli.MockUi, lines ...string) {
	ui.InputReader = strings.NewReader(strings.Join(lines, "\n") + "\n")
}
