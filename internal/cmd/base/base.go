package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/ArnautVasile/asana-go/internal/config"
	"github.com/ArnautVasile/asana-go/internal/oauth"
	"github.com/ArnautVasile/asana-go/pkg/asana"
)

// Command holds what every subcommand shares.
type Command struct {
	UI     cli.Ui
	Log    hclog.Logger
	Config *config.Config

	// Fs is where snapshots are written.
	Fs afero.Fs
	// OpenURL opens a page in the user's browser.
	OpenURL func(url string) error
	// OAuth carries endpoint and HTTP client overrides for the oauth
	// commands. Credentials always come from Config.
	OAuth oauth.Config
}

func New(log hclog.Logger, ui cli.Ui, cfg *config.Config) *Command {
	return &Command{
		UI:      ui,
		Log:     log,
		Config:  cfg,
		Fs:      afero.NewOsFs(),
		OpenURL: browser.OpenURL,
	}
}

// Client validates the configuration and builds an API client. API error
// help text is shown to the user as a warning.
func (c *Command) Client() (*asana.Client, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cc, err := c.Config.ClientConfig(c.Log.Named("asana"))
	if err != nil {
		return nil, err
	}
	client, err := asana.New(cc)
	if err != nil {
		return nil, err
	}
	client.OnError(func(err *asana.APIError) {
		for _, e := range err.Errors {
			if e.Help != "" {
				c.UI.Warn(e.Help)
			}
		}
	})
	return client, nil
}

// OAuthFlow builds the OAuth helper from the configured app credentials.
func (c *Command) OAuthFlow() (*oauth.Flow, error) {
	if err := c.Config.ValidateOAuthApp(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	oc := c.OAuth
	oc.ClientID = c.Config.ClientID
	oc.ClientSecret = c.Config.ClientSecret
	oc.RedirectURL = c.Config.RedirectURL
	return oauth.New(oc), nil
}

// Context is canceled on SIGINT or SIGTERM.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
