package auth

import (
	"fmt"
	"time"

	"github.com/mitchellh/cli"
	"golang.org/x/oauth2"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Obtain, refresh and revoke OAuth tokens"
}

func (c *Command) Help() string {
	return `Usage: asana oauth <subcommand> [options] [args]

  This command groups subcommands for the OAuth authorization code flow.
  ASANA_CLIENT_ID, ASANA_CLIENT_SECRET and ASANA_REDIRECT_URL must be set.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func printToken(ui cli.Ui, tok *oauth2.Token) {
	ui.Output("access_token:  " + tok.AccessToken)
	if tok.RefreshToken != "" {
		ui.Output("refresh_token: " + tok.RefreshToken)
	}
	if !tok.Expiry.IsZero() {
		ui.Output(fmt.Sprintf("expires_at:    %s", tok.Expiry.Format(time.RFC3339)))
	}
}
