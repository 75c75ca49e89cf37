package auth

import (
	"flag"
	"fmt"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/internal/oauth"
)

type LoginCommand struct {
	*base.Command

	flagNoBrowser bool
}

func (c *LoginCommand) Synopsis() string {
	return "Authorize this app and print the tokens"
}

func (c *LoginCommand) Help() string {
	return `Usage: asana oauth login [options]

  Opens the Asana authorization page, then asks for the code (or the full
  redirect URL) and exchanges it for tokens.` + c.Flags().Help()
}

func (c *LoginCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("oauth login", flag.ContinueOnError))
	f.BoolVar(&c.flagNoBrowser, "no-browser", false, "Only print the authorization URL.")
	return f
}

func (c *LoginCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	flow, err := c.OAuthFlow()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	auth := flow.Begin()
	c.UI.Output("Authorization URL:\n" + auth.URL)
	if !c.flagNoBrowser {
		if err := c.OpenURL(auth.URL); err != nil {
			c.Log.Warn("could not open browser", "error", err)
		}
	}

	input, err := c.UI.Ask("Enter the authorization code or redirect URL:")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading code: %v", err))
		return 1
	}
	code, err := oauth.ParseCode(input, auth.State)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	tok, err := flow.Exchange(ctx, code, auth.Verifier)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	printToken(c.UI, tok)
	return 0
}
