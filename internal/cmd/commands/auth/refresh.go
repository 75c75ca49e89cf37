package auth

import (
	"github.com/ArnautVasile/asana-go/internal/cmd/base"
)

type RefreshCommand struct {
	*base.Command
}

func (c *RefreshCommand) Synopsis() string {
	return "Exchange a refresh token for a new access token"
}

func (c *RefreshCommand) Help() string {
	return `Usage: asana oauth refresh <refresh-token>`
}

func (c *RefreshCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("expected exactly one refresh token")
		return 1
	}

	flow, err := c.OAuthFlow()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	tok, err := flow.Refresh(ctx, args[0])
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	printToken(c.UI, tok)
	return 0
}

type RevokeCommand struct {
	*base.Command
}

func (c *RevokeCommand) Synopsis() string {
	return "Revoke a refresh token"
}

func (c *RevokeCommand) Help() string {
	return `Usage: asana oauth revoke <refresh-token>

  Revoking a refresh token also invalidates the access tokens issued from it.`
}

func (c *RevokeCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("expected exactly one token")
		return 1
	}

	flow, err := c.OAuthFlow()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	if err := flow.Revoke(ctx, args[0]); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Info("token revoked")
	return 0
}
