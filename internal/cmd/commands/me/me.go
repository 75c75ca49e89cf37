package me

import (
	"fmt"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show the authenticated user"
}

func (c *Command) Help() string {
	return `Usage: asana me

  Prints the user the configured credentials belong to, and the workspaces
  that user can see.`
}

func (c *Command) Run(args []string) int {
	if len(args) != 0 {
		c.UI.Error("me takes no arguments")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	user, err := client.Me(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error getting current user: %v", err))
		return 1
	}

	line := fmt.Sprintf("%s (%s)", user.Name, user.GID)
	if user.Email != "" {
		line = fmt.Sprintf("%s <%s> (%s)", user.Name, user.Email, user.GID)
	}
	c.UI.Output(line)
	for _, ws := range user.Workspaces {
		c.UI.Output(fmt.Sprintf("  %s\t%s", ws.GID, ws.Name))
	}
	return 0
}
