package workspaces

import (
	"flag"
	"fmt"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagTeams bool
}

func (c *Command) Synopsis() string {
	return "List workspaces"
}

func (c *Command) Help() string {
	return `Usage: asana workspaces [options]

  Lists the workspaces visible to the configured credentials.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("workspaces", flag.ContinueOnError))
	f.BoolVar(&c.flagTeams, "teams", false, "Also list the teams of each organization.")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	workspaces, err := client.ListWorkspaces(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing workspaces: %v", err))
		return 1
	}
	if len(workspaces) == 0 {
		c.UI.Info("no workspaces")
		return 0
	}

	for i := range workspaces {
		ws := &workspaces[i]
		kind := "workspace"
		if ws.IsOrganization {
			kind = "organization"
		}
		c.UI.Output(fmt.Sprintf("%s\t%s\t%s", ws.GID, ws.Name, kind))

		if !c.flagTeams || !ws.IsOrganization {
			continue
		}
		teams, err := client.ListTeams(ctx, ws)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error listing teams of %s: %v", ws.GID, err))
			return 1
		}
		for _, t := range teams {
			c.UI.Output(fmt.Sprintf("  %s\t%s", t.GID, t.Name))
		}
	}
	return 0
}
