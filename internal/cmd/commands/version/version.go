package version

import (
	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: asana version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
