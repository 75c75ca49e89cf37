package task

import (
	"github.com/mitchellh/cli"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Create and delete tasks"
}

func (c *Command) Help() string {
	return `Usage: asana task <subcommand> [options] [args]

  This command groups subcommands for working with tasks.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
