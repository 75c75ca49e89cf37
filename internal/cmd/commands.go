package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/internal/cmd/commands/auth"
	"github.com/ArnautVasile/asana-go/internal/cmd/commands/me"
	"github.com/ArnautVasile/asana-go/internal/cmd/commands/snapshot"
	"github.com/ArnautVasile/asana-go/internal/cmd/commands/task"
	"github.com/ArnautVasile/asana-go/internal/cmd/commands/version"
	"github.com/ArnautVasile/asana-go/internal/cmd/commands/workspaces"
	"github.com/ArnautVasile/asana-go/internal/config"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui, cfg *config.Config) {
	b := base.New(log, ui, cfg)

	Commands = map[string]cli.CommandFactory{
		"me": func() (cli.Command, error) {
			return &me.Command{Command: b}, nil
		},
		"workspaces": func() (cli.Command, error) {
			return &workspaces.Command{Command: b}, nil
		},
		"task": func() (cli.Command, error) {
			return &task.Command{Command: b}, nil
		},
		"task create": func() (cli.Command, error) {
			return &task.CreateCommand{Command: b}, nil
		},
		"task delete": func() (cli.Command, error) {
			return &task.DeleteCommand{Command: b}, nil
		},
		"snapshot": func() (cli.Command, error) {
			return &snapshot.Command{Command: b}, nil
		},
		"oauth": func() (cli.Command, error) {
			return &auth.Command{Command: b}, nil
		},
		"oauth login": func() (cli.Command, error) {
			return &auth.LoginCommand{Command: b}, nil
		},
		"oauth refresh": func() (cli.Command, error) {
			return &auth.RefreshCommand{Command: b}, nil
		},
		"oauth revoke": func() (cli.Command, error) {
			return &auth.RevokeCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
