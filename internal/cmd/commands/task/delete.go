package task

import (
	"fmt"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/pkg/asana"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a task"
}

func (c *DeleteCommand) Help() string {
	return `Usage: asana task delete <task-gid>

  Deletes the task.`
}

func (c *DeleteCommand) Run(args []string) int {
	if len(args) != 1 {
		c.UI.Error("expected exactly one task gid")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	if err := client.DeleteTask(ctx, args[0]); err != nil {
		if asana.IsNotFound(err) {
			c.UI.Error(fmt.Sprintf("task %s not found", args[0]))
			return 1
		}
		c.UI.Error(fmt.Sprintf("error deleting task: %v", err))
		return 1
	}
	c.UI.Info(fmt.Sprintf("deleted task %s", args[0]))
	return 0
}
