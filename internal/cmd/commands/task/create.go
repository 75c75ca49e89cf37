package task

import (
	"flag"
	"fmt"
	"time"

	"github.com/araddon/dateparse"

	"github.com/ArnautVasile/asana-go/internal/cmd/base"
	"github.com/ArnautVasile/asana-go/pkg/asana"
)

type CreateCommand struct {
	*base.Command

	flagWorkspace string
	flagName      string
	flagNotes     string
	flagAssignee  string
	flagDue       string
	flagProjects  base.StringsVar
	flagDependsOn base.StringsVar
}

func (c *CreateCommand) Synopsis() string {
	return "Create a task"
}

func (c *CreateCommand) Help() string {
	return `Usage: asana task create -workspace <gid> -name <name> [options]

  Creates a task and prints its gid. -due accepts most common date formats,
  for example 2024-12-31, 12/31/2024 or "Dec 31, 2024".` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("task create", flag.ContinueOnError))

	f.StringVar(&c.flagWorkspace, "workspace", "", "(Required) Workspace gid.")
	f.StringVar(&c.flagName, "name", "", "(Required) Task name.")
	f.StringVar(&c.flagNotes, "notes", "", "Task description.")
	f.StringVar(&c.flagAssignee, "assignee", "", `Assignee gid, email or "me".`)
	f.StringVar(&c.flagDue, "due", "", "Due date.")
	f.Var(&c.flagProjects, "project", "Project gid. May be repeated.")
	f.Var(&c.flagDependsOn, "depends-on", "Gid of a task this one depends on. May be repeated.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	req := &asana.TaskCreateRequest{
		Name:         c.flagName,
		Notes:        c.flagNotes,
		WorkspaceID:  c.flagWorkspace,
		Assignee:     c.flagAssignee,
		Projects:     c.flagProjects,
		Dependencies: c.flagDependsOn,
	}
	if c.flagDue != "" {
		due, err := ParseDue(c.flagDue)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		req.DueOn = &due
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, stop := c.Context()
	defer stop()

	t, err := client.CreateTask(ctx, req)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating task: %v", err))
		return 1
	}
	c.Log.Debug("created task", "gid", t.GID, "name", t.Name)
	c.UI.Output(t.GID)
	return 0
}

// ParseDue reads a free-form date in the local time zone.
func ParseDue(s string) (asana.Date, error) {
	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return asana.Date{}, fmt.Errorf("invalid due date %q: %w", s, err)
	}
	return asana.DateOf(t), nil
}
