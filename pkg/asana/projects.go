package asana

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]Project, error) {
	if err := requireWorkspaceID(workspaceID); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set(paramWorkspace, workspaceID)
	return getList[Project](ctx, c, withQuery(segProjects, q))
}

func (c *Client) ListTeamProjects(ctx context.Context, team *Team) ([]Project, error) {
	if err := notNil("team", team, "Team cannot be nil"); err != nil {
		return nil, err
	}
	if err := required("teamID", team.GID, "Team ID cannot be empty"); err != nil {
		return nil, err
	}
	return getList[Project](ctx, c, resourcePath(segTeams, team.GID, segProjects))
}

func (c *Client) ListProjectTasks(ctx context.Context, project *Project) ([]Task, error) {
	if err := notNil("project", project, "Project cannot be nil"); err != nil {
		return nil, err
	}
	if err := requireProjectID(project.GID); err != nil {
		return nil, err
	}
	return getList[Task](ctx, c, resourcePath(segProjects, project.GID, segTasks))
}

func (c *Client) ListSections(ctx context.Context, projectID string) ([]Section, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	return getList[Section](ctx, c, resourcePath(segProjects, projectID, segSections))
}

// ProjectEvents returns the events since syncToken. Pass an empty token to
// start a stream; the server then answers 412 and the returned *APIError
// carries the fresh token in Sync.
func (c *Client) ProjectEvents(ctx context.Context, projectID, syncToken string) (*Events, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	q := url.Values{}
	if syncToken != "" {
		q.Set(paramSync, syncToken)
	}
	env, err := c.do(ctx, http.MethodGet, withQuery(resourcePath(segProjects, projectID, segEvents), q), nil)
	if err != nil {
		return nil, err
	}
	events, err := list[Event](env)
	if err != nil {
		return nil, err
	}
	return &Events{Data: events, Sync: env.Sync}, nil
}

func requireProjectID(id string) error {
	return required("projectID", id, "Project ID cannot be empty")
}
