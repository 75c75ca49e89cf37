package asana

import "context"

func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	return getList[Workspace](ctx, c, segWorkspaces)
}

func (c *Client) ListTeams(ctx context.Context, ws *Workspace) ([]Team, error) {
	if err := notNil("workspace", ws, "Workspace cannot be nil"); err != nil {
		return nil, err
	}
	if err := requireWorkspaceID(ws.GID); err != nil {
		return nil, err
	}
	return getList[Team](ctx, c, resourcePath(segOrganizations, ws.GID, segTeams))
}

func (c *Client) ListTags(ctx context.Context, workspaceID string) ([]Tag, error) {
	if err := requireWorkspaceID(workspaceID); err != nil {
		return nil, err
	}
	return getList[Tag](ctx, c, resourcePath(segWorkspaces, workspaceID, segTags))
}

func (c *Client) ListCustomFields(ctx context.Context, workspaceID string) ([]CustomField, error) {
	if err := requireWorkspaceID(workspaceID); err != nil {
		return nil, err
	}
	return getList[CustomField](ctx, c, resourcePath(segWorkspaces, workspaceID, segCustomFields))
}

func requireWorkspaceID(id string) error {
	return required("workspaceID", id, "Workspace ID cannot be empty")
}
