package asana

import (
	"context"
	"net/http"
	"net/url"
)

// Me returns the user the client is authenticated as.
func (c *Client) Me(ctx context.Context) (*User, error) {
	return getOne[User](ctx, c, http.MethodGet, resourcePath(segUsers, segMe), nil)
}

// ListUsers returns the users of a workspace.
func (c *Client) ListUsers(ctx context.Context, workspaceID string) ([]User, error) {
	if err := requireWorkspaceID(workspaceID); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set(paramWorkspace, workspaceID)
	return getList[User](ctx, c, withQuery(segUsers, q))
}
