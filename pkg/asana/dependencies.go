package asana

import (
	"context"
	"net/http"
)

type dependenciesBody struct {
	Dependencies []string `json:"dependencies"`
}

// ListDependencies returns the tasks taskID depends on.
func (c *Client) ListDependencies(ctx context.Context, taskID string) ([]Task, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	return getList[Task](ctx, c, resourcePath(segTasks, taskID, segDependencies))
}

// AddDependency marks taskID as blocked by dependencyTaskID.
func (c *Client) AddDependency(ctx context.Context, taskID, dependencyTaskID string) error {
	if err := validateDependency(taskID, dependencyTaskID); err != nil {
		return err
	}
	return c.exec(ctx, http.MethodPost, resourcePath(segTasks, taskID, segAddDependencies),
		dependenciesBody{Dependencies: []string{dependencyTaskID}})
}

func (c *Client) RemoveDependency(ctx context.Context, taskID, dependencyTaskID string) error {
	if err := validateDependency(taskID, dependencyTaskID); err != nil {
		return err
	}
	return c.exec(ctx, http.MethodPost, resourcePath(segTasks, taskID, segRemoveDependencies),
		dependenciesBody{Dependencies: []string{dependencyTaskID}})
}

func validateDependency(taskID, dependencyTaskID string) error {
	if err := requireTaskID(taskID); err != nil {
		return err
	}
	return required("dependencyTaskID", dependencyTaskID, "Dependency task ID cannot be empty")
}
