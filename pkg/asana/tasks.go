package asana

import (
	"context"
	"net/http"
)

func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	return getOne[Task](ctx, c, http.MethodGet, resourcePath(segTasks, taskID), nil)
}

// CreateTask requires req.Name and req.WorkspaceID.
func (c *Client) CreateTask(ctx context.Context, req *TaskCreateRequest) (*Task, error) {
	if err := validateCreateTask(req); err != nil {
		return nil, err
	}
	return getOne[Task](ctx, c, http.MethodPost, segTasks, req)
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, req *TaskUpdateRequest) (*Task, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	if err := notNil("request", req, "Task update request cannot be nil"); err != nil {
		return nil, err
	}
	return getOne[Task](ctx, c, http.MethodPut, resourcePath(segTasks, taskID), req)
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if err := requireTaskID(taskID); err != nil {
		return err
	}
	return c.exec(ctx, http.MethodDelete, resourcePath(segTasks, taskID), nil)
}

func (c *Client) ListSubtasks(ctx context.Context, taskID string) ([]Task, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	return getList[Task](ctx, c, resourcePath(segTasks, taskID, segSubtasks))
}

// DuplicateTask copies a task. A nil req keeps the original name and copies
// neither subtasks nor dependencies.
func (c *Client) DuplicateTask(ctx context.Context, taskID string, req *DuplicateTaskRequest) (*Task, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	if req == nil {
		req = &DuplicateTaskRequest{}
	}
	return getOne[Task](ctx, c, http.MethodPost, resourcePath(segTasks, taskID, segDuplicate), req)
}

func (c *Client) MoveTaskToSection(ctx context.Context, taskID string, req *MoveTaskRequest) error {
	if err := requireTaskID(taskID); err != nil {
		return err
	}
	if err := notNil("request", req, "Move request cannot be nil"); err != nil {
		return err
	}
	if err := required("sectionID", req.SectionID, "Section ID cannot be empty"); err != nil {
		return err
	}
	body := struct {
		Task string `json:"task"`
		*MoveTaskRequest
	}{Task: taskID, MoveTaskRequest: req}
	return c.exec(ctx, http.MethodPost, resourcePath(segSections, req.SectionID, segAddTask), body)
}

func (c *Client) AddLike(ctx context.Context, taskID string) error {
	if err := requireTaskID(taskID); err != nil {
		return err
	}
	return c.exec(ctx, http.MethodPost, resourcePath(segTasks, taskID, segAddLike), struct{}{})
}

func (c *Client) RemoveLike(ctx context.Context, taskID string) error {
	if err := requireTaskID(taskID); err != nil {
		return err
	}
	return c.exec(ctx, http.MethodPost, resourcePath(segTasks, taskID, segRemoveLike), struct{}{})
}
