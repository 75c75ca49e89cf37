package asana

import (
	"context"
	"net/http"
)

func (c *Client) ListStories(ctx context.Context, taskID string) ([]Story, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	return getList[Story](ctx, c, resourcePath(segTasks, taskID, segStories))
}

// AddComment posts text as a comment story on the task.
func (c *Client) AddComment(ctx context.Context, taskID, text string) (*Story, error) {
	if err := requireTaskID(taskID); err != nil {
		return nil, err
	}
	if err := required("text", text, "Comment text cannot be empty"); err != nil {
		return nil, err
	}
	body := struct {
		Text string `json:"text"`
	}{Text: text}
	return getOne[Story](ctx, c, http.MethodPost, resourcePath(segTasks, taskID, segStories), body)
}
