package asana

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// required rejects empty and whitespace-only identifiers and names.
func required(field, value, message string) error {
	err := validation.Validate(strings.TrimSpace(value), validation.Required.Error(message))
	if err != nil {
		return &ValidationError{Field: field, Message: err.Error()}
	}
	return nil
}

func notNil(field string, value any, message string) error {
	if err := validation.Validate(value, validation.NotNil.Error(message)); err != nil {
		return &ValidationError{Field: field, Message: err.Error()}
	}
	return nil
}

func requireTaskID(taskID string) error {
	return required("taskID", taskID, "Task ID cannot be empty")
}

func validateCreateTask(req *TaskCreateRequest) error {
	if err := notNil("request", req, "Task create request cannot be nil"); err != nil {
		return err
	}
	if err := required("name", req.Name, "Task name cannot be empty"); err != nil {
		return err
	}
	return required("workspace", req.WorkspaceID, "Workspace ID cannot be empty")
}
