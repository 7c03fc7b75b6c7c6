package validation

import (
	"errors"
	"slices"

	"github.com/templui/perfdesk/internal/model"
)

var ErrInvalidStatus = errors.New("invalid status")

// ValidateGoalStatus accepts exactly the goal status enum values
func ValidateGoalStatus(status string) error {
	if !slices.Contains(model.GoalStatuses, status) {
		return ErrInvalidStatus
	}
	return nil
}

// ValidateTaskStatus accepts exactly the task status enum values
func ValidateTaskStatus(status string) error {
	if !slices.Contains(model.TaskStatuses, status) {
		return ErrInvalidStatus
	}
	return nil
}
