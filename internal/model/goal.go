package model

import (
	"time"
)

const (
	GoalStatusDraft      = "Draft"
	GoalStatusInProgress = "In Progress"
	GoalStatusCompleted  = "Completed"
	GoalStatusCancelled  = "Cancelled"
)

// GoalStatuses lists goal statuses in display order.
var GoalStatuses = []string{
	GoalStatusDraft,
	GoalStatusInProgress,
	GoalStatusCompleted,
	GoalStatusCancelled,
}

type Goal struct {
	ID          int64     `db:"goal_id" json:"goal_id"`
	EmployeeID  int64     `db:"employee_id" json:"employee_id"`
	ManagerID   int64     `db:"manager_id" json:"manager_id"`
	Description string    `db:"description" json:"description"`
	DueDate     time.Time `db:"due_date" json:"due_date"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// StartOfDay truncates t to midnight UTC, the granularity due dates are stored at.
func StartOfDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
