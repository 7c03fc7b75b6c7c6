package model

import (
	"strings"
	"time"
)

// ReminderPrefix marks feedback written by the overdue scan.
const ReminderPrefix = "Automated reminder:"

type Feedback struct {
	ID         int64     `db:"feedback_id" json:"feedback_id"`
	GoalID     int64     `db:"goal_id" json:"goal_id"`
	ManagerID  int64     `db:"manager_id" json:"manager_id"`
	EmployeeID int64     `db:"employee_id" json:"employee_id"`
	Content    string    `db:"content" json:"content"`
	GivenAt    time.Time `db:"given_at" json:"given_at"`
}

func (f *Feedback) IsReminder() bool {
	return strings.HasPrefix(f.Content, ReminderPrefix)
}
