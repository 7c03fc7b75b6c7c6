package model

const (
	TaskStatusPending   = "Pending"
	TaskStatusApproved  = "Approved"
	TaskStatusRejected  = "Rejected"
	TaskStatusCompleted = "Completed"
)

var TaskStatuses = []string{
	TaskStatusPending,
	TaskStatusApproved,
	TaskStatusRejected,
	TaskStatusCompleted,
}

type Task struct {
	ID          int64  `db:"task_id" json:"task_id"`
	GoalID      int64  `db:"goal_id" json:"goal_id"`
	Description string `db:"description" json:"description"`
	Status      string `db:"status" json:"status"`
}
