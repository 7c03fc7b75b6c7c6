package model

import (
	"time"
)

// Report is the performance history of one employee.
type Report struct {
	EmployeeID  int64        `json:"employee_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Goals       []ReportGoal `json:"goals"`
}

type ReportGoal struct {
	Goal     *Goal       `json:"goal"`
	Tasks    []*Task     `json:"tasks"`
	Feedback []*Feedback `json:"feedback"`
}
