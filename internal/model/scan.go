package model

// ScanOutcome is what the overdue check did while serving the current page.
type ScanOutcome struct {
	RemindedGoalIDs []int64
	Failed          bool
}
