package pages

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/model"
)

var (
	manager  = &model.Session{Role: model.RoleManager, UserID: 1}
	employee = &model.Session{Role: model.RoleEmployee, UserID: 2}
	shipV1   = &model.Goal{
		ID:          7,
		EmployeeID:  2,
		ManagerID:   1,
		Description: "Ship v1",
		DueDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      model.GoalStatusDraft,
		CreatedAt:   time.Date(2023, 12, 1, 9, 30, 0, 0, time.UTC),
	}
)

func render(t *testing.T, sess *model.Session, c templ.Component) string {
	t.Helper()
	ctx := ctxkeys.WithSession(context.Background(), sess)
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestGoals_ManagerSeesForm(t *testing.T) {
	out := render(t, manager, Goals(GoalsProps{
		Session: manager,
		Goals:   []*model.Goal{shipV1},
		Today:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Flash:   Flash{Notice: "Goal set successfully!"},
	}))

	assert.Contains(t, out, "Set a New Goal")
	assert.Contains(t, out, `min="2025-01-01"`)
	assert.Contains(t, out, "Ship v1")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "Goal set successfully!")
	assert.Contains(t, out, `action="/app/goals/7/delete"`)
}

func TestGoals_EmployeeHasNoForm(t *testing.T) {
	out := render(t, employee, Goals(GoalsProps{Session: employee}))

	assert.NotContains(t, out, "Set a New Goal")
	assert.Contains(t, out, "No goals found.")
}

func TestGoals_LoadFailed(t *testing.T) {
	out := render(t, employee, Goals(GoalsProps{Session: employee, LoadFailed: true}))

	assert.Contains(t, out, LoadError)
	assert.Contains(t, out, "No goals found.")
}

func TestPages_ShowOverdueScanOutcome(t *testing.T) {
	ctx := ctxkeys.WithSession(context.Background(), manager)
	ctx = ctxkeys.WithScan(ctx, &model.ScanOutcome{RemindedGoalIDs: []int64{7, 9}, Failed: true})

	views := map[string]templ.Component{
		"goals":    Goals(GoalsProps{Session: manager}),
		"progress": Progress(ProgressProps{Session: manager}),
		"feedback": Feedback(FeedbackProps{Session: manager}),
		"reports":  Reports(ReportsProps{EmployeeID: 2}),
	}
	for name, page := range views {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, page.Render(ctx, &buf))
			out := buf.String()

			assert.Contains(t, out, "Automated feedback created for goal 7")
			assert.Contains(t, out, "Automated feedback created for goal 9")
			assert.Contains(t, out, LoadError)
		})
	}
}

func TestPages_NoScanOutcomeNoAlert(t *testing.T) {
	out := render(t, manager, Goals(GoalsProps{Session: manager}))

	assert.NotContains(t, out, "Automated feedback created")
	assert.NotContains(t, out, LoadError)
}

func TestProgress(t *testing.T) {
	tasks := []*model.Task{{ID: 3, GoalID: 7, Description: "cut release", Status: model.TaskStatusPending}}

	out := render(t, manager, Progress(ProgressProps{Session: manager, Goals: []*model.Goal{shipV1}, Selected: shipV1, Tasks: tasks}))
	assert.Contains(t, out, `<option value="7" selected>Ship v1 (#7)</option>`)
	assert.Contains(t, out, `action="/app/goals/7/tasks"`)
	assert.Contains(t, out, `action="/app/tasks/3/status"`)
	assert.Contains(t, out, `action="/app/goals/7/status"`)

	out = render(t, employee, Progress(ProgressProps{Session: employee, Goals: []*model.Goal{shipV1}, Selected: shipV1, Tasks: tasks}))
	assert.Contains(t, out, "Log a Task")
	assert.NotContains(t, out, "/status")

	out = render(t, employee, Progress(ProgressProps{Session: employee}))
	assert.Contains(t, out, "No goals available for tracking.")
}

func TestFeedback_RendersMarkdownSafely(t *testing.T) {
	fb := []*model.Feedback{
		{ID: 1, GoalID: 7, ManagerID: 1, EmployeeID: 2, Content: "Great **progress** <script>x()</script>"},
		{ID: 2, GoalID: 7, ManagerID: 1, EmployeeID: 2, Content: "Automated reminder: This goal 'Ship v1' is past its due date."},
	}

	out := render(t, manager, Feedback(FeedbackProps{Session: manager, Goals: []*model.Goal{shipV1}, Selected: shipV1, Feedback: fb}))
	assert.Contains(t, out, "<strong>progress</strong>")
	assert.NotContains(t, out, "<script>x()")
	assert.Contains(t, out, "text-amber-800")
	assert.Contains(t, out, "Provide Feedback")

	out = render(t, employee, Feedback(FeedbackProps{Session: employee, Goals: []*model.Goal{shipV1}, Selected: shipV1}))
	assert.NotContains(t, out, "Provide Feedback")
	assert.Contains(t, out, "No feedback yet.")
}

func TestReports(t *testing.T) {
	report := &model.Report{
		EmployeeID: 2,
		Goals:      []model.ReportGoal{{Goal: shipV1}},
	}

	out := render(t, employee, Reports(ReportsProps{EmployeeID: 2, Report: report}))
	assert.Contains(t, out, "Performance History for Employee ID: 2")
	assert.Contains(t, out, "Goal ID: 7 - Ship v1")
	assert.Contains(t, out, "No tasks logged for this goal.")
	assert.Contains(t, out, "No feedback for this goal.")
	assert.Contains(t, out, `href="/app/reports/2/export"`)
	assert.NotContains(t, out, "/archive")

	out = render(t, employee, Reports(ReportsProps{EmployeeID: 5, ArchiveEnabled: true}))
	assert.Contains(t, out, "No performance history found for this employee.")
	assert.Contains(t, out, `action="/app/reports/5/archive"`)
}

func TestSignIn_Defaults(t *testing.T) {
	out := render(t, nil, SignIn(SignInProps{Role: model.RoleEmployee}))
	assert.Contains(t, out, `<option value="employee" selected>Employee</option>`)
	assert.Contains(t, out, `name="user_id" type="number" value="2"`)
}
