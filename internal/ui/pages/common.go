package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
	"github.com/templui/perfdesk/internal/validation"
)

// LoadError is the one message shown for any failed read or write.
const LoadError = "Something went wrong talking to the database. Please try again."

// Flash carries the outcome of the previous form post.
type Flash struct {
	Notice string
	Error  string
}

func (f Flash) render() templ.Component {
	return c.Group(
		maybe(f.Notice != "", c.Alert(c.VariantSuccess, f.Notice)),
		maybe(f.Error != "", c.Alert(c.VariantError, f.Error)),
	)
}

// scanAlerts reports the overdue check that ran for this page load.
func scanAlerts() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		outcome := ctxkeys.Scan(ctx)
		if outcome == nil {
			return nil
		}

		alerts := make([]templ.Component, 0, len(outcome.RemindedGoalIDs)+1)
		for _, goalID := range outcome.RemindedGoalIDs {
			alerts = append(alerts, c.Alert(c.VariantInfo, "Automated feedback created for goal "+idString(goalID)))
		}
		if outcome.Failed {
			alerts = append(alerts, c.Alert(c.VariantError, LoadError))
		}
		return c.Group(alerts...).Render(ctx, w)
	})
}

func maybe(ok bool, comp templ.Component) templ.Component {
	if !ok {
		return nil
	}
	return comp
}

func id(v int64) templ.Component {
	return c.Text(strconv.FormatInt(v, 10))
}

func idString(v int64) string {
	return strconv.FormatInt(v, 10)
}

var goalHeaders = []string{"goal_id", "employee_id", "manager_id", "description", "due_date", "status", "created_at"}

func goalRow(g *model.Goal) []templ.Component {
	return []templ.Component{
		id(g.ID),
		id(g.EmployeeID),
		id(g.ManagerID),
		c.Text(g.Description),
		c.Text(g.DueDate.Format(validation.DateLayout)),
		c.StatusBadge(g.Status),
		c.Text(g.CreatedAt.Format("2006-01-02 15:04:05")),
	}
}

var taskHeaders = []string{"task_id", "goal_id", "description", "status"}

func taskRows(tasks []*model.Task) [][]templ.Component {
	rows := make([][]templ.Component, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []templ.Component{id(t.ID), id(t.GoalID), c.Text(t.Description), c.StatusBadge(t.Status)})
	}
	return rows
}

var feedbackHeaders = []string{"feedback_id", "goal_id", "manager_id", "employee_id", "content", "given_at"}

func feedbackRows(feedback []*model.Feedback) [][]templ.Component {
	rows := make([][]templ.Component, 0, len(feedback))
	for _, f := range feedback {
		rows = append(rows, []templ.Component{
			id(f.ID),
			id(f.GoalID),
			id(f.ManagerID),
			id(f.EmployeeID),
			feedbackContent(f),
			c.Text(f.GivenAt.Format("2006-01-02 15:04:05")),
		})
	}
	return rows
}

// goalSelector is a GET form choosing a goal by id for the current view.
func goalSelector(action, label string, goals []*model.Goal, selected *model.Goal) templ.Component {
	opts := make([]c.Option, 0, len(goals))
	for _, g := range goals {
		opts = append(opts, c.Option{Value: idString(g.ID), Label: GoalLabel(g)})
	}
	current := ""
	if selected != nil {
		current = idString(selected.ID)
	}
	return c.Form("get", action,
		c.Field("goal", label, c.Select(c.SelectProps{ID: "goal", Name: "goal", Options: opts, Selected: current, AutoSubmit: true})),
		c.Button("Show", c.ButtonSecondary),
	)
}

// GoalLabel names a goal in selectors. Descriptions may repeat, so the id is included.
func GoalLabel(g *model.Goal) string {
	desc := g.Description
	if desc == "" {
		desc = "(no description)"
	}
	return desc + " (#" + idString(g.ID) + ")"
}
