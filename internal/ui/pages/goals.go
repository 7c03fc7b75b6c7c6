package pages

import (
	"time"

	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
	"github.com/templui/perfdesk/internal/validation"
)

type GoalsProps struct {
	Session    *model.Session
	Goals      []*model.Goal
	LoadFailed bool
	Flash      Flash
	Today      time.Time
}

// Goals is the Goal Setting view: the manager's goal form and the caller's goals.
func Goals(p GoalsProps) templ.Component {
	return c.Layout("Goal Setting",
		c.Heading(2, "Goal & Task Setting"),
		scanAlerts(),
		p.Flash.render(),
		maybe(p.Session.IsManager(), newGoalForm(p.Today)),
		c.Heading(3, "Your Goals"),
		maybe(p.LoadFailed, c.Alert(c.VariantError, LoadError)),
		goalsTable(p.Session, p.Goals),
	)
}

func newGoalForm(today time.Time) templ.Component {
	return c.Group(
		c.Heading(3, "Set a New Goal"),
		c.Form("post", "/app/goals",
			c.Field("employee_id", "Employee ID", c.NumberInput("employee_id", "employee_id", 2)),
			c.Field("description", "Goal Description", c.Textarea("description", "description")),
			c.Field("due_date", "Due Date", c.Input(c.InputProps{
				ID:       "due_date",
				Name:     "due_date",
				Type:     "date",
				Value:    today.Format(validation.DateLayout),
				Min:      today.Format(validation.DateLayout),
				Required: true,
			})),
			c.Button("Set Goal", c.ButtonPrimary),
		),
	)
}

func goalsTable(sess *model.Session, goals []*model.Goal) templ.Component {
	headers := goalHeaders
	if sess.IsManager() {
		headers = append(append([]string{}, goalHeaders...), "")
	}

	rows := make([][]templ.Component, 0, len(goals))
	for _, g := range goals {
		row := goalRow(g)
		if sess.IsManager() {
			row = append(row, c.Form("post", "/app/goals/"+idString(g.ID)+"/delete",
				c.Button("Delete", c.ButtonDanger, "px-2 py-1 text-xs"),
			))
		}
		rows = append(rows, row)
	}
	return c.Table(headers, rows, "No goals found.")
}
