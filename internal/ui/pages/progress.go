package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
)

type ProgressProps struct {
	Session    *model.Session
	Goals      []*model.Goal
	Selected   *model.Goal
	Tasks      []*model.Task
	LoadFailed bool
	Flash      Flash
}

// Progress is the Progress Tracking view for one selected goal.
func Progress(p ProgressProps) templ.Component {
	return c.Layout("Progress Tracking",
		c.Heading(2, "Progress Tracking"),
		scanAlerts(),
		p.Flash.render(),
		maybe(p.LoadFailed, c.Alert(c.VariantError, LoadError)),
		progressBody(p),
	)
}

func progressBody(p ProgressProps) templ.Component {
	if p.Selected == nil {
		return c.Alert(c.VariantInfo, "No goals available for tracking.")
	}

	goalPath := "/app/goals/" + idString(p.Selected.ID)
	return c.Group(
		goalSelector("/app/progress", "Select a Goal to Track", p.Goals, p.Selected),
		c.Paragraph(c.Strong("Status: "), c.StatusBadge(p.Selected.Status)),
		c.Heading(3, "Log a Task"),
		c.Form("post", goalPath+"/tasks",
			c.Field("task_description", "Task Description", c.Input(c.InputProps{ID: "task_description", Name: "description"})),
			c.Button("Add Task", c.ButtonPrimary),
		),
		c.Heading(3, "Tasks for this Goal"),
		taskTable(p.Session, p.Selected, p.Tasks),
		maybe(p.Session.IsManager(), goalStatusForm(p.Selected)),
	)
}

// taskTable adds a status form per row for managers; the row's task id is
// the selection.
func taskTable(sess *model.Session, goal *model.Goal, tasks []*model.Task) templ.Component {
	rows := taskRows(tasks)
	if !sess.IsManager() {
		return c.Table(taskHeaders, rows, "No tasks logged for this goal.")
	}

	for i, t := range tasks {
		rows[i] = append(rows[i], c.Form("post", "/app/tasks/"+idString(t.ID)+"/status",
			c.Void("input", []c.Attr{c.A("type", "hidden"), c.A("name", "goal"), c.A("value", idString(goal.ID))}),
			c.El("div", []c.Attr{c.Class("flex gap-2")},
				c.Select(c.SelectProps{
					ID:       "task_status_" + idString(t.ID),
					Name:     "status",
					Options:  c.StatusOptions(model.TaskStatuses),
					Selected: t.Status,
				}),
				c.Button("Update Task Status", c.ButtonSecondary, "px-2 py-1 text-xs"),
			),
		))
	}
	headers := append(append([]string{}, taskHeaders...), "New Task Status")
	return c.Table(headers, rows, "No tasks logged for this goal.")
}

func goalStatusForm(goal *model.Goal) templ.Component {
	return c.Group(
		c.Heading(3, "Update Goal Status"),
		c.Form("post", "/app/goals/"+idString(goal.ID)+"/status",
			c.Field("goal_status", "New Goal Status", c.Select(c.SelectProps{
				ID:       "goal_status",
				Name:     "status",
				Options:  c.StatusOptions(model.GoalStatuses),
				Selected: goal.Status,
			})),
			c.Button("Update Goal Status", c.ButtonPrimary),
		),
	)
}
