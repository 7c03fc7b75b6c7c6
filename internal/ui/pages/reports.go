package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
	"github.com/templui/perfdesk/internal/validation"
)

type ReportsProps struct {
	EmployeeID     int64
	Report         *model.Report
	LoadFailed     bool
	ArchiveEnabled bool
	Flash          Flash
}

// Reports is the performance history of one employee.
func Reports(p ReportsProps) templ.Component {
	employee := idString(p.EmployeeID)
	base := "/app/reports/" + employee

	return c.Layout("Reporting",
		c.Heading(2, "Performance History & Reporting"),
		scanAlerts(),
		p.Flash.render(),
		c.Form("get", "/app/reports",
			c.Field("employee", "Enter Employee ID for Report", c.NumberInput("employee", "employee", p.EmployeeID)),
			c.Button("Show Report", c.ButtonSecondary),
		),
		c.Heading(3, "Performance History for Employee ID: "+employee),
		c.El("div", []c.Attr{c.Class("flex gap-2 my-3")},
			c.El("a", []c.Attr{c.A("href", base+"/export"), c.Class("inline-flex rounded-md border border-gray-300 px-4 py-2 text-sm")}, c.Text("Download JSON")),
			maybe(p.ArchiveEnabled, c.Form("post", base+"/archive", c.Button("Archive to storage", c.ButtonSecondary))),
		),
		maybe(p.LoadFailed, c.Alert(c.VariantError, LoadError)),
		reportGoals(p.Report),
	)
}

func reportGoals(report *model.Report) templ.Component {
	if report == nil || len(report.Goals) == 0 {
		return c.Alert(c.VariantInfo, "No performance history found for this employee.")
	}

	sections := make([]templ.Component, 0, len(report.Goals))
	for _, rg := range report.Goals {
		g := rg.Goal
		sections = append(sections, c.El("section", []c.Attr{c.A("id", "goal-"+idString(g.ID)), c.Class("border-b border-gray-200 pb-4 mb-4")},
			c.Heading(4, "Goal ID: "+idString(g.ID)+" - "+g.Description),
			c.Paragraph(
				c.Strong("Status: "), c.StatusBadge(g.Status),
				c.Text(" | "),
				c.Strong("Due Date: "), c.Text(g.DueDate.Format(validation.DateLayout)),
			),
			c.Heading(4, "Tasks"),
			c.Table(taskHeaders, taskRows(rg.Tasks), "No tasks logged for this goal."),
			c.Heading(4, "Feedback"),
			c.Table(feedbackHeaders, feedbackRows(rg.Feedback), "No feedback for this goal."),
		))
	}
	return c.Group(sections...)
}
