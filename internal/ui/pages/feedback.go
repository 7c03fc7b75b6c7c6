package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
)

type FeedbackProps struct {
	Session    *model.Session
	Goals      []*model.Goal
	Selected   *model.Goal
	Feedback   []*model.Feedback
	LoadFailed bool
	Flash      Flash
}

func Feedback(p FeedbackProps) templ.Component {
	return c.Layout("Feedback",
		c.Heading(2, "Feedback"),
		scanAlerts(),
		p.Flash.render(),
		maybe(p.LoadFailed, c.Alert(c.VariantError, LoadError)),
		feedbackBody(p),
	)
}

func feedbackBody(p FeedbackProps) templ.Component {
	if p.Selected == nil {
		return c.Alert(c.VariantInfo, "No goals available for feedback.")
	}

	return c.Group(
		goalSelector("/app/feedback", "Select a Goal for Feedback", p.Goals, p.Selected),
		maybe(p.Session.IsManager(), c.Group(
			c.Heading(3, "Provide Feedback"),
			c.Paragraph(c.Text("For employee #"+idString(p.Selected.EmployeeID)+". Markdown is supported.")),
			c.Form("post", "/app/goals/"+idString(p.Selected.ID)+"/feedback",
				c.Field("content", "Your Feedback", c.Textarea("content", "content")),
				c.Button("Submit Feedback", c.ButtonPrimary),
			),
		)),
		c.Heading(3, "Feedback on this Goal"),
		c.Table(feedbackHeaders, feedbackRows(p.Feedback), "No feedback yet."),
	)
}
