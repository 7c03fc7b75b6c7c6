package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/markdown"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
)

var feedbackMarkdown = markdown.NewParser()

// feedbackContent renders manager feedback as Markdown. Raw HTML in the
// content is dropped by the parser.
func feedbackContent(f *model.Feedback) templ.Component {
	html := feedbackMarkdown.ParseString(f.Content)
	class := "prose prose-sm"
	if f.IsReminder() {
		class = "prose prose-sm text-amber-800"
	}
	return c.El("div", []c.Attr{c.Class(class)}, templ.Raw(html))
}
