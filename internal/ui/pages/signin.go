package pages

import (
	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/model"
	c "github.com/templui/perfdesk/internal/ui/components"
)

type SignInProps struct {
	Role   model.Role
	UserID int64
	Error  string
}

// SignIn asks for a role and a numeric id. Nothing is verified; the declared
// identity is trusted.
func SignIn(p SignInProps) templ.Component {
	role := p.Role
	if !role.Valid() {
		role = model.RoleManager
	}
	userID := p.UserID
	if userID < 1 {
		userID = 1
		if role == model.RoleEmployee {
			userID = 2
		}
	}

	return c.Layout("Sign in",
		c.Heading(2, "Login/User"),
		maybe(p.Error != "", c.Alert(c.VariantError, p.Error)),
		c.Form("post", "/session",
			c.Field("role", "Select Role", c.Select(c.SelectProps{
				ID:   "role",
				Name: "role",
				Options: []c.Option{
					{Value: string(model.RoleManager), Label: c.RoleLabel(model.RoleManager)},
					{Value: string(model.RoleEmployee), Label: c.RoleLabel(model.RoleEmployee)},
				},
				Selected: string(role),
			})),
			c.Field("user_id", "Enter your ID", c.NumberInput("user_id", "user_id", userID)),
			c.Button("Continue", c.ButtonPrimary),
		),
		c.Alert(c.VariantInfo, "Use Manager ID: 1, Employee ID: 2"),
	)
}

func NotFound() templ.Component {
	return c.Layout("Not found",
		c.Heading(2, "Page not found"),
		c.Paragraph(c.El("a", []c.Attr{c.A("href", "/"), c.Class("underline")}, c.Text("Back to the dashboard"))),
	)
}
