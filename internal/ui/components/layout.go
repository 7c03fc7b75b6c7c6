package components

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/ctxkeys"
	"github.com/templui/perfdesk/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tab is one dashboard view.
type Tab struct {
	Label string
	Path  string
}

var Tabs = []Tab{
	{Label: "Goal Setting", Path: "/app/goals"},
	{Label: "Progress Tracking", Path: "/app/progress"},
	{Label: "Feedback", Path: "/app/feedback"},
	{Label: "Reporting", Path: "/app/reports"},
}

// RoleLabel renders a role for display, e.g. "Manager".
// Casers carry state, so each call gets its own.
func RoleLabel(r model.Role) string {
	return cases.Title(language.English).String(string(r))
}

func appName(ctx context.Context) string {
	if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
		return cfg.AppName
	}
	return "Performance Management"
}

// Layout is the HTML document shell. Signed-in pages get the tab bar and the
// session box.
func Layout(title string, body ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!DOCTYPE html>")
		if err != nil {
			return err
		}

		name := appName(ctx)
		head := El("head", nil,
			Void("meta", []Attr{A("charset", "utf-8")}),
			Void("meta", []Attr{A("name", "viewport"), A("content", "width=device-width, initial-scale=1")}),
			El("title", nil, Text(title+" · "+name)),
			Void("link", []Attr{A("rel", "stylesheet"), A("href", "/assets/css/app.css")}),
			El("script", []Attr{A("src", "/assets/js/app.js"), A("nonce", templ.GetNonce(ctx)), Flag("defer", true)}),
		)

		page := El("body", []Attr{Class("min-h-screen bg-white text-gray-900")},
			El("div", []Attr{Class("mx-auto max-w-5xl px-4 py-6")},
				El("header", []Attr{Class("flex items-center justify-between mb-4")},
					El("h1", []Attr{Class("text-2xl font-bold")}, Text(name)),
					sessionBox(ctx),
				),
				tabBar(ctx),
				El("main", nil, body...),
			),
		)

		return El("html", []Attr{A("lang", "en")}, head, page).Render(ctx, w)
	})
}

func sessionBox(ctx context.Context) templ.Component {
	sess := ctxkeys.Session(ctx)
	if sess == nil {
		return nil
	}
	return El("div", []Attr{Class("flex items-center gap-3 text-sm")},
		El("span", []Attr{A("data-session-role", string(sess.Role))},
			Text(RoleLabel(sess.Role)+" #"+strconv.FormatInt(sess.UserID, 10)),
		),
		Form("post", "/session/logout", Button("Sign out", ButtonSecondary, "px-3 py-1")),
	)
}

func tabBar(ctx context.Context) templ.Component {
	if ctxkeys.Session(ctx) == nil {
		return nil
	}

	current := ctxkeys.URLPath(ctx)
	links := make([]templ.Component, 0, len(Tabs))
	for _, tab := range Tabs {
		active := strings.HasPrefix(current, tab.Path)
		class := Class("px-4 py-2 text-sm border-b-2 border-transparent text-gray-600 hover:text-gray-900")
		if active {
			class = Class(class.Value, "border-gray-900 text-gray-900 font-medium")
		}
		attrs := []Attr{A("href", tab.Path), class}
		if active {
			attrs = append(attrs, A("aria-current", "page"))
		}
		links = append(links, El("a", attrs, Text(tab.Label)))
	}
	return El("nav", []Attr{Class("flex gap-1 border-b border-gray-200 mb-6")}, links...)
}
