package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/templui/perfdesk/internal/ctxkeys"
)

// csrfFieldName matches the field the CSRF middleware reads.
const csrfFieldName = "csrf_token"

// Form renders a form; POST forms carry the request's CSRF token.
func Form(method, action string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fields := children
		if method == "post" {
			csrf := Void("input", []Attr{A("type", "hidden"), A("name", csrfFieldName), A("value", ctxkeys.CSRFToken(ctx))})
			fields = append([]templ.Component{csrf}, children...)
		}
		return El("form", []Attr{
			A("method", method),
			A("action", action),
			Class("space-y-3 my-3 max-w-xl"),
		}, fields...).Render(ctx, w)
	})
}

// Field wraps a control with its label.
func Field(id, label string, control templ.Component) templ.Component {
	return El("div", []Attr{Class("flex flex-col gap-1")},
		El("label", []Attr{A("for", id), Class("text-sm font-medium")}, Text(label)),
		control,
	)
}

const controlClass = "rounded-md border border-gray-300 px-3 py-2 text-sm"

type InputProps struct {
	ID       string
	Name     string
	Type     string
	Value    string
	Min      string
	Required bool
	Class    string
}

func Input(p InputProps) templ.Component {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	attrs := []Attr{
		A("id", p.ID),
		A("name", p.Name),
		A("type", typ),
		A("value", p.Value),
		Flag("required", p.Required),
		Class(controlClass, p.Class),
	}
	if p.Min != "" {
		attrs = append(attrs, A("min", p.Min))
	}
	return Void("input", attrs)
}

func NumberInput(id, name string, value int64) templ.Component {
	return Input(InputProps{ID: id, Name: name, Type: "number", Value: strconv.FormatInt(value, 10), Min: "1", Required: true})
}

func Textarea(id, name string) templ.Component {
	return El("textarea", []Attr{A("id", id), A("name", name), A("rows", "3"), Class(controlClass)})
}

type Option struct {
	Value string
	Label string
}

// SelectProps configures Select. AutoSubmit submits the enclosing form on change.
type SelectProps struct {
	ID         string
	Name       string
	Options    []Option
	Selected   string
	AutoSubmit bool
}

func Select(p SelectProps) templ.Component {
	opts := make([]templ.Component, 0, len(p.Options))
	for _, o := range p.Options {
		opts = append(opts, El("option", []Attr{A("value", o.Value), Flag("selected", o.Value == p.Selected)}, Text(o.Label)))
	}
	attrs := []Attr{A("id", p.ID), A("name", p.Name), Class(controlClass)}
	if p.AutoSubmit {
		attrs = append(attrs, A("data-autosubmit", "true"))
	}
	return El("select", attrs, opts...)
}

// StatusOptions turns an enum list into select options.
func StatusOptions(statuses []string) []Option {
	opts := make([]Option, 0, len(statuses))
	for _, s := range statuses {
		opts = append(opts, Option{Value: s, Label: s})
	}
	return opts
}

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
)

var buttonClasses = map[ButtonVariant]string{
	ButtonPrimary:   "bg-gray-900 text-white hover:bg-gray-700",
	ButtonSecondary: "bg-white text-gray-900 border border-gray-300 hover:bg-gray-50",
	ButtonDanger:    "bg-red-600 text-white hover:bg-red-500",
}

func Button(label string, variant ButtonVariant, class ...string) templ.Component {
	classes := append([]string{"inline-flex items-center rounded-md px-4 py-2 text-sm font-medium", buttonClasses[variant]}, class...)
	return El("button", []Attr{A("type", "submit"), Class(classes...)}, Text(label))
}
