package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Attr is one HTML attribute. A Value of "" with Bool set renders the bare name.
type Attr struct {
	Key   string
	Value string
	Bool  bool
}

func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

func Flag(key string, on bool) Attr {
	if !on {
		return Attr{}
	}
	return Attr{Key: key, Bool: true}
}

// Class merges tailwind classes, later ones winning over conflicting earlier ones.
func Class(classes ...string) Attr {
	return Attr{Key: "class", Value: twmerge.Merge(strings.Join(classes, " "))}
}

// El renders <tag attrs>children</tag>.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeOpenTag(w, tag, attrs)
		if err != nil {
			return err
		}
		for _, c := range children {
			if c == nil {
				continue
			}
			err = c.Render(ctx, w)
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders a self-closing element such as input or meta.
func Void(tag string, attrs []Attr) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeOpenTag(w, tag, attrs)
	})
}

func writeOpenTag(w io.Writer, tag string, attrs []Attr) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.Key)
		if a.Bool {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	_, err := io.WriteString(w, b.String())
	return err
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			err := c.Render(ctx, w)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func Heading(level int, text string) templ.Component {
	tag := "h2"
	class := "text-xl font-semibold mt-6 mb-3"
	switch level {
	case 1:
		tag, class = "h1", "text-2xl font-bold mb-4"
	case 3:
		tag, class = "h3", "text-lg font-semibold mt-4 mb-2"
	case 4:
		tag, class = "h4", "text-base font-semibold mt-3 mb-1"
	}
	return El(tag, []Attr{Class(class)}, Text(text))
}

func Paragraph(children ...templ.Component) templ.Component {
	return El("p", []Attr{Class("my-2")}, children...)
}

func Strong(text string) templ.Component {
	return El("strong", nil, Text(text))
}
