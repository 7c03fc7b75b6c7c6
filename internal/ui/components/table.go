package components

import "github.com/a-h/templ"

// Table renders a data table; with no rows it shows empty as an info alert instead.
func Table(headers []string, rows [][]templ.Component, empty string) templ.Component {
	if len(rows) == 0 {
		return Alert(VariantInfo, empty)
	}

	head := make([]templ.Component, 0, len(headers))
	for _, h := range headers {
		head = append(head, El("th", []Attr{A("scope", "col"), Class("px-3 py-2 text-left font-medium text-gray-600")}, Text(h)))
	}

	body := make([]templ.Component, 0, len(rows))
	for _, row := range rows {
		cells := make([]templ.Component, 0, len(row))
		for _, cell := range row {
			cells = append(cells, El("td", []Attr{Class("px-3 py-2 align-top")}, cell))
		}
		body = append(body, El("tr", []Attr{Class("border-t border-gray-100")}, cells...))
	}

	return El("div", []Attr{Class("overflow-x-auto rounded-md border border-gray-200 my-3")},
		El("table", []Attr{Class("min-w-full text-sm")},
			El("thead", []Attr{Class("bg-gray-50")}, El("tr", nil, head...)),
			El("tbody", nil, body...),
		),
	)
}
