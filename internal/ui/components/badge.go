package components

import "github.com/a-h/templ"

var statusClasses = map[string]string{
	"Draft":       "bg-gray-100 text-gray-700",
	"In Progress": "bg-sky-100 text-sky-800",
	"Completed":   "bg-emerald-100 text-emerald-800",
	"Cancelled":   "bg-red-100 text-red-700",
	"Pending":     "bg-amber-100 text-amber-800",
	"Approved":    "bg-emerald-100 text-emerald-800",
	"Rejected":    "bg-red-100 text-red-700",
}

// StatusBadge renders a goal or task status as a coloured pill.
func StatusBadge(status string) templ.Component {
	return El("span", []Attr{
		Class("inline-flex rounded-full px-2 py-0.5 text-xs font-medium bg-gray-100 text-gray-700", statusClasses[status]),
	}, Text(status))
}
