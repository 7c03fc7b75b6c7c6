package components

import "github.com/a-h/templ"

type Variant string

const (
	VariantInfo    Variant = "info"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

var alertClasses = map[Variant]string{
	VariantInfo:    "border-sky-200 bg-sky-50 text-sky-900",
	VariantSuccess: "border-emerald-200 bg-emerald-50 text-emerald-900",
	VariantError:   "border-red-200 bg-red-50 text-red-900",
}

func Alert(variant Variant, message string) templ.Component {
	role := "status"
	if variant == VariantError {
		role = "alert"
	}
	return El("div", []Attr{
		A("role", role),
		A("data-variant", string(variant)),
		Class("rounded-md border px-4 py-3 my-3 text-sm", alertClasses[variant]),
	}, Text(message))
}
