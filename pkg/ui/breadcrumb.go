package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

type Crumb struct {
	Label string `yaml:"label" validate:"required"`
	Href  string `yaml:"href"`
}

// BreadcrumbProps configures a breadcrumb trail. The last crumb is the current
// page and renders as text with aria-current="page". MaxItems collapses the
// middle of long trails into an ellipsis, keeping the first crumb and the
// last MaxItems-1.
type BreadcrumbProps struct {
	Base      `yaml:",inline"`
	Items     []Crumb `yaml:"items" validate:"dive"`
	Separator string  `yaml:"separator"`
	MaxItems  int     `yaml:"max_items"`
}

// Visible returns the crumbs to render and the index after which an ellipsis
// is inserted, or -1 when nothing is collapsed.
func (p BreadcrumbProps) Visible() ([]Crumb, int) {
	n := len(p.Items)
	if p.MaxItems < 2 || n <= p.MaxItems {
		return p.Items, -1
	}
	out := make([]Crumb, 0, p.MaxItems)
	out = append(out, p.Items[0])
	out = append(out, p.Items[n-(p.MaxItems-1):]...)
	return out, 0
}

func (p BreadcrumbProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().ARIA("label", "breadcrumb"))
}

func (p BreadcrumbProps) separator() templ.Component {
	icon := "chevron-right"
	if p.Separator == "slash" {
		icon = "slash"
	}
	return Element("li", attrs.New().
		Class("[&>svg]:w-3.5 [&>svg]:h-3.5").
		Role("presentation").
		ARIA("hidden", true),
		Icon(icon, ""))
}

func Breadcrumb(p BreadcrumbProps) templ.Component {
	crumbs, collapsedAfter := p.Visible()
	var parts []templ.Component
	for i, c := range crumbs {
		if i > 0 {
			parts = append(parts, p.separator())
		}
		last := i == len(crumbs)-1
		var inner templ.Component
		switch {
		case last:
			inner = Element("span", attrs.New().
				Class("font-normal text-foreground").
				Role("link").
				ARIA("disabled", true).
				ARIA("current", "page"),
				Text(c.Label))
		case c.Href != "":
			inner = Element("a", attrs.New().
				Class("transition-colors hover:text-foreground").
				Set("href", c.Href),
				Text(c.Label))
		default:
			inner = Element("span", attrs.New(), Text(c.Label))
		}
		parts = append(parts, Element("li", attrs.New().Class("inline-flex items-center gap-1.5"), inner))

		if i == collapsedAfter {
			parts = append(parts, p.separator(),
				Element("li", attrs.New().Class("inline-flex items-center gap-1.5"),
					Element("span", attrs.New().
						Class("flex h-9 w-9 items-center justify-center").
						Role("presentation").
						ARIA("hidden", true),
						Icon("more-horizontal", "h-4 w-4"),
						Element("span", attrs.New().Class("sr-only"), Text("More")))))
		}
	}
	return Element("nav", p.Attributes(),
		Element("ol", attrs.New().Class("flex flex-wrap items-center gap-1.5 break-words text-sm text-muted-foreground sm:gap-2.5"), parts...))
}
