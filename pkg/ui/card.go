package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// CardProps configures a Card. The header renders when Title or Description
// is set and the footer when Footer components are given.
type CardProps struct {
	Base        `yaml:",inline"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Content     string            `yaml:"content"`
	Footer      []templ.Component `yaml:"-"`
}

func (p CardProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().Class("rounded-xl border bg-card text-card-foreground shadow"))
}

func Card(p CardProps, children ...templ.Component) templ.Component {
	var parts []templ.Component
	if p.Title != "" || p.Description != "" {
		parts = append(parts, CardHeader(p.Title, p.Description))
	}
	body := textOr(p.Content, children)
	if len(body) > 0 {
		parts = append(parts, CardContent(body...))
	}
	if len(p.Footer) > 0 {
		parts = append(parts, CardFooter(p.Footer...))
	}
	return Element("div", p.Attributes(), parts...)
}

func CardHeader(title, description string) templ.Component {
	return Element("div", attrs.New().Class("flex flex-col space-y-1.5 p-6"),
		When(title != "", Element("h3", attrs.New().Class("font-semibold leading-none tracking-tight"), Text(title))),
		When(description != "", Element("p", attrs.New().Class("text-sm text-muted-foreground"), Text(description))),
	)
}

func CardContent(children ...templ.Component) templ.Component {
	return Element("div", attrs.New().Class("p-6 pt-0"), children...)
}

func CardFooter(children ...templ.Component) templ.Component {
	return Element("div", attrs.New().Class("flex items-center p-6 pt-0"), children...)
}
