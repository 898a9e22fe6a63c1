package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

type AlertVariant string

const (
	AlertDefault     AlertVariant = "default"
	AlertDestructive AlertVariant = "destructive"
)

var alertRecipe = variants.Recipe{
	Base: "relative w-full rounded-lg border px-4 py-3 text-sm [&>svg+div]:translate-y-[-3px] [&>svg]:absolute [&>svg]:left-4 [&>svg]:top-4 [&>svg]:text-foreground [&>svg~*]:pl-7",
	Variants: map[string]map[string]string{
		"variant": {
			string(AlertDefault):     "bg-background text-foreground",
			string(AlertDestructive): "border-destructive/50 text-destructive dark:border-destructive [&>svg]:text-destructive",
		},
	},
	Defaults: map[string]string{"variant": string(AlertDefault)},
}

// AlertProps configures an Alert. Title and Description are optional when
// children are supplied.
type AlertProps struct {
	Base        `yaml:",inline"`
	Variant     AlertVariant `yaml:"variant"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Icon        string       `yaml:"icon"`
}

func (p AlertProps) Classes() string {
	return alertRecipe.Classes(variants.Selection{"variant": string(p.Variant)})
}

func (p AlertProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().Class(p.Classes()).Role("alert"))
}

func Alert(p AlertProps, children ...templ.Component) templ.Component {
	parts := []templ.Component{}
	if p.Icon != "" {
		parts = append(parts, Icon(p.Icon, ""))
	}
	if p.Title != "" {
		parts = append(parts, Element("h5", attrs.New().Class("mb-1 font-medium leading-none tracking-tight"), Text(p.Title)))
	}
	if p.Description != "" {
		parts = append(parts, Element("div", attrs.New().Class("text-sm [&_p]:leading-relaxed"), Text(p.Description)))
	}
	parts = append(parts, children...)
	return Element("div", p.Attributes(), parts...)
}
