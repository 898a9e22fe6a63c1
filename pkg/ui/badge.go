package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

var badgeRecipe = variants.Recipe{
	Base: "inline-flex items-center rounded-md border px-2.5 py-0.5 text-xs font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-ring focus:ring-offset-2",
	Variants: map[string]map[string]string{
		"variant": {
			string(BadgeDefault):     "border-transparent bg-primary text-primary-foreground shadow hover:bg-primary/80",
			string(BadgeSecondary):   "border-transparent bg-secondary text-secondary-foreground hover:bg-secondary/80",
			string(BadgeDestructive): "border-transparent bg-destructive text-destructive-foreground shadow hover:bg-destructive/80",
			string(BadgeOutline):     "text-foreground",
		},
	},
	Defaults: map[string]string{"variant": string(BadgeDefault)},
}

type BadgeProps struct {
	Base    `yaml:",inline"`
	Variant BadgeVariant `yaml:"variant"`
	Text    string       `yaml:"text"`
}

func (p BadgeProps) Classes() string {
	return badgeRecipe.Classes(variants.Selection{"variant": string(p.Variant)})
}

func (p BadgeProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().Class(p.Classes()))
}

func Badge(p BadgeProps, children ...templ.Component) templ.Component {
	return Element("span", p.Attributes(), textOr(p.Text, children)...)
}
