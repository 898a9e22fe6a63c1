package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

type RadioOption struct {
	Value    string `yaml:"value" validate:"required"`
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled"`
}

// RadioGroupProps configures a radio group. Exactly one radio is reachable
// with Tab: the checked one, or the first enabled one when none is checked.
type RadioGroupProps struct {
	Base        `yaml:",inline"`
	Name        string        `yaml:"name"`
	Value       string        `yaml:"value"`
	Options     []RadioOption `yaml:"options" validate:"dive"`
	Orientation string        `yaml:"orientation"`
	Disabled    bool          `yaml:"disabled"`
}

func (p RadioGroupProps) orientation() string {
	if p.Orientation == "horizontal" {
		return "horizontal"
	}
	return "vertical"
}

// TabStop returns the index of the option that receives tabindex=0, or -1 if
// every option is disabled.
func (p RadioGroupProps) TabStop() int {
	first := -1
	for i, o := range p.Options {
		if o.Disabled || p.Disabled {
			continue
		}
		if o.Value == p.Value {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

func (p RadioGroupProps) Attributes() attrs.Attributes {
	ctrl := controller("radio-group")
	layout := "grid gap-2"
	if p.orientation() == "horizontal" {
		layout = "flex gap-4"
	}
	a := attrs.New().
		Class(layout).
		Role("radiogroup").
		ARIA("orientation", p.orientation()).
		SetIf(p.Disabled, "aria-disabled", "true").
		Controller(ctrl).
		Action(attrs.ActionFor("keydown", ctrl, "navigate")).
		Value(ctrl, "value", p.Value).
		Value(ctrl, "orientation", p.orientation())
	return p.finish(a)
}

func (p RadioGroupProps) itemAttributes(i int, id string) attrs.Attributes {
	ctrl := controller("radio-group")
	o := p.Options[i]
	checked := o.Value == p.Value
	tabindex := "-1"
	if i == p.TabStop() {
		tabindex = "0"
	}
	disabled := o.Disabled || p.Disabled
	return attrs.New().
		Class("aspect-square h-4 w-4 rounded-full border border-primary text-primary shadow focus:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50").
		Set("id", id).
		Set("type", "button").
		Role("radio").
		ARIA("checked", checked).
		Data("state", checkedState(checked)).
		Set("value", o.Value).
		Set("tabindex", tabindex).
		SetIf(disabled, "disabled", true).
		SetIf(disabled, "data-disabled", "").
		Target(ctrl, "item").
		Action(attrs.ActionFor("click", ctrl, "select"))
}

func RadioGroup(p RadioGroupProps) templ.Component {
	root := p.idOr("radio-group")
	p.ID = root
	ctrl := controller("radio-group")

	items := make([]templ.Component, 0, len(p.Options)+1)
	for i, o := range p.Options {
		id := attrs.Suffix(root, o.Value)
		var dot templ.Component
		if o.Value == p.Value {
			dot = Element("span", attrs.New().Class("flex items-center justify-center"), Icon("circle", "h-3.5 w-3.5 fill-primary"))
		}
		items = append(items, Element("div", attrs.New().Class("flex items-center space-x-2"),
			Element("button", p.itemAttributes(i, id), dot),
			When(o.Label != "", Label(LabelProps{For: id, Text: o.Label})),
		))
	}
	if p.Name != "" {
		items = append(items, Element("input", attrs.New().
			Set("type", "hidden").
			Set("name", p.Name).
			Set("value", p.Value).
			Target(ctrl, "input")))
	}
	return Element("div", p.Attributes(), items...)
}
