package ui

import (
	"slices"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

type AccordionItem struct {
	Value    string `yaml:"value" validate:"required"`
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
	Disabled bool   `yaml:"disabled"`
}

// AccordionProps configures an accordion. In "single" mode at most one item
// is open; the first open value in Open wins. Collapsible lets the open item
// of a single accordion be closed again.
type AccordionProps struct {
	Base        `yaml:",inline"`
	Type        string          `yaml:"type"`
	Collapsible bool            `yaml:"collapsible"`
	Open        []string        `yaml:"open"`
	Items       []AccordionItem `yaml:"items" validate:"dive"`
}

func (p AccordionProps) mode() string {
	if p.Type == "multiple" {
		return "multiple"
	}
	return "single"
}

// IsOpen reports whether the item with value is expanded.
func (p AccordionProps) IsOpen(value string) bool {
	if p.mode() == "multiple" {
		return slices.Contains(p.Open, value)
	}
	for _, v := range p.Open {
		for _, it := range p.Items {
			if it.Value == v {
				return v == value
			}
		}
	}
	return false
}

func (p AccordionProps) Attributes() attrs.Attributes {
	ctrl := controller("accordion")
	return p.finish(attrs.New().
		Class("w-full").
		Data("orientation", "vertical").
		Controller(ctrl).
		Value(ctrl, "type", p.mode()).
		Value(ctrl, "collapsible", p.Collapsible))
}

func Accordion(p AccordionProps) templ.Component {
	root := p.idOr("accordion")
	p.ID = root
	ctrl := controller("accordion")

	items := make([]templ.Component, 0, len(p.Items))
	for _, it := range p.Items {
		open := p.IsOpen(it.Value)
		state := openState(open)
		triggerID := attrs.Suffix(root, it.Value, "trigger")
		contentID := attrs.Suffix(root, it.Value, "content")

		trigger := attrs.New().
			Class("flex flex-1 items-center justify-between py-4 text-left text-sm font-medium transition-all hover:underline disabled:pointer-events-none disabled:opacity-50 [&[data-state=open]>svg]:rotate-180").
			Set("id", triggerID).
			Set("type", "button").
			ARIA("expanded", open).
			ARIA("controls", contentID).
			Data("state", state).
			SetIf(it.Disabled, "disabled", true).
			SetIf(it.Disabled, "data-disabled", "").
			Target(ctrl, "trigger").
			Action(
				attrs.ActionFor("click", ctrl, "toggle"),
				attrs.ActionFor("keydown", ctrl, "navigate"),
			)
		// A lone open item that cannot collapse is announced as fixed.
		if open && p.mode() == "single" && !p.Collapsible {
			trigger.ARIA("disabled", true)
		}

		content := attrs.New().
			Class("overflow-hidden text-sm data-[state=closed]:animate-accordion-up data-[state=open]:animate-accordion-down").
			Set("id", contentID).
			Role("region").
			ARIA("labelledby", triggerID).
			Data("state", state).
			SetIf(!open, "hidden", true).
			Target(ctrl, "content")

		items = append(items, Element("div", attrs.New().
			Class("border-b").
			Data("state", state).
			Data("value", it.Value).
			Target(ctrl, "item"),
			Element("h3", attrs.New().Class("flex"),
				Element("button", trigger, Text(it.Title), Icon("chevron-down", "h-4 w-4 text-muted-foreground transition-transform duration-200"))),
			Element("div", content,
				Element("div", attrs.New().Class("pb-4 pt-0"), Text(it.Content))),
		))
	}
	return Element("div", p.Attributes(), items...)
}

// CollapsibleProps configures a single show/hide region with a trigger.
type CollapsibleProps struct {
	Base     `yaml:",inline"`
	Open     bool   `yaml:"open"`
	Disabled bool   `yaml:"disabled"`
	Trigger  string `yaml:"trigger"`
	Content  string `yaml:"content"`
}

func (p CollapsibleProps) Attributes() attrs.Attributes {
	ctrl := controller("collapsible")
	return p.finish(attrs.New().
		Data("state", openState(p.Open)).
		SetIf(p.Disabled, "data-disabled", "").
		Controller(ctrl).
		Value(ctrl, "open", p.Open))
}

func Collapsible(p CollapsibleProps, children ...templ.Component) templ.Component {
	root := p.idOr("collapsible")
	p.ID = root
	ctrl := controller("collapsible")
	contentID := attrs.Suffix(root, "content")
	state := openState(p.Open)

	trigger := Element("button", attrs.New().
		Class(ButtonClasses(ButtonGhost, ButtonSizeSm), "w-full justify-between").
		Set("type", "button").
		ARIA("expanded", p.Open).
		ARIA("controls", contentID).
		Data("state", state).
		SetIf(p.Disabled, "disabled", true).
		Target(ctrl, "trigger").
		Action(attrs.ActionFor("click", ctrl, "toggle")),
		Text(p.Trigger), Icon("chevrons-up-down", "h-4 w-4"))

	content := Element("div", attrs.New().
		Set("id", contentID).
		Data("state", state).
		SetIf(!p.Open, "hidden", true).
		Target(ctrl, "content"),
		textOr(p.Content, children)...)

	return Element("div", p.Attributes(), trigger, content)
}
