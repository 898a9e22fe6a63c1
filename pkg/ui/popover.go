package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// Placement fields shared by floating content.
type Placement struct {
	Side   string `yaml:"side"`
	Align  string `yaml:"align"`
	Offset int    `yaml:"offset"`
}

func (pl Placement) side() string {
	switch pl.Side {
	case "top", "right", "left":
		return pl.Side
	default:
		return "bottom"
	}
}

func (pl Placement) align() string {
	switch pl.Align {
	case "start", "end":
		return pl.Align
	default:
		return "center"
	}
}

// apply sets the placement values on the controller element and the data
// attributes used by the slide-in animations on the content.
func (pl Placement) apply(ctrl string, root, content attrs.Attributes) {
	offset := pl.Offset
	if offset <= 0 {
		offset = 4
	}
	root.Value(ctrl, "side", pl.side()).
		Value(ctrl, "align", pl.align()).
		Value(ctrl, "offset", offset)
	content.Data("side", pl.side()).Data("align", pl.align())
}

const floatingClasses = "z-50 rounded-md border bg-popover p-4 text-popover-foreground shadow-md outline-none data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95 data-[side=bottom]:slide-in-from-top-2 data-[side=left]:slide-in-from-right-2 data-[side=right]:slide-in-from-left-2 data-[side=top]:slide-in-from-bottom-2"

// PopoverProps configures click-triggered floating content.
type PopoverProps struct {
	Base      `yaml:",inline"`
	Placement `yaml:",inline"`
	Open      bool   `yaml:"open"`
	Trigger   string `yaml:"trigger"`
	Content   string `yaml:"content"`
}

func (p PopoverProps) Attributes() attrs.Attributes {
	ctrl := controller("popover")
	a := attrs.New().
		Class("relative inline-block").
		Data("state", openState(p.Open)).
		Controller(ctrl).
		Value(ctrl, "open", p.Open).
		Action(
			attrs.ActionFor("click@window", ctrl, "clickOutside"),
			attrs.ActionFor("keydown.esc@window", ctrl, "close"),
		)
	p.Placement.apply(ctrl, a, attrs.New())
	return p.finish(a)
}

func Popover(p PopoverProps, children ...templ.Component) templ.Component {
	root := p.idOr("popover")
	p.ID = root
	ctrl := controller("popover")
	contentID := attrs.Suffix(root, "content")

	trigger := attrs.New().
		Class(ButtonClasses(ButtonOutline, ButtonSizeDefault)).
		Set("type", "button").
		ARIA("haspopup", "dialog").
		ARIA("expanded", p.Open).
		ARIA("controls", contentID).
		Data("state", openState(p.Open)).
		Target(ctrl, "trigger").
		Action(attrs.ActionFor("click", ctrl, "toggle"))

	content := attrs.New().
		Class(floatingClasses, "w-72").
		Set("id", contentID).
		Role("dialog").
		Set("tabindex", "-1").
		Data("state", openState(p.Open)).
		SetIf(!p.Open, "hidden", true).
		Target(ctrl, "content")
	p.Placement.apply(ctrl, attrs.New(), content)

	return Element("div", p.Attributes(),
		Element("button", trigger, Text(p.Trigger)),
		Element("div", content, textOr(p.Content, children)...))
}

// TooltipProps configures a hover/focus label for a trigger. DelayMs is the
// open delay handed to the controller.
type TooltipProps struct {
	Base      `yaml:",inline"`
	Placement `yaml:",inline"`
	Open      bool   `yaml:"open"`
	Trigger   string `yaml:"trigger"`
	Content   string `yaml:"content" validate:"required"`
	DelayMs   int    `yaml:"delay_ms"`
}

func (p TooltipProps) Attributes() attrs.Attributes {
	ctrl := controller("tooltip")
	delay := p.DelayMs
	if delay < 0 {
		delay = 0
	}
	a := attrs.New().
		Class("relative inline-flex").
		Data("state", openState(p.Open)).
		Controller(ctrl).
		Value(ctrl, "delay", delay)
	p.Placement.apply(ctrl, a, attrs.New())
	return p.finish(a)
}

func Tooltip(p TooltipProps, children ...templ.Component) templ.Component {
	root := p.idOr("tooltip")
	p.ID = root
	ctrl := controller("tooltip")
	contentID := attrs.Suffix(root, "content")

	trigger := attrs.New().
		Class("inline-flex").
		ARIA("describedby", contentID).
		Data("state", openState(p.Open)).
		Target(ctrl, "trigger").
		Action(
			attrs.ActionFor("mouseenter", ctrl, "show"),
			attrs.ActionFor("mouseleave", ctrl, "hide"),
			attrs.ActionFor("focusin", ctrl, "show"),
			attrs.ActionFor("focusout", ctrl, "hide"),
		)

	content := attrs.New().
		Class("absolute z-50 overflow-hidden rounded-md bg-primary px-3 py-1.5 text-xs text-primary-foreground animate-in fade-in-0 zoom-in-95 data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=closed]:zoom-out-95").
		Set("id", contentID).
		Role("tooltip").
		Data("state", openState(p.Open)).
		SetIf(!p.Open, "hidden", true).
		Target(ctrl, "content")
	p.Placement.apply(ctrl, attrs.New(), content)

	return Element("span", p.Attributes(),
		Element("span", trigger, textOr(p.Trigger, children)...),
		Element("span", content, Text(p.Content)))
}

// HoverCardProps configures rich preview content shown while a link is
// hovered.
type HoverCardProps struct {
	Base         `yaml:",inline"`
	Placement    `yaml:",inline"`
	Open         bool   `yaml:"open"`
	Trigger      string `yaml:"trigger"`
	Href         string `yaml:"href"`
	Content      string `yaml:"content"`
	OpenDelayMs  int    `yaml:"open_delay_ms"`
	CloseDelayMs int    `yaml:"close_delay_ms"`
}

func (p HoverCardProps) Attributes() attrs.Attributes {
	ctrl := controller("hover-card")
	openDelay, closeDelay := p.OpenDelayMs, p.CloseDelayMs
	if openDelay <= 0 {
		openDelay = 700
	}
	if closeDelay <= 0 {
		closeDelay = 300
	}
	a := attrs.New().
		Class("relative inline-block").
		Data("state", openState(p.Open)).
		Controller(ctrl).
		Value(ctrl, "openDelay", openDelay).
		Value(ctrl, "closeDelay", closeDelay).
		Action(
			attrs.ActionFor("mouseenter", ctrl, "scheduleOpen"),
			attrs.ActionFor("mouseleave", ctrl, "scheduleClose"),
		)
	p.Placement.apply(ctrl, a, attrs.New())
	return p.finish(a)
}

func HoverCard(p HoverCardProps, children ...templ.Component) templ.Component {
	ctrl := controller("hover-card")
	trigger := attrs.New().
		Class("font-medium underline-offset-4 hover:underline").
		Set("href", orDefault(p.Href, "#")).
		Data("state", openState(p.Open)).
		Target(ctrl, "trigger").
		Action(
			attrs.ActionFor("focusin", ctrl, "scheduleOpen"),
			attrs.ActionFor("focusout", ctrl, "scheduleClose"),
		)
	content := attrs.New().
		Class(floatingClasses, "absolute w-64").
		Data("state", openState(p.Open)).
		SetIf(!p.Open, "hidden", true).
		Target(ctrl, "content")
	p.Placement.apply(ctrl, attrs.New(), content)

	return Element("div", p.Attributes(),
		Element("a", trigger, Text(p.Trigger)),
		Element("div", content, textOr(p.Content, children)...))
}
