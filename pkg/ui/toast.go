package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// DefaultToastDuration is the dismiss delay in milliseconds when none is set.
const DefaultToastDuration = 5000

var toastRecipe = variants.Recipe{
	Base: "group pointer-events-auto relative flex w-full items-center justify-between space-x-2 overflow-hidden rounded-md border p-4 pr-6 shadow-lg transition-all data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-80 data-[state=closed]:slide-out-to-right-full data-[state=open]:slide-in-from-top-full data-[state=open]:sm:slide-in-from-bottom-full",
	Variants: map[string]map[string]string{
		"variant": {
			string(ToastDefault):     "border bg-background text-foreground",
			string(ToastDestructive): "destructive group border-destructive bg-destructive text-destructive-foreground",
		},
	},
	Defaults: map[string]string{"variant": string(ToastDefault)},
}

// ToastProps configures a transient notification. Destructive toasts are
// announced assertively. A negative DurationMs keeps the toast until it is
// dismissed.
type ToastProps struct {
	Base        `yaml:",inline"`
	Variant     ToastVariant `yaml:"variant"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Action      string       `yaml:"action"`
	DurationMs  int          `yaml:"duration_ms"`
	Closed      bool         `yaml:"closed"`
}

func (p ToastProps) variant() string {
	return toastRecipe.Resolve(variants.Selection{"variant": string(p.Variant)})["variant"]
}

// Duration returns the auto-dismiss delay in milliseconds, 0 for none.
func (p ToastProps) Duration() int {
	switch {
	case p.DurationMs < 0:
		return 0
	case p.DurationMs == 0:
		return DefaultToastDuration
	default:
		return p.DurationMs
	}
}

func (p ToastProps) Attributes() attrs.Attributes {
	ctrl := controller("toast")
	role, live := "status", "polite"
	if p.variant() == string(ToastDestructive) {
		role, live = "alert", "assertive"
	}
	return p.finish(attrs.New().
		Class(toastRecipe.Classes(variants.Selection{"variant": string(p.Variant)})).
		Role(role).
		ARIA("live", live).
		ARIA("atomic", true).
		Data("state", openState(!p.Closed)).
		SetIf(p.Closed, "hidden", true).
		Controller(ctrl).
		Value(ctrl, "duration", p.Duration()).
		Action(
			attrs.ActionFor("mouseenter", ctrl, "pause"),
			attrs.ActionFor("mouseleave", ctrl, "resume"),
		))
}

func Toast(p ToastProps) templ.Component {
	ctrl := controller("toast")
	var action templ.Component
	if p.Action != "" {
		action = Element("button", attrs.New().
			Class("inline-flex h-8 shrink-0 items-center justify-center rounded-md border bg-transparent px-3 text-sm font-medium transition-colors hover:bg-secondary focus:outline-none focus:ring-1 focus:ring-ring disabled:pointer-events-none disabled:opacity-50 group-[.destructive]:border-muted/40 group-[.destructive]:hover:border-destructive/30 group-[.destructive]:hover:bg-destructive group-[.destructive]:hover:text-destructive-foreground").
			Set("type", "button").
			Action(attrs.ActionFor("click", ctrl, "act")),
			Text(p.Action))
	}
	return Element("li", p.Attributes(),
		Element("div", attrs.New().Class("grid gap-1"),
			When(p.Title != "", Element("div", attrs.New().Class("text-sm font-semibold [&+div]:text-xs"), Text(p.Title))),
			When(p.Description != "", Element("div", attrs.New().Class("text-sm opacity-90"), Text(p.Description))),
		),
		action,
		Element("button", attrs.New().
			Class("absolute right-1 top-1 rounded-md p-1 text-foreground/50 opacity-0 transition-opacity hover:text-foreground focus:opacity-100 focus:outline-none focus:ring-1 group-hover:opacity-100").
			Set("type", "button").
			ARIA("label", "Close").
			Action(attrs.ActionFor("click", ctrl, "dismiss")),
			Icon("x", "h-4 w-4")),
	)
}

// ToasterProps configures the viewport toasts are stacked in.
type ToasterProps struct {
	Base     `yaml:",inline"`
	Position string       `yaml:"position"`
	Toasts   []ToastProps `yaml:"toasts"`
}

var toasterPositions = map[string]string{
	"top-left":     "top-0 left-0",
	"top-right":    "top-0 right-0",
	"bottom-left":  "bottom-0 left-0",
	"bottom-right": "bottom-0 right-0",
}

func (p ToasterProps) Attributes() attrs.Attributes {
	pos, ok := toasterPositions[p.Position]
	if !ok {
		pos = toasterPositions["bottom-right"]
	}
	return p.finish(attrs.New().
		Class("fixed z-[100] flex max-h-screen w-full flex-col-reverse p-4 md:max-w-[420px]", pos).
		Role("region").
		ARIA("label", "Notifications").
		Set("tabindex", "-1"))
}

func Toaster(p ToasterProps) templ.Component {
	toasts := make([]templ.Component, 0, len(p.Toasts))
	for _, t := range p.Toasts {
		toasts = append(toasts, Toast(t))
	}
	return Element("ol", p.Attributes(), toasts...)
}
