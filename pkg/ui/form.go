package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/twmerge"
)

// InputProps configures a text-like input element.
type InputProps struct {
	Base        `yaml:",inline"`
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	Placeholder string `yaml:"placeholder"`
	Disabled    bool   `yaml:"disabled"`
	Required    bool   `yaml:"required"`
	ReadOnly    bool   `yaml:"readonly"`
	Invalid     bool   `yaml:"invalid"`
	DescribedBy string `yaml:"described_by"`
}

const fieldClasses = "flex w-full rounded-md border border-input bg-transparent px-3 py-1 text-base shadow-sm transition-colors placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50 md:text-sm"

const invalidClasses = "border-destructive focus-visible:ring-destructive"

func (p InputProps) Classes() string {
	extra := "h-9 file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground"
	if p.Invalid {
		extra += " " + invalidClasses
	}
	return twmerge.Merge(fieldClasses, extra)
}

func (p InputProps) Attributes() attrs.Attributes {
	a := attrs.New().
		Class(p.Classes()).
		Set("type", orDefault(p.Type, "text")).
		SetNonEmpty("name", p.Name).
		SetNonEmpty("value", p.Value).
		SetNonEmpty("placeholder", p.Placeholder).
		SetIf(p.Disabled, "disabled", true).
		SetIf(p.Required, "required", true).
		SetIf(p.ReadOnly, "readonly", true).
		SetNonEmpty("aria-describedby", p.DescribedBy)
	if p.Invalid {
		a.ARIA("invalid", true)
	}
	return p.finish(a)
}

func Input(p InputProps) templ.Component {
	return Element("input", p.Attributes())
}

// TextareaProps configures a multi-line text field.
type TextareaProps struct {
	Base        `yaml:",inline"`
	Name        string `yaml:"name"`
	Value       string `yaml:"value"`
	Placeholder string `yaml:"placeholder"`
	Rows        int    `yaml:"rows"`
	Disabled    bool   `yaml:"disabled"`
	Invalid     bool   `yaml:"invalid"`
}

func (p TextareaProps) Attributes() attrs.Attributes {
	a := attrs.New().
		Class(fieldClasses, "min-h-[60px] py-2").
		SetNonEmpty("name", p.Name).
		SetNonEmpty("placeholder", p.Placeholder).
		SetIf(p.Rows > 0, "rows", p.Rows).
		SetIf(p.Disabled, "disabled", true)
	if p.Invalid {
		a.Class(invalidClasses).ARIA("invalid", true)
	}
	return p.finish(a)
}

func Textarea(p TextareaProps) templ.Component {
	return Element("textarea", p.Attributes(), Text(p.Value))
}

// LabelProps configures a form label.
type LabelProps struct {
	Base `yaml:",inline"`
	For  string `yaml:"for"`
	Text string `yaml:"text"`
}

func (p LabelProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().
		Class("text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70").
		SetNonEmpty("for", p.For))
}

func Label(p LabelProps, children ...templ.Component) templ.Component {
	return Element("label", p.Attributes(), textOr(p.Text, children)...)
}

// KbdProps configures a keyboard key hint.
type KbdProps struct {
	Base `yaml:",inline"`
	Keys []string `yaml:"keys"`
}

func (p KbdProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().Class("pointer-events-none inline-flex h-5 select-none items-center gap-1 rounded border bg-muted px-1.5 font-mono text-[10px] font-medium text-muted-foreground opacity-100"))
}

func Kbd(p KbdProps) templ.Component {
	keys := make([]templ.Component, 0, len(p.Keys))
	for _, k := range p.Keys {
		keys = append(keys, Element("span", attrs.New(), Text(k)))
	}
	return Element("kbd", p.Attributes(), keys...)
}
