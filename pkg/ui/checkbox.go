package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// CheckedState is the tri-state value of a checkbox.
type CheckedState string

const (
	Unchecked     CheckedState = "unchecked"
	Checked       CheckedState = "checked"
	Indeterminate CheckedState = "indeterminate"
)

// CheckboxProps configures a checkbox rendered as a role="checkbox" button
// with a hidden input carrying the form value.
type CheckboxProps struct {
	Base     `yaml:",inline"`
	State    CheckedState `yaml:"state"`
	Name     string       `yaml:"name"`
	Value    string       `yaml:"value"`
	Disabled bool         `yaml:"disabled"`
	Required bool         `yaml:"required"`
	Label    string       `yaml:"label"`
}

func (p CheckboxProps) state() CheckedState {
	switch p.State {
	case Checked, Indeterminate:
		return p.State
	default:
		return Unchecked
	}
}

func (p CheckboxProps) ariaChecked() string {
	switch p.state() {
	case Checked:
		return "true"
	case Indeterminate:
		return "mixed"
	default:
		return "false"
	}
}

func (p CheckboxProps) Attributes() attrs.Attributes {
	ctrl := controller("checkbox")
	a := attrs.New().
		Class("peer h-4 w-4 shrink-0 rounded-sm border border-primary shadow focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:cursor-not-allowed disabled:opacity-50 data-[state=checked]:bg-primary data-[state=checked]:text-primary-foreground data-[state=indeterminate]:bg-primary data-[state=indeterminate]:text-primary-foreground").
		Set("type", "button").
		Role("checkbox").
		ARIA("checked", p.ariaChecked()).
		Data("state", string(p.state())).
		SetIf(p.Disabled, "disabled", true).
		SetIf(p.Disabled, "data-disabled", "").
		Controller(ctrl).
		Action(attrs.ActionFor("click", ctrl, "toggle")).
		Value(ctrl, "state", string(p.state()))
	if p.Required {
		a.ARIA("required", true)
	}
	return p.finish(a)
}

func Checkbox(p CheckboxProps) templ.Component {
	ctrl := controller("checkbox")
	indicator := ""
	switch p.state() {
	case Checked:
		indicator = "check"
	case Indeterminate:
		indicator = "minus"
	}

	box := Element("button", p.Attributes(),
		Element("span", attrs.New().
			Class("flex items-center justify-center text-current").
			Data("state", string(p.state())).
			Target(ctrl, "indicator"),
			Icon(indicator, "h-3.5 w-3.5"),
		),
	)

	var hidden templ.Component
	if p.Name != "" {
		hidden = Element("input", attrs.New().
			Set("type", "checkbox").
			Set("name", p.Name).
			Set("value", orDefault(p.Value, "on")).
			SetIf(p.state() == Checked, "checked", true).
			SetIf(p.Disabled, "disabled", true).
			ARIA("hidden", true).
			Set("tabindex", "-1").
			Class("pointer-events-none absolute m-0 h-4 w-4 -translate-x-full opacity-0").
			Target(ctrl, "input"))
	}

	if p.Label == "" {
		return Group(box, hidden)
	}
	return Element("div", attrs.New().Class("relative flex items-center space-x-2"),
		box, hidden,
		Label(LabelProps{For: p.ID, Text: p.Label}),
	)
}

// SwitchProps configures a toggle switch.
type SwitchProps struct {
	Base     `yaml:",inline"`
	Checked  bool   `yaml:"checked"`
	Name     string `yaml:"name"`
	Disabled bool   `yaml:"disabled"`
	Label    string `yaml:"label"`
}

func (p SwitchProps) Attributes() attrs.Attributes {
	ctrl := controller("switch")
	state := checkedState(p.Checked)
	a := attrs.New().
		Class("peer inline-flex h-5 w-9 shrink-0 cursor-pointer items-center rounded-full border-2 border-transparent shadow-sm transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 focus-visible:ring-offset-background disabled:cursor-not-allowed disabled:opacity-50 data-[state=checked]:bg-primary data-[state=unchecked]:bg-input").
		Set("type", "button").
		Role("switch").
		ARIA("checked", p.Checked).
		Data("state", state).
		SetIf(p.Disabled, "disabled", true).
		Controller(ctrl).
		Action(attrs.ActionFor("click", ctrl, "toggle")).
		Value(ctrl, "checked", p.Checked)
	return p.finish(a)
}

func Switch(p SwitchProps) templ.Component {
	ctrl := controller("switch")
	state := checkedState(p.Checked)
	btn := Element("button", p.Attributes(),
		Element("span", attrs.New().
			Class("pointer-events-none block h-4 w-4 rounded-full bg-background shadow-lg ring-0 transition-transform data-[state=checked]:translate-x-4 data-[state=unchecked]:translate-x-0").
			Data("state", state).
			Target(ctrl, "thumb")),
	)

	var hidden templ.Component
	if p.Name != "" {
		value := "0"
		if p.Checked {
			value = "1"
		}
		hidden = Element("input", attrs.New().
			Set("type", "hidden").
			Set("name", p.Name).
			Set("value", value).
			Target(ctrl, "input"))
	}

	if p.Label == "" {
		return Group(btn, hidden)
	}
	return Element("div", attrs.New().Class("flex items-center space-x-2"),
		btn, hidden, Label(LabelProps{For: p.ID, Text: p.Label}))
}
