package ui

import (
	"slices"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

type Tab struct {
	Value    string `yaml:"value" validate:"required"`
	Label    string `yaml:"label"`
	Content  string `yaml:"content"`
	Disabled bool   `yaml:"disabled"`
}

// TabsProps configures a tab list with panels. Only the active tab is in
// the tab order; arrow keys move between tabs.
type TabsProps struct {
	Base        `yaml:",inline"`
	Value       string `yaml:"value"`
	Tabs        []Tab  `yaml:"tabs" validate:"dive"`
	Orientation string `yaml:"orientation"`
	Label       string `yaml:"label"`
}

// Active returns the index of the active tab: the one matching Value when it
// is enabled, else the first enabled tab, else -1.
func (p TabsProps) Active() int {
	first := -1
	for i, t := range p.Tabs {
		if t.Disabled {
			continue
		}
		if t.Value == p.Value {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

func (p TabsProps) orientation() string {
	if p.Orientation == "vertical" {
		return "vertical"
	}
	return "horizontal"
}

func (p TabsProps) Attributes() attrs.Attributes {
	ctrl := controller("tabs")
	active := ""
	if i := p.Active(); i >= 0 {
		active = p.Tabs[i].Value
	}
	layout := ""
	if p.orientation() == "vertical" {
		layout = "flex gap-4"
	}
	return p.finish(attrs.New().
		Class(layout).
		Data("orientation", p.orientation()).
		Controller(ctrl).
		Value(ctrl, "value", active).
		Value(ctrl, "orientation", p.orientation()))
}

func Tabs(p TabsProps) templ.Component {
	root := p.idOr("tabs")
	p.ID = root
	ctrl := controller("tabs")
	active := p.Active()

	listClass := "inline-flex h-9 items-center justify-center rounded-lg bg-muted p-1 text-muted-foreground"
	if p.orientation() == "vertical" {
		listClass = "flex h-auto flex-col items-stretch rounded-lg bg-muted p-1 text-muted-foreground"
	}

	triggers := make([]templ.Component, 0, len(p.Tabs))
	panels := make([]templ.Component, 0, len(p.Tabs))
	for i, t := range p.Tabs {
		on := i == active
		state := "inactive"
		tabindex := "-1"
		if on {
			state = "active"
			tabindex = "0"
		}
		tabID := attrs.Suffix(root, "tab", t.Value)
		panelID := attrs.Suffix(root, "panel", t.Value)

		triggers = append(triggers, Element("button", attrs.New().
			Class("inline-flex items-center justify-center whitespace-nowrap rounded-md px-3 py-1 text-sm font-medium ring-offset-background transition-all focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50 data-[state=active]:bg-background data-[state=active]:text-foreground data-[state=active]:shadow").
			Set("id", tabID).
			Set("type", "button").
			Role("tab").
			ARIA("selected", on).
			ARIA("controls", panelID).
			Set("tabindex", tabindex).
			Data("state", state).
			Data("value", t.Value).
			SetIf(t.Disabled, "disabled", true).
			SetIf(t.Disabled, "data-disabled", "").
			Target(ctrl, "tab").
			Action(
				attrs.ActionFor("click", ctrl, "select"),
				attrs.ActionFor("keydown", ctrl, "navigate"),
			),
			Text(orDefault(t.Label, t.Value))))

		panels = append(panels, Element("div", attrs.New().
			Class("mt-2 ring-offset-background focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2").
			Set("id", panelID).
			Role("tabpanel").
			ARIA("labelledby", tabID).
			Set("tabindex", "0").
			Data("state", state).
			SetIf(!on, "hidden", true).
			Target(ctrl, "panel"),
			Text(t.Content)))
	}

	list := Element("div", attrs.New().
		Class(listClass).
		Role("tablist").
		ARIA("orientation", p.orientation()).
		SetNonEmpty("aria-label", p.Label),
		triggers...)
	return Element("div", p.Attributes(), append([]templ.Component{list}, panels...)...)
}

type ToggleVariant string

const (
	ToggleDefault ToggleVariant = "default"
	ToggleOutline ToggleVariant = "outline"
)

var toggleRecipe = variants.Recipe{
	Base: "inline-flex items-center justify-center gap-2 rounded-md text-sm font-medium transition-colors hover:bg-muted hover:text-muted-foreground focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50 data-[state=on]:bg-accent data-[state=on]:text-accent-foreground",
	Variants: map[string]map[string]string{
		"variant": {
			string(ToggleDefault): "bg-transparent",
			string(ToggleOutline): "border border-input bg-transparent shadow-sm hover:bg-accent hover:text-accent-foreground",
		},
		"size": {
			"default": "h-9 min-w-9 px-2",
			"sm":      "h-8 min-w-8 px-1.5",
			"lg":      "h-10 min-w-10 px-2.5",
		},
	},
	Defaults: map[string]string{"variant": string(ToggleDefault), "size": "default"},
}

func onState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// ToggleProps configures a two-state button announced with aria-pressed.
type ToggleProps struct {
	Base     `yaml:",inline"`
	Pressed  bool          `yaml:"pressed"`
	Variant  ToggleVariant `yaml:"variant"`
	Size     string        `yaml:"size"`
	Disabled bool          `yaml:"disabled"`
	Label    string        `yaml:"label"`
	Text     string        `yaml:"text"`
}

func (p ToggleProps) Classes() string {
	return toggleRecipe.Classes(variants.Selection{"variant": string(p.Variant), "size": p.Size})
}

func (p ToggleProps) Attributes() attrs.Attributes {
	ctrl := controller("toggle")
	return p.finish(attrs.New().
		Class(p.Classes()).
		Set("type", "button").
		ARIA("pressed", p.Pressed).
		Data("state", onState(p.Pressed)).
		SetNonEmpty("aria-label", p.Label).
		SetIf(p.Disabled, "disabled", true).
		Controller(ctrl).
		Value(ctrl, "pressed", p.Pressed).
		Action(attrs.ActionFor("click", ctrl, "toggle")))
}

func Toggle(p ToggleProps, children ...templ.Component) templ.Component {
	return Element("button", p.Attributes(), textOr(p.Text, children)...)
}

type ToggleItem struct {
	Value    string `yaml:"value" validate:"required"`
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled"`
}

// ToggleGroupProps configures a set of toggles. Type "single" behaves like a
// radio group (role=radio, aria-checked); "multiple" like independent
// toggles (aria-pressed).
type ToggleGroupProps struct {
	Base     `yaml:",inline"`
	Type     string        `yaml:"type"`
	Value    []string      `yaml:"value"`
	Items    []ToggleItem  `yaml:"items" validate:"dive"`
	Variant  ToggleVariant `yaml:"variant"`
	Size     string        `yaml:"size"`
	Disabled bool          `yaml:"disabled"`
	Label    string        `yaml:"label"`
}

func (p ToggleGroupProps) single() bool { return p.Type != "multiple" }

// IsOn reports whether the item is pressed. In single mode only the first
// value that names an item counts.
func (p ToggleGroupProps) IsOn(value string) bool {
	if !p.single() {
		return slices.Contains(p.Value, value)
	}
	for _, v := range p.Value {
		for _, it := range p.Items {
			if it.Value == v {
				return v == value
			}
		}
	}
	return false
}

// TabStop returns the index of the item that receives tabindex=0: the first
// pressed enabled item, else the first enabled item, else -1.
func (p ToggleGroupProps) TabStop() int {
	first := -1
	for i, it := range p.Items {
		if it.Disabled || p.Disabled {
			continue
		}
		if p.IsOn(it.Value) {
			return i
		}
		if first < 0 {
			first = i
		}
	}
	return first
}

func (p ToggleGroupProps) Attributes() attrs.Attributes {
	ctrl := controller("toggle")
	role := "group"
	if p.single() {
		role = "radiogroup"
	}
	kind := "multiple"
	if p.single() {
		kind = "single"
	}
	return p.finish(attrs.New().
		Class("flex items-center justify-center gap-1").
		Role(role).
		SetNonEmpty("aria-label", p.Label).
		Controller(ctrl).
		Value(ctrl, "type", kind).
		Action(attrs.ActionFor("keydown", ctrl, "navigate")))
}

func ToggleGroup(p ToggleGroupProps) templ.Component {
	ctrl := controller("toggle")
	stop := p.TabStop()
	items := make([]templ.Component, 0, len(p.Items))
	for i, it := range p.Items {
		on := p.IsOn(it.Value)
		tabindex := "-1"
		if i == stop {
			tabindex = "0"
		}
		disabled := it.Disabled || p.Disabled
		a := attrs.New().
			Class(toggleRecipe.Classes(variants.Selection{"variant": string(p.Variant), "size": p.Size})).
			Set("type", "button").
			Set("tabindex", tabindex).
			Data("state", onState(on)).
			Data("value", it.Value).
			SetIf(disabled, "disabled", true).
			Target(ctrl, "item").
			Action(attrs.ActionFor("click", ctrl, "press"))
		if p.single() {
			a.Role("radio").ARIA("checked", on)
		} else {
			a.ARIA("pressed", on)
		}
		items = append(items, Element("button", a, Text(orDefault(it.Label, it.Value))))
	}
	return Element("div", p.Attributes(), items...)
}
