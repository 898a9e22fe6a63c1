package ui

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// MenuItem is one entry of a dropdown menu. Kind is item (default),
// checkbox, radio, label or separator.
type MenuItem struct {
	Kind        string `yaml:"kind"`
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Href        string `yaml:"href"`
	Shortcut    string `yaml:"shortcut"`
	Checked     bool   `yaml:"checked"`
	Disabled    bool   `yaml:"disabled"`
	Destructive bool   `yaml:"destructive"`
}

// DropdownMenuProps configures a menu button. Items are focused by the
// controller with arrow keys, so every item has tabindex -1.
type DropdownMenuProps struct {
	Base      `yaml:",inline"`
	Placement `yaml:",inline"`
	Open      bool       `yaml:"open"`
	Trigger   string     `yaml:"trigger"`
	Items     []MenuItem `yaml:"items"`
}

func (p DropdownMenuProps) Attributes() attrs.Attributes {
	ctrl := controller("dropdown-menu")
	a := attrs.New().
		Class("relative inline-block text-left").
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

const menuItemClasses = "relative flex cursor-default select-none items-center gap-2 rounded-sm px-2 py-1.5 text-sm outline-none transition-colors focus:bg-accent focus:text-accent-foreground data-[disabled]:pointer-events-none data-[disabled]:opacity-50"

func (p DropdownMenuProps) itemAttributes(it MenuItem) attrs.Attributes {
	ctrl := controller("dropdown-menu")
	a := attrs.New().
		Class(menuItemClasses).
		Set("tabindex", "-1").
		SetIf(it.Disabled, "aria-disabled", "true").
		SetIf(it.Disabled, "data-disabled", "").
		SetNonEmpty("data-value", it.Value).
		Target(ctrl, "item").
		Action(
			attrs.ActionFor("click", ctrl, "select"),
			attrs.ActionFor("mouseenter", ctrl, "highlight"),
		)
	switch it.Kind {
	case "checkbox":
		a.Role("menuitemcheckbox").
			ARIA("checked", it.Checked).
			Data("state", checkedState(it.Checked)).
			Class("pl-8")
	case "radio":
		a.Role("menuitemradio").
			ARIA("checked", it.Checked).
			Data("state", checkedState(it.Checked)).
			Class("pl-8")
	default:
		a.Role("menuitem")
	}
	if it.Destructive {
		a.Class("text-destructive focus:bg-destructive/10 focus:text-destructive")
	}
	return a
}

func DropdownMenu(p DropdownMenuProps) templ.Component {
	root := p.idOr("dropdown-menu")
	p.ID = root
	ctrl := controller("dropdown-menu")
	triggerID := attrs.Suffix(root, "trigger")
	contentID := attrs.Suffix(root, "content")

	trigger := attrs.New().
		Class(ButtonClasses(ButtonOutline, ButtonSizeDefault)).
		Set("id", triggerID).
		Set("type", "button").
		ARIA("haspopup", "menu").
		ARIA("expanded", p.Open).
		ARIA("controls", contentID).
		Data("state", openState(p.Open)).
		Target(ctrl, "trigger").
		Action(
			attrs.ActionFor("click", ctrl, "toggle"),
			attrs.ActionFor("keydown.down", ctrl, "openFirst"),
		)

	content := attrs.New().
		Class("absolute z-50 min-w-[8rem] overflow-hidden rounded-md border bg-popover p-1 text-popover-foreground shadow-md").
		Set("id", contentID).
		Role("menu").
		ARIA("orientation", "vertical").
		ARIA("labelledby", triggerID).
		Data("state", openState(p.Open)).
		SetIf(!p.Open, "hidden", true).
		Target(ctrl, "content").
		Action(attrs.ActionFor("keydown", ctrl, "navigate"))
	p.Placement.apply(ctrl, attrs.New(), content)

	items := make([]templ.Component, 0, len(p.Items))
	for _, it := range p.Items {
		switch it.Kind {
		case "separator":
			items = append(items, Element("div", attrs.New().Class("-mx-1 my-1 h-px bg-muted").Role("separator")))
			continue
		case "label":
			items = append(items, Element("div", attrs.New().Class("px-2 py-1.5 text-sm font-semibold"), Text(it.Label)))
			continue
		}
		var indicator templ.Component
		if it.Checked && (it.Kind == "checkbox" || it.Kind == "radio") {
			icon := "check"
			if it.Kind == "radio" {
				icon = "dot"
			}
			indicator = Element("span", attrs.New().Class("absolute left-2 flex h-3.5 w-3.5 items-center justify-center"), Icon(icon, "h-4 w-4"))
		}
		var shortcut templ.Component
		if it.Shortcut != "" {
			shortcut = Element("span", attrs.New().Class("ml-auto text-xs tracking-widest opacity-60"), Text(it.Shortcut))
		}
		tag := "div"
		a := p.itemAttributes(it)
		if it.Href != "" && !it.Disabled {
			tag = "a"
			a.Set("href", it.Href)
		}
		items = append(items, Element(tag, a, indicator, Text(it.Label), shortcut))
	}

	return Element("div", p.Attributes(),
		Element("button", trigger, Text(p.Trigger), Icon("chevron-down", "h-4 w-4 opacity-50")),
		Element("div", content, items...))
}

type SelectOption struct {
	Value    string `yaml:"value" validate:"required"`
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled"`
}

func (o SelectOption) label() string { return orDefault(o.Label, o.Value) }

// SelectProps configures a custom listbox select with a hidden input carrying
// the form value.
type SelectProps struct {
	Base        `yaml:",inline"`
	Name        string         `yaml:"name"`
	Value       string         `yaml:"value"`
	Placeholder string         `yaml:"placeholder"`
	Options     []SelectOption `yaml:"options" validate:"dive"`
	Open        bool           `yaml:"open"`
	Disabled    bool           `yaml:"disabled"`
}

// Selected returns the option matching Value.
func (p SelectProps) Selected() (SelectOption, bool) {
	for _, o := range p.Options {
		if o.Value == p.Value {
			return o, true
		}
	}
	return SelectOption{}, false
}

func (p SelectProps) Attributes() attrs.Attributes {
	ctrl := controller("select")
	return p.finish(attrs.New().
		Class("relative").
		Data("state", openState(p.Open)).
		Controller(ctrl).
		Value(ctrl, "value", p.Value).
		Value(ctrl, "open", p.Open).
		Action(
			attrs.ActionFor("click@window", ctrl, "clickOutside"),
			attrs.ActionFor("keydown.esc@window", ctrl, "close"),
		))
}

func Select(p SelectProps) templ.Component {
	root := p.idOr("select")
	p.ID = root
	ctrl := controller("select")
	listID := attrs.Suffix(root, "listbox")

	selected, ok := p.Selected()
	display := Element("span", attrs.New().Class("pointer-events-none truncate").Data("placeholder", ""), Text(p.Placeholder))
	if ok {
		display = Element("span", attrs.New().Class("pointer-events-none truncate"), Text(selected.label()))
	}

	trigger := attrs.New().
		Class("flex h-9 w-full items-center justify-between whitespace-nowrap rounded-md border border-input bg-transparent px-3 py-2 text-sm shadow-sm ring-offset-background placeholder:text-muted-foreground focus:outline-none focus:ring-1 focus:ring-ring disabled:cursor-not-allowed disabled:opacity-50 [&>span]:line-clamp-1").
		Set("type", "button").
		Role("combobox").
		ARIA("haspopup", "listbox").
		ARIA("expanded", p.Open).
		ARIA("controls", listID).
		Data("state", openState(p.Open)).
		SetIf(p.Disabled, "disabled", true).
		SetIf(!ok, "data-placeholder", "").
		Target(ctrl, "trigger").
		Action(
			attrs.ActionFor("click", ctrl, "toggle"),
			attrs.ActionFor("keydown", ctrl, "navigate"),
		)

	options := make([]templ.Component, 0, len(p.Options))
	for _, o := range p.Options {
		isSel := ok && o.Value == selected.Value
		var check templ.Component
		if isSel {
			check = Element("span", attrs.New().Class("absolute right-2 flex h-3.5 w-3.5 items-center justify-center"), Icon("check", "h-4 w-4"))
		}
		options = append(options, Element("div", attrs.New().
			Class("relative flex w-full cursor-default select-none items-center rounded-sm py-1.5 pl-2 pr-8 text-sm outline-none focus:bg-accent focus:text-accent-foreground data-[disabled]:pointer-events-none data-[disabled]:opacity-50").
			Set("id", attrs.Suffix(root, "option", o.Value)).
			Role("option").
			ARIA("selected", isSel).
			Data("state", checkedState(isSel)).
			Data("value", o.Value).
			Set("tabindex", "-1").
			SetIf(o.Disabled, "aria-disabled", "true").
			SetIf(o.Disabled, "data-disabled", "").
			Target(ctrl, "option").
			Action(attrs.ActionFor("click", ctrl, "select")),
			check, Text(o.label())))
	}

	var input templ.Component
	if p.Name != "" {
		input = Element("input", attrs.New().
			Set("type", "hidden").
			Set("name", p.Name).
			Set("value", p.Value).
			Target(ctrl, "input"))
	}

	return Element("div", p.Attributes(),
		Element("button", trigger, display, Icon("chevrons-up-down", "h-4 w-4 opacity-50")),
		Element("div", attrs.New().
			Class("absolute z-50 mt-1 max-h-96 w-full min-w-[8rem] overflow-y-auto rounded-md border bg-popover p-1 text-popover-foreground shadow-md").
			Set("id", listID).
			Role("listbox").
			Data("state", openState(p.Open)).
			SetIf(!p.Open, "hidden", true).
			Target(ctrl, "listbox"),
			options...),
		input)
}

// ComboboxProps configures a filterable select: a text input controlling a
// listbox. Query pre-filters the options on the server.
type ComboboxProps struct {
	Base        `yaml:",inline"`
	Name        string         `yaml:"name"`
	Value       string         `yaml:"value"`
	Query       string         `yaml:"query"`
	Placeholder string         `yaml:"placeholder"`
	Empty       string         `yaml:"empty"`
	Options     []SelectOption `yaml:"options" validate:"dive"`
	Open        bool           `yaml:"open"`
}

// Filtered returns the options whose label or value contains Query,
// case-insensitively.
func (p ComboboxProps) Filtered() []SelectOption {
	q := strings.ToLower(strings.TrimSpace(p.Query))
	if q == "" {
		return p.Options
	}
	out := make([]SelectOption, 0, len(p.Options))
	for _, o := range p.Options {
		if strings.Contains(strings.ToLower(o.label()), q) || strings.Contains(strings.ToLower(o.Value), q) {
			out = append(out, o)
		}
	}
	return out
}

func (p ComboboxProps) Attributes() attrs.Attributes {
	ctrl := controller("combobox")
	return p.finish(attrs.New().
		Class("relative w-full").
		Data("state", openState(p.Open)).
		Controller(ctrl).
		Value(ctrl, "value", p.Value).
		Value(ctrl, "open", p.Open).
		Action(attrs.ActionFor("click@window", ctrl, "clickOutside")))
}

func Combobox(p ComboboxProps) templ.Component {
	root := p.idOr("combobox")
	p.ID = root
	ctrl := controller("combobox")
	listID := attrs.Suffix(root, "listbox")
	matches := p.Filtered()

	active := ""
	for _, o := range matches {
		if o.Value == p.Value {
			active = attrs.Suffix(root, "option", o.Value)
			break
		}
	}

	input := attrs.New().
		Class(fieldClasses, "h-9").
		Set("type", "text").
		Role("combobox").
		ARIA("autocomplete", "list").
		ARIA("expanded", p.Open).
		ARIA("controls", listID).
		SetNonEmpty("aria-activedescendant", active).
		SetNonEmpty("placeholder", p.Placeholder).
		SetNonEmpty("value", p.Query).
		Set("autocomplete", "off").
		Target(ctrl, "input").
		Action(
			attrs.ActionFor("input", ctrl, "filter"),
			attrs.ActionFor("keydown", ctrl, "navigate"),
			attrs.ActionFor("focus", ctrl, "open"),
		)

	options := make([]templ.Component, 0, len(matches)+1)
	for _, o := range matches {
		isSel := o.Value == p.Value
		checkClass := "ml-auto h-4 w-4 opacity-0"
		if isSel {
			checkClass = "ml-auto h-4 w-4 opacity-100"
		}
		options = append(options, Element("div", attrs.New().
			Class("relative flex cursor-default select-none items-center gap-2 rounded-sm px-2 py-1.5 text-sm outline-none data-[disabled=true]:pointer-events-none data-[selected=true]:bg-accent data-[disabled=true]:opacity-50").
			Set("id", attrs.Suffix(root, "option", o.Value)).
			Role("option").
			ARIA("selected", isSel).
			Data("state", checkedState(isSel)).
			Data("value", o.Value).
			SetIf(o.Disabled, "aria-disabled", "true").
			Target(ctrl, "option").
			Action(attrs.ActionFor("click", ctrl, "select")),
			Icon("check", checkClass),
			Text(o.label())))
	}
	if len(matches) == 0 {
		options = append(options, Element("div", attrs.New().
			Class("py-6 text-center text-sm").
			Role("presentation").
			Target(ctrl, "empty"),
			Text(orDefault(p.Empty, "No results found."))))
	}

	var hidden templ.Component
	if p.Name != "" {
		hidden = Element("input", attrs.New().
			Set("type", "hidden").
			Set("name", p.Name).
			Set("value", p.Value).
			Target(ctrl, "hidden"))
	}

	return Element("div", p.Attributes(),
		Element("input", input),
		Element("div", attrs.New().
			Class("absolute z-50 mt-1 max-h-[300px] w-full overflow-y-auto overflow-x-hidden rounded-md border bg-popover p-1 text-popover-foreground shadow-md").
			Set("id", listID).
			Role("listbox").
			Data("state", openState(p.Open)).
			SetIf(!p.Open, "hidden", true).
			Target(ctrl, "listbox"),
			options...),
		hidden)
}
