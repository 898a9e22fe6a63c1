package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/variants"
)

type SidebarItem struct {
	Label  string `yaml:"label" validate:"required"`
	Href   string `yaml:"href"`
	Icon   string `yaml:"icon"`
	Badge  string `yaml:"badge"`
	Active bool   `yaml:"active"`
}

type SidebarGroup struct {
	Label string        `yaml:"label"`
	Items []SidebarItem `yaml:"items" validate:"dive"`
}

// SidebarProps configures an application shell: a collapsible navigation
// sidebar and a main area holding the children. Collapsed is the initial
// state; Collapsible is offcanvas (slides away), icon (shrinks to icons) or
// none.
type SidebarProps struct {
	Base        `yaml:",inline"`
	Collapsed   bool           `yaml:"collapsed"`
	Side        string         `yaml:"side"`
	Variant     string         `yaml:"variant"`
	Collapsible string         `yaml:"collapsible"`
	Title       string         `yaml:"title"`
	Groups      []SidebarGroup `yaml:"groups" validate:"dive"`
	Footer      string         `yaml:"footer"`
}

var sidebarRecipe = variants.Recipe{
	Base: "group peer hidden text-sidebar-foreground md:block",
	Variants: map[string]map[string]string{
		"variant": {
			"sidebar":  "",
			"floating": "p-2",
			"inset":    "p-2",
		},
		"side": {
			"left":  "",
			"right": "",
		},
		"collapsible": {
			"offcanvas": "",
			"icon":      "",
			"none":      "",
		},
	},
	Defaults: map[string]string{"variant": "sidebar", "side": "left", "collapsible": "offcanvas"},
}

// resolved returns the variant, side and collapsible mode after falling back
// to defaults for unknown values.
func (p SidebarProps) resolved() variants.Selection {
	return sidebarRecipe.Resolve(variants.Selection{
		"variant":     p.Variant,
		"side":        p.Side,
		"collapsible": p.Collapsible,
	})
}

// State returns expanded or collapsed. A sidebar that cannot collapse is
// always expanded.
func (p SidebarProps) State() string {
	if p.Collapsed && p.resolved()["collapsible"] != "none" {
		return "collapsed"
	}
	return "expanded"
}

func (p SidebarProps) Attributes() attrs.Attributes {
	ctrl := controller("sidebar")
	sel := p.resolved()
	return p.finish(attrs.New().
		Class("group/sidebar-wrapper flex min-h-svh w-full has-[[data-variant=inset]]:bg-sidebar").
		Set("style", "--sidebar-width: 16rem; --sidebar-width-icon: 3rem").
		Data("state", p.State()).
		Controller(ctrl).
		Value(ctrl, "state", p.State()).
		Value(ctrl, "collapsible", sel["collapsible"]).
		Value(ctrl, "cookieName", "sidebar_state").
		Action(attrs.ActionFor("keydown.meta+b@window", ctrl, "toggle")))
}

// PanelAttributes returns the attributes of the aside element. When
// collapsed, data-collapsible carries the collapse mode so CSS can hide or
// shrink the panel.
func (p SidebarProps) PanelAttributes(id string) attrs.Attributes {
	ctrl := controller("sidebar")
	sel := p.resolved()
	collapsible := ""
	if p.State() == "collapsed" {
		collapsible = sel["collapsible"]
	}
	width := "w-[--sidebar-width]"
	if collapsible == "icon" {
		width = "w-[--sidebar-width-icon]"
	}
	if collapsible == "offcanvas" {
		width = "w-0"
	}
	return attrs.New().
		Class(sidebarRecipe.Classes(sel), "transition-[width] duration-200 ease-linear", width).
		Set("id", id).
		Data("state", p.State()).
		Data("collapsible", collapsible).
		Data("variant", sel["variant"]).
		Data("side", sel["side"]).
		Target(ctrl, "panel")
}

// TriggerAttributes returns the attributes of the toggle button.
func (p SidebarProps) TriggerAttributes(panelID string) attrs.Attributes {
	ctrl := controller("sidebar")
	expanded := p.State() == "expanded"
	return attrs.New().
		Class(ButtonClasses(ButtonGhost, ButtonSizeIcon), "h-7 w-7").
		Set("type", "button").
		ARIA("controls", panelID).
		ARIA("expanded", expanded).
		ARIA("label", "Toggle Sidebar").
		Data("sidebar", "trigger").
		Target(ctrl, "trigger").
		Action(attrs.ActionFor("click", ctrl, "toggle"))
}

func sidebarMenuButton(it SidebarItem) templ.Component {
	a := attrs.New().
		Class("peer/menu-button flex w-full items-center gap-2 overflow-hidden rounded-md p-2 text-left text-sm outline-none ring-sidebar-ring transition-[width,height,padding] hover:bg-sidebar-accent hover:text-sidebar-accent-foreground focus-visible:ring-2 data-[active=true]:bg-sidebar-accent data-[active=true]:font-medium data-[active=true]:text-sidebar-accent-foreground group-data-[collapsible=icon]:!size-8 group-data-[collapsible=icon]:!p-2 [&>span:last-child]:truncate").
		Data("sidebar", "menu-button").
		Data("active", it.Active).
		SetIf(it.Active, "aria-current", "page")
	tag := "button"
	if it.Href != "" {
		tag = "a"
		a.Set("href", it.Href)
	} else {
		a.Set("type", "button")
	}
	var badge templ.Component
	if it.Badge != "" {
		badge = Element("div", attrs.New().
			Class("pointer-events-none absolute right-1 flex h-5 min-w-5 select-none items-center justify-center rounded-md px-1 text-xs font-medium tabular-nums group-data-[collapsible=icon]:hidden").
			Data("sidebar", "menu-badge"),
			Text(it.Badge))
	}
	return Element("li", attrs.New().Class("group/menu-item relative").Data("sidebar", "menu-item"),
		Element(tag, a, Icon(it.Icon, ""), Element("span", attrs.New(), Text(it.Label))),
		badge)
}

func Sidebar(p SidebarProps, children ...templ.Component) templ.Component {
	root := p.idOr("sidebar")
	p.ID = root
	panelID := attrs.Suffix(root, "panel")

	groups := make([]templ.Component, 0, len(p.Groups))
	for _, g := range p.Groups {
		items := make([]templ.Component, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, sidebarMenuButton(it))
		}
		groups = append(groups, Element("div", attrs.New().
			Class("relative flex w-full min-w-0 flex-col p-2").
			Data("sidebar", "group"),
			When(g.Label != "", Element("div", attrs.New().
				Class("flex h-8 shrink-0 items-center rounded-md px-2 text-xs font-medium text-sidebar-foreground/70 group-data-[collapsible=icon]:-mt-8 group-data-[collapsible=icon]:opacity-0").
				Data("sidebar", "group-label"),
				Text(g.Label))),
			Element("ul", attrs.New().Class("flex w-full min-w-0 flex-col gap-1").Data("sidebar", "menu"), items...)))
	}

	inner := Element("div", attrs.New().
		Class("flex h-full w-full flex-col bg-sidebar group-data-[variant=floating]:rounded-lg group-data-[variant=floating]:border group-data-[variant=floating]:shadow").
		Data("sidebar", "sidebar"),
		When(p.Title != "", Element("div", attrs.New().Class("flex flex-col gap-2 p-2").Data("sidebar", "header"),
			Element("span", attrs.New().Class("px-2 text-base font-semibold"), Text(p.Title)))),
		Element("nav", attrs.New().Class("flex min-h-0 flex-1 flex-col gap-2 overflow-auto").Data("sidebar", "content"), groups...),
		When(p.Footer != "", Element("div", attrs.New().Class("flex flex-col gap-2 p-2").Data("sidebar", "footer"), Text(p.Footer))),
	)

	main := Element("main", attrs.New().
		Class("relative flex min-h-svh flex-1 flex-col bg-background peer-data-[variant=inset]:min-h-[calc(100svh-theme(spacing.4))] md:peer-data-[variant=inset]:m-2 md:peer-data-[variant=inset]:ml-0 md:peer-data-[variant=inset]:rounded-xl md:peer-data-[variant=inset]:shadow"),
		append([]templ.Component{
			Element("header", attrs.New().Class("flex h-12 items-center gap-2 border-b px-4"),
				Element("button", p.TriggerAttributes(panelID),
					Icon("panel-left", ""),
					Element("span", attrs.New().Class("sr-only"), Text("Toggle Sidebar")))),
		}, children...)...)

	aside := Element("aside", p.PanelAttributes(panelID), inner)
	if p.resolved()["side"] == "right" {
		return Element("div", p.Attributes(), main, aside)
	}
	return Element("div", p.Attributes(), aside, main)
}
