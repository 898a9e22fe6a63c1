// Package catalog registers every pkg/ui component with a registry and ships
// the built-in example fixtures.
package catalog

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/pkg/ui"
)

// Categories, in gallery order.
const (
	CategoryActions    = "actions"
	CategoryForms      = "forms"
	CategoryDisplay    = "display"
	CategoryFeedback   = "feedback"
	CategoryNavigation = "navigation"
	CategoryOverlays   = "overlays"
	CategoryLayout     = "layout"
)

// CategoryOrder lists categories as the gallery shows them.
var CategoryOrder = []string{
	CategoryActions, CategoryForms, CategoryDisplay, CategoryFeedback,
	CategoryNavigation, CategoryOverlays, CategoryLayout,
}

//go:embed fixtures/*.yml
var embedded embed.FS

// Fixtures returns the built-in example fixtures, rooted at the fixture
// directory.
func Fixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err)
	}
	return sub
}

// Title turns a component name such as "alert-dialog" into "Alert Dialog".
func Title(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

type entry struct {
	category    string
	description string
	controller  string
}

func meta(name string, e entry) registry.ComponentInfo {
	return registry.ComponentInfo{
		Name:        name,
		Title:       Title(name),
		Category:    e.category,
		Description: e.description,
		Controller:  e.controller,
	}
}

func leaf[P any](render func(P) templ.Component) func(P, []templ.Component) templ.Component {
	return func(p P, _ []templ.Component) templ.Component { return render(p) }
}

func parent[P any](render func(P, ...templ.Component) templ.Component) func(P, []templ.Component) templ.Component {
	return func(p P, children []templ.Component) templ.Component { return render(p, children...) }
}

// Components returns the definitions of every built-in component.
func Components() []*registry.ComponentInfo {
	return []*registry.ComponentInfo{
		registry.Define(meta("accordion", entry{CategoryLayout, "Vertically stacked headings that each reveal a section of content.", "ui--accordion"}), leaf(ui.Accordion)),
		registry.Define(meta("alert", entry{CategoryFeedback, "Callout for user attention.", ""}), parent(ui.Alert)),
		registry.Define(meta("alert-dialog", entry{CategoryOverlays, "Modal dialog that interrupts with important content and expects a response.", "ui--dialog"}), leaf(ui.AlertDialog)),
		registry.Define(meta("aspect-ratio", entry{CategoryLayout, "Displays content within a desired ratio.", ""}), parent(ui.AspectRatio)),
		registry.Define(meta("avatar", entry{CategoryDisplay, "Image element with a fallback for representing the user.", "ui--avatar"}), leaf(ui.Avatar)),
		registry.Define(meta("badge", entry{CategoryDisplay, "Displays a badge or a component that looks like a badge.", ""}), parent(ui.Badge)),
		registry.Define(meta("breadcrumb", entry{CategoryNavigation, "Path to the current resource using a hierarchy of links.", ""}), leaf(ui.Breadcrumb)),
		registry.Define(meta("button", entry{CategoryActions, "Displays a button or a component that looks like a button.", ""}), parent(ui.Button)),
		registry.Define(meta("calendar", entry{CategoryForms, "Date field component that allows users to pick a date.", "ui--calendar"}), leaf(ui.Calendar)),
		registry.Define(meta("card", entry{CategoryDisplay, "Displays a card with header, content, and footer.", ""}), parent(ui.Card)),
		registry.Define(meta("checkbox", entry{CategoryForms, "Control that allows the user to toggle between checked and not checked.", "ui--checkbox"}), leaf(ui.Checkbox)),
		registry.Define(meta("collapsible", entry{CategoryLayout, "Interactive component which expands or collapses a panel.", "ui--collapsible"}), parent(ui.Collapsible)),
		registry.Define(meta("combobox", entry{CategoryForms, "Autocomplete input with a list of suggestions.", "ui--combobox"}), leaf(ui.Combobox)),
		registry.Define(meta("dialog", entry{CategoryOverlays, "Window overlaid on the primary window, rendering the content underneath inert.", "ui--dialog"}), parent(ui.Dialog)),
		registry.Define(meta("dropdown-menu", entry{CategoryNavigation, "Menu of actions or functions triggered by a button.", "ui--dropdown-menu"}), leaf(ui.DropdownMenu)),
		registry.Define(meta("hover-card", entry{CategoryOverlays, "Preview of content available behind a link.", "ui--hover-card"}), parent(ui.HoverCard)),
		registry.Define(meta("input", entry{CategoryForms, "Displays a form input field.", ""}), leaf(ui.Input)),
		registry.Define(meta("kbd", entry{CategoryDisplay, "Displays keyboard input.", ""}), leaf(ui.Kbd)),
		registry.Define(meta("label", entry{CategoryForms, "Renders an accessible label associated with controls.", ""}), parent(ui.Label)),
		registry.Define(meta("pagination", entry{CategoryNavigation, "Pagination with page navigation, next and previous links.", ""}), leaf(ui.Pagination)),
		registry.Define(meta("popover", entry{CategoryOverlays, "Displays rich content in a portal, triggered by a button.", "ui--popover"}), parent(ui.Popover)),
		registry.Define(meta("progress", entry{CategoryFeedback, "Indicator showing the completion progress of a task.", ""}), leaf(ui.Progress)),
		registry.Define(meta("radio-group", entry{CategoryForms, "Set of checkable buttons where no more than one can be checked at a time.", "ui--radio-group"}), leaf(ui.RadioGroup)),
		registry.Define(meta("resizable", entry{CategoryLayout, "Resizable panel groups and layouts.", "ui--resizable"}), parent(ui.Resizable)),
		registry.Define(meta("scroll-area", entry{CategoryLayout, "Augments native scroll functionality with custom styling.", ""}), parent(ui.ScrollArea)),
		registry.Define(meta("select", entry{CategoryForms, "Displays a list of options for the user to pick from.", "ui--select"}), leaf(ui.Select)),
		registry.Define(meta("separator", entry{CategoryLayout, "Visually or semantically separates content.", ""}), leaf(ui.Separator)),
		registry.Define(meta("sheet", entry{CategoryOverlays, "Dialog that slides in from an edge of the screen.", "ui--sheet"}), parent(ui.Sheet)),
		registry.Define(meta("sidebar", entry{CategoryNavigation, "Composable, collapsible application sidebar.", "ui--sidebar"}), parent(ui.Sidebar)),
		registry.Define(meta("skeleton", entry{CategoryFeedback, "Placeholder shown while content is loading.", ""}), leaf(ui.Skeleton)),
		registry.Define(meta("slider", entry{CategoryForms, "Input where the user selects a value from within a given range.", "ui--slider"}), leaf(ui.Slider)),
		registry.Define(meta("switch", entry{CategoryForms, "Control that allows the user to toggle between on and off.", "ui--switch"}), leaf(ui.Switch)),
		registry.Define(meta("table", entry{CategoryDisplay, "Responsive table component.", ""}), leaf(ui.Table)),
		registry.Define(meta("tabs", entry{CategoryNavigation, "Layered sections of content displayed one at a time.", "ui--tabs"}), leaf(ui.Tabs)),
		registry.Define(meta("textarea", entry{CategoryForms, "Displays a form textarea.", ""}), leaf(ui.Textarea)),
		registry.Define(meta("toast", entry{CategoryFeedback, "Succinct message that is displayed temporarily.", "ui--toast"}), leaf(ui.Toast)),
		registry.Define(meta("toaster", entry{CategoryFeedback, "Live region stacking toasts at a screen corner.", "ui--toast"}), leaf(ui.Toaster)),
		registry.Define(meta("toggle", entry{CategoryActions, "Two-state button that can be either on or off.", "ui--toggle"}), parent(ui.Toggle)),
		registry.Define(meta("toggle-group", entry{CategoryActions, "Set of two-state buttons that can be toggled on or off.", "ui--toggle"}), leaf(ui.ToggleGroup)),
		registry.Define(meta("tooltip", entry{CategoryOverlays, "Popup that displays information related to an element on hover or focus.", "ui--tooltip"}), parent(ui.Tooltip)),
	}
}

// Register adds every built-in component to r.
func Register(r *registry.ComponentRegistry) {
	for _, c := range Components() {
		r.Register(c)
	}
}

// New returns a registry holding the built-in components, without examples.
func New() *registry.ComponentRegistry {
	r := registry.NewComponentRegistry()
	Register(r)
	return r
}
