package server

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/tailblocks/internal/catalog"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/pkg/attrs"
	"github.com/conneroisu/tailblocks/pkg/ui"
)

const liveReloadScript = `(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  function connect() {
    var ws = new WebSocket(proto + "//" + location.host + "/ws");
    ws.onmessage = function (event) {
      var msg = JSON.parse(event.data);
      if (msg.type === "reload") { location.reload(); }
      if (msg.type === "error") { console.error(msg.target + ": " + msg.content); }
    };
    ws.onclose = function () { setTimeout(connect, 1000); };
  }
  connect();
})();`

// page wraps content in the gallery shell: the document head and a sidebar
// listing every component by category.
func (s *PreviewServer) page(title, active string, content ...templ.Component) templ.Component {
	head := ui.Element("head", attrs.New(),
		ui.Element("meta", attrs.New().Set("charset", "utf-8")),
		ui.Element("meta", attrs.New().Set("name", "viewport").Set("content", "width=device-width, initial-scale=1")),
		ui.Element("title", attrs.New(), ui.Text(title+" · tailblocks")),
		ui.Element("script", attrs.New().Set("src", "https://cdn.tailwindcss.com")),
		ui.Element("script", attrs.New(), templ.Raw(liveReloadScript)),
	)

	shell := ui.Sidebar(ui.SidebarProps{
		Base:        ui.Base{ID: "gallery"},
		Title:       "tailblocks",
		Collapsible: "icon",
		Groups:      s.navigation(active),
		Footer:      fmt.Sprintf("%d components", s.registry.Count()),
	}, ui.Element("div", attrs.New().Class("flex flex-col gap-6 p-6"), content...))

	return ui.Group(
		templ.Raw("<!DOCTYPE html>"),
		ui.Element("html", attrs.New().Set("lang", "en"),
			head,
			ui.Element("body", attrs.New().Class("bg-background text-foreground antialiased"), shell)),
	)
}

// navigation groups the registry by category in gallery order. Components
// with an unknown category are listed last under "Other".
func (s *PreviewServer) navigation(active string) []ui.SidebarGroup {
	known := make(map[string]bool, len(catalog.CategoryOrder))
	for _, category := range catalog.CategoryOrder {
		known[category] = true
	}

	byCategory := make(map[string][]ui.SidebarItem)
	var rest []ui.SidebarItem
	for _, c := range s.registry.List() {
		item := ui.SidebarItem{
			Label:  c.Title,
			Href:   "/component/" + c.Name,
			Active: c.Name == active,
			Badge:  badgeCount(len(c.Examples)),
		}
		if known[c.Category] {
			byCategory[c.Category] = append(byCategory[c.Category], item)
		} else {
			rest = append(rest, item)
		}
	}

	groups := make([]ui.SidebarGroup, 0, len(byCategory)+1)
	for _, category := range catalog.CategoryOrder {
		if items, ok := byCategory[category]; ok {
			groups = append(groups, ui.SidebarGroup{Label: catalog.Title(category), Items: items})
		}
	}
	if len(rest) > 0 {
		groups = append(groups, ui.SidebarGroup{Label: "Other", Items: rest})
	}
	return groups
}

func badgeCount(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprint(n)
}

// indexPage shows one card per component.
func (s *PreviewServer) indexPage() templ.Component {
	components := s.registry.List()
	cards := make([]templ.Component, 0, len(components))
	for _, c := range components {
		cards = append(cards, ui.Element("a", attrs.New().Set("href", "/component/"+c.Name).Class("block"),
			ui.Card(ui.CardProps{
				Title:       c.Title,
				Description: c.Description,
				Footer: []templ.Component{
					ui.Badge(ui.BadgeProps{Variant: ui.BadgeSecondary, Text: c.Category}),
					ui.When(len(c.Examples) > 0, ui.Badge(ui.BadgeProps{
						Base:    ui.Base{Class: "ml-2"},
						Variant: ui.BadgeOutline,
						Text:    fmt.Sprintf("%d examples", len(c.Examples)),
					})),
				},
			})))
	}

	return s.page("Components", "",
		ui.Element("h1", attrs.New().Class("text-3xl font-bold tracking-tight"), ui.Text("Components")),
		ui.Element("div", attrs.New().Class("grid grid-cols-1 gap-4 md:grid-cols-2 lg:grid-cols-3"), cards...),
	)
}

// componentPage renders every example of c. An example that fails to build
// shows the error in place of its preview.
func (s *PreviewServer) componentPage(c *registry.ComponentInfo) templ.Component {
	header := ui.Element("div", attrs.New().Class("flex flex-col gap-2"),
		ui.Element("h1", attrs.New().Class("text-3xl font-bold tracking-tight"), ui.Text(c.Title)),
		ui.When(c.Description != "", ui.Element("p", attrs.New().Class("text-muted-foreground"), ui.Text(c.Description))),
		ui.Element("div", attrs.New().Class("flex gap-2"),
			ui.Badge(ui.BadgeProps{Variant: ui.BadgeSecondary, Text: c.Category}),
			ui.When(c.Controller != "", ui.Badge(ui.BadgeProps{Variant: ui.BadgeOutline, Text: c.Controller})),
		),
	)

	parts := []templ.Component{header}
	if len(c.Parameters) > 0 {
		parts = append(parts, parametersTable(c.Parameters))
	}
	if len(c.Examples) == 0 {
		parts = append(parts, ui.Alert(ui.AlertProps{
			Title:       "No examples",
			Description: "Add a fixture file for " + c.Name + " to preview it here.",
			Icon:        "info",
		}))
	}
	for _, ex := range c.Examples {
		parts = append(parts, s.exampleCard(c.Name, ex))
	}

	return s.page(c.Title, c.Name, parts...)
}

func (s *PreviewServer) exampleCard(component string, ex registry.Example) templ.Component {
	preview, err := s.renderer.BuildExample(component, ex.Name)
	if err != nil {
		preview = ui.Alert(ui.AlertProps{
			Variant:     ui.AlertDestructive,
			Title:       "Render failed",
			Description: err.Error(),
			Icon:        "alert-circle",
		})
	}

	footer := []templ.Component{
		ui.Button(ui.ButtonProps{
			Variant: ui.ButtonOutline,
			Size:    ui.ButtonSizeSm,
			Href:    "/render/" + component + "?example=" + url.QueryEscape(ex.Name),
			Text:    "Open fragment",
		}),
	}

	return ui.Card(ui.CardProps{
		Base:        ui.Base{ID: "example-" + attrs.Kebab(ex.Name)},
		Title:       ex.Name,
		Description: ex.Description,
		Footer:      footer,
	},
		ui.Element("div", attrs.New().Class("rounded-md border p-6"), preview),
		propsBlock(ex.Props),
	)
}

func parametersTable(params []registry.ParameterInfo) templ.Component {
	rows := make([]ui.TableRow, 0, len(params))
	for _, p := range params {
		optional := "no"
		if p.Optional {
			optional = "yes"
		}
		rows = append(rows, ui.TableRow{Cells: []string{p.Name, p.Type, optional}})
	}
	return ui.Table(ui.TableProps{
		Caption: "Props",
		Headers: []string{"Name", "Type", "Optional"},
		Rows:    rows,
	})
}

func isEmptyProps(n yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.MappingNode && len(n.Content) == 0)
}

// propsBlock shows the example's props as YAML, or nothing when it has none.
func propsBlock(n yaml.Node) templ.Component {
	if isEmptyProps(n) {
		return nil
	}
	out, err := yaml.Marshal(&n)
	if err != nil {
		return nil
	}
	return ui.Element("pre", attrs.New().Class("mt-4 overflow-x-auto rounded-md bg-muted p-4 text-xs"),
		ui.Element("code", attrs.New().Class("language-yaml"), ui.Text(strings.TrimRight(string(out), "\n"))))
}
