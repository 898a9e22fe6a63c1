package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

type TableRow struct {
	Cells    []string `yaml:"cells"`
	Selected bool     `yaml:"selected"`
}

// TableProps configures a data table. Selected rows carry
// data-state="selected" and aria-selected.
type TableProps struct {
	Base    `yaml:",inline"`
	Caption string     `yaml:"caption"`
	Headers []string   `yaml:"headers"`
	Rows    []TableRow `yaml:"rows"`
	Footer  []string   `yaml:"footer"`
}

func (p TableProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().Class("w-full caption-bottom text-sm"))
}

func (p TableProps) rowAttributes(r TableRow) attrs.Attributes {
	a := attrs.New().Class("border-b transition-colors hover:bg-muted/50 data-[state=selected]:bg-muted")
	if r.Selected {
		a.Data("state", "selected").ARIA("selected", true)
	}
	return a
}

func Table(p TableProps) templ.Component {
	cell := func(tag, class, text string) templ.Component {
		return Element(tag, attrs.New().Class(class), Text(text))
	}
	const thClass = "h-10 px-2 text-left align-middle font-medium text-muted-foreground [&:has([role=checkbox])]:pr-0"
	const tdClass = "p-2 align-middle [&:has([role=checkbox])]:pr-0"

	var parts []templ.Component
	if p.Caption != "" {
		parts = append(parts, cell("caption", "mt-4 text-sm text-muted-foreground", p.Caption))
	}
	if len(p.Headers) > 0 {
		hs := make([]templ.Component, 0, len(p.Headers))
		for _, h := range p.Headers {
			hs = append(hs, Element("th", attrs.New().Class(thClass).Set("scope", "col"), Text(h)))
		}
		parts = append(parts, Element("thead", attrs.New().Class("[&_tr]:border-b"),
			Element("tr", attrs.New().Class("border-b transition-colors"), hs...)))
	}
	rows := make([]templ.Component, 0, len(p.Rows))
	for _, r := range p.Rows {
		cs := make([]templ.Component, 0, len(r.Cells))
		for _, c := range r.Cells {
			cs = append(cs, cell("td", tdClass, c))
		}
		rows = append(rows, Element("tr", p.rowAttributes(r), cs...))
	}
	parts = append(parts, Element("tbody", attrs.New().Class("[&_tr:last-child]:border-0"), rows...))
	if len(p.Footer) > 0 {
		fs := make([]templ.Component, 0, len(p.Footer))
		for _, f := range p.Footer {
			fs = append(fs, cell("td", tdClass, f))
		}
		parts = append(parts, Element("tfoot", attrs.New().Class("border-t bg-muted/50 font-medium [&>tr]:last:border-b-0"),
			Element("tr", attrs.New().Class("border-b transition-colors"), fs...)))
	}
	return Element("div", attrs.New().Class("relative w-full overflow-auto"),
		Element("table", p.Attributes(), parts...))
}
