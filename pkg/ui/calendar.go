package ui

import (
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date     time.Time
	Outside  bool
	Today    bool
	Selected bool
	Disabled bool
}

// Key returns the ISO date used as the cell's value.
func (d CalendarDay) Key() string { return d.Date.Format(dateLayout) }

// CalendarMonth is a computed month grid with its navigation targets.
type CalendarMonth struct {
	Month        time.Time
	Weeks        [][]CalendarDay
	Prev         time.Time
	Next         time.Time
	PrevDisabled bool
	NextDisabled bool
}

// CalendarProps configures a month calendar. Dates are ISO strings
// (2006-01-02, months 2006-01); unparsable values are ignored. WeekStart is
// 0 for Sunday through 6 for Saturday. Today defaults to the current date.
type CalendarProps struct {
	Base        `yaml:",inline"`
	Month       string `yaml:"month"`
	Selected    string `yaml:"selected"`
	Today       string `yaml:"today"`
	Min         string `yaml:"min"`
	Max         string `yaml:"max"`
	WeekStart   int    `yaml:"week_start"`
	HideOutside bool   `yaml:"hide_outside"`
	FixedWeeks  bool   `yaml:"fixed_weeks"`
	Name        string `yaml:"name"`
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (p CalendarProps) today() time.Time {
	if t, ok := parseDate(p.Today); ok {
		return t
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (p CalendarProps) weekStart() time.Weekday {
	if p.WeekStart < 0 || p.WeekStart > 6 {
		return time.Sunday
	}
	return time.Weekday(p.WeekStart)
}

// month returns the first day of the displayed month: Month, else the
// selected date's month, else today's.
func (p CalendarProps) month() time.Time {
	ref := p.today()
	if m, err := time.Parse(monthLayout, strings.TrimSpace(p.Month)); err == nil {
		ref = m
	} else if s, ok := parseDate(p.Selected); ok {
		ref = s
	}
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (p CalendarProps) disabled(d time.Time) bool {
	if lo, ok := parseDate(p.Min); ok && d.Before(lo) {
		return true
	}
	if hi, ok := parseDate(p.Max); ok && d.After(hi) {
		return true
	}
	return false
}

// Grid computes the weeks of the displayed month. Each week has seven days
// beginning on WeekStart; leading and trailing days from adjacent months are
// flagged Outside.
func (p CalendarProps) Grid() CalendarMonth {
	first := p.month()
	next := first.AddDate(0, 1, 0)
	prev := first.AddDate(0, -1, 0)
	today := p.today()
	selected, hasSelected := parseDate(p.Selected)

	offset := (int(first.Weekday()) - int(p.weekStart()) + 7) % 7
	days := next.AddDate(0, 0, -1).Day()
	weeks := (offset + days + 6) / 7
	if p.FixedWeeks {
		weeks = 6
	}

	start := first.AddDate(0, 0, -offset)
	grid := make([][]CalendarDay, weeks)
	for w := range grid {
		grid[w] = make([]CalendarDay, 7)
		for i := range grid[w] {
			d := start.AddDate(0, 0, w*7+i)
			grid[w][i] = CalendarDay{
				Date:     d,
				Outside:  d.Month() != first.Month(),
				Today:    sameDay(d, today),
				Selected: hasSelected && sameDay(d, selected),
				Disabled: p.disabled(d),
			}
		}
	}

	m := CalendarMonth{Month: first, Weeks: grid, Prev: prev, Next: next}
	if lo, ok := parseDate(p.Min); ok && first.AddDate(0, 0, -1).Before(lo) {
		m.PrevDisabled = true
	}
	if hi, ok := parseDate(p.Max); ok && next.After(hi) {
		m.NextDisabled = true
	}
	return m
}

// FocusDay returns the key of the single day in the tab order: the selected
// day, else today, else the first enabled day, each only when inside the
// displayed month.
func (m CalendarMonth) FocusDay() string {
	var today, first string
	for _, week := range m.Weeks {
		for _, d := range week {
			if d.Outside || d.Disabled {
				continue
			}
			if d.Selected {
				return d.Key()
			}
			if d.Today && today == "" {
				today = d.Key()
			}
			if first == "" {
				first = d.Key()
			}
		}
	}
	if today != "" {
		return today
	}
	return first
}

func (p CalendarProps) Attributes() attrs.Attributes {
	ctrl := controller("calendar")
	m := p.Grid()
	return p.finish(attrs.New().
		Class("p-3").
		Controller(ctrl).
		Value(ctrl, "month", m.Month.Format(monthLayout)).
		Value(ctrl, "selected", p.Selected).
		Value(ctrl, "min", p.Min).
		Value(ctrl, "max", p.Max).
		Value(ctrl, "weekStart", int(p.weekStart())))
}

func (p CalendarProps) dayAttributes(d CalendarDay, focus string) attrs.Attributes {
	ctrl := controller("calendar")
	tabindex := "-1"
	if d.Key() == focus {
		tabindex = "0"
	}
	a := attrs.New().
		Class(ButtonClasses(ButtonGhost, ButtonSizeIcon), "h-8 w-8 p-0 font-normal aria-selected:opacity-100").
		Set("type", "button").
		Set("tabindex", tabindex).
		Data("day", d.Key()).
		ARIA("label", d.Date.Format("Monday, January 2, 2006")).
		Target(ctrl, "day").
		Action(
			attrs.ActionFor("click", ctrl, "select"),
			attrs.ActionFor("keydown", ctrl, "navigate"),
		)
	if d.Selected {
		a.ARIA("selected", true).
			Data("selected", "").
			Class("bg-primary text-primary-foreground hover:bg-primary hover:text-primary-foreground focus:bg-primary focus:text-primary-foreground")
	}
	if d.Today {
		a.ARIA("current", "date").Data("today", "")
		if !d.Selected {
			a.Class("bg-accent text-accent-foreground")
		}
	}
	if d.Outside {
		a.Data("outside", "").Class("text-muted-foreground opacity-50")
	}
	if d.Disabled {
		a.Set("disabled", true).Data("disabled", "").Class("text-muted-foreground opacity-50")
	}
	return a
}

func (p CalendarProps) navButton(label, icon, method string, target time.Time, disabled bool) templ.Component {
	ctrl := controller("calendar")
	return Element("button", attrs.New().
		Class(ButtonClasses(ButtonOutline, ButtonSizeIcon), "h-7 w-7 bg-transparent p-0 opacity-50 hover:opacity-100").
		Set("type", "button").
		ARIA("label", label).
		Data("month", target.Format(monthLayout)).
		SetIf(disabled, "disabled", true).
		Target(ctrl, method).
		Action(attrs.ActionFor("click", ctrl, method)),
		Icon(icon, "h-4 w-4"))
}

var weekdayAbbr = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func Calendar(p CalendarProps) templ.Component {
	root := p.idOr("calendar")
	p.ID = root
	ctrl := controller("calendar")
	m := p.Grid()
	focus := m.FocusDay()
	caption := m.Month.Format("January 2006")
	captionID := attrs.Suffix(root, "caption")

	head := make([]templ.Component, 7)
	for i := range head {
		wd := (int(p.weekStart()) + i) % 7
		head[i] = Element("th", attrs.New().
			Class("w-8 rounded-md text-[0.8rem] font-normal text-muted-foreground").
			Set("scope", "col").
			ARIA("label", time.Weekday(wd).String()),
			Text(weekdayAbbr[wd]))
	}

	rows := make([]templ.Component, 0, len(m.Weeks))
	for _, week := range m.Weeks {
		cells := make([]templ.Component, 0, 7)
		for _, d := range week {
			cell := attrs.New().
				Class("relative p-0 text-center text-sm focus-within:relative focus-within:z-20").
				Role("gridcell")
			if d.Outside && p.HideOutside {
				cells = append(cells, Element("td", cell))
				continue
			}
			cell.SetIf(d.Selected, "aria-selected", "true")
			cells = append(cells, Element("td", cell,
				Element("button", p.dayAttributes(d, focus), Text(d.Date.Format("2")))))
		}
		rows = append(rows, Element("tr", attrs.New().Class("mt-2 flex w-full"), cells...))
	}

	var input templ.Component
	if p.Name != "" {
		input = Element("input", attrs.New().
			Set("type", "hidden").
			Set("name", p.Name).
			Set("value", p.Selected).
			Target(ctrl, "input"))
	}

	return Element("div", p.Attributes(),
		Element("div", attrs.New().Class("relative flex items-center justify-center pt-1"),
			Element("div", attrs.New().
				Class("text-sm font-medium").
				Set("id", captionID).
				ARIA("live", "polite").
				Target(ctrl, "caption"),
				Text(caption)),
			Element("div", attrs.New().Class("flex items-center space-x-1"),
				Element("span", attrs.New().Class("absolute left-1"),
					p.navButton("Go to previous month", "chevron-left", "previous", m.Prev, m.PrevDisabled)),
				Element("span", attrs.New().Class("absolute right-1"),
					p.navButton("Go to next month", "chevron-right", "next", m.Next, m.NextDisabled)),
			),
		),
		Element("table", attrs.New().
			Class("mt-4 w-full border-collapse space-y-1").
			Role("grid").
			ARIA("labelledby", captionID),
			Element("thead", attrs.New(), Element("tr", attrs.New().Class("flex"), head...)),
			Element("tbody", attrs.New(), rows...)),
		input)
}
