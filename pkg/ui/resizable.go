package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

type Panel struct {
	Size    float64 `yaml:"size"`
	MinSize float64 `yaml:"min_size"`
	Content string  `yaml:"content"`
}

func (pn Panel) size() float64    { return finite(pn.Size) }
func (pn Panel) minSize() float64 { return clamp(pn.MinSize, 0, 100) }

// ResizableProps configures a group of panels separated by drag handles.
// Sizes are percentages of the group.
type ResizableProps struct {
	Base       `yaml:",inline"`
	Direction  string  `yaml:"direction"`
	Panels     []Panel `yaml:"panels"`
	WithHandle bool    `yaml:"with_handle"`
}

func (p ResizableProps) direction() string {
	if p.Direction == "vertical" {
		return "vertical"
	}
	return "horizontal"
}

// Sizes returns the panel sizes normalised to sum to 100. Panels without a
// size share what the sized panels leave. No panel ends below its minimum;
// the remaining panels are scaled proportionally to absorb the difference.
// When the minimums alone exceed 100 they are scaled down together.
func (p ResizableProps) Sizes() []float64 {
	n := len(p.Panels)
	if n == 0 {
		return nil
	}
	sizes := make([]float64, n)
	mins := make([]float64, n)
	var given float64
	unsized := 0
	for i, pn := range p.Panels {
		mins[i] = pn.minSize()
		if pn.size() > 0 {
			sizes[i] = pn.size()
			given += pn.size()
		} else {
			unsized++
		}
	}
	if unsized > 0 {
		share := (100 - given) / float64(unsized)
		if share < 0 {
			share = 0
		}
		for i, pn := range p.Panels {
			if pn.size() <= 0 {
				sizes[i] = share
			}
		}
	}

	var minTotal float64
	for _, m := range mins {
		minTotal += m
	}
	if minTotal >= 100 {
		for i := range sizes {
			sizes[i] = mins[i] / minTotal * 100
		}
		return sizes
	}

	pinned := make([]bool, n)
	for i := range sizes {
		if sizes[i] <= mins[i] {
			sizes[i] = mins[i]
			pinned[i] = true
		}
	}
	// Each pass pins at least one more panel or finishes.
	for range n {
		var fixed, free float64
		for i := range sizes {
			if pinned[i] {
				fixed += sizes[i]
			} else {
				free += sizes[i]
			}
		}
		if free == 0 {
			// Everything is pinned; spread the slack evenly.
			slack := (100 - fixed) / float64(n)
			for i := range sizes {
				sizes[i] += slack
			}
			break
		}
		scale := (100 - fixed) / free
		changed := false
		for i := range sizes {
			if pinned[i] {
				continue
			}
			sizes[i] *= scale
			if sizes[i] < mins[i] {
				sizes[i] = mins[i]
				pinned[i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return sizes
}

func (p ResizableProps) Attributes() attrs.Attributes {
	ctrl := controller("resizable")
	layout := "flex h-full w-full"
	if p.direction() == "vertical" {
		layout = "flex h-full w-full flex-col"
	}
	return p.finish(attrs.New().
		Class(layout).
		Data("panel-group-direction", p.direction()).
		Controller(ctrl).
		Value(ctrl, "direction", p.direction()).
		Action(
			attrs.ActionFor("pointermove@window", ctrl, "drag"),
			attrs.ActionFor("pointerup@window", ctrl, "stop"),
		))
}

func (p ResizableProps) handle(i int, sizes []float64) templ.Component {
	ctrl := controller("resizable")
	orientation := "vertical"
	if p.direction() == "vertical" {
		orientation = "horizontal"
	}
	var grip templ.Component
	if p.WithHandle {
		grip = Element("div", attrs.New().Class("z-10 flex h-4 w-3 items-center justify-center rounded-sm border bg-border"),
			Icon("grip-vertical", "h-2.5 w-2.5"))
	}
	return Element("div", attrs.New().
		Class("relative flex w-px items-center justify-center bg-border after:absolute after:inset-y-0 after:left-1/2 after:w-1 after:-translate-x-1/2 focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring focus-visible:ring-offset-1 data-[panel-group-direction=vertical]:h-px data-[panel-group-direction=vertical]:w-full").
		Role("separator").
		ARIA("orientation", orientation).
		ARIA("valuenow", formatNumber(sizes[i])).
		ARIA("valuemin", formatNumber(p.Panels[i].minSize())).
		ARIA("valuemax", formatNumber(100-p.Panels[i+1].minSize())).
		Set("tabindex", "0").
		Data("panel-group-direction", p.direction()).
		Data("index", i).
		Target(ctrl, "handle").
		Action(
			attrs.ActionFor("pointerdown", ctrl, "start"),
			attrs.ActionFor("keydown", ctrl, "nudge"),
		),
		grip)
}

func Resizable(p ResizableProps, children ...templ.Component) templ.Component {
	ctrl := controller("resizable")
	sizes := p.Sizes()
	parts := make([]templ.Component, 0, 2*len(p.Panels))
	for i, pn := range p.Panels {
		if i > 0 {
			parts = append(parts, p.handle(i-1, sizes))
		}
		var body []templ.Component
		if i < len(children) && children[i] != nil {
			body = []templ.Component{children[i]}
		} else {
			body = textOr(pn.Content, nil)
		}
		parts = append(parts, Element("div", attrs.New().
			Class("overflow-hidden").
			Set("style", "flex: "+formatNumber(sizes[i])+" 1 0px").
			Data("panel-size", formatNumber(sizes[i])).
			Data("panel-min-size", formatNumber(pn.minSize())).
			Target(ctrl, "panel"),
			body...))
	}
	return Element("div", p.Attributes(), parts...)
}
