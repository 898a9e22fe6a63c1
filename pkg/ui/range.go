package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// ProgressProps configures a progress bar. Value is clamped to [0, Max].
// A nil Value renders an indeterminate bar.
type ProgressProps struct {
	Base  `yaml:",inline"`
	Value *float64 `yaml:"value"`
	Max   float64  `yaml:"max"`
	Label string   `yaml:"label"`
}

func (p ProgressProps) max() float64 {
	if !(p.Max > 0) || math.IsInf(p.Max, 1) {
		return 100
	}
	return p.Max
}

// Percent returns the filled percentage, 0 for an indeterminate bar.
func (p ProgressProps) Percent() float64 {
	if p.Value == nil {
		return 0
	}
	return clamp(*p.Value, 0, p.max()) / p.max() * 100
}

func (p ProgressProps) Attributes() attrs.Attributes {
	a := attrs.New().
		Class("relative h-2 w-full overflow-hidden rounded-full bg-primary/20").
		Role("progressbar").
		ARIA("valuemin", 0).
		ARIA("valuemax", formatNumber(p.max())).
		SetNonEmpty("aria-label", p.Label)
	if p.Value == nil {
		a.Data("state", "indeterminate")
	} else {
		v := clamp(*p.Value, 0, p.max())
		state := "loading"
		if v >= p.max() {
			state = "complete"
		}
		a.ARIA("valuenow", formatNumber(v)).
			Data("value", formatNumber(v)).
			Data("state", state)
	}
	return p.finish(a)
}

func Progress(p ProgressProps) templ.Component {
	indicator := attrs.New().Class("h-full w-full flex-1 bg-primary transition-all")
	if p.Value == nil {
		indicator.Class("animate-pulse")
	} else {
		indicator.Set("style", fmt.Sprintf("transform: translateX(-%s%%)", formatNumber(100-p.Percent())))
	}
	return Element("div", p.Attributes(), Element("div", indicator))
}

// SliderProps configures a single-thumb slider. Value is snapped to Step and
// clamped to [Min, Max].
type SliderProps struct {
	Base        `yaml:",inline"`
	Name        string  `yaml:"name"`
	Min         float64 `yaml:"min"`
	Max         float64 `yaml:"max"`
	Step        float64 `yaml:"step"`
	Value       float64 `yaml:"value"`
	Orientation string  `yaml:"orientation"`
	Disabled    bool    `yaml:"disabled"`
	Label       string  `yaml:"label"`
}

func (p SliderProps) bounds() (lo, hi, step float64) {
	lo, hi = finite(p.Min), finite(p.Max)
	if hi == 0 && lo == 0 {
		hi = 100
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	step = finite(p.Step)
	if step <= 0 {
		step = 1
	}
	return lo, hi, step
}

// Current returns the value snapped to the nearest step from Min and clamped
// to the range.
func (p SliderProps) Current() float64 {
	lo, hi, step := p.bounds()
	v := clamp(p.Value, lo, hi)
	snapped := lo + math.Round((v-lo)/step)*step
	// Rounding the last step can overshoot the upper bound.
	if snapped > hi {
		snapped -= step
	}
	// Trim float noise such as 0.30000000000000004.
	return math.Round(snapped*1e9) / 1e9
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Percent returns the position of the thumb along the track.
func (p SliderProps) Percent() float64 {
	lo, hi, _ := p.bounds()
	if hi == lo {
		return 0
	}
	return (p.Current() - lo) / (hi - lo) * 100
}

func (p SliderProps) vertical() bool { return p.Orientation == "vertical" }

func (p SliderProps) Attributes() attrs.Attributes {
	ctrl := controller("slider")
	lo, hi, step := p.bounds()
	orientation := "horizontal"
	layout := "relative flex w-full touch-none select-none items-center"
	if p.vertical() {
		orientation = "vertical"
		layout = "relative flex h-full min-h-44 w-auto touch-none select-none flex-col items-center"
	}
	a := attrs.New().
		Class(layout).
		Data("orientation", orientation).
		SetIf(p.Disabled, "data-disabled", "").
		Controller(ctrl).
		Value(ctrl, "min", formatNumber(lo)).
		Value(ctrl, "max", formatNumber(hi)).
		Value(ctrl, "step", formatNumber(step)).
		Value(ctrl, "value", formatNumber(p.Current())).
		Value(ctrl, "orientation", orientation).
		Action(
			attrs.ActionFor("pointerdown", ctrl, "start"),
			attrs.ActionFor("pointermove@window", ctrl, "drag"),
			attrs.ActionFor("pointerup@window", ctrl, "end"),
		)
	return p.finish(a)
}

func (p SliderProps) thumbAttributes() attrs.Attributes {
	ctrl := controller("slider")
	lo, hi, _ := p.bounds()
	pos := "left: calc(" + formatNumber(p.Percent()) + "% - 8px)"
	if p.vertical() {
		pos = "bottom: calc(" + formatNumber(p.Percent()) + "% - 8px)"
	}
	orientation, tabindex := "horizontal", "0"
	if p.vertical() {
		orientation = "vertical"
	}
	if p.Disabled {
		tabindex = "-1"
	}
	return attrs.New().
		Class("absolute block h-4 w-4 rounded-full border border-primary/50 bg-background shadow transition-colors focus-visible:outline-none focus-visible:ring-1 focus-visible:ring-ring disabled:pointer-events-none disabled:opacity-50").
		Role("slider").
		Set("tabindex", tabindex).
		ARIA("valuemin", formatNumber(lo)).
		ARIA("valuemax", formatNumber(hi)).
		ARIA("valuenow", formatNumber(p.Current())).
		ARIA("orientation", orientation).
		SetNonEmpty("aria-label", p.Label).
		SetIf(p.Disabled, "aria-disabled", "true").
		Set("style", pos).
		Target(ctrl, "thumb").
		Action(attrs.ActionFor("keydown", ctrl, "step"))
}

func Slider(p SliderProps) templ.Component {
	ctrl := controller("slider")
	track := "relative h-1.5 w-full grow overflow-hidden rounded-full bg-primary/20"
	rangeStyle := "width: " + formatNumber(p.Percent()) + "%"
	if p.vertical() {
		track = "relative h-full w-1.5 grow overflow-hidden rounded-full bg-primary/20"
		rangeStyle = "height: " + formatNumber(p.Percent()) + "%; bottom: 0"
	}
	rangeClasses := "absolute h-full bg-primary"
	if p.vertical() {
		rangeClasses = "absolute w-full bg-primary"
	}

	var input templ.Component
	if p.Name != "" {
		input = Element("input", attrs.New().
			Set("type", "hidden").
			Set("name", p.Name).
			Set("value", formatNumber(p.Current())).
			Target(ctrl, "input"))
	}

	return Element("span", p.Attributes(),
		Element("span", attrs.New().Class(track).Target(ctrl, "track"),
			Element("span", attrs.New().Class(rangeClasses).Set("style", rangeStyle).Target(ctrl, "range")),
		),
		Element("span", p.thumbAttributes()),
		input,
	)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
