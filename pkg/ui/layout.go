package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// SeparatorProps configures a horizontal or vertical rule. A decorative
// separator is hidden from assistive technology with role="none".
type SeparatorProps struct {
	Base        `yaml:",inline"`
	Orientation string `yaml:"orientation"`
	Decorative  *bool  `yaml:"decorative"`
}

func (p SeparatorProps) orientation() string {
	if p.Orientation == "vertical" {
		return "vertical"
	}
	return "horizontal"
}

func (p SeparatorProps) decorative() bool {
	return p.Decorative == nil || *p.Decorative
}

func (p SeparatorProps) Attributes() attrs.Attributes {
	size := "h-[1px] w-full"
	if p.orientation() == "vertical" {
		size = "h-full w-[1px]"
	}
	a := attrs.New().
		Class("shrink-0 bg-border", size).
		Data("orientation", p.orientation())
	if p.decorative() {
		a.Role("none")
	} else {
		a.Role("separator").ARIA("orientation", p.orientation())
	}
	return p.finish(a)
}

func Separator(p SeparatorProps) templ.Component {
	return Element("div", p.Attributes())
}

// SkeletonProps configures a loading placeholder.
type SkeletonProps struct {
	Base `yaml:",inline"`
}

func (p SkeletonProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().Class("animate-pulse rounded-md bg-primary/10"))
}

func Skeleton(p SkeletonProps) templ.Component {
	return Element("div", p.Attributes())
}

// AspectRatioProps keeps its content at Ratio (width / height). Non-positive
// ratios fall back to 1.
type AspectRatioProps struct {
	Base  `yaml:",inline"`
	Ratio float64 `yaml:"ratio"`
}

func (p AspectRatioProps) ratio() float64 {
	if p.Ratio <= 0 {
		return 1
	}
	return p.Ratio
}

// PaddingPercent is the bottom padding that produces the ratio.
func (p AspectRatioProps) PaddingPercent() float64 {
	return 100 / p.ratio()
}

func (p AspectRatioProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().
		Class("relative w-full").
		Set("style", "padding-bottom: "+formatNumber(p.PaddingPercent())+"%").
		Data("ratio", formatNumber(p.ratio())))
}

func AspectRatio(p AspectRatioProps, children ...templ.Component) templ.Component {
	return Element("div", p.Attributes(),
		Element("div", attrs.New().Class("absolute inset-0"), children...))
}

// ScrollAreaProps configures a scrollable region with styled scrollbars.
type ScrollAreaProps struct {
	Base        `yaml:",inline"`
	Orientation string `yaml:"orientation"`
	Height      string `yaml:"height"`
	Label       string `yaml:"label"`
}

func (p ScrollAreaProps) Attributes() attrs.Attributes {
	return p.finish(attrs.New().
		Class("relative overflow-hidden").
		Data("orientation", orDefault(p.Orientation, "vertical")))
}

func (p ScrollAreaProps) viewportAttributes() attrs.Attributes {
	overflow := "overflow-y-auto overflow-x-hidden"
	switch p.Orientation {
	case "horizontal":
		overflow = "overflow-x-auto overflow-y-hidden"
	case "both":
		overflow = "overflow-auto"
	}
	a := attrs.New().
		Class("h-full w-full rounded-[inherit]", overflow, "[scrollbar-width:thin]").
		Set("tabindex", "0").
		SetNonEmpty("aria-label", p.Label)
	if p.Height != "" {
		a.Set("style", "max-height: "+p.Height)
	}
	return a
}

func ScrollArea(p ScrollAreaProps, children ...templ.Component) templ.Component {
	return Element("div", p.Attributes(),
		Element("div", p.viewportAttributes(), children...))
}

// AvatarProps configures an avatar image with a text fallback shown until the
// image loads or when it fails.
type AvatarProps struct {
	Base     `yaml:",inline"`
	Src      string `yaml:"src"`
	Alt      string `yaml:"alt"`
	Fallback string `yaml:"fallback"`
	Size     string `yaml:"size"`
}

var avatarSizes = map[string]string{
	"sm":      "h-8 w-8",
	"default": "h-10 w-10",
	"lg":      "h-14 w-14",
}

func (p AvatarProps) Attributes() attrs.Attributes {
	ctrl := controller("avatar")
	size, ok := avatarSizes[p.Size]
	if !ok {
		size = avatarSizes["default"]
	}
	status := "error"
	if p.Src != "" {
		status = "loading"
	}
	return p.finish(attrs.New().
		Class("relative flex shrink-0 overflow-hidden rounded-full", size).
		Data("status", status).
		Controller(ctrl))
}

func Avatar(p AvatarProps) templ.Component {
	ctrl := controller("avatar")
	var img templ.Component
	if p.Src != "" {
		img = Element("img", attrs.New().
			Class("aspect-square h-full w-full").
			Set("src", p.Src).
			Set("alt", p.Alt).
			Target(ctrl, "image").
			Action(
				attrs.ActionFor("load", ctrl, "loaded"),
				attrs.ActionFor("error", ctrl, "failed"),
			))
	}
	fallback := Element("span", attrs.New().
		Class("flex h-full w-full items-center justify-center rounded-full bg-muted").
		Target(ctrl, "fallback"),
		Text(initials(orDefault(p.Fallback, p.Alt))))
	return Element("span", p.Attributes(), img, fallback)
}

// initials returns up to two leading letters, one per word, or the text as
// given when it is already short.
func initials(name string) string {
	var out []rune
	inWord := false
	for _, r := range name {
		if r == ' ' || r == '-' || r == '.' {
			inWord = false
			continue
		}
		if !inWord {
			out = append(out, r)
			inWord = true
			if len(out) == 2 {
				break
			}
		}
	}
	if len([]rune(name)) <= 2 {
		return name
	}
	return string(out)
}
