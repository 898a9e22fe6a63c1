// Package ui is the component catalog. Every component pairs a props struct
// whose methods compute classes and attributes (the behavior) with a
// constructor returning a templ.Component (the markup).
//
// Interactive components carry data-controller="ui--<name>" plus targets,
// actions and values for client-side Stimulus controllers, which live outside
// this module.
package ui

import (
	"math"

	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// Base holds the props shared by every component. Class is merged after the
// computed classes and Attrs is merged after the computed attributes, so the
// caller always wins.
type Base struct {
	ID    string           `yaml:"id"`
	Class string           `yaml:"class"`
	Attrs attrs.Attributes `yaml:"attrs"`
}

// finish applies the caller's id, classes and attributes to computed.
func (b Base) finish(computed attrs.Attributes) attrs.Attributes {
	if b.ID != "" {
		computed.Set("id", b.ID)
	}
	if b.Class != "" {
		computed.Class(b.Class)
	}
	if len(b.Attrs) > 0 {
		return computed.Merge(b.Attrs)
	}
	return computed
}

// idOr returns the caller's id or a generated one.
func (b Base) idOr(prefix string) string {
	if b.ID != "" {
		return b.ID
	}
	return attrs.NewID(prefix)
}

// controller returns the Stimulus identifier for a component name.
func controller(name string) string { return "ui--" + name }

func openState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func checkedState(checked bool) string {
	if checked {
		return "checked"
	}
	return "unchecked"
}

// clamp bounds v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
