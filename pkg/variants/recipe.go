// Package variants resolves component variant selections to merged class
// strings, in the manner of class-variance-authority recipes.
package variants

import (
	"sort"

	"github.com/conneroisu/tailblocks/pkg/twmerge"
)

// Compound adds classes when every listed axis matches.
type Compound struct {
	When    map[string]string
	Classes string
}

// Recipe describes the classes of a component: base classes, one class list
// per value of each variant axis, defaults, and compound variants.
type Recipe struct {
	Base     string
	Variants map[string]map[string]string
	Defaults map[string]string
	Compound []Compound
}

// Selection picks a value per variant axis, e.g. {"variant": "outline", "size": "sm"}.
type Selection map[string]string

// Resolve fills in defaults and replaces unknown values with the axis default.
func (r Recipe) Resolve(sel Selection) Selection {
	out := make(Selection, len(r.Variants))
	for axis, values := range r.Variants {
		v := sel[axis]
		if _, ok := values[v]; !ok {
			v = r.Defaults[axis]
		}
		out[axis] = v
	}
	return out
}

// Classes returns the merged class string for sel followed by extra user
// classes. User classes come last and therefore win conflicts.
func (r Recipe) Classes(sel Selection, extra ...string) string {
	resolved := r.Resolve(sel)

	parts := make([]string, 0, 2+len(r.Variants)+len(r.Compound)+len(extra))
	parts = append(parts, r.Base)

	// Axis order must be stable for the output to be deterministic.
	axes := make([]string, 0, len(r.Variants))
	for axis := range r.Variants {
		axes = append(axes, axis)
	}
	sort.Strings(axes)
	for _, axis := range axes {
		parts = append(parts, r.Variants[axis][resolved[axis]])
	}

	for _, c := range r.Compound {
		if c.matches(resolved) {
			parts = append(parts, c.Classes)
		}
	}

	parts = append(parts, extra...)
	return twmerge.Merge(parts...)
}

// Has reports whether value is a declared value of axis.
func (r Recipe) Has(axis, value string) bool {
	_, ok := r.Variants[axis][value]
	return ok
}

func (c Compound) matches(sel Selection) bool {
	for axis, want := range c.When {
		if sel[axis] != want {
			return false
		}
	}
	return true
}
