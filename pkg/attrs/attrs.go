// Package attrs builds HTML attribute maps for components: classes merged with
// twmerge, aria-* and data-* entries, and the Stimulus data attributes the
// client-side controllers bind to.
package attrs

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/twmerge"
)

// Attributes maps attribute names to values.
//
// A string, number or fmt.Stringer renders as name="value". A bool renders
// as a bare attribute when true and is omitted when false. A nil value is
// omitted, and in Merge a nil value deletes the attribute.
type Attributes map[string]any

// New returns an empty attribute map.
func New() Attributes { return Attributes{} }

// Set stores value under key and returns a for chaining.
func (a Attributes) Set(key string, value any) Attributes {
	a[key] = value
	return a
}

// SetIf stores value only when cond holds.
func (a Attributes) SetIf(cond bool, key string, value any) Attributes {
	if cond {
		a[key] = value
	}
	return a
}

// SetNonEmpty stores value unless it is the empty string.
func (a Attributes) SetNonEmpty(key, value string) Attributes {
	if value != "" {
		a[key] = value
	}
	return a
}

// Data stores data-<key>. Booleans become "true"/"false".
func (a Attributes) Data(key string, value any) Attributes {
	a["data-"+key] = stringify(value)
	return a
}

// ARIA stores aria-<key>. Booleans become "true"/"false" since ARIA states
// are enumerated strings, not HTML boolean attributes.
func (a Attributes) ARIA(key string, value any) Attributes {
	a["aria-"+key] = stringify(value)
	return a
}

// Role sets the role attribute.
func (a Attributes) Role(role string) Attributes {
	return a.SetNonEmpty("role", role)
}

// Class merges classes into the class attribute; later classes win.
func (a Attributes) Class(classes ...string) Attributes {
	merged := twmerge.Merge(append([]string{a.String("class")}, classes...)...)
	if merged == "" {
		delete(a, "class")
		return a
	}
	a["class"] = merged
	return a
}

// String returns the value of key rendered as a string, or "" when absent.
func (a Attributes) String(key string) string {
	v, ok := a[key]
	if !ok || v == nil {
		return ""
	}
	if b, ok := v.(bool); ok {
		if b {
			return key
		}
		return ""
	}
	return stringify(v).(string)
}

// Has reports whether key is present with a renderable value.
func (a Attributes) Has(key string) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// tokenLists are attributes whose values are space separated token lists that
// accumulate instead of being replaced.
var tokenLists = map[string]bool{
	"data-controller": true,
	"data-action":     true,
}

// Merge returns a copy of a with other applied on top. other wins for plain
// attributes; class is merged with twmerge; data-controller and data-action
// keep the tokens of both; style declarations are concatenated.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a.Clone()
	for k, v := range other {
		switch {
		case v == nil:
			delete(out, k)
		case k == "class":
			out.Class(stringify(v).(string))
		case tokenLists[k]:
			out[k] = unionTokens(out.String(k), stringify(v).(string))
		case k == "style":
			out[k] = joinStyle(out.String(k), stringify(v).(string))
		default:
			out[k] = v
		}
	}
	return out
}

// Keys returns attribute names in render order: class, id, then the rest
// sorted. The order makes rendered markup deterministic.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		if k == "class" || k == "id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	head := make([]string, 0, 2)
	if _, ok := a["class"]; ok {
		head = append(head, "class")
	}
	if _, ok := a["id"]; ok {
		head = append(head, "id")
	}
	return append(head, keys...)
}

// Render writes the attributes, each preceded by a space, HTML-escaped.
func (a Attributes) Render(w io.Writer) error {
	var b strings.Builder
	for _, k := range a.Keys() {
		v := a[k]
		if v == nil {
			continue
		}
		if bv, ok := v.(bool); ok {
			if bv {
				b.WriteByte(' ')
				b.WriteString(templ.EscapeString(k))
			}
			continue
		}
		if k == "class" && a.String(k) == "" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(templ.EscapeString(k))
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.String(k)))
		b.WriteByte('"')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Templ converts the map for use as a spread in .templ files:
//
//	<div { props.Attributes().Templ()... }>
func (a Attributes) Templ() templ.Attributes {
	out := make(templ.Attributes, len(a))
	for k, v := range a {
		if v == nil {
			continue
		}
		if b, ok := v.(bool); ok {
			out[k] = b
			continue
		}
		out[k] = a.String(k)
	}
	return out
}

func stringify(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func unionTokens(lists ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, list := range lists {
		for _, tok := range strings.Fields(list) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

func joinStyle(styles ...string) string {
	parts := make([]string, 0, len(styles))
	for _, s := range styles {
		s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}
