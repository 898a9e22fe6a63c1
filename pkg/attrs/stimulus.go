package attrs

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Controller adds controller identifiers to data-controller.
func (a Attributes) Controller(names ...string) Attributes {
	a["data-controller"] = unionTokens(append([]string{a.String("data-controller")}, names...)...)
	return a
}

// Target marks the element as a named target of controller:
// data-<controller>-target="<name>".
func (a Attributes) Target(controller, name string) Attributes {
	key := "data-" + controller + "-target"
	a[key] = unionTokens(a.String(key), name)
	return a
}

// Action appends action descriptors such as "click->ui--accordion#toggle".
func (a Attributes) Action(descriptors ...string) Attributes {
	a["data-action"] = unionTokens(append([]string{a.String("data-action")}, descriptors...)...)
	return a
}

// Value sets a controller value: data-<controller>-<key>-value.
func (a Attributes) Value(controller, key string, value any) Attributes {
	a["data-"+controller+"-"+Kebab(key)+"-value"] = stringify(value)
	return a
}

// StimulusClass sets a controller CSS class: data-<controller>-<key>-class.
func (a Attributes) StimulusClass(controller, key, classes string) Attributes {
	a["data-"+controller+"-"+Kebab(key)+"-class"] = classes
	return a
}

// ActionFor formats an action descriptor. An empty event uses the element's
// default event.
func ActionFor(event, controller, method string) string {
	if event == "" {
		return controller + "#" + method
	}
	return event + "->" + controller + "#" + method
}

// Kebab converts camelCase and snake_case keys to kebab-case.
func Kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r == ' ':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewID returns a fresh element id with the given prefix, used to link
// triggers to the content they control when the caller supplied no id.
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

// Suffix derives a child id from a parent id: Suffix("faq", "trigger") -> "faq-trigger".
func Suffix(id string, parts ...string) string {
	return strings.Join(append([]string{id}, parts...), "-")
}
