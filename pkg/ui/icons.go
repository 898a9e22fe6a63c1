package ui

import (
	"github.com/a-h/templ"
	"github.com/conneroisu/tailblocks/pkg/attrs"
)

// Icon paths from the lucide set, rendered as 24x24 stroke icons.
var iconPaths = map[string]string{
	"check":            `<path d="M20 6 9 17l-5-5"/>`,
	"chevron-down":     `<path d="m6 9 6 6 6-6"/>`,
	"chevron-up":       `<path d="m18 15-6-6-6 6"/>`,
	"chevron-left":     `<path d="m15 18-6-6 6-6"/>`,
	"chevron-right":    `<path d="m9 18 6-6-6-6"/>`,
	"chevrons-up-down": `<path d="m7 15 5 5 5-5"/><path d="m7 9 5-5 5 5"/>`,
	"circle":           `<circle cx="12" cy="12" r="10"/>`,
	"dot":              `<circle cx="12.1" cy="12.1" r="1"/>`,
	"grip-vertical":    `<circle cx="9" cy="12" r="1"/><circle cx="9" cy="5" r="1"/><circle cx="9" cy="19" r="1"/><circle cx="15" cy="12" r="1"/><circle cx="15" cy="5" r="1"/><circle cx="15" cy="19" r="1"/>`,
	"minus":            `<path d="M5 12h14"/>`,
	"more-horizontal":  `<circle cx="12" cy="12" r="1"/><circle cx="19" cy="12" r="1"/><circle cx="5" cy="12" r="1"/>`,
	"panel-left":       `<rect width="18" height="18" x="3" y="3" rx="2"/><path d="M9 3v18"/>`,
	"slash":            `<path d="M22 2 2 22"/>`,
	"x":                `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	"loader":           `<path d="M21 12a9 9 0 1 1-6.219-8.56"/>`,
	"info":             `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`,
	"alert-circle":     `<circle cx="12" cy="12" r="10"/><line x1="12" x2="12" y1="8" y2="12"/><line x1="12" x2="12.01" y1="16" y2="16"/>`,
	"home":             `<path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/><polyline points="9 22 9 12 15 12 15 22"/>`,
	"inbox":            `<polyline points="22 12 16 12 14 15 10 15 8 12 2 12"/><path d="M5.45 5.11 2 12v6a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2v-6l-3.45-6.89A2 2 0 0 0 16.76 4H7.24a2 2 0 0 0-1.79 1.11z"/>`,
	"settings":         `<path d="M12.22 2h-.44a2 2 0 0 0-2 2v.18a2 2 0 0 1-1 1.73l-.43.25a2 2 0 0 1-2 0l-.15-.08a2 2 0 0 0-2.73.73l-.22.38a2 2 0 0 0 .73 2.73l.15.1a2 2 0 0 1 1 1.72v.51a2 2 0 0 1-1 1.74l-.15.09a2 2 0 0 0-.73 2.73l.22.38a2 2 0 0 0 2.73.73l.15-.08a2 2 0 0 1 2 0l.43.25a2 2 0 0 1 1 1.73V20a2 2 0 0 0 2 2h.44a2 2 0 0 0 2-2v-.18a2 2 0 0 1 1-1.73l.43-.25a2 2 0 0 1 2 0l.15.08a2 2 0 0 0 2.73-.73l.22-.39a2 2 0 0 0-.73-2.73l-.15-.08a2 2 0 0 1-1-1.74v-.5a2 2 0 0 1 1-1.74l.15-.09a2 2 0 0 0 .73-2.73l-.22-.38a2 2 0 0 0-2.73-.73l-.15.08a2 2 0 0 1-2 0l-.43-.25a2 2 0 0 1-1-1.73V4a2 2 0 0 0-2-2z"/><circle cx="12" cy="12" r="3"/>`,
	"search":           `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
}

// Icon renders a named decorative icon. Unknown names render nothing.
func Icon(name string, class string) templ.Component {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	a := attrs.New().
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("width", "24").
		Set("height", "24").
		Set("viewBox", "0 0 24 24").
		Set("fill", "none").
		Set("stroke", "currentColor").
		Set("stroke-width", "2").
		Set("stroke-linecap", "round").
		Set("stroke-linejoin", "round").
		ARIA("hidden", true).
		Class("size-4 shrink-0", class)
	return Element("svg", a, templ.Raw(paths))
}
