package twmerge

import (
	"sort"
	"strings"
)

// parsedClass is one class token split into its parts:
//
//	hover:md:!-mt-2/50
//	^^^^^^^^ modifiers, ! important, - negative, mt-2 base, /50 postfix
type parsedClass struct {
	raw        string
	modifiers  []string
	important  bool
	base       string
	postfixPos int // index of the postfix '/' inside base, -1 when absent
}

// parseClass splits raw on top-level ':' separators, ignoring separators that
// appear inside [] or () so arbitrary variants and values stay intact.
func parseClass(raw string) parsedClass {
	var modifiers []string
	depth := 0
	start := 0
	postfix := -1

	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				modifiers = append(modifiers, raw[start:i])
				start = i + 1
				postfix = -1
			}
		case '/':
			if depth == 0 {
				postfix = i
			}
		}
	}

	base := raw[start:]
	if postfix >= 0 {
		postfix -= start
	}

	important := false
	switch {
	case strings.HasPrefix(base, "!"):
		important = true
		base = base[1:]
		if postfix >= 0 {
			postfix--
		}
	case strings.HasSuffix(base, "!"):
		important = true
		base = base[:len(base)-1]
	}

	return parsedClass{
		raw:        raw,
		modifiers:  modifiers,
		important:  important,
		base:       base,
		postfixPos: postfix,
	}
}

// modifierKey returns the modifiers in canonical order. Runs of ordinary
// modifiers are order-insensitive (hover:focus: == focus:hover:), while
// arbitrary variants such as [&>*] stay where they are because their position
// changes the generated selector.
func modifierKey(modifiers []string) string {
	if len(modifiers) == 0 {
		return ""
	}
	if len(modifiers) == 1 {
		return modifiers[0]
	}

	out := make([]string, 0, len(modifiers))
	run := make([]string, 0, len(modifiers))
	flush := func() {
		sort.Strings(run)
		out = append(out, run...)
		run = run[:0]
	}
	for _, m := range modifiers {
		if strings.HasPrefix(m, "[") {
			flush()
			out = append(out, m)
			continue
		}
		run = append(run, m)
	}
	flush()

	return strings.Join(out, ":")
}

// candidates yields (prefix, value) splits of a utility, longest prefix first.
// Only dashes before the first '[' or '(' are split points.
func candidates(utility string) [][2]string {
	limit := len(utility)
	if i := strings.IndexAny(utility, "[("); i >= 0 {
		limit = i
	}

	out := [][2]string{{utility, ""}}
	for i := limit - 1; i > 0; i-- {
		if utility[i] == '-' {
			out = append(out, [2]string{utility[:i], utility[i+1:]})
		}
	}
	return out
}
