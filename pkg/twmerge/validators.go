package twmerge

import (
	"regexp"
	"strconv"
	"strings"
)

// validator decides whether the value part of a utility (the text after the
// utility prefix) belongs to a class group.
type validator func(value string) bool

var (
	lengthUnitRe  = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)(%|px|r?em|[sdl]?v[hwib]|vmin|vmax|ch|ex|cm|mm|in|pt|pc|lh|rlh|cq[whib]|cqmin|cqmax)?$`)
	lengthFuncRe  = regexp.MustCompile(`^(calc|min|max|clamp)\(.+\)$`)
	colorFuncRe   = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|(rgb|rgba|hsl|hsla|hwb|lab|lch|oklab|oklch|color|color-mix)\(.+\))$`)
	shadowValueRe = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	labelRe       = regexp.MustCompile(`^[a-z-]+$`)
	tshirtRe      = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
)

func isAny(string) bool { return true }

func isEmpty(v string) bool { return v == "" }

func isNumber(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func isInteger(v string) bool {
	if v == "" {
		return false
	}
	_, err := strconv.Atoi(v)
	return err == nil
}

func isFraction(v string) bool {
	num, den, ok := strings.Cut(v, "/")
	return ok && isNumber(num) && isNumber(den)
}

func isPercent(v string) bool {
	return strings.HasSuffix(v, "%") && isNumber(strings.TrimSuffix(v, "%"))
}

func isTshirt(v string) bool { return tshirtRe.MatchString(v) }

func oneOf(values ...string) validator {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

func or(validators ...validator) validator {
	return func(v string) bool {
		for _, fn := range validators {
			if fn(v) {
				return true
			}
		}
		return false
	}
}

// isArbitrary reports whether v is an arbitrary value such as [14px] or the
// CSS variable shorthand (--gap).
func isArbitrary(v string) bool {
	return len(v) >= 2 &&
		((v[0] == '[' && v[len(v)-1] == ']') || (v[0] == '(' && v[len(v)-1] == ')'))
}

// arbitraryParts splits an arbitrary value into its optional type label and
// its content: [length:var(--x)] -> ("length", "var(--x)").
func arbitraryParts(v string) (label, content string) {
	inner := v[1 : len(v)-1]
	if lbl, rest, ok := strings.Cut(inner, ":"); ok && labelRe.MatchString(lbl) {
		return lbl, rest
	}
	return "", inner
}

func arbitraryOfKind(labels []string, infer func(string) bool) validator {
	return func(v string) bool {
		if !isArbitrary(v) {
			return false
		}
		label, content := arbitraryParts(v)
		if label != "" {
			for _, l := range labels {
				if l == label {
					return true
				}
			}
			return false
		}
		return infer != nil && infer(content)
	}
}

var (
	isArbitraryLength = arbitraryOfKind([]string{"length", "size", "percentage"}, func(c string) bool {
		return c == "0" || lengthUnitRe.MatchString(c) || lengthFuncRe.MatchString(c)
	})
	isArbitraryNumber = arbitraryOfKind([]string{"number"}, isNumber)
	isArbitraryColor  = arbitraryOfKind([]string{"color"}, colorFuncRe.MatchString)
	isArbitraryShadow = arbitraryOfKind([]string{"shadow"}, shadowValueRe.MatchString)
	isArbitraryImage  = arbitraryOfKind([]string{"image", "url"}, func(c string) bool {
		return strings.HasPrefix(c, "url(") || strings.Contains(c, "gradient(")
	})
	isArbitraryPosition = arbitraryOfKind([]string{"position"}, nil)
	isArbitraryWeight   = arbitraryOfKind([]string{"weight", "number"}, isNumber)

	// isArbitraryUntyped accepts arbitrary values that carry no type label,
	// used after the typed checks of a prefix have been exhausted.
	isArbitraryUntyped = func(v string) bool {
		if !isArbitrary(v) {
			return false
		}
		label, _ := arbitraryParts(v)
		return label == ""
	}
)

// isSpacing covers the spacing scale: numbers, fractions, keywords and
// arbitrary values.
var isSpacing = or(isNumber, isFraction, oneOf("px", "auto", "full", "screen", "min", "max", "fit", "svh", "lvh", "dvh", "svw", "lvw", "dvw"), isArbitrary)
