package twmerge

// rule maps the value part of a prefixed utility to a class group.
type rule struct {
	group string
	valid validator
}

func group(id string, v validator) rule { return rule{group: id, valid: v} }

func exact(groupID string, classes ...string) map[string]string {
	m := make(map[string]string, len(classes))
	for _, c := range classes {
		m[c] = groupID
	}
	return m
}

// defaultExact holds utilities that are complete class names with no value
// part. They are checked before any prefix rule so that text-ellipsis does not
// fall through to the text color group.
func defaultExact() map[string]string {
	out := make(map[string]string)
	for _, m := range []map[string]string{
		exact("display", "block", "inline-block", "inline", "flex", "inline-flex", "table",
			"inline-table", "table-caption", "table-cell", "table-column", "table-column-group",
			"table-footer-group", "table-header-group", "table-row-group", "table-row",
			"flow-root", "grid", "inline-grid", "contents", "list-item", "hidden"),
		exact("position", "static", "fixed", "absolute", "relative", "sticky"),
		exact("visibility", "visible", "invisible", "collapse"),
		exact("sr", "sr-only", "not-sr-only"),
		exact("isolation", "isolate", "isolation-auto"),
		exact("container", "container"),
		exact("font-style", "italic", "not-italic"),
		exact("font-smoothing", "antialiased", "subpixel-antialiased"),
		exact("text-decoration", "underline", "overline", "line-through", "no-underline"),
		exact("text-transform", "uppercase", "lowercase", "capitalize", "normal-case"),
		exact("text-overflow", "truncate", "text-ellipsis", "text-clip"),
		exact("text-wrap", "text-wrap", "text-nowrap", "text-balance", "text-pretty"),
		exact("flex-direction", "flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse"),
		exact("flex-wrap", "flex-wrap", "flex-wrap-reverse", "flex-nowrap"),
		exact("border-collapse", "border-collapse", "border-separate"),
		exact("table-layout", "table-auto", "table-fixed"),
		exact("transform", "transform", "transform-cpu", "transform-gpu", "transform-none"),
		exact("box-sizing", "box-border", "box-content"),
		exact("box-decoration", "box-decoration-clone", "box-decoration-slice"),
		exact("space-x-reverse", "space-x-reverse"),
		exact("space-y-reverse", "space-y-reverse"),
		exact("divide-x-reverse", "divide-x-reverse"),
		exact("divide-y-reverse", "divide-y-reverse"),
		exact("grow", "grow"),
		exact("shrink", "shrink"),
		exact("resize", "resize"),
		exact("outline-style", "outline", "outline-hidden"),
		exact("ring-inset", "ring-inset"),
		exact("appearance", "appearance-none", "appearance-auto"),
		exact("float", "float-left", "float-right", "float-start", "float-end", "float-none"),
		exact("clear", "clear-left", "clear-right", "clear-both", "clear-none", "clear-start", "clear-end"),
	} {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

var (
	fontWeights  = oneOf("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	textAligns   = oneOf("left", "center", "right", "justify", "start", "end")
	borderStyles = oneOf("solid", "dashed", "dotted", "double", "hidden", "none")
	lineStyles   = oneOf("solid", "dashed", "dotted", "double", "wavy")
	overflows    = oneOf("auto", "hidden", "clip", "visible", "scroll")
	alignContent = oneOf("normal", "start", "end", "center", "between", "around", "evenly", "stretch", "baseline")
	alignItems   = oneOf("start", "end", "center", "baseline", "stretch")
	bgPositions  = oneOf("bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top")
	objectFits   = oneOf("contain", "cover", "fill", "none", "scale-down")
	blendModes   = oneOf("normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
		"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity", "plus-lighter")

	isWidth      = or(isEmpty, isNumber, isArbitraryLength)
	isRadius     = or(isEmpty, isTshirt, oneOf("none", "full"), isArbitrary)
	isBlur       = or(isEmpty, isTshirt, oneOf("none"), isArbitrary)
	isFontSize   = or(isTshirt, oneOf("base"), isArbitraryLength)
	isShadowSize = or(isEmpty, isTshirt, oneOf("none", "inner"), isArbitraryShadow)
	isColorish   = or(isArbitraryColor, isAny)
)

// sided registers prefix-<side> rules for the given sides.
func sided(rules map[string][]rule, prefix, groupPrefix string, sides []string, v validator) {
	for _, s := range sides {
		rules[prefix+"-"+s] = []rule{group(groupPrefix+"-"+s, v)}
	}
}

// defaultRules holds the prefix -> value rules. Lookups try the longest
// dash-separated prefix first, so border-t-2 resolves through "border-t"
// before "border".
func defaultRules() map[string][]rule {
	r := map[string][]rule{
		// Layout
		"aspect":       {group("aspect", isAny)},
		"columns":      {group("columns", isAny)},
		"overflow":     {group("overflow", overflows)},
		"overflow-x":   {group("overflow-x", overflows)},
		"overflow-y":   {group("overflow-y", overflows)},
		"overscroll":   {group("overscroll", oneOf("auto", "contain", "none"))},
		"object":       {group("object-fit", objectFits), group("object-position", isAny)},
		"inset":        {group("inset", isSpacing)},
		"inset-x":      {group("inset-x", isSpacing)},
		"inset-y":      {group("inset-y", isSpacing)},
		"start":        {group("start", isSpacing)},
		"end":          {group("end", isSpacing)},
		"top":          {group("top", isSpacing)},
		"right":        {group("right", isSpacing)},
		"bottom":       {group("bottom", isSpacing)},
		"left":         {group("left", isSpacing)},
		"z":            {group("z", or(isInteger, oneOf("auto"), isArbitrary))},
		"break-before": {group("break-before", isAny)},
		"break-after":  {group("break-after", isAny)},
		"break-inside": {group("break-inside", isAny)},

		// Flexbox and grid
		"basis":         {group("basis", isSpacing)},
		"flex":          {group("flex", or(isNumber, oneOf("auto", "initial", "none"), isArbitrary))},
		"grow":          {group("grow", or(isNumber, isArbitrary))},
		"shrink":        {group("shrink", or(isNumber, isArbitrary))},
		"order":         {group("order", or(isInteger, oneOf("first", "last", "none"), isArbitrary))},
		"grid-cols":     {group("grid-cols", isAny)},
		"grid-rows":     {group("grid-rows", isAny)},
		"col":           {group("col-start-end", isAny)},
		"col-span":      {group("col-start-end", isAny)},
		"col-start":     {group("col-start", isAny)},
		"col-end":       {group("col-end", isAny)},
		"row":           {group("row-start-end", isAny)},
		"row-span":      {group("row-start-end", isAny)},
		"row-start":     {group("row-start", isAny)},
		"row-end":       {group("row-end", isAny)},
		"grid-flow":     {group("grid-flow", isAny)},
		"auto-cols":     {group("auto-cols", isAny)},
		"auto-rows":     {group("auto-rows", isAny)},
		"gap":           {group("gap", isSpacing)},
		"gap-x":         {group("gap-x", isSpacing)},
		"gap-y":         {group("gap-y", isSpacing)},
		"justify":       {group("justify-content", alignContent)},
		"justify-items": {group("justify-items", alignItems)},
		"justify-self":  {group("justify-self", or(alignItems, oneOf("auto")))},
		"content":       {group("align-content", alignContent), group("content", isAny)},
		"items":         {group("align-items", alignItems)},
		"self":          {group("align-self", or(alignItems, oneOf("auto")))},
		"place-content": {group("place-content", alignContent)},
		"place-items":   {group("place-items", alignItems)},
		"place-self":    {group("place-self", or(alignItems, oneOf("auto")))},

		// Spacing
		"p":       {group("p", isSpacing)},
		"px":      {group("px", isSpacing)},
		"py":      {group("py", isSpacing)},
		"ps":      {group("ps", isSpacing)},
		"pe":      {group("pe", isSpacing)},
		"pt":      {group("pt", isSpacing)},
		"pr":      {group("pr", isSpacing)},
		"pb":      {group("pb", isSpacing)},
		"pl":      {group("pl", isSpacing)},
		"m":       {group("m", isSpacing)},
		"mx":      {group("mx", isSpacing)},
		"my":      {group("my", isSpacing)},
		"ms":      {group("ms", isSpacing)},
		"me":      {group("me", isSpacing)},
		"mt":      {group("mt", isSpacing)},
		"mr":      {group("mr", isSpacing)},
		"mb":      {group("mb", isSpacing)},
		"ml":      {group("ml", isSpacing)},
		"space-x": {group("space-x", isSpacing)},
		"space-y": {group("space-y", isSpacing)},

		// Sizing
		"w":     {group("w", isAny)},
		"min-w": {group("min-w", isAny)},
		"max-w": {group("max-w", isAny)},
		"h":     {group("h", isAny)},
		"min-h": {group("min-h", isAny)},
		"max-h": {group("max-h", isAny)},
		"size":  {group("size", isAny)},

		// Typography
		"font": {group("font-weight", or(fontWeights, isNumber, isArbitraryWeight)), group("font-family", isAny)},
		"text": {
			group("font-size", isFontSize),
			group("text-align", textAligns),
			group("text-color", isColorish),
		},
		"tracking":         {group("tracking", isAny)},
		"leading":          {group("leading", isAny)},
		"line-clamp":       {group("line-clamp", or(isNumber, oneOf("none"), isArbitrary))},
		"list":             {group("list-position", oneOf("inside", "outside")), group("list-style-type", isAny)},
		"decoration":       {group("decoration-style", lineStyles), group("decoration-thickness", or(oneOf("auto", "from-font"), isNumber, isArbitraryLength)), group("decoration-color", isColorish)},
		"underline-offset": {group("underline-offset", isAny)},
		"indent":           {group("indent", isSpacing)},
		"align":            {group("vertical-align", isAny)},
		"whitespace":       {group("whitespace", isAny)},
		"break":            {group("word-break", oneOf("normal", "words", "all", "keep"))},
		"hyphens":          {group("hyphens", isAny)},

		// Backgrounds
		"bg": {
			group("bg-attachment", oneOf("fixed", "local", "scroll")),
			group("bg-clip", oneOf("clip-border", "clip-padding", "clip-content", "clip-text")),
			group("bg-origin", oneOf("origin-border", "origin-padding", "origin-content")),
			group("bg-position", or(bgPositions, isArbitraryPosition)),
			group("bg-repeat", oneOf("no-repeat", "repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space")),
			group("bg-size", oneOf("auto", "cover", "contain")),
			group("bg-image", or(oneOf("none"), isArbitraryImage)),
			group("bg-blend", blendModes),
			group("bg-color", isColorish),
		},
		"bg-gradient-to": {group("bg-image", isAny)},
		"bg-linear-to":   {group("bg-image", isAny)},
		"from":           {group("gradient-from-pos", or(isPercent, isArbitraryLength)), group("gradient-from", isColorish)},
		"via":            {group("gradient-via-pos", or(isPercent, isArbitraryLength)), group("gradient-via", isColorish)},
		"to":             {group("gradient-to-pos", or(isPercent, isArbitraryLength)), group("gradient-to", isColorish)},

		// Borders
		"rounded": {group("rounded", isRadius)},
		"border": {
			group("border-w", isWidth),
			group("border-style", borderStyles),
			group("border-color", isColorish),
		},
		"border-spacing":   {group("border-spacing", isSpacing)},
		"border-spacing-x": {group("border-spacing-x", isSpacing)},
		"border-spacing-y": {group("border-spacing-y", isSpacing)},
		"divide-x":         {group("divide-x", isWidth)},
		"divide-y":         {group("divide-y", isWidth)},
		"divide":           {group("divide-style", borderStyles), group("divide-color", isColorish)},
		"outline": {
			group("outline-style", or(oneOf("none", "dashed", "dotted", "double", "solid"))),
			group("outline-w", or(isNumber, isArbitraryLength)),
			group("outline-color", isColorish),
		},
		"outline-offset": {group("outline-offset", isAny)},
		"ring": {
			group("ring-w", isWidth),
			group("ring-color", isColorish),
		},
		"ring-offset": {
			group("ring-offset-w", or(isNumber, isArbitraryLength)),
			group("ring-offset-color", isColorish),
		},

		// Effects and filters
		"shadow":        {group("shadow", isShadowSize), group("shadow-color", isColorish)},
		"opacity":       {group("opacity", isAny)},
		"mix-blend":     {group("mix-blend", blendModes)},
		"blur":          {group("blur", isBlur)},
		"backdrop-blur": {group("backdrop-blur", isBlur)},
		"brightness":    {group("brightness", isAny)},
		"contrast":      {group("contrast", isAny)},
		"grayscale":     {group("grayscale", or(isEmpty, isAny))},
		"drop-shadow":   {group("drop-shadow", or(isEmpty, isAny))},

		// Transitions and animation
		"transition": {group("transition", or(isEmpty, oneOf("all", "colors", "opacity", "shadow", "transform", "none"), isArbitrary))},
		"duration":   {group("duration", isAny)},
		"ease":       {group("ease", isAny)},
		"delay":      {group("delay", isAny)},
		"animate":    {group("animate", isAny)},

		// Transforms
		"scale":       {group("scale", isAny)},
		"scale-x":     {group("scale-x", isAny)},
		"scale-y":     {group("scale-y", isAny)},
		"rotate":      {group("rotate", isAny)},
		"translate-x": {group("translate-x", isAny)},
		"translate-y": {group("translate-y", isAny)},
		"skew-x":      {group("skew-x", isAny)},
		"skew-y":      {group("skew-y", isAny)},
		"origin":      {group("transform-origin", isAny)},

		// Interactivity
		"accent":         {group("accent", isColorish)},
		"caret":          {group("caret-color", isColorish)},
		"cursor":         {group("cursor", isAny)},
		"pointer-events": {group("pointer-events", oneOf("none", "auto"))},
		"resize":         {group("resize", oneOf("none", "x", "y"))},
		"scroll":         {group("scroll-behavior", oneOf("auto", "smooth"))},
		"select":         {group("select", oneOf("none", "text", "all", "auto"))},
		"touch":          {group("touch", isAny)},
		"will-change":    {group("will-change", isAny)},

		// SVG
		"fill":   {group("fill", isAny)},
		"stroke": {group("stroke-w", or(isNumber, isArbitraryLength, isArbitraryNumber)), group("stroke", isColorish)},
	}

	sides := []string{"x", "y", "s", "e", "t", "r", "b", "l"}
	for _, s := range sides {
		r["border-"+s] = []rule{
			group("border-w-"+s, isWidth),
			group("border-color-"+s, isColorish),
		}
	}
	sided(r, "rounded", "rounded", []string{"s", "e", "t", "r", "b", "l", "ss", "se", "ee", "es", "tl", "tr", "br", "bl"}, isRadius)

	return r
}

// defaultConflicts lists, per class group, the groups a later class of that
// group overrides. p-4 after px-2 removes px-2, but px-2 after p-4 keeps both.
func defaultConflicts() map[string][]string {
	return map[string][]string{
		"overflow":       {"overflow-x", "overflow-y"},
		"inset":          {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
		"inset-x":        {"right", "left"},
		"inset-y":        {"top", "bottom"},
		"flex":           {"basis", "grow", "shrink"},
		"gap":            {"gap-x", "gap-y"},
		"p":              {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":             {"pr", "pl"},
		"py":             {"pt", "pb"},
		"m":              {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":             {"mr", "ml"},
		"my":             {"mt", "mb"},
		"size":           {"w", "h"},
		"line-clamp":     {"display", "overflow"},
		"col-start-end":  {"col-start", "col-end"},
		"row-start-end":  {"row-start", "row-end"},
		"rounded":        {"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l", "rounded-ss", "rounded-se", "rounded-ee", "rounded-es", "rounded-tl", "rounded-tr", "rounded-br", "rounded-bl"},
		"rounded-s":      {"rounded-ss", "rounded-es"},
		"rounded-e":      {"rounded-se", "rounded-ee"},
		"rounded-t":      {"rounded-tl", "rounded-tr"},
		"rounded-r":      {"rounded-tr", "rounded-br"},
		"rounded-b":      {"rounded-br", "rounded-bl"},
		"rounded-l":      {"rounded-tl", "rounded-bl"},
		"border-spacing": {"border-spacing-x", "border-spacing-y"},
		"border-w":       {"border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l", "border-w-x", "border-w-y"},
		"border-w-x":     {"border-w-r", "border-w-l"},
		"border-w-y":     {"border-w-t", "border-w-b"},
		"border-color":   {"border-color-s", "border-color-e", "border-color-t", "border-color-r", "border-color-b", "border-color-l", "border-color-x", "border-color-y"},
		"border-color-x": {"border-color-r", "border-color-l"},
		"border-color-y": {"border-color-t", "border-color-b"},
		"scale":          {"scale-x", "scale-y"},
	}
}

// defaultPostfixConflicts applies only when the class carries a postfix
// modifier: text-lg/7 sets the line height too.
func defaultPostfixConflicts() map[string][]string {
	return map[string][]string{
		"font-size": {"leading"},
	}
}
