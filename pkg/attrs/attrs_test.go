package attrs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, a Attributes) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, a.Render(&b))
	return b.String()
}

func TestRenderOrderAndEscaping(t *testing.T) {
	a := New().
		Set("type", "button").
		Set("id", "save").
		Class("px-2 px-4").
		Set("disabled", true).
		Set("hidden", false).
		Set("title", `say "hi" <b>`).
		ARIA("expanded", false).
		Data("state", "closed")

	assert.Equal(t,
		` class="px-4" id="save" aria-expanded="false" data-state="closed" disabled title="say &#34;hi&#34; &lt;b&gt;" type="button"`,
		render(t, a))
}

func TestRenderSkipsEmptyClass(t *testing.T) {
	a := New().Set("class", "").Set("role", "none")
	assert.Equal(t, ` role="none"`, render(t, a))
}

func TestMerge(t *testing.T) {
	computed := New().
		Class("rounded-md px-4 bg-primary").
		Controller("ui--dialog").
		Action("keydown.esc->ui--dialog#close").
		Set("style", "width: 10px;").
		Set("type", "button").
		Set("aria-label", "Open")

	user := Attributes{
		"class":           "bg-red-500",
		"data-controller": "tooltip ui--dialog",
		"data-action":     "click->tooltip#show",
		"style":           "color: red",
		"type":            "submit",
		"aria-label":      nil,
	}

	merged := computed.Merge(user)

	assert.Equal(t, "rounded-md px-4 bg-red-500", merged.String("class"))
	assert.Equal(t, "ui--dialog tooltip", merged.String("data-controller"))
	assert.Equal(t, "keydown.esc->ui--dialog#close click->tooltip#show", merged.String("data-action"))
	assert.Equal(t, "width: 10px; color: red", merged.String("style"))
	assert.Equal(t, "submit", merged.String("type"))
	assert.False(t, merged.Has("aria-label"), "nil removes the attribute")

	assert.Equal(t, "rounded-md px-4 bg-primary", computed.String("class"), "merge does not mutate the receiver")
}

func TestStringAndHas(t *testing.T) {
	a := Attributes{"open": true, "closed": false, "n": 3, "f": 0.5, "nil": nil}

	assert.Equal(t, "open", a.String("open"))
	assert.Equal(t, "", a.String("closed"))
	assert.Equal(t, "3", a.String("n"))
	assert.Equal(t, "0.5", a.String("f"))
	assert.Equal(t, "", a.String("missing"))

	assert.True(t, a.Has("open"))
	assert.False(t, a.Has("closed"))
	assert.False(t, a.Has("nil"))
	assert.True(t, a.Has("n"))
}

func TestTempl(t *testing.T) {
	a := New().Set("disabled", true).Set("tabindex", -1).Set("gone", nil)
	ta := a.Templ()

	assert.Equal(t, true, ta["disabled"])
	assert.Equal(t, "-1", ta["tabindex"])
	_, ok := ta["gone"]
	assert.False(t, ok)
}

func TestStimulusHelpers(t *testing.T) {
	a := New().
		Controller("ui--accordion").
		Controller("ui--accordion", "ui--collapsible").
		Target("ui--accordion", "trigger").
		Target("ui--accordion", "item").
		Action(ActionFor("click", "ui--accordion", "toggle")).
		Action(ActionFor("", "ui--accordion", "focus")).
		Value("ui--accordion", "allowMultiple", true).
		Value("ui--accordion", "open_items", "a,b").
		StimulusClass("ui--accordion", "openClass", "rotate-180")

	assert.Equal(t, "ui--accordion ui--collapsible", a.String("data-controller"))
	assert.Equal(t, "trigger item", a.String("data-ui--accordion-target"))
	assert.Equal(t, "click->ui--accordion#toggle ui--accordion#focus", a.String("data-action"))
	assert.Equal(t, "true", a.String("data-ui--accordion-allow-multiple-value"))
	assert.Equal(t, "a,b", a.String("data-ui--accordion-open-items-value"))
	assert.Equal(t, "rotate-180", a.String("data-ui--accordion-open-class-class"))
}

func TestKebab(t *testing.T) {
	assert.Equal(t, "allow-multiple", Kebab("allowMultiple"))
	assert.Equal(t, "open-items", Kebab("open_items"))
	assert.Equal(t, "delay", Kebab("delay"))
	assert.Equal(t, "close-delay", Kebab("CloseDelay"))
}

func TestNewID(t *testing.T) {
	a := NewID("dialog")
	b := NewID("dialog")

	assert.True(t, strings.HasPrefix(a, "dialog-"))
	assert.Len(t, a, len("dialog-")+12)
	assert.NotEqual(t, a, b)
	assert.Len(t, NewID(""), 12)

	assert.Equal(t, "faq-item-1-trigger", Suffix("faq", "item-1", "trigger"))
}
