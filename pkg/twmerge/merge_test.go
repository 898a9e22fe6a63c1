package twmerge

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected string
	}{
		{"empty", []string{"", "  "}, ""},
		{"whitespace normalised", []string{"  block \n  p-2\t"}, "block p-2"},
		{"last padding wins", []string{"p-2 p-4"}, "p-4"},
		{"wider group removes narrower", []string{"px-2 py-1 p-3"}, "p-3"},
		{"narrower group after wider keeps both", []string{"p-3 px-2"}, "p-3 px-2"},
		{"x removes sides", []string{"pl-2 pr-3 px-4"}, "px-4"},
		{"display", []string{"block flex hidden"}, "hidden"},
		{"position", []string{"absolute relative"}, "relative"},
		{"font size vs color", []string{"text-sm text-red-500 text-lg"}, "text-red-500 text-lg"},
		{"text color vs align", []string{"text-left text-blue-500 text-center"}, "text-blue-500 text-center"},
		{"text ellipsis is not a color", []string{"text-ellipsis text-red-500"}, "text-ellipsis text-red-500"},
		{"border width vs color vs style", []string{"border border-red-500 border-2 border-dashed"}, "border-red-500 border-2 border-dashed"},
		{"border side width", []string{"border-t-2 border-t-4"}, "border-t-4"},
		{"border removes side widths", []string{"border-t-2 border-l border-0"}, "border-0"},
		{"rounded corners", []string{"rounded-tl-lg rounded-t-sm rounded-md"}, "rounded-md"},
		{"rounded side keeps other corners", []string{"rounded-bl-lg rounded-t-sm"}, "rounded-bl-lg rounded-t-sm"},
		{"background color", []string{"bg-primary bg-primary/90 bg-destructive"}, "bg-destructive"},
		{"background color vs image", []string{"bg-red-500 bg-none"}, "bg-red-500 bg-none"},
		{"arbitrary color", []string{"bg-red-500 bg-[#fff]"}, "bg-[#fff]"},
		{"arbitrary length font size", []string{"text-sm text-[14px]"}, "text-[14px]"},
		{"labelled arbitrary", []string{"text-[length:var(--x)] text-base"}, "text-base"},
		{"labelled arbitrary color", []string{"text-[color:var(--x)] text-red-500"}, "text-red-500"},
		{"arbitrary property", []string{"[mask-type:luminance] [mask-type:alpha]"}, "[mask-type:alpha]"},
		{"different arbitrary properties", []string{"[mask-type:alpha] [--scroll:0]"}, "[mask-type:alpha] [--scroll:0]"},
		{"modifiers scope conflicts", []string{"hover:bg-red-500 bg-blue-500 hover:bg-green-500"}, "bg-blue-500 hover:bg-green-500"},
		{"modifier order insensitive", []string{"hover:focus:bg-red-500 focus:hover:bg-blue-500"}, "focus:hover:bg-blue-500"},
		{"arbitrary variant order matters", []string{"[&>*]:hover:p-2 hover:[&>*]:p-4"}, "[&>*]:hover:p-2 hover:[&>*]:p-4"},
		{"data attribute variant", []string{"data-[state=open]:bg-accent data-[state=open]:bg-muted"}, "data-[state=open]:bg-muted"},
		{"important prefix", []string{"!p-2 p-4 !p-3"}, "p-4 !p-3"},
		{"important suffix", []string{"p-2! p-4!"}, "p-4!"},
		{"negative values", []string{"-mt-2 mt-4"}, "mt-4"},
		{"negative after positive", []string{"mt-4 -mt-2"}, "-mt-2"},
		{"fractions", []string{"w-1/2 w-full"}, "w-full"},
		{"translate fraction", []string{"-translate-x-1/2 translate-x-0"}, "translate-x-0"},
		{"font size with line height postfix", []string{"leading-9 text-lg/7"}, "text-lg/7"},
		{"font size without postfix keeps leading", []string{"leading-9 text-lg"}, "leading-9 text-lg"},
		{"size removes width and height", []string{"w-4 h-4 size-6"}, "size-6"},
		{"flex removes grow", []string{"grow-0 flex-1"}, "flex-1"},
		{"flex direction vs flex", []string{"flex-row flex-col flex-1"}, "flex-col flex-1"},
		{"ring width vs color", []string{"ring-2 ring-ring ring-0"}, "ring-ring ring-0"},
		{"ring offset", []string{"ring-offset-2 ring-offset-background ring-offset-0"}, "ring-offset-background ring-offset-0"},
		{"shadow size vs color", []string{"shadow-sm shadow-black shadow-lg"}, "shadow-black shadow-lg"},
		{"font weight vs family", []string{"font-medium font-sans font-bold"}, "font-sans font-bold"},
		{"unknown classes kept", []string{"fade-in-0 zoom-in-95 p-2"}, "fade-in-0 zoom-in-95 p-2"},
		{"duplicate unknown removed", []string{"peer group peer"}, "group peer"},
		{"overflow removes axes", []string{"overflow-x-auto overflow-hidden"}, "overflow-hidden"},
		{"inset removes sides", []string{"top-0 left-2 inset-0"}, "inset-0"},
		{"gap", []string{"gap-x-2 gap-4"}, "gap-4"},
		{"arbitrary width", []string{"w-[--sidebar-width] w-[calc(100%-2rem)]"}, "w-[calc(100%-2rem)]"},
		{"outline", []string{"outline-none outline-dashed"}, "outline-dashed"},
		{"opacity", []string{"opacity-50 disabled:opacity-50 opacity-100"}, "disabled:opacity-50 opacity-100"},
		{"order preserved", []string{"p-2 block text-sm", "m-1"}, "p-2 block text-sm m-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.inputs...))
		})
	}
}

func TestMergeWithPrefix(t *testing.T) {
	m := New(Config{Prefix: "tw-"})

	assert.Equal(t, "tw-p-4", m.Merge("tw-p-2 tw-p-4"))
	assert.Equal(t, "p-2 tw-p-4 p-3", m.Merge("p-2 tw-p-4 p-3"), "unprefixed classes are unknown")
	assert.Equal(t, "hover:tw-bg-blue-500", m.Merge("hover:tw-bg-red-500 hover:tw-bg-blue-500"))
	assert.Equal(t, "-tw-mt-2", m.Merge("tw-mt-4 -tw-mt-2"))
}

func TestMergeExtraGroups(t *testing.T) {
	m := New(Config{
		ExtraGroups: map[string][]string{
			"font-size": {"text-huge"},
			"elevation": {"elevated", "flat"},
		},
		ExtraConflicts: map[string][]string{
			"elevation": {"shadow"},
		},
	})

	assert.Equal(t, "text-huge", m.Merge("text-sm text-huge"))
	assert.Equal(t, "flat", m.Merge("elevated flat"))
	assert.Equal(t, "flat", m.Merge("shadow-lg flat"))
	assert.Equal(t, "flat shadow-lg", m.Merge("flat shadow-lg"))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", Join())
	assert.Equal(t, "a b c", Join("a", "", "  b  c "))
	assert.Equal(t, "p-2 p-4", Join("p-2", "p-4"), "join does not resolve conflicts")
}

func TestParseClass(t *testing.T) {
	pc := parseClass("hover:[&>*]:!-mt-2/50")
	assert.Equal(t, []string{"hover", "[&>*]"}, pc.modifiers)
	assert.True(t, pc.important)
	assert.Equal(t, "-mt-2/50", pc.base)
	require.GreaterOrEqual(t, pc.postfixPos, 0)
	assert.Equal(t, "/50", pc.base[pc.postfixPos:])

	pc = parseClass("bg-[url(/img/a.png)]")
	assert.Empty(t, pc.modifiers)
	assert.Equal(t, -1, pc.postfixPos)

	pc = parseClass("data-[state=open]:p-2")
	assert.Equal(t, []string{"data-[state=open]"}, pc.modifiers)
	assert.Equal(t, "p-2", pc.base)
}

func TestModifierKey(t *testing.T) {
	assert.Equal(t, "", modifierKey(nil))
	assert.Equal(t, "focus:hover", modifierKey([]string{"hover", "focus"}))
	assert.Equal(t, "dark:md:[&>*]:focus:hover", modifierKey([]string{"md", "dark", "[&>*]", "hover", "focus"}))
}

func TestCache(t *testing.T) {
	m := New(Config{CacheSize: 2})

	assert.Equal(t, "p-4", m.Merge("p-2 p-4"))
	assert.Equal(t, "p-4", m.Merge("p-2 p-4"))
	assert.Equal(t, 1, m.cache.len())

	m.Merge("m-1 m-2")
	m.Merge("w-1 w-2")
	assert.Equal(t, 2, m.cache.len(), "cache evicts beyond its size")

	_, ok := m.cache.get("p-2 p-4")
	assert.False(t, ok, "least recently used entry evicted")
}

func TestMergeIsIdempotent(t *testing.T) {
	inputs := []string{
		"px-2 py-1 bg-red-500 hover:bg-red-600 p-3",
		"inline-flex items-center justify-center rounded-md text-sm font-medium h-9 px-4 py-2 h-10",
		"text-sm text-muted-foreground [&_p]:leading-relaxed",
	}
	for i, in := range inputs {
		t.Run(fmt.Sprintf("input-%d", i), func(t *testing.T) {
			once := Merge(in)
			assert.Equal(t, once, Merge(once))
		})
	}
}

func BenchmarkMerge(b *testing.B) {
	m := New(Config{})
	in := "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all disabled:pointer-events-none disabled:opacity-50 bg-primary text-primary-foreground shadow-xs hover:bg-primary/90 h-9 px-4 py-2 has-[>svg]:px-3 h-10 rounded-lg px-6"
	for i := 0; i < b.N; i++ {
		m.Merge(in)
	}
}
