//go:build property

package twmerge

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var utilityPool = []string{
	"p-1", "p-2", "px-3", "py-4", "pt-1", "m-2", "mx-auto", "-mt-2",
	"block", "flex", "hidden", "inline-flex", "absolute", "relative",
	"text-sm", "text-lg", "text-red-500", "text-left", "text-center",
	"bg-white", "bg-black/50", "bg-[#fff]", "border", "border-2", "border-dashed",
	"rounded", "rounded-t-md", "rounded-bl-lg", "shadow-sm", "shadow-black",
	"w-full", "w-1/2", "h-4", "size-6", "gap-2", "gap-x-1", "opacity-50",
	"fade-in-0", "peer", "group", "[mask-type:alpha]",
}

var modifierPool = []string{"", "hover:", "focus:", "md:", "dark:hover:", "data-[state=open]:", "!"}

func genClassList() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(utilityPool)*len(modifierPool)-1)).Map(func(idx []int) string {
		parts := make([]string, len(idx))
		for i, n := range idx {
			parts[i] = modifierPool[n%len(modifierPool)] + utilityPool[n/len(modifierPool)]
		}
		return strings.Join(parts, " ")
	})
}

func TestMergeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("merge is idempotent", prop.ForAll(
		func(classes string) bool {
			once := Merge(classes)
			return Merge(once) == once
		},
		genClassList(),
	))

	properties.Property("output is a subsequence of the input", prop.ForAll(
		func(classes string) bool {
			in := strings.Fields(classes)
			out := strings.Fields(Merge(classes))
			j := 0
			for _, c := range in {
				if j < len(out) && out[j] == c {
					j++
				}
			}
			return j == len(out)
		},
		genClassList(),
	))

	properties.Property("the last class always survives", prop.ForAll(
		func(classes string) bool {
			in := strings.Fields(classes)
			if len(in) == 0 {
				return Merge(classes) == ""
			}
			out := strings.Fields(Merge(classes))
			return len(out) > 0 && out[len(out)-1] == in[len(in)-1]
		},
		genClassList(),
	))

	properties.Property("appending a class list re-merges to the same result", prop.ForAll(
		func(a, b string) bool {
			return Merge(a, b) == Merge(Merge(a), b)
		},
		genClassList(),
		genClassList(),
	))

	properties.Property("cached and uncached mergers agree", prop.ForAll(
		func(classes string) bool {
			return New(Config{}).Merge(classes) == New(Config{CacheSize: 8}).Merge(classes)
		},
		genClassList(),
	))

	properties.TestingRun(t)
}
