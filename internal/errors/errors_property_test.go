//go:build property

package errors

import (
	"fmt"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestErrorCollectorProperties validates error collection and aggregation properties
func TestErrorCollectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("concurrent issue addition loses nothing", prop.ForAll(
		func(goroutineCount int, issuesPerGoroutine int) bool {
			collector := NewErrorCollector()

			var wg sync.WaitGroup
			for g := 0; g < goroutineCount; g++ {
				wg.Add(1)
				go func(id int) {
					defer wg.Done()
					for e := 0; e < issuesPerGoroutine; e++ {
						collector.Add(Issue{
							Component: fmt.Sprintf("component_%d", id),
							Example:   fmt.Sprintf("example_%03d", e),
							Message:   "mismatch",
							Severity:  SeverityError,
						})
					}
				}(g)
			}
			wg.Wait()

			return collector.Len() == goroutineCount*issuesPerGoroutine
		},
		gen.IntRange(1, 20),
		gen.IntRange(1, 50),
	))

	properties.Property("issues come back sorted", prop.ForAll(
		func(names []string) bool {
			collector := NewErrorCollector()
			for _, n := range names {
				collector.Add(Issue{Component: n, Severity: SeverityWarning})
			}
			issues := collector.Issues()
			for i := 1; i < len(issues); i++ {
				if issues[i-1].Component > issues[i].Component {
					return false
				}
			}
			return len(issues) == len(names)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("warnings alone never fail", prop.ForAll(
		func(n int) bool {
			collector := NewErrorCollector()
			for i := 0; i < n; i++ {
				collector.Add(Issue{Severity: SeverityWarning, Message: "note"})
			}
			return !collector.HasErrors() && collector.Err() == nil
		},
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t)
}
