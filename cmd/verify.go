package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/internal/snapshot"
)

var verifyCmd = &cobra.Command{
	Use:     "verify",
	Aliases: []string{"v"},
	Short:   "Compare every example with its golden snapshot",
	Long: `Render every fixture example and compare the normalized HTML with the golden
file at <dir>/<component>/<example>.html. Attribute order, class order and
whitespace differences are ignored.

Exits non-zero when an example is missing, differs or fails to render.

Examples:
  tailblocks verify                  # Check against testdata/snapshots
  tailblocks verify --update         # Rewrite the golden files
  tailblocks verify --dir golden     # Use another snapshot directory`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

var verifyUpdate bool

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVarP(&verifyUpdate, "update", "u", false, "Write golden files instead of comparing")
	verifyCmd.Flags().String("dir", "", "Snapshot directory (default snapshots.dir)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	if a.fixtureErrs.HasErrors() {
		return fmt.Errorf("fixtures failed to load: %w", a.fixtureErrs.Err())
	}

	store := snapshot.NewStore(a.cfg.Snapshots.Dir)
	verifier := snapshot.NewVerifier(a.registry, a.renderer, store, a.logger)

	op := logging.StartOperation(a.logger, "verify")
	var results []snapshot.Result
	if verifyUpdate {
		results, err = verifier.Update(cmd.Context())
	} else {
		results, err = verifier.Verify(cmd.Context())
	}
	if err != nil {
		op.EndWithError(cmd.Context(), err)
		return err
	}
	op.End(cmd.Context(), "examples", len(results))

	out := cmd.OutOrStdout()
	counts := report(out, results)

	known := make(map[string]bool, len(results))
	for _, r := range results {
		known[r.Component+"/"+r.Example] = true
	}
	stale, err := store.Stale(known)
	if err != nil {
		return fmt.Errorf("scan %s: %w", store.Dir(), err)
	}
	for _, p := range stale {
		fmt.Fprintf(out, "stale     %s\n", p)
	}

	fmt.Fprintf(out, "\n%d examples: %d match, %d updated, %d mismatch, %d missing, %d error\n",
		len(results),
		counts[snapshot.StatusMatch],
		counts[snapshot.StatusUpdated],
		counts[snapshot.StatusMismatch],
		counts[snapshot.StatusMissing],
		counts[snapshot.StatusError])

	if collector := snapshot.Collect(results); collector.HasErrors() {
		if counts[snapshot.StatusMissing] > 0 && !verifyUpdate {
			fmt.Fprintln(out, "Run 'tailblocks verify --update' to create missing snapshots.")
		}
		return fmt.Errorf("%d of %d examples failed verification", collector.Len(), len(results))
	}
	return nil
}

// report prints one line per example that is not a plain match, with its
// diff, and counts results by status.
func report(out io.Writer, results []snapshot.Result) map[snapshot.Status]int {
	counts := make(map[snapshot.Status]int)
	for _, r := range results {
		counts[r.Status]++
		if r.Status == snapshot.StatusMatch {
			continue
		}
		fmt.Fprintf(out, "%-9s %s/%s\n", r.Status, r.Component, r.Example)
		if r.Err != nil {
			fmt.Fprintf(out, "          %v\n", r.Err)
		}
		if r.Diff != "" {
			fmt.Fprintln(out, r.Diff)
		}
	}
	return counts
}
