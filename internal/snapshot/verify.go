package snapshot

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/logging"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/internal/renderer"
)

// Status is the outcome of checking one example.
type Status int

const (
	StatusMatch Status = iota
	StatusMismatch
	StatusMissing
	StatusError
	StatusUpdated
)

func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusMismatch:
		return "mismatch"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusUpdated:
		return "updated"
	default:
		return "unknown"
	}
}

// Result is the outcome for one example.
type Result struct {
	Component string `json:"component"`
	Example   string `json:"example"`
	Status    Status `json:"-"`
	Diff      string `json:"diff,omitempty"`
	Err       error  `json:"-"`
}

// OK reports whether the example needs no attention.
func (r Result) OK() bool {
	return r.Status == StatusMatch || r.Status == StatusUpdated
}

// Verifier renders every registered example and compares it with the store.
type Verifier struct {
	registry    *registry.ComponentRegistry
	renderer    *renderer.ComponentRenderer
	store       *Store
	logger      logging.Logger
	concurrency int
}

// NewVerifier creates a verifier.
func NewVerifier(reg *registry.ComponentRegistry, r *renderer.ComponentRenderer, store *Store, logger logging.Logger) *Verifier {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Verifier{
		registry:    reg,
		renderer:    r,
		store:       store,
		logger:      logger.WithComponent("snapshot"),
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// Verify compares every example with its golden file. Per-example problems
// are reported in the results; the error is only set when the run itself was
// cut short.
func (v *Verifier) Verify(ctx context.Context) ([]Result, error) {
	return v.run(ctx, false)
}

// Update rewrites the golden file of every example that renders.
func (v *Verifier) Update(ctx context.Context) ([]Result, error) {
	return v.run(ctx, true)
}

type job struct {
	component string
	example   string
}

func (v *Verifier) jobs() []job {
	var jobs []job
	for _, c := range v.registry.List() {
		for _, ex := range c.Examples {
			jobs = append(jobs, job{component: c.Name, example: ex.Name})
		}
	}
	return jobs
}

func (v *Verifier) run(ctx context.Context, update bool) ([]Result, error) {
	op := logging.StartOperation(v.logger, "snapshot.verify")

	jobs := v.jobs()
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = v.check(gctx, j, update)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		op.EndWithError(ctx, err)
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].Component != results[b].Component {
			return results[a].Component < results[b].Component
		}
		return results[a].Example < results[b].Example
	})

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	op.End(ctx, "examples", len(results), "failed", failed, "update", update)
	return results, nil
}

func (v *Verifier) check(ctx context.Context, j job, update bool) Result {
	res := Result{Component: j.component, Example: j.example}

	rendered, err := v.renderer.RenderExample(ctx, j.component, j.example)
	if err != nil {
		res.Status, res.Err = StatusError, err
		return res
	}
	got, err := Lines(rendered)
	if err != nil {
		res.Status, res.Err = StatusError, fmt.Errorf("parse rendered html: %w", err)
		return res
	}

	if update {
		normalized, _ := Normalize(rendered)
		if err := v.store.Write(j.component, j.example, normalized); err != nil {
			res.Status, res.Err = StatusError, err
			return res
		}
		res.Status = StatusUpdated
		return res
	}

	golden, err := v.store.Read(j.component, j.example)
	if err != nil {
		if uierrors.IsNotFound(err) {
			res.Status, res.Err = StatusMissing, err
		} else {
			res.Status, res.Err = StatusError, err
		}
		return res
	}
	want, err := Lines(golden)
	if err != nil {
		res.Status, res.Err = StatusError, fmt.Errorf("parse golden html: %w", err)
		return res
	}

	if diff := cmp.Diff(want, got); diff != "" {
		res.Status = StatusMismatch
		res.Diff = diff
		res.Err = uierrors.NewValidationError(uierrors.ErrCodeSnapshotMismatch, "snapshot differs").
			WithComponent(j.component).WithExample(j.example)
		return res
	}

	res.Status = StatusMatch
	return res
}

// Collect turns failed results into collector issues.
func Collect(results []Result) *uierrors.ErrorCollector {
	collector := uierrors.NewErrorCollector()
	for _, r := range results {
		if r.OK() {
			continue
		}
		msg := r.Status.String()
		if r.Err != nil {
			msg = r.Err.Error()
		}
		collector.Add(uierrors.Issue{
			Component: r.Component,
			Example:   r.Example,
			Message:   msg,
			Severity:  uierrors.SeverityError,
		})
	}
	return collector
}
