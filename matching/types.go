// Package matching provides tunable options and error definitions for the
// bipartite matching algorithms over a bigraph.Graph.
package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for matching construction and queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrMatchingNil is returned if a nil matching pointer is passed.
	ErrMatchingNil = errors.New("matching: matching is nil")

	// ErrNotMatched is returned by Opposite for a vertex outside the support.
	ErrNotMatched = errors.New("matching: vertex not covered by matching")

	// ErrOverlappingSupport is returned when two matchings share a vertex.
	ErrOverlappingSupport = errors.New("matching: overlapping supports")

	// ErrInvalidPath is returned when a path does not alternate correctly,
	// repeats a vertex, or has a covered endpoint.
	ErrInvalidPath = errors.New("matching: invalid augmenting path")

	// ErrEdgeNotInGraph is returned when a matching edge is absent from the graph.
	ErrEdgeNotInGraph = errors.New("matching: edge not present in graph")

	// ErrVertexNotFound is returned when a referenced vertex does not exist.
	ErrVertexNotFound = errors.New("matching: vertex not found")

	// ErrNotLeftVertex is returned when a search is started from the right side.
	ErrNotLeftVertex = errors.New("matching: start vertex not on the left side")

	// ErrStartCovered is returned when a search is started from a covered vertex.
	ErrStartCovered = errors.New("matching: start vertex already covered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrBudgetExceeded is returned when the search budget runs out before
	// the driver finishes.
	ErrBudgetExceeded = errors.New("matching: search budget exceeded")
)

// HallViolation is the expected non-success outcome of Saturate: a witness
// that Hall's condition fails, so no matching saturates the left side.
// It carries the deficient subset of the left side and its neighbor image,
// both sorted; by construction len(Image) < len(Set).
//
// HallViolation implements error so the driver can surface it through the
// usual error return; callers branch on it with errors.As.
type HallViolation struct {
	// Set is the deficient subset S of the left side.
	Set []string

	// Image is N(S), the union of graph-neighbors of S.
	Image []string
}

// Error renders the witness in a human-checkable form.
func (e *HallViolation) Error() string {
	return fmt.Sprintf("matching: Hall violation: |N(S)|=%d < |S|=%d for S={%s}, N(S)={%s}",
		len(e.Image), len(e.Set), strings.Join(e.Set, ","), strings.Join(e.Image, ","))
}

// Option configures the search and driver functions via functional
// arguments. If an Option is invalid (e.g. negative budget), it is
// recorded internally and surfaced as ErrOptionViolation on invocation.
type Option func(*options)

// options holds parameters and callbacks shared by AugmentingPath,
// Saturate, and Maximum.
type options struct {
	// ctx allows cancellation and deadlines.
	ctx context.Context

	// searchBudget, if > 0, bounds the number of alternating searches a
	// driver may run; 0 disables the limit.
	searchBudget int

	// onAugment is called after each successful augmentation with the
	// applied path.
	onAugment func(path []string)

	// internal error recorded during option parsing
	err error
}

// defaultOptions returns options with sane defaults:
//   - context.Background()
//   - no search budget
//   - no-op augmentation hook.
func defaultOptions() options {
	return options{
		ctx:          context.Background(),
		searchBudget: 0,
		onAugment:    func([]string) {},
	}
}

// resolveOptions applies opts over the defaults and reports any recorded
// violation.
func resolveOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithSearchBudget bounds the number of alternating-path searches a driver
// may run, capping the O(V·(V+E)) worst case on degenerate inputs.
//
//	n > 0:  at most n searches, then ErrBudgetExceeded
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithSearchBudget(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: search budget cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no limit"
			o.searchBudget = 0
		default:
			o.searchBudget = n
		}
	}
}

// WithOnAugment registers a callback invoked after every applied
// augmentation with the augmenting path (start..end, alternating).
func WithOnAugment(fn func(path []string)) Option {
	return func(o *options) {
		if fn != nil {
			o.onAugment = fn
		}
	}
}

// sortedKeys returns the keys of set in ascending lexicographic order.
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
