package matching

import (
	"context"
	"fmt"

	"github.com/katalvlaran/bimatch/bigraph"
)

// searcher encapsulates the mutable state of one alternating breadth-first
// search. The search alternates edge classes by side: from a left vertex
// it may cross any graph edge *not* in the matching; from a right vertex
// it may only follow the unique matching edge back to the left side.
// Visited sets per side guarantee no vertex repeats, which bounds the
// search and keeps the resulting path simple.
type searcher struct {
	graph        *bigraph.Graph
	m            *Matching
	ctx          context.Context
	start        string
	queue        []string // frontier of left-side vertices
	visitedLeft  map[string]struct{}
	visitedRight map[string]struct{}
	// parentRight[r] is the left vertex whose non-matching edge discovered r.
	parentRight map[string]string
}

// searchOutcome is the raw result of one alternating BFS: either an
// augmenting path, or nil path plus the final frontier. The frontier is
// what the driver turns into a Hall deficiency witness: when the search
// is exhausted, every visited right vertex is matched into the visited
// left set, so visitedLeft is deficient by exactly one.
type searchOutcome struct {
	path         []string
	visitedLeft  map[string]struct{}
	visitedRight map[string]struct{}
}

// AugmentingPath searches for a shortest augmenting path from the
// unmatched left vertex start: a path start…t alternating between
// non-matching and matching edges whose far endpoint t is an unmatched
// right vertex. BFS (rather than DFS) yields the fewest-edges path.
//
// It returns the path and found=true on success, or found=false when no
// augmenting path from start exists in the current matching — a normal
// outcome, not an error.
//
// Errors: ErrGraphNil, ErrMatchingNil, ErrVertexNotFound, ErrNotLeftVertex,
// ErrStartCovered (the last three are caller bugs per the construction
// discipline), ErrOptionViolation, or a context error on cancellation.
//
// Complexity: O(V + E) per search. Memory: O(V).
func AugmentingPath(g *bigraph.Graph, m *Matching, start string, opts ...Option) ([]string, bool, error) {
	if g == nil {
		return nil, false, ErrGraphNil
	}
	if m == nil {
		return nil, false, ErrMatchingNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, false, err
	}

	side, err := g.SideOf(start)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}
	if side != bigraph.Left {
		return nil, false, fmt.Errorf("%w: %q", ErrNotLeftVertex, start)
	}
	if m.Covers(start) {
		return nil, false, fmt.Errorf("%w: %q", ErrStartCovered, start)
	}

	out, err := alternatingBFS(o.ctx, g, m, start)
	if err != nil {
		return nil, false, err
	}

	return out.path, out.path != nil, nil
}

// alternatingBFS runs the search proper. Preconditions (validated by the
// callers): start exists, lies on the left side, and is uncovered.
func alternatingBFS(ctx context.Context, g *bigraph.Graph, m *Matching, start string) (*searchOutcome, error) {
	s := &searcher{
		graph:        g,
		m:            m,
		ctx:          ctx,
		start:        start,
		queue:        []string{start},
		visitedLeft:  map[string]struct{}{start: {}},
		visitedRight: make(map[string]struct{}),
		parentRight:  make(map[string]string),
	}

	for len(s.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		default:
		}

		u := s.queue[0]
		s.queue = s.queue[1:]

		target, err := s.expand(u)
		if err != nil {
			return nil, err
		}
		if target != "" {
			return &searchOutcome{
				path:         s.reconstruct(target),
				visitedLeft:  s.visitedLeft,
				visitedRight: s.visitedRight,
			}, nil
		}
	}

	// Exhausted: no augmenting path from start in this matching.
	return &searchOutcome{visitedLeft: s.visitedLeft, visitedRight: s.visitedRight}, nil
}

// expand crosses every admissible non-matching edge out of the left vertex
// u. Each newly reached right vertex either terminates the search (it is
// unmatched — returned as target) or contributes its matching partner to
// the left frontier.
func (s *searcher) expand(u string) (string, error) {
	nbrs, err := s.graph.NeighborIDs(u)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	for _, r := range nbrs {
		// Only non-matching edges may be crossed leftward→rightward.
		if s.m.ContainsEdge(u, r) {
			continue
		}
		if _, seen := s.visitedRight[r]; seen {
			continue
		}
		s.visitedRight[r] = struct{}{}
		s.parentRight[r] = u

		if !s.m.Covers(r) {
			// Unmatched right vertex at even distance: augmenting path found.
			return r, nil
		}

		// Matched edge is the only way back to the left side.
		partner, oppErr := s.m.Opposite(r)
		if oppErr != nil {
			return "", oppErr
		}
		if _, seen := s.visitedLeft[partner]; !seen {
			s.visitedLeft[partner] = struct{}{}
			s.queue = append(s.queue, partner)
		}
	}

	return "", nil
}

// reconstruct walks the parent links back from the terminal right vertex
// to the start, then reverses, producing start…target with non-matching
// edges at even positions and matching edges at odd positions.
func (s *searcher) reconstruct(target string) []string {
	rev := []string{target}
	for cur := target; ; {
		l := s.parentRight[cur]
		rev = append(rev, l)
		if l == s.start {
			break
		}
		// Interior left vertices were reached over their matching edge.
		cur = s.m.partner[l]
		rev = append(rev, cur)
	}
	// reverse to get start → target
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
