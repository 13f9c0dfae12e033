package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/matching"
)

// SaturateSuite groups tests for the construction drivers.
type SaturateSuite struct {
	suite.Suite
}

// TestTwoByTwo: Left {a,b}, Right {x,y}, edges a–x, a–y, b–x.
// Hall holds, so Saturate covers the whole left side with two edges.
func (s *SaturateSuite) TestTwoByTwo() {
	g := sampleGraph(s.T())

	m, err := matching.Saturate(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.Len())
	require.NoError(s.T(), m.Validate(g))
	for _, l := range g.SideVertices(bigraph.Left) {
		require.True(s.T(), m.Covers(l), "left vertex %s must be saturated", l)
	}
}

// TestSoundness: a saturating matching implies Hall's condition holds on
// every subset of the left side.
func (s *SaturateSuite) TestSoundness() {
	g := sampleGraph(s.T())

	_, err := matching.Saturate(g)
	require.NoError(s.T(), err)

	for _, set := range [][]string{{"a"}, {"b"}, {"a", "b"}} {
		deficient, err := matching.IsDeficient(g, set)
		require.NoError(s.T(), err)
		require.False(s.T(), deficient)
	}
}

// TestHallViolation: three left vertices adjacent only to {x,y} cannot be
// saturated; the witness is the full left side with image {x,y}.
func (s *SaturateSuite) TestHallViolation() {
	g := crowdedGraph(s.T())

	m, err := matching.Saturate(g)
	require.Nil(s.T(), m)
	require.Error(s.T(), err)

	var hv *matching.HallViolation
	require.True(s.T(), errors.As(err, &hv), "error must be *HallViolation")
	require.Equal(s.T(), []string{"a", "b", "c"}, hv.Set)
	require.Equal(s.T(), []string{"x", "y"}, hv.Image)
	require.Less(s.T(), len(hv.Image), len(hv.Set))
}

// TestHallViolation_ProperSubset: the witness is the frontier of the
// failed search, not blindly the whole left side.
func (s *SaturateSuite) TestHallViolation_ProperSubset() {
	g := bigraph.New()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(s.T(), g.AddVertex(id, bigraph.Left))
	}
	for _, id := range []string{"x", "z"} {
		require.NoError(s.T(), g.AddVertex(id, bigraph.Right))
	}
	// a and b compete for x alone; c has its own private z.
	require.NoError(s.T(), g.AddEdge("a", "x"))
	require.NoError(s.T(), g.AddEdge("b", "x"))
	require.NoError(s.T(), g.AddEdge("c", "z"))

	_, err := matching.Saturate(g)
	var hv *matching.HallViolation
	require.True(s.T(), errors.As(err, &hv))
	require.Equal(s.T(), []string{"a", "b"}, hv.Set)
	require.Equal(s.T(), []string{"x"}, hv.Image)

	// completeness: the returned witness really is deficient
	deficient, derr := matching.IsDeficient(g, hv.Set)
	require.NoError(s.T(), derr)
	require.True(s.T(), deficient)
}

// TestSingleEdge: the smallest non-trivial instance.
func (s *SaturateSuite) TestSingleEdge() {
	g := bigraph.New()
	require.NoError(s.T(), g.AddVertex("a", bigraph.Left))
	require.NoError(s.T(), g.AddVertex("x", bigraph.Right))
	require.NoError(s.T(), g.AddEdge("a", "x"))

	m, err := matching.Saturate(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []matching.Edge{{U: "a", V: "x"}}, m.Edges())

	opp, err := m.Opposite("a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "x", opp)
	opp, err = m.Opposite("x")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "a", opp)
}

// TestEmptyLeft: nothing to saturate ⇒ empty matching, no search performed.
func (s *SaturateSuite) TestEmptyLeft() {
	g := bigraph.New()
	require.NoError(s.T(), g.AddVertex("x", bigraph.Right))

	augments := 0
	m, err := matching.Saturate(g, matching.WithOnAugment(func([]string) { augments++ }))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, m.Len())
	require.Zero(s.T(), augments)

	m, err = matching.Saturate(bigraph.New())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, m.Len())
}

// TestDeterminism: repeated runs yield identical matchings.
func (s *SaturateSuite) TestDeterminism() {
	g := sampleGraph(s.T())

	m1, err := matching.Saturate(g)
	require.NoError(s.T(), err)
	m2, err := matching.Saturate(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), m1.Edges(), m2.Edges())
}

// TestOnAugmentHook observes every applied path, in order.
func (s *SaturateSuite) TestOnAugmentHook() {
	g := sampleGraph(s.T())

	var paths [][]string
	m, err := matching.Saturate(g, matching.WithOnAugment(func(p []string) {
		paths = append(paths, p)
	}))
	require.NoError(s.T(), err)
	require.Len(s.T(), paths, m.Len(), "one augmentation per matched edge")
	require.Equal(s.T(), []string{"a", "x"}, paths[0])
	require.Equal(s.T(), []string{"b", "x", "a", "y"}, paths[1])
}

// TestSearchBudget caps the number of alternating searches.
func (s *SaturateSuite) TestSearchBudget() {
	g := sampleGraph(s.T())

	// two left vertices need two searches; one is not enough
	_, err := matching.Saturate(g, matching.WithSearchBudget(1))
	require.ErrorIs(s.T(), err, matching.ErrBudgetExceeded)

	m, err := matching.Saturate(g, matching.WithSearchBudget(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.Len())

	// zero means explicit "no limit"
	m, err = matching.Saturate(g, matching.WithSearchBudget(0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.Len())
}

// TestOptionViolation: a negative budget is rejected on invocation.
func (s *SaturateSuite) TestOptionViolation() {
	g := sampleGraph(s.T())
	_, err := matching.Saturate(g, matching.WithSearchBudget(-1))
	require.ErrorIs(s.T(), err, matching.ErrOptionViolation)
}

// TestCancellation: a cancelled context halts the driver.
func (s *SaturateSuite) TestCancellation() {
	g := sampleGraph(s.T())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := matching.Saturate(g, matching.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestNilGraph rejects a nil graph pointer.
func (s *SaturateSuite) TestNilGraph() {
	_, err := matching.Saturate(nil)
	require.ErrorIs(s.T(), err, matching.ErrGraphNil)
	_, err = matching.Maximum(nil)
	require.ErrorIs(s.T(), err, matching.ErrGraphNil)
}

// TestMaximum_OnDeficientGraph: Maximum skips stuck vertices and still
// returns the largest achievable matching.
func (s *SaturateSuite) TestMaximum_OnDeficientGraph() {
	g := crowdedGraph(s.T())

	m, err := matching.Maximum(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, m.Len(), "K_{3,2} has maximum matching size 2")
	require.NoError(s.T(), m.Validate(g))
}

// TestMaximum_AgreesWithSaturate when Hall's condition holds.
func (s *SaturateSuite) TestMaximum_AgreesWithSaturate() {
	g := sampleGraph(s.T())

	ms, err := matching.Saturate(g)
	require.NoError(s.T(), err)
	mm, err := matching.Maximum(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), ms.Edges(), mm.Edges())
}

func TestSaturateSuite(t *testing.T) {
	suite.Run(t, new(SaturateSuite))
}
