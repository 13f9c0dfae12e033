package matching_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/matching"
)

func TestAugmentingPath_SingleEdge(t *testing.T) {
	g := bigraph.New()
	require.NoError(t, g.AddVertex("a", bigraph.Left))
	require.NoError(t, g.AddVertex("x", bigraph.Right))
	require.NoError(t, g.AddEdge("a", "x"))

	path, found, err := matching.AugmentingPath(g, matching.New(), "a")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"a", "x"}, path)
}

// TestAugmentingPath_Alternates: with a–x matched, the search from b must
// route b → x → a → y, leaving over the matched edge x–a.
func TestAugmentingPath_Alternates(t *testing.T) {
	g := sampleGraph(t)
	m, err := matching.FromEdges(g, matching.NewEdge("a", "x"))
	require.NoError(t, err)

	path, found, err := matching.AugmentingPath(g, m, "b")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"b", "x", "a", "y"}, path)
}

// TestAugmentingPath_ShortestPreferred: a direct free neighbor wins over a
// longer alternating detour (BFS explores by depth).
func TestAugmentingPath_ShortestPreferred(t *testing.T) {
	g := sampleGraph(t)
	require.NoError(t, g.AddVertex("z", bigraph.Right))
	require.NoError(t, g.AddEdge("b", "z"))
	m, err := matching.FromEdges(g, matching.NewEdge("a", "x"))
	require.NoError(t, err)

	path, found, err := matching.AugmentingPath(g, m, "b")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, path, 2)
	require.Equal(t, "b", path[0])
}

func TestAugmentingPath_NoneExists(t *testing.T) {
	// Left {a,b} both adjacent only to x; with a–x matched, b is stuck.
	g := bigraph.New()
	require.NoError(t, g.AddVertex("a", bigraph.Left))
	require.NoError(t, g.AddVertex("b", bigraph.Left))
	require.NoError(t, g.AddVertex("x", bigraph.Right))
	require.NoError(t, g.AddEdge("a", "x"))
	require.NoError(t, g.AddEdge("b", "x"))
	m, err := matching.FromEdges(g, matching.NewEdge("a", "x"))
	require.NoError(t, err)

	path, found, err := matching.AugmentingPath(g, m, "b")
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, path)
}

func TestAugmentingPath_Errors(t *testing.T) {
	g := sampleGraph(t)
	m, err := matching.FromEdges(g, matching.NewEdge("a", "x"))
	require.NoError(t, err)

	_, _, err = matching.AugmentingPath(nil, m, "a")
	require.ErrorIs(t, err, matching.ErrGraphNil)

	_, _, err = matching.AugmentingPath(g, nil, "a")
	require.ErrorIs(t, err, matching.ErrMatchingNil)

	_, _, err = matching.AugmentingPath(g, m, "missing")
	require.ErrorIs(t, err, matching.ErrVertexNotFound)

	_, _, err = matching.AugmentingPath(g, m, "x")
	require.ErrorIs(t, err, matching.ErrNotLeftVertex)

	_, _, err = matching.AugmentingPath(g, m, "a")
	require.ErrorIs(t, err, matching.ErrStartCovered)
}

// TestAugmentingPath_Cancellation verifies a cancelled context halts the
// search promptly.
func TestAugmentingPath_Cancellation(t *testing.T) {
	g := bigraph.New()
	// long alternating chain L0–R0–L1–R1–…
	const n = 64
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("L%02d", i), bigraph.Left))
		require.NoError(t, g.AddVertex(fmt.Sprintf("R%02d", i), bigraph.Right))
	}
	m := matching.New()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("L%02d", i), fmt.Sprintf("R%02d", i)))
		if i > 0 {
			require.NoError(t, g.AddEdge(fmt.Sprintf("L%02d", i), fmt.Sprintf("R%02d", i-1)))
		}
	}
	var err error
	for i := 1; i < n; i++ {
		m, err = matching.Augment(g, m, []string{fmt.Sprintf("L%02d", i), fmt.Sprintf("R%02d", i)})
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, _, err = matching.AugmentingPath(g, m, "L00", matching.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
