package chartparse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func leaf(start, end int, label, logvar string) *Edge {
	return NewLeafEdge(start, end, label, logvar, nil)
}

// TestFindPathsSkippable is spec scenario S4: NP -> Det? N, with only an
// N edge present. The skip branch must still produce exactly one match.
func TestFindPathsSkippable(t *testing.T) {
	chart := NewChart()
	chart.AddEdge(leaf(0, 1, "N", "x0"))

	pattern := []*RuleItem{
		{Symbol: "Det", Skippable: true},
		{Symbol: "N"},
	}

	var matches [][]*Edge
	chart.FindPaths(pattern, func(edges []*Edge, items []*RuleItem) {
		matches = append(matches, edges)
	})

	require.Len(t, matches, 1)
	require.Len(t, matches[0], 1)
	require.Equal(t, "N", matches[0][0].Label)
}

// TestFindPathsRepeatable is spec scenario S5: X -> a+, with three
// consecutive "a" edges. Every contiguous non-empty subsequence must
// be found exactly once.
func TestFindPathsRepeatable(t *testing.T) {
	chart := NewChart()
	chart.AddEdge(leaf(0, 1, "a", "x0"))
	chart.AddEdge(leaf(1, 2, "a", "x1"))
	chart.AddEdge(leaf(2, 3, "a", "x2"))

	pattern := []*RuleItem{{Symbol: "a", Repeatable: true}}

	var got []span
	chart.FindPaths(pattern, func(edges []*Edge, items []*RuleItem) {
		got = append(got, span{edges[0].Start, edges[len(edges)-1].End})
	})

	want := []span{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	requireSameSpans(t, want, got)
}

func requireSameSpans(t *testing.T, want, got []span) {
	t.Helper()
	require.Len(t, got, len(want))
	seen := make(map[span]bool, len(got))
	for _, s := range got {
		seen[s] = true
	}
	for _, s := range want {
		require.True(t, seen[s], fmt.Sprintf("missing expected span %+v", s))
	}
}

type span struct{ start, end int }

// TestFindPathsSuppressesEmptyMatches ensures a pattern that only
// matches zero edges (an all-skippable pattern with no matching edge
// available) never invokes the callback.
func TestFindPathsSuppressesEmptyMatches(t *testing.T) {
	chart := NewChart()
	chart.AddEdge(leaf(0, 1, "N", "x0"))

	pattern := []*RuleItem{{Symbol: "Det", Skippable: true}}

	called := false
	chart.FindPaths(pattern, func(edges []*Edge, items []*RuleItem) {
		called = true
	})

	require.False(t, called, "a fully-skipped, zero-edge match must be suppressed")
}

func TestAllEdgesOrdering(t *testing.T) {
	chart := NewChart()
	a := leaf(0, 2, "A", "x0")
	b := leaf(0, 1, "B", "x1")
	c := NewDerivedEdge(0, 2, "C", "g1", []*RewritingSystem{NewRewritingSystem()}, 2, nil)
	chart.AddEdge(a)
	chart.AddEdge(b)
	chart.AddEdge(c)

	all := chart.AllEdges(false)
	require.Len(t, all, 3)
	// start asc (all start 0 here), then end desc: the two end=2 edges
	// (a, level 0, and c, level 2) must precede the end=1 edge (b).
	require.Equal(t, 2, all[0].End)
	require.Equal(t, 2, all[1].End)
	require.Equal(t, 1, all[2].End)
	// among the end=2 edges, level desc puts c (level 2) before a (level 0).
	require.Equal(t, "C", all[0].Label)
	require.Equal(t, "A", all[1].Label)
}

func TestAllEdgesOnlyUnused(t *testing.T) {
	chart := NewChart()
	a := leaf(0, 1, "A", "x0")
	b := leaf(0, 1, "B", "x1")
	a.MarkUsed()
	chart.AddEdge(a)
	chart.AddEdge(b)

	unused := chart.AllEdges(true)
	require.Len(t, unused, 1)
	require.Equal(t, "B", unused[0].Label)
}
