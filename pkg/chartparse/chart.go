package chartparse

import "sort"

// Chart is an indexed store of edges keyed by start position. No edge
// is ever removed; the used flag is the only in-place mutation an edge
// ever receives after insertion.
type Chart struct {
	buckets map[int][]*Edge
}

// NewChart returns an empty chart.
func NewChart() *Chart {
	return &Chart{buckets: make(map[int][]*Edge)}
}

// AddEdge appends e to the bucket keyed by e.Start.
func (c *Chart) AddEdge(e *Edge) {
	c.buckets[e.Start] = append(c.buckets[e.Start], e)
}

// AllEdges returns every edge in the chart — or, if onlyUnused is
// true, only those not yet marked used — sorted by (start asc, end
// desc, level desc, label asc). That order is a stable presentation
// order that surfaces maximal-span derivations first; it carries no
// meaning to the parser itself.
func (c *Chart) AllEdges(onlyUnused bool) []*Edge {
	var all []*Edge
	for _, bucket := range c.buckets {
		for _, e := range bucket {
			if onlyUnused && e.Used() {
				continue
			}
			all = append(all, e)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End > b.End
		}
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		return a.Label < b.Label
	})
	return all
}

// PathCallback receives one completed match: the edges consumed, and
// the pattern item each edge satisfied, in parallel order.
type PathCallback func(edges []*Edge, items []*RuleItem)

// FindPaths launches, for every start position present in the chart, a
// depth-first enumeration of edge sequences matching pattern — a
// right-hand side with skippable/repeatable items — and invokes cb
// once per distinct matching sequence. Start positions are visited in
// ascending numeric order for deterministic output; within a position,
// matches are explored in the chart's own bucket order.
func (c *Chart) FindPaths(pattern []*RuleItem, cb PathCallback) {
	starts := make([]int, 0, len(c.buckets))
	for s := range c.buckets {
		starts = append(starts, s)
	}
	sort.Ints(starts)
	for _, s := range starts {
		c.findPathsFrom(s, pattern, nil, nil, true, cb)
	}
}

// findPathsFrom is the recursive enumerator described in the spec:
// two parallel stacks (edges chosen, items matched) and a canSkip flag
// that is true on first entry to a pattern position and false after a
// repeat step, so repetition never re-triggers a skip of the repeated
// item. Empty matches (zero edges chosen) are suppressed.
func (c *Chart) findPathsFrom(pos int, items []*RuleItem, edges []*Edge, matched []*RuleItem, canSkip bool, cb PathCallback) {
	if len(items) == 0 {
		if len(edges) > 0 {
			cb(append([]*Edge(nil), edges...), append([]*RuleItem(nil), matched...))
		}
		return
	}

	item := items[0]
	rest := items[1:]

	if item.Skippable && canSkip {
		c.findPathsFrom(pos, rest, edges, matched, true, cb)
	}

	for _, e := range c.buckets[pos] {
		if e.Label != item.Symbol {
			continue
		}
		nextEdges := append(append([]*Edge(nil), edges...), e)
		nextMatched := append(append([]*RuleItem(nil), matched...), item)

		c.findPathsFrom(e.End, rest, nextEdges, nextMatched, true, cb)

		if item.Repeatable {
			c.findPathsFrom(e.End, items, nextEdges, nextMatched, false, cb)
		}
	}
}
