package chartparse

import (
	"fmt"
	"log"
)

// Grammar is an ordered collection of rules plus the monotonic
// fresh-logvar counter used while parsing. Rules are tried in
// insertion order at every level, which is what makes edge emission
// order deterministic.
type Grammar struct {
	rules   []*Rule
	counter int
	tracer  *log.Logger
}

// NewGrammar returns an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{}
}

// AddRule appends r to the grammar.
func (g *Grammar) AddRule(r *Rule) {
	g.rules = append(g.rules, r)
}

// SetTracer installs an optional trace logger. A nil logger (the
// default) disables tracing entirely; tracing never affects parse
// results, only observational output.
func (g *Grammar) SetTracer(l *log.Logger) {
	g.tracer = l
}

func (g *Grammar) freshVar() string {
	g.counter++
	return fmt.Sprintf("g%d", g.counter)
}

func (g *Grammar) tracef(format string, args ...interface{}) {
	if g.tracer != nil {
		g.tracer.Printf(format, args...)
	}
}

// Parse performs level-synchronous bottom-up saturation over c: at
// each level L it finds, for every rule, all RHS-matching paths whose
// maximum daughter level equals L, combines daughter theories with the
// rule's constraints, and emits a new edge at level L+1 for every
// combination whose theory disjunction survives. It repeats until a
// level produces no new edges.
func (g *Grammar) Parse(c *Chart) {
	for level := 0; ; level++ {
		var batch []*Edge
		for _, r := range g.rules {
			pattern := r.Items
			c.FindPaths(pattern, func(edges []*Edge, items []*RuleItem) {
				if maxDaughterLevel(edges) != level {
					return
				}
				gk := g.freshVar()
				theories, ok := combineTheories(edges, items, gk)
				if !ok {
					g.tracef("chartparse: rule %s rejected at level %d (%s)", r.LHS, level, gk)
					return
				}
				for _, e := range edges {
					e.MarkUsed()
				}
				start, end := edges[0].Start, edges[len(edges)-1].End
				batch = append(batch, NewDerivedEdge(start, end, r.LHS, gk, theories, level+1, edges))
			})
		}
		if len(batch) == 0 {
			g.tracef("chartparse: level %d produced no new edges, stopping", level)
			return
		}
		for _, e := range batch {
			c.AddEdge(e)
		}
		g.tracef("chartparse: level %d -> %d edges at level %d", level, len(batch), level+1)
		if g.tracer != nil && len(batch) > 0 && len(batch[0].Theories) > 0 {
			g.tracef("chartparse: sample theory for %s: %s", batch[0].Label, DumpTheory(batch[0].Theories[0]))
		}
	}
}

func maxDaughterLevel(edges []*Edge) int {
	level := 0
	for _, e := range edges {
		if e.Level > level {
			level = e.Level
		}
	}
	return level
}

// combineTheories realises the spec's theory-combination algorithm for
// one matched path: daughter theories are disjoined alternatives;
// within one alternative, the new theory is the cartesian merge of all
// chosen daughters' chosen alternatives, followed by one chosen
// rule-constraint alternative per item. Inconsistency at any step
// prunes that branch; combineTheories reports ok=false only when every
// branch has been pruned, meaning the whole path is abandoned.
func combineTheories(edges []*Edge, items []*RuleItem, parentVar string) (theories []*RewritingSystem, ok bool) {
	disjunction := []*RewritingSystem{NewRewritingSystem()}

	for i, daughter := range edges {
		item := items[i]

		disjunction = extendWithDaughter(disjunction, daughter)
		if len(disjunction) == 0 {
			return nil, false
		}

		disjunction = extendWithItemConstraints(disjunction, item, parentVar, daughter.LogVar)
		if len(disjunction) == 0 {
			return nil, false
		}
	}

	return disjunction, true
}

// extendWithDaughter cartesian-extends every theory in disjunction with
// every theory alternative of daughter, keeping only combinations whose
// merge raises no contradiction.
func extendWithDaughter(disjunction []*RewritingSystem, daughter *Edge) []*RewritingSystem {
	var next []*RewritingSystem
	for _, t := range disjunction {
		for _, d := range daughter.Theories {
			clone := t.Clone()
			if addAllRules(clone, d.Rules()) {
				next = append(next, clone)
			}
		}
	}
	return next
}

// extendWithItemConstraints applies item's constraint alternatives to
// every theory in disjunction, substituting '*' for the parent's fresh
// logic variable and '.' for the daughter's, keeping only combinations
// where every constraint in a chosen alternative is consistent.
func extendWithItemConstraints(disjunction []*RewritingSystem, item *RuleItem, parentVar, daughterVar string) []*RewritingSystem {
	alts := item.Constraints
	if len(alts) == 0 {
		alts = [][]*Constraint{{}}
	}
	substs := []MarkerSubst{{Marker: "*", LogVar: parentVar}, {Marker: ".", LogVar: daughterVar}}

	var next []*RewritingSystem
	for _, t := range disjunction {
		for _, alt := range alts {
			clone := t.Clone()
			ok := true
			for _, c := range alt {
				if !clone.AddRule(c.Substitute(substs).Rule()) {
					ok = false
					break
				}
			}
			if ok {
				next = append(next, clone)
			}
		}
	}
	return next
}

func addAllRules(sys *RewritingSystem, rules []*RewriteRule) bool {
	for _, r := range rules {
		if !sys.AddRule(r) {
			return false
		}
	}
	return true
}
