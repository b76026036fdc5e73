package chartparse

import "github.com/kr/pretty"

// DumpTheory renders theory's rules with github.com/kr/pretty, for use
// in trace output and ad-hoc debugging. It is never on the parse hot
// path and has no effect on parse results.
func DumpTheory(theory *RewritingSystem) string {
	rules := theory.Rules()
	pairs := make([]struct{ LHS, RHS string }, len(rules))
	for i, r := range rules {
		pairs[i] = struct{ LHS, RHS string }{r.lhs.String(), r.rhs.String()}
	}
	return pretty.Sprint(pairs)
}
