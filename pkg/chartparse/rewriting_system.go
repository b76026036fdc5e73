package chartparse

// RewritingSystem is a set of rewrite rules implementing ground
// Knuth-Bendix completion over unary terms. Normalisation is always
// well-defined: any two terms are provably equal in the theory iff
// their norms are structurally identical. Adding a rule that would
// equate two distinct '@'-prefixed constants is the system's sole
// failure mode; AddRule reports it by returning false rather than by
// an error, per the spec's framing of contradiction as a normal
// negative result rather than a caller-facing error.
type RewritingSystem struct {
	rules []*RewriteRule
}

// NewRewritingSystem returns an empty theory.
func NewRewritingSystem() *RewritingSystem {
	return &RewritingSystem{}
}

// Clone returns an independent copy sharing no backing array with the
// receiver, safe to extend without mutating the original.
func (s *RewritingSystem) Clone() *RewritingSystem {
	rules := make([]*RewriteRule, len(s.rules))
	copy(rules, s.rules)
	return &RewritingSystem{rules: rules}
}

// Rules returns the system's rules in insertion order. The slice must
// not be mutated by the caller.
func (s *RewritingSystem) Rules() []*RewriteRule {
	return s.rules
}

// Norm repeatedly rewrites t with the first applicable rule, tried in
// insertion order, until no rule applies. For rules added through
// AddRule each rewrite strictly decreases t under the reduction order,
// so the loop is guaranteed to halt. The substitution systems built by
// Constraint.Substitute hold unoriented marker -> logvar rules instead;
// those halt because each rewrite removes a marker. Confluence means the choice of "first applicable rule" affects
// only diagnostic traces, never the resulting normal form.
func (s *RewritingSystem) Norm(t *Term) *Term {
	for {
		rewritten := false
		for _, r := range s.rules {
			if nt, ok := r.Rewrite(t); ok {
				t = nt
				rewritten = true
				break
			}
		}
		if !rewritten {
			return t
		}
	}
}

// AddRule performs a single ground Knuth-Bendix completion step,
// specialised to unary terms, where it is decidable and always
// terminating. It reports false — rejecting the rule — iff completion
// would equate two distinct '@'-prefixed constants; this is the only
// form of contradiction the parser ever sees. The oriented rule is
// inserted before its critical pairs are added, and nothing is undone
// when one of them is rejected: after a false result the system may
// hold rules added along the way.
func (s *RewritingSystem) AddRule(rule *RewriteRule) bool {
	u := s.Norm(rule.lhs)
	v := s.Norm(rule.rhs)
	if u.Equal(v) {
		return true
	}
	if u.IsConstant() && v.IsConstant() && u.head != v.head {
		return false
	}
	r := NewRewriteRule(u, v)
	for _, existing := range s.rules {
		if existing.Equal(r) {
			return true
		}
	}

	var queued []*RewriteRule
	for _, existing := range s.rules {
		if overlap, ok := r.Rewrite(existing.lhs); ok {
			queued = append(queued, NewRewriteRule(s.Norm(overlap), s.Norm(existing.rhs)))
		}
	}

	s.rules = append(s.rules, r)

	for _, cp := range queued {
		if !s.AddRule(cp) {
			return false
		}
	}
	return true
}
