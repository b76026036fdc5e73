package chartparse

// RewriteRule is an oriented pair of terms (lhs, rhs) with the
// invariant lhs > rhs under the reduction order, so that every
// application of the rule strictly decreases its target.
type RewriteRule struct {
	lhs *Term
	rhs *Term
}

// NewRewriteRule orients an unordered pair of terms so that lhs > rhs,
// swapping if necessary.
func NewRewriteRule(a, b *Term) *RewriteRule {
	if a.Compare(b) < 0 {
		a, b = b, a
	}
	return &RewriteRule{lhs: a, rhs: b}
}

// rawRule builds a rule directly from (lhs, rhs) without orienting it.
// Used only for substitution systems (Constraint.Substitute), where
// the direction of the rewrite is the whole point and must not be
// reoriented by size or lexicographic comparison.
func rawRule(lhs, rhs *Term) *RewriteRule {
	return &RewriteRule{lhs: lhs, rhs: rhs}
}

// Rewrite matches the rule's lhs against the spine of t — the sequence
// of subterms reached by repeatedly taking the tail, starting from t
// itself. The first matching subterm from the outside in is replaced
// by rhs, and the enclosing prefix of heads is preserved. Rewrite
// reports false if no spine subterm equals lhs.
func (r *RewriteRule) Rewrite(t *Term) (*Term, bool) {
	var prefix []string
	for cur := t; cur != nil; cur = cur.tail {
		if cur.Equal(r.lhs) {
			return rebuildPrefix(prefix, r.rhs), true
		}
		prefix = append(prefix, cur.head)
	}
	return nil, false
}

// Equal reports whether two rules have identical lhs and rhs.
func (r *RewriteRule) Equal(other *RewriteRule) bool {
	return r.lhs.Equal(other.lhs) && r.rhs.Equal(other.rhs)
}

// String renders the rule as "lhs -> rhs".
func (r *RewriteRule) String() string {
	return r.lhs.String() + " -> " + r.rhs.String()
}
