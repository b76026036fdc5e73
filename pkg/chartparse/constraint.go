package chartparse

// Constraint is a tagged alternative of equality between two terms.
// The spec names exactly one variant, Equal, so Constraint models it
// directly rather than as a sum type with a single arm.
type Constraint struct {
	t1, t2 *Term
}

// Equal builds an Equal(t1, t2) constraint.
func Equal(t1, t2 *Term) *Constraint {
	return &Constraint{t1: t1, t2: t2}
}

// MarkerSubst pairs a marker head ("*" or ".") with the identifier it
// is replaced by at edge and parent construction time.
type MarkerSubst struct {
	Marker string
	LogVar string
}

// Substitute builds a tiny rewriting system from the given (marker,
// logvar) pairs — as raw, unoriented rules marker -> logvar, with no
// completion performed — and normalises each side of the equality
// through it, returning the substituted constraint.
func (c *Constraint) Substitute(substs []MarkerSubst) *Constraint {
	sys := &RewritingSystem{}
	for _, sub := range substs {
		sys.rules = append(sys.rules, rawRule(NewTerm(sub.Marker, nil), NewTerm(sub.LogVar, nil)))
	}
	return &Constraint{t1: sys.Norm(c.t1), t2: sys.Norm(c.t2)}
}

// Rule reifies the constraint as a rewrite rule, oriented by the
// reduction order.
func (c *Constraint) Rule() *RewriteRule {
	return NewRewriteRule(c.t1, c.t2)
}

// String renders the constraint as "t1 = t2".
func (c *Constraint) String() string {
	return c.t1.String() + " = " + c.t2.String()
}
