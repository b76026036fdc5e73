package chartparse

import "strings"

// constantPrefix marks an atomic head as a constant: two distinct
// constants are unequal by fiat and can never be equated by the
// rewriting system.
const constantPrefix = "@"

// Term is an immutable, finite, right-linear list of string heads:
// (head, tail?), where tail is either another Term or absent. Terms
// are freely shared; equality is structural.
type Term struct {
	head string
	tail *Term
}

// NewTerm builds a term of size 1+len(tailHeads): head followed by the
// chain of tailHeads, innermost last.
func NewTerm(head string, tailHeads []string) *Term {
	if head == "" {
		panic("chartparse: term head must not be empty")
	}
	var tail *Term
	for i := len(tailHeads) - 1; i >= 0; i-- {
		tail = &Term{head: tailHeads[i], tail: tail}
	}
	return &Term{head: head, tail: tail}
}

// Size reports the number of heads in the term.
func (t *Term) Size() int {
	n := 0
	for cur := t; cur != nil; cur = cur.tail {
		n++
	}
	return n
}

// Last returns the innermost head of the term.
func (t *Term) Last() string {
	cur := t
	for cur.tail != nil {
		cur = cur.tail
	}
	return cur.head
}

// Flatten returns the term's heads in order, outermost first.
func (t *Term) Flatten() []string {
	heads := make([]string, 0, t.Size())
	for cur := t; cur != nil; cur = cur.tail {
		heads = append(heads, cur.head)
	}
	return heads
}

// IsConstant reports whether the term is an atomic constant: size 1
// and its head begins with the sentinel '@'.
func (t *Term) IsConstant() bool {
	return t.tail == nil && strings.HasPrefix(t.head, constantPrefix)
}

// ConstantValue returns the term's head with the sentinel stripped.
// Only meaningful when IsConstant reports true.
func (t *Term) ConstantValue() string {
	return strings.TrimPrefix(t.head, constantPrefix)
}

// Compare implements the reduction order: compare by size, then head,
// then recursively on tail. Per the spec's first open question, tails
// are compared only when both sides have one — a term with a tail is
// never walked against one without, and two same-size, same-head terms
// where one lacks a tail compare equal in that last component. A
// well-formed pair of terms with matching size and head always agrees
// on tail presence, so this only matters for the literal algorithm,
// never for real outcomes.
func (t *Term) Compare(other *Term) int {
	if ts, os := t.Size(), other.Size(); ts != os {
		if ts < os {
			return -1
		}
		return 1
	}
	if t.head != other.head {
		return strings.Compare(t.head, other.head)
	}
	if t.tail != nil && other.tail != nil {
		return t.tail.Compare(other.tail)
	}
	return 0
}

// Equal reports structural equality under the reduction order.
func (t *Term) Equal(other *Term) bool {
	return t.Compare(other) == 0
}

// String renders the term as its flattened head sequence, innermost
// last, separated by '.'.
func (t *Term) String() string {
	return strings.Join(t.Flatten(), ".")
}

// rebuildPrefix reconstructs a chain of heads (outer to inner) with
// tail spliced in as the final subterm.
func rebuildPrefix(heads []string, tail *Term) *Term {
	result := tail
	for i := len(heads) - 1; i >= 0; i-- {
		result = &Term{head: heads[i], tail: result}
	}
	return result
}
