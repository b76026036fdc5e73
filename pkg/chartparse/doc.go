// Package chartparse provides a unification-style chart parser for
// context-free grammars annotated with morphosyntactic equality
// constraints. Given a grammar whose rules carry feature-structure
// constraints, and an initial chart of lexical edges, Grammar.Parse
// produces every derivation whose feature constraints are mutually
// consistent.
//
// The package is built from three tightly coupled layers:
//
//   - A ground term-rewriting engine (Term, RewriteRule,
//     RewritingSystem) that decides equality between feature terms via
//     Knuth-Bendix completion and rejects contradictions between
//     distinct constant-valued features.
//   - A chart parser (Chart, Edge) that enumerates every matching
//     right-hand-side path through a rule's items, including skippable
//     and repeatable items, without duplication.
//   - A parser driver (Grammar) that, for each candidate derivation,
//     intersects daughter theories with the rule's own constraints and
//     keeps only the non-contradictory combinations.
//
// Lexicon loading, tokenization, grammar authoring syntax, and
// pretty-printing of results are left to callers; the module ships no
// example driver program.
//
// The parser is strictly single-threaded and synchronous: Grammar.Parse
// runs to completion on the calling goroutine with no suspension
// points, cancellation, or timeouts.
package chartparse
