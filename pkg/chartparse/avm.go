package chartparse

import (
	"fmt"
	"sort"
	"strings"
)

// RenderTree renders e as label, followed by '(' children joined by
// ',' ')' when children exist — a plain bracket notation for the
// derivation tree rooted at e.
func RenderTree(e *Edge) string {
	if len(e.Children) == 0 {
		return e.Label
	}
	parts := make([]string, len(e.Children))
	for i, child := range e.Children {
		parts[i] = RenderTree(child)
	}
	return e.Label + "(" + strings.Join(parts, ",") + ")"
}

// AVM projects theory into an attribute-value matrix: for every rule
// whose lhs is a spine ending in logvar and whose rhs is an
// '@'-prefixed constant, it records attributePath -> value, where the
// path is the flattened lhs with the trailing logvar stripped and the
// order reversed, and the value has the sentinel removed.
//
// A well-formed, completed theory resolves each attribute path to at
// most one value; a map entry with more than one distinct value
// signals something the completion step should have rejected and is
// surfaced rather than silently collapsed.
func AVM(theory *RewritingSystem, logvar string) map[string][]string {
	result := make(map[string][]string)
	for _, r := range theory.Rules() {
		heads := r.lhs.Flatten()
		if len(heads) == 0 || heads[len(heads)-1] != logvar {
			continue
		}
		if !r.rhs.IsConstant() {
			continue
		}
		path := heads[:len(heads)-1]
		if len(path) == 0 {
			continue
		}
		attr := reverseJoin(path)
		value := r.rhs.ConstantValue()
		result[attr] = appendUnique(result[attr], value)
	}
	return result
}

// RenderAVM formats one "path=value ..." line per theory alternative
// attached to e, with attribute paths sorted for determinism.
func RenderAVM(e *Edge) []string {
	lines := make([]string, 0, len(e.Theories))
	for _, theory := range e.Theories {
		avm := AVM(theory, e.LogVar)
		keys := make([]string, 0, len(avm))
		for k := range avm {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%s", k, strings.Join(avm[k], "|"))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

func reverseJoin(heads []string) string {
	reversed := make([]string, len(heads))
	for i, h := range heads {
		reversed[len(heads)-1-i] = h
	}
	return strings.Join(reversed, ".")
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}
