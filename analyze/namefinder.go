// Package analyze implements the finders and analyzers of spec.md
// §4.6 (C6): name/predicate-based search, resource-aware call
// resolution, highlighting, graph construction, and (as a supplemented
// feature, SPEC_FULL.md) a per-function cyclomatic complexity counter.
package analyze

import (
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/traversal"
)

// FindKind distinguishes the two declaration shapes NameFinder matches.
type FindKind string

const (
	FunctionDecl FindKind = "FunctionDecl"
	VarDecl      FindKind = "VarDecl"
)

// FindResult is one match recorded by NameFinder or NodeFinder. Stack is
// a deep copy of the namespace-stack snapshot taken at capture time
// (spec.md §9 "Predicate visitors with captured state") — never a live
// reference into the walker's internal stack.
type FindResult struct {
	Node  ast.Node
	Kind  FindKind
	Stack []ast.Node
}

// NameFinder records every Function declaration and every simple
// assignment to a bare Variable whose name is in names (spec.md §4.6).
// With Greedy false, it stops recording after the first match.
type NameFinder struct {
	traversal.BaseVisitor

	names  map[string]struct{}
	greedy bool
	tr     *traversal.Traverser

	Found []FindResult
}

// NewNameFinder builds a NameFinder matching any of names.
func NewNameFinder(names []string, greedy bool) *NameFinder {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return &NameFinder{names: set, greedy: greedy}
}

func (f *NameFinder) RegisterWith(t *traversal.Traverser) { f.tr = t }

func (f *NameFinder) Visit(n ast.Node) {
	if !f.greedy && len(f.Found) > 0 {
		return
	}

	switch v := n.(type) {
	case *ast.Function:
		if f.matches(v.Name) {
			f.record(v, FunctionDecl)
		}
	case *ast.Assignment:
		if va, ok := v.Target.(*ast.Variable); ok && f.matches(va.Name) {
			f.record(v, VarDecl)
		}
	}
}

func (f *NameFinder) matches(name string) bool {
	_, ok := f.names[name]
	return ok
}

func (f *NameFinder) record(n ast.Node, kind FindKind) {
	f.Found = append(f.Found, FindResult{Node: n, Kind: kind, Stack: f.tr.Stack()})
}
