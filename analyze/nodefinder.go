package analyze

import (
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/traversal"
)

// NodeFinder is the general-purpose variant of NameFinder: it records
// every node for which predicate returns true, along with a deep-copied
// namespace-stack snapshot (spec.md §4.6).
type NodeFinder struct {
	traversal.BaseVisitor

	predicate func(ast.Node) bool
	tr        *traversal.Traverser

	Found []FindResult
}

// NewNodeFinder builds a NodeFinder around predicate.
func NewNodeFinder(predicate func(ast.Node) bool) *NodeFinder {
	return &NodeFinder{predicate: predicate}
}

func (f *NodeFinder) RegisterWith(t *traversal.Traverser) { f.tr = t }

func (f *NodeFinder) Visit(n ast.Node) {
	if f.predicate(n) {
		f.Found = append(f.Found, FindResult{Node: n, Stack: f.tr.Stack()})
	}
}
