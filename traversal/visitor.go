// Package traversal implements the BFS and DFS walkers over ast.Node
// trees: visitor registration and dispatch, namespace-stack maintenance,
// and the child-enumeration logic that replaces the reference's
// reflective accept(visitor) double-dispatch with an explicit type
// switch (see SPEC_FULL.md design notes; grounded on
// uber-research/last-diff-analyzer's analyzer/core/mast/walk.go, the
// pack's closest analogue to this traversal framework).
package traversal

import "github.com/oxhq/phpast/ast"

// Visitor is the interface consumed by both walkers. Any of the four
// hooks may be a no-op; embed BaseVisitor to avoid writing stubs for
// hooks you don't need.
type Visitor interface {
	// RegisterWith is called once, when the visitor is added to a
	// Traverser, before any walk begins. Visitors that need to read the
	// live namespace stack during Visit should capture the traverser
	// reference here.
	RegisterWith(t *Traverser)

	// Enter is called for every node, before any structural processing,
	// including non-Node payloads reached through a child slot (spec.md
	// §4.3 dispatch step 1). In this implementation all child slots are
	// ast.Node-typed or absent, so Enter always receives a non-nil node;
	// it exists as a hook point symmetric with Leave.
	Enter(n ast.Node)

	// Visit is called after the namespace stack has been updated for n,
	// in registration order.
	Visit(n ast.Node)

	// Leave is called after n's subtree has been fully processed (DFS)
	// or immediately after Visit (BFS, since BFS has no natural notion of
	// "subtree done" before the whole level completes).
	Leave(n ast.Node)
}

// BaseVisitor supplies no-op implementations of all four Visitor hooks.
// Concrete visitors embed it and override only what they need.
type BaseVisitor struct{}

func (BaseVisitor) RegisterWith(*Traverser) {}
func (BaseVisitor) Enter(ast.Node)          {}
func (BaseVisitor) Visit(ast.Node)          {}
func (BaseVisitor) Leave(ast.Node)          {}
