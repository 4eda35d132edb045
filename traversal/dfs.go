package traversal

import "github.com/oxhq/phpast/ast"

// DepthWalker performs a pre-order depth-first walk. It maintains the
// namespace stack naturally via push-on-enter / pop-on-leave of
// scope-defining ancestors (spec.md §4.3), correcting the reference
// implementation's asymmetric push/pop (spec.md §9 open question: DFS
// "pops the namespace stack on a slightly different condition than it
// pushes" — here push and pop are the exact same predicate,
// ast.ScopeDefining).
type DepthWalker struct {
	*Traverser
}

// NewDepthWalker creates an empty DFS walker with no visitors registered.
func NewDepthWalker() *DepthWalker {
	return &DepthWalker{Traverser: newTraverser()}
}

// Walk performs a pre-order DFS starting at root, dispatching registered
// visitors per spec.md §4.3 "Dispatch ordering per node".
func (w *DepthWalker) Walk(root ast.Node) {
	w.walk(root)
}

func (w *DepthWalker) walk(n ast.Node) {
	if n == nil {
		return
	}

	w.dispatchEnter(n)

	pushed := ast.ScopeDefining(n.Kind())
	if pushed {
		w.stack = append(w.stack, n)
	}

	w.dispatchVisit(n)

	for _, field := range Children(n) {
		for _, child := range field.Values {
			w.walk(child)
		}
	}

	if pushed {
		w.stack = w.stack[:len(w.stack)-1]
	}

	w.dispatchLeave(n)
}
