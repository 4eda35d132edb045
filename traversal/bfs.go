package traversal

import "github.com/oxhq/phpast/ast"

// Walker performs a breadth-first walk. Because BFS visits nodes level by
// level rather than LIFO, it cannot maintain the namespace stack with a
// simple push/pop; instead each node is annotated, as it is enqueued,
// with a pointer to its nearest scope-defining ancestor (spec.md §4.3
// "Namespace stack"). That annotation lives in a side table keyed by
// node identity rather than on the node itself — see
// ast.SyntaxTree.NearestNSParent's doc comment and SPEC_FULL.md's design
// notes on avoiding back-pointers on every one of the ~70 node variants.
type Walker struct {
	*Traverser
	nearestNS map[ast.Node]ast.Node
}

// NewWalker creates an empty BFS walker with no visitors registered.
func NewWalker() *Walker {
	return &Walker{Traverser: newTraverser(), nearestNS: make(map[ast.Node]ast.Node)}
}

// Walk performs a breadth-first walk starting at root, dispatching
// registered visitors per spec.md §4.3 "Dispatch ordering per node".
func (w *Walker) Walk(root ast.Node) {
	if root == nil {
		return
	}

	w.nearestNS = make(map[ast.Node]ast.Node)
	w.nearestNS[root] = nil

	queue := []ast.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		w.dispatchEnter(n)
		w.stack = w.reconstructStack(n)
		w.dispatchVisit(n)

		// Children inherit their parent's nearest-namespace-parent unless
		// the parent is itself scope-defining, in which case they take
		// the parent as their nearest-namespace-parent (spec.md §4.3).
		childParent := w.nearestNS[n]
		if ast.ScopeDefining(n.Kind()) {
			childParent = n
		}

		for _, field := range Children(n) {
			for _, child := range field.Values {
				w.nearestNS[child] = childParent
				queue = append(queue, child)
			}
		}

		w.dispatchLeave(n)
	}
}

// reconstructStack rebuilds the namespace-stack snapshot for n by
// following nearest-namespace-parent pointers back to the root,
// returning them in root-to-leaf order. If n is itself scope-defining it
// is included at the tail, mirroring the DFS walker's push-before-visit
// semantics so both walkers produce identical stacks for the same node
// (spec.md §8 "Round-trip / determinism").
func (w *Walker) reconstructStack(n ast.Node) []ast.Node {
	start := w.nearestNS[n]
	if ast.ScopeDefining(n.Kind()) {
		start = n
	}

	var chain []ast.Node
	for cur := start; cur != nil; cur = w.nearestNS[cur] {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
