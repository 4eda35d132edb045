package traversal

import "github.com/oxhq/phpast/ast"

// Traverser holds the registered visitors and the live namespace stack
// for a single walk. Both Walker (BFS) and DepthWalker (DFS) embed it;
// visitors that capture a *Traverser in RegisterWith can call Stack
// during Visit to read the current namespace-stack snapshot regardless
// of which concrete walker is driving the traversal.
type Traverser struct {
	visitors []Visitor
	index    map[Visitor]bool
	stack    []ast.Node
}

func newTraverser() *Traverser {
	return &Traverser{index: make(map[Visitor]bool)}
}

// Register adds a visitor to the traverser in call order. Registering the
// same visitor twice fails with *DuplicateVisitorError (spec.md §4.3,
// §7). Visitor dispatch order equals registration order; the dependency
// resolver must be registered before any visitor that relies on includes
// being expanded (spec.md §4.5 "Ordering requirement").
func (t *Traverser) Register(v Visitor) error {
	if t.index[v] {
		return &DuplicateVisitorError{Visitor: v}
	}
	t.index[v] = true
	t.visitors = append(t.visitors, v)
	v.RegisterWith(t)
	return nil
}

// Visitors returns the registered visitors in dispatch order.
func (t *Traverser) Visitors() []Visitor {
	out := make([]Visitor, len(t.visitors))
	copy(out, t.visitors)
	return out
}

// Stack returns a deep copy of the namespace-stack snapshot current at
// the moment of the call — the sequence of scope-defining ancestors of
// whatever node is presently being visited, in root-to-leaf order
// (spec.md §8 "Invariants"). Visitors must call this during Visit/Enter/
// Leave; the slice returned is never aliased to the walker's live stack,
// so holding onto it across calls is safe (spec.md §9 "captured
// namespace-stack snapshot must be a deep copy").
func (t *Traverser) Stack() []ast.Node {
	out := make([]ast.Node, len(t.stack))
	copy(out, t.stack)
	return out
}

func (t *Traverser) dispatchEnter(n ast.Node) {
	for _, v := range t.visitors {
		v.Enter(n)
	}
}

func (t *Traverser) dispatchVisit(n ast.Node) {
	for _, v := range t.visitors {
		v.Visit(n)
	}
}

func (t *Traverser) dispatchLeave(n ast.Node) {
	for _, v := range t.visitors {
		v.Leave(n)
	}
}
