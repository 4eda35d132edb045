package analyze

import (
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/traversal"
)

// ComplexityVisitor is a supplemented feature (SPEC_FULL.md, grounded on
// original_source/'s broader visitor library): a per-function cyclomatic
// complexity counter. Each Function/Method starts at a baseline of 1;
// every branching construct found inside it increments the count.
//
// Method is deliberately not a scope-defining variant (spec.md §4.3), so
// it never appears on the traverser's namespace stack; tracking "which
// function/method am I inside" instead requires its own enter/leave
// stack, pushed and popped directly from the Function/Method nodes
// Enter/Leave are called on. This also means ComplexityVisitor must run
// under a DFS walker — a BFS walker calls Leave immediately after Visit
// for every node, so it never represents "this node's subtree is still
// being processed" the way DFS does.
type ComplexityVisitor struct {
	traversal.BaseVisitor

	stack []ast.Node

	// Complexity maps a Function or Method node to its McCabe
	// complexity score.
	Complexity map[ast.Node]int
}

// NewComplexityVisitor creates an empty complexity counter.
func NewComplexityVisitor() *ComplexityVisitor {
	return &ComplexityVisitor{Complexity: make(map[ast.Node]int)}
}

func (c *ComplexityVisitor) Enter(n ast.Node) {
	switch n.(type) {
	case *ast.Function, *ast.Method:
		c.Complexity[n] = 1
		c.stack = append(c.stack, n)
	}
}

func (c *ComplexityVisitor) Visit(n ast.Node) {
	switch v := n.(type) {
	case *ast.If, *ast.ElseIf, *ast.While, *ast.DoWhile, *ast.For, *ast.Foreach,
		*ast.Case, *ast.Catch, *ast.Ternary:
		c.bump()
	case *ast.BinaryOp:
		if v.Op == "&&" || v.Op == "||" {
			c.bump()
		}
	}
}

func (c *ComplexityVisitor) Leave(n ast.Node) {
	switch n.(type) {
	case *ast.Function, *ast.Method:
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *ComplexityVisitor) bump() {
	if len(c.stack) == 0 {
		return
	}
	c.Complexity[c.stack[len(c.stack)-1]]++
}
