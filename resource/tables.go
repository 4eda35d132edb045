package resource

import (
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/traversal"
)

// BuildTables runs a BFS walk (spec.md §4.4) over every parsed tree with
// a tablesBuilder visitor registered, populating FunctionTable,
// MethodTable, and an empty DepTable entry per file for the dependency
// resolver (C5) to fill in.
func (t *Tree) BuildTables() {
	for path, tree := range t.Trees {
		t.FunctionTable[path] = make(map[string]*ast.Function)
		t.MethodTable[path] = make(map[string]MethodEntry)
		if _, ok := t.DepTable[path]; !ok {
			t.DepTable[path] = nil
		}

		w := traversal.NewWalker()
		tb := &tablesBuilder{
			functions: t.FunctionTable[path],
			methods:   t.MethodTable[path],
		}
		_ = w.Register(tb)
		w.Walk(tree)
	}
}

// tablesBuilder is the TablesBuilder visitor of spec.md §4.4: it records
// every Function by name and every Method by name paired with its
// enclosing Class, found on the walker's namespace-stack snapshot.
type tablesBuilder struct {
	traversal.BaseVisitor
	functions map[string]*ast.Function
	methods   map[string]MethodEntry
	tr        *traversal.Traverser
}

func (tb *tablesBuilder) RegisterWith(tr *traversal.Traverser) { tb.tr = tr }

func (tb *tablesBuilder) Visit(n ast.Node) {
	switch fn := n.(type) {
	case *ast.Function:
		tb.functions[fn.Name] = fn
	case *ast.Method:
		if cls := enclosingClass(tb.tr.Stack()); cls != nil {
			tb.methods[fn.Name] = MethodEntry{Method: fn, Class: cls}
		}
	}
}

func enclosingClass(stack []ast.Node) *ast.Class {
	for i := len(stack) - 1; i >= 0; i-- {
		if cls, ok := stack[i].(*ast.Class); ok {
			return cls
		}
	}
	return nil
}
