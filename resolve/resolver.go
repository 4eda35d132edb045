package resolve

import (
	"os"
	"path/filepath"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/parser"
	"github.com/oxhq/phpast/traversal"
)

// Reason strings attached to an ast.UnresolvedInclude, naming which of
// spec.md §7's two non-fatal diagnostic kinds produced it.
const (
	ReasonIncludeUnresolved    = "IncludeUnresolved"
	ReasonExpressionUnfoldable = "ExpressionUnfoldable"
)

// NotFoundEntry and ExprFailEntry record the two non-fatal diagnostic
// kinds of spec.md §7: IncludeUnresolved and ExpressionUnfoldable.
type NotFoundEntry struct {
	FilePath string
	Path     string
}

type ExprFailEntry struct {
	FilePath string
	Line     int
}

// DependencyResolver is the single-file-mode resolver of spec.md §4.5:
// it parses included files on demand, producing a fresh SyntaxTree per
// unique include site. Register it on a traversal.DepthWalker and walk
// the tree whose includes should be expanded — it must run before any
// visitor that relies on includes being resolved (spec.md §4.5
// "Ordering requirement").
type DependencyResolver struct {
	traversal.BaseVisitor

	tr        *traversal.Traverser
	constants map[string]string

	NotFound  []NotFoundEntry
	ExprFails []ExprFailEntry
}

// NewDependencyResolver creates a resolver with no constants tracked yet.
func NewDependencyResolver() *DependencyResolver {
	return &DependencyResolver{constants: make(map[string]string)}
}

// Resolve walks tree with a fresh DependencyResolver registered and
// returns it for diagnostic inspection.
func Resolve(tree *ast.SyntaxTree) *DependencyResolver {
	r := NewDependencyResolver()
	w := traversal.NewDepthWalker()
	_ = w.Register(r)
	w.Walk(tree)
	return r
}

func (r *DependencyResolver) RegisterWith(t *traversal.Traverser) { r.tr = t }

func (r *DependencyResolver) Visit(n ast.Node) {
	switch v := n.(type) {
	case *ast.FunctionCall:
		trackDefine(v, r.constants)
	case *ast.Include:
		v.Body = r.resolve(v.Expr, v.Line())
	case *ast.Require:
		v.Body = r.resolve(v.Expr, v.Line())
	}
}

// resolve implements the shared fold → path-resolve → cycle-check →
// attach pipeline of spec.md §4.5 for single-file mode. It always
// returns a non-nil node: SyntaxTree, CircularImport, or
// UnresolvedInclude, per spec.md §8 invariant 2.
func (r *DependencyResolver) resolve(expr ast.Node, line int) ast.Node {
	folded, ok := fold(expr, r.constants)
	curFile := currentFile(r.tr.Stack())
	curPath := ""
	if curFile != nil {
		curPath = curFile.FilePath
	}
	if !ok {
		r.ExprFails = append(r.ExprFails, ExprFailEntry{FilePath: curPath, Line: line})
		return ast.NewUnresolvedInclude(line, folded, ReasonExpressionUnfoldable)
	}

	resolvedPath := resolvePath(curFile, folded)

	if looped := findOnStack(r.tr.Stack(), resolvedPath); looped != nil {
		return ast.NewCircularImport(line, resolvedPath, looped)
	}

	src, err := os.ReadFile(resolvedPath)
	if err != nil {
		r.NotFound = append(r.NotFound, NotFoundEntry{FilePath: curPath, Path: resolvedPath})
		return ast.NewUnresolvedInclude(line, resolvedPath, ReasonIncludeUnresolved)
	}
	childTree, err := parser.Parse(src, resolvedPath)
	if err != nil {
		r.NotFound = append(r.NotFound, NotFoundEntry{FilePath: curPath, Path: resolvedPath})
		return ast.NewUnresolvedInclude(line, resolvedPath, ReasonIncludeUnresolved)
	}
	return childTree
}

// currentFile returns the innermost SyntaxTree on the namespace-stack
// snapshot — "the enclosing file" of spec.md §4.5 "Path resolution".
func currentFile(stack []ast.Node) *ast.SyntaxTree {
	for i := len(stack) - 1; i >= 0; i-- {
		if t, ok := stack[i].(*ast.SyntaxTree); ok {
			return t
		}
	}
	return nil
}

func resolvePath(curFile *ast.SyntaxTree, folded string) string {
	dir := "."
	if curFile != nil {
		dir = curFile.FileLocation
	}
	if filepath.IsAbs(folded) {
		return filepath.Clean(folded)
	}
	return filepath.Clean(filepath.Join(dir, folded))
}

// findOnStack reports the SyntaxTree on stack whose FilePath equals
// path, implementing spec.md §4.5 "Cycle detection".
func findOnStack(stack []ast.Node, path string) *ast.SyntaxTree {
	for _, n := range stack {
		if t, ok := n.(*ast.SyntaxTree); ok && t.FilePath == path {
			return t
		}
	}
	return nil
}
