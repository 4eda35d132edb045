package resolve

import (
	"sort"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/resource"
	"github.com/oxhq/phpast/traversal"
)

// ResourceDependencyResolver is the resource-mode resolver of spec.md
// §4.5: rather than parsing included files on demand, it looks them up
// in an already-built resource.Tree and records the attachment into
// that file's dep_table entry.
//
// A single Include/Require node can be reached twice: once while its
// owning file is walked directly from ResolveAll's loop, and once more
// as a child of whichever file requires it (the walker descends into
// the just-attached Body). resolved guards against re-resolving the
// same node the second time, which would otherwise let the iteration
// order of tree.Trees decide which side of a cycle wins.
type ResourceDependencyResolver struct {
	traversal.BaseVisitor

	tree      *resource.Tree
	tr        *traversal.Traverser
	constants map[string]string
	resolved  map[ast.Node]bool

	NotFound  []NotFoundEntry
	ExprFails []ExprFailEntry
}

// NewResourceDependencyResolver creates a resolver bound to tree.
func NewResourceDependencyResolver(tree *resource.Tree) *ResourceDependencyResolver {
	return &ResourceDependencyResolver{
		tree:      tree,
		constants: make(map[string]string),
		resolved:  make(map[ast.Node]bool),
	}
}

// ResolveAll runs the resolver over every tree in the resource tree, in
// sorted path order so results are reproducible across runs. Per
// spec.md §4.5 "Ordering requirement" this must run before any finder
// that depends on expanded includes.
func ResolveAll(tree *resource.Tree) *ResourceDependencyResolver {
	r := NewResourceDependencyResolver(tree)

	paths := make([]string, 0, len(tree.Trees))
	for path := range tree.Trees {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		r.constants = make(map[string]string)
		w := traversal.NewDepthWalker()
		_ = w.Register(r)
		w.Walk(tree.Trees[path])
	}
	return r
}

func (r *ResourceDependencyResolver) RegisterWith(t *traversal.Traverser) { r.tr = t }

func (r *ResourceDependencyResolver) Visit(n ast.Node) {
	switch v := n.(type) {
	case *ast.FunctionCall:
		trackDefine(v, r.constants)
	case *ast.Include:
		if r.resolved[v] {
			return
		}
		r.resolved[v] = true
		v.Body = r.resolve(v.Expr, v.Line())
	case *ast.Require:
		if r.resolved[v] {
			return
		}
		r.resolved[v] = true
		v.Body = r.resolve(v.Expr, v.Line())
	}
}

// resolve mirrors DependencyResolver.resolve for resource mode: it always
// returns a non-nil node (spec.md §8 invariant 2), looking the target up
// in the resource tree's already-parsed trees instead of parsing on demand.
func (r *ResourceDependencyResolver) resolve(expr ast.Node, line int) ast.Node {
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

	childTree, ok := r.tree.Trees[resolvedPath]
	if !ok {
		r.NotFound = append(r.NotFound, NotFoundEntry{FilePath: curPath, Path: resolvedPath})
		return ast.NewUnresolvedInclude(line, resolvedPath, ReasonIncludeUnresolved)
	}

	if curPath != "" {
		r.tree.DepTable[curPath] = append(r.tree.DepTable[curPath], childTree)
	}
	return childTree
}
