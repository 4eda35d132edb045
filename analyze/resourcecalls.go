package analyze

import (
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/internal/assets"
	"github.com/oxhq/phpast/resource"
	"github.com/oxhq/phpast/traversal"
)

// CallMatch pairs a call site with every candidate definition found for
// it in the resource tree.
type CallMatch struct {
	Call        ast.Node
	Definitions []ast.Node
}

// ResourceCallsFinder walks a tree looking up every FunctionCall and
// MethodCall against a resource.Tree's tables (spec.md §4.6). Calls
// with at least one surviving candidate land in BoundCalls; calls with
// none land in UnboundCalls.
type ResourceCallsFinder struct {
	traversal.BaseVisitor

	resourceTree   *resource.Tree
	ignoreBuiltins bool
	matchParams    bool
	builtins       map[string]struct{}

	BoundCalls   []CallMatch
	UnboundCalls []CallMatch
}

// NewResourceCallsFinder builds a finder bound to tree, using the
// analyzer's bundled builtin-name list.
func NewResourceCallsFinder(tree *resource.Tree, ignoreBuiltins, matchParams bool) *ResourceCallsFinder {
	return NewResourceCallsFinderWithBuiltins(tree, ignoreBuiltins, matchParams, assets.BuiltinNames())
}

// NewResourceCallsFinderWithBuiltins is NewResourceCallsFinder with an
// explicit builtin-name set, for callers overriding the default via
// PHPAST_BUILTINS_FILE (internal/config, internal/assets.LoadBuiltinNames).
func NewResourceCallsFinderWithBuiltins(tree *resource.Tree, ignoreBuiltins, matchParams bool, builtins map[string]struct{}) *ResourceCallsFinder {
	return &ResourceCallsFinder{resourceTree: tree, ignoreBuiltins: ignoreBuiltins, matchParams: matchParams, builtins: builtins}
}

// Run walks every tree in the bound resource tree, populating
// BoundCalls and UnboundCalls. Per spec.md §4.5 "Ordering requirement",
// the resource tree's includes should already be resolved before this
// runs, though ResourceCallsFinder itself only inspects call sites and
// does not require it.
func (f *ResourceCallsFinder) Run() {
	for _, tree := range f.resourceTree.Trees {
		w := traversal.NewWalker()
		_ = w.Register(f)
		w.Walk(tree)
	}
}

func (f *ResourceCallsFinder) Visit(n ast.Node) {
	switch v := n.(type) {
	case *ast.FunctionCall:
		f.handle(v, callName(v.Name), len(v.Args), false)
	case *ast.MethodCall:
		f.handle(v, callName(v.Name), len(v.Args), true)
	}
}

func (f *ResourceCallsFinder) handle(call ast.Node, name string, argc int, bound bool) {
	if name == "" {
		// MethodCallNameUnresolvable (spec.md §7): silently skipped.
		return
	}
	if f.ignoreBuiltins && !bound {
		if _, ok := f.builtins[name]; ok {
			return
		}
	}

	var defs []ast.Node
	for path := range f.resourceTree.Trees {
		if bound {
			entry, ok := f.resourceTree.MethodTable[path][name]
			if !ok {
				continue
			}
			if f.matchParams && !admits(argc, entry.Method.Params) {
				continue
			}
			defs = append(defs, entry.Method)
			continue
		}
		fn, ok := f.resourceTree.FunctionTable[path][name]
		if !ok {
			continue
		}
		if f.matchParams && !admits(argc, fn.Params) {
			continue
		}
		defs = append(defs, fn)
	}

	match := CallMatch{Call: call, Definitions: defs}
	if len(defs) > 0 {
		f.BoundCalls = append(f.BoundCalls, match)
	} else {
		f.UnboundCalls = append(f.UnboundCalls, match)
	}
}

func callName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.QualifiedName:
		if len(v.Parts) > 0 {
			return v.Parts[len(v.Parts)-1]
		}
	}
	return ""
}

// admits implements spec.md §4.6's declared parameter range check:
// required ≤ argc ≤ total, where required excludes parameters with a
// default and total is unbounded once a variadic parameter is present.
func admits(argc int, params []*ast.Param) bool {
	required, total := 0, 0
	unbounded := false
	for _, p := range params {
		if p.Variadic {
			unbounded = true
			continue
		}
		total++
		if p.Default == nil {
			required++
		}
	}
	if unbounded {
		return argc >= required
	}
	return argc >= required && argc <= total
}
