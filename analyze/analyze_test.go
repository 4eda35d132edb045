package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/phpast/analyze"
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/resource"
	"github.com/oxhq/phpast/traversal"
)

func walk(t *testing.T, root ast.Node, v traversal.Visitor) {
	t.Helper()
	w := traversal.NewWalker()
	require.NoError(t, w.Register(v))
	w.Walk(root)
}

// walkDFS is for visitors whose Enter/Leave hooks track subtree nesting
// (ComplexityVisitor), which only DFS gives correct semantics for.
func walkDFS(t *testing.T, root ast.Node, v traversal.Visitor) {
	t.Helper()
	w := traversal.NewDepthWalker()
	require.NoError(t, w.Register(v))
	w.Walk(root)
}

func TestNameFinderMatchesFunctionAndVarDecl(t *testing.T) {
	fn := ast.NewFunction(3, "target", nil, nil, false, nil)
	assign := ast.NewAssignment(4, ast.NewVariable(4, "target"), ast.NewIntLit(4, 1), false)
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{fn, assign})

	finder := analyze.NewNameFinder([]string{"target"}, true)
	walk(t, tree, finder)

	require.Len(t, finder.Found, 2)
	assert.Equal(t, analyze.FunctionDecl, finder.Found[0].Kind)
	assert.Equal(t, analyze.VarDecl, finder.Found[1].Kind)
}

func TestNameFinderNonGreedyStopsAfterFirstMatch(t *testing.T) {
	fn1 := ast.NewFunction(1, "target", nil, nil, false, nil)
	fn2 := ast.NewFunction(2, "target", nil, nil, false, nil)
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{fn1, fn2})

	finder := analyze.NewNameFinder([]string{"target"}, false)
	walk(t, tree, finder)

	require.Len(t, finder.Found, 1)
	assert.Same(t, fn1, finder.Found[0].Node)
}

func TestNodeFinderRecordsStackSnapshot(t *testing.T) {
	echo := ast.NewEcho(2, []ast.Node{ast.NewIntLit(2, 1)})
	fn := ast.NewFunction(1, "f", nil, []ast.Node{echo}, false, nil)
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{fn})

	finder := analyze.NewNodeFinder(func(n ast.Node) bool { return n.Kind() == ast.KindEcho })
	walk(t, tree, finder)

	require.Len(t, finder.Found, 1)
	assert.Same(t, echo, finder.Found[0].Node)
	require.Len(t, finder.Found[0].Stack, 2)
	assert.Equal(t, ast.KindSyntaxTree, finder.Found[0].Stack[0].Kind())
	assert.Equal(t, ast.KindFunction, finder.Found[0].Stack[1].Kind())
}

func TestComplexityVisitorCountsBranches(t *testing.T) {
	cond := ast.NewBinaryOp(2, "&&", ast.NewVariable(2, "a"), ast.NewVariable(2, "b"))
	ifStmt := ast.NewIf(2, cond, ast.NewBlock(2, nil), nil, nil)
	fn := ast.NewFunction(1, "f", nil, []ast.Node{ifStmt}, false, nil)
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{fn})

	cv := analyze.NewComplexityVisitor()
	walkDFS(t, tree, cv)

	// baseline 1, +1 for the if, +1 for the && inside its condition.
	assert.Equal(t, 3, cv.Complexity[fn])
}

// Method is not scope-defining (spec.md §4.3), so it never appears on
// the namespace stack; ComplexityVisitor must still attribute branches
// inside a method body to that method via its own enter/leave stack.
func TestComplexityVisitorCountsBranchesInsideMethod(t *testing.T) {
	ifStmt := ast.NewIf(3, ast.NewVariable(3, "a"), ast.NewBlock(3, nil), nil, nil)
	method := ast.NewMethod(2, "run", nil, []ast.Node{ifStmt}, false, nil, nil)
	class := ast.NewClass(1, "Job", nil, nil, nil, []ast.Node{method})
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{class})

	cv := analyze.NewComplexityVisitor()
	walkDFS(t, tree, cv)

	assert.Equal(t, 2, cv.Complexity[method])
}

func TestComplexityVisitorIgnoresBranchesOutsideAnyFunction(t *testing.T) {
	cond := ast.NewBinaryOp(1, "||", ast.NewVariable(1, "a"), ast.NewVariable(1, "b"))
	ifStmt := ast.NewIf(1, cond, ast.NewBlock(1, nil), nil, nil)
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{ifStmt})

	cv := analyze.NewComplexityVisitor()
	walkDFS(t, tree, cv)

	assert.Empty(t, cv.Complexity)
}

func newResourceTreeWith(files map[string][]ast.Node) *resource.Tree {
	trees := make(map[string]*ast.SyntaxTree, len(files))
	for path, nodes := range files {
		trees[path] = ast.NewSyntaxTree(path, "/proj", path, nodes)
	}
	tree := &resource.Tree{
		Root:          "/proj",
		Trees:         trees,
		ParseErrors:   map[string]error{},
		FunctionTable: map[string]map[string]*ast.Function{},
		MethodTable:   map[string]map[string]resource.MethodEntry{},
		DepTable:      map[string][]*ast.SyntaxTree{},
	}
	tree.BuildTables()
	return tree
}

func TestResourceCallsFinderBindsMatchingCall(t *testing.T) {
	fn := ast.NewFunction(1, "helper", []*ast.Param{ast.NewParam(1, "x", nil, false, false, nil)}, nil, false, nil)
	call := ast.NewFunctionCall(5, ast.NewIdentifier(5, "helper"), []*ast.Arg{
		ast.NewArg(5, "", ast.NewIntLit(5, 1), false, false),
	})
	tree := newResourceTreeWith(map[string][]ast.Node{
		"/proj/a.php": {fn},
		"/proj/b.php": {call},
	})

	finder := analyze.NewResourceCallsFinder(tree, false, true)
	finder.Run()

	require.Len(t, finder.BoundCalls, 1)
	assert.Empty(t, finder.UnboundCalls)
	assert.Same(t, call, finder.BoundCalls[0].Call)
	assert.Same(t, fn, finder.BoundCalls[0].Definitions[0])
}

func TestResourceCallsFinderRejectsOnParamCountMismatch(t *testing.T) {
	fn := ast.NewFunction(1, "helper", []*ast.Param{ast.NewParam(1, "x", nil, false, false, nil)}, nil, false, nil)
	call := ast.NewFunctionCall(5, ast.NewIdentifier(5, "helper"), nil)
	tree := newResourceTreeWith(map[string][]ast.Node{
		"/proj/a.php": {fn},
		"/proj/b.php": {call},
	})

	finder := analyze.NewResourceCallsFinder(tree, false, true)
	finder.Run()

	assert.Empty(t, finder.BoundCalls)
	require.Len(t, finder.UnboundCalls, 1)
	assert.Empty(t, finder.UnboundCalls[0].Definitions)
}

func TestResourceCallsFinderIgnoresBuiltins(t *testing.T) {
	call := ast.NewFunctionCall(1, ast.NewIdentifier(1, "strlen"), []*ast.Arg{
		ast.NewArg(1, "", ast.NewStringLit(1, "x", false), false, false),
	})
	tree := newResourceTreeWith(map[string][]ast.Node{"/proj/a.php": {call}})

	finder := analyze.NewResourceCallsFinder(tree, true, true)
	finder.Run()

	assert.Empty(t, finder.BoundCalls)
	assert.Empty(t, finder.UnboundCalls)
}

func TestGraphBuilderDeduplicatesSharedSubtree(t *testing.T) {
	shared := ast.NewIntLit(1, 1)
	left := ast.NewEcho(1, []ast.Node{shared})
	right := ast.NewEcho(1, []ast.Node{shared})
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{left, right})

	g := analyze.GraphBuilder{}.Build(tree)

	nodes := g.Underlying().Nodes()
	var count int
	for nodes.Next() {
		count++
	}
	// SyntaxTree + 2 Echo + 1 shared IntLit, not 2.
	assert.Equal(t, 4, count)
}

func TestGraphBuilderDOTProducesGraphvizOutput(t *testing.T) {
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{ast.NewEcho(1, nil)})
	g := analyze.GraphBuilder{}.Build(tree)

	out, err := g.DOT()
	require.NoError(t, err)
	assert.Contains(t, string(out), "digraph")
}

func TestNameHighlighterMarksFoundNodes(t *testing.T) {
	fn := ast.NewFunction(1, "target", nil, nil, false, nil)
	tree := ast.NewSyntaxTree("a.php", ".", "a.php", []ast.Node{fn})

	finder := analyze.NewNameFinder([]string{"target"}, true)
	walk(t, tree, finder)

	g := analyze.GraphBuilder{}.Build(tree)
	analyze.NameHighlighter(finder.Found, g)

	out, err := g.DOT()
	require.NoError(t, err)
	assert.Contains(t, string(out), "style=filled")
}
