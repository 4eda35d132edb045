package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/traversal"
)

// stackRecorder captures the namespace-stack snapshot observed when
// visiting a chosen target node kind, for asserting scenario 6 of
// spec.md §8 ("Namespace stack").
type stackRecorder struct {
	traversal.BaseVisitor
	target ast.Kind
	tr     *traversal.Traverser
	stack  []ast.Node
}

func (r *stackRecorder) RegisterWith(t *traversal.Traverser) { r.tr = t }

func (r *stackRecorder) Visit(n ast.Node) {
	if n.Kind() == r.target {
		r.stack = r.tr.Stack()
	}
}

func buildNamespaceStackFixture() *ast.SyntaxTree {
	echo := ast.NewEcho(1, []ast.Node{ast.NewIntLit(1, 1)})
	method := ast.NewFunction(1, "m", nil, []ast.Node{echo}, false, nil)
	class := ast.NewClass(1, "C", nil, nil, nil, []ast.Node{method})
	ns := ast.NewNamespace(1, ast.NewQualifiedName(1, []string{"N"}, false), []ast.Node{class})
	return ast.NewSyntaxTree("f.php", ".", "f.php", []ast.Node{ns})
}

func TestDFSNamespaceStackSnapshot(t *testing.T) {
	tree := buildNamespaceStackFixture()
	rec := &stackRecorder{target: ast.KindEcho}
	w := traversal.NewDepthWalker()
	require.NoError(t, w.Register(rec))
	w.Walk(tree)

	require.Len(t, rec.stack, 4)
	assert.Equal(t, ast.KindSyntaxTree, rec.stack[0].Kind())
	assert.Equal(t, ast.KindNamespace, rec.stack[1].Kind())
	assert.Equal(t, ast.KindClass, rec.stack[2].Kind())
	assert.Equal(t, ast.KindFunction, rec.stack[3].Kind())
}

func TestBFSAndDFSProduceIdenticalStackSnapshots(t *testing.T) {
	tree := buildNamespaceStackFixture()

	dfsRec := &stackRecorder{target: ast.KindEcho}
	dfs := traversal.NewDepthWalker()
	require.NoError(t, dfs.Register(dfsRec))
	dfs.Walk(tree)

	bfsRec := &stackRecorder{target: ast.KindEcho}
	bfs := traversal.NewWalker()
	require.NoError(t, bfs.Register(bfsRec))
	bfs.Walk(tree)

	require.Len(t, bfsRec.stack, len(dfsRec.stack))
	for i := range dfsRec.stack {
		assert.Equal(t, dfsRec.stack[i].Kind(), bfsRec.stack[i].Kind())
	}
}

func TestDuplicateVisitorRejected(t *testing.T) {
	w := traversal.NewDepthWalker()
	v := &traversal.BaseVisitor{}
	require.NoError(t, w.Register(v))

	err := w.Register(v)
	require.Error(t, err)
	var dup *traversal.DuplicateVisitorError
	assert.ErrorAs(t, err, &dup)
}

func TestCircularImportHasNoChildren(t *testing.T) {
	ci := ast.NewCircularImport(1, "a.php", nil)
	assert.Nil(t, traversal.Children(ci))
}
