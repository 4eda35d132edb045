package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/resource"
)

func newTestTreeWith(path string, nodes []ast.Node) *resource.Tree {
	return &resource.Tree{
		Root:          "/proj",
		Trees:         map[string]*ast.SyntaxTree{path: ast.NewSyntaxTree(path, "/proj", path, nodes)},
		ParseErrors:   map[string]error{},
		FunctionTable: map[string]map[string]*ast.Function{},
		MethodTable:   map[string]map[string]resource.MethodEntry{},
		DepTable:      map[string][]*ast.SyntaxTree{},
	}
}

func TestBuildTablesPopulatesFunctionTable(t *testing.T) {
	fn := ast.NewFunction(3, "helper", nil, nil, false, nil)
	tree := newTestTreeWith("/proj/a.php", []ast.Node{fn})

	tree.BuildTables()

	require.Contains(t, tree.FunctionTable, "/proj/a.php")
	assert.Same(t, fn, tree.FunctionTable["/proj/a.php"]["helper"])
}

func TestBuildTablesPopulatesMethodTableWithEnclosingClass(t *testing.T) {
	m := ast.NewMethod(5, "run", nil, nil, false, nil, nil)
	class := ast.NewClass(4, "Job", nil, nil, nil, []ast.Node{m})
	tree := newTestTreeWith("/proj/a.php", []ast.Node{class})

	tree.BuildTables()

	entry, ok := tree.MethodTable["/proj/a.php"]["run"]
	require.True(t, ok)
	assert.Same(t, m, entry.Method)
	assert.Same(t, class, entry.Class)
}

func TestFunctionFinderFiltersByParamCount(t *testing.T) {
	zero := ast.NewFunction(1, "f", nil, nil, false, nil)
	tree := newTestTreeWith("/proj/a.php", []ast.Node{zero})
	tree.BuildTables()

	var hits int
	for path, def := range resource.FunctionFinder(tree, "f", false, 0) {
		hits++
		assert.Equal(t, "/proj/a.php", path)
		assert.Same(t, zero, def)
	}
	assert.Equal(t, 1, hits)

	hits = 0
	for range resource.FunctionFinder(tree, "f", false, 1) {
		hits++
	}
	assert.Equal(t, 0, hits)
}

func TestFunctionFinderEarlyTermination(t *testing.T) {
	f1 := ast.NewFunction(1, "g", nil, nil, false, nil)
	tree := newTestTreeWith("/proj/a.php", []ast.Node{f1})
	tree.BuildTables()

	seen := 0
	for range resource.FunctionFinder(tree, "g", false, -1) {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
