package resolve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/resolve"
	"github.com/oxhq/phpast/resource"
)

// scenario 3 of spec.md §8, with BASE defined as the relative 'lib/' so
// the target lives under the temp dir: define('BASE','lib/'); require BASE . 'b.php';
func TestSingleFileResolveFoldsDefineAndConcat(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	require.NoError(t, os.MkdirAll(libDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "b.php"), []byte("<?php\n"), 0o644))

	define := ast.NewFunctionCall(1, ast.NewIdentifier(1, "define"), []*ast.Arg{
		ast.NewArg(1, "", ast.NewConstantRef(1, "BASE"), false, false),
		ast.NewArg(1, "", ast.NewStringLit(1, "lib/", false), false, false),
	})
	req := ast.NewRequire(2, ast.NewBinaryOp(2, ".", ast.NewConstantRef(2, "BASE"), ast.NewStringLit(2, "b.php", false)), false)

	tree := ast.NewSyntaxTree(filepath.Join(dir, "a.php"), dir, "a.php", []ast.Node{define, req})

	r := resolve.Resolve(tree)

	assert.Empty(t, r.ExprFails)
	assert.Empty(t, r.NotFound)
	require.NotNil(t, req.Body)
	child, ok := req.Body.(*ast.SyntaxTree)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(libDir, "b.php"), child.FilePath)
}

func TestSingleFileResolveRecordsNotFound(t *testing.T) {
	dir := t.TempDir()
	req := ast.NewRequire(1, ast.NewStringLit(1, "missing.php", false), false)
	tree := ast.NewSyntaxTree(filepath.Join(dir, "a.php"), dir, "a.php", []ast.Node{req})

	r := resolve.Resolve(tree)

	require.Len(t, r.NotFound, 1)
	assert.Equal(t, filepath.Join(dir, "missing.php"), r.NotFound[0].Path)

	// spec.md §8 invariant 2: Body is never nil, it carries a marker.
	marker, ok := req.Body.(*ast.UnresolvedInclude)
	require.True(t, ok)
	assert.Equal(t, resolve.ReasonIncludeUnresolved, marker.Reason)
	assert.Equal(t, filepath.Join(dir, "missing.php"), marker.Path)
}

func TestUnfoldableExpressionRecordsExprFail(t *testing.T) {
	dir := t.TempDir()
	req := ast.NewRequire(1, ast.NewVariable(1, "dynamic"), false)
	tree := ast.NewSyntaxTree(filepath.Join(dir, "a.php"), dir, "a.php", []ast.Node{req})

	r := resolve.Resolve(tree)

	require.Len(t, r.ExprFails, 1)
	assert.Equal(t, 1, r.ExprFails[0].Line)

	marker, ok := req.Body.(*ast.UnresolvedInclude)
	require.True(t, ok)
	assert.Equal(t, resolve.ReasonExpressionUnfoldable, marker.Reason)
}

// scenario 4 of spec.md §8: A requires B; B requires A.
func TestResourceModeDetectsIncludeCycle(t *testing.T) {
	aPath, bPath := "/proj/a.php", "/proj/b.php"

	reqB := ast.NewRequire(1, ast.NewStringLit(1, "b.php", false), false)
	aTree := ast.NewSyntaxTree(aPath, "/proj", "a.php", []ast.Node{reqB})

	reqA := ast.NewRequire(1, ast.NewStringLit(1, "a.php", false), false)
	bTree := ast.NewSyntaxTree(bPath, "/proj", "b.php", []ast.Node{reqA})

	tree := &resource.Tree{
		Root:          "/proj",
		Trees:         map[string]*ast.SyntaxTree{aPath: aTree, bPath: bTree},
		ParseErrors:   map[string]error{},
		FunctionTable: map[string]map[string]*ast.Function{},
		MethodTable:   map[string]map[string]resource.MethodEntry{},
		DepTable:      map[string][]*ast.SyntaxTree{},
	}

	resolve.ResolveAll(tree)

	// a.php sorts before b.php, so ResolveAll walks it first: its
	// require resolves plainly to b.php's tree, and the walker then
	// descends into that attached body, discovering the cycle on b.php's
	// own require back to a.php.
	bNode, ok := reqB.Body.(*ast.SyntaxTree)
	require.True(t, ok, "A's require should resolve to B's tree")
	assert.Equal(t, bPath, bNode.FilePath)

	circ, ok := reqA.Body.(*ast.CircularImport)
	require.True(t, ok, "B's require back to A should be a CircularImport")
	assert.Equal(t, aPath, circ.TargetFileName)
}

// Structural equality across every recorded diagnostic is exactly the
// shape cmp.Diff is for: unlike assert.Equal it prints a field-level
// diff on mismatch instead of a single opaque "not equal".
func TestSingleFileResolveRecordsEveryNotFoundEntry(t *testing.T) {
	dir := t.TempDir()
	reqA := ast.NewRequire(1, ast.NewStringLit(1, "missing-a.php", false), false)
	reqB := ast.NewRequire(2, ast.NewStringLit(2, "missing-b.php", false), false)
	tree := ast.NewSyntaxTree(filepath.Join(dir, "a.php"), dir, "a.php", []ast.Node{reqA, reqB})

	r := resolve.Resolve(tree)

	want := []resolve.NotFoundEntry{
		{FilePath: filepath.Join(dir, "a.php"), Path: filepath.Join(dir, "missing-a.php")},
		{FilePath: filepath.Join(dir, "a.php"), Path: filepath.Join(dir, "missing-b.php")},
	}
	if diff := cmp.Diff(want, r.NotFound); diff != "" {
		t.Errorf("NotFound mismatch (-want +got):\n%s", diff)
	}
}
