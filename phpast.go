// Package phpast is the glue facade of spec.md §4.7: two entry points
// that wire the parser adapter (C2), the resource tree (C4), and the
// dependency resolver (C5) together so a caller doesn't have to know
// the component boundaries to run a whole-project or single-file
// analysis.
package phpast

import (
	"os"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/parser"
	"github.com/oxhq/phpast/resolve"
	"github.com/oxhq/phpast/resource"
)

// Analyze collects every source file under root, parses them, builds
// the cross-file function/method/dependency tables, and resolves every
// include/require against the resulting resource tree. The returned
// Tree is ready for C6 finders and analyzers. Files are parsed with
// parser.DefaultVersion; use AnalyzeVersion to pin a dialect.
func Analyze(root string) (*resource.Tree, error) {
	return AnalyzeVersion(root, parser.DefaultVersion)
}

// AnalyzeVersion is Analyze with an explicit grammar version.
func AnalyzeVersion(root string, version parser.Version) (*resource.Tree, error) {
	tree, err := resource.BuildTreesVersion(root, version)
	if err != nil {
		return nil, err
	}
	tree.BuildTables()
	resolve.ResolveAll(tree)
	return tree, nil
}

// AnalyzeFile parses a single file and resolves its own includes in
// single-file mode (parsing included files on demand rather than
// against a resource tree). Use AnalyzeFileVersion to pin a dialect.
func AnalyzeFile(path string) (*ast.SyntaxTree, error) {
	return AnalyzeFileVersion(path, parser.DefaultVersion)
}

// AnalyzeFileVersion is AnalyzeFile with an explicit grammar version.
func AnalyzeFileVersion(path string, version parser.Version) (*ast.SyntaxTree, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := parser.ParseVersion(src, path, version)
	if err != nil {
		return nil, err
	}
	resolve.Resolve(tree)
	return tree, nil
}
