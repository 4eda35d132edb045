// Package resource implements the multi-file resource graph (C4):
// collecting every source file under a root, parsing each into a
// SyntaxTree, and building the cross-file function/method/dependency
// tables that the resolver (C5) and finders (C6) query.
package resource

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/parser"
)

// Extension is the canonical source-file suffix; matching is literal
// per spec.md §6 "Filesystem".
const Extension = ".php"

// MethodEntry pairs a Method with its enclosing Class, the shape
// method_table values take per spec.md §4.4.
type MethodEntry struct {
	Method *ast.Method
	Class  *ast.Class
}

// Tree is the resource tree: every collected file's parsed SyntaxTree,
// keyed by absolute path, plus the cross-file lookup tables built by
// BuildTables. Per spec.md §5 "Shared resources", a Tree is not safe
// for concurrent mutation from multiple goroutines.
type Tree struct {
	Root string

	Trees       map[string]*ast.SyntaxTree
	ParseErrors map[string]error

	FunctionTable map[string]map[string]*ast.Function
	MethodTable   map[string]map[string]MethodEntry
	DepTable      map[string][]*ast.SyntaxTree

	// Stale is populated only by BuildTreesCached: true for files whose
	// content hash changed since the last recorded run.
	Stale map[string]bool
}

// BuildTrees collects every *.php file reachable from root (a single
// file or a directory, walked recursively) and parses each one via C2
// using parser.DefaultVersion. Per spec.md §4.4, a nonexistent root
// fails with *InvalidPath; a file that fails to parse is recorded in
// ParseErrors and skipped, not fatal.
func BuildTrees(root string) (*Tree, error) {
	return BuildTreesVersion(root, parser.DefaultVersion)
}

// BuildTreesVersion is BuildTrees with an explicit grammar version, for
// corpora pinned to an older PHP dialect (internal/config's
// PHPAST_PHP_VERSION).
func BuildTreesVersion(root string, version parser.Version) (*Tree, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &InvalidPath{Path: root, Err: err}
	}

	files, err := collectFiles(root, info)
	if err != nil {
		return nil, &InvalidPath{Path: root, Err: err}
	}

	t := &Tree{
		Root:          root,
		Trees:         make(map[string]*ast.SyntaxTree),
		ParseErrors:   make(map[string]error),
		FunctionTable: make(map[string]map[string]*ast.Function),
		MethodTable:   make(map[string]map[string]MethodEntry),
		DepTable:      make(map[string][]*ast.SyntaxTree),
	}

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			abs = f
		}
		src, err := os.ReadFile(abs)
		if err != nil {
			t.ParseErrors[abs] = err
			continue
		}
		tree, err := parser.ParseVersion(src, abs, version)
		if err != nil {
			t.ParseErrors[abs] = err
			continue
		}
		t.Trees[abs] = tree
	}

	return t, nil
}

// collectFiles walks root (grounded on the teacher's
// internal/scanner/scanner.go: doublestar glob matching combined with
// .gitignore-aware exclusion) and returns every matching source file.
func collectFiles(root string, info os.FileInfo) ([]string, error) {
	if !info.IsDir() {
		if filepath.Ext(root) == Extension {
			return []string{root}, nil
		}
		return nil, nil
	}

	ignore := loadGitignore(root)

	var out []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		if ignore != nil && ignore.MatchesPath(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		match, _ := doublestar.Match("**/*"+Extension, filepath.ToSlash(rel))
		if match {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadGitignore(root string) *gitignore.GitIgnore {
	ig, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return ig
}
