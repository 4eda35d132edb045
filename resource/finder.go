package resource

import "github.com/oxhq/phpast/ast"

// FunctionFinder returns a Go 1.23 range-over-func iterator yielding
// (file_path, definition) pairs for every declaration named name,
// searching the method table when bound is true and the function table
// otherwise (spec.md §4.4, §9 "generator-style function finder"). When
// paramCount is non-negative, only definitions with exactly that many
// declared parameters are yielded. Because this is a plain iterator
// function, the caller can `break` out of a `for ... range` early
// without the full candidate set ever being built.
func FunctionFinder(t *Tree, name string, bound bool, paramCount int) func(yield func(string, ast.Node) bool) {
	return func(yield func(string, ast.Node) bool) {
		if bound {
			for path, methods := range t.MethodTable {
				entry, ok := methods[name]
				if !ok {
					continue
				}
				if paramCount >= 0 && len(entry.Method.Params) != paramCount {
					continue
				}
				if !yield(path, entry.Method) {
					return
				}
			}
			return
		}

		for path, fns := range t.FunctionTable {
			fn, ok := fns[name]
			if !ok {
				continue
			}
			if paramCount >= 0 && len(fn.Params) != paramCount {
				continue
			}
			if !yield(path, fn) {
				return
			}
		}
	}
}
