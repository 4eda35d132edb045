// Package resolve implements the dependency resolver (C5): folding
// include/require expressions to file paths, tracking define()'d string
// constants, resolving paths relative to the enclosing file, and
// detecting cycles in the include graph.
package resolve

import "github.com/oxhq/phpast/ast"

// unresolvedPath is the sentinel folded value for an expression that
// could not be reduced to a literal string (spec.md §4.5 "Expression
// folding" table).
const unresolvedPath = "[PATH]"

// fold reduces an include/require expression to a path string per the
// rules table in spec.md §4.5. ok is false whenever the expression did
// not fold to a literal, in which case the returned path is always
// unresolvedPath and the caller must record it in ExprFails.
func fold(n ast.Node, constants map[string]string) (string, bool) {
	switch v := n.(type) {
	case *ast.StringLit:
		return v.Value, true
	case *ast.BinaryOp:
		if v.Op != "." {
			return unresolvedPath, false
		}
		l, lok := fold(v.Left, constants)
		r, rok := fold(v.Right, constants)
		if !lok || !rok {
			return unresolvedPath, false
		}
		return l + r, true
	case *ast.ConstantRef:
		if val, ok := constants[v.Name]; ok {
			return val, true
		}
		return unresolvedPath, false
	case *ast.QualifiedName:
		if len(v.Parts) == 1 {
			if val, ok := constants[v.Parts[0]]; ok {
				return val, true
			}
		}
		return unresolvedPath, false
	default:
		return unresolvedPath, false
	}
}

// trackDefine updates constants from a `define(name, value)` call with a
// literal string value (spec.md §4.5 "Constant tracking"). Any other
// shape is ignored silently, per spec.md.
func trackDefine(call *ast.FunctionCall, constants map[string]string) {
	fname := ""
	switch nm := call.Name.(type) {
	case *ast.Identifier:
		fname = nm.Name
	case *ast.QualifiedName:
		if len(nm.Parts) == 1 {
			fname = nm.Parts[0]
		}
	}
	if fname != "define" || len(call.Args) < 2 {
		return
	}
	nameArg := constantName(call.Args[0].Value)
	if nameArg == "" {
		return
	}
	valArg, ok := call.Args[1].Value.(*ast.StringLit)
	if !ok {
		return
	}
	constants[nameArg] = valArg.Value
}

func constantName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.StringLit:
		return v.Value
	case *ast.ConstantRef:
		return v.Name
	case *ast.QualifiedName:
		if len(v.Parts) == 1 {
			return v.Parts[0]
		}
	}
	return ""
}
