package traversal

import "github.com/oxhq/phpast/ast"

// Field is one named child slot of a node, in declaration order. Values
// has length 0 for an absent optional slot, 1 for a scalar slot, and any
// length for a sequence slot (spec.md §4.3 "Child enumeration").
type Field struct {
	Name   string
	Values []ast.Node
}

func one(name string, n ast.Node) Field {
	if n == nil || isNilNode(n) {
		return Field{Name: name}
	}
	return Field{Name: name, Values: []ast.Node{n}}
}

func many(name string, ns []ast.Node) Field {
	out := make([]ast.Node, 0, len(ns))
	for _, n := range ns {
		if n != nil && !isNilNode(n) {
			out = append(out, n)
		}
	}
	return Field{Name: name, Values: out}
}

// isNilNode guards against the classic Go typed-nil-in-interface trap: a
// *ast.Else field holding a nil pointer, once assigned into an ast.Node
// interface value, is itself a non-nil interface. Every place we convert
// an optional concrete pointer into ast.Node must go through here.
func isNilNode(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.Else:
		return v == nil
	case *ast.Finally:
		return v == nil
	case *ast.TypeHint:
		return v == nil
	case *ast.SyntaxTree:
		return v == nil
	default:
		return false
	}
}

// Children enumerates the ordered child fields of n, replacing the
// reference's reflective field-list contract with an explicit type
// switch (see package doc). Unknown node types (including any future
// variant not yet added here) yield no children rather than panicking,
// so a walk degrades gracefully instead of crashing.
func Children(n ast.Node) []Field {
	switch v := n.(type) {

	case *ast.SyntaxTree:
		return []Field{many("Nodes", v.Nodes)}

	// Literals and references
	case *ast.InterpString:
		parts := make([]ast.Node, 0, len(v.Parts))
		for _, p := range v.Parts {
			if p.Expr != nil {
				parts = append(parts, p.Expr)
			}
		}
		return []Field{{Name: "Parts", Values: parts}}
	case *ast.Variable:
		return []Field{one("VarExpr", v.VarExpr)}
	case *ast.ArrayLit:
		elems := make([]ast.Node, 0, len(v.Elements))
		for _, e := range v.Elements {
			elems = append(elems, e)
		}
		return []Field{{Name: "Elements", Values: elems}}
	case *ast.ArrayElement:
		return []Field{one("Key", v.Key), one("Value", v.Value)}
	case *ast.ArrayOffset:
		return []Field{one("BaseExpr", v.BaseExpr), one("Index", v.Index)}
	case *ast.StringOffset:
		return []Field{one("BaseExpr", v.BaseExpr), one("Index", v.Index)}
	case *ast.ClassConstAccess:
		return []Field{one("ClassExpr", v.ClassExpr)}

	// Expressions
	case *ast.BinaryOp:
		return []Field{one("Left", v.Left), one("Right", v.Right)}
	case *ast.UnaryOp:
		return []Field{one("Expr", v.Expr)}
	case *ast.IncDec:
		return []Field{one("Expr", v.Expr)}
	case *ast.Assignment:
		return []Field{one("Target", v.Target), one("Value", v.Value)}
	case *ast.AugAssign:
		return []Field{one("Target", v.Target), one("Value", v.Value)}
	case *ast.Ternary:
		return []Field{one("Cond", v.Cond), one("Then", v.Then), one("Else", v.Else)}
	case *ast.Cast:
		return []Field{one("Expr", v.Expr)}
	case *ast.Clone:
		return []Field{one("Expr", v.Expr)}
	case *ast.New:
		return []Field{one("Class", v.Class), many("Args", argNodes(v.Args))}
	case *ast.Arg:
		return []Field{one("Value", v.Value)}
	case *ast.MethodCall:
		return []Field{one("Receiver", v.Receiver), one("Name", v.Name), many("Args", argNodes(v.Args))}
	case *ast.FunctionCall:
		return []Field{one("Name", v.Name), many("Args", argNodes(v.Args))}
	case *ast.StaticCall:
		return []Field{one("Class", v.Class), one("Name", v.Name), many("Args", argNodes(v.Args))}
	case *ast.PropertyAccess:
		return []Field{one("Receiver", v.Receiver), one("Name", v.Name)}
	case *ast.ListAssign:
		targets := make([]ast.Node, 0, len(v.Targets))
		for _, t := range v.Targets {
			targets = append(targets, t)
		}
		return []Field{{Name: "Targets", Values: targets}, one("Value", v.Value)}
	case *ast.Yield:
		return []Field{one("Key", v.Key), one("Value", v.Value)}
	case *ast.YieldFrom:
		return []Field{one("Expr", v.Expr)}

	// Statements
	case *ast.Block:
		return []Field{many("Stmts", v.Stmts)}
	case *ast.Echo:
		return []Field{many("Exprs", v.Exprs)}
	case *ast.Return:
		return []Field{one("Expr", v.Expr)}
	case *ast.Break:
		return []Field{one("Level", v.Level)}
	case *ast.Continue:
		return []Field{one("Level", v.Level)}
	case *ast.Throw:
		return []Field{one("Expr", v.Expr)}
	case *ast.Include:
		return []Field{one("Expr", v.Expr), one("Body", v.Body)}
	case *ast.Require:
		return []Field{one("Expr", v.Expr), one("Body", v.Body)}
	case *ast.Eval:
		return []Field{one("Expr", v.Expr)}
	case *ast.Exit:
		return []Field{one("Expr", v.Expr)}
	case *ast.Isset:
		return []Field{many("Vars", v.Vars)}
	case *ast.Unset:
		return []Field{many("Vars", v.Vars)}
	case *ast.Empty:
		return []Field{one("Expr", v.Expr)}

	// Control flow
	case *ast.If:
		elseifs := make([]ast.Node, 0, len(v.ElseIfs))
		for _, e := range v.ElseIfs {
			elseifs = append(elseifs, e)
		}
		return []Field{
			one("Cond", v.Cond), one("Then", v.Then),
			{Name: "ElseIfs", Values: elseifs}, one("Else", v.Else),
		}
	case *ast.ElseIf:
		return []Field{one("Cond", v.Cond), one("Body", v.Body)}
	case *ast.Else:
		return []Field{one("Body", v.Body)}
	case *ast.While:
		return []Field{one("Cond", v.Cond), one("Body", v.Body)}
	case *ast.DoWhile:
		return []Field{one("Body", v.Body), one("Cond", v.Cond)}
	case *ast.For:
		return []Field{many("Init", v.Init), many("Cond", v.Cond), many("Step", v.Step), one("Body", v.Body)}
	case *ast.Foreach:
		return []Field{one("Iterable", v.Iterable), one("Key", v.Key), one("Value", v.Value), one("Body", v.Body)}
	case *ast.Switch:
		return []Field{one("Subject", v.Subject), many("Cases", v.Cases)}
	case *ast.Case:
		return []Field{one("Expr", v.Expr), many("Stmts", v.Stmts)}
	case *ast.Default:
		return []Field{many("Stmts", v.Stmts)}
	case *ast.Try:
		catches := make([]ast.Node, 0, len(v.Catches))
		for _, c := range v.Catches {
			catches = append(catches, c)
		}
		return []Field{one("Body", v.Body), {Name: "Catches", Values: catches}, one("Finally", v.Finally)}
	case *ast.Catch:
		return []Field{one("Body", v.Body)}
	case *ast.Finally:
		return []Field{one("Body", v.Body)}

	// Declarations
	case *ast.Param:
		return []Field{one("Type", v.Type), one("Default", v.Default)}
	case *ast.Function:
		params := make([]ast.Node, 0, len(v.Params))
		for _, p := range v.Params {
			params = append(params, p)
		}
		return []Field{{Name: "Params", Values: params}, many("Body", v.Body), one("ReturnType", v.ReturnType)}
	case *ast.Method:
		params := make([]ast.Node, 0, len(v.Params))
		for _, p := range v.Params {
			params = append(params, p)
		}
		return []Field{{Name: "Params", Values: params}, many("Body", v.Body), one("ReturnType", v.ReturnType)}
	case *ast.Class:
		impl := make([]ast.Node, 0, len(v.Implements))
		for _, i := range v.Implements {
			impl = append(impl, i)
		}
		return []Field{one("Extends", qnNode(v.Extends)), {Name: "Implements", Values: impl}, many("Body", v.Body)}
	case *ast.Interface:
		ext := make([]ast.Node, 0, len(v.Extends))
		for _, e := range v.Extends {
			ext = append(ext, e)
		}
		return []Field{{Name: "Extends", Values: ext}, many("Body", v.Body)}
	case *ast.Trait:
		return []Field{many("Body", v.Body)}
	case *ast.Closure:
		params := make([]ast.Node, 0, len(v.Params))
		for _, p := range v.Params {
			params = append(params, p)
		}
		uses := make([]ast.Node, 0, len(v.Uses))
		for _, u := range v.Uses {
			uses = append(uses, u)
		}
		return []Field{
			{Name: "Params", Values: params}, {Name: "Uses", Values: uses},
			many("Body", v.Body), one("ReturnType", v.ReturnType),
		}
	case *ast.ConstDecl:
		return []Field{many("Values", v.Values)}
	case *ast.UseDecl:
		chains := make([]ast.Node, 0, len(v.Chains))
		for _, c := range v.Chains {
			if c.Name != nil {
				chains = append(chains, c.Name)
			}
		}
		return []Field{{Name: "Chains", Values: chains}}
	case *ast.Namespace:
		return []Field{one("Name", qnNode(v.Name)), many("Body", v.Body)}

	// Pseudo-nodes: CircularImport deliberately exposes no children so a
	// walk never re-enters the cycle it represents (spec.md §4.3 "Cycle
	// tolerance" notes this is the resolver's job, not the traverser's).
	case *ast.CircularImport, *ast.UnresolvedInclude:
		return nil
	case *ast.Unknown:
		return []Field{many("Children", v.Children)}

	default:
		return nil
	}
}

func argNodes(args []*ast.Arg) []ast.Node {
	out := make([]ast.Node, 0, len(args))
	for _, a := range args {
		out = append(out, a)
	}
	return out
}

func qnNode(q *ast.QualifiedName) ast.Node {
	if q == nil {
		return nil
	}
	return q
}
