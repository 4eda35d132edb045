package parser

import (
	"fmt"
	"reflect"

	phpast "github.com/VKCOM/php-parser/pkg/ast"
	phpposition "github.com/VKCOM/php-parser/pkg/position"

	"github.com/oxhq/phpast/ast"
)

// lowerer converts a github.com/VKCOM/php-parser vertex tree into this
// system's closed ast.Node hierarchy. It holds the original source only
// to recover the raw text of ast.Unknown fallback nodes from their
// position in the underlying buffer.
type lowerer struct {
	src []byte
}

func newLowerer(src []byte) *lowerer { return &lowerer{src: src} }

func (l *lowerer) lowerRoot(v phpast.Vertex) []ast.Node {
	root, ok := v.(*phpast.Root)
	if !ok {
		return []ast.Node{l.lower(v)}
	}
	nodes := l.lowerList(root.Stmts)
	out := make([]ast.Node, 0, len(nodes))
	var open *ast.Namespace
	for _, n := range nodes {
		if ns, ok := n.(*ast.Namespace); ok {
			open = nil
			if len(ns.Body) == 0 {
				open = ns
			}
		} else if open != nil {
			open.Body = append(open.Body, n)
			continue
		}
		out = append(out, n)
	}
	return out
}

func (l *lowerer) lowerList(vs []phpast.Vertex) []ast.Node {
	out := make([]ast.Node, 0, len(vs))
	for _, v := range vs {
		if n := l.lower(v); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// lower dispatches a single vertex to its ast.Node equivalent. Grammar
// shapes without a first-class variant fall through to genericFallback,
// which either elides a single-child pass-through wrapper or produces an
// ast.Unknown node, per spec.md §6.
func (l *lowerer) lower(v phpast.Vertex) ast.Node {
	if v == nil || isNilVertex(v) {
		return nil
	}
	line := l.lineOf(v)

	switch n := v.(type) {

	// --- Pass-through wrappers -------------------------------------
	case *phpast.StmtExpression:
		return l.lower(n.Expr)
	case *phpast.StmtStmtList:
		return ast.NewBlock(line, l.lowerList(n.Stmts))
	case *phpast.StmtNop:
		return nil
	case *phpast.Argument:
		return l.lower(n.Expr)
	case *phpast.Parens:
		return l.lower(n.Expr)

	// --- Declarations -------------------------------------------------
	case *phpast.StmtNamespace:
		return ast.NewNamespace(line, l.lowerQualifiedName(n.Name), l.lowerList(n.Stmts))
	case *phpast.StmtFunction:
		return ast.NewFunction(line, l.identString(n.Name), l.lowerParams(n.Params), l.lowerList(n.Stmts), n.AmpersandTkn != nil, l.lowerTypeHint(n.ReturnType))
	case *phpast.StmtClassMethod:
		return ast.NewMethod(line, l.identString(n.Name), l.lowerParams(n.Params), l.lowerMethodBody(n.Stmt), n.AmpersandTkn != nil, l.lowerModifiers(n.Modifiers), l.lowerTypeHint(n.ReturnType))
	case *phpast.StmtClass:
		var extends *ast.QualifiedName
		if n.Extends != nil {
			extends = l.lowerQualifiedName(n.Extends.ClassName)
		}
		var impl []*ast.QualifiedName
		if n.Implements != nil {
			for _, i := range n.Implements.InterfaceNames {
				impl = append(impl, l.lowerQualifiedName(i))
			}
		}
		var mod *ast.Modifier
		if mods := l.lowerModifiers(n.Modifiers); len(mods) > 0 {
			mod = &mods[0]
		}
		return ast.NewClass(line, l.identString(n.Name), mod, extends, impl, l.lowerList(n.Stmts))
	case *phpast.StmtInterface:
		var ext []*ast.QualifiedName
		if n.Extends != nil {
			for _, i := range n.Extends.InterfaceNames {
				ext = append(ext, l.lowerQualifiedName(i))
			}
		}
		return ast.NewInterface(line, l.identString(n.Name), ext, l.lowerList(n.Stmts))
	case *phpast.StmtTrait:
		return ast.NewTrait(line, l.identString(n.Name), l.lowerList(n.Stmts))
	case *phpast.ExprClosure:
		var uses []*ast.LexicalVar
		for _, u := range n.Uses {
			if cu, ok := u.(*phpast.ClosureUse); ok {
				uses = append(uses, ast.NewLexicalVar(l.lineOf(cu), l.varName(cu.Var), cu.AmpersandTkn != nil))
			}
		}
		static := len(l.lowerModifiers(n.Modifiers)) > 0
		return ast.NewClosure(line, l.lowerParams(n.Params), uses, l.lowerList(n.Stmts), n.AmpersandTkn != nil, static, l.lowerTypeHint(n.ReturnType))
	case *phpast.StmtGlobal:
		var names []string
		for _, vr := range n.Vars {
			names = append(names, l.varName(vr))
		}
		return ast.NewGlobalDecl(line, names)
	case *phpast.StmtConstList:
		var names []string
		var values []ast.Node
		for _, c := range n.Consts {
			if cc, ok := c.(*phpast.Const); ok {
				names = append(names, l.identString(cc.Name))
				values = append(values, l.lower(cc.Expr))
			}
		}
		return ast.NewConstDecl(line, names, values)
	case *phpast.StmtUseList:
		kind := ast.UsePlain
		if useKind := l.identString(n.Type); useKind == "function" {
			kind = ast.UseFunction
		} else if useKind == "const" {
			kind = ast.UseConst
		}
		var chains []ast.UseChain
		for _, u := range n.Uses {
			if ud, ok := u.(*phpast.StmtUse); ok {
				chains = append(chains, ast.UseChain{Name: l.lowerQualifiedName(ud.Use), Alias: l.identString(ud.Alias)})
			}
		}
		return ast.NewUseDecl(line, kind, chains)
	case *phpast.StmtInlineHtml:
		return ast.NewInlineHTML(line, string(n.Value))

	// --- Control flow ---------------------------------------------------
	case *phpast.StmtIf:
		var elseifs []*ast.ElseIf
		for _, e := range n.ElseIf {
			if ei, ok := e.(*phpast.StmtElseIf); ok {
				elseifs = append(elseifs, ast.NewElseIf(l.lineOf(ei), l.lower(ei.Cond), l.lower(ei.Stmt)))
			}
		}
		var els *ast.Else
		if se, ok := n.Else.(*phpast.StmtElse); ok {
			els = ast.NewElse(l.lineOf(se), l.lower(se.Stmt))
		}
		return ast.NewIf(line, l.lower(n.Cond), l.lower(n.Stmt), elseifs, els)
	case *phpast.StmtWhile:
		return ast.NewWhile(line, l.lower(n.Cond), l.lower(n.Stmt))
	case *phpast.StmtDo:
		return ast.NewDoWhile(line, l.lower(n.Stmt), l.lower(n.Cond))
	case *phpast.StmtFor:
		return ast.NewFor(line, l.lowerList(n.Init), l.lowerList(n.Cond), l.lowerList(n.Loop), l.lower(n.Stmt))
	case *phpast.StmtForeach:
		return ast.NewForeach(line, l.lower(n.Expr), l.lower(n.Key), l.lower(n.Var), n.AmpersandTkn != nil, l.lower(n.Stmt))
	case *phpast.StmtSwitch:
		return ast.NewSwitch(line, l.lower(n.Cond), l.lowerList(n.Cases))
	case *phpast.StmtCase:
		return ast.NewCase(line, l.lower(n.Cond), l.lowerList(n.Stmts))
	case *phpast.StmtDefault:
		return ast.NewDefault(line, l.lowerList(n.Stmts))
	case *phpast.StmtTry:
		var catches []*ast.Catch
		for _, c := range n.Catches {
			if cc, ok := c.(*phpast.StmtCatch); ok {
				var types []string
				for _, t := range cc.Types {
					types = append(types, l.qualifiedString(t))
				}
				catches = append(catches, ast.NewCatch(l.lineOf(cc), types, l.varName(cc.Var), ast.NewBlock(l.lineOf(cc), l.lowerList(cc.Stmts))))
			}
		}
		var fin *ast.Finally
		if sf, ok := n.Finally.(*phpast.StmtFinally); ok {
			fin = ast.NewFinally(l.lineOf(sf), ast.NewBlock(l.lineOf(sf), l.lowerList(sf.Stmts)))
		}
		return ast.NewTry(line, ast.NewBlock(line, l.lowerList(n.Stmts)), catches, fin)

	// --- Statements -----------------------------------------------------
	case *phpast.StmtEcho:
		return ast.NewEcho(line, l.lowerList(n.Exprs))
	case *phpast.StmtReturn:
		return ast.NewReturn(line, l.lower(n.Expr))
	case *phpast.StmtBreak:
		return ast.NewBreak(line, l.lower(n.Expr))
	case *phpast.StmtContinue:
		return ast.NewContinue(line, l.lower(n.Expr))
	case *phpast.StmtGoto:
		return ast.NewGoto(line, l.identString(n.Label))
	case *phpast.StmtLabel:
		return ast.NewLabel(line, l.identString(n.Name))
	case *phpast.StmtThrow:
		return ast.NewThrow(line, l.lower(n.Expr))
	case *phpast.StmtUnset:
		return ast.NewUnset(line, l.lowerList(n.Vars))

	// --- Include/require --------------------------------------------
	case *phpast.ExprInclude:
		return ast.NewInclude(line, l.lower(n.Expr), false)
	case *phpast.ExprIncludeOnce:
		return ast.NewInclude(line, l.lower(n.Expr), true)
	case *phpast.ExprRequire:
		return ast.NewRequire(line, l.lower(n.Expr), false)
	case *phpast.ExprRequireOnce:
		return ast.NewRequire(line, l.lower(n.Expr), true)

	// --- Expressions: assignment family ----------------------------
	case *phpast.ExprAssign:
		if list, ok := n.Var.(*phpast.ExprList); ok {
			return l.lowerListDestructure(line, list.Items, l.lower(n.Expr))
		}
		return ast.NewAssignment(line, l.lower(n.Var), l.lower(n.Expr), false)
	case *phpast.ExprAssignReference:
		return ast.NewAssignment(line, l.lower(n.Var), l.lower(n.Expr), true)
	case *phpast.ExprList:
		return l.lowerListDestructure(line, n.Items, nil)

	case *phpast.ExprTernary:
		return ast.NewTernary(line, l.lower(n.Cond), l.lower(n.IfTrue), l.lower(n.IfFalse))
	case *phpast.ExprCastInt, *phpast.ExprCastString, *phpast.ExprCastArray,
		*phpast.ExprCastBool, *phpast.ExprCastDouble, *phpast.ExprCastObject, *phpast.ExprCastUnset:
		return l.lowerCast(n, line)
	case *phpast.ExprClone:
		return ast.NewClone(line, l.lower(n.Expr))
	case *phpast.ExprNew:
		return ast.NewNewExpr(line, l.lowerClassRef(n.Class), l.lowerArgs(n.Args))
	case *phpast.ExprPreInc:
		return ast.NewIncDec(line, l.lower(n.Var), true, true)
	case *phpast.ExprPreDec:
		return ast.NewIncDec(line, l.lower(n.Var), false, true)
	case *phpast.ExprPostInc:
		return ast.NewIncDec(line, l.lower(n.Var), true, false)
	case *phpast.ExprPostDec:
		return ast.NewIncDec(line, l.lower(n.Var), false, false)
	case *phpast.ExprBooleanNot:
		return ast.NewUnaryOp(line, "!", l.lower(n.Expr))
	case *phpast.ExprBitwiseNot:
		return ast.NewUnaryOp(line, "~", l.lower(n.Expr))
	case *phpast.ExprUnaryMinus:
		return ast.NewUnaryOp(line, "-", l.lower(n.Expr))
	case *phpast.ExprUnaryPlus:
		return ast.NewUnaryOp(line, "+", l.lower(n.Expr))
	case *phpast.ExprErrorSuppress:
		return ast.NewUnaryOp(line, "@", l.lower(n.Expr))

	case *phpast.ExprFunctionCall:
		return ast.NewFunctionCall(line, l.lowerCallTarget(n.Function), l.lowerArgs(n.Args))
	case *phpast.ExprMethodCall:
		return ast.NewMethodCall(line, l.lower(n.Var), l.lowerCallTarget(n.Method), l.lowerArgs(n.Args))
	case *phpast.ExprStaticCall:
		return ast.NewStaticCall(line, l.lowerClassRef(n.Class), l.lowerCallTarget(n.Call), l.lowerArgs(n.Args))
	case *phpast.ExprPropertyFetch:
		return ast.NewPropertyAccess(line, l.lower(n.Var), l.lowerCallTarget(n.Prop))
	case *phpast.ExprStaticPropertyFetch:
		return ast.NewPropertyAccess(line, l.lowerClassRef(n.Class), l.lower(n.Prop))
	case *phpast.ExprClassConstFetch:
		return ast.NewClassConstAccess(line, l.lowerClassRef(n.Class), l.identString(n.Const))

	case *phpast.ExprArray:
		var elems []*ast.ArrayElement
		for _, item := range n.Items {
			if ai, ok := item.(*phpast.ExprArrayItem); ok {
				elems = append(elems, ast.NewArrayElement(l.lineOf(ai), l.lower(ai.Key), l.lower(ai.Val), ai.AmpersandTkn != nil))
			}
		}
		return ast.NewArrayLit(line, elems)
	case *phpast.ExprArrayDimFetch:
		return ast.NewArrayOffset(line, l.lower(n.Var), l.lower(n.Dim))

	case *phpast.ExprIsset:
		return ast.NewIsset(line, l.lowerList(n.Vars))
	case *phpast.ExprEmpty:
		return ast.NewEmpty(line, l.lower(n.Expr))
	case *phpast.ExprExit:
		return ast.NewExit(line, l.lower(n.Expr))
	case *phpast.ExprEval:
		return ast.NewEval(line, l.lower(n.Expr))
	case *phpast.ExprYield:
		return ast.NewYield(line, l.lower(n.Key), l.lower(n.Value))
	case *phpast.ExprYieldFrom:
		return ast.NewYieldFrom(line, l.lower(n.Expr))

	case *phpast.ExprVariable:
		if id := l.tryIdentString(n.Name); id != "" {
			return ast.NewVariable(line, id)
		}
		v := ast.NewVariable(line, "")
		v.VarExpr = l.lower(n.Name)
		return v

	// --- Scalars --------------------------------------------------------
	case *phpast.ScalarLnumber:
		return ast.NewIntLit(line, parseInt(string(n.Value)))
	case *phpast.ScalarDnumber:
		return ast.NewFloatLit(line, parseFloat(string(n.Value)))
	case *phpast.ScalarString:
		return ast.NewStringLit(line, string(n.Value), false)
	case *phpast.ScalarEncapsed:
		return l.lowerEncapsed(line, n.Parts, false)
	case *phpast.ScalarHeredoc:
		return l.lowerEncapsed(line, n.Parts, true)
	case *phpast.ScalarEncapsedStringPart:
		return ast.NewStringLit(line, string(n.Value), false)
	case *phpast.ScalarMagicConstant:
		return ast.NewMagicConstant(line, string(n.Value))

	case *phpast.Identifier:
		return ast.NewIdentifier(line, string(n.Value))
	case *phpast.Name, *phpast.NameFullyQualified, *phpast.NameRelative:
		return l.lowerQualifiedName(v)

	// --- Binary / augmented-assign operator families -------------------
	default:
		if bop, okb := lowerBinaryOp(v); okb {
			return ast.NewBinaryOp(line, bop.op, l.lower(bop.left), l.lower(bop.right))
		}
		if aop, oka := lowerAugAssign(v); oka {
			return ast.NewAugAssign(line, aop.op, l.lower(aop.target), l.lower(aop.value))
		}
		return l.genericFallback(v, line)
	}
}

// lowerMethodBody returns nil for abstract/interface methods (Stmt is
// nil in that case) and a flattened statement list otherwise.
func (l *lowerer) lowerMethodBody(stmt phpast.Vertex) []ast.Node {
	if stmt == nil || isNilVertex(stmt) {
		return nil
	}
	if sl, ok := stmt.(*phpast.StmtStmtList); ok {
		return l.lowerList(sl.Stmts)
	}
	return []ast.Node{l.lower(stmt)}
}

func (l *lowerer) lowerCast(v phpast.Vertex, line int) ast.Node {
	kind := "unknown"
	var expr phpast.Vertex
	switch n := v.(type) {
	case *phpast.ExprCastInt:
		kind, expr = "int", n.Expr
	case *phpast.ExprCastString:
		kind, expr = "string", n.Expr
	case *phpast.ExprCastArray:
		kind, expr = "array", n.Expr
	case *phpast.ExprCastBool:
		kind, expr = "bool", n.Expr
	case *phpast.ExprCastDouble:
		kind, expr = "float", n.Expr
	case *phpast.ExprCastObject:
		kind, expr = "object", n.Expr
	case *phpast.ExprCastUnset:
		kind, expr = "unset", n.Expr
	}
	return ast.NewCast(line, kind, l.lower(expr))
}

func (l *lowerer) lowerListDestructure(line int, items []phpast.Vertex, value ast.Node) ast.Node {
	var elems []*ast.ArrayElement
	for _, item := range items {
		if ai, ok := item.(*phpast.ExprArrayItem); ok {
			elems = append(elems, ast.NewArrayElement(l.lineOf(ai), l.lower(ai.Key), l.lower(ai.Val), ai.AmpersandTkn != nil))
		}
	}
	return ast.NewListAssign(line, elems, value)
}

func (l *lowerer) lowerCallTarget(v phpast.Vertex) ast.Node {
	if v == nil || isNilVertex(v) {
		return nil
	}
	return l.lower(v)
}

func (l *lowerer) lowerClassRef(v phpast.Vertex) ast.Node {
	if v == nil || isNilVertex(v) {
		return nil
	}
	return l.lower(v)
}

func (l *lowerer) lowerArgs(vs []phpast.Vertex) []*ast.Arg {
	var out []*ast.Arg
	for _, v := range vs {
		arg, ok := v.(*phpast.Argument)
		if !ok {
			out = append(out, ast.NewArg(l.lineOf(v), "", l.lower(v), false, false))
			continue
		}
		name := ""
		if arg.Name != nil {
			name = l.identString(arg.Name)
		}
		out = append(out, ast.NewArg(l.lineOf(arg), name, l.lower(arg.Expr), arg.AmpersandTkn != nil, arg.VariadicTkn != nil))
	}
	return out
}

func (l *lowerer) lowerParams(vs []phpast.Vertex) []*ast.Param {
	var out []*ast.Param
	for _, v := range vs {
		p, ok := v.(*phpast.Parameter)
		if !ok {
			continue
		}
		out = append(out, ast.NewParam(
			l.lineOf(p), l.varName(p.Var), l.lowerTypeHint(p.Type),
			p.AmpersandTkn != nil, p.VariadicTkn != nil, l.lower(p.DefaultValue),
		))
	}
	return out
}

func (l *lowerer) lowerTypeHint(v phpast.Vertex) *ast.TypeHint {
	if v == nil || isNilVertex(v) {
		return nil
	}
	if nullable, ok := v.(*phpast.Nullable); ok {
		inner := l.lowerTypeHint(nullable.Expr)
		if inner == nil {
			return ast.NewTypeHint(l.lineOf(v), "", true, nil)
		}
		return ast.NewTypeHint(l.lineOf(v), inner.Name, true, inner.Union)
	}
	if union, ok := v.(*phpast.Union); ok {
		var names []string
		for _, t := range union.Types {
			names = append(names, l.qualifiedString(t))
		}
		return ast.NewTypeHint(l.lineOf(v), "", false, names)
	}
	return ast.NewTypeHint(l.lineOf(v), l.qualifiedString(v), false, nil)
}

func (l *lowerer) lowerModifiers(vs []phpast.Vertex) []ast.Modifier {
	var out []ast.Modifier
	for _, v := range vs {
		out = append(out, ast.Modifier(l.identString(v)))
	}
	return out
}

func (l *lowerer) lowerQualifiedName(v phpast.Vertex) *ast.QualifiedName {
	if v == nil || isNilVertex(v) {
		return nil
	}
	line := l.lineOf(v)
	switch n := v.(type) {
	case *phpast.Name:
		return ast.NewQualifiedName(line, l.nameParts(n.Parts), false)
	case *phpast.NameFullyQualified:
		return ast.NewQualifiedName(line, l.nameParts(n.Parts), true)
	case *phpast.NameRelative:
		return ast.NewQualifiedName(line, l.nameParts(n.Parts), false)
	case *phpast.Identifier:
		return ast.NewQualifiedName(line, []string{string(n.Value)}, false)
	default:
		return ast.NewQualifiedName(line, []string{l.qualifiedString(v)}, false)
	}
}

func (l *lowerer) nameParts(parts []phpast.Vertex) []string {
	var out []string
	for _, p := range parts {
		if np, ok := p.(*phpast.NamePart); ok {
			out = append(out, string(np.Value))
		}
	}
	return out
}

func (l *lowerer) lowerEncapsed(line int, parts []phpast.Vertex, heredoc bool) ast.Node {
	var ips []ast.InterpPart
	allLiteral := true
	var buf string
	for _, p := range parts {
		if sp, ok := p.(*phpast.ScalarEncapsedStringPart); ok {
			buf += string(sp.Value)
			ips = append(ips, ast.InterpPart{Literal: string(sp.Value)})
			continue
		}
		allLiteral = false
		ips = append(ips, ast.InterpPart{Expr: l.lower(p)})
	}
	if allLiteral {
		return ast.NewStringLit(line, buf, heredoc)
	}
	return ast.NewInterpString(line, ips)
}

// genericFallback handles grammar shapes without a hand-written case
// above. It reflects over the concrete vertex's exported fields looking
// for phpast.Vertex / []phpast.Vertex children. A wrapper with exactly
// one lowered child is elided in favour of that child; otherwise the
// resulting ast.Unknown node still exposes whatever substructure exists,
// instead of silently truncating the tree (spec.md §9 open question).
func (l *lowerer) genericFallback(v phpast.Vertex, line int) ast.Node {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ast.NewUnknown(line, fmt.Sprintf("%T", v), "", nil)
	}

	var children []ast.Node
	vertexType := reflect.TypeOf((*phpast.Vertex)(nil)).Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		switch {
		case f.Type().Implements(vertexType):
			if child, ok := f.Interface().(phpast.Vertex); ok && child != nil && !isNilVertex(child) {
				if n := l.lower(child); n != nil {
					children = append(children, n)
				}
			}
		case f.Kind() == reflect.Slice && f.Type().Elem().Implements(vertexType):
			for j := 0; j < f.Len(); j++ {
				if child, ok := f.Index(j).Interface().(phpast.Vertex); ok && child != nil && !isNilVertex(child) {
					if n := l.lower(child); n != nil {
						children = append(children, n)
					}
				}
			}
		}
	}
	if len(children) == 1 {
		return children[0]
	}
	raw := ""
	if p, ok := v.(interface{ GetPosition() *phpposition.Position }); ok {
		if pos := p.GetPosition(); pos != nil && pos.StartPos >= 0 && pos.StartPos <= pos.EndPos && pos.EndPos <= len(l.src) {
			raw = string(l.src[pos.StartPos:pos.EndPos])
		}
	}
	return ast.NewUnknown(line, fmt.Sprintf("%T", v), raw, children)
}

func (l *lowerer) varName(v phpast.Vertex) string {
	if ev, ok := v.(*phpast.ExprVariable); ok {
		return l.tryIdentString(ev.Name)
	}
	return l.tryIdentString(v)
}

func (l *lowerer) identString(v phpast.Vertex) string {
	if v == nil || isNilVertex(v) {
		return ""
	}
	if id, ok := v.(*phpast.Identifier); ok {
		return string(id.Value)
	}
	return l.qualifiedString(v)
}

func (l *lowerer) tryIdentString(v phpast.Vertex) string {
	if v == nil || isNilVertex(v) {
		return ""
	}
	if id, ok := v.(*phpast.Identifier); ok {
		return string(id.Value)
	}
	return ""
}

func (l *lowerer) qualifiedString(v phpast.Vertex) string {
	qn := l.lowerQualifiedName(v)
	if qn == nil {
		return ""
	}
	out := ""
	for i, p := range qn.Parts {
		if i > 0 {
			out += "\\"
		}
		out += p
	}
	return out
}

func (l *lowerer) lineOf(v phpast.Vertex) int {
	type positioner interface{ GetPosition() *phpposition.Position }
	if p, ok := v.(positioner); ok {
		if pos := p.GetPosition(); pos != nil {
			return pos.StartLine
		}
	}
	return 0
}

// isNilVertex guards the classic Go typed-nil-in-interface trap: a
// phpast.Vertex field holding a nil *phpast.StmtElse (for example) is a
// non-nil interface value.
func isNilVertex(v phpast.Vertex) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
