package ast

// BinaryOp is a binary expression, e.g. `$a . $b`, `$a + $b`, `$a && $b`.
type BinaryOp struct {
	base
	Op    string
	Left  Node
	Right Node
}

func NewBinaryOp(line int, op string, l, r Node) *BinaryOp {
	return &BinaryOp{newBase(KindBinaryOp, line), op, l, r}
}

// UnaryOp is a unary expression, e.g. `!$a`, `-$a`, `@$a`.
type UnaryOp struct {
	base
	Op   string
	Expr Node
}

func NewUnaryOp(line int, op string, e Node) *UnaryOp {
	return &UnaryOp{newBase(KindUnaryOp, line), op, e}
}

// IncDec is `$a++`, `$a--`, `++$a`, `--$a`.
type IncDec struct {
	base
	Expr Node
	Inc  bool // true for ++, false for --
	Pre  bool // true for prefix form
}

func NewIncDec(line int, e Node, inc, pre bool) *IncDec {
	return &IncDec{newBase(KindIncDec, line), e, inc, pre}
}

// Assignment is `$target = $value` or `$target =& $value`.
type Assignment struct {
	base
	Target Node
	Value  Node
	ByRef  bool
}

func NewAssignment(line int, target, value Node, byRef bool) *Assignment {
	return &Assignment{newBase(KindAssignment, line), target, value, byRef}
}

// AugAssign is `$target OP= $value`, e.g. `$a .= $b`.
type AugAssign struct {
	base
	Op     string
	Target Node
	Value  Node
}

func NewAugAssign(line int, op string, target, value Node) *AugAssign {
	return &AugAssign{newBase(KindAugAssign, line), op, target, value}
}

// Ternary is `cond ? then : else`; Then is nil for the Elvis form `cond ?: else`.
type Ternary struct {
	base
	Cond Node
	Then Node
	Else Node
}

func NewTernary(line int, cond, then, els Node) *Ternary {
	return &Ternary{newBase(KindTernary, line), cond, then, els}
}

// Cast is `(int)$x`, `(array)$x`, etc.
type Cast struct {
	base
	ToType string
	Expr   Node
}

func NewCast(line int, toType string, e Node) *Cast {
	return &Cast{newBase(KindCast, line), toType, e}
}

// Clone is `clone $x`.
type Clone struct {
	base
	Expr Node
}

func NewClone(line int, e Node) *Clone { return &Clone{newBase(KindClone, line), e} }

// New is `new Class(args...)`. Class may be a QualifiedName, Variable
// (`new $cls(...)`), or any other expression.
type New struct {
	base
	Class Node
	Args  []*Arg
}

func NewNewExpr(line int, class Node, args []*Arg) *New {
	return &New{newBase(KindNew, line), class, args}
}

// Arg is a single call argument, supporting by-ref, spread (`...$x`), and
// named (`name: $x`) forms.
type Arg struct {
	base
	Name   string
	Value  Node
	ByRef  bool
	Spread bool
}

func NewArg(line int, name string, value Node, byRef, spread bool) *Arg {
	return &Arg{newBase(KindArg, line), name, value, byRef, spread}
}

// MethodCall is `$receiver->name(args...)`. Receiver is nil inside a
// context where it is implicitly `$this` (not emitted by the parser
// adapter, kept for completeness of hand-built trees). Name may be any
// Node (bare Identifier, Variable for `$obj->$method()`, etc).
type MethodCall struct {
	base
	Receiver Node
	Name     Node
	Args     []*Arg
}

func NewMethodCall(line int, recv, name Node, args []*Arg) *MethodCall {
	return &MethodCall{newBase(KindMethodCall, line), recv, name, args}
}

// FunctionCall is `name(args...)` or `($expr)(args...)`. Name may be an
// Identifier, QualifiedName, ClassConstAccess, Variable, or arbitrary
// expression — the source language's dynamism means callers must
// pattern-match (spec.md §4.1).
type FunctionCall struct {
	base
	Name Node
	Args []*Arg
}

func NewFunctionCall(line int, name Node, args []*Arg) *FunctionCall {
	return &FunctionCall{newBase(KindFunctionCall, line), name, args}
}

// StaticCall is `Class::method(args...)`.
type StaticCall struct {
	base
	Class Node
	Name  Node
	Args  []*Arg
}

func NewStaticCall(line int, class, name Node, args []*Arg) *StaticCall {
	return &StaticCall{newBase(KindStaticCall, line), class, name, args}
}

// PropertyAccess is `$receiver->name` (no call).
type PropertyAccess struct {
	base
	Receiver Node
	Name     Node
}

func NewPropertyAccess(line int, recv, name Node) *PropertyAccess {
	return &PropertyAccess{newBase(KindPropertyAccess, line), recv, name}
}

// ListAssign is `list($a, $b) = $arr` / `[$a, $b] = $arr`.
type ListAssign struct {
	base
	Targets []*ArrayElement
	Value   Node
}

func NewListAssign(line int, targets []*ArrayElement, value Node) *ListAssign {
	return &ListAssign{newBase(KindListAssign, line), targets, value}
}

// Yield is `yield $value` / `yield $key => $value`.
type Yield struct {
	base
	Key   Node
	Value Node
}

func NewYield(line int, key, value Node) *Yield {
	return &Yield{newBase(KindYield, line), key, value}
}

// YieldFrom is `yield from $iterable`.
type YieldFrom struct {
	base
	Expr Node
}

func NewYieldFrom(line int, e Node) *YieldFrom { return &YieldFrom{newBase(KindYieldFrom, line), e} }
