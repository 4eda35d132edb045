// Package ast defines the closed node hierarchy produced by the parser
// adapter and consumed by the traversal framework. Every node type is a
// plain struct; the hierarchy is closed by convention (adding a variant
// means adding a Kind constant and a struct here, plus a case in
// traversal's child-enumeration switch).
package ast

// Kind tags the concrete type of a Node. It exists so that analyzers can
// branch on node shape without repeated type switches in hot paths, and
// so traversal can report a human-readable name for visualization.
type Kind string

const (
	KindSyntaxTree Kind = "SyntaxTree"

	// Literals and references
	KindIntLit          Kind = "IntLit"
	KindFloatLit        Kind = "FloatLit"
	KindBoolLit         Kind = "BoolLit"
	KindStringLit       Kind = "StringLit"
	KindInterpString    Kind = "InterpString"
	KindConstantRef     Kind = "ConstantRef"
	KindMagicConstant   Kind = "MagicConstant"
	KindVariable        Kind = "Variable"
	KindArrayLit        Kind = "ArrayLit"
	KindArrayElement    Kind = "ArrayElement"
	KindArrayOffset     Kind = "ArrayOffset"
	KindStringOffset    Kind = "StringOffset"
	KindQualifiedName   Kind = "QualifiedName"
	KindClassConstAccess Kind = "ClassConstAccess"
	KindIdentifier      Kind = "Identifier"

	// Expressions
	KindBinaryOp     Kind = "BinaryOp"
	KindUnaryOp      Kind = "UnaryOp"
	KindIncDec       Kind = "IncDec"
	KindAssignment   Kind = "Assignment"
	KindAugAssign    Kind = "AugAssign"
	KindTernary      Kind = "Ternary"
	KindCast         Kind = "Cast"
	KindClone        Kind = "Clone"
	KindNew          Kind = "New"
	KindMethodCall   Kind = "MethodCall"
	KindFunctionCall Kind = "FunctionCall"
	KindStaticCall   Kind = "StaticCall"
	KindPropertyAccess Kind = "PropertyAccess"
	KindListAssign   Kind = "ListAssign"
	KindYield        Kind = "Yield"
	KindYieldFrom    Kind = "YieldFrom"
	KindArg          Kind = "Arg"

	// Statements
	KindBlock    Kind = "Block"
	KindEcho     Kind = "Echo"
	KindReturn   Kind = "Return"
	KindBreak    Kind = "Break"
	KindContinue Kind = "Continue"
	KindGoto     Kind = "Goto"
	KindLabel    Kind = "Label"
	KindThrow    Kind = "Throw"
	KindInclude  Kind = "Include"
	KindRequire  Kind = "Require"
	KindEval     Kind = "Eval"
	KindExit     Kind = "Exit"
	KindIsset    Kind = "Isset"
	KindUnset    Kind = "Unset"
	KindEmpty    Kind = "Empty"

	// Control flow
	KindIf       Kind = "If"
	KindElseIf   Kind = "ElseIf"
	KindElse     Kind = "Else"
	KindWhile    Kind = "While"
	KindDoWhile  Kind = "DoWhile"
	KindFor      Kind = "For"
	KindForeach  Kind = "Foreach"
	KindSwitch   Kind = "Switch"
	KindCase     Kind = "Case"
	KindDefault  Kind = "Default"
	KindTry      Kind = "Try"
	KindCatch    Kind = "Catch"
	KindFinally  Kind = "Finally"

	// Declarations
	KindFunction    Kind = "Function"
	KindParam       Kind = "Param"
	KindTypeHint    Kind = "TypeHint"
	KindMethod      Kind = "Method"
	KindClass       Kind = "Class"
	KindInterface   Kind = "Interface"
	KindTrait       Kind = "Trait"
	KindClosure     Kind = "Closure"
	KindLexicalVar  Kind = "LexicalVar"
	KindGlobalDecl  Kind = "GlobalDecl"
	KindConstDecl   Kind = "ConstDecl"
	KindUseDecl     Kind = "UseDecl"
	KindNamespace   Kind = "Namespace"
	KindInlineHTML  Kind = "InlineHTML"

	// Pseudo-nodes injected by the dependency resolver (C5)
	KindCircularImport    Kind = "CircularImport"
	KindUnresolvedInclude Kind = "UnresolvedInclude"

	// Fallback for grammar shapes not promoted to a first-class variant
	KindUnknown Kind = "Unknown"
)

// ScopeDefining is the closed set of variants that bound the namespace
// stack (spec.md §4.3, §9 "Scope-defining variants").
func ScopeDefining(k Kind) bool {
	switch k {
	case KindSyntaxTree, KindClass, KindFunction, KindNamespace, KindInterface:
		return true
	default:
		return false
	}
}

// Node is implemented by every variant in the hierarchy. It deliberately
// exposes no structural traversal API: child enumeration is owned by the
// traversal package (see design notes in SPEC_FULL.md — the reference's
// reflective accept(visitor) collapses into an explicit type switch,
// following the pattern used throughout this corpus for tree walking).
type Node interface {
	Kind() Kind
	Line() int
}

// base is embedded by every concrete node type and implements the
// boilerplate half of Node. Each constructor sets k explicitly since Go
// has no notion of a virtual default for an embedded field.
type base struct {
	k  Kind
	ln int
}

func (b base) Kind() Kind { return b.k }
func (b base) Line() int  { return b.ln }

func newBase(k Kind, line int) base { return base{k: k, ln: line} }
