package ast

// TypeHint is a (possibly nullable, possibly union) type annotation on a
// parameter, return type, or property (SPEC_FULL.md supplemented feature).
type TypeHint struct {
	base
	Name     string
	Nullable bool
	Union    []string
}

func NewTypeHint(line int, name string, nullable bool, union []string) *TypeHint {
	return &TypeHint{newBase(KindTypeHint, line), name, nullable, union}
}

// Param is a formal parameter declaration.
type Param struct {
	base
	Name     string
	Type     *TypeHint
	ByRef    bool
	Variadic bool
	Default  Node
}

func NewParam(line int, name string, typ *TypeHint, byRef, variadic bool, def Node) *Param {
	return &Param{newBase(KindParam, line), name, typ, byRef, variadic, def}
}

// Function is a top-level `function name(params) { body }` declaration.
type Function struct {
	base
	Name       string
	Params     []*Param
	Body       []Node
	ByRef      bool
	ReturnType *TypeHint
}

func NewFunction(line int, name string, params []*Param, body []Node, byRef bool, ret *TypeHint) *Function {
	return &Function{newBase(KindFunction, line), name, params, body, byRef, ret}
}

// Modifier is a method/property/class-constant visibility or class
// modifier keyword (`public`, `private`, `protected`, `static`,
// `abstract`, `final`, `readonly`).
type Modifier string

// Method is a function declared inside a Class/Interface/Trait.
type Method struct {
	base
	Name       string
	Params     []*Param
	Body       []Node // nil for abstract/interface methods
	ByRef      bool
	Modifiers  []Modifier
	ReturnType *TypeHint
}

func NewMethod(line int, name string, params []*Param, body []Node, byRef bool, mods []Modifier, ret *TypeHint) *Method {
	return &Method{newBase(KindMethod, line), name, params, body, byRef, mods, ret}
}

// Class is `[modifier] class Name extends? implements? { body }`.
// Modifier holds at most one of "abstract"/"final" (nil otherwise).
type Class struct {
	base
	Name       string
	Modifier   *Modifier
	Extends    *QualifiedName
	Implements []*QualifiedName
	Body       []Node
}

func NewClass(line int, name string, mod *Modifier, extends *QualifiedName, impl []*QualifiedName, body []Node) *Class {
	return &Class{newBase(KindClass, line), name, mod, extends, impl, body}
}

// Interface is `interface Name extends? { body }`.
type Interface struct {
	base
	Name    string
	Extends []*QualifiedName
	Body    []Node
}

func NewInterface(line int, name string, extends []*QualifiedName, body []Node) *Interface {
	return &Interface{newBase(KindInterface, line), name, extends, body}
}

// Trait is `trait Name { body }`.
type Trait struct {
	base
	Name string
	Body []Node
}

func NewTrait(line int, name string, body []Node) *Trait {
	return &Trait{newBase(KindTrait, line), name, body}
}

// LexicalVar is one entry of a closure's `use (...)` clause.
type LexicalVar struct {
	base
	Name  string
	ByRef bool
}

func NewLexicalVar(line int, name string, byRef bool) *LexicalVar {
	return &LexicalVar{newBase(KindLexicalVar, line), name, byRef}
}

// Closure is an anonymous function, optionally `static`, with captured
// `use` variables.
type Closure struct {
	base
	Params     []*Param
	Uses       []*LexicalVar
	Body       []Node
	ByRef      bool
	Static     bool
	ReturnType *TypeHint
}

func NewClosure(line int, params []*Param, uses []*LexicalVar, body []Node, byRef, static bool, ret *TypeHint) *Closure {
	return &Closure{newBase(KindClosure, line), params, uses, body, byRef, static, ret}
}

// GlobalDecl is `global $a, $b;`.
type GlobalDecl struct {
	base
	Names []string
}

func NewGlobalDecl(line int, names []string) *GlobalDecl {
	return &GlobalDecl{newBase(KindGlobalDecl, line), names}
}

// ConstDecl is `const NAME = value, ...;` (also used for class constants,
// whose modifiers live on the enclosing Class/Interface member list).
type ConstDecl struct {
	base
	Names  []string
	Values []Node
}

func NewConstDecl(line int, names []string, values []Node) *ConstDecl {
	return &ConstDecl{newBase(KindConstDecl, line), names, values}
}

// UseKind distinguishes the three forms of `use` declaration.
type UseKind string

const (
	UsePlain    UseKind = "plain"
	UseFunction UseKind = "function"
	UseConst    UseKind = "const"
)

// UseDecl is a `use` import declaration. Chains holds one entry per
// comma-separated name, each optionally carrying an `as Alias`.
type UseDecl struct {
	base
	UseKind UseKind
	Chains  []UseChain
}

// UseChain is one `Name\Space as Alias` entry of a UseDecl.
type UseChain struct {
	Name  *QualifiedName
	Alias string
}

func NewUseDecl(line int, kind UseKind, chains []UseChain) *UseDecl {
	return &UseDecl{newBase(KindUseDecl, line), kind, chains}
}

// Namespace is `namespace Name? { body }` (braced) or `namespace Name;`
// (semicolon form). The parser adapter lowers both to the same shape:
// for the semicolon form, the top-level statements that follow it, up
// to the next namespace declaration, become its Body (see lowerRoot in
// package parser).
type Namespace struct {
	base
	Name *QualifiedName
	Body []Node
}

func NewNamespace(line int, name *QualifiedName, body []Node) *Namespace {
	return &Namespace{newBase(KindNamespace, line), name, body}
}

// InlineHTML is a run of raw markup outside `<?php ... ?>` tags.
type InlineHTML struct {
	base
	Text string
}

func NewInlineHTML(line int, text string) *InlineHTML {
	return &InlineHTML{newBase(KindInlineHTML, line), text}
}
