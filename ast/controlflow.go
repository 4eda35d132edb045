package ast

// If is `if (cond) then elseifs... else?`.
type If struct {
	base
	Cond    Node
	Then    Node
	ElseIfs []*ElseIf
	Else    *Else
}

func NewIf(line int, cond, then Node, elseifs []*ElseIf, els *Else) *If {
	return &If{newBase(KindIf, line), cond, then, elseifs, els}
}

// ElseIf is one `elseif (cond) body` clause of an If.
type ElseIf struct {
	base
	Cond Node
	Body Node
}

func NewElseIf(line int, cond, body Node) *ElseIf {
	return &ElseIf{newBase(KindElseIf, line), cond, body}
}

// Else is the trailing `else body` clause of an If.
type Else struct {
	base
	Body Node
}

func NewElse(line int, body Node) *Else { return &Else{newBase(KindElse, line), body} }

// While is `while (cond) body`.
type While struct {
	base
	Cond Node
	Body Node
}

func NewWhile(line int, cond, body Node) *While { return &While{newBase(KindWhile, line), cond, body} }

// DoWhile is `do body while (cond);`.
type DoWhile struct {
	base
	Body Node
	Cond Node
}

func NewDoWhile(line int, body, cond Node) *DoWhile {
	return &DoWhile{newBase(KindDoWhile, line), body, cond}
}

// For is `for (init...; cond...; step...) body`.
type For struct {
	base
	Init []Node
	Cond []Node
	Step []Node
	Body Node
}

func NewFor(line int, init, cond, step []Node, body Node) *For {
	return &For{newBase(KindFor, line), init, cond, step, body}
}

// Foreach is `foreach (iterable as key? => value) body`.
type Foreach struct {
	base
	Iterable Node
	Key      Node
	Value    Node
	ByRef    bool
	Body     Node
}

func NewForeach(line int, iterable, key, value Node, byRef bool, body Node) *Foreach {
	return &Foreach{newBase(KindForeach, line), iterable, key, value, byRef, body}
}

// Switch is `switch (subject) { cases... }`. Cases holds both Case and
// Default children in source order.
type Switch struct {
	base
	Subject Node
	Cases   []Node
}

func NewSwitch(line int, subject Node, cases []Node) *Switch {
	return &Switch{newBase(KindSwitch, line), subject, cases}
}

// Case is `case $expr: body...`.
type Case struct {
	base
	Expr  Node
	Stmts []Node
}

func NewCase(line int, expr Node, stmts []Node) *Case { return &Case{newBase(KindCase, line), expr, stmts} }

// Default is `default: body...`.
type Default struct {
	base
	Stmts []Node
}

func NewDefault(line int, stmts []Node) *Default { return &Default{newBase(KindDefault, line), stmts} }

// Try is `try { body } catches... finally?`.
type Try struct {
	base
	Body    Node
	Catches []*Catch
	Finally *Finally
}

func NewTry(line int, body Node, catches []*Catch, fin *Finally) *Try {
	return &Try{newBase(KindTry, line), body, catches, fin}
}

// Catch is `catch (Type $name) { body }`. Types holds every alternative
// in a union catch (`catch (A | B $e)`); Type mirrors Types[0] for the
// common single-type case so consumers that only care about the first
// type (spec.md §8 scenario 1) don't need to special-case unions.
type Catch struct {
	base
	Types []string
	Type  string
	Name  string
	Body  Node
}

func NewCatch(line int, types []string, name string, body Node) *Catch {
	t := ""
	if len(types) > 0 {
		t = types[0]
	}
	return &Catch{newBase(KindCatch, line), types, t, name, body}
}

// Finally is the trailing `finally { body }` of a Try.
type Finally struct {
	base
	Body Node
}

func NewFinally(line int, body Node) *Finally { return &Finally{newBase(KindFinally, line), body} }
