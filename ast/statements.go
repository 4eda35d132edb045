package ast

// Block is an ordered sequence of statements sharing no new scope of
// their own (the enclosing construct, e.g. Function or If, defines scope).
type Block struct {
	base
	Stmts []Node
}

func NewBlock(line int, stmts []Node) *Block { return &Block{newBase(KindBlock, line), stmts} }

// Echo is `echo $a, $b, ...;`.
type Echo struct {
	base
	Exprs []Node
}

func NewEcho(line int, exprs []Node) *Echo { return &Echo{newBase(KindEcho, line), exprs} }

// Return is `return $expr;`; Expr is nil for a bare `return;`.
type Return struct {
	base
	Expr Node
}

func NewReturn(line int, e Node) *Return { return &Return{newBase(KindReturn, line), e} }

// Break is `break;` / `break $n;`. Level is nil for the single-level form.
type Break struct {
	base
	Level Node
}

func NewBreak(line int, level Node) *Break { return &Break{newBase(KindBreak, line), level} }

// Continue is `continue;` / `continue $n;`.
type Continue struct {
	base
	Level Node
}

func NewContinue(line int, level Node) *Continue { return &Continue{newBase(KindContinue, line), level} }

// Goto is `goto label;`.
type Goto struct {
	base
	Label string
}

func NewGoto(line int, label string) *Goto { return &Goto{newBase(KindGoto, line), label} }

// Label is `label:`.
type Label struct {
	base
	Name string
}

func NewLabel(line int, name string) *Label { return &Label{newBase(KindLabel, line), name} }

// Throw is `throw $expr;`.
type Throw struct {
	base
	Expr Node
}

func NewThrow(line int, e Node) *Throw { return &Throw{newBase(KindThrow, line), e} }

// Include / Require model both `include`/`include_once` and
// `require`/`require_once`; Once distinguishes the `_once` suffix, and
// the require/include keyword itself is told apart by which of the two
// types the node is. Body is nil
// until the dependency resolver (C5) runs; see spec.md invariant 2.
type Include struct {
	base
	Expr Node
	Once bool
	Body Node
}

func NewInclude(line int, expr Node, once bool) *Include {
	return &Include{newBase(KindInclude, line), expr, once, nil}
}

type Require struct {
	base
	Expr Node
	Once bool
	Body Node
}

func NewRequire(line int, expr Node, once bool) *Require {
	return &Require{newBase(KindRequire, line), expr, once, nil}
}

// Eval is `eval($code);`.
type Eval struct {
	base
	Expr Node
}

func NewEval(line int, e Node) *Eval { return &Eval{newBase(KindEval, line), e} }

// Exit is `exit;` / `exit($code);` / `die($msg);`.
type Exit struct {
	base
	Expr Node
}

func NewExit(line int, e Node) *Exit { return &Exit{newBase(KindExit, line), e} }

// Isset is `isset($a, $b, ...)`.
type Isset struct {
	base
	Vars []Node
}

func NewIsset(line int, vars []Node) *Isset { return &Isset{newBase(KindIsset, line), vars} }

// Unset is `unset($a, $b, ...);`.
type Unset struct {
	base
	Vars []Node
}

func NewUnset(line int, vars []Node) *Unset { return &Unset{newBase(KindUnset, line), vars} }

// Empty is `empty($a)`.
type Empty struct {
	base
	Expr Node
}

func NewEmpty(line int, e Node) *Empty { return &Empty{newBase(KindEmpty, line), e} }
