package ast

// CircularImport replaces an Include/Require's Body when the dependency
// resolver (C5) detects that the resolved target is already on the
// current namespace stack (spec.md §4.5 "Cycle detection").
type CircularImport struct {
	base
	TargetFileName string
	LoopedTree     *SyntaxTree
}

func NewCircularImport(line int, targetFileName string, looped *SyntaxTree) *CircularImport {
	return &CircularImport{newBase(KindCircularImport, line), targetFileName, looped}
}

// UnresolvedInclude replaces an Include/Require's Body when the target
// path could not be resolved to a tree: the file does not exist
// (IncludeUnresolved) or the include expression could not be folded to a
// path (ExpressionUnfoldable). Reason distinguishes the two for callers
// that want to report diagnostics without re-walking the resolver's
// bookkeeping tables.
type UnresolvedInclude struct {
	base
	Path   string
	Reason string
}

func NewUnresolvedInclude(line int, path, reason string) *UnresolvedInclude {
	return &UnresolvedInclude{newBase(KindUnresolvedInclude, line), path, reason}
}

// Unknown is the fallback for a grammar shape the parser adapter could
// not promote to a first-class variant. Raw preserves the original
// source text of the node so downstream tooling at least has something
// to show a human, per spec.md §9's open question on incomplete coverage
// ("rewrite should... faithfully reproduce 'unknown' fallback nodes").
type Unknown struct {
	base
	NodeType string
	Raw      string
	Children []Node
}

func NewUnknown(line int, nodeType, raw string, children []Node) *Unknown {
	return &Unknown{newBase(KindUnknown, line), nodeType, raw, children}
}
