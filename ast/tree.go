package ast

// SyntaxTree is the root of a single file's AST. It is itself a Node so
// it participates in traversal (spec.md "Root"): an Include/Require's
// Body points directly at the included file's SyntaxTree.
//
// NearestNSParent is a scratch slot for the nearest-namespace-parent
// annotation (spec.md §4.3, invariant 4 in spec.md "Invariants"). It is
// not part of the persisted tree and nothing in this module reads or
// writes it: the BFS walker (traversal.Walker) keeps that annotation in
// its own side table keyed by node identity, and the dependency
// resolver and DFS walker never need it.
type SyntaxTree struct {
	base
	Nodes           []Node
	FilePath        string
	FileLocation    string
	FileName        string
	NearestNSParent Node
}

func NewSyntaxTree(filePath, fileLocation, fileName string, nodes []Node) *SyntaxTree {
	return &SyntaxTree{
		base:         newBase(KindSyntaxTree, 0),
		Nodes:        nodes,
		FilePath:     filePath,
		FileLocation: fileLocation,
		FileName:     fileName,
	}
}
