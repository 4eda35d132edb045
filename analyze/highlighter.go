package analyze

// NameHighlighter decorates graph vertices belonging to the nodes in
// found with a highlight attribute (spec.md §4.6). It is typically fed
// the Found slice of a NameFinder run over the same AST that produced
// graph.
func NameHighlighter(found []FindResult, graph *Graph) {
	for _, r := range found {
		if gn, ok := graph.nodes[r.Node]; ok {
			gn.highlighted = true
		}
	}
}
