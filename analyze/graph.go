package analyze

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/traversal"
)

// gnode is a gonum graph.Node wrapping one ast.Node. It also satisfies
// gonum's dot.Node and encoding.Attributer interfaces so dot.Marshal can
// render a human-readable, vendor-neutral graph description (spec.md
// §6 "Graph output").
type gnode struct {
	id          int64
	label       string
	highlighted bool
}

func (n *gnode) ID() int64      { return n.id }
func (n *gnode) DOTID() string  { return fmt.Sprintf("n%d", n.id) }
func (n *gnode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: n.label}}
	if n.highlighted {
		attrs = append(attrs, encoding.Attribute{Key: "style", Value: "filled"})
	}
	return attrs
}

// Graph is the vendor-neutral graph GraphBuilder produces: a gonum
// directed graph of vertices keyed by AST node identity, each labeled
// with its variant name, with an edge per parent→child link.
type Graph struct {
	g     *simple.DirectedGraph
	nodes map[ast.Node]*gnode
}

// DOT renders the graph in Graphviz's DOT format, satisfying spec.md
// §6's "vendor-neutral graph description format" (label per vertex,
// directedness; rendering to an image is explicitly out of scope).
func (gr *Graph) DOT() ([]byte, error) {
	return dot.Marshal(gr.g, "php", "", "  ")
}

// Underlying exposes the gonum graph.Graph for callers that want to run
// gonum's own algorithms over it rather than just rendering DOT.
func (gr *Graph) Underlying() graph.Graph { return gr.g }

// GraphBuilder builds a Graph from an AST root (spec.md §4.6).
type GraphBuilder struct{}

// Build walks root via traversal.Children and produces a Graph. A
// shared subtree (the same ast.Node reachable through two different
// parents, e.g. an Include's Body after resolution) contributes exactly
// one vertex, consistent with spec.md §9's "never duplicate" guidance
// on shared sub-ASTs.
func (GraphBuilder) Build(root ast.Node) *Graph {
	g := simple.NewDirectedGraph()
	nodes := make(map[ast.Node]*gnode)
	var nextID int64

	var walk func(n ast.Node) *gnode
	walk = func(n ast.Node) *gnode {
		if n == nil {
			return nil
		}
		if existing, ok := nodes[n]; ok {
			return existing
		}
		gn := &gnode{id: nextID, label: string(n.Kind())}
		nextID++
		nodes[n] = gn
		g.AddNode(gn)

		for _, field := range traversal.Children(n) {
			for _, child := range field.Values {
				cn := walk(child)
				if cn != nil {
					g.SetEdge(g.NewEdge(gn, cn))
				}
			}
		}
		return gn
	}
	walk(root)

	return &Graph{g: g, nodes: nodes}
}
