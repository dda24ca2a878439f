// github.com/marcelsimader/septex - a library for writing LaTeX and TikZ documents
// Copyright (C) 2026  Marcel Simader
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tikz

import "fmt"

// An Edge connects two graph nodes with a directed path.
type Edge struct {
	From  *Node
	To    *Node
	Arrow Arrow  // defaults to ArrowRight
	Style *Style // defaults to the graph's edge style
	Label *Label
}

// A Graph is a collection of nodes and directed edges drawn into a picture.
// Nodes and edges without a style of their own inherit the graph's default
// styles.
type Graph struct {
	nodes []*Node
	edges []Edge

	nodeStyle *Style
	edgeStyle *Style
}

// NewGraph returns an empty graph with the given default styles, both of
// which may be nil.
func NewGraph(nodeStyle, edgeStyle *Style) *Graph {
	return &Graph{nodeStyle: nodeStyle, edgeStyle: edgeStyle}
}

// AddNodes adds nodes to the graph.
func (g *Graph) AddNodes(nodes ...*Node) *Graph {
	g.nodes = append(g.nodes, nodes...)
	return g
}

// AddEdge adds a directed edge between two previously added nodes.
func (g *Graph) AddEdge(e Edge) error {
	if e.From == nil || e.To == nil {
		return fmt.Errorf("graph edge must connect two nodes")
	}
	if !g.contains(e.From) || !g.contains(e.To) {
		return fmt.Errorf("graph edge %s -> %s references a node not in the graph",
			e.From.Name(), e.To.Name())
	}
	g.edges = append(g.edges, e)
	return nil
}

func (g *Graph) contains(n *Node) bool {
	for _, have := range g.nodes {
		if have == n || have.Name() == n.Name() {
			return true
		}
	}
	return false
}

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the graph's edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// Draw defines all nodes and draws all edges into the picture.  Style-less
// nodes and edges pick up the graph's defaults.  The positioning library is
// registered for node placement.
func (g *Graph) Draw(p *Picture) error {
	p.Document().UseTikZLibrary("positioning")
	for _, n := range g.nodes {
		eff := n
		if n.Style().Empty() && !g.nodeStyle.Empty() {
			styled := *n
			styled.style = g.nodeStyle
			eff = &styled
		}
		if err := p.Define(eff); err != nil {
			return err
		}
	}
	for _, e := range g.edges {
		arrow := e.Arrow
		if arrow == "" {
			arrow = ArrowRight
		}
		style := e.Style
		if style.Empty() {
			style = g.edgeStyle
		}
		dp := NewDirectedPath(arrow, style, e.From, e.To)
		if e.Label != nil {
			dp = dp.WithLabel(*e.Label)
		}
		if err := p.Draw(dp); err != nil {
			return err
		}
	}
	return nil
}
