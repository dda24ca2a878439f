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

// A Node is a named TikZ node.  It is defined once via [Picture.Define] and
// referenced by name afterwards, e.g. as a path coordinate.
type Node struct {
	name   string
	label  string
	at     Point
	anchor *Node // placement relative to another node, nil for absolute
	offset Point
	style  *Style
}

// NewNode returns a node placed at the absolute coordinate at.  The
// coordinate must not be relative; relative placement between nodes goes
// through [NewNodeNextTo].
func NewNode(name, label string, at Point, style *Style) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("node name must not be empty")
	}
	if at.IsRelative() {
		return nil, fmt.Errorf("node %q: placement coordinate must not be relative", name)
	}
	return &Node{name: name, label: label, at: at, style: style}, nil
}

// NewNodeNextTo returns a node placed at anchor's position shifted by
// offset.
func NewNodeNextTo(name, label string, anchor *Node, offset Point, style *Style) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("node name must not be empty")
	}
	if anchor == nil {
		return nil, fmt.Errorf("node %q: anchor node is nil", name)
	}
	if offset.IsRelative() {
		return nil, fmt.Errorf("node %q: offset must not be relative", name)
	}
	if _, err := mergeUnits(anchor.at, offset); err != nil {
		return nil, fmt.Errorf("node %q: %w", name, err)
	}
	return &Node{name: name, label: label, anchor: anchor, offset: offset, style: style}, nil
}

// Name returns the node name.
func (n *Node) Name() string { return n.name }

// Label returns the text displayed inside the node.
func (n *Node) Label() string { return n.label }

// Style returns the node's style, which may be nil.
func (n *Node) Style() *Style { return n.style }

// TikZ renders a reference to the node, for use as a path coordinate.
func (n *Node) TikZ() string { return "(" + n.name + ")" }

func (n *Node) coordinate() string {
	if n.anchor != nil {
		return fmt.Sprintf(`($%s + %s$)`, n.anchor.TikZ(), n.offset.TikZ())
	}
	return n.at.TikZ()
}

// Definition returns the \node statement defining the node.
func (n *Node) Definition() string {
	style := ""
	if !n.style.Empty() {
		style = "[" + n.style.String() + "]"
	}
	return fmt.Sprintf(`\node%s (%s) at %s {%s};`, style, n.name, n.coordinate(), n.label)
}

func (n *Node) Packages() []string { return nil }

// Libraries returns "calc" for nodes placed relative to an anchor, since the
// coordinate calculation syntax needs it.
func (n *Node) Libraries() []string {
	if n.anchor != nil {
		return []string{"calc"}
	}
	return nil
}

// DependsOn returns the anchor node and the style's colors.
func (n *Node) DependsOn() []Named {
	var deps []Named
	if n.anchor != nil {
		deps = append(deps, n.anchor)
	}
	for _, c := range n.style.Colors() {
		deps = append(deps, c)
	}
	return deps
}
