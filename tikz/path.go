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

import (
	"fmt"
	"strings"
)

// A Label is text attached to a path, e.g. above its midpoint.
type Label struct {
	text    string
	options string // node options, e.g. "midway, above"
}

// NewLabel returns a path label with the given node options.
func NewLabel(text, options string) Label {
	return Label{text: text, options: options}
}

// TikZ renders the label as an inline path node.
func (l Label) TikZ() string {
	if l.options == "" {
		return fmt.Sprintf(`node {%s}`, l.text)
	}
	return fmt.Sprintf(`node[%s] {%s}`, l.options, l.text)
}

func (l Label) Packages() []string  { return nil }
func (l Label) Libraries() []string { return nil }
func (l Label) DependsOn() []Named  { return nil }

// collect gathers the package, library, and definition requirements of a set
// of renderables.
func collect(items ...Renderable) (pkgs, libs []string, deps []Named) {
	for _, it := range items {
		pkgs = append(pkgs, it.Packages()...)
		libs = append(libs, it.Libraries()...)
		deps = append(deps, it.DependsOn()...)
		if n, ok := it.(Named); ok {
			deps = append(deps, n)
		}
	}
	return pkgs, libs, deps
}

// A Path draws straight line segments through a sequence of coordinates,
// which may be points, polar points, or node references.
type Path struct {
	coords []Renderable
	style  *Style
	cycle  bool
	label  *Label
}

// NewPath returns a path through the given coordinates.  style may be nil.
func NewPath(style *Style, coords ...Renderable) *Path {
	return &Path{coords: coords, style: style}
}

// Append adds further coordinates to the end of the path.
func (p *Path) Append(coords ...Renderable) *Path {
	p.coords = append(p.coords, coords...)
	return p
}

// Cycle closes the path back to its first coordinate.
func (p *Path) Cycle() *Path {
	p.cycle = true
	return p
}

// WithLabel attaches a label to the path.
func (p *Path) WithLabel(l Label) *Path {
	p.label = &l
	return p
}

func renderDraw(style *Style, parts []string) string {
	opts := ""
	if !style.Empty() {
		opts = "[" + style.String() + "]"
	}
	return fmt.Sprintf(`\draw%s %s`, opts, strings.Join(parts, " "))
}

// TikZ renders the \draw statement, joining the coordinates with "--".
func (p *Path) TikZ() string {
	coords := make([]string, 0, len(p.coords))
	for _, c := range p.coords {
		coords = append(coords, c.TikZ())
	}
	text := strings.Join(coords, " -- ")
	if p.cycle {
		text += " -- cycle"
	}
	if p.label != nil {
		text += " " + p.label.TikZ()
	}
	return renderDraw(p.style, []string{text})
}

func (p *Path) Packages() []string {
	pkgs, _, _ := collect(p.coords...)
	return pkgs
}

func (p *Path) Libraries() []string {
	_, libs, _ := collect(p.coords...)
	return libs
}

func (p *Path) DependsOn() []Named {
	_, _, deps := collect(p.coords...)
	return append(deps, namedColors(p.style)...)
}

func namedColors(s *Style) []Named {
	var out []Named
	for _, c := range s.Colors() {
		out = append(out, c)
	}
	return out
}

// A DirectedPath draws arrows between consecutive coordinates using the "to"
// operation.
type DirectedPath struct {
	coords []Renderable
	style  *Style
	arrow  Arrow
	label  *Label
}

// NewDirectedPath returns a directed path through the given coordinates,
// drawn with the given arrow tips.  style may be nil.
func NewDirectedPath(arrow Arrow, style *Style, coords ...Renderable) *DirectedPath {
	return &DirectedPath{coords: coords, style: style, arrow: arrow}
}

// Append adds further coordinates to the end of the path.
func (p *DirectedPath) Append(coords ...Renderable) *DirectedPath {
	p.coords = append(p.coords, coords...)
	return p
}

// WithLabel attaches a label to the path.
func (p *DirectedPath) WithLabel(l Label) *DirectedPath {
	p.label = &l
	return p
}

// TikZ renders the \draw statement, joining the coordinates with "to" and
// placing the arrow key first in the option list.
func (p *DirectedPath) TikZ() string {
	coords := make([]string, 0, len(p.coords))
	for _, c := range p.coords {
		coords = append(coords, c.TikZ())
	}
	text := strings.Join(coords, " to ")
	if p.label != nil {
		text += " " + p.label.TikZ()
	}
	opts := string(p.arrow)
	if !p.style.Empty() {
		opts += ", " + p.style.String()
	}
	return fmt.Sprintf(`\draw[%s] %s`, opts, text)
}

func (p *DirectedPath) Packages() []string {
	pkgs, _, _ := collect(p.coords...)
	return pkgs
}

// Libraries returns the arrows library plus whatever the coordinates need.
func (p *DirectedPath) Libraries() []string {
	_, libs, _ := collect(p.coords...)
	return append([]string{"arrows"}, libs...)
}

func (p *DirectedPath) DependsOn() []Named {
	_, _, deps := collect(p.coords...)
	return append(deps, namedColors(p.style)...)
}

// A Circle draws a circle of the given radius around a center coordinate.
type Circle struct {
	center Renderable
	radius float64
	unit   string
	style  *Style
}

// NewCircle returns a circle around center.  unit applies to the radius and
// may be empty.  style may be nil.
func NewCircle(center Renderable, radius float64, unit string, style *Style) *Circle {
	return &Circle{center: center, radius: radius, unit: unit, style: style}
}

// TikZ renders the \draw statement for the circle.
func (c *Circle) TikZ() string {
	return renderDraw(c.style,
		[]string{fmt.Sprintf("%s circle (%.3f%s)", c.center.TikZ(), c.radius, c.unit)})
}

func (c *Circle) Packages() []string {
	pkgs, _, _ := collect(c.center)
	return pkgs
}

func (c *Circle) Libraries() []string {
	_, libs, _ := collect(c.center)
	return libs
}

func (c *Circle) DependsOn() []Named {
	_, _, deps := collect(c.center)
	return append(deps, namedColors(c.style)...)
}
