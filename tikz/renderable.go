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

// A Renderable is anything that can appear inside a tikzpicture.
type Renderable interface {
	// TikZ returns the object's source text, without a trailing semicolon.
	TikZ() string
	// Packages lists the LaTeX packages the object needs.
	Packages() []string
	// Libraries lists the TikZ libraries the object needs.
	Libraries() []string
	// DependsOn lists named objects that must be defined before this one
	// can be rendered.
	DependsOn() []Named
}

// A Named renderable carries a one-time definition that must be emitted
// ahead of its first use, and is referenced by name afterwards.  Two named
// objects with the same name are considered the same object.
type Named interface {
	Renderable
	// Name identifies the object.
	Name() string
	// Definition returns the statement defining the object.
	Definition() string
}
