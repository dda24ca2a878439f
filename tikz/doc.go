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

// Package tikz provides a typed catalog of TikZ drawing objects: colors,
// styles, coordinates, nodes, paths, and graphs, rendered into a [Picture]
// environment.
//
// Objects implement [Renderable]; objects that carry a one-time definition,
// such as colors and nodes, additionally implement [Named].  A picture
// tracks which names have been defined and emits every definition exactly
// once, dependencies first, ahead of the drawing content.
package tikz
