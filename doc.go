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

// Package septex assembles LaTeX documents as an object graph and renders
// the graph to well-formed .tex source text.
//
// A [Document] is a single-use resource: it is opened, written to, and
// closed, at which point the rendered text is saved to disk.  Content is
// accumulated in [Block] values, ordered collections of indented lines with
// optional soft line wrapping.  [Environment] values nest inside a document
// (or inside each other) and flush their content into the parent when they
// close.  Named preamble statements such as \usepackage lines are collected
// in a [Registry], which deduplicates them and keeps every definition ahead
// of its first use.
//
// The tikz subpackage provides drawing primitives that plug into these
// types.  A closed document can be compiled to PDF with [Document.ToPDF],
// which shells out to an external TeX engine.
package septex
