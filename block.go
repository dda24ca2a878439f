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

package septex

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab width assumed when a block renders itself.
const DefaultTabWidth = 4

// A Block is an ordered, mutable sequence of indented text lines.  Writes
// append lines at the block's base indent; whole blocks can be appended,
// which re-indents their lines relative to the receiver.  A block never
// stores a line separator inside a single line.
//
// When a wrap column is configured, lines that render wider than the column
// are split at whitespace boundaries.  Wrapping is incremental and
// idempotent: each line is examined at most once.
type Block struct {
	lines      []blockLine
	indent     int
	wrapColumn int
	wrapped    int // lines[:wrapped] have been through a Wrap pass
}

type blockLine struct {
	depth int
	text  string
}

// NewBlock returns an empty block whose lines are indented by indent tab
// characters.
func NewBlock(indent int) *Block {
	return &Block{indent: indent}
}

// NewWrappedBlock returns an empty block like [NewBlock] whose lines are
// soft-wrapped at wrapColumn rendered characters.  A wrapColumn of zero or
// less disables wrapping.
func NewWrappedBlock(indent, wrapColumn int) *Block {
	return &Block{indent: indent, wrapColumn: wrapColumn}
}

// Indent returns the base indentation of the block.
func (b *Block) Indent() int { return b.indent }

// WrapColumn returns the configured wrap column, or zero if the block does
// not wrap.
func (b *Block) WrapColumn() int { return b.wrapColumn }

// Len returns the number of lines stored in the block.
func (b *Block) Len() int { return len(b.lines) }

// WriteString appends s to the block.  Embedded line separators split s into
// multiple lines, each at the block's base indent.  Writing the empty string
// appends one empty line.
func (b *Block) WriteString(s string) {
	for _, part := range strings.Split(s, "\n") {
		b.lines = append(b.lines, blockLine{depth: b.indent, text: part})
	}
}

// Newline appends an empty line.
func (b *Block) Newline() { b.WriteString("") }

// WriteBlock appends a copy of every line of other, adding the receiver's
// base indent to each line's depth.  other is not modified.
func (b *Block) WriteBlock(other *Block) {
	for _, ln := range other.lines {
		b.lines = append(b.lines, blockLine{depth: ln.depth + b.indent, text: ln.text})
	}
}

// Lines returns the text of up to n lines starting at offset.  Fewer lines
// are returned when the range extends past the end of the block.
func (b *Block) Lines(offset, n int) ([]string, error) {
	if offset < 0 || n < 0 {
		return nil, fmt.Errorf("line range (offset %d, count %d) out of range: values must not be negative", offset, n)
	}
	if offset > len(b.lines) {
		return nil, fmt.Errorf("line offset %d out of range: block has %d lines", offset, len(b.lines))
	}
	end := min(offset+n, len(b.lines))
	out := make([]string, 0, end-offset)
	for _, ln := range b.lines[offset:end] {
		out = append(out, ln.text)
	}
	return out, nil
}

// Wrap splits lines that render wider than the block's wrap column.  The
// rendered width of a line is its text width plus depth*tabWidth.  A line is
// split at the last whitespace boundary at or before the column; if the line
// contains no such boundary it is left alone.  When a split point lies after
// a comment start, the continuation line keeps a "% " marker so it stays
// commented.  With hanging enabled, a continuation is indented one extra
// level unless the previous line was itself a continuation.
//
// Only lines appended since the last call are examined, so calling Wrap
// twice without intervening writes is a no-op.
func (b *Block) Wrap(tabWidth int, hanging bool) {
	if b.wrapColumn <= 0 {
		return
	}
	continuation := false
	i := b.wrapped
	for i < len(b.lines) {
		ln := b.lines[i]
		limit := b.wrapColumn - ln.depth*tabWidth
		pos, ok := -1, false
		if runewidth.StringWidth(ln.text) >= limit {
			pos, ok = lastBreak(ln.text, limit)
		}
		if ok {
			left := ln.text[:pos+1]
			right := strings.TrimLeft(ln.text[pos+1:], " \t")
			if strings.ContainsRune(left, '%') {
				right = "% " + right
			}
			depth := ln.depth
			if hanging && !continuation {
				depth++
			}
			b.lines[i] = blockLine{depth: ln.depth, text: left}
			b.lines = slices.Insert(b.lines, i+1, blockLine{depth: depth, text: right})
			continuation = true
		} else {
			continuation = false
		}
		i++
	}
	b.wrapped = i
}

// lastBreak returns the byte index of the last space or tab in s whose
// rendered end position does not exceed limit, and whether such a boundary
// with text following it exists.
func lastBreak(s string, limit int) (int, bool) {
	pos, found := -1, false
	w := 0
	for i, r := range s {
		w += runewidth.RuneWidth(r)
		if (r == ' ' || r == '\t') && w <= limit {
			if strings.TrimLeft(s[i+1:], " \t") != "" {
				pos, found = i, true
			}
		}
	}
	return pos, found
}

// String renders the block: each line is prefixed by depth tab characters
// and lines are joined with "\n".  If a wrap column is configured, a Wrap
// pass with [DefaultTabWidth] and hanging indentation runs first.
func (b *Block) String() string {
	b.Wrap(DefaultTabWidth, true)
	var sb strings.Builder
	for i, ln := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for t := 0; t < ln.depth; t++ {
			sb.WriteByte('\t')
		}
		sb.WriteString(ln.text)
	}
	return sb.String()
}
