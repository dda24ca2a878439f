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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleCanonicalOrder(t *testing.T) {
	red, err := NewColor("Red", 252, 68, 68)
	require.NoError(t, err)

	// insertion order must not matter
	s := NewStyle().
		Custom("rounded corners").
		SetColor(KeyFill, red).
		Set(KeyLineWidth, "0.2mm").
		SetFlag(KeyDashed).
		SetFlag(KeyCircle)

	assert.Equal(t,
		"circle, dashed, line width=0.2mm, fill=Red, rounded corners",
		s.String())
}

func TestStyleDeterministic(t *testing.T) {
	a := NewStyle().Set(KeyWidth, "1cm").SetFlag(KeyDotted)
	b := NewStyle().SetFlag(KeyDotted).Set(KeyWidth, "1cm")
	assert.Equal(t, a.String(), b.String())
}

func TestStyleNumbers(t *testing.T) {
	s := NewStyle().SetNumber(KeyScale, 1.5).SetNumber(KeyFillOpacity, 0.25)
	assert.Equal(t, "scale=1.5, fill opacity=0.25", s.String())
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle().Set(KeyWidth, "1cm").SetFlag(KeyDashed).Custom("one")
	over := NewStyle().Set(KeyWidth, "2cm").Custom("two")

	m := base.Merge(over)
	assert.Equal(t, "dashed, width=2cm, one, two", m.String())

	// merging must not touch the inputs
	assert.Equal(t, "dashed, width=1cm, one", base.String())
	assert.Equal(t, "width=2cm, two", over.String())
}

func TestStyleUnset(t *testing.T) {
	s := NewStyle().SetFlag(KeyDashed).Set(KeyWidth, "1cm")
	s.Unset(KeyDashed)
	assert.Equal(t, "width=1cm", s.String())
}

func TestStyleColors(t *testing.T) {
	red, err := NewColor("Red", 252, 68, 68)
	require.NoError(t, err)
	blue, err := NewColor("Blue", 4, 60, 140)
	require.NoError(t, err)

	s := NewStyle().SetColor(KeyDraw, red).SetColor(KeyFill, blue)
	colors := s.Colors()
	require.Len(t, colors, 2)
	assert.Equal(t, "Red", colors[0].Name())
	assert.Equal(t, "Blue", colors[1].Name())
	assert.Equal(t, "draw=Red, fill=Blue", s.String())
}

func TestStyleEmpty(t *testing.T) {
	assert.True(t, (*Style)(nil).Empty())
	assert.True(t, NewStyle().Empty())
	assert.False(t, NewStyle().SetFlag(KeyDraw).Empty())
	assert.False(t, NewStyle().Custom("x").Empty())

	s := NewStyle().SetFlag(KeyDraw)
	s.Unset(KeyDraw)
	assert.True(t, s.Empty())
}
