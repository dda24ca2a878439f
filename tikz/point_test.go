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

func TestPointRendering(t *testing.T) {
	assert.Equal(t, "(1.000, 2.000)", NewPoint(1, 2).TikZ())
	assert.Equal(t, "(1.000cm, 2.500cm)", NewPoint(1, 2.5).WithUnit("cm").TikZ())
	assert.Equal(t, "+(0.500, -0.500)", NewPoint(0.5, -0.5).Relative().TikZ())
	assert.Equal(t, "(-1.250pt, 0.000pt)", NewPoint(-1.25, 0).WithUnit("pt").TikZ())
}

func TestPointArithmetic(t *testing.T) {
	a := NewPoint(1, 2).WithUnit("cm")
	b := NewPoint(3, -1).WithUnit("cm")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 4.0, sum.X())
	assert.Equal(t, 1.0, sum.Y())
	assert.Equal(t, "cm", sum.Unit())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, -2.0, diff.X())
	assert.Equal(t, 3.0, diff.Y())

	assert.Equal(t, NewPoint(2, 4).WithUnit("cm"), a.Scale(2))
	assert.Equal(t, NewPoint(-1, -2).WithUnit("cm"), a.Neg())
	assert.Equal(t, NewPoint(2, 1), NewPoint(-2, 1).Abs())

	dot, err := a.Dot(b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dot)

	assert.Equal(t, 5.0, NewPoint(3, 4).Length())
}

func TestPointDiv(t *testing.T) {
	half, err := NewPoint(2, 4).Div(2)
	require.NoError(t, err)
	assert.Equal(t, NewPoint(1, 2), half)

	_, err = NewPoint(1, 1).Div(0)
	assert.Error(t, err)
}

func TestPointUnitMismatch(t *testing.T) {
	a := NewPoint(1, 2).WithUnit("cm")
	b := NewPoint(3, 4).WithUnit("pt")

	_, err := a.Add(b)
	var unitErr *UnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "cm", unitErr.A)
	assert.Equal(t, "pt", unitErr.B)

	_, err = a.Dot(b)
	assert.ErrorAs(t, err, &unitErr)
}

func TestPointUnitAdoption(t *testing.T) {
	a := NewPoint(1, 2).WithUnit("cm")
	b := NewPoint(3, 4)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "cm", sum.Unit())

	sum, err = b.Add(a)
	require.NoError(t, err)
	assert.Equal(t, "cm", sum.Unit())
}

func TestPolarPoint(t *testing.T) {
	p := NewPolarPoint(45, 2).WithUnit("cm")
	assert.Equal(t, "(45.000:2.000cm)", p.TikZ())

	cart := p.ToPoint()
	assert.InDelta(t, 1.414, cart.X(), 0.001)
	assert.InDelta(t, 1.414, cart.Y(), 0.001)
	assert.Equal(t, "cm", cart.Unit())
}
