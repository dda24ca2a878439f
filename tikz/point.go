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
	"math"
)

// A UnitError reports an operation on two coordinates with different units.
type UnitError struct {
	A, B string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("mismatched coordinate units %q and %q", e.A, e.B)
}

// A Point is a two-dimensional coordinate with an optional unit suffix, such
// as "cm" or "pt".  A relative point renders with a leading "+" and is
// interpreted by TikZ relative to the previous coordinate.  Points are value
// types; the arithmetic methods return new points.
type Point struct {
	x, y     float64
	unit     string
	relative bool
}

// NewPoint returns the unit-less coordinate (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the horizontal component.
func (p Point) X() float64 { return p.x }

// Y returns the vertical component.
func (p Point) Y() float64 { return p.y }

// Unit returns the unit suffix, or "" for a unit-less point.
func (p Point) Unit() string { return p.unit }

// IsRelative reports whether the point is relative to the previous
// coordinate of its path.
func (p Point) IsRelative() bool { return p.relative }

// WithUnit returns the same coordinate with the given unit suffix.
func (p Point) WithUnit(unit string) Point {
	p.unit = unit
	return p
}

// Relative returns the same coordinate marked relative.
func (p Point) Relative() Point {
	p.relative = true
	return p
}

// mergeUnits returns the common unit of two points.  A unit-less point
// adopts the other point's unit.
func mergeUnits(a, b Point) (string, error) {
	switch {
	case a.unit == b.unit:
		return a.unit, nil
	case a.unit == "":
		return b.unit, nil
	case b.unit == "":
		return a.unit, nil
	}
	return "", &UnitError{A: a.unit, B: b.unit}
}

// Add returns the component-wise sum of the two points.
func (p Point) Add(o Point) (Point, error) {
	unit, err := mergeUnits(p, o)
	if err != nil {
		return Point{}, err
	}
	return Point{x: p.x + o.x, y: p.y + o.y, unit: unit, relative: p.relative}, nil
}

// Sub returns the component-wise difference of the two points.
func (p Point) Sub(o Point) (Point, error) {
	unit, err := mergeUnits(p, o)
	if err != nil {
		return Point{}, err
	}
	return Point{x: p.x - o.x, y: p.y - o.y, unit: unit, relative: p.relative}, nil
}

// Scale returns the point with both components multiplied by f.
func (p Point) Scale(f float64) Point {
	p.x *= f
	p.y *= f
	return p
}

// Div returns the point with both components divided by f.
func (p Point) Div(f float64) (Point, error) {
	if f == 0 {
		return Point{}, fmt.Errorf("dividing point %s by zero", p.TikZ())
	}
	return p.Scale(1 / f), nil
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point { return p.Scale(-1) }

// Abs returns the point with both components made non-negative.
func (p Point) Abs() Point {
	p.x = math.Abs(p.x)
	p.y = math.Abs(p.y)
	return p
}

// Dot returns the dot product of the two points.
func (p Point) Dot(o Point) (float64, error) {
	if _, err := mergeUnits(p, o); err != nil {
		return 0, err
	}
	return p.x*o.x + p.y*o.y, nil
}

// Length returns the Euclidean distance of the point from the origin.
func (p Point) Length() float64 { return math.Hypot(p.x, p.y) }

// TikZ renders the coordinate, e.g. "(1.000cm, 2.500cm)", with a leading
// "+" when the point is relative.
func (p Point) TikZ() string {
	prefix := ""
	if p.relative {
		prefix = "+"
	}
	return fmt.Sprintf("%s(%.3f%s, %.3f%s)", prefix, p.x, p.unit, p.y, p.unit)
}

func (p Point) Packages() []string  { return nil }
func (p Point) Libraries() []string { return nil }
func (p Point) DependsOn() []Named  { return nil }

// A PolarPoint is a coordinate given as an angle in degrees and a radius
// with an optional unit.
type PolarPoint struct {
	angle  float64
	radius float64
	unit   string
}

// NewPolarPoint returns the coordinate at angle degrees and the given
// radius.
func NewPolarPoint(angle, radius float64) PolarPoint {
	return PolarPoint{angle: angle, radius: radius}
}

// WithUnit returns the same coordinate with the given radius unit.
func (p PolarPoint) WithUnit(unit string) PolarPoint {
	p.unit = unit
	return p
}

// Angle returns the angle in degrees.
func (p PolarPoint) Angle() float64 { return p.angle }

// Radius returns the radius.
func (p PolarPoint) Radius() float64 { return p.radius }

// ToPoint converts the polar coordinate to a Cartesian [Point] with the
// same unit.
func (p PolarPoint) ToPoint() Point {
	rad := p.angle * math.Pi / 180
	return Point{
		x:    p.radius * math.Cos(rad),
		y:    p.radius * math.Sin(rad),
		unit: p.unit,
	}
}

// TikZ renders the coordinate, e.g. "(45.000:1.000cm)".
func (p PolarPoint) TikZ() string {
	return fmt.Sprintf("(%.3f:%.3f%s)", p.angle, p.radius, p.unit)
}

func (p PolarPoint) Packages() []string  { return nil }
func (p PolarPoint) Libraries() []string { return nil }
func (p PolarPoint) DependsOn() []Named  { return nil }
