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

	"github.com/lucasb-eyer/go-colorful"
)

// A Color is a named RGB color with an optional alpha.  It is defined in the
// document with \definecolor and referenced by name; a translucent color
// renders as "name!opacity".  Colors are value types: the arithmetic methods
// return new, derived colors and never modify the receiver.
type Color struct {
	name    string
	r, g, b uint8
	alpha   uint8 // 255 is fully opaque
}

// NewColor returns a named color from channels in the range 0 to 255.
func NewColor(name string, r, g, b int) (Color, error) {
	if name == "" {
		return Color{}, fmt.Errorf("color name must not be empty")
	}
	for _, ch := range [3]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("color channel %d out of range [0, 255]", ch)
		}
	}
	return Color{name: name, r: uint8(r), g: uint8(g), b: uint8(b), alpha: 255}, nil
}

// NewColorF returns a named color from channels in the range 0.0 to 1.0.
func NewColorF(name string, r, g, b float64) (Color, error) {
	for _, ch := range [3]float64{r, g, b} {
		if ch < 0 || ch > 1 {
			return Color{}, fmt.Errorf("color channel %g out of range [0, 1]", ch)
		}
	}
	return NewColor(name,
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)))
}

func mustColor(name string, r, g, b int) Color {
	c, err := NewColor(name, r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the color's definition name.  Alpha is not part of the name.
func (c Color) Name() string { return c.name }

// Channels returns the red, green, and blue channels.
func (c Color) Channels() (r, g, b uint8) { return c.r, c.g, c.b }

// Alpha returns the alpha channel; 255 is fully opaque.
func (c Color) Alpha() uint8 { return c.alpha }

// WithAlpha returns the same color with the given alpha channel.
func (c Color) WithAlpha(alpha uint8) Color {
	c.alpha = alpha
	return c
}

// WithoutAlpha returns the same color, fully opaque.
func (c Color) WithoutAlpha() Color { return c.WithAlpha(255) }

// Rename returns the same color under a different definition name.
func (c Color) Rename(name string) Color {
	c.name = name
	return c
}

// TikZ renders a reference to the color: its name, with "!opacity" appended
// when the color is translucent.
func (c Color) TikZ() string {
	if c.alpha == 255 {
		return c.name
	}
	return fmt.Sprintf("%s!%d", c.name, int(math.Round(float64(c.alpha)/255*100)))
}

// Definition returns the \definecolor statement for the color.
func (c Color) Definition() string {
	return fmt.Sprintf(`\definecolor{%s}{RGB}{%d, %d, %d}`, c.name, c.r, c.g, c.b)
}

func (c Color) Packages() []string  { return nil }
func (c Color) Libraries() []string { return nil }
func (c Color) DependsOn() []Named  { return nil }

// derivedName builds the name of a color produced by arithmetic, from its
// channels.  Equal channels collapse to one definition.
func derivedName(r, g, b uint8) string {
	return fmt.Sprintf("septexcolor%02X%02X%02X", r, g, b)
}

func clampChannel(v float64) uint8 {
	return uint8(math.Round(math.Min(255, math.Max(0, v))))
}

// Add returns the channel-wise, clamped sum of the two colors under a
// derived name.  The receiver's alpha is kept.
func (c Color) Add(o Color) Color {
	r := clampChannel(float64(c.r) + float64(o.r))
	g := clampChannel(float64(c.g) + float64(o.g))
	b := clampChannel(float64(c.b) + float64(o.b))
	return Color{name: derivedName(r, g, b), r: r, g: g, b: b, alpha: c.alpha}
}

// Sub returns the channel-wise, clamped difference of the two colors under a
// derived name.  The receiver's alpha is kept.
func (c Color) Sub(o Color) Color {
	r := clampChannel(float64(c.r) - float64(o.r))
	g := clampChannel(float64(c.g) - float64(o.g))
	b := clampChannel(float64(c.b) - float64(o.b))
	return Color{name: derivedName(r, g, b), r: r, g: g, b: b, alpha: c.alpha}
}

// Scale returns the color with every channel multiplied by f, clamped, under
// a derived name.  The receiver's alpha is kept.
func (c Color) Scale(f float64) Color {
	r := clampChannel(float64(c.r) * f)
	g := clampChannel(float64(c.g) * f)
	b := clampChannel(float64(c.b) * f)
	return Color{name: derivedName(r, g, b), r: r, g: g, b: b, alpha: c.alpha}
}

// Blend interpolates between c and o in RGB space; t is clamped to [0, 1],
// where 0 yields c and 1 yields o.  The result carries a derived name and
// the receiver's alpha.
func (c Color) Blend(o Color, t float64) Color {
	t = math.Min(1, math.Max(0, t))
	a := colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
	z := colorful.Color{R: float64(o.r) / 255, G: float64(o.g) / 255, B: float64(o.b) / 255}
	m := a.BlendRgb(z, t).Clamped()
	r := clampChannel(m.R * 255)
	g := clampChannel(m.G * 255)
	b := clampChannel(m.B * 255)
	return Color{name: derivedName(r, g, b), r: r, g: g, b: b, alpha: c.alpha}
}

// DefaultPalette returns a fresh copy of the built-in palette, from light to
// dark followed by the accent colors.
func DefaultPalette() []Color {
	return []Color{
		mustColor("White", 255, 255, 255),
		mustColor("AlmostWhite", 245, 245, 245),
		mustColor("LightGray", 180, 180, 180),
		mustColor("DarkGray", 45, 45, 45),
		mustColor("AlmostBlack", 18, 18, 18),
		mustColor("Black", 0, 0, 0),
		mustColor("Red", 252, 68, 68),
		mustColor("Orange", 255, 165, 0),
		mustColor("Yellow", 251, 219, 4),
		mustColor("Green", 139, 195, 74),
		mustColor("LightBlue", 3, 169, 244),
		mustColor("DarkBlue", 4, 60, 140),
		mustColor("Purple", 103, 58, 183),
		mustColor("Magenta", 156, 39, 176),
		mustColor("Pink", 236, 76, 140),
		mustColor("Rose", 252, 140, 132),
	}
}
