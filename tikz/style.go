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
	"strconv"
	"strings"
)

// A StyleKey is one of the supported TikZ option keys.  Keys render in the
// fixed order they are declared in here, so a style always produces the same
// option string.
type StyleKey int

const (
	KeyWidth StyleKey = iota
	KeyHeight
	KeyXScale
	KeyYScale
	KeyScale
	KeyShift
	KeyBendLeft
	KeyBendRight
	KeyDraw
	KeyCircle
	KeyRectangle
	KeyDashed
	KeyDotted
	KeyLineWidth
	KeyColor
	KeyFill
	KeyAlign
	KeyDrawOpacity
	KeyFillOpacity

	numStyleKeys int = iota
)

var styleKeyNames = [numStyleKeys]string{
	"width", "height", "x scale", "y scale", "scale", "shift",
	"bend left", "bend right", "draw", "circle", "rectangle",
	"dashed", "dotted", "line width", "color", "fill", "align",
	"draw opacity", "fill opacity",
}

// String returns the TikZ spelling of the key.
func (k StyleKey) String() string {
	if k < 0 || int(k) >= numStyleKeys {
		return fmt.Sprintf("StyleKey(%d)", int(k))
	}
	return styleKeyNames[k]
}

type styleValue struct {
	flag  bool
	text  string
	color *Color
}

// A Style is an ordered collection of TikZ options.  Values are set per key;
// flag keys render as the bare key name and always come first.  Options the
// key enumeration does not cover go through the Custom side channel and
// render last, in insertion order.  The zero value is an empty style ready
// for use.
type Style struct {
	values [numStyleKeys]*styleValue
	custom []string
}

// NewStyle returns an empty style.
func NewStyle() *Style { return &Style{} }

// Set assigns a literal value, such as a TikZ dimension, to the key.
func (s *Style) Set(key StyleKey, value string) *Style {
	s.values[key] = &styleValue{text: value}
	return s
}

// SetNumber assigns a numeric value to the key.
func (s *Style) SetNumber(key StyleKey, v float64) *Style {
	return s.Set(key, strconv.FormatFloat(v, 'g', -1, 64))
}

// SetFlag sets the key as a bare flag, such as "dashed".
func (s *Style) SetFlag(key StyleKey) *Style {
	s.values[key] = &styleValue{flag: true}
	return s
}

// SetColor assigns a color to the key.  The color becomes part of the
// style's definition dependencies; see [Style.Colors].
func (s *Style) SetColor(key StyleKey, c Color) *Style {
	s.values[key] = &styleValue{text: c.TikZ(), color: &c}
	return s
}

// Unset removes the key from the style.
func (s *Style) Unset(key StyleKey) *Style {
	s.values[key] = nil
	return s
}

// Custom appends a raw option that is not covered by the key enumeration.
// Custom options render after all keyed options.
func (s *Style) Custom(option string) *Style {
	s.custom = append(s.custom, option)
	return s
}

// Merge returns a new style combining s and other.  Keys set in other win;
// custom options concatenate with other's last.
func (s *Style) Merge(other *Style) *Style {
	m := NewStyle()
	for k := 0; k < numStyleKeys; k++ {
		if other != nil && other.values[k] != nil {
			m.values[k] = other.values[k]
		} else if s != nil && s.values[k] != nil {
			m.values[k] = s.values[k]
		}
	}
	if s != nil {
		m.custom = append(m.custom, s.custom...)
	}
	if other != nil {
		m.custom = append(m.custom, other.custom...)
	}
	return m
}

// Colors returns the colors referenced by the style.
func (s *Style) Colors() []Color {
	if s == nil {
		return nil
	}
	var out []Color
	for _, v := range s.values {
		if v != nil && v.color != nil {
			out = append(out, *v.color)
		}
	}
	return out
}

// Empty reports whether the style renders no options at all.
func (s *Style) Empty() bool {
	if s == nil {
		return true
	}
	for _, v := range s.values {
		if v != nil {
			return false
		}
	}
	return len(s.custom) == 0
}

// String renders the option list: flags in key order, then key=value pairs
// in key order, then custom options.
func (s *Style) String() string {
	if s == nil {
		return ""
	}
	var parts []string
	for k := 0; k < numStyleKeys; k++ {
		if v := s.values[k]; v != nil && v.flag {
			parts = append(parts, StyleKey(k).String())
		}
	}
	for k := 0; k < numStyleKeys; k++ {
		if v := s.values[k]; v != nil && !v.flag {
			parts = append(parts, fmt.Sprintf("%s=%s", StyleKey(k), v.text))
		}
	}
	parts = append(parts, s.custom...)
	return strings.Join(parts, ", ")
}
