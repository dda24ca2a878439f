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
	"strings"
)

// Center returns the standard center environment.
func Center(parent Container) *Environment {
	return NewEnvironment(parent, "center", "", nil)
}

// A Figure is the standard figure environment with an optional caption and
// label.  Both are written just before the environment closes.
type Figure struct {
	*Environment

	caption string
	label   string
}

// NewFigure creates a figure nested in parent.  options defaults to "h!",
// forcing placement at the point of definition.
func NewFigure(parent Container, caption, label, options string) *Figure {
	if options == "" {
		options = "h!"
	}
	return &Figure{
		Environment: NewEnvironment(parent, "figure", options, nil),
		caption:     caption,
		label:       label,
	}
}

// Caption returns the figure caption.
func (f *Figure) Caption() string { return f.caption }

// Label returns the figure's reference label, adding the "fig:" prefix when
// it is missing.
func (f *Figure) Label() string {
	if f.label != "" && !strings.HasPrefix(f.label, "fig:") {
		return "fig:" + f.label
	}
	return f.label
}

// WriteFigureTable writes a list of the document's figures into the body at
// the current position.
func (f *Figure) WriteFigureTable() error {
	body, err := f.Document().Body()
	if err != nil {
		return err
	}
	body.WriteString(`\listoffigures`)
	return nil
}

// Close writes the caption and label, then flushes the figure into its
// parent.
func (f *Figure) Close() error {
	if f.IsOpen() {
		if f.caption != "" {
			f.content.WriteString(fmt.Sprintf(`\caption{%s}`, f.caption))
		}
		if f.label != "" {
			f.content.WriteString(fmt.Sprintf(`\label{%s}`, f.Label()))
		}
	}
	return f.Environment.Close()
}

// Run opens the figure, calls fn, and closes the figure afterwards, also
// when fn returns an error or panics.
func (f *Figure) Run(fn func(*Figure) error) (err error) {
	if err = f.Open(); err != nil {
		return err
	}
	defer func() {
		closeErr := f.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(f)
}

// A MathEnvironment is an amsmath display environment such as gather or
// align.  Values written through WriteMath are formatted for math mode, and
// Newline emits a LaTeX line break instead of a new source line.
type MathEnvironment struct {
	*Environment
}

// NewMathEnvironment creates the named amsmath environment nested in parent.
// With star set, the unnumbered starred variant is used.
func NewMathEnvironment(parent Container, name string, star bool) *MathEnvironment {
	if star {
		name += "*"
	}
	env := NewEnvironment(parent, name, "", &EnvOptions{RequiredPackages: []string{"amsmath"}})
	return &MathEnvironment{Environment: env}
}

// WriteMath formats v with [MathString] and writes the result.
func (m *MathEnvironment) WriteMath(v any) error {
	return m.Write(MathString(v))
}

// Newline writes the \\ line-break command.
func (m *MathEnvironment) Newline() error {
	return m.Write(`\\`)
}

// Run opens the environment, calls fn, and closes it afterwards, also when
// fn returns an error or panics.
func (m *MathEnvironment) Run(fn func(*MathEnvironment) error) (err error) {
	if err = m.Open(); err != nil {
		return err
	}
	defer func() {
		closeErr := m.Environment.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(m)
}
