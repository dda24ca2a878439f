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

// A Container is anything an environment can be nested in: a [Document] or
// another [Environment].
type Container interface {
	// Document returns the root document of the container chain.
	Document() *Document
	// IsOpen reports whether the container is currently open.
	IsOpen() bool

	contentBlock() *Block
	describe() string
}

// EnvOptions configure a new environment.
type EnvOptions struct {
	// RequiredPackages are registered with the root document at
	// construction time.
	RequiredPackages []string
	// Indent is the indentation of the environment's content relative to
	// the parent.  Zero selects the default of one level.
	Indent int
}

// An Environment is a \begin{name}..\end{name} section nested inside a
// parent container.  Content written between Open and Close accumulates in
// the environment's own block and is flushed into the parent, indented, when
// the environment closes.  Environments are single-use resources.
type Environment struct {
	Resource

	parent  Container
	name    string
	options string
	leading *Block
	content *Block
}

// NewEnvironment creates the named environment nested in parent.  options is
// placed after the \begin command and is bracketed automatically unless it
// is empty or already bracketed.  opt may be nil.
func NewEnvironment(parent Container, name, options string, opt *EnvOptions) *Environment {
	indent := 1
	if opt != nil && opt.Indent > 0 {
		indent = opt.Indent
	}
	if options != "" && !(strings.HasPrefix(options, "[") && strings.HasSuffix(options, "]")) {
		options = "[" + options + "]"
	}
	env := &Environment{
		Resource: NewResource(fmt.Sprintf("environment %q", name), false),
		parent:   parent,
		name:     name,
		options:  options,
		leading:  NewBlock(indent),
		content:  NewBlock(indent),
	}
	if opt != nil && len(opt.RequiredPackages) > 0 {
		env.Document().UsePackage(opt.RequiredPackages...)
	}
	return env
}

// Document returns the root document of the environment's container chain.
func (e *Environment) Document() *Document { return e.parent.Document() }

// Parent returns the container the environment is nested in.
func (e *Environment) Parent() Container { return e.parent }

// Name returns the environment name used in the begin and end markers.
func (e *Environment) Name() string { return e.name }

// Options returns the bracketed options placed after the \begin command.
func (e *Environment) Options() string { return e.options }

// BeginText returns the line opening the environment in the TeX source.
func (e *Environment) BeginText() string {
	return fmt.Sprintf(`\begin{%s}%s`, e.name, e.options)
}

// EndText returns the line closing the environment in the TeX source.
func (e *Environment) EndText() string {
	return fmt.Sprintf(`\end{%s}`, e.name)
}

// Open opens the environment and immediately writes its begin marker into
// the parent.  The parent must itself be open.
func (e *Environment) Open() error {
	if !e.parent.IsOpen() {
		return &StateError{Op: "Open", Want: "be open", Desc: e.parent.describe()}
	}
	if err := e.Resource.Open(); err != nil {
		return err
	}
	e.parent.contentBlock().WriteString(e.BeginText())
	return nil
}

// Write appends s to the environment's content.  The environment must be
// open.
func (e *Environment) Write(s string) error {
	if err := e.RequireOpen("Write"); err != nil {
		return err
	}
	e.content.WriteString(s)
	return nil
}

// Newline appends an empty line to the environment's content.
func (e *Environment) Newline() error {
	if err := e.RequireOpen("Newline"); err != nil {
		return err
	}
	e.content.Newline()
	return nil
}

// Definitions returns the block emitted at the top of the environment, ahead
// of any content written through Write.  Named definitions are hoisted here
// so that they precede their first use.
func (e *Environment) Definitions() *Block { return e.leading }

// Close flushes the environment into its parent: the definitions block, the
// accumulated content, and the end marker followed by a blank line.  The
// parent must still be open.  The environment transitions to closed on every
// path.
func (e *Environment) Close() error {
	defer e.Resource.Close()
	if err := e.RequireOpen("Close"); err != nil {
		return err
	}
	if !e.parent.IsOpen() {
		return &StateError{Op: "Close", Want: "be open", Desc: e.parent.describe()}
	}
	p := e.parent.contentBlock()
	if e.leading.Len() > 0 {
		p.WriteBlock(e.leading)
	}
	p.WriteBlock(e.content)
	p.WriteString(e.EndText())
	p.Newline()
	return nil
}

// Run opens the environment, calls fn, and closes the environment
// afterwards, also when fn returns an error or panics.
func (e *Environment) Run(fn func(*Environment) error) (err error) {
	if err = e.Open(); err != nil {
		return err
	}
	defer func() {
		closeErr := e.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(e)
}

func (e *Environment) contentBlock() *Block { return e.content }
