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
	"strings"

	"github.com/marcelsimader/septex"
)

// namedDef adapts a Named object to the document definition registry, so
// that definitions are deduplicated by name and emitted dependencies-first.
type namedDef struct {
	obj Named
}

func (d namedDef) Kind() string      { return "tikz-object" }
func (d namedDef) Name() string      { return d.obj.Name() }
func (d namedDef) Statement() string { return d.obj.Definition() }

func (d namedDef) Requires() []septex.Definition {
	deps := d.obj.DependsOn()
	out := make([]septex.Definition, len(deps))
	for i, dep := range deps {
		out[i] = namedDef{obj: dep}
	}
	return out
}

// define registers objs, and their dependencies, in reg.  Definitions seen
// for the first time are written to target, and their package and library
// requirements land on the document preamble.
func define(reg *septex.Registry, doc *septex.Document, target *septex.Block, objs ...Named) error {
	wrapped := make([]septex.Definition, len(objs))
	for i, o := range objs {
		wrapped[i] = namedDef{obj: o}
	}
	added, err := reg.Register(wrapped...)
	for _, d := range added {
		nd := d.(namedDef)
		doc.UsePackage(nd.obj.Packages()...)
		doc.UseTikZLibrary(nd.obj.Libraries()...)
		target.WriteString(nd.obj.Definition())
	}
	return err
}

// draw renders items through write.  Named items are defined instead of
// drawn inline, since their definition statement is their drawing; everything
// else has its dependencies defined first and its text written with a
// trailing semicolon.
func draw(reg *septex.Registry, doc *septex.Document, target *septex.Block,
	write func(string) error, items ...Renderable) error {
	for _, it := range items {
		if n, ok := it.(Named); ok {
			if err := define(reg, doc, target, n); err != nil {
				return err
			}
			continue
		}
		pkgs, libs, deps := collect(it)
		doc.UsePackage(pkgs...)
		doc.UseTikZLibrary(libs...)
		if err := define(reg, doc, target, deps...); err != nil {
			return err
		}
		text := it.TikZ()
		if !strings.HasSuffix(text, ";") {
			text += ";"
		}
		if err := write(text); err != nil {
			return err
		}
	}
	return nil
}

// A Picture is a tikzpicture environment.  Named objects are defined through
// Define, which hoists each definition to the top of the environment and
// emits it exactly once per picture, dependencies first.  The tikz package
// requirement is registered on the document at construction.
type Picture struct {
	*septex.Environment

	defs *septex.Registry
}

// NewPicture creates a tikzpicture nested in parent.  style, which may be
// nil, becomes the environment's option list; its colors are defined in the
// picture.
func NewPicture(parent septex.Container, style *Style) *Picture {
	options := ""
	if !style.Empty() {
		options = style.String()
	}
	env := septex.NewEnvironment(parent, "tikzpicture", options,
		&septex.EnvOptions{RequiredPackages: []string{"tikz"}})
	p := &Picture{Environment: env, defs: septex.NewRegistry()}
	for _, c := range style.Colors() {
		// colors have no dependencies, this cannot fail
		_ = p.Define(c)
	}
	return p
}

// Define registers the named objects, and everything they depend on, with
// the picture.  Each definition is emitted once, ahead of the picture's
// drawing content.  A dependency cycle fails with a
// [septex.CycleError]; definitions emitted before the cycle was found stay
// in place.
func (p *Picture) Define(objs ...Named) error {
	return define(p.defs, p.Document(), p.Definitions(), objs...)
}

// Defined reports whether a named object with the given name has been
// defined in the picture or one of its scopes.
func (p *Picture) Defined(name string) bool {
	return p.defs.Contains(namedDef{}.Kind(), name)
}

// Draw renders the items into the picture, defining named dependencies as
// needed.  Each drawn statement ends in a semicolon.  The picture must be
// open.
func (p *Picture) Draw(items ...Renderable) error {
	return draw(p.defs, p.Document(), p.Definitions(), p.Write, items...)
}

// Run opens the picture, calls fn, and closes the picture afterwards, also
// when fn returns an error or panics.
func (p *Picture) Run(fn func(*Picture) error) (err error) {
	if err = p.Open(); err != nil {
		return err
	}
	defer func() {
		closeErr := p.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(p)
}

// A Scope is a scope environment nested in a picture.  It shares the
// picture's definition registry: names already defined by the picture, or a
// sibling scope, are not emitted again.
type Scope struct {
	*septex.Environment

	picture *Picture
}

// NewScope creates a scope nested in the picture.  style, which may be nil,
// becomes the scope's option list; its colors are defined in the scope.
func (p *Picture) NewScope(style *Style) *Scope {
	options := ""
	if !style.Empty() {
		options = style.String()
	}
	env := septex.NewEnvironment(p, "scope", options, nil)
	s := &Scope{Environment: env, picture: p}
	for _, c := range style.Colors() {
		_ = s.Define(c)
	}
	return s
}

// Define registers the named objects like [Picture.Define], emitting new
// definitions at the top of the scope.
func (s *Scope) Define(objs ...Named) error {
	return define(s.picture.defs, s.Document(), s.Definitions(), objs...)
}

// Draw renders the items into the scope like [Picture.Draw].  The scope must
// be open.
func (s *Scope) Draw(items ...Renderable) error {
	return draw(s.picture.defs, s.Document(), s.Definitions(), s.Write, items...)
}

// Run opens the scope, calls fn, and closes the scope afterwards, also when
// fn returns an error or panics.
func (s *Scope) Run(fn func(*Scope) error) (err error) {
	if err = s.Open(); err != nil {
		return err
	}
	defer func() {
		closeErr := s.Close()
		if err == nil {
			err = closeErr
		}
	}()
	return fn(s)
}
