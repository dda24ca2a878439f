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

import "fmt"

// A Definition is a named, emittable statement that must appear in a
// document exactly once, ahead of its first use.  A definition may require
// other definitions; the registry emits those first.
type Definition interface {
	// Kind groups definitions that share a namespace, e.g. "usepackage".
	Kind() string
	// Name identifies the definition within its kind.
	Name() string
	// Statement returns the source line emitted into the document.
	Statement() string
	// Requires lists definitions that must be emitted before this one.
	Requires() []Definition
}

// Include is a one-line \<verb>{<name>} inclusion statement, such as
// \usepackage{amsmath}.  It has no requirements of its own.
type Include struct {
	verb string
	name string
}

// Package returns the \usepackage statement for the named package.
func Package(name string) Include {
	return Include{verb: "usepackage", name: name}
}

// TikZLibrary returns the \usetikzlibrary statement for the named library.
func TikZLibrary(name string) Include {
	return Include{verb: "usetikzlibrary", name: name}
}

func (inc Include) Kind() string { return inc.verb }
func (inc Include) Name() string { return inc.name }

func (inc Include) Statement() string {
	return fmt.Sprintf("\\%s{%s}", inc.verb, inc.name)
}

func (inc Include) Requires() []Definition { return nil }

type definitionKey struct {
	kind string
	name string
}

// A Registry is an insertion-ordered, deduplicating set of definitions.
// Identity is the (kind, name) pair; registering a definition that is
// already present is a no-op.  The requirements of a definition are
// registered depth-first before the definition itself, so [Registry.Required]
// always lists dependencies ahead of their dependents.
type Registry struct {
	index map[definitionKey]int
	items []Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[definitionKey]int)}
}

// Register adds the given definitions and, recursively, their requirements.
// It returns the definitions that were newly added, in emission order.  A
// definition that transitively requires itself fails with a [CycleError];
// definitions added before the cycle was found remain registered.
func (r *Registry) Register(defs ...Definition) ([]Definition, error) {
	var added []Definition
	visiting := make(map[definitionKey]bool)
	for _, d := range defs {
		if err := r.register(d, visiting, &added); err != nil {
			return added, err
		}
	}
	return added, nil
}

func (r *Registry) register(d Definition, visiting map[definitionKey]bool, added *[]Definition) error {
	k := definitionKey{kind: d.Kind(), name: d.Name()}
	if _, ok := r.index[k]; ok {
		return nil
	}
	if visiting[k] {
		return &CycleError{Kind: k.kind, Name: k.name}
	}
	visiting[k] = true
	for _, dep := range d.Requires() {
		if err := r.register(dep, visiting, added); err != nil {
			return err
		}
	}
	delete(visiting, k)
	r.index[k] = len(r.items)
	r.items = append(r.items, d)
	*added = append(*added, d)
	return nil
}

// Contains reports whether a definition with the given kind and name has
// been registered.
func (r *Registry) Contains(kind, name string) bool {
	_, ok := r.index[definitionKey{kind: kind, name: name}]
	return ok
}

// Lookup returns the registered definition with the given kind and name.
func (r *Registry) Lookup(kind, name string) (Definition, bool) {
	i, ok := r.index[definitionKey{kind: kind, name: name}]
	if !ok {
		return nil, false
	}
	return r.items[i], true
}

// Replace overwrites an already-registered definition with d, keeping its
// position in the emission order.  It reports whether a definition with d's
// identity was present.
func (r *Registry) Replace(d Definition) bool {
	i, ok := r.index[definitionKey{kind: d.Kind(), name: d.Name()}]
	if !ok {
		return false
	}
	r.items[i] = d
	return true
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int { return len(r.items) }

// Required returns all registered definitions in emission order: every
// definition appears after the definitions it requires.
func (r *Registry) Required() []Definition {
	out := make([]Definition, len(r.items))
	copy(out, r.items)
	return out
}
