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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testDef is a definition with explicit requirements, for exercising
// dependency ordering and cycle detection.
type testDef struct {
	kind, name, stmt string
	deps             []Definition
}

func (d *testDef) Kind() string           { return d.kind }
func (d *testDef) Name() string           { return d.name }
func (d *testDef) Statement() string      { return d.stmt }
func (d *testDef) Requires() []Definition { return d.deps }

func names(defs []Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Name()
	}
	return out
}

func TestRegistryInsertionOrder(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(Package("amsmath"), Package("tikz"), Package("relsize")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	want := []string{"amsmath", "tikz", "relsize"}
	if d := cmp.Diff(want, names(r.Required())); d != "" {
		t.Errorf("unexpected order (-want +got):\n%s", d)
	}
}

func TestRegistryDedup(t *testing.T) {
	r := NewRegistry()
	added, err := r.Register(Package("amsmath"))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if len(added) != 1 {
		t.Fatalf("added %d definitions, want 1", len(added))
	}

	added, err = r.Register(Package("amsmath"))
	if err != nil {
		t.Fatalf("re-Register failed: %v", err)
	}
	if len(added) != 0 {
		t.Errorf("re-registering added %d definitions, want 0", len(added))
	}
	if r.Len() != 1 {
		t.Errorf("registry has %d definitions, want 1", r.Len())
	}
}

func TestRegistryKindNamespaces(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(Package("tikz"), TikZLibrary("tikz")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Len() != 2 {
		t.Errorf("registry has %d definitions, want 2: kinds must not collide", r.Len())
	}
}

func TestRegistryDependencyOrder(t *testing.T) {
	base := &testDef{kind: "style", name: "base", stmt: `\tikzset{base/.style={}}`}
	derived := &testDef{
		kind: "style", name: "derived",
		stmt: `\tikzset{derived/.style={base}}`,
		deps: []Definition{base},
	}

	r := NewRegistry()
	added, err := r.Register(derived)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	want := []string{"base", "derived"}
	if d := cmp.Diff(want, names(added)); d != "" {
		t.Errorf("unexpected added order (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, names(r.Required())); d != "" {
		t.Errorf("unexpected emission order (-want +got):\n%s", d)
	}
}

func TestRegistrySharedDependency(t *testing.T) {
	shared := &testDef{kind: "color", name: "accent", stmt: `\definecolor{accent}{RGB}{1,2,3}`}
	a := &testDef{kind: "style", name: "a", stmt: "a", deps: []Definition{shared}}
	b := &testDef{kind: "style", name: "b", stmt: "b", deps: []Definition{shared}}

	r := NewRegistry()
	if _, err := r.Register(a, b); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	want := []string{"accent", "a", "b"}
	if d := cmp.Diff(want, names(r.Required())); d != "" {
		t.Errorf("unexpected emission order (-want +got):\n%s", d)
	}
}

func TestRegistryCycle(t *testing.T) {
	a := &testDef{kind: "style", name: "a", stmt: "a"}
	b := &testDef{kind: "style", name: "b", stmt: "b", deps: []Definition{a}}
	a.deps = []Definition{b}

	r := NewRegistry()
	_, err := r.Register(a)
	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("got %v, want a CycleError", err)
	}
	if cycleErr.Name != "a" {
		t.Errorf("cycle detected at %q, want %q", cycleErr.Name, "a")
	}
}

func TestRegistryReplace(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register(
		&testDef{kind: "color", name: "accent", stmt: "old"},
		&testDef{kind: "color", name: "other", stmt: "other"},
	); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if ok := r.Replace(&testDef{kind: "color", name: "accent", stmt: "new"}); !ok {
		t.Fatal("Replace did not find the definition")
	}
	got, ok := r.Lookup("color", "accent")
	if !ok || got.Statement() != "new" {
		t.Errorf("Lookup after Replace = %v, want statement %q", got, "new")
	}
	if d := cmp.Diff([]string{"accent", "other"}, names(r.Required())); d != "" {
		t.Errorf("Replace changed the order (-want +got):\n%s", d)
	}

	if ok := r.Replace(&testDef{kind: "color", name: "missing", stmt: "x"}); ok {
		t.Error("Replace reported success for an unregistered definition")
	}
}

func TestIncludeStatement(t *testing.T) {
	if got := Package("amsmath").Statement(); got != `\usepackage{amsmath}` {
		t.Errorf("Package statement = %q", got)
	}
	if got := TikZLibrary("arrows").Statement(); got != `\usetikzlibrary{arrows}` {
		t.Errorf("TikZLibrary statement = %q", got)
	}
}
