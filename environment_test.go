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
	"path/filepath"
	"strings"
	"testing"
)

func openDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument(filepath.Join(t.TempDir(), "doc"), nil)
	if err := doc.Open(); err != nil {
		t.Fatalf("opening document: %v", err)
	}
	t.Cleanup(doc.Abort)
	return doc
}

func TestEnvironmentFlushOnClose(t *testing.T) {
	doc := openDocument(t)

	env := NewEnvironment(doc, "center", "", nil)
	if err := env.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := env.Write("X"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := env.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// the content sits one level deeper than the markers, contiguously
	// between them
	want := "\t\\begin{center}\n\t\tX\n\t\\end{center}"
	if got := doc.String(); !strings.Contains(got, want) {
		t.Errorf("flushed environment missing from:\n%s", got)
	}
}

func TestEnvironmentContentStaysOutOfParentUntilClose(t *testing.T) {
	doc := openDocument(t)

	env := Center(doc)
	if err := env.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := env.Write("pending"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if strings.Contains(doc.String(), "pending") {
		t.Error("content leaked into the parent before Close")
	}
	if err := env.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !strings.Contains(doc.String(), "pending") {
		t.Error("content missing from the parent after Close")
	}
}

func TestEnvironmentNesting(t *testing.T) {
	doc := openDocument(t)

	outer := NewEnvironment(doc, "outer", "", nil)
	if err := outer.Open(); err != nil {
		t.Fatalf("opening outer: %v", err)
	}
	inner := NewEnvironment(outer, "inner", "", nil)
	if err := inner.Open(); err != nil {
		t.Fatalf("opening inner: %v", err)
	}
	if err := inner.Write("deep"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := inner.Close(); err != nil {
		t.Fatalf("closing inner: %v", err)
	}
	if err := outer.Close(); err != nil {
		t.Fatalf("closing outer: %v", err)
	}

	if inner.Document() != doc {
		t.Error("inner environment does not resolve the root document")
	}
	want := "\t\\begin{outer}\n\t\t\\begin{inner}\n\t\t\tdeep\n\t\t\\end{inner}"
	if got := doc.String(); !strings.Contains(got, want) {
		t.Errorf("nested environments misrendered:\n%s", got)
	}
}

func TestEnvironmentRequiresOpenParent(t *testing.T) {
	doc := NewDocument(filepath.Join(t.TempDir(), "doc"), nil)
	env := NewEnvironment(doc, "center", "", nil)

	var stateErr *StateError
	if err := env.Open(); !errors.As(err, &stateErr) {
		t.Fatalf("Open with closed parent: got %v, want a StateError", err)
	}
}

func TestEnvironmentCloseRequiresOpenParent(t *testing.T) {
	doc := openDocument(t)
	env := Center(doc)
	if err := env.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	doc.Abort()
	var stateErr *StateError
	if err := env.Close(); !errors.As(err, &stateErr) {
		t.Errorf("Close with closed parent: got %v, want a StateError", err)
	}
	if env.IsOpen() {
		t.Error("environment still open after failed Close")
	}
}

func TestEnvironmentOptionsBracketing(t *testing.T) {
	doc := openDocument(t)

	plain := NewEnvironment(doc, "figure", "h!", nil)
	if got := plain.BeginText(); got != `\begin{figure}[h!]` {
		t.Errorf("BeginText = %q", got)
	}
	already := NewEnvironment(doc, "figure", "[h!]", nil)
	if got := already.BeginText(); got != `\begin{figure}[h!]` {
		t.Errorf("BeginText with bracketed options = %q", got)
	}
	none := NewEnvironment(doc, "figure", "", nil)
	if got := none.BeginText(); got != `\begin{figure}` {
		t.Errorf("BeginText without options = %q", got)
	}
}

func TestEnvironmentRequiredPackages(t *testing.T) {
	doc := openDocument(t)
	NewEnvironment(doc, "tikzpicture", "", &EnvOptions{RequiredPackages: []string{"tikz"}})

	if !strings.Contains(doc.String(), `\usepackage{tikz}`) {
		t.Error("required package not registered on the document")
	}
}

func TestEnvironmentWriteRequiresOpen(t *testing.T) {
	doc := openDocument(t)
	env := Center(doc)

	var stateErr *StateError
	if err := env.Write("x"); !errors.As(err, &stateErr) {
		t.Errorf("Write before Open: got %v, want a StateError", err)
	}
}

func TestEnvironmentSingleUse(t *testing.T) {
	doc := openDocument(t)
	env := Center(doc)
	if err := env.Run(func(e *Environment) error { return e.Write("x") }); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	var stateErr *StateError
	if err := env.Open(); !errors.As(err, &stateErr) {
		t.Errorf("reopening a used environment: got %v, want a StateError", err)
	}
}

func TestEnvironmentRunClosesOnError(t *testing.T) {
	doc := openDocument(t)
	env := Center(doc)

	wantErr := errors.New("boom")
	if err := env.Run(func(e *Environment) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("Run returned %v, want %v", err, wantErr)
	}
	if env.IsOpen() {
		t.Error("environment still open after failed Run")
	}
}

func TestEnvironmentRunClosesOnPanic(t *testing.T) {
	doc := openDocument(t)
	env := Center(doc)

	func() {
		defer func() { _ = recover() }()
		_ = env.Run(func(e *Environment) error { panic("boom") })
	}()
	if env.IsOpen() {
		t.Error("environment still open after panic")
	}
}

func TestEnvironmentDefinitionsPrecedeContent(t *testing.T) {
	doc := openDocument(t)
	env := Center(doc)
	if err := env.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := env.Write("content"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	env.Definitions().WriteString("definition")
	if err := env.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	inOrder(t, doc.String(), `\begin{center}`, "definition", "content", `\end{center}`)
}

func TestFigureCaptionAndLabel(t *testing.T) {
	doc := openDocument(t)

	fig := NewFigure(doc, "A caption", "example", "")
	if got := fig.Label(); got != "fig:example" {
		t.Errorf("Label = %q, want %q", got, "fig:example")
	}
	err := fig.Run(func(f *Figure) error { return f.Write("body") })
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	inOrder(t, doc.String(),
		`\begin{figure}[h!]`,
		"body",
		`\caption{A caption}`,
		`\label{fig:example}`,
		`\end{figure}`,
	)
}

func TestMathEnvironment(t *testing.T) {
	doc := openDocument(t)

	env := NewMathEnvironment(doc, "gather", true)
	if env.Name() != "gather*" {
		t.Errorf("Name = %q, want %q", env.Name(), "gather*")
	}
	err := env.Run(func(m *MathEnvironment) error {
		if err := m.WriteMath("x^2"); err != nil {
			return err
		}
		if err := m.Newline(); err != nil {
			return err
		}
		return m.WriteMath([]any{1, "two"})
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	inOrder(t, doc.String(),
		`\begin{gather*}`,
		"x^2",
		`\\`,
		`\left[ 1, \text{two} \right]`,
		`\end{gather*}`,
	)
}
