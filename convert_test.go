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
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func savedDocument(t *testing.T, dir string) *Document {
	t.Helper()
	doc := NewDocument(filepath.Join(dir, "doc"), nil)
	err := doc.Run(func(preamble, body *Block) error {
		body.WriteString("hello")
		return nil
	})
	if err != nil {
		t.Fatalf("preparing document: %v", err)
	}
	return doc
}

func TestToPDFRequiresUsedDocument(t *testing.T) {
	doc := NewDocument(filepath.Join(t.TempDir(), "doc"), nil)

	var stateErr *StateError
	err := doc.ToPDF(filepath.Join(t.TempDir(), "out.pdf"), nil)
	if !errors.As(err, &stateErr) {
		t.Fatalf("got %v, want a StateError", err)
	}
}

func TestToPDFUnsupportedEngine(t *testing.T) {
	dir := t.TempDir()
	doc := savedDocument(t, dir)

	err := doc.ToPDF(filepath.Join(dir, "out.pdf"), &ConvertOptions{Engine: "luatex"})
	var engineErr *UnsupportedEngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("got %v, want an UnsupportedEngineError", err)
	}
	if engineErr.Engine != "luatex" {
		t.Errorf("Engine = %q, want %q", engineErr.Engine, "luatex")
	}
}

func TestToPDFRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	doc := savedDocument(t, dir)

	out := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(out, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := doc.ToPDF(out, nil)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("got %v, want fs.ErrExist", err)
	}
}

func TestConvertErrorUnwrap(t *testing.T) {
	inner := errors.New("exit status 1")
	err := &ConvertError{Engine: EnginePDFLaTeX, Path: "doc.tex", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("ConvertError does not unwrap to its cause")
	}
}
