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

// StateError reports a lifecycle precondition violation: an operation was
// attempted while its resource was not in the required state.
type StateError struct {
	Op   string // the operation that was attempted
	Want string // the state the resource must be in
	Desc string // describes the offending resource
}

func (e *StateError) Error() string {
	return fmt.Sprintf("the %s must %s before %q", e.Desc, e.Want, e.Op)
}

// CycleError reports a definition that transitively requires itself.
type CycleError struct {
	Kind string
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("definition cycle detected at %s %q", e.Kind, e.Name)
}

// UnsupportedEngineError reports a request for a TeX engine that is not
// available for PDF conversion.
type UnsupportedEngineError struct {
	Engine string
}

func (e *UnsupportedEngineError) Error() string {
	return fmt.Sprintf("unsupported TeX engine %q (supported: %s, %s)",
		e.Engine, EnginePDFLaTeX, EnginePDFTeX)
}

// ConvertError reports a failed conversion of a rendered document to PDF.
type ConvertError struct {
	Engine string
	Path   string // the .tex input file
	Output string // combined output of the engine, if any
	Err    error
}

func (e *ConvertError) Error() string {
	msg := fmt.Sprintf("converting %q to PDF with %s: %v", e.Path, e.Engine, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *ConvertError) Unwrap() error { return e.Err }
