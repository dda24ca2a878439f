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

// A Resource tracks the open/closed lifecycle shared by documents and
// environments.  A resource starts out never-opened, is opened exactly once
// unless it allows reopening, and is closed when its content is final.
// State-sensitive operations call the Require methods, which return a
// [StateError] naming the violated condition and the operation.
type Resource struct {
	open      bool
	openCount int
	reopen    bool
	desc      string
}

// NewResource returns a resource in the never-opened state.  desc names the
// resource in error messages.  canReopen permits more than one open/close
// cycle; the default for documents and environments is a single cycle.
func NewResource(desc string, canReopen bool) Resource {
	return Resource{desc: desc, reopen: canReopen}
}

// IsOpen reports whether the resource is currently open.
func (r *Resource) IsOpen() bool { return r.open }

// OpenCount returns how many times the resource has been opened.
func (r *Resource) OpenCount() int { return r.openCount }

// CanReopen reports whether the resource may be opened more than once.
func (r *Resource) CanReopen() bool { return r.reopen }

// Open marks the resource as open.  Opening a second time fails unless the
// resource allows reopening.
func (r *Resource) Open() error {
	if !r.reopen && r.openCount > 0 {
		return &StateError{Op: "Open", Want: "not have been opened before", Desc: r.desc}
	}
	r.open = true
	r.openCount++
	return nil
}

// Close marks the resource as closed.  It is unconditional so that cleanup
// succeeds on every exit path.
func (r *Resource) Close() { r.open = false }

// RequireOpen fails with a StateError unless the resource is open.
func (r *Resource) RequireOpen(op string) error {
	if !r.open {
		return &StateError{Op: op, Want: "be open", Desc: r.desc}
	}
	return nil
}

// RequireClosed fails with a StateError unless the resource is closed.
func (r *Resource) RequireClosed(op string) error {
	if r.open {
		return &StateError{Op: op, Want: "be closed", Desc: r.desc}
	}
	return nil
}

// RequireNeverOpened fails with a StateError if the resource has been opened
// at any point.
func (r *Resource) RequireNeverOpened(op string) error {
	if r.openCount > 0 {
		return &StateError{Op: op, Want: "not have been opened at any point", Desc: r.desc}
	}
	return nil
}

// RequireUsed fails with a StateError unless the resource has been opened
// and closed at least once.
func (r *Resource) RequireUsed(op string) error {
	if r.openCount == 0 || r.open {
		return &StateError{Op: op, Want: "have been opened and closed at least once", Desc: r.desc}
	}
	return nil
}

func (r *Resource) describe() string { return r.desc }
