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
	"os"
	"strings"
)

// DocumentOptions configure a new document.  The zero value selects an
// article-class A4 document with the amsmath package, no title, and no line
// wrapping.
type DocumentOptions struct {
	Class        string   // document class, default "article"
	ClassOptions string   // options passed to the class, default "a4paper, 12pt"
	Packages     []string // packages included at construction, default {"amsmath"}

	Title    string
	Subtitle string // ignored unless Title is set
	Author   string

	ShowDate        bool // include the date in the title block
	ShowPageNumbers bool // number the pages
	WrapColumn      int  // soft-wrap column for preamble and body, 0 disables
}

const documentTemplate = `\documentclass[%s]{%s}

%% ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
%% ~~~~~~~~~~~~~~~ PACKAGES ~~~~~~~~~~~~~~~
%% ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~

%s

%% ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
%% ~~~~~~~~~~~~~~~ PREAMBLE ~~~~~~~~~~~~~~~
%% ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~

%s

%% ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
%% ~~~~~~~~~~~~~~~ BODY ~~~~~~~~~~~~~~~
%% ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~

\begin{document}
%s
\end{document}`

// A Document represents a LaTeX document that accumulates content between
// Open and Close and is written to a .tex file when it closes.  Documents
// are single-use resources; see [Resource].
type Document struct {
	Resource

	path         string
	class        string
	classOptions string
	title        string
	subtitle     string
	author       string
	showDate     bool
	showPageNums bool

	defs     *Registry
	preamble *Block
	body     *Block
}

// NewDocument creates a document that will be written to path when it is
// closed.  A ".tex" suffix is appended if missing.  opt may be nil.
func NewDocument(path string, opt *DocumentOptions) *Document {
	if opt == nil {
		opt = &DocumentOptions{}
	}
	class := opt.Class
	if class == "" {
		class = "article"
	}
	classOptions := opt.ClassOptions
	if classOptions == "" {
		classOptions = "a4paper, 12pt"
	}
	packages := opt.Packages
	if packages == nil {
		packages = []string{"amsmath"}
	}
	if !strings.HasSuffix(path, ".tex") {
		path += ".tex"
	}

	d := &Document{
		Resource:     NewResource(fmt.Sprintf("document %q", path), false),
		path:         path,
		class:        class,
		classOptions: classOptions,
		title:        opt.Title,
		subtitle:     opt.Subtitle,
		author:       opt.Author,
		showDate:     opt.ShowDate,
		showPageNums: opt.ShowPageNumbers,
		defs:         NewRegistry(),
		preamble:     NewWrappedBlock(0, opt.WrapColumn),
		body:         NewWrappedBlock(1, opt.WrapColumn),
	}
	d.UsePackage(packages...)
	return d
}

// Path returns the path of the .tex file the document is saved to.
func (d *Document) Path() string { return d.path }

// Class returns the document class.
func (d *Document) Class() string { return d.class }

// ClassOptions returns the options passed to the document class.
func (d *Document) ClassOptions() string { return d.classOptions }

// Title returns the document title, if any.
func (d *Document) Title() string { return d.title }

// Author returns the document author, if any.
func (d *Document) Author() string { return d.author }

// Definitions returns the registered preamble definitions in emission order.
func (d *Document) Definitions() []Definition { return d.defs.Required() }

// UsePackage registers \usepackage statements for the named packages.
// Duplicate names are ignored; the first registration wins the position.
func (d *Document) UsePackage(names ...string) {
	for _, n := range names {
		d.defs.Register(Package(n))
	}
}

// UseTikZLibrary registers \usetikzlibrary statements for the named TikZ
// libraries, deduplicated like [Document.UsePackage].
func (d *Document) UseTikZLibrary(names ...string) {
	for _, n := range names {
		d.defs.Register(TikZLibrary(n))
	}
}

// Register adds arbitrary definitions, and their requirements, to the
// document preamble.
func (d *Document) Register(defs ...Definition) error {
	_, err := d.defs.Register(defs...)
	return err
}

// Open begins the document.  The title block and page-numbering setup are
// written here, so those options must be final before opening.
func (d *Document) Open() error {
	if err := d.Resource.Open(); err != nil {
		return err
	}
	if d.title != "" || d.author != "" {
		d.body.WriteString(`\maketitle`)
		d.body.Newline()
		if d.title != "" {
			d.UsePackage("relsize")
			if d.subtitle == "" {
				d.preamble.WriteString(fmt.Sprintf(`\title{%s}`, d.title))
			} else {
				d.preamble.WriteString(fmt.Sprintf(`\title{%s\\[0.4em]\smaller{%s}}`, d.title, d.subtitle))
			}
		}
		if d.author != "" {
			d.preamble.WriteString(fmt.Sprintf(`\author{%s}`, d.author))
		}
		if !d.showDate {
			d.preamble.WriteString(`\date{}`)
		}
	}
	if !d.showPageNums {
		d.preamble.WriteString(`\pagenumbering{gobble}`)
	}
	return nil
}

// Preamble returns the preamble block.  The document must be open.
func (d *Document) Preamble() (*Block, error) {
	if err := d.RequireOpen("Preamble"); err != nil {
		return nil, err
	}
	return d.preamble, nil
}

// Body returns the body block.  The document must be open.
func (d *Document) Body() (*Block, error) {
	if err := d.RequireOpen("Body"); err != nil {
		return nil, err
	}
	return d.body, nil
}

// PageBreak inserts a page break into the body.
func (d *Document) PageBreak() error {
	if err := d.RequireOpen("PageBreak"); err != nil {
		return err
	}
	d.body.WriteString(`\newpage`)
	d.body.Newline()
	return nil
}

// Close finalizes the document and writes the rendered text to [Document.Path].
// The document transitions to closed on every path; the file is only written
// when the in-memory render completed.
func (d *Document) Close() error {
	if err := d.RequireOpen("Close"); err != nil {
		return err
	}
	text := d.String()
	d.Resource.Close()
	if err := os.WriteFile(d.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", d.path, err)
	}
	return nil
}

// Abort closes the document without writing it to disk.
func (d *Document) Abort() { d.Resource.Close() }

// Run opens the document, calls fn with the preamble and body blocks, and
// closes the document afterwards.  The lifecycle is finalized on every exit
// path: if fn returns an error or panics, the document is closed without
// writing the file.
func (d *Document) Run(fn func(preamble, body *Block) error) error {
	if err := d.Open(); err != nil {
		return err
	}
	saved := false
	defer func() {
		if !saved {
			d.Abort()
		}
	}()
	if err := fn(d.preamble, d.body); err != nil {
		return err
	}
	saved = true
	return d.Close()
}

// Saved reports whether the document completed an open-close cycle and its
// rendered file exists on disk.
func (d *Document) Saved() bool {
	if d.RequireUsed("Saved") != nil {
		return false
	}
	_, err := os.Stat(d.path)
	return err == nil
}

// String renders the document source: the class line, the definition
// statements, the preamble, and the body wrapped in document markers.
func (d *Document) String() string {
	defs := NewBlock(0)
	for _, def := range d.defs.Required() {
		defs.WriteString(def.Statement())
	}
	return fmt.Sprintf(documentTemplate,
		d.classOptions, d.class, defs, d.preamble, d.body)
}

// Document returns the document itself, terminating the container chain.
func (d *Document) Document() *Document { return d }

func (d *Document) contentBlock() *Block { return d.body }
