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
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Engines accepted by [Document.ToPDF].  Both run the pdflatex executable.
const (
	EnginePDFLaTeX = "pdflatex"
	EnginePDFTeX   = "pdftex"
)

// ConvertOptions control the conversion of a rendered document to PDF.
type ConvertOptions struct {
	// Overwrite permits replacing an existing output file.
	Overwrite bool
	// KeepAux retains the auxiliary-file directory after conversion.
	KeepAux bool
	// Engine selects the TeX engine.  Defaults to EnginePDFLaTeX.
	Engine string
	// ExtraArgs are passed to the engine verbatim.
	ExtraArgs []string
}

// ToPDF compiles the saved .tex file to a PDF at outPath.  The document must
// have completed a full open-close cycle.  Auxiliary files are placed in a
// ".aux" directory next to the output and removed again unless KeepAux is
// set.  A non-zero engine exit, or failure to start the engine, is reported
// as a [ConvertError].
func (d *Document) ToPDF(outPath string, opt *ConvertOptions) error {
	if err := d.RequireUsed("ToPDF"); err != nil {
		return err
	}
	if opt == nil {
		opt = &ConvertOptions{}
	}
	engine := opt.Engine
	if engine == "" {
		engine = EnginePDFLaTeX
	}
	if engine != EnginePDFLaTeX && engine != EnginePDFTeX {
		return &UnsupportedEngineError{Engine: engine}
	}
	if !opt.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output file %q: %w (set Overwrite to replace it)", outPath, fs.ErrExist)
		}
	}

	outAbs, err := filepath.Abs(outPath)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(outAbs), ".pdf") {
		outAbs = strings.TrimSuffix(outAbs, filepath.Ext(outAbs))
	}
	outDir := filepath.Dir(outAbs)
	jobName := filepath.Base(outAbs)
	auxDir := filepath.Join(outDir, ".aux")
	if err := os.MkdirAll(auxDir, 0o755); err != nil {
		return err
	}
	if !opt.KeepAux {
		defer os.RemoveAll(auxDir)
	}

	texAbs, err := filepath.Abs(d.path)
	if err != nil {
		return err
	}
	texDir := filepath.Dir(texAbs)
	args := []string{
		filepath.Base(texAbs),
		"-include-directory", texDir,
		"-job-name", jobName,
		"-output-directory", outDir,
		"-aux-directory", auxDir,
		"-halt-on-error",
	}
	args = append(args, opt.ExtraArgs...)

	cmd := exec.Command("pdflatex", args...)
	cmd.Dir = texDir
	log.Debug().
		Str("engine", engine).
		Str("dir", texDir).
		Strs("args", args).
		Msg("running TeX engine")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &ConvertError{
			Engine: engine,
			Path:   d.path,
			Output: strings.TrimSpace(string(out)),
			Err:    err,
		}
	}
	return nil
}
