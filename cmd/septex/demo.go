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

package main

import (
	"math/big"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/marcelsimader/septex"
	"github.com/marcelsimader/septex/tikz"
)

var (
	flagOut       string
	flagPDF       bool
	flagEngine    string
	flagKeepAux   bool
	flagOverwrite bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate a document showcasing the library",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&flagOut, "out", "o", "septex-demo.tex",
		"output .tex file")
	demoCmd.Flags().BoolVar(&flagPDF, "pdf", false,
		"compile the document to PDF")
	demoCmd.Flags().StringVar(&flagEngine, "engine", "",
		"TeX engine for --pdf (default from config)")
	demoCmd.Flags().BoolVar(&flagKeepAux, "keep-aux", false,
		"keep auxiliary files after --pdf")
	demoCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false,
		"replace an existing PDF")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	doc := septex.NewDocument(flagOut, &septex.DocumentOptions{
		Title:      "septex",
		Subtitle:   "A structured LaTeX and TikZ generator",
		Author:     "septex demo",
		WrapColumn: cfg.WrapColumn,
	})

	err := doc.Run(func(preamble, body *septex.Block) error {
		body.WriteString("This document was assembled entirely in memory: " +
			"prose, math, and TikZ drawings below were built from typed " +
			"objects and rendered in one pass. Long paragraphs like this " +
			"one are soft-wrapped at the configured column, with hanging " +
			"indentation on continuation lines.")
		body.Newline()

		if err := writeMathSection(doc); err != nil {
			return err
		}
		if err := writePaletteFigure(doc); err != nil {
			return err
		}
		return writeGraphFigure(doc)
	})
	if err != nil {
		return err
	}
	log.Info().Str("path", doc.Path()).Msg("document written")

	if !flagPDF {
		return nil
	}
	engine := flagEngine
	if engine == "" {
		engine = cfg.Engine
	}
	pdfPath := strings.TrimSuffix(doc.Path(), ".tex") + ".pdf"
	err = doc.ToPDF(pdfPath, &septex.ConvertOptions{
		Engine:    engine,
		KeepAux:   flagKeepAux || cfg.KeepAux,
		Overwrite: flagOverwrite,
	})
	if err != nil {
		return err
	}
	log.Info().Str("path", pdfPath).Msg("PDF written")
	return nil
}

func writeMathSection(doc *septex.Document) error {
	math := septex.NewMathEnvironment(doc, "gather", true)
	return math.Run(func(m *septex.MathEnvironment) error {
		if err := m.WriteMath(big.NewRat(355, 113)); err != nil {
			return err
		}
		if err := m.Newline(); err != nil {
			return err
		}
		return m.WriteMath([]any{big.NewRat(1, 2), big.NewRat(1, 3), "and so on"})
	})
}

// writePaletteFigure draws the default palette as a row of filled circles,
// with a dashed baseline in a shifted scope.
func writePaletteFigure(doc *septex.Document) error {
	fig := septex.NewFigure(doc, "The default color palette.", "palette", "")
	return fig.Run(func(f *septex.Figure) error {
		center := septex.Center(f)
		return center.Run(func(c *septex.Environment) error {
			pic := tikz.NewPicture(c, tikz.NewStyle().SetNumber(tikz.KeyScale, 0.8))
			return pic.Run(func(p *tikz.Picture) error {
				palette := tikz.DefaultPalette()
				for i, color := range palette {
					swatch := tikz.NewCircle(
						tikz.NewPoint(float64(i)*0.8, 0).WithUnit("cm"),
						0.3, "cm",
						tikz.NewStyle().SetFlag(tikz.KeyDraw).SetColor(tikz.KeyFill, color))
					if err := p.Draw(swatch); err != nil {
						return err
					}
				}
				scope := p.NewScope(tikz.NewStyle().Set(tikz.KeyShift, "{(0, -0.8)}"))
				return scope.Run(func(s *tikz.Scope) error {
					baseline := tikz.NewPath(
						tikz.NewStyle().SetFlag(tikz.KeyDashed),
						tikz.NewPoint(-0.4, 0).WithUnit("cm"),
						tikz.NewPoint(float64(len(palette)-1)*0.8+0.4, 0).WithUnit("cm"))
					return s.Draw(baseline)
				})
			})
		})
	})
}

func writeGraphFigure(doc *septex.Document) error {
	open, err := tikz.NewNode("open", "open", tikz.NewPoint(0, 0).WithUnit("cm"), nil)
	if err != nil {
		return err
	}
	closed, err := tikz.NewNodeNextTo("closed", "closed", open,
		tikz.NewPoint(4, 0).WithUnit("cm"), nil)
	if err != nil {
		return err
	}
	saved, err := tikz.NewNodeNextTo("saved", "saved", closed,
		tikz.NewPoint(4, 0).WithUnit("cm"), nil)
	if err != nil {
		return err
	}

	graph := tikz.NewGraph(
		tikz.NewStyle().SetFlag(tikz.KeyDraw).SetFlag(tikz.KeyCircle),
		tikz.NewStyle())
	graph.AddNodes(open, closed, saved)
	edges := []tikz.Edge{
		{From: open, To: closed, Label: ptr(tikz.NewLabel("close", "midway, above"))},
		{From: closed, To: saved, Label: ptr(tikz.NewLabel("write", "midway, above"))},
	}
	for _, e := range edges {
		if err := graph.AddEdge(e); err != nil {
			return err
		}
	}

	fig := septex.NewFigure(doc, "A document lifecycle as a graph.", "lifecycle", "")
	return fig.Run(func(f *septex.Figure) error {
		center := septex.Center(f)
		return center.Run(func(c *septex.Environment) error {
			pic := tikz.NewPicture(c, nil)
			return pic.Run(func(p *tikz.Picture) error {
				return graph.Draw(p)
			})
		})
	})
}

func ptr[T any](v T) *T { return &v }
