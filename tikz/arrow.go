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

// An Arrow selects the tips drawn at the ends of a directed path.  The
// values are TikZ arrow keys from the arrows library.
type Arrow string

const (
	ArrowNone        Arrow = "-"
	ArrowLeft        Arrow = "<-"
	ArrowRight       Arrow = "->"
	ArrowLeftRight   Arrow = "<->"
	ArrowInLeft      Arrow = ">-"
	ArrowInRight     Arrow = "-<"
	ArrowInLeftRight Arrow = ">-<"
	BarLeft          Arrow = "|-"
	BarRight         Arrow = "-|"
	BarLeftRight     Arrow = "|-|"

	LatexLeft           Arrow = "latex-"
	LatexRight          Arrow = "-latex"
	LatexLeftRight      Arrow = "latex-latex"
	LatexPrimeLeft      Arrow = "latex'-"
	LatexPrimeRight     Arrow = "-latex'"
	LatexPrimeLeftRight Arrow = "latex'-latex'"

	CircleLeft      Arrow = "o-"
	CircleRight     Arrow = "-o"
	CircleLeftRight Arrow = "o-o"
)
