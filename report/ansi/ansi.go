// This file is part of vgaverify.
//
// vgaverify is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgaverify is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgaverify.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles and colours. The report
// package uses them to highlight verdicts when the output is a terminal.
package ansi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/vgaverify/curated"
)

// AnsiError is the sentinel pattern for errors from ColorBuild.
const AnsiError = "ansi: %v"

// ansi color. the index of a name is its colour code.
var colorNames = []string{"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE"}

const colDefault = 9

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 8
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	// none of these can fail because the names all come from the tables above
	NormalPen, _ = ColorBuild("", "", "", false, false)

	for _, n := range colorNames[1:] {
		k := strings.ToLower(n)
		Pens[k], _ = ColorBuild(n, "", "", true, false)
		DimPens[k], _ = ColorBuild(n, "", "", false, false)
	}

	PenStyles["bold"], _ = ColorBuild("", "", "bold", false, false)
	PenStyles["underline"], _ = ColorBuild("", "", "underline", false, false)
}

func colorCode(name string) (int, bool) {
	name = strings.ToUpper(name)
	if name == "NORMAL" {
		return colDefault, true
	}
	for i, n := range colorNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	// pen
	if pen != "" {
		col, ok := colorCode(pen)
		if !ok {
			return "", curated.Errorf(AnsiError, fmt.Sprintf("unknown pen (%s)", pen))
		}
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		s.WriteString(fmt.Sprintf("%d%d", penType, col))
	}

	// paper
	if paper != "" {
		col, ok := colorCode(paper)
		if !ok {
			return "", curated.Errorf(AnsiError, fmt.Sprintf("unknown paper (%s)", paper))
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		paperType := targetPaper
		if brightPaper {
			paperType = targetBrightPaper
		}
		s.WriteString(fmt.Sprintf("%d%d", paperType, col))
	}

	// attribute
	var attr int
	switch strings.ToUpper(attribute) {
	case "BOLD":
		attr = attrBold
	case "UNDERLINE":
		attr = attrUnderline
	case "ITALIC":
		attr = attrInverse
	case "STRIKE":
		attr = attrStrike
	case "NORMAL", "":
	default:
		return "", curated.Errorf(AnsiError, fmt.Sprintf("unknown attribute (%s)", attribute))
	}
	if attr != 0 {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		s.WriteString(fmt.Sprintf("%d", attr))
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}
