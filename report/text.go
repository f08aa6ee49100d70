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

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/report/ansi"
	"github.com/jetsetilly/vgaverify/verify"
	"golang.org/x/term"
)

// DefaultMismatchLimit is the number of signal mismatches printed for each
// scenario before the remainder are summarised.
const DefaultMismatchLimit = 1000

// Text is an implementation of the verify.Reporter interface.
type Text struct {
	output io.Writer

	// use ANSI highlighting
	Highlight bool

	// print a banner at the start of every line
	Lines bool

	// maximum number of mismatches printed per scenario. zero is unlimited
	MismatchLimit int

	// a progress dot has been printed without a newline
	dots bool

	// number of mismatches in the current scenario
	mismatches int
}

// NewText is the preferred method of initialisation for the Text type.
// Highlighting is enabled if output is a terminal.
func NewText(output io.Writer) *Text {
	txt := &Text{
		output:        output,
		Lines:         true,
		MismatchLimit: DefaultMismatchLimit,
	}
	if f, ok := output.(*os.File); ok {
		txt.Highlight = term.IsTerminal(int(f.Fd()))
	}
	return txt
}

func (txt *Text) highlight(pen string, s string) string {
	if !txt.Highlight {
		return s
	}
	return fmt.Sprintf("%s%s%s", pen, s, ansi.NormalPen)
}

// end a line of progress dots.
func (txt *Text) newline() {
	if txt.dots {
		fmt.Fprintln(txt.output)
		txt.dots = false
	}
}

// PreReset implements the verify.Reporter interface.
func (txt *Text) PreReset(s signal.Sample, b signal.Bidir) {
	txt.newline()
	fmt.Fprintf(txt.output, "Pre-reset state: uo_out=%s bidir=%s\n", s, b)
}

// PostReset implements the verify.Reporter interface.
func (txt *Text) PostReset(s signal.Sample, b signal.Bidir) {
	txt.newline()
	fmt.Fprintf(txt.output, "Post-reset state: uo_out=%s bidir=%s; expected uo_out=%s bidir=%s\n",
		s, b, verify.ResetOutput, verify.ResetBidir)
}

// Begin implements the verify.Reporter interface.
func (txt *Text) Begin(scn verify.Scenario) {
	txt.newline()
	txt.mismatches = 0

	switch scn {
	case verify.ScenarioReset:
		fmt.Fprintln(txt.output, "Resetting design...")
	case verify.ScenarioBasic:
		fmt.Fprintf(txt.output, "%s: Running basic test of first 2 video lines...\n", scn)
	case verify.ScenarioFrame:
		fmt.Fprintf(txt.output, "%s: Running a test of the first frame...\n", scn)
	}
}

// End implements the verify.Reporter interface.
func (txt *Text) End(res verify.Result) {
	txt.newline()

	if txt.MismatchLimit > 0 && txt.mismatches > txt.MismatchLimit {
		fmt.Fprintf(txt.output, "... %d more mismatches\n", txt.mismatches-txt.MismatchLimit)
	}

	fmt.Fprintf(txt.output, "%s done: %s\n\n", res.Scenario, txt.verdict(res))
}

func (txt *Text) verdict(res verify.Result) string {
	if res.Passed() {
		return txt.highlight(ansi.Pens["green"], "PASS")
	}

	s := strings.Builder{}
	s.WriteString(txt.highlight(ansi.Pens["red"], "FAIL"))
	s.WriteString(fmt.Sprintf(" (%d signal mismatches", len(res.Mismatches)))
	if res.Census != nil {
		s.WriteString(fmt.Sprintf(", %d census mismatches", len(res.CensusMismatches)))
	}
	s.WriteString(")")
	return s.String()
}

// Line implements the verify.Reporter interface.
func (txt *Text) Line(y int) {
	if !txt.Lines {
		return
	}
	txt.newline()
	fmt.Fprintf(txt.output, "Line %d:\n", y)
}

// Progress implements the verify.Reporter interface.
func (txt *Text) Progress(_ coords.Coords) {
	fmt.Fprint(txt.output, ".")
	txt.dots = true
}

// SignalMismatch implements the verify.Reporter interface.
func (txt *Text) SignalMismatch(m verify.Mismatch) {
	txt.mismatches++
	if txt.MismatchLimit > 0 && txt.mismatches > txt.MismatchLimit {
		return
	}

	txt.newline()

	label := "Error"
	if m.Port == verify.PortOutput && m.Fields == signal.MaskOf(signal.FieldVSync) {
		label = "VSYNC error"
	}

	fmt.Fprintf(txt.output, "%s %s: %s=%s; expected %s=%s",
		m.Coords.ShortString(), txt.highlight(ansi.Pens["red"], label), m.Port, m.Actual, m.Port, m.Expected)
	if m.Port == verify.PortOutput {
		fmt.Fprintf(txt.output, " (%s)", m.Fields)
	}
	fmt.Fprintln(txt.output)
}

// CensusTable implements the verify.Reporter interface.
func (txt *Text) CensusTable(cen *verify.Census, golden verify.Golden, mismatches []verify.CensusMismatch) {
	txt.newline()

	failed := make(map[signal.Color]bool)
	for _, m := range mismatches {
		failed[m.Color] = true
	}

	fmt.Fprintln(txt.output, "Counted pixel colours:")
	fmt.Fprintf(txt.output, "%-10s%10s%14s\n", "Color", "Actual", "Expected")
	for c, e := range golden {
		if !e.Constrained() {
			continue
		}
		col := signal.Color(c)
		fmt.Fprintf(txt.output, "%-10s%10d%14s", col, cen.Count(col), e)
		if failed[col] {
			fmt.Fprint(txt.output, txt.highlight(ansi.Pens["red"], " - ERROR"))
		}
		fmt.Fprintln(txt.output)
	}
}

// Summary prints the overall verdict of a verification run.
func (txt *Text) Summary(results []verify.Result) {
	txt.newline()
	fmt.Fprintln(txt.output, txt.highlight(ansi.PenStyles["bold"], "Summary:"))
	for _, r := range results {
		fmt.Fprintf(txt.output, "  %-12s%s\n", r.Scenario, txt.verdict(r))
	}
	if verify.Passed(results) {
		fmt.Fprintf(txt.output, "Verification %s\n", txt.highlight(ansi.Pens["green"], "passed"))
	} else {
		fmt.Fprintf(txt.output, "Verification %s\n", txt.highlight(ansi.Pens["red"], "failed"))
	}
}
