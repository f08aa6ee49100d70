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

package report_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/report"
	"github.com/jetsetilly/vgaverify/report/ansi"
	"github.com/jetsetilly/vgaverify/test"
	"github.com/jetsetilly/vgaverify/verify"
)

func TestResetReport(t *testing.T) {
	w := &test.CompareWriter{}
	txt := report.NewText(w)
	test.ExpectFailure(t, txt.Highlight)

	txt.PreReset(0b00011000, 0b11111000)
	test.ExpectEquality(t, w.String(), "Pre-reset state: uo_out=00011000 bidir=11111000\n")

	w.Clear()
	txt.Begin(verify.ScenarioReset)
	txt.PostReset(verify.ResetOutput, verify.ResetBidir)
	txt.End(verify.Result{Scenario: verify.ScenarioReset})
	test.ExpectEquality(t, w.String(), "Resetting design...\n"+
		"Post-reset state: uo_out=11011110 bidir=11111000; expected uo_out=11011110 bidir=11111000\n"+
		"RESET_TEST done: PASS\n\n")
}

func TestBasicReport(t *testing.T) {
	w := &test.CompareWriter{}
	txt := report.NewText(w)

	m := verify.Mismatch{
		Coords:   coords.Coords{X: 640, Y: 0},
		Port:     verify.PortOutput,
		Actual:   0b10011000,
		Expected: 0b10011110,
		Fields:   signal.MaskOf(signal.FieldColor),
	}

	txt.Begin(verify.ScenarioBasic)
	txt.Line(0)
	txt.Progress(coords.Coords{X: 0})
	txt.Progress(coords.Coords{X: 16})
	txt.Progress(coords.Coords{X: 32})
	txt.SignalMismatch(m)
	txt.Progress(coords.Coords{X: 656})
	txt.End(verify.Result{Scenario: verify.ScenarioBasic, Mismatches: []verify.Mismatch{m}})

	test.ExpectEquality(t, w.String(), "BASIC_TEST: Running basic test of first 2 video lines...\n"+
		"Line 0:\n"+
		"...\n"+
		"[640,0] Error: uo_out=10011000; expected uo_out=10011110 (color)\n"+
		".\n"+
		"BASIC_TEST done: FAIL (1 signal mismatches)\n\n")
}

func TestFrameReport(t *testing.T) {
	w := &test.CompareWriter{}
	txt := report.NewText(w)
	txt.Lines = false
	txt.MismatchLimit = 2

	txt.Begin(verify.ScenarioFrame)
	txt.Line(0)

	var res verify.Result
	res.Scenario = verify.ScenarioFrame
	for x := 0; x < 3; x++ {
		m := verify.Mismatch{
			Coords:   coords.Coords{X: x, Y: 490},
			Port:     verify.PortOutput,
			Actual:   0b00011000,
			Expected: 0b00001000,
			Fields:   signal.MaskOf(signal.FieldVSync),
		}
		res.Mismatches = append(res.Mismatches, m)
		txt.SignalMismatch(m)
	}

	var cen verify.Census
	for i := 0; i < 2048; i++ {
		cen.Accumulate(signal.Red)
	}
	for i := 0; i < 5; i++ {
		cen.Accumulate(signal.White)
	}
	res.Census = &cen
	res.CensusMismatches = cen.Verify(verify.ReferenceGolden)

	w.Clear()
	txt.CensusTable(res.Census, verify.ReferenceGolden, res.CensusMismatches)
	txt.End(res)

	lines := strings.Split(w.String(), "\n")
	test.DemandEquality(t, len(lines), 13)
	test.ExpectEquality(t, lines[0], "Counted pixel colours:")
	test.ExpectEquality(t, lines[1], fmt.Sprintf("%-10s%10s%14s", "Color", "Actual", "Expected"))
	test.ExpectEquality(t, lines[2], fmt.Sprintf("%-10s%10d%14s - ERROR", "Blue", 0, "44485..49498"))
	test.ExpectEquality(t, lines[3], fmt.Sprintf("%-10s%10d%14s - ERROR", "Green", 0, "41808"))
	test.ExpectEquality(t, lines[4], fmt.Sprintf("%-10s%10d%14s", "Cyan", 0, "0"))
	test.ExpectEquality(t, lines[5], fmt.Sprintf("%-10s%10d%14s", "Red", 2048, "2048"))
	test.ExpectEquality(t, lines[8], fmt.Sprintf("%-10s%10d%14s - ERROR", "White", 5, "0"))
	test.ExpectEquality(t, lines[9], "... 1 more mismatches")
	test.ExpectEquality(t, lines[10], "FRAME_TEST done: FAIL (3 signal mismatches, 4 census mismatches)")
}

func TestVSyncMismatch(t *testing.T) {
	w := &test.CompareWriter{}
	txt := report.NewText(w)

	txt.SignalMismatch(verify.Mismatch{
		Coords:   coords.Coords{X: 10, Y: 490},
		Port:     verify.PortOutput,
		Actual:   0b00011000,
		Expected: 0b00001000,
		Fields:   signal.MaskOf(signal.FieldVSync),
	})
	txt.SignalMismatch(verify.Mismatch{
		Port:     verify.PortBidir,
		Actual:   0b00000000,
		Expected: 0b11111000,
	})

	test.ExpectEquality(t, w.String(), "[10,490] VSYNC error: uo_out=00011000; expected uo_out=00001000 (vsync)\n"+
		"[0,0] Error: bidir=00000000; expected bidir=11111000\n")
}

func TestSummary(t *testing.T) {
	w := &test.CompareWriter{}
	txt := report.NewText(w)

	txt.Summary([]verify.Result{
		{Scenario: verify.ScenarioReset},
		{Scenario: verify.ScenarioBasic},
	})
	test.ExpectEquality(t, w.String(), "Summary:\n"+
		fmt.Sprintf("  %-12s%s\n", "RESET_TEST", "PASS")+
		fmt.Sprintf("  %-12s%s\n", "BASIC_TEST", "PASS")+
		"Verification passed\n")
}

func TestHighlight(t *testing.T) {
	w := &test.CompareWriter{}
	txt := report.NewText(w)
	txt.Highlight = true

	txt.End(verify.Result{Scenario: verify.ScenarioReset})
	test.ExpectEquality(t, w.String(), "RESET_TEST done: "+ansi.Pens["green"]+"PASS"+ansi.NormalPen+"\n\n")

	w.Clear()
	txt.End(verify.Result{Scenario: verify.ScenarioBasic, Mismatches: []verify.Mismatch{{}}})
	test.ExpectEquality(t, w.String(), "BASIC_TEST done: "+ansi.Pens["red"]+"FAIL"+ansi.NormalPen+" (1 signal mismatches)\n\n")
}
