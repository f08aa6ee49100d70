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

package sim_test

import (
	"testing"

	"github.com/jetsetilly/vgaverify/dut"
	"github.com/jetsetilly/vgaverify/dut/sim"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/oracle"
	"github.com/jetsetilly/vgaverify/test"
)

// both simulations must satisfy the adapter interface
var _ dut.Adapter = (*sim.Fixed)(nil)
var _ dut.Adapter = (*sim.Reference)(nil)

func reset(t *testing.T, adapter dut.Adapter) {
	t.Helper()
	test.DemandSuccess(t, adapter.SetReset(true))
	for i := 0; i < 3; i++ {
		test.DemandSuccess(t, adapter.StepClock())
	}
	test.DemandSuccess(t, adapter.SetReset(false))
}

func read(t *testing.T, adapter dut.Adapter) signal.Sample {
	t.Helper()
	v, err := adapter.ReadOutput()
	test.DemandSuccess(t, err)
	return signal.Sample(v)
}

func TestFixed(t *testing.T) {
	f := &sim.Fixed{Output: 0b11011110, Bidir: 0b11111000}
	reset(t, f)

	for i := 0; i < 1000; i++ {
		test.DemandSuccess(t, f.StepClock())
	}
	test.DemandSuccess(t, f.WriteInput(0x55))

	test.ExpectEquality(t, read(t, f), 0b11011110)
	v, err := f.ReadBidir()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0b11111000)
	test.ExpectEquality(t, f.Clocks, 1003)
	test.ExpectEquality(t, f.Input, 0x55)
	test.ExpectFailure(t, f.Reset)
}

func TestReferenceReset(t *testing.T) {
	ref := sim.NewReference()

	// the model does not start in the reset state
	test.ExpectInequality(t, read(t, ref), 0b11011110)

	for i := 0; i < 2; i++ {
		reset(t, ref)
		test.ExpectEquality(t, read(t, ref), 0b11011110, "reset", i)
		v, err := ref.ReadBidir()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, v, 0b11111000, "reset", i)
	}

	// run for a while and reset again
	for i := 0; i < 12345; i++ {
		test.DemandSuccess(t, ref.StepClock())
	}
	test.ExpectInequality(t, read(t, ref), 0b11011110)
	reset(t, ref)
	test.ExpectEquality(t, read(t, ref), 0b11011110)
}

func TestReferenceTiming(t *testing.T) {
	mode := specification.VGA640x480
	tm := oracle.NewTiming(mode)
	colour := oracle.NewRegistered(mode, oracle.ReferenceSeed)

	ref := sim.NewReference()
	reset(t, ref)

	var c coords.Coords
	for c.Frame < 2 {
		s := read(t, ref)

		// everything but the colour
		exp := tm.Expected(c)
		if !test.ExpectEquality(t, s&^signal.Layout[signal.FieldColor].Mask(), exp, c.ShortString()) {
			return
		}

		if colour.Covers(c) {
			if !test.ExpectEquality(t, s.Color(), colour.Expected(c), c.ShortString()) {
				return
			}
		}

		test.DemandSuccess(t, ref.StepClock())
		c.Advance(mode)
	}
}

func TestReferenceCensus(t *testing.T) {
	mode := specification.VGA640x480

	ref := sim.NewReference()
	reset(t, ref)

	// several frames so that the ball has moved
	for frame := 0; frame < 3; frame++ {
		var counts [signal.NumColors]int
		for i := 0; i < mode.ClocksPerFrame(); i++ {
			counts[read(t, ref).Color()]++
			test.DemandSuccess(t, ref.StepClock())
		}

		// the first frame after reset includes the reset value of the
		// colour register. subsequent frames instead include the colour
		// latched on the final clock of the previous frame, which is black
		yellow := 10160
		if frame > 0 {
			yellow--
		}

		test.ExpectEquality(t, counts[signal.Green], 41808, "frame", frame)
		test.ExpectEquality(t, counts[signal.Red], 2048, "frame", frame)
		test.ExpectEquality(t, counts[signal.Yellow], yellow, "frame", frame)
		test.ExpectEquality(t, counts[signal.Cyan], 0, "frame", frame)
		test.ExpectEquality(t, counts[signal.Magenta], 0, "frame", frame)
		test.ExpectEquality(t, counts[signal.White], 0, "frame", frame)
		test.ExpectApproximate(t, counts[signal.Blue], 46992, 0.05, "frame", frame)

		sum := 0
		for _, n := range counts {
			sum += n
		}
		test.ExpectEquality(t, sum, mode.ClocksPerFrame(), "frame", frame)
	}
}
