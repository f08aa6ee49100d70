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

package oracle_test

import (
	"testing"

	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/oracle"
	"github.com/jetsetilly/vgaverify/test"
)

func TestSync(t *testing.T) {
	tm := oracle.NewTiming(specification.VGA640x480)

	for x := 0; x < 800; x++ {
		hsync, _ := tm.Sync(coords.Coords{X: x})
		active := x >= 656 && x < 752
		test.ExpectEquality(t, hsync == 0, active, "x", x)
	}

	for y := 0; y < 525; y++ {
		_, vsync := tm.Sync(coords.Coords{Y: y})
		active := y >= 490 && y < 492
		test.ExpectEquality(t, vsync == 0, active, "y", y)
	}
}

func TestPosition(t *testing.T) {
	tm := oracle.NewTiming(specification.VGA640x480)

	for x := 0; x < 800; x++ {
		col0, _ := tm.Position(coords.Coords{X: x, Y: 7})
		test.ExpectEquality(t, col0 == 1, x == 0, "x", x)
	}

	for y := 0; y < 525; y++ {
		_, row0 := tm.Position(coords.Coords{X: 9, Y: y})
		test.ExpectEquality(t, row0 == 1, y == 0, "y", y)
	}
}

func TestExpected(t *testing.T) {
	tm := oracle.NewTiming(specification.VGA640x480)

	// origin matches the reset pattern with the colour bits masked away
	test.ExpectEquality(t, tm.Expected(coords.Coords{}), 0b11011000)

	// in hsync on row 0
	test.ExpectEquality(t, tm.Expected(coords.Coords{X: 700}), 0b10010000)

	// in vsync and hsync
	test.ExpectEquality(t, tm.Expected(coords.Coords{X: 700, Y: 491}), 0b00000000)

	// nothing special
	test.ExpectEquality(t, tm.Expected(coords.Coords{X: 100, Y: 100}), 0b00011000)
}

func TestRegisteredColor(t *testing.T) {
	mode := specification.VGA640x480
	reg := oracle.NewRegistered(mode, oracle.ReferenceSeed)

	var c coords.Coords
	var got [oracle.ReferenceRows][800]signal.Color
	for c.Y < oracle.ReferenceRows {
		test.DemandSuccess(t, reg.Covers(c))
		got[c.Y][c.X] = reg.Expected(c)
		c.Advance(mode)
	}
	test.ExpectFailure(t, reg.Covers(c))

	// first row: seeded yellow at x=0, then the colour computed one clock
	// earlier. the transition pixel at 640 is still yellow
	for x := 0; x <= 640; x++ {
		test.ExpectEquality(t, got[0][x], signal.Yellow, "row 0 x", x)
	}
	for x := 641; x < 800; x++ {
		test.ExpectEquality(t, got[0][x], signal.Black, "row 0 x", x)
	}

	// second row: the first pixel was latched at the end of the previous line
	test.ExpectEquality(t, got[1][0], signal.Black)
	for x := 1; x <= 640; x++ {
		test.ExpectEquality(t, got[1][x], signal.Yellow, "row 1 x", x)
	}
	for x := 641; x < 800; x++ {
		test.ExpectEquality(t, got[1][x], signal.Black, "row 1 x", x)
	}

	// the colour at x always equals the next colour computed at x-1
	prior := oracle.ReferenceSeed
	for x := 0; x < 800; x++ {
		color, next := oracle.RegisteredColor(mode, coords.Coords{X: x}, prior)
		test.ExpectEquality(t, color, prior)
		if x > 0 {
			test.ExpectEquality(t, color, oracle.ReferenceNextColor(mode, coords.Coords{X: x - 1}))
		}
		prior = next
	}
}

func TestRegisteredReset(t *testing.T) {
	mode := specification.VGA640x480
	reg := oracle.NewRegistered(mode, oracle.ReferenceSeed)

	reg.Expected(coords.Coords{X: 700})
	test.ExpectEquality(t, reg.Expected(coords.Coords{X: 701}), signal.Black)

	reg.Reset()
	test.ExpectEquality(t, reg.Expected(coords.Coords{}), signal.Yellow)
}
