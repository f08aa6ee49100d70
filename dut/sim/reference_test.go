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

package sim

import (
	"testing"

	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/test"
)

func TestWallCorner(t *testing.T) {
	ref := NewReference()
	mode := ref.mode

	var yellow int
	for y := 0; y < mode.VertTotal; y++ {
		for x := 0; x < mode.HorizTotal; x++ {
			if ref.next(coords.Coords{X: x, Y: y}) == signal.Yellow {
				yellow++
			}
		}
	}

	// one short of the first frame's yellow count. the missing pixel is the
	// seed in the colour register
	test.ExpectEquality(t, yellow, 10159)
	test.ExpectEquality(t, ref.next(coords.Coords{X: mode.HorizVisible - 1, Y: mode.VertVisible - 1}), signal.Black)
	test.ExpectEquality(t, ref.next(coords.Coords{X: mode.HorizVisible - 2, Y: mode.VertVisible - 1}), signal.Yellow)
}
