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

package oracle

import (
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
)

// ReferenceRows is the number of rows, from the top of the frame, for which
// the colour output of the reference design is known.
const ReferenceRows = 2

// ReferenceSeed is the colour held in the output register immediately after
// reset.
const ReferenceSeed = signal.Yellow

// ReferenceNextColor is the colour the reference design latches into the
// output register at the coordinate. Only meaningful for the first
// ReferenceRows rows after a reset: the top edge of the top wall, which is
// yellow across the visible width.
func ReferenceNextColor(mode specification.Mode, c coords.Coords) signal.Color {
	if c.X < mode.HorizVisible {
		return signal.Yellow
	}
	return signal.Black
}

// RegisteredColor is one step of the output register. The colour seen at the
// coordinate is the colour latched at the previous coordinate (priorNext). The
// returned next value must be supplied as priorNext for the following
// coordinate.
func RegisteredColor(mode specification.Mode, c coords.Coords, priorNext signal.Color) (color signal.Color, next signal.Color) {
	return priorNext, ReferenceNextColor(mode, c)
}

// Registered is the colour oracle for the reference design. It must be
// consulted once for every coordinate, in raster order, starting at the first
// coordinate after reset.
type Registered struct {
	mode specification.Mode
	seed signal.Color
	next signal.Color
}

// NewRegistered is the preferred method of initialisation for the Registered
// type. The seed is the value of the output register at the first coordinate.
func NewRegistered(mode specification.Mode, seed signal.Color) *Registered {
	o := &Registered{
		mode: mode,
		seed: seed,
	}
	o.Reset()
	return o
}

// Reset the oracle to the seed value. Should be called whenever the device
// under test is reset.
func (o *Registered) Reset() {
	o.next = o.seed
}

// Covers returns true if the reference behaviour is known for the coordinate.
func (o *Registered) Covers(c coords.Coords) bool {
	return c.Frame == 0 && c.Y < ReferenceRows
}

// Expected returns the colour that should be seen at the coordinate and
// advances the register.
func (o *Registered) Expected(c coords.Coords) signal.Color {
	var color signal.Color
	color, o.next = RegisteredColor(o.mode, c, o.next)
	return color
}
