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

// Timing oracle for the sync and position outputs.
type Timing struct {
	mode specification.Mode
}

// NewTiming is the preferred method of initialisation for the Timing type.
func NewTiming(mode specification.Mode) *Timing {
	return &Timing{mode: mode}
}

// Mode returns the video mode used by the oracle.
func (t *Timing) Mode() specification.Mode {
	return t.mode
}

// Sync returns the expected level of the active low sync outputs.
func (t *Timing) Sync(c coords.Coords) (hsync uint8, vsync uint8) {
	hsync = 1
	if c.X >= t.mode.HorizSyncStart() && c.X < t.mode.HorizSyncEnd() {
		hsync = 0
	}
	vsync = 1
	if c.Y >= t.mode.VertSyncStart() && c.Y < t.mode.VertSyncEnd() {
		vsync = 0
	}
	return hsync, vsync
}

// Position returns the expected level of the col0 and row0 outputs.
func (t *Timing) Position(c coords.Coords) (col0 uint8, row0 uint8) {
	if c.X == 0 {
		col0 = 1
	}
	if c.Y == 0 {
		row0 = 1
	}
	return col0, row0
}

// Expected returns a Sample with all the unregistered fields set to their
// expected values. The speaker is always off. The colour field is zero.
func (t *Timing) Expected(c coords.Coords) signal.Sample {
	hsync, vsync := t.Sync(c)
	col0, row0 := t.Position(c)

	var s signal.Sample
	s = s.Set(signal.FieldHSync, hsync)
	s = s.Set(signal.FieldVSync, vsync)
	s = s.Set(signal.FieldCol0, col0)
	s = s.Set(signal.FieldRow0, row0)
	s = s.Set(signal.FieldSpeaker, 0)
	return s
}
