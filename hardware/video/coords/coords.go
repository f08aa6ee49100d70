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

// Package coords represents and can work with raster coordinates.
//
// Coordinates are a measurement of time. The device under test advances by
// one pixel every clock edge so the coordinate of a sample says *when* the
// sample was taken relative to the most recent reset, as well as *where* on
// the screen the pixel would be drawn.
package coords

import (
	"fmt"

	"github.com/jetsetilly/vgaverify/hardware/video/specification"
)

// Coords represents the raster position of a single sample. The zero value is
// the first pixel of the first frame.
type Coords struct {
	Frame int
	Y     int
	X     int
}

func (c Coords) String() string {
	return fmt.Sprintf("Frame: %d  Y: %03d  X: %03d", c.Frame, c.Y, c.X)
}

// ShortString returns the coordinate in the form [x,y].
func (c Coords) ShortString() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}

// Reset coordinates to the zero value.
func (c *Coords) Reset() {
	c.Frame = 0
	c.Y = 0
	c.X = 0
}

// Advance the coordinates by one pixel clock. X wraps at the end of the line,
// incrementing Y. Y wraps at the end of the frame, incrementing Frame.
//
// Returns true if the new position is at the start of a new line.
func (c *Coords) Advance(mode specification.Mode) bool {
	c.X++
	if c.X < mode.HorizTotal {
		return false
	}
	c.X = 0
	c.Y++
	if c.Y >= mode.VertTotal {
		c.Y = 0
		c.Frame++
	}
	return true
}

// Equal compares two instances of Coords.
func Equal(A, B Coords) bool {
	return A.Frame == B.Frame && A.Y == B.Y && A.X == B.X
}

// GreaterThan returns true if A is later in time than B.
func GreaterThan(A, B Coords) bool {
	if A.Frame != B.Frame {
		return A.Frame > B.Frame
	}
	if A.Y != B.Y {
		return A.Y > B.Y
	}
	return A.X > B.X
}

// Sum returns the number of clocks between the zero value and the Coords.
func Sum(A Coords, mode specification.Mode) int {
	return (A.Frame * mode.ClocksPerFrame()) + (A.Y * mode.HorizTotal) + A.X
}

// FromSum is the reverse of Sum(). A negative sum returns the zero value.
func FromSum(sum int, mode specification.Mode) Coords {
	if sum < 0 {
		return Coords{}
	}
	return Coords{
		Frame: sum / mode.ClocksPerFrame(),
		Y:     (sum % mode.ClocksPerFrame()) / mode.HorizTotal,
		X:     sum % mode.HorizTotal,
	}
}

// InVisible returns true if the coordinate is inside the visible area of the
// mode.
func InVisible(A Coords, mode specification.Mode) bool {
	return A.X < mode.HorizVisible && A.Y < mode.VertVisible
}
