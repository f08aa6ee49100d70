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

// Package specification contains the definition of the video mode generated
// by the device under test.
//
// Each axis of the raster is divided into four periods, in this order:
//
//	visible, front porch, sync, back porch
//
// The back porch is not stored. It is whatever remains of the total once the
// other three periods have been accounted for.
package specification

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/vgaverify/curated"
)

// Sentinel error patterns for the specification package.
const (
	InvalidMode = "specification: %s: %s"
	UnknownMode = "specification: unknown mode %q"
)

// Mode is the geometry of a video mode, measured in pixel clocks horizontally
// and in lines vertically.
type Mode struct {
	ID string

	// PixelClock is the rate of the pixel clock in Hz
	PixelClock int

	HorizVisible    int
	HorizFrontPorch int
	HorizSync       int
	HorizTotal      int

	VertVisible    int
	VertFrontPorch int
	VertSync       int
	VertTotal      int
}

// VGA640x480 is the industry standard 640x480 mode at 60Hz with a 25.175MHz
// pixel clock.
var VGA640x480 = Mode{
	ID:              "VGA640x480",
	PixelClock:      25175000,
	HorizVisible:    640,
	HorizFrontPorch: 16,
	HorizSync:       96,
	HorizTotal:      800,
	VertVisible:     480,
	VertFrontPorch:  10,
	VertSync:        2,
	VertTotal:       525,
}

// ModeList is the list of modes that can be selected by ID.
var ModeList = []Mode{VGA640x480}

// SearchMode returns the mode with the matching ID. Case insensitive.
func SearchMode(id string) (Mode, error) {
	for _, m := range ModeList {
		if strings.EqualFold(m.ID, id) {
			return m, nil
		}
	}
	return Mode{}, curated.Errorf(UnknownMode, id)
}

func (m Mode) String() string {
	return fmt.Sprintf("%s (%dx%d in %dx%d)", m.ID, m.HorizVisible, m.VertVisible, m.HorizTotal, m.VertTotal)
}

// HorizBackPorch is the implied horizontal back porch.
func (m Mode) HorizBackPorch() int {
	return m.HorizTotal - m.HorizVisible - m.HorizFrontPorch - m.HorizSync
}

// VertBackPorch is the implied vertical back porch.
func (m Mode) VertBackPorch() int {
	return m.VertTotal - m.VertVisible - m.VertFrontPorch - m.VertSync
}

// HorizSyncStart is the first pixel of the horizontal sync pulse.
func (m Mode) HorizSyncStart() int {
	return m.HorizVisible + m.HorizFrontPorch
}

// HorizSyncEnd is the first pixel after the horizontal sync pulse.
func (m Mode) HorizSyncEnd() int {
	return m.HorizSyncStart() + m.HorizSync
}

// VertSyncStart is the first line of the vertical sync pulse.
func (m Mode) VertSyncStart() int {
	return m.VertVisible + m.VertFrontPorch
}

// VertSyncEnd is the first line after the vertical sync pulse.
func (m Mode) VertSyncEnd() int {
	return m.VertSyncStart() + m.VertSync
}

// ClocksPerFrame is the number of pixel clocks, and therefore samples, in one
// frame.
func (m Mode) ClocksPerFrame() int {
	return m.HorizTotal * m.VertTotal
}

// LineRate is the number of lines per second, rounded to the nearest integer.
func (m Mode) LineRate() int {
	return (m.PixelClock + m.HorizTotal/2) / m.HorizTotal
}

// Validate returns an error if the mode geometry is impossible.
func (m Mode) Validate() error {
	if m.PixelClock <= 0 {
		return curated.Errorf(InvalidMode, m.ID, "pixel clock must be positive")
	}
	if m.HorizVisible <= 0 || m.HorizFrontPorch < 0 || m.HorizSync <= 0 {
		return curated.Errorf(InvalidMode, m.ID, "horizontal periods must be positive")
	}
	if m.VertVisible <= 0 || m.VertFrontPorch < 0 || m.VertSync <= 0 {
		return curated.Errorf(InvalidMode, m.ID, "vertical periods must be positive")
	}
	if m.HorizBackPorch() < 0 {
		return curated.Errorf(InvalidMode, m.ID, "horizontal total is too short")
	}
	if m.VertBackPorch() < 0 {
		return curated.Errorf(InvalidMode, m.ID, "vertical total is too short")
	}
	return nil
}
