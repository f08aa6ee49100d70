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

// Package oracle computes what the outputs of the device under test should be
// at any raster coordinate.
//
// The Timing oracle covers the unregistered outputs: hsync, vsync, col0, row0
// and speaker. These are pure functions of the coordinate with no pipeline
// delay.
//
// The colour outputs of the reference design are registered. The colour seen
// at a coordinate was latched on the previous clock edge, so the colour oracle
// carries the next colour from one sample to the next. See Registered.
package oracle
