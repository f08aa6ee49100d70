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

// Package sim provides simulated implementations of the dut.Adapter interface.
//
// Fixed returns the same values from its ports regardless of how it is driven.
// It is useful for testing the verification engine itself.
//
// Reference is a cycle model of the reference design: a squash court drawn on
// a 640x480 display. The court has walls made of 32x32 blocks along the top,
// bottom and right hand side of the screen, a red paddle, a green ball and a
// speckled blue background. Sync and position outputs are combinational. The
// colour output is registered.
package sim
