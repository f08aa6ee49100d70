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

package dut

// AdapterError is the sentinel pattern for all errors returned by Adapter
// implementations. An AdapterError aborts the verification run.
const AdapterError = "dut: %v"

// Adapter is the minimal interface required to drive the device under test.
// All methods are synchronous.
type Adapter interface {
	// SetReset asserts or deasserts the reset input of the device. No clock
	// edge is implied.
	SetReset(bool) error

	// StepClock advances the device by exactly one clock edge.
	StepClock() error

	// ReadOutput and ReadBidir sample the current state of the output and
	// bidirectional ports.
	ReadOutput() (uint8, error)
	ReadBidir() (uint8, error)

	// WriteInput drives the input port of the device.
	WriteInput(uint8) error
}
