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

// Fixed is a device that never changes. The value of Output and Bidir is
// returned by ReadOutput() and ReadBidir() respectively.
type Fixed struct {
	Output uint8
	Bidir  uint8

	// the number of clock edges and the last value written to the input port.
	// these have no effect on the outputs
	Clocks int
	Input  uint8
	Reset  bool
}

// SetReset implements the dut.Adapter interface.
func (f *Fixed) SetReset(reset bool) error {
	f.Reset = reset
	return nil
}

// StepClock implements the dut.Adapter interface.
func (f *Fixed) StepClock() error {
	f.Clocks++
	return nil
}

// ReadOutput implements the dut.Adapter interface.
func (f *Fixed) ReadOutput() (uint8, error) {
	return f.Output, nil
}

// ReadBidir implements the dut.Adapter interface.
func (f *Fixed) ReadBidir() (uint8, error) {
	return f.Bidir, nil
}

// WriteInput implements the dut.Adapter interface.
func (f *Fixed) WriteInput(v uint8) error {
	f.Input = v
	return nil
}
