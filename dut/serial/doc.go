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

// Package serial implements the dut.Adapter interface for a board connected
// to the host over a USB-serial link.
//
// The firmware on the board drives the pins of the device under test on
// behalf of the host. Every command is a single opcode byte, optionally
// followed by a single argument byte. Every command is answered with a single
// byte:
//
//	'R' 0|1   set reset input             reply '.'
//	'C'       one clock edge              reply '.'
//	'O'       read output port            reply is the port value
//	'B'       read bidirectional port     reply is the port value
//	'I' n     write n to the input port   reply '.'
//
// The firmware configures all bidirectional pins as inputs when it starts.
package serial
