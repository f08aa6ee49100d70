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

// Package dut defines the contract between the verification engine and the
// device under test.
//
// An Adapter drives the device one clock edge at a time. Implementations are
// found in the sim package (cycle models of the device, for use without any
// hardware attached) and the serial package (a board connected over a
// USB-serial link).
//
// Pin direction and any other board configuration is the responsibility of the
// Adapter implementation and is performed before the Adapter is handed to the
// verification engine.
package dut
