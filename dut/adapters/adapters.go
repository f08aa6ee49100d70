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

// Package adapters creates a dut.Adapter from the name given on the command
// line or stored in a regression entry. Names are case insensitive.
//
//	SIM     the reference design simulation in the dut/sim package
//	FIXED   a device that holds the reset pattern on its outputs
//	SERIAL  a physical board reached through the dut/serial protocol
//
// For the SERIAL adapter an empty device or zero baud rate means the value
// stored in the serial preferences.
package adapters

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/dut"
	"github.com/jetsetilly/vgaverify/dut/serial"
	"github.com/jetsetilly/vgaverify/dut/sim"
	"github.com/jetsetilly/vgaverify/logger"
	"github.com/jetsetilly/vgaverify/verify"
)

// UnknownAdapter is returned by Create when the adapter name is not
// recognised.
const UnknownAdapter = "adapters: unknown adapter %q"

// List of adapter names accepted by Create.
var List = []string{"SIM", "FIXED", "SERIAL"}

// Link is the result of a successful Create.
type Link struct {
	dut.Adapter

	// Name of the adapter, normalised to upper case
	Name string

	// Device and Baud are only meaningful for the SERIAL adapter
	Device string
	Baud   int

	close func() error
}

func (lnk Link) String() string {
	if lnk.Name == "SERIAL" {
		return fmt.Sprintf("%s %s@%d", lnk.Name, lnk.Device, lnk.Baud)
	}
	return lnk.Name
}

// Close the underlying connection, if there is one.
func (lnk Link) Close() error {
	if lnk.close == nil {
		return nil
	}
	return lnk.close()
}

// Create is the preferred method of initialisation for an adapter.
func Create(name string, device string, baud int) (*Link, error) {
	lnk := &Link{Name: strings.ToUpper(name)}

	switch lnk.Name {
	case "SIM":
		lnk.Adapter = sim.NewReference()

	case "FIXED":
		lnk.Adapter = &sim.Fixed{Output: uint8(verify.ResetOutput), Bidir: uint8(verify.ResetBidir)}

	case "SERIAL":
		if device == "" || baud == 0 {
			sprefs, err := serial.NewPreferences()
			if err != nil {
				return nil, err
			}
			if device == "" {
				device = sprefs.Device.Get().(string)
			}
			if baud == 0 {
				baud = sprefs.Baud.Get().(int)
			}
		}

		ser, err := serial.Open(device, baud)
		if err != nil {
			return nil, err
		}

		lnk.Adapter = ser
		lnk.Device = device
		lnk.Baud = baud
		lnk.close = ser.Close
		logger.Logf(logger.Allow, "adapters", "opened %s at %d baud", device, baud)

	default:
		return nil, curated.Errorf(UnknownAdapter, name)
	}

	return lnk, nil
}
