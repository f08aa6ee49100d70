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

package serial

import (
	"fmt"

	"github.com/jetsetilly/vgaverify/paths"
	"github.com/jetsetilly/vgaverify/prefs"
)

// default values for the serial link
const (
	DefaultDevice = "/dev/ttyACM0"
	DefaultBaud   = 115200
)

// Preferences for the serial link.
type Preferences struct {
	dsk *prefs.Disk

	Device prefs.String
	Baud   prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.Baud.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("serial: baud rate must be positive")
		}
		return nil
	})
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.device", &p.Device)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.baud", &p.Baud)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Device.Set(DefaultDevice)
	_ = p.Baud.Set(DefaultBaud)
}

// Load serial preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save serial preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
