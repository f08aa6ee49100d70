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

package verify

import (
	"fmt"

	"github.com/jetsetilly/vgaverify/paths"
	"github.com/jetsetilly/vgaverify/prefs"
)

// DefaultProgressInterval is the number of matching samples between progress
// reports in the basic scenario.
const DefaultProgressInterval = 16

// Config selects the scenarios in a verification run.
type Config struct {
	Basic bool
	Frame bool

	// number of matching samples between calls to Reporter.Progress(). a
	// value of zero disables progress reports
	ProgressInterval int

	Verbose bool
}

// DefaultConfig runs every scenario.
func DefaultConfig() Config {
	return Config{
		Basic:            true,
		Frame:            true,
		ProgressInterval: DefaultProgressInterval,
	}
}

// Preferences for the verification engine.
type Preferences struct {
	dsk *prefs.Disk

	Basic    prefs.Bool
	Frame    prefs.Bool
	Progress prefs.Int
	Verbose  prefs.Bool
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

	p.Progress.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("verify: progress interval cannot be negative")
		}
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("verify.basic", &p.Basic)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("verify.frame", &p.Frame)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("verify.progress", &p.Progress)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("verify.verbose", &p.Verbose)
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
	cfg := DefaultConfig()
	_ = p.Basic.Set(cfg.Basic)
	_ = p.Frame.Set(cfg.Frame)
	_ = p.Progress.Set(cfg.ProgressInterval)
	_ = p.Verbose.Set(cfg.Verbose)
}

// Load verification preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save verification preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config from the current preference values.
func (p *Preferences) Config() Config {
	return Config{
		Basic:            p.Basic.Get().(bool),
		Frame:            p.Frame.Get().(bool),
		ProgressInterval: p.Progress.Get().(int),
		Verbose:          p.Verbose.Get().(bool),
	}
}
