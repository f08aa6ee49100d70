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
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
)

// Reporter receives the events of a verification run as they happen.
type Reporter interface {
	// the state of the ports before the device has been reset for the first
	// time. the values are likely to be random
	PreReset(signal.Sample, signal.Bidir)

	// the state of the ports immediately after reset
	PostReset(signal.Sample, signal.Bidir)

	Begin(Scenario)
	End(Result)

	// start of a new line in a scenario
	Line(y int)

	// a number of samples have matched the oracle
	Progress(coords.Coords)

	SignalMismatch(Mismatch)
	CensusTable(*Census, Golden, []CensusMismatch)
}

// NopReporter implements the Reporter interface and discards everything.
type NopReporter struct{}

// PreReset implements the Reporter interface.
func (NopReporter) PreReset(signal.Sample, signal.Bidir) {}

// PostReset implements the Reporter interface.
func (NopReporter) PostReset(signal.Sample, signal.Bidir) {}

// Begin implements the Reporter interface.
func (NopReporter) Begin(Scenario) {}

// End implements the Reporter interface.
func (NopReporter) End(Result) {}

// Line implements the Reporter interface.
func (NopReporter) Line(int) {}

// Progress implements the Reporter interface.
func (NopReporter) Progress(coords.Coords) {}

// SignalMismatch implements the Reporter interface.
func (NopReporter) SignalMismatch(Mismatch) {}

// CensusTable implements the Reporter interface.
func (NopReporter) CensusTable(*Census, Golden, []CensusMismatch) {}

// Sink implementations observe every sample of the frame scenario.
type Sink interface {
	Sample(coords.Coords, signal.Sample) error

	// called after the last sample of every frame
	EndFrame(frame int) error
}
