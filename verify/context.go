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
	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/dut"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
)

// SuiteError is the sentinel pattern for fatal errors during a verification
// run.
const SuiteError = "verify: %v"

// Context holds the state of a verification run.
type Context struct {
	Adapter dut.Adapter
	Mode    specification.Mode

	// position of the next sample
	Coords coords.Coords

	// colour statistics for the current frame scenario
	Census Census

	// log every event, including those inside sample loops
	Verbose bool

	// set while inside a sample loop
	quiet bool
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(adapter dut.Adapter, mode specification.Mode) (*Context, error) {
	if adapter == nil {
		return nil, curated.Errorf(SuiteError, "no adapter")
	}
	if err := mode.Validate(); err != nil {
		return nil, curated.Errorf(SuiteError, err)
	}
	return &Context{
		Adapter: adapter,
		Mode:    mode,
	}, nil
}

// AllowLogging implements the logger.Permission interface. Logging is
// suppressed inside a sample loop unless Verbose is set.
func (ctx *Context) AllowLogging() bool {
	return ctx.Verbose || !ctx.quiet
}

// SampleOutputs reads both the output port and the bidirectional port. It
// should be called exactly once for each clock edge.
func (ctx *Context) SampleOutputs() (signal.Sample, signal.Bidir, error) {
	s, err := ctx.SampleOutput()
	if err != nil {
		return 0, 0, err
	}
	b, err := ctx.Adapter.ReadBidir()
	if err != nil {
		return 0, 0, curated.Errorf(SuiteError, err)
	}
	return s, signal.Bidir(b), nil
}

// SampleOutput reads just the output port.
func (ctx *Context) SampleOutput() (signal.Sample, error) {
	v, err := ctx.Adapter.ReadOutput()
	if err != nil {
		return 0, curated.Errorf(SuiteError, err)
	}
	return signal.Sample(v), nil
}

// Step the device by one clock edge and advance the coordinates.
func (ctx *Context) Step() error {
	if err := ctx.Adapter.StepClock(); err != nil {
		return curated.Errorf(SuiteError, err)
	}
	ctx.Coords.Advance(ctx.Mode)
	return nil
}
