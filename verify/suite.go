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
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/logger"
	"github.com/jetsetilly/vgaverify/oracle"
)

// Scenario identifies a part of the verification run.
type Scenario int

// List of valid Scenario values.
const (
	ScenarioReset Scenario = iota
	ScenarioBasic
	ScenarioFrame
)

func (s Scenario) String() string {
	switch s {
	case ScenarioReset:
		return "RESET_TEST"
	case ScenarioBasic:
		return "BASIC_TEST"
	case ScenarioFrame:
		return "FRAME_TEST"
	}
	return "unknown scenario"
}

// Result of a single scenario.
type Result struct {
	Scenario Scenario

	// number of samples taken
	Samples int

	Mismatches []Mismatch

	// census is only collected by the frame scenario
	Census           *Census
	CensusMismatches []CensusMismatch
}

// Passed returns true if there were no mismatches of any kind.
func (r Result) Passed() bool {
	return len(r.Mismatches) == 0 && len(r.CensusMismatches) == 0
}

// Passed returns true if every Result passed.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Passed() {
			return false
		}
	}
	return true
}

// the number of lines checked by the basic scenario
const basicLines = oracle.ReferenceRows

// Suite runs the scenarios selected by a Config.
type Suite struct {
	ctx *Context
	cfg Config

	// the expected colour counts for the frame scenario. defaults to
	// ReferenceGolden
	Golden Golden

	// defaults to NopReporter
	Reporter Reporter

	sinks []Sink

	reset  *ResetSequencer
	timing *oracle.Timing
	color  *oracle.Registered
}

// NewSuite is the preferred method of initialisation for the Suite type.
func NewSuite(ctx *Context, cfg Config) *Suite {
	ctx.Verbose = ctx.Verbose || cfg.Verbose
	return &Suite{
		ctx:      ctx,
		cfg:      cfg,
		Golden:   ReferenceGolden,
		Reporter: NopReporter{},
		reset:    NewResetSequencer(ctx),
		timing:   oracle.NewTiming(ctx.Mode),
		color:    oracle.NewRegistered(ctx.Mode, oracle.ReferenceSeed),
	}
}

// AddSink adds a Sink to the frame scenario.
func (su *Suite) AddSink(s Sink) {
	su.sinks = append(su.sinks, s)
}

// Run every scenario selected by the Config. The reset scenario is always
// run. The results of the completed scenarios are returned even if there is
// an error.
func (su *Suite) Run() ([]Result, error) {
	var results []Result

	if err := su.PreReset(); err != nil {
		return results, err
	}

	r, err := su.RunReset()
	if err != nil {
		return results, err
	}
	results = append(results, r)

	if su.cfg.Basic {
		r, err = su.RunBasic()
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}

	if su.cfg.Frame {
		r, err = su.RunFrame()
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}

	return results, nil
}

// PreReset puts the device into a known input state without resetting it and
// reports the state of the outputs.
func (su *Suite) PreReset() error {
	if err := su.ctx.Adapter.SetReset(false); err != nil {
		return curated.Errorf(SuiteError, err)
	}
	if err := su.ctx.Adapter.WriteInput(0); err != nil {
		return curated.Errorf(SuiteError, err)
	}

	s, b, err := su.ctx.SampleOutputs()
	if err != nil {
		return err
	}
	su.Reporter.PreReset(s, b)
	logger.Logf(su.ctx, "verify", "pre-reset state: uo_out=%s bidir=%s", s, b)

	return nil
}

// RunReset resets the device and checks the state of both ports.
func (su *Suite) RunReset() (Result, error) {
	res := Result{Scenario: ScenarioReset}
	su.Reporter.Begin(res.Scenario)

	if err := su.reset.Run(); err != nil {
		return res, err
	}
	su.color.Reset()

	s, b, err := su.ctx.SampleOutputs()
	if err != nil {
		return res, err
	}
	res.Samples++
	su.Reporter.PostReset(s, b)

	cmp := Comparator{Fields: signal.MaskAll}
	if m := cmp.Compare(su.ctx.Coords, s, ResetOutput); m != nil {
		su.mismatch(&res, *m)
	}
	if m := cmp.CompareBidir(su.ctx.Coords, b, ResetBidir); m != nil {
		su.mismatch(&res, *m)
	}

	su.Reporter.End(res)
	return res, nil
}

// RunBasic checks every field of the first lines after reset. It must be
// run immediately after RunReset(), otherwise an error is returned and
// nothing is checked.
func (su *Suite) RunBasic() (Result, error) {
	res := Result{Scenario: ScenarioBasic}

	if !coords.Equal(su.ctx.Coords, coords.Coords{}) {
		return res, curated.Errorf(SuiteError, "basic test must start immediately after reset")
	}

	su.Reporter.Begin(res.Scenario)
	logger.Log(su.ctx, "verify", "running basic test of the first video lines")

	cmp := Comparator{Fields: signal.MaskAll}

	su.ctx.quiet = true
	defer func() {
		su.ctx.quiet = false
	}()

	for su.color.Covers(su.ctx.Coords) {
		c := su.ctx.Coords
		if c.X == 0 {
			su.Reporter.Line(c.Y)
		}

		s, err := su.ctx.SampleOutput()
		if err != nil {
			return res, err
		}
		res.Samples++

		exp := su.timing.Expected(c)
		exp = exp.Set(signal.FieldColor, uint8(su.color.Expected(c)))

		if m := cmp.Compare(c, s, exp); m != nil {
			su.mismatch(&res, *m)
		} else if su.cfg.ProgressInterval > 0 && c.X%su.cfg.ProgressInterval == 0 {
			su.Reporter.Progress(c)
		}

		if err := su.ctx.Step(); err != nil {
			return res, err
		}
	}

	su.Reporter.End(res)
	return res, nil
}

// RunFrame resets the device and checks an entire frame. Only the vsync field
// is checked for each sample. The colour field is counted and the count is
// checked against the Golden value at the end of the frame.
func (su *Suite) RunFrame() (Result, error) {
	res := Result{Scenario: ScenarioFrame}
	su.Reporter.Begin(res.Scenario)

	if err := su.reset.Run(); err != nil {
		return res, err
	}
	su.color.Reset()

	logger.Log(su.ctx, "verify", "running test of the first frame")

	cmp := Comparator{Fields: signal.MaskOf(signal.FieldVSync)}

	su.ctx.quiet = true
	defer func() {
		su.ctx.quiet = false
	}()

	frame := su.ctx.Coords.Frame
	for su.ctx.Coords.Frame == frame {
		c := su.ctx.Coords
		if c.X == 0 {
			su.Reporter.Line(c.Y)
		}

		s, err := su.ctx.SampleOutput()
		if err != nil {
			return res, err
		}
		res.Samples++

		su.ctx.Census.Accumulate(s.Color())
		for _, snk := range su.sinks {
			if err := snk.Sample(c, s); err != nil {
				return res, curated.Errorf(SuiteError, err)
			}
		}

		if m := cmp.Compare(c, s, su.timing.Expected(c)); m != nil {
			su.mismatch(&res, *m)
		}

		if err := su.ctx.Step(); err != nil {
			return res, err
		}
	}

	for _, snk := range su.sinks {
		if err := snk.EndFrame(frame); err != nil {
			return res, curated.Errorf(SuiteError, err)
		}
	}

	su.ctx.quiet = false

	census := su.ctx.Census
	res.Census = &census
	res.CensusMismatches = census.Verify(su.Golden)
	for _, m := range res.CensusMismatches {
		logger.Log(su.ctx, "census", m.Error())
	}
	su.Reporter.CensusTable(res.Census, su.Golden, res.CensusMismatches)

	su.Reporter.End(res)
	return res, nil
}

// mismatch is recorded and reported.
func (su *Suite) mismatch(res *Result, m Mismatch) {
	res.Mismatches = append(res.Mismatches, m)
	su.Reporter.SignalMismatch(m)
	logger.Log(su.ctx, "mismatch", m.Error())
}

// Coords returns the position of the next sample.
func (su *Suite) Coords() coords.Coords {
	return su.ctx.Coords
}
