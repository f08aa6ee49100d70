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

package verify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-test/deep"
	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/dut"
	"github.com/jetsetilly/vgaverify/dut/sim"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/test"
	"github.com/jetsetilly/vgaverify/verify"
)

// spy records every call made to the adapter it wraps. if failAfter is
// positive then the call with that number will fail
type spy struct {
	dut.Adapter
	calls     []string
	failAfter int
}

func (s *spy) record(call string) error {
	s.calls = append(s.calls, call)
	if s.failAfter > 0 && len(s.calls) >= s.failAfter {
		return curated.Errorf(dut.AdapterError, errors.New("device disconnected"))
	}
	return nil
}

func (s *spy) SetReset(reset bool) error {
	if err := s.record(fmt.Sprintf("reset %v", reset)); err != nil {
		return err
	}
	return s.Adapter.SetReset(reset)
}

func (s *spy) StepClock() error {
	if err := s.record("clock"); err != nil {
		return err
	}
	return s.Adapter.StepClock()
}

func TestResetSequence(t *testing.T) {
	s := &spy{Adapter: sim.NewReference()}
	ctx, err := verify.NewContext(s, specification.VGA640x480)
	test.DemandSuccess(t, err)

	rs := verify.NewResetSequencer(ctx)
	test.ExpectEquality(t, rs.State(), verify.Idle)

	var states []verify.ResetState
	for rs.State() != verify.Ready {
		test.DemandSuccess(t, rs.Step())
		states = append(states, rs.State())
	}

	if diff := deep.Equal(states, []verify.ResetState{
		verify.AssertReset,
		verify.PulseClock,
		verify.PulseClock,
		verify.PulseClock,
		verify.ReleaseReset,
		verify.Ready,
	}); diff != nil {
		t.Errorf("reset states: %v", diff)
	}

	if diff := deep.Equal(s.calls, []string{
		"reset true",
		"clock",
		"clock",
		"clock",
		"reset false",
	}); diff != nil {
		t.Errorf("reset calls: %v", diff)
	}
}

func TestResetIdempotence(t *testing.T) {
	ref := sim.NewReference()
	ctx, err := verify.NewContext(ref, specification.VGA640x480)
	test.DemandSuccess(t, err)
	rs := verify.NewResetSequencer(ctx)

	// from a variety of prior states
	for _, clocks := range []int{0, 1, 799, 800, 12345, 419999, 420000} {
		for i := 0; i < clocks; i++ {
			test.DemandSuccess(t, ctx.Step())
		}
		ctx.Census.Accumulate(signal.Red)

		// twice in succession
		for i := 0; i < 2; i++ {
			test.DemandSuccess(t, rs.Run())
			test.ExpectEquality(t, rs.State(), verify.Ready)

			s, b, err := ctx.SampleOutputs()
			test.DemandSuccess(t, err)
			test.ExpectEquality(t, s, verify.ResetOutput, clocks, i)
			test.ExpectEquality(t, b, verify.ResetBidir, clocks, i)
			test.ExpectEquality(t, ctx.Coords, coords.Coords{})
			test.ExpectEquality(t, ctx.Census.Total(), 0)
		}
	}
}

func TestResetFailure(t *testing.T) {
	s := &spy{Adapter: &sim.Fixed{}, failAfter: 3}
	ctx, err := verify.NewContext(s, specification.VGA640x480)
	test.DemandSuccess(t, err)
	rs := verify.NewResetSequencer(ctx)

	err = rs.Run()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, verify.SuiteError))
	test.ExpectSuccess(t, curated.Has(err, dut.AdapterError))
	test.ExpectEquality(t, rs.State(), verify.Idle)
	test.ExpectEquality(t, len(s.calls), 3)
}
