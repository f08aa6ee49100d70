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
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/logger"
)

// The state of the device immediately after reset. The colour register is
// reset to yellow.
const (
	ResetOutput signal.Sample = 0b11011110
	ResetBidir  signal.Bidir  = 0b11111000
)

// ResetPulses is the number of clock edges issued while reset is asserted.
const ResetPulses = 3

// ResetState is the state of the ResetSequencer.
type ResetState int

// List of valid ResetState values.
const (
	Idle ResetState = iota
	AssertReset
	PulseClock
	ReleaseReset
	Ready
)

func (s ResetState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AssertReset:
		return "AssertReset"
	case PulseClock:
		return "PulseClock"
	case ReleaseReset:
		return "ReleaseReset"
	case Ready:
		return "Ready"
	}
	return "unknown reset state"
}

// ResetSequencer drives the device through the reset protocol: assert reset,
// pulse the clock ResetPulses times, release reset.
type ResetSequencer struct {
	ctx    *Context
	state  ResetState
	pulses int
}

// NewResetSequencer is the preferred method of initialisation for the
// ResetSequencer type.
func NewResetSequencer(ctx *Context) *ResetSequencer {
	return &ResetSequencer{ctx: ctx}
}

// State returns the current state of the sequencer.
func (rs *ResetSequencer) State() ResetState {
	return rs.state
}

// Step performs the action for the next state of the sequence. Stepping from
// Ready starts a new sequence. On error the sequencer returns to Idle.
func (rs *ResetSequencer) Step() error {
	var err error

	switch rs.state {
	case Idle, Ready:
		err = rs.ctx.Adapter.SetReset(true)
		rs.pulses = 0
		rs.state = AssertReset
	case AssertReset:
		err = rs.ctx.Adapter.StepClock()
		rs.pulses++
		rs.state = PulseClock
	case PulseClock:
		if rs.pulses < ResetPulses {
			err = rs.ctx.Adapter.StepClock()
			rs.pulses++
		} else {
			err = rs.ctx.Adapter.SetReset(false)
			rs.state = ReleaseReset
		}
	case ReleaseReset:
		rs.ctx.Coords.Reset()
		rs.ctx.Census.Reset()
		rs.state = Ready
	}

	if err != nil {
		rs.state = Idle
		return curated.Errorf(SuiteError, err)
	}

	return nil
}

// Run the entire reset sequence. The sequencer is Ready on return, unless
// there has been an error.
func (rs *ResetSequencer) Run() error {
	logger.Log(rs.ctx, "reset", "resetting design")

	if rs.state == Ready {
		rs.state = Idle
	}

	for rs.state != Ready {
		if err := rs.Step(); err != nil {
			return err
		}
	}

	return nil
}
