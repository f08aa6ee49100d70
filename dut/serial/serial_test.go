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

package serial_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/dut"
	"github.com/jetsetilly/vgaverify/dut/serial"
	"github.com/jetsetilly/vgaverify/dut/sim"
	"github.com/jetsetilly/vgaverify/test"
)

// board is the firmware end of the serial link. commands are forwarded to a
// simulated device
type board struct {
	dev   dut.Adapter
	reply bytes.Buffer

	// replace every reply with this value if it is not zero
	garbage byte

	// do not reply at all
	silent bool
}

func (b *board) Write(p []byte) (int, error) {
	if b.silent {
		return len(p), nil
	}

	var r byte = '.'
	switch p[0] {
	case 'R':
		_ = b.dev.SetReset(p[1] == 1)
	case 'C':
		_ = b.dev.StepClock()
	case 'O':
		r, _ = b.dev.ReadOutput()
	case 'B':
		r, _ = b.dev.ReadBidir()
	case 'I':
		_ = b.dev.WriteInput(p[1])
	default:
		r = '?'
	}

	if b.garbage != 0 {
		r = b.garbage
	}
	b.reply.WriteByte(r)

	return len(p), nil
}

func (b *board) Read(p []byte) (int, error) {
	if b.reply.Len() == 0 {
		// same as a read timeout on a serial device
		return 0, nil
	}
	return b.reply.Read(p)
}

func TestAdapter(t *testing.T) {
	var _ dut.Adapter = (*serial.Adapter)(nil)

	b := &board{dev: sim.NewReference()}
	adp := serial.NewAdapter(b)

	test.ExpectSuccess(t, adp.WriteInput(0))
	test.ExpectSuccess(t, adp.SetReset(true))
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, adp.StepClock())
	}
	test.ExpectSuccess(t, adp.SetReset(false))

	v, err := adp.ReadOutput()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0b11011110)

	v, err = adp.ReadBidir()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0b11111000)

	// first pixel of the second line
	for i := 0; i < 800; i++ {
		test.DemandSuccess(t, adp.StepClock())
	}
	v, err = adp.ReadOutput()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0b01011000)

	// nothing left unread
	test.ExpectEquality(t, b.reply.Len(), 0)

	// nothing to close
	test.ExpectSuccess(t, adp.Close())
}

func TestBadReply(t *testing.T) {
	b := &board{dev: &sim.Fixed{}, garbage: '!'}
	adp := serial.NewAdapter(b)

	err := adp.StepClock()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dut.AdapterError))

	// a read will accept any reply
	v, err := adp.ReadOutput()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, '!')
}

func TestNoReply(t *testing.T) {
	b := &board{dev: &sim.Fixed{}, silent: true}
	adp := serial.NewAdapter(b)

	err := adp.SetReset(true)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dut.AdapterError))

	_, err = adp.ReadBidir()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dut.AdapterError))
}
