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
	"io"
	"time"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/dut"
	"github.com/pkg/errors"
	"github.com/pkg/term"
)

// command opcodes
const (
	opReset  = 'R'
	opClock  = 'C'
	opOutput = 'O'
	opBidir  = 'B'
	opInput  = 'I'
)

// reply to commands that do not return a value
const ack = '.'

// ReadTimeout is the maximum time to wait for a reply from the board.
const ReadTimeout = time.Second

// Adapter is the host side of the serial link.
type Adapter struct {
	rw     io.ReadWriter
	closer io.Closer
	buf    [2]byte
}

// NewAdapter is the preferred method of initialisation for the Adapter type
// when the link has already been opened. If the io.ReadWriter is also an
// io.Closer then it will be closed by Close().
func NewAdapter(rw io.ReadWriter) *Adapter {
	adp := &Adapter{rw: rw}
	if c, ok := rw.(io.Closer); ok {
		adp.closer = c
	}
	return adp
}

// Open the serial device and return a new Adapter for it.
func Open(device string, baud int) (*Adapter, error) {
	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(dut.AdapterError, errors.Wrap(err, "serial: open"))
	}

	err = t.SetReadTimeout(ReadTimeout)
	if err != nil {
		_ = t.Close()
		return nil, curated.Errorf(dut.AdapterError, errors.Wrap(err, "serial: timeout"))
	}

	// discard anything the board sent before we were listening
	err = t.Flush()
	if err != nil {
		_ = t.Close()
		return nil, curated.Errorf(dut.AdapterError, errors.Wrap(err, "serial: flush"))
	}

	return NewAdapter(t), nil
}

// Close the link.
func (adp *Adapter) Close() error {
	if adp.closer == nil {
		return nil
	}
	if err := adp.closer.Close(); err != nil {
		return curated.Errorf(dut.AdapterError, errors.Wrap(err, "serial: close"))
	}
	return nil
}

// send command and return the reply.
func (adp *Adapter) command(cmd ...byte) (byte, error) {
	n, err := adp.rw.Write(cmd)
	if err != nil {
		return 0, errors.Wrapf(err, "serial: write %q", cmd[0])
	}
	if n != len(cmd) {
		return 0, errors.Errorf("serial: short write %q", cmd[0])
	}

	// a read that returns nothing and no error is a timeout
	n, err = adp.rw.Read(adp.buf[:1])
	if n == 0 {
		if err == nil || err == io.EOF {
			return 0, errors.Errorf("serial: no reply to %q", cmd[0])
		}
		return 0, errors.Wrapf(err, "serial: read %q", cmd[0])
	}

	return adp.buf[0], nil
}

// send command that expects an acknowledgement.
func (adp *Adapter) acknowledged(cmd ...byte) error {
	reply, err := adp.command(cmd...)
	if err != nil {
		return curated.Errorf(dut.AdapterError, err)
	}
	if reply != ack {
		return curated.Errorf(dut.AdapterError, errors.Errorf("serial: unexpected reply %q to %q", reply, cmd[0]))
	}
	return nil
}

// SetReset implements the dut.Adapter interface.
func (adp *Adapter) SetReset(reset bool) error {
	var v byte
	if reset {
		v = 1
	}
	return adp.acknowledged(opReset, v)
}

// StepClock implements the dut.Adapter interface.
func (adp *Adapter) StepClock() error {
	return adp.acknowledged(opClock)
}

// ReadOutput implements the dut.Adapter interface.
func (adp *Adapter) ReadOutput() (uint8, error) {
	v, err := adp.command(opOutput)
	if err != nil {
		return 0, curated.Errorf(dut.AdapterError, err)
	}
	return v, nil
}

// ReadBidir implements the dut.Adapter interface.
func (adp *Adapter) ReadBidir() (uint8, error) {
	v, err := adp.command(opBidir)
	if err != nil {
		return 0, curated.Errorf(dut.AdapterError, err)
	}
	return v, nil
}

// WriteInput implements the dut.Adapter interface.
func (adp *Adapter) WriteInput(v uint8) error {
	return adp.acknowledged(opInput, v)
}
