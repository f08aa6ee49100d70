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

	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
)

// Port identifies which port a Mismatch was sampled from.
type Port int

// List of valid Port values.
const (
	PortOutput Port = iota
	PortBidir
)

func (p Port) String() string {
	switch p {
	case PortOutput:
		return "uo_out"
	case PortBidir:
		return "bidir"
	}
	return "unknown port"
}

// Mismatch records a sample that did not match the oracle.
type Mismatch struct {
	Coords   coords.Coords
	Port     Port
	Actual   signal.Sample
	Expected signal.Sample

	// the checked fields that differ. only meaningful for PortOutput
	Fields signal.FieldMask
}

func (m Mismatch) Error() string {
	if m.Port == PortOutput {
		return fmt.Sprintf("%s %s=%s expected %s (%s)", m.Coords.ShortString(), m.Port, m.Actual, m.Expected, m.Fields)
	}
	return fmt.Sprintf("%s %s=%s expected %s", m.Coords.ShortString(), m.Port, m.Actual, m.Expected)
}

// Comparator compares samples from the output port against expected values.
// Only the fields in the Fields mask are compared.
type Comparator struct {
	Fields signal.FieldMask
}

// Compare returns nil if the checked fields of both samples are equal.
func (cmp Comparator) Compare(c coords.Coords, actual signal.Sample, expected signal.Sample) *Mismatch {
	d := cmp.Fields.Diff(actual, expected)
	if d == signal.MaskNone {
		return nil
	}
	return &Mismatch{
		Coords:   c,
		Port:     PortOutput,
		Actual:   actual,
		Expected: expected,
		Fields:   d,
	}
}

// CompareBidir returns nil if the bidirectional port samples are equal. The
// bidirectional port has no fields so every bit is compared.
func (cmp Comparator) CompareBidir(c coords.Coords, actual signal.Bidir, expected signal.Bidir) *Mismatch {
	if actual == expected {
		return nil
	}
	return &Mismatch{
		Coords:   c,
		Port:     PortBidir,
		Actual:   signal.Sample(actual),
		Expected: signal.Sample(expected),
	}
}
