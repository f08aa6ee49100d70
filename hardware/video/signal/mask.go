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

package signal

import "strings"

// FieldMask is a set of Fields.
type FieldMask uint8

// Field masks for common sets of fields.
const (
	MaskNone FieldMask = 0
	MaskAll  FieldMask = (1 << NumFields) - 1

	// every field that is a pure function of the raster position
	MaskUnregistered FieldMask = MaskAll &^ (1 << FieldColor)
)

// MaskOf returns a FieldMask containing the listed fields.
func MaskOf(fields ...Field) FieldMask {
	var m FieldMask
	for _, f := range fields {
		m |= 1 << f
	}
	return m
}

// Has returns true if the field is in the mask.
func (m FieldMask) Has(f Field) bool {
	return m&(1<<f) != 0
}

// Bits returns the Sample bits covered by the fields in the mask.
func (m FieldMask) Bits() Sample {
	var b Sample
	for f := Field(0); f < NumFields; f++ {
		if m.Has(f) {
			b |= Layout[f].Mask()
		}
	}
	return b
}

// Diff returns the fields in the mask for which the two samples differ.
func (m FieldMask) Diff(a, b Sample) FieldMask {
	var d FieldMask
	for f := Field(0); f < NumFields; f++ {
		if m.Has(f) && a.Get(f) != b.Get(f) {
			d |= 1 << f
		}
	}
	return d
}

func (m FieldMask) String() string {
	if m == MaskNone {
		return "none"
	}
	s := make([]string, 0, NumFields)
	for f := NumFields - 1; f >= 0; f-- {
		if m.Has(f) {
			s = append(s, f.String())
		}
	}
	return strings.Join(s, ",")
}
