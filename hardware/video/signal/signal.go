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

// Package signal describes the layout of the byte-wide ports of the device
// under test. The layout is fixed by the reference hardware:
//
//	bit  7     6     5        4      3      2..0
//	     row0  col0  speaker  vsync  hsync  colour
//
// HSync and VSync are active low. Row0 and Col0 are high on the first row and
// the first column of the raster respectively.
//
// The bidirectional port is sampled but carries no timing information.
package signal

import (
	"fmt"
	"strings"
)

// Sample is a single reading of the output port.
type Sample uint8

// Bidir is a single reading of the bidirectional port.
type Bidir uint8

// Field identifies one of the named fields of a Sample.
type Field int

// List of valid Field values.
const (
	FieldColor Field = iota
	FieldHSync
	FieldVSync
	FieldSpeaker
	FieldCol0
	FieldRow0
	NumFields
)

// FieldSpec describes where a field sits in the Sample.
type FieldSpec struct {
	Name  string
	Shift uint
	Width uint
}

// Mask returns the bits in a Sample that belong to the field.
func (f FieldSpec) Mask() Sample {
	return Sample(((1 << f.Width) - 1) << f.Shift)
}

// Layout of the output port, indexed by Field.
var Layout = [NumFields]FieldSpec{
	FieldColor:   {Name: "color", Shift: 0, Width: 3},
	FieldHSync:   {Name: "hsync", Shift: 3, Width: 1},
	FieldVSync:   {Name: "vsync", Shift: 4, Width: 1},
	FieldSpeaker: {Name: "speaker", Shift: 5, Width: 1},
	FieldCol0:    {Name: "col0", Shift: 6, Width: 1},
	FieldRow0:    {Name: "row0", Shift: 7, Width: 1},
}

func (f Field) String() string {
	if f < 0 || f >= NumFields {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return Layout[f].Name
}

// Get the value of the field in the Sample, shifted down to bit zero.
func (s Sample) Get(f Field) uint8 {
	spec := Layout[f]
	return uint8((s & spec.Mask()) >> spec.Shift)
}

// Set returns a copy of the Sample with the field replaced. Bits in v beyond
// the width of the field are ignored.
func (s Sample) Set(f Field, v uint8) Sample {
	spec := Layout[f]
	return (s &^ spec.Mask()) | ((Sample(v) << spec.Shift) & spec.Mask())
}

// Color is shorthand for Get(FieldColor).
func (s Sample) Color() Color {
	return Color(s.Get(FieldColor))
}

// HSync is shorthand for Get(FieldHSync).
func (s Sample) HSync() uint8 {
	return s.Get(FieldHSync)
}

// VSync is shorthand for Get(FieldVSync).
func (s Sample) VSync() uint8 {
	return s.Get(FieldVSync)
}

func (s Sample) String() string {
	return fmt.Sprintf("%08b", uint8(s))
}

// Fields returns a description of every field in the sample. For example:
//
//	row0=1 col0=1 speaker=0 vsync=1 hsync=1 color=Yellow
func (s Sample) Fields() string {
	b := strings.Builder{}
	for f := NumFields - 1; f >= 0; f-- {
		if f == FieldColor {
			b.WriteString(fmt.Sprintf("%s=%s", f, s.Color()))
		} else {
			b.WriteString(fmt.Sprintf("%s=%d ", f, s.Get(f)))
		}
	}
	return b.String()
}

func (b Bidir) String() string {
	return fmt.Sprintf("%08b", uint8(b))
}
