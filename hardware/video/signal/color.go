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

import (
	"fmt"
	"image/color"
)

// Color is the three bit colour index of the output port. Bit 2 is red, bit 1
// is green and bit 0 is blue.
type Color uint8

// List of valid Color values.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
	NumColors
)

var colorNames = [NumColors]string{
	"Black", "Blue", "Green", "Cyan", "Red", "Magenta", "Yellow", "White",
}

func (c Color) String() string {
	if c >= NumColors {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ColorFromName is the reverse of the String() function. Case sensitive.
func ColorFromName(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return Black, false
}

// RGBA returns the colour as seen on a monitor when each of the three bits
// drives its gun fully on or off.
func (c Color) RGBA() color.RGBA {
	var r, g, b uint8
	if c&0b100 != 0 {
		r = 0xff
	}
	if c&0b010 != 0 {
		g = 0xff
	}
	if c&0b001 != 0 {
		b = 0xff
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Palette of all colours in index order. Suitable for image.Paletted.
func Palette() color.Palette {
	p := make(color.Palette, NumColors)
	for i := range p {
		p[i] = Color(i).RGBA()
	}
	return p
}
