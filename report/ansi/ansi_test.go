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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/report/ansi"
	"github.com/jetsetilly/vgaverify/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("green", "blue", "bold", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[92;44;1m")

	s, err = ansi.ColorBuild("", "normal", "underline", false, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[109;4m")

	_, err = ansi.ColorBuild("orange", "", "", false, false)
	test.ExpectSuccess(t, curated.Is(err, ansi.AnsiError))
	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectSuccess(t, curated.Is(err, ansi.AnsiError))
}

func TestTables(t *testing.T) {
	test.ExpectEquality(t, ansi.NormalPen, "\033[m")
	test.ExpectEquality(t, ansi.Pens["red"], "\033[91m")
	test.ExpectEquality(t, ansi.DimPens["white"], "\033[37m")
	test.ExpectEquality(t, ansi.PenStyles["bold"], "\033[1m")
	test.ExpectEquality(t, len(ansi.Pens), 7)
}
