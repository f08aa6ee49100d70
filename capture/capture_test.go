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

package capture_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/vgaverify/capture"
	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/test"
)

// a frame with a yellow top line and a red pixel in the bottom right corner
func frame(t *testing.T, fr *capture.Frame) {
	t.Helper()
	mode := specification.VGA640x480
	var c coords.Coords
	for c.Frame == 0 {
		var s signal.Sample
		switch {
		case c.Y == 0 && c.X < 640:
			s = s.Set(signal.FieldColor, uint8(signal.Yellow))
		case c.Y == 524 && c.X == 799:
			s = s.Set(signal.FieldColor, uint8(signal.Red))
		}
		s = s.Set(signal.FieldHSync, 1)
		test.DemandSuccess(t, fr.Sample(c, s))
		c.Advance(mode)
	}
	test.DemandSuccess(t, fr.EndFrame(0))
}

func TestImage(t *testing.T) {
	fr := capture.NewFrame(specification.VGA640x480)

	_, err := fr.Image(1)
	test.ExpectSuccess(t, curated.Is(err, capture.CaptureError))

	frame(t, fr)

	img, err := fr.Image(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 800, 525))
	test.ExpectEquality(t, img.At(0, 0), color.Color(signal.Yellow.RGBA()))
	test.ExpectEquality(t, img.At(640, 0), color.Color(signal.Black.RGBA()))
	test.ExpectEquality(t, img.At(799, 524), color.Color(signal.Red.RGBA()))

	img, err = fr.Image(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 1600, 1050))
	test.ExpectEquality(t, img.At(1, 1), color.Color(signal.Yellow.RGBA()))
	test.ExpectEquality(t, img.At(1, 2), color.Color(signal.Black.RGBA()))
	test.ExpectEquality(t, img.At(1598, 1048), color.Color(signal.Red.RGBA()))

	_, err = fr.Image(0)
	test.ExpectFailure(t, err)
	_, err = fr.Image(capture.MaxScale + 1)
	test.ExpectFailure(t, err)
}

func TestSave(t *testing.T) {
	fr := capture.NewFrame(specification.VGA640x480)
	frame(t, fr)

	fn := filepath.Join(t.TempDir(), "frame.png")
	saved, err := fr.Save(fn, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, saved, fn)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 800)

	r, g, b, _ := img.At(0, 0).RGBA()
	test.ExpectEquality(t, r, 0xffff)
	test.ExpectEquality(t, g, 0xffff)
	test.ExpectEquality(t, b, 0)

	// will not overwrite
	_, err = fr.Save(fn, 1)
	test.ExpectSuccess(t, curated.Is(err, capture.CaptureError))
}
