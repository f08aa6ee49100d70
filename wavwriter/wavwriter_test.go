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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/test"
	"github.com/jetsetilly/vgaverify/wavwriter"
)

func TestWavWriter(t *testing.T) {
	mode := specification.VGA640x480
	fn := filepath.Join(t.TempDir(), "speaker.wav")

	aw, err := wavwriter.New(fn, mode)
	test.DemandSuccess(t, err)

	speaker := signal.Sample(0).Set(signal.FieldSpeaker, 1)

	// three lines: speaker off, speaker on, speaker on for half the line
	for y := 0; y < 3; y++ {
		for x := 0; x < mode.HorizTotal; x++ {
			var s signal.Sample
			switch {
			case y == 1:
				s = speaker
			case y == 2 && x < mode.HorizTotal/2:
				s = speaker
			}
			test.DemandSuccess(t, aw.Sample(coords.Coords{X: x, Y: y}, s))
		}
	}
	test.DemandSuccess(t, aw.EndFrame(0))
	test.ExpectEquality(t, aw.Len(), 3)

	test.DemandSuccess(t, aw.Write())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), mode.LineRate())
	test.ExpectEquality(t, int(dec.BitDepth), 16)
	test.DemandEquality(t, len(buf.Data), 3)
	test.ExpectEquality(t, buf.Data[0], -0x3fff)
	test.ExpectEquality(t, buf.Data[1], 0x3fff)
	test.ExpectEquality(t, buf.Data[2], 0)
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("", specification.VGA640x480)
	test.ExpectFailure(t, err)
}
