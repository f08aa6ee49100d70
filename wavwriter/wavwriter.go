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

// Package wavwriter records the speaker field of the output port as a WAV
// file. The speaker is averaged over each line so the sample rate of the file
// is the line rate of the video mode. Note that audio data is buffered in
// memory in its entirety, and written to disk when Write() is called. It is
// therefore probably only suitable for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/logger"
)

// WavError is the sentinel pattern for errors in this package.
const WavError = "wavwriter: %v"

const (
	bitDepth = 16

	// amplitude of a line in which the speaker is high for every sample
	amplitude = 0x3fff

	// PCM format identifier in the WAV header
	wavFormatPCM = 1
)

// WavWriter implements the verify.Sink interface.
type WavWriter struct {
	filename string
	mode     specification.Mode

	buffer []int

	// speaker samples for the current line
	high  int
	count int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, mode specification.Mode) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf(WavError, "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		mode:     mode,
		buffer:   make([]int, 0, mode.VertTotal),
	}

	return aw, nil
}

// Sample implements the verify.Sink interface.
func (aw *WavWriter) Sample(c coords.Coords, s signal.Sample) error {
	aw.count++
	if s.Get(signal.FieldSpeaker) != 0 {
		aw.high++
	}

	if c.X == aw.mode.HorizTotal-1 {
		aw.endLine()
	}

	return nil
}

// EndFrame implements the verify.Sink interface.
func (aw *WavWriter) EndFrame(_ int) error {
	// a partial line is treated as a complete line
	aw.endLine()
	return nil
}

func (aw *WavWriter) endLine() {
	if aw.count == 0 {
		return
	}

	// the speaker swings between -amplitude and +amplitude
	v := (2*aw.high - aw.count) * amplitude / aw.count
	aw.buffer = append(aw.buffer, v)

	aw.high = 0
	aw.count = 0
}

// Len returns the number of audio samples recorded.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Write the recorded audio to disk.
func (aw *WavWriter) Write() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavError, err)
		}
	}()

	rate := aw.mode.LineRate()

	enc := wav.NewEncoder(f, rate, bitDepth, 1, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WavError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WavError, err)
	}

	return nil
}
