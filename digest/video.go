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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
)

// Video is an implementation of the verify.Sink interface. It generates a
// SHA-1 value of every sample in the frame, including the sync and position
// bits.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	mode     specification.Mode
	digest   [sha1.Size]byte
	samples  []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mode specification.Mode) *Video {
	dig := &Video{mode: mode}

	// length of samples array contains enough room for the previous frames
	// digest value
	dig.samples = make([]byte, len(dig.digest)+mode.ClocksPerFrame())

	return dig
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	for i := range dig.samples {
		dig.samples[i] = 0
	}
	dig.frameNum = 0
}

// Frame returns the number of the most recent frame included in the hash.
func (dig *Video) Frame() int {
	return dig.frameNum
}

// Sample implements the verify.Sink interface.
func (dig *Video) Sample(c coords.Coords, s signal.Sample) error {
	// preserve the first few bytes for a chained fingerprint
	i := len(dig.digest)
	i += c.Y*dig.mode.HorizTotal + c.X

	if i < len(dig.samples) {
		dig.samples[i] = uint8(s)
	}

	return nil
}

// EndFrame implements the verify.Sink interface.
func (dig *Video) EndFrame(frameNum int) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the sample data
	n := copy(dig.samples, dig.digest[:])
	if n != len(dig.digest) {
		return fmt.Errorf("digest: video: digest error during end of frame")
	}
	dig.digest = sha1.Sum(dig.samples)
	dig.frameNum = frameNum
	return nil
}
