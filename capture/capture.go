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

package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/hardware/video/coords"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/paths"
	"golang.org/x/image/draw"
)

// CaptureError is the sentinel pattern for all errors from the capture
// package.
const CaptureError = "capture: %v"

// MaxScale is the largest scaling factor accepted by Image() and Save().
const MaxScale = 8

// Frame is an implementation of the verify.Sink interface. It records the
// colour of every sample in the frame.
type Frame struct {
	geom image.Rectangle

	currFrameData *image.Paletted
	currFrameNum  int

	lastFrameData *image.Paletted
	lastFrameNum  int
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame(mode specification.Mode) *Frame {
	fr := &Frame{
		geom: image.Rect(0, 0, mode.HorizTotal, mode.VertTotal),
	}
	fr.currFrameData = image.NewPaletted(fr.geom, signal.Palette())
	return fr
}

// Sample implements the verify.Sink interface.
func (fr *Frame) Sample(c coords.Coords, s signal.Sample) error {
	fr.currFrameNum = c.Frame
	fr.currFrameData.SetColorIndex(c.X, c.Y, uint8(s.Color()))
	return nil
}

// EndFrame implements the verify.Sink interface.
func (fr *Frame) EndFrame(frameNum int) error {
	fr.lastFrameData = fr.currFrameData
	fr.lastFrameNum = frameNum
	fr.currFrameData = image.NewPaletted(fr.geom, signal.Palette())
	return nil
}

// Image returns the last complete frame, scaled by the scale factor.
func (fr *Frame) Image(scale int) (image.Image, error) {
	if fr.lastFrameData == nil {
		return nil, curated.Errorf(CaptureError, "no frame to capture")
	}
	if scale < 1 || scale > MaxScale {
		return nil, curated.Errorf(CaptureError, fmt.Sprintf("scale must be between 1 and %d", MaxScale))
	}

	if scale == 1 {
		return fr.lastFrameData, nil
	}

	r := image.Rect(0, 0, fr.geom.Dx()*scale, fr.geom.Dy()*scale)
	img := image.NewPaletted(r, signal.Palette())
	draw.NearestNeighbor.Scale(img, r, fr.lastFrameData, fr.lastFrameData.Bounds(), draw.Src, nil)

	return img, nil
}

// Save the last complete frame as a PNG file. If the filename is empty then a
// unique filename is created in the resource directory. An existing file will
// not be overwritten. Returns the name of the file.
func (fr *Frame) Save(filename string, scale int) (string, error) {
	img, err := fr.Image(scale)
	if err != nil {
		return "", err
	}

	if filename == "" {
		filename, err = paths.ResourcePath(paths.UniqueFilename(fmt.Sprintf("frame%d", fr.lastFrameNum), "png"))
		if err != nil {
			return "", curated.Errorf(CaptureError, err)
		}
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", curated.Errorf(CaptureError, fmt.Sprintf("image file (%s) already exists", filename))
		}
		return "", curated.Errorf(CaptureError, err)
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return "", curated.Errorf(CaptureError, err)
	}

	err = f.Close()
	if err != nil {
		return "", curated.Errorf(CaptureError, err)
	}

	return filename, nil
}
