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

// Package capture keeps an image of the most recent frame seen by the frame
// scenario and saves it as a PNG file.
//
// The image includes the blanking areas, so it is the full size of the frame
// (800x525 for the VGA 640x480 mode). Only the colour bits of each sample are
// used. The image can be scaled by an integer factor when it is saved.
package capture
