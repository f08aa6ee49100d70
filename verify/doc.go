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

// Package verify is the verification engine. It drives the device under test
// through a dut.Adapter, compares every sample against the oracle package and
// collects colour statistics for entire frames.
//
// A verification run is made up of scenarios. The reset scenario always runs
// and checks the state of the device immediately after reset. The basic
// scenario checks every field of every sample of the first two lines after
// reset. The frame scenario resets the device again, checks the vsync field
// of every sample of an entire frame and counts the number of samples of each
// colour. The colour counts are then checked against a Golden.
//
// Mismatches are not fatal. Every mismatch is collected and passed to the
// Reporter and the scenario fails if there are any mismatches at all. Errors
// from the dut.Adapter are fatal and end the run immediately.
//
// The state of the run is held by the Context type. The Context is the only
// mutable state in the engine and is not safe for concurrent use.
package verify
