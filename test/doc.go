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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and the Demand*() functions a
// test fatality. Success and failure are interpreted according to the type
// of the value being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// A value of any other type is a fatality. Note that this means an untyped nil
// is considered a success. Because of how errors are usually returned (nil to
// indicate no error) this is the only sensible interpretation.
//
// The optional tags argument is printed at the head of any failure message.
// Useful when the test is inside a loop:
//
//	for x := range 800 {
//		test.ExpectEquality(t, hsync(x), want(x), "x", x)
//	}
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output.
package test
