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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which has the same shape as the
// Errorf() function in the fmt package, except that the formatting pattern is
// remembered and used to identify the error later:
//
//	const ReadError = "adapter: read: %v"
//
//	e := curated.Errorf(ReadError, err)
//
//	if curated.Is(e, ReadError) {
//		...
//	}
//
// Has() is like Is() but searches the entire error chain. Errors in the chain
// are the error values passed as placeholder arguments to Errorf().
//
// Error messages are normalised so that adjacent duplicate parts of the chain
// are removed. Parts of a chain are separated by the sub-string ": ". For
// example, if a function wraps an error with the pattern "serial: %v" and the
// wrapped error was itself created with "serial: timeout", the message will be
// "serial: timeout" and not "serial: serial: timeout".
//
// Curated errors implement Unwrap() and so cooperate with errors.Is() and
// errors.As() from the standard library, and with Cause() from
// github.com/pkg/errors.
package curated
