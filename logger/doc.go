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

// Package logger is the central log for the harness. Entries are tagged with
// the name of the sub-system making the entry. Consecutive identical entries
// are collapsed into one entry with a repeat count.
//
// Only a fixed number of entries are kept. Older entries are dropped as new
// entries are added.
//
// The log can be echoed to an io.Writer as entries are made. This is useful
// when running from the command line with the -log flag.
package logger
