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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes, so that a command line can select
// between sub-commands, each with its own set of flags:
//
//	vgaverify RUN -adapter SIM -frame=false
//	vgaverify GOLDEN
//
// A new Modes instance is prepared with NewArgs(). Sub-modes and flags for the
// current level are added with AddSubModes() and the Add*() functions and the
// arguments are then processed with Parse(). The selected mode is returned by
// Mode(). To process the next level call NewMode() and repeat.
//
// The first sub-mode added is the default mode. It is selected when the first
// argument is not a recognised mode. Mode names are case insensitive on the
// command line and are always reported in upper case.
package modalflag
