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

// Package prefs facilitates the storage of harness preferences.
//
// Preference values are typed (Bool, Int, String) and can be given hook
// functions that run before and after a new value is set. The hook before can
// veto the new value by returning an error.
//
// A Disk collects preference values under string keys and saves/loads them
// to/from a file on disk. The file format is one preference per line:
//
//	key :: value
//
// Entries in the file that are not known to the Disk instance are preserved
// when the file is saved.
//
// Preferences can also be specified on the command line, in the same key/value
// format, separated by semicolons:
//
//	basic::false; frame::true
//
// The string is pushed onto the command line stack with
// PushCommandLineStack(). Values on the top of the stack override the
// corresponding value on disk the next time Load() is called.
package prefs
