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

// Package regression records the frame digest of a device and checks later
// runs against it. Entries are kept in a database.Session stored in the
// harness resource directory.
//
// A new entry is added with RegressAdd(). The frame scenario is run on the
// device named by the entry and the resulting digest is stored. RegressRun()
// repeats the frame scenario for every entry (or the entries selected by key)
// and fails any entry whose digest has changed. The database can be examined
// with RegressList() and entries removed with RegressDelete().
//
// The entry type in the database is identified by the string "digest".
package regression
