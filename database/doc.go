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

// Package database stores typed entries in a flat text file. Each line of the
// file is one entry: a three digit key, the entry type and then the fields of
// the entry, all separated by commas.
//
// All access happens inside a session. StartSession() opens the file and
// reads every entry, using the deserialisers registered by the init function.
// EndSession() writes the entries back to disk, if asked to and if the
// session activity allows it:
//
//	db, err := database.StartSession(pth, database.ActivityCreating, func(db *database.Session) error {
//		return db.RegisterEntryType("digest", deserialiseDigestEntry)
//	})
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(true)
//
// ActivityReading sessions cannot change the database. ActivityModifying
// sessions can delete entries and ActivityCreating sessions can also add new
// entries. ActivityCreating is the only activity that will create the file if
// it does not exist.
//
// An error from a deserialiser causes StartSession() to fail.
package database
