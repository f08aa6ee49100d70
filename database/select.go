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

package database

import "github.com/jetsetilly/vgaverify/curated"

// SelectAll entries in the database in key order. onSelect can be nil.
//
// onSelect() should return false if the select process is to stop. The
// continue flag is ignored if error is not nil.
//
// Returns the number of entries selected.
func (db Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) (int, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If the list of keys
// is empty then all keys are matched. onSelect can be nil.
//
// Returns the number of entries selected before the select process stopped.
func (db Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) (int, error) {
	if onSelect == nil {
		onSelect = func(_ int, _ Entry) (bool, error) { return true, nil }
	}

	keyList := keys
	if len(keys) == 0 {
		keyList = db.SortedKeyList()
	}

	n := 0
	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return n, curated.Errorf(NotAvailable, key)
		}

		n++

		cont, err := onSelect(key, ent)
		if err != nil {
			return n, err
		}
		if !cont {
			break
		}
	}

	return n, nil
}
