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

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/vgaverify/curated"
)

// Sentinel error patterns for the database package.
const (
	DatabaseError = "database: %v"
	NotAvailable  = "database: key not available (%d)"
)

// Activity is used to specify the general activity of what will be occurring
// during the database session.
type Activity int

// Valid activities: the "higher level" activities inherit the activity
// abilities of the activity levels lower down the scale.
const (
	ActivityReading Activity = iota

	// Modifying implies Reading.
	ActivityModifying

	// Creating implies Modifying (which in turn implies Reading).
	ActivityCreating
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called when the database has been successfully opened.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0o600)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(DatabaseError, "database does not exist")
		}
		return nil, curated.Errorf(DatabaseError, err)
	}

	// closing of db.dbfile requires a call to EndSession()

	err = init(db)
	if err != nil {
		_ = db.dbfile.Close()
		return nil, curated.Errorf(DatabaseError, err)
	}

	err = db.readDBFile()
	if err != nil {
		_ = db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes are written back to disk if the
// commitChanges flag is true and the session activity allows it.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return nil
	}

	// write entries to database
	if commitChanges && db.activity > ActivityReading {
		err := db.dbfile.Truncate(0)
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		_, err = db.dbfile.Seek(0, io.SeekStart)
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf(DatabaseError, err)
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, ent.ID()))
			for i := 0; i < len(ser); i++ {
				s.WriteString(fieldSep)
				s.WriteString(ser[i])
			}
			s.WriteString(entrySep)

			_, err = db.dbfile.WriteString(s.String())
			if err != nil {
				return curated.Errorf(DatabaseError, err)
			}
		}
	}

	// end session by closing file
	err := db.dbfile.Close()
	db.dbfile = nil
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

// RegisterEntryType tells the database what entries it may expect in the
// database and what to do when it encounters one.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("trying to register a duplicate entry ID [%s]", id)
	}
	db.entryTypes[id] = des
	return nil
}

func (db *Session) readDBFile() error {
	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	// split entries
	lines := strings.Split(string(buffer), entrySep)

	for i := 0; i < len(lines); i++ {
		lines[i] = strings.TrimSpace(lines[i])
		if len(lines[i]) == 0 {
			continue
		}

		fields := strings.Split(lines[i], fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf(DatabaseError, fmt.Sprintf("malformed entry at line %d", i+1))
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf(DatabaseError, fmt.Sprintf("invalid key [%s] at line %d", fields[leaderFieldKey], i+1))
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("duplicate key [%v] at line %d", key, i+1))
		}

		deserialise, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf(DatabaseError, fmt.Sprintf("unrecognised entry type [%s]", fields[leaderFieldID]))
		}

		ent, err := deserialise(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf(DatabaseError, err)
		}

		db.entries[key] = ent
	}

	return nil
}

// NumEntries returns the number of entries in the database.
func (db Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		if _, err := io.WriteString(output, "database is empty\n"); err != nil {
			return err
		}
		return nil
	}

	for _, key := range db.SortedKeyList() {
		if _, err := io.WriteString(output, fmt.Sprintf("%03d %s\n", key, db.entries[key])); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(output, fmt.Sprintf("Total: %d\n", db.NumEntries())); err != nil {
		return err
	}

	return nil
}

// Get returns the entry with the specified key.
func (db Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(NotAvailable, key)
	}
	return ent, nil
}

// Add an entry to the db. Returns the key of the new entry.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity < ActivityCreating {
		return -1, curated.Errorf(DatabaseError, "adding entries not allowed in this session")
	}

	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return -1, curated.Errorf(DatabaseError, fmt.Sprintf("maximum entries exceeded (max %d)", maxEntries))
	}

	db.entries[key] = ent

	return key, nil
}

// Delete deletes an entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity < ActivityModifying {
		return curated.Errorf(DatabaseError, "deleting entries not allowed in this session")
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(NotAvailable, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	delete(db.entries, key)

	return nil
}
