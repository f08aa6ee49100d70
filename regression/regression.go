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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/database"
	"github.com/jetsetilly/vgaverify/logger"
	"github.com/jetsetilly/vgaverify/paths"
)

// RegressionError is the sentinel pattern for errors in this package.
const RegressionError = "regression: %v"

// the name of the database file in the resource directory.
const regressionDBFile = "regressionDB"

// Regressor is the generic entry type in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression. newRegression is true when the entry is being
	// added to the database.
	regress(newRegression bool) (_ bool, failReason string, _ error)
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryID, deserialiseDigestEntry)
}

func dbPath() (string, error) {
	pth, err := paths.ResourcePath(regressionDBFile)
	if err != nil {
		return "", curated.Errorf(RegressionError, err)
	}
	return pth, nil
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf(RegressionError, "io.Writer should not be nil (use a nopWriter)")
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression handler to the database.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf(RegressionError, "io.Writer should not be nil (use a nopWriter)")
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(true)

	if _, err := io.WriteString(output, fmt.Sprintf("adding: %s", reg)); err != nil {
		return err
	}

	_, _, err = reg.regress(true)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(output, fmt.Sprintf("\radded: %s\n", reg)); err != nil {
		return err
	}

	_, err = db.Add(reg)
	return err
}

// RegressDelete removes a regression entry from the database. The entry is
// displayed and the user asked to confirm the deletion.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf(RegressionError, "io.Writer should not be nil (use a nopWriter)")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(RegressionError, fmt.Sprintf("invalid key [%s]", key))
	}

	pth, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(pth, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return curated.Errorf(RegressionError, err)
	}

	if _, err := io.WriteString(output, fmt.Sprintf("%s\ndelete? (y/n): ", ent)); err != nil {
		return err
	}

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil && err != io.EOF {
		return err
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		if err := db.Delete(v); err != nil {
			return curated.Errorf(RegressionError, err)
		}
		if _, err := io.WriteString(output, fmt.Sprintf("deleted test #%s from regression database\n", key)); err != nil {
			return err
		}
	}

	return nil
}

// RegressRun runs all the tests in the regression database. filterKeys
// selects the entries to run; an empty list runs every entry. The returned
// boolean is false if any entry failed.
//
// Entries that return an error are reported and counted as failures unless
// failOnError is true, in which case the error is returned immediately.
func RegressRun(output io.Writer, verbose bool, failOnError bool, filterKeys []string) (bool, error) {
	if output == nil {
		return false, curated.Errorf(RegressionError, "io.Writer should not be nil (use a nopWriter)")
	}

	pth, err := dbPath()
	if err != nil {
		return false, err
	}

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	if err != nil {
		return false, curated.Errorf(RegressionError, err)
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			if _, err := io.WriteString(output, fmt.Sprintf("invalid key [%s]\n", k)); err != nil {
				return false, err
			}
			continue
		}
		keys = append(keys, v)
	}

	if len(filterKeys) > 0 && len(keys) == 0 {
		return false, curated.Errorf(RegressionError, "no valid keys")
	}

	// tally of results
	var numSucceed, numFail, numError int

	startTime := time.Now()

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf(RegressionError, fmt.Sprintf("database entry [%d] is not a regression entry", key))
		}

		msg := fmt.Sprintf("%03d %s", key, reg)
		if _, err := io.WriteString(output, fmt.Sprintf("running: %s", msg)); err != nil {
			return false, err
		}

		ok, failReason, err := reg.regress(false)
		switch {
		case err != nil:
			numError++
			if failOnError {
				return false, err
			}
			if _, err := io.WriteString(output, fmt.Sprintf("\rerror: %s\n", msg)); err != nil {
				return false, err
			}
			if verbose {
				if _, err := io.WriteString(output, fmt.Sprintf("  ^^ %s\n", err)); err != nil {
					return false, err
				}
			}
			logger.Logf(logger.Allow, "regression", "%03d: %v", key, err)

		case !ok:
			numFail++
			if _, err := io.WriteString(output, fmt.Sprintf("\rfailure: %s\n", msg)); err != nil {
				return false, err
			}
			if verbose && failReason != "" {
				if _, err := io.WriteString(output, fmt.Sprintf("  ^^ %s\n", failReason)); err != nil {
					return false, err
				}
			}

		default:
			numSucceed++
			if _, err := io.WriteString(output, fmt.Sprintf("\rsucceed: %s\n", msg)); err != nil {
				return false, err
			}
		}

		return true, nil
	}

	_, err = db.SelectKeys(onSelect, keys...)
	if err != nil {
		return false, curated.Errorf(RegressionError, err)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail))
	if numError > 0 {
		s.WriteString(fmt.Sprintf(", %d errors", numError))
	}
	s.WriteString(fmt.Sprintf(" [%.02fs]\n", time.Since(startTime).Seconds()))
	if _, err := io.WriteString(output, s.String()); err != nil {
		return false, err
	}

	return numFail == 0 && numError == 0, nil
}
