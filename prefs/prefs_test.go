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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/vgaverify/prefs"
	"github.com/jetsetilly/vgaverify/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	// adding the same key twice is an error
	test.ExpectFailure(t, dsk.Add("test", &v))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestLoadPreservesUnknownKeys(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.String
	test.ExpectSuccess(t, dskA.Add("serial.device", &a))
	test.ExpectSuccess(t, a.Set("/dev/ttyACM0"))
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Int
	test.ExpectSuccess(t, dskB.Add("progress", &b))
	test.ExpectSuccess(t, b.Set(16))
	test.DemandSuccess(t, dskB.Save())

	cmpTmpFile(t, fn, "progress :: 16\nserial.device :: /dev/ttyACM0\n")

	// load into fresh values
	var c prefs.String
	dskC, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dskC.Add("serial.device", &c))
	test.DemandSuccess(t, dskC.Load())
	test.ExpectEquality(t, c.String(), "/dev/ttyACM0")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})

	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, seen, 5)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
}

func TestCommandLineStack(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var basic prefs.Bool
	var frame prefs.Bool
	test.ExpectSuccess(t, dsk.Add("basic", &basic))
	test.ExpectSuccess(t, dsk.Add("frame", &frame))
	test.ExpectSuccess(t, basic.Set(true))
	test.ExpectSuccess(t, frame.Set(true))

	prefs.PushCommandLineStack("basic::false; unused::1; malformed")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)

	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, basic.Get().(bool), false)
	test.ExpectEquality(t, frame.Get().(bool), true)

	// only the unused entry remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::1")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
