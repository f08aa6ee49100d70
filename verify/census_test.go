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

package verify_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jetsetilly/vgaverify/hardware/video/signal"
	"github.com/jetsetilly/vgaverify/test"
	"github.com/jetsetilly/vgaverify/verify"
)

func TestExpectation(t *testing.T) {
	e := verify.Exact(10)
	test.ExpectSuccess(t, e.Constrained())
	test.ExpectSuccess(t, e.Check(10))
	test.ExpectFailure(t, e.Check(9))
	test.ExpectFailure(t, e.Check(11))
	test.ExpectEquality(t, e.String(), "10")

	e = verify.Range(44485, 49499)
	test.ExpectSuccess(t, e.Constrained())
	test.ExpectFailure(t, e.Check(44484))
	test.ExpectSuccess(t, e.Check(44485))
	test.ExpectSuccess(t, e.Check(49498))
	test.ExpectFailure(t, e.Check(49499))
	test.ExpectEquality(t, e.String(), "44485..49498")

	e = verify.Unconstrained()
	test.ExpectFailure(t, e.Constrained())
	test.ExpectSuccess(t, e.Check(0))
	test.ExpectSuccess(t, e.Check(420000))
	test.ExpectEquality(t, e.String(), "-")

	// zero value is unconstrained
	var z verify.Expectation
	test.ExpectEquality(t, z, verify.Unconstrained())
}

// accumulate a frame with the exact distribution of colours given by counts.
// black fills the remainder of the frame
func accumulate(cen *verify.Census, counts map[signal.Color]int) {
	total := 0
	for col, n := range counts {
		for i := 0; i < n; i++ {
			cen.Accumulate(col)
		}
		total += n
	}
	for ; total < 420000; total++ {
		cen.Accumulate(signal.Black)
	}
}

func TestCensusConservation(t *testing.T) {
	var cen verify.Census

	accumulate(&cen, map[signal.Color]int{
		signal.Blue:  12345,
		signal.White: 1,
		signal.Red:   99,
	})

	sum := 0
	for col := signal.Black; col < signal.NumColors; col++ {
		sum += cen.Count(col)
	}
	test.ExpectEquality(t, sum, 420000)
	test.ExpectEquality(t, cen.Total(), 420000)
	test.ExpectEquality(t, cen.Count(signal.Blue), 12345)
	test.ExpectEquality(t, cen.Count(signal.Black), 420000-12345-1-99)

	cen.Reset()
	test.ExpectEquality(t, cen.Total(), 0)
	test.ExpectEquality(t, cen.Count(signal.Blue), 0)
}

func TestGoldenCensus(t *testing.T) {
	var cen verify.Census
	accumulate(&cen, map[signal.Color]int{
		signal.Green:  41808,
		signal.Red:    2048,
		signal.Yellow: 10160,
		signal.Blue:   46992,
	})

	m := cen.Verify(verify.ReferenceGolden)
	if len(m) != 0 {
		t.Errorf("unexpected census mismatches: %s", spew.Sdump(m))
	}

	// both ends of the blue range
	for _, blue := range []int{44485, 49498} {
		cen.Reset()
		accumulate(&cen, map[signal.Color]int{
			signal.Green:  41808,
			signal.Red:    2048,
			signal.Yellow: 10160,
			signal.Blue:   blue,
		})
		test.ExpectEquality(t, len(cen.Verify(verify.ReferenceGolden)), 0, blue)
	}
}

func TestGoldenCensusFailure(t *testing.T) {
	var cen verify.Census
	accumulate(&cen, map[signal.Color]int{
		signal.Green:   41807,
		signal.Red:     2048,
		signal.Yellow:  10160,
		signal.Blue:    49499,
		signal.Magenta: 1,
	})

	want := []verify.CensusMismatch{
		{Color: signal.Blue, Actual: 49499, Expected: verify.Range(44485, 49499)},
		{Color: signal.Green, Actual: 41807, Expected: verify.Exact(41808)},
		{Color: signal.Magenta, Actual: 1, Expected: verify.Exact(0)},
	}

	got := cen.Verify(verify.ReferenceGolden)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("census mismatches differ: %v\n%s", diff, spew.Sdump(got))
	}

	test.ExpectEquality(t, got[0].Error(), "census: Blue: counted 49499 expected 44485..49498")
	test.ExpectEquality(t, got[1].Expected.String(), "41808")
}
