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

package verify

import (
	"fmt"

	"github.com/jetsetilly/vgaverify/hardware/video/signal"
)

// Census is a count of samples by colour.
type Census struct {
	counts [signal.NumColors]int
	total  int
}

// Accumulate one sample of the specified colour.
func (cen *Census) Accumulate(col signal.Color) {
	cen.counts[col&(signal.NumColors-1)]++
	cen.total++
}

// Count returns the number of samples of the specified colour.
func (cen *Census) Count(col signal.Color) int {
	if col >= signal.NumColors {
		return 0
	}
	return cen.counts[col]
}

// Total returns the number of samples accumulated since the last Reset().
// This is always the sum of all colour counts.
func (cen *Census) Total() int {
	return cen.total
}

// Reset all counts to zero.
func (cen *Census) Reset() {
	*cen = Census{}
}

// Verify the colour counts against the Golden values. Every constrained colour
// is checked.
func (cen *Census) Verify(golden Golden) []CensusMismatch {
	var m []CensusMismatch
	for c, e := range golden {
		if !e.Check(cen.counts[c]) {
			m = append(m, CensusMismatch{
				Color:    signal.Color(c),
				Actual:   cen.counts[c],
				Expected: e,
			})
		}
	}
	return m
}

func (cen *Census) String() string {
	s := ""
	for c, n := range cen.counts {
		s = fmt.Sprintf("%s%s=%d ", s, signal.Color(c), n)
	}
	return fmt.Sprintf("%stotal=%d", s, cen.total)
}

// CensusMismatch records a colour count that did not meet its Expectation.
type CensusMismatch struct {
	Color    signal.Color
	Actual   int
	Expected Expectation
}

func (m CensusMismatch) Error() string {
	return fmt.Sprintf("census: %s: counted %d expected %s", m.Color, m.Actual, m.Expected)
}
