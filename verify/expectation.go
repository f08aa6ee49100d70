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

type expectationKind int

const (
	unconstrained expectationKind = iota
	exact
	between
)

// Expectation is the golden value for a single colour count. The zero value
// is Unconstrained.
type Expectation struct {
	kind expectationKind
	low  int
	high int
}

// Exact returns an Expectation that is only met by n.
func Exact(n int) Expectation {
	return Expectation{kind: exact, low: n, high: n + 1}
}

// Range returns an Expectation that is met by values from low up to but not
// including high.
func Range(low int, high int) Expectation {
	return Expectation{kind: between, low: low, high: high}
}

// Unconstrained returns an Expectation that is met by any value.
func Unconstrained() Expectation {
	return Expectation{}
}

// Constrained returns false if the Expectation is met by any value.
func (e Expectation) Constrained() bool {
	return e.kind != unconstrained
}

// Check returns true if n meets the Expectation.
func (e Expectation) Check(n int) bool {
	if e.kind == unconstrained {
		return true
	}
	return n >= e.low && n < e.high
}

func (e Expectation) String() string {
	switch e.kind {
	case exact:
		return fmt.Sprintf("%d", e.low)
	case between:
		return fmt.Sprintf("%d..%d", e.low, e.high-1)
	}
	return "-"
}

// Golden is the set of expectations for a single frame, indexed by colour.
type Golden [signal.NumColors]Expectation

// ReferenceGolden is the expected colour count for the first frame of the
// reference design.
//
// Green is the interior of every wall block (20 blocks in each of the top
// and bottom walls and 13 blocks in the right hand wall) plus the ball.
//
//	28*28*20*2 + 28*28*13 + 16*16 = 41808
//
// Red is the paddle.
//
//	32*64 = 2048
//
// Yellow is the edge of every wall block.
//
//	640*4 + 28*4*20*2 + (32*32-28*28)*13 = 10160
//
// Blue is the speckled background of the play area, excluding the paddle and
// the ball. The density of the speckle is 18.75% +/- 1%.
//
//	(640-32)*(480-64) - 32*64 - 16*16 = 250624
//
// There should be no Cyan, Magenta or White. Black is whatever remains and is
// not checked.
var ReferenceGolden = Golden{
	signal.Black:   Unconstrained(),
	signal.Blue:    Range(44485, 49499),
	signal.Green:   Exact(41808),
	signal.Cyan:    Exact(0),
	signal.Red:     Exact(2048),
	signal.Magenta: Exact(0),
	signal.Yellow:  Exact(10160),
	signal.White:   Exact(0),
}

func (g Golden) String() string {
	s := ""
	for c, e := range g {
		if e.Constrained() {
			s = fmt.Sprintf("%s%-10s%10s\n", s, signal.Color(c), e)
		}
	}
	return s
}
