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

// Package statsview launches a web server that shows live runtime statistics
// of the harness (heap, goroutines, GC pauses). Useful when a long run against
// a slow serial link appears to stall.
//
// The server is provided by github.com/go-echarts/statsview and runs in its
// own goroutine for the lifetime of the process.
package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12800"

const url = "/debug/statsview"

var launched sync.Once

// Launch the statistics server. Calling Launch() more than once has no
// additional effect.
func Launch(output io.Writer) {
	launched.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go mgr.Start()
		fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, url)
	})
}
