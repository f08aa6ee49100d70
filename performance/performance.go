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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/vgaverify/curated"
	"github.com/jetsetilly/vgaverify/dut"
	"github.com/jetsetilly/vgaverify/hardware/video/specification"
	"github.com/jetsetilly/vgaverify/logger"
	"github.com/jetsetilly/vgaverify/verify"
)

// PerformanceError is the sentinel pattern for errors in the Check function.
const PerformanceError = "performance: %v"

// the timer channel is only checked every brake samples. checking the channel
// is relatively expensive compared to sampling the simulation.
const brake = 1000

// sentinal error returned by the sampling loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the adapter. The adapter is reset and then
// sampled for the specified duration. Leadtime is the period before the
// measurement begins, allowing the sampling rate to settle.
//
// The sampling will create a cpu and memory profile, a trace (or a
// combination of those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, adapter dut.Adapter, mode specification.Mode, leadtime string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}
	if dur <= 0 {
		return curated.Errorf(PerformanceError, "duration must be positive")
	}

	lead, err := time.ParseDuration(leadtime)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	ctx, err := verify.NewContext(adapter, mode)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	if err := verify.NewResetSequencer(ctx).Run(); err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	var startSample int
	var numSamples int

	runner := func() error {
		// the leadtime will put false on the timerChan. the conclusion of the
		// measurement period will put true on the timerChan
		timerChan := make(chan bool, 1)

		time.AfterFunc(lead, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			for i := 0; i < brake; i++ {
				if _, err := ctx.SampleOutput(); err != nil {
					return err
				}
				if err := ctx.Step(); err != nil {
					return err
				}
				numSamples++
			}

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startSample = numSamples
				logger.Logf(logger.Allow, "performance", "leadtime of %v concluded", lead)
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	n := numSamples - startSample
	rate, accuracy := CalcRate(mode, n, dur.Seconds())
	_, err = io.WriteString(output, fmt.Sprintf("%.0f samples/s (%d samples in %.2f seconds) %.4f%% of pixel clock\n", rate, n, dur.Seconds(), accuracy))

	return err
}

// CalcRate takes the number of samples and duration (in seconds) and returns
// the samples-per-second and that value as a percentage of the pixel clock.
func CalcRate(mode specification.Mode, numSamples int, duration float64) (rate float64, accuracy float64) {
	rate = float64(numSamples) / duration
	accuracy = 100 * rate / float64(mode.PixelClock)
	return rate, accuracy
}
