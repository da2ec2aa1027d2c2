// This file is part of cycle6502.
//
// cycle6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cycle6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cycle6502.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware"
)

// ReferenceClock is the clock rate of the CPU that accuracy is measured
// against.
const ReferenceClock = 1_000_000

// CalcRate returns the number of cycles per second and the rate as a
// percentage of the ReferenceClock.
func CalcRate(cycles int, seconds float64) (rate float64, accuracy float64) {
	rate = float64(cycles) / seconds
	accuracy = 100 * rate / ReferenceClock
	return rate, accuracy
}

// Check the performance of the emulation by running the machine for the
// specified duration, after running for the leadtime to allow the rate to
// settle. Halt conditions are disabled for the duration of the check.
func Check(ctx context.Context, output io.Writer, m *hardware.Machine, profile Profile, duration string, leadtime string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	lead, err := time.ParseDuration(leadtime)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := m.Instance.Prefs.TrapDetect.Set(false); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if err := m.Instance.Prefs.HaltOnBRK.Set(false); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var cycles int
	var elapsed time.Duration

	runner := func() error {
		leadCtx, cancel := context.WithTimeout(ctx, lead)
		defer cancel()
		m.Run(leadCtx, 0)

		if ctx.Err() != nil {
			return curated.Errorf("performance: %v", ctx.Err())
		}

		measureCtx, cancel := context.WithTimeout(ctx, dur)
		defer cancel()

		start := m.CPU.Cycles()
		startTime := time.Now()
		m.Run(measureCtx, 0)
		elapsed = time.Since(startTime)
		cycles = m.CPU.Cycles() - start

		return nil
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return err
	}

	rate, accuracy := CalcRate(cycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", rate/1_000_000, cycles, elapsed.Seconds(), accuracy)

	return nil
}
