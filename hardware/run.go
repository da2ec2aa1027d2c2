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

package hardware

import (
	"context"
	"fmt"

	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/logger"
)

// Halt is the reason the Run() function returned.
type Halt int

// List of valid Halt values.
const (
	// the context was cancelled
	HaltCancelled Halt = iota

	// the cycle limit was reached
	HaltLimit

	// an instruction jumped or branched to itself
	HaltTrap

	// a BRK instruction was executed
	HaltBRK
)

func (h Halt) String() string {
	switch h {
	case HaltCancelled:
		return "cancelled"
	case HaltLimit:
		return "cycle limit"
	case HaltTrap:
		return "trap"
	case HaltBRK:
		return "BRK"
	}
	return fmt.Sprintf("unknown halt (%d)", int(h))
}

// checking the context on every instruction is expensive. the context is
// checked every PerformanceBrake instructions instead
const PerformanceBrake = 100

// Run the machine until the context is cancelled, the number of clock edges
// reaches the limit or a halt condition is met. A limit of zero or less means
// no limit. The number of edges executed is returned with the halt reason.
//
// The context is only checked on instruction boundaries, so the machine is
// always left between instructions unless the limit is reached.
func (m *Machine) Run(ctx context.Context, limit int) (Halt, int) {
	prefs := m.Instance.Prefs
	trapDetect := prefs.TrapDetect.Get().(bool)
	haltOnBRK := prefs.HaltOnBRK.Get().(bool)

	if ctx.Err() != nil {
		return HaltCancelled, 0
	}

	var edges int
	var brake int

	for {
		out := m.Step()
		edges++

		if out.End {
			r := m.CPU.LastResult

			if trapDetect && m.CPU.State().PC.Address() == r.Address && r.Defn.Operator != instructions.Illegal {
				logger.Logf(logger.Allow, "machine", "trap at $%04x", r.Address)
				return HaltTrap, edges
			}

			if haltOnBRK && r.Defn.Operator == instructions.BRK {
				logger.Logf(logger.Allow, "machine", "BRK at $%04x", r.Address)
				return HaltBRK, edges
			}

			brake++
			if brake >= PerformanceBrake {
				brake = 0
				select {
				case <-ctx.Done():
					return HaltCancelled, edges
				default:
				}
			}
		}

		if limit > 0 && edges >= limit {
			return HaltLimit, edges
		}
	}
}
