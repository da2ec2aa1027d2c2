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

package cpu

import (
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// the reset sequence reads the start address from the two bytes at
// bus.StartVector. the first phase does not sample the bus
func (st *step) reset() {
	switch st.cur.Reset {
	case ResetPhase0:
		st.out.Sampled = false
		st.read(bus.StartVector)
		st.next.Reset = ResetPhase1
	case ResetPhase1:
		st.next.Tmp8 = st.din
		st.read(bus.StartVector + 1)
		st.next.Reset = ResetPhase2
	case ResetPhase2:
		st.next.Reset = ResetDone
		st.endInstruction(uint16(st.din)<<8 | uint16(st.cur.Tmp8))
		st.out.End = false
		st.out.ResetDone = true
	}
}
