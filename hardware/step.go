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
	"github.com/jetsetilly/cycle6502/hardware/cpu"
)

// Step advances the machine by one clock edge. The write requested by the
// previous edge is performed before the data bus is read.
func (m *Machine) Step() cpu.Outcome {
	s := m.CPU.State()
	if !s.RW {
		m.Mem.Write(s.Addr, s.Dout)
	}
	return m.CPU.Step(m.Mem.Read(s.Addr))
}

// StepInstruction advances the machine until the current instruction ends.
// If the CPU is in the reset sequence, the sequence is completed and the
// first instruction is executed. The number of edges is returned.
//
// An instruction never takes more than seven cycles so this function always
// returns.
func (m *Machine) StepInstruction() int {
	var n int
	for {
		out := m.Step()
		n++
		if out.End {
			return n
		}
	}
}
