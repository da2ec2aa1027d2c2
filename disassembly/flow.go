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

package disassembly

import (
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
)

// Bless follows the flow of execution from the address, blessing every
// instruction reached. Both paths of a branch are followed, as is the
// destination of a JSR and the instruction following it.
//
// The flow stops at illegal opcodes, at the end of the disassembly range and
// at instructions that leave the flow in a way that can't be followed
// statically (RTS, RTI, BRK and indirect JMP).
func (dsm *Disassembly) Bless(address uint16) {
	queue := []uint16{address}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		for {
			e := dsm.entry(a)
			if e == nil || e.Level >= EntryLevelBlessed {
				break // for loop
			}

			r := e.Result
			if !r.Defn.IsLegal() {
				break // for loop
			}

			e.Level = EntryLevelBlessed

			if r.Defn.IsBranch() {
				queue = append(queue, r.Target())
			}

			var stop bool

			switch r.Defn.Operator {
			case instructions.JMP:
				if r.Defn.AddressingMode == instructions.Absolute {
					queue = append(queue, r.InstructionData)
				}
				stop = true
			case instructions.JSR:
				queue = append(queue, r.InstructionData)
			case instructions.RTS, instructions.RTI, instructions.BRK:
				stop = true
			}

			next := a + uint16(r.Defn.Bytes)
			if stop || next < a {
				break // for loop
			}
			a = next
		}
	}
}
