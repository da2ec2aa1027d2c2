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

package execution

import (
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
)

// Result records the execution of a single instruction. A Result is updated
// on every cycle of the instruction and is complete once Final is true.
type Result struct {
	// address of the opcode
	Address uint16

	// the decoded definition. nil until the opcode has been fetched
	Defn *instructions.Definition

	// number of instruction bytes read so far, including the opcode
	ByteCount int

	// the operand as found in the instruction stream. for branches this is
	// the offset, for two byte operands the little-endian word
	InstructionData uint16

	// the number of cycles the instruction took, including the opcode fetch.
	// differs from Defn.Cycles for page faults and taken branches
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow.
	// for branches, whether the destination was in a different page
	PageFault bool

	// whether a known quirk of the 6502 was triggered
	Bug Bug

	// whether the instruction has completed. fields are subject to change
	// until this is true
	Final bool
}

// Reset the result ready for the next instruction.
func (r *Result) Reset(address uint16) {
	*r = Result{Address: address}
}

// Target returns the effective destination of a branch, assuming that the
// branch is taken. For other instructions it returns the operand unchanged.
func (r Result) Target() uint16 {
	if r.Defn == nil || !r.Defn.IsBranch() {
		return r.InstructionData
	}
	next := r.Address + uint16(r.Defn.Bytes)
	return next + uint16(int16(int8(uint8(r.InstructionData))))
}
