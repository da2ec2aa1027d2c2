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
	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// branch conditions
var conditions = map[instructions.Operator]func(registers.StatusRegister) bool{
	instructions.BPL: func(sr registers.StatusRegister) bool { return !sr.Sign },
	instructions.BMI: func(sr registers.StatusRegister) bool { return sr.Sign },
	instructions.BVC: func(sr registers.StatusRegister) bool { return !sr.Overflow },
	instructions.BVS: func(sr registers.StatusRegister) bool { return sr.Overflow },
	instructions.BCC: func(sr registers.StatusRegister) bool { return !sr.Carry },
	instructions.BCS: func(sr registers.StatusRegister) bool { return sr.Carry },
	instructions.BNE: func(sr registers.StatusRegister) bool { return !sr.Zero },
	instructions.BEQ: func(sr registers.StatusRegister) bool { return sr.Zero },
}

// a taken branch reads the next opcode while the offset is added to the low
// byte of the program counter. if the addition crosses a page the program
// counter with the uncorrected high byte is read while the correction is made
func (st *step) branch(defn *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		if !conditions[defn.Operator](st.cur.Status) {
			st.endInstruction(st.next.PC.Address())
			return
		}
		st.read(st.next.PC.Address())

	case 2:
		pc := st.cur.PC.Address()
		offset := st.cur.Tmp8
		target := pc + uint16(int16(int8(offset)))

		// the carry out of the low byte disagrees with the sign of the
		// offset when the high byte needs correcting
		carry := uint16(pc&0x00ff)+uint16(offset) > 0xff
		negative := offset&0x80 == 0x80
		if carry == negative {
			st.endInstruction(target)
			return
		}

		st.next.PageFault = true
		st.next.Tmp16 = target
		st.read(pc&0xff00 | target&0x00ff)

	default:
		st.endInstruction(st.cur.Tmp16)
	}
}

func (st *step) jump(defn *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.read(st.next.PC.Address())
		return
	case 2:
		st.operand()
		address := uint16(st.din)<<8 | uint16(st.cur.Tmp8)
		if defn.AddressingMode == instructions.Absolute {
			st.endInstruction(address)
			return
		}
		st.next.Tmp16 = address
		st.read(address)
		return
	case 3:
		// the high byte of the indirect address is read from the same page as
		// the low byte
		ptr := st.cur.Tmp16
		if ptr&0x00ff == 0x00ff {
			st.bug(execution.JmpIndirectAddressingBug)
		}
		st.next.Tmp8 = st.din
		st.read(ptr&0xff00 | (ptr+1)&0x00ff)
		return
	}

	st.endInstruction(uint16(st.din)<<8 | uint16(st.cur.Tmp8))
}

// the return address pushed by JSR is the address of the last byte of the
// instruction
func (st *step) jsr(_ *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.write(st.stack(0), st.next.PC.Hi())
	case 2:
		st.adjustSP(-1)
		st.write(st.stack(-1), st.cur.PC.Lo())
	case 3:
		st.adjustSP(-1)
		st.read(st.cur.PC.Address())
	default:
		st.operand()
		st.endInstruction(uint16(st.din)<<8 | uint16(st.cur.Tmp8))
	}
}

// the address pulled from the stack is read before being incremented
func (st *step) rts(_ *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.adjustSP(1)
		st.read(st.stack(1))
	case 2:
		st.adjustSP(1)
		st.next.Tmp8 = st.din
		st.read(st.stack(1))
	case 3:
		st.next.Tmp16 = uint16(st.din)<<8 | uint16(st.cur.Tmp8)
		st.read(st.next.Tmp16)
	default:
		st.endInstruction(st.cur.Tmp16 + 1)
	}
}

func (st *step) rti(_ *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.adjustSP(1)
		st.read(st.stack(1))
	case 2:
		st.adjustSP(1)
		st.apply(operations[instructions.PLP], st.din)
		st.read(st.stack(1))
	case 3:
		st.adjustSP(1)
		st.next.Tmp8 = st.din
		st.read(st.stack(1))
	default:
		st.endInstruction(uint16(st.din)<<8 | uint16(st.cur.Tmp8))
	}
}

// BRK skips the byte following the opcode. the pushed status register has the
// break flag set and the interrupt disable flag is set before the vector is
// read
func (st *step) brk(_ *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.next.PC.Add(1)
		st.write(st.stack(0), st.next.PC.Hi())
	case 2:
		st.adjustSP(-1)
		st.write(st.stack(-1), st.cur.PC.Lo())
	case 3:
		st.adjustSP(-1)
		st.write(st.stack(-1), st.cur.Status.Value()|uint8(registers.Break))
	case 4:
		st.adjustSP(-1)
		st.next.Status.InterruptDisable = true
		st.read(bus.IRQVector)
	case 5:
		st.next.Tmp8 = st.din
		st.read(bus.IRQVector + 1)
	default:
		st.endInstruction(uint16(st.din)<<8 | uint16(st.cur.Tmp8))
	}
}

// push instructions write the register to the stack on the second cycle
func (st *step) push(defn *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		v := st.get(operations[defn.Operator].in1)
		if defn.Operator == instructions.PHP {
			v |= uint8(registers.Break)
		}
		st.write(st.stack(0), v)
	default:
		st.adjustSP(-1)
		st.endInstruction(st.cur.PC.Address())
	}
}

// pull instructions read the stack at the current stack pointer before
// incrementing it and reading the value
func (st *step) pull(defn *instructions.Definition) {
	switch st.cur.Cycle {
	case 1:
		st.read(st.stack(0))
	case 2:
		st.adjustSP(1)
		st.read(st.stack(1))
	default:
		st.apply(operations[defn.Operator], st.din)
		st.endInstruction(st.cur.PC.Address())
	}
}
