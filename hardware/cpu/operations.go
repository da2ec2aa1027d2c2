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
	"github.com/jetsetilly/cycle6502/hardware/cpu/alu"
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
)

// none is used in an operation when no register is involved
const none registers.Select = -1

// operation describes how the ALU is used by an operator. for operators that
// access memory the second ALU input is always the data bus. for implied
// operators the second input is the in2 register, or zero if in2 is none
type operation struct {
	fn  alu.Function
	in1 registers.Select
	in2 registers.Select
	dst registers.Select
}

var operations = map[instructions.Operator]operation{
	// loads
	instructions.LDA: {alu.LD, none, none, registers.SelectA},
	instructions.LDX: {alu.LD, none, none, registers.SelectX},
	instructions.LDY: {alu.LD, none, none, registers.SelectY},

	// arithmetic and logic with the accumulator
	instructions.ADC: {alu.ADC, registers.SelectA, none, registers.SelectA},
	instructions.SBC: {alu.SBC, registers.SelectA, none, registers.SelectA},
	instructions.AND: {alu.AND, registers.SelectA, none, registers.SelectA},
	instructions.ORA: {alu.ORA, registers.SelectA, none, registers.SelectA},
	instructions.EOR: {alu.EOR, registers.SelectA, none, registers.SelectA},
	instructions.BIT: {alu.BIT, registers.SelectA, none, none},

	// comparisons
	instructions.CMP: {alu.SUB, registers.SelectA, none, none},
	instructions.CPX: {alu.SUB, registers.SelectX, none, none},
	instructions.CPY: {alu.SUB, registers.SelectY, none, none},

	// stores. in1 is the register being stored
	instructions.STA: {alu.NONE, registers.SelectA, none, none},
	instructions.STX: {alu.NONE, registers.SelectX, none, none},
	instructions.STY: {alu.NONE, registers.SelectY, none, none},

	// shifts and rotates. when used with memory the in1 and dst fields are
	// ignored
	instructions.ASL: {alu.ASL, registers.SelectA, none, registers.SelectA},
	instructions.LSR: {alu.LSR, registers.SelectA, none, registers.SelectA},
	instructions.ROL: {alu.ROL, registers.SelectA, none, registers.SelectA},
	instructions.ROR: {alu.ROR, registers.SelectA, none, registers.SelectA},

	// memory increment and decrement
	instructions.INC: {alu.INC, none, none, none},
	instructions.DEC: {alu.DEC, none, none, none},

	// register increment and decrement
	instructions.INX: {alu.INC, registers.SelectX, none, registers.SelectX},
	instructions.INY: {alu.INC, registers.SelectY, none, registers.SelectY},
	instructions.DEX: {alu.DEC, registers.SelectX, none, registers.SelectX},
	instructions.DEY: {alu.DEC, registers.SelectY, none, registers.SelectY},

	// transfers. TXS is the only transfer that doesn't affect the flags
	instructions.TAX: {alu.LD, none, registers.SelectA, registers.SelectX},
	instructions.TAY: {alu.LD, none, registers.SelectA, registers.SelectY},
	instructions.TXA: {alu.LD, none, registers.SelectX, registers.SelectA},
	instructions.TYA: {alu.LD, none, registers.SelectY, registers.SelectA},
	instructions.TSX: {alu.LD, none, registers.SelectSP, registers.SelectX},
	instructions.TXS: {alu.TR, none, registers.SelectX, registers.SelectSP},

	// single flags
	instructions.CLC: {alu.CLC, none, none, none},
	instructions.SEC: {alu.SEC, none, none, none},
	instructions.CLD: {alu.CLD, none, none, none},
	instructions.SED: {alu.SED, none, none, none},
	instructions.CLI: {alu.CLI, none, none, none},
	instructions.SEI: {alu.SEI, none, none, none},
	instructions.CLV: {alu.CLV, none, none, none},

	instructions.NOP: {alu.NONE, none, none, none},

	// stack
	instructions.PHA: {alu.NONE, registers.SelectA, none, none},
	instructions.PHP: {alu.NONE, registers.SelectStatus, none, none},
	instructions.PLA: {alu.LD, none, none, registers.SelectA},
	instructions.PLP: {alu.LDSR, none, none, none},
}

func (st *step) get(s registers.Select) uint8 {
	if s == none {
		return 0
	}
	return st.cur.Get(s)
}

// apply performs the operation to the second input and commits the result and
// the flags to the next state
func (st *step) apply(op operation, in2 uint8) {
	out, flags := alu.Execute(op.fn, st.get(op.in1), in2, st.cur.Status.Value())
	st.next.Status.Load(flags)
	if op.dst != none {
		st.next.Set(op.dst, out)
	}
}

// handlers for the instruction categories that don't follow the generic
// read, write or RMW patterns. keyed by operator
var handlers map[instructions.Operator]func(*step, *instructions.Definition)

func init() {
	handlers = map[instructions.Operator]func(*step, *instructions.Definition){
		instructions.JMP: (*step).jump,
		instructions.JSR: (*step).jsr,
		instructions.RTS: (*step).rts,
		instructions.RTI: (*step).rti,
		instructions.BRK: (*step).brk,
		instructions.PHA: (*step).push,
		instructions.PHP: (*step).push,
		instructions.PLA: (*step).pull,
		instructions.PLP: (*step).pull,
	}
	for _, op := range []instructions.Operator{
		instructions.BCC, instructions.BCS, instructions.BEQ, instructions.BMI,
		instructions.BNE, instructions.BPL, instructions.BVC, instructions.BVS,
	} {
		handlers[op] = (*step).branch
	}
}

func (st *step) execute() {
	defn := st.cur.Definition()

	if !defn.IsLegal() {
		st.illegal()
		return
	}

	if h, ok := handlers[defn.Operator]; ok {
		h(st, defn)
		return
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		st.implied(defn)
	case instructions.Immediate:
		st.immediate(defn)
	default:
		st.memory(defn)
	}
}

// illegal opcodes end on the first cycle after the fetch. the program counter
// has already been advanced past the opcode
func (st *step) illegal() {
	st.out.Illegal = true
	st.endInstruction(st.cur.PC.Address())
}

// implied instructions operate on registers only. the first cycle is a dummy
// read of the byte following the opcode
func (st *step) implied(defn *instructions.Definition) {
	op := operations[defn.Operator]
	st.apply(op, st.get(op.in2))
	st.endInstruction(st.cur.PC.Address())
}

func (st *step) immediate(defn *instructions.Definition) {
	st.operand()
	st.apply(operations[defn.Operator], st.din)
	st.endInstruction(st.next.PC.Address())
}

// memory instructions resolve the effective address and then access it
// according to the instruction's effect
func (st *step) memory(defn *instructions.Definition) {
	op := operations[defn.Operator]

	if st.cur.Access == 0 {
		if !resolvers[defn.AddressingMode](st, defn) {
			return
		}

		st.next.Access = st.cur.Cycle + 1
		if defn.Effect == instructions.Write {
			st.write(st.next.Tmp16, st.get(op.in1))
		} else {
			st.read(st.next.Tmp16)
		}
		return
	}

	switch defn.Effect {
	case instructions.Read:
		st.apply(op, st.din)
		st.endInstruction(st.cur.PC.Address())

	case instructions.Write:
		st.endInstruction(st.cur.PC.Address())

	case instructions.RMW:
		switch st.cur.Cycle - st.cur.Access {
		case 0:
			// the unmodified value is written back before the modified value
			st.next.Tmp8 = st.din
			st.write(st.cur.Addr, st.din)
		case 1:
			out, flags := alu.Execute(op.fn, st.cur.Tmp8, 0, st.cur.Status.Value())
			st.next.Status.Load(flags)
			st.write(st.cur.Addr, out)
		default:
			st.endInstruction(st.cur.PC.Address())
		}
	}
}
