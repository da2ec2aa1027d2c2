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

package alu

import (
	"fmt"

	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
)

// Function selects the operation performed by Execute().
type Function int

// List of valid Function values.
const (
	NONE Function = iota

	// load and transfer
	LD
	TR
	LDSR

	// arithmetic
	ADC
	SBC
	SUB

	// logic
	ORA
	AND
	EOR
	BIT

	// increment and decrement
	INC
	DEC

	// shift and rotate
	ASL
	LSR
	ROL
	ROR

	// single flag
	CLC
	SEC
	CLD
	SED
	CLI
	SEI
	CLV
)

var functionNames = [...]string{
	NONE: "NONE", LD: "LD", TR: "TR", LDSR: "LDSR",
	ADC: "ADC", SBC: "SBC", SUB: "SUB",
	ORA: "ORA", AND: "AND", EOR: "EOR", BIT: "BIT",
	INC: "INC", DEC: "DEC",
	ASL: "ASL", LSR: "LSR", ROL: "ROL", ROR: "ROR",
	CLC: "CLC", SEC: "SEC", CLD: "CLD", SED: "SED", CLI: "CLI", SEI: "SEI", CLV: "CLV",
}

func (fn Function) String() string {
	if fn < 0 || int(fn) >= len(functionNames) {
		return fmt.Sprintf("unknown ALU function (%d)", int(fn))
	}
	return functionNames[fn]
}

// Functions is the list of every valid Function value.
func Functions() []Function {
	fns := make([]Function, 0, len(functionNames))
	for fn := range functionNames {
		fns = append(fns, Function(fn))
	}
	return fns
}

// Affects returns the flags that may be changed by the function. Flags not in
// the returned mask are passed through Execute() unchanged.
func (fn Function) Affects() registers.Flag {
	const nz = registers.Sign | registers.Zero
	switch fn {
	case LD, ORA, AND, EOR, INC, DEC:
		return nz
	case LDSR:
		return 0xff
	case ADC, SBC:
		return nz | registers.Overflow | registers.Carry
	case SUB, ASL, LSR, ROL, ROR:
		return nz | registers.Carry
	case BIT:
		return nz | registers.Overflow
	case CLC, SEC:
		return registers.Carry
	case CLD, SED:
		return registers.DecimalMode
	case CLI, SEI:
		return registers.InterruptDisable
	case CLV:
		return registers.Overflow
	}
	return 0
}

// set or clear flag f in flags according to v.
func set(flags uint8, f registers.Flag, v bool) uint8 {
	if v {
		return flags | uint8(f)
	}
	return flags &^ uint8(f)
}

// setNZ sets the sign and zero flags according to the value v.
func setNZ(flags uint8, v uint8) uint8 {
	flags = set(flags, registers.Sign, v&0x80 == 0x80)
	return set(flags, registers.Zero, v == 0)
}

func carry(flags uint8) uint8 {
	return flags & uint8(registers.Carry)
}

// Execute the ALU function on the two inputs and the current flags. Returns
// the output and the new flags. The output is zero for functions that
// produce no result.
func Execute(fn Function, in1 uint8, in2 uint8, flags uint8) (uint8, uint8) {
	var out uint8

	switch fn {
	case NONE:

	case LD:
		out = in2
		flags = setNZ(flags, out)

	case TR:
		out = in2

	case LDSR:
		flags = in2

	case ADC:
		if flags&uint8(registers.DecimalMode) != 0 {
			out, flags = addDecimal(in1, in2, flags)
		} else {
			out, flags = add(in1, in2, flags)
		}

	case SBC:
		if flags&uint8(registers.DecimalMode) != 0 {
			out, flags = subtractDecimal(in1, in2, flags)
		} else {
			out, flags = add(in1, ^in2, flags)
		}

	case SUB:
		// compare does not use the incoming carry
		sum := uint16(in1) + uint16(^in2) + 1
		out = uint8(sum)
		flags = setNZ(flags, out)
		flags = set(flags, registers.Carry, sum > 0xff)

	case ORA:
		out = in1 | in2
		flags = setNZ(flags, out)

	case AND:
		out = in1 & in2
		flags = setNZ(flags, out)

	case EOR:
		out = in1 ^ in2
		flags = setNZ(flags, out)

	case BIT:
		// in1 is the accumulator and in2 is the memory value
		flags = set(flags, registers.Zero, in1&in2 == 0)
		flags = set(flags, registers.Sign, in2&0x80 == 0x80)
		flags = set(flags, registers.Overflow, in2&0x40 == 0x40)

	case INC:
		out = in1 + 1
		flags = setNZ(flags, out)

	case DEC:
		out = in1 - 1
		flags = setNZ(flags, out)

	case ASL:
		out = in1 << 1
		flags = setNZ(flags, out)
		flags = set(flags, registers.Carry, in1&0x80 == 0x80)

	case LSR:
		out = in1 >> 1
		flags = setNZ(flags, out)
		flags = set(flags, registers.Carry, in1&0x01 == 0x01)

	case ROL:
		out = in1<<1 | carry(flags)
		flags = setNZ(flags, out)
		flags = set(flags, registers.Carry, in1&0x80 == 0x80)

	case ROR:
		c := carry(flags)
		out = in1>>1 | c<<7
		flags = setNZ(flags, out)
		flags = set(flags, registers.Sign, c == 1)
		flags = set(flags, registers.Carry, in1&0x01 == 0x01)

	case CLC:
		flags = set(flags, registers.Carry, false)
	case SEC:
		flags = set(flags, registers.Carry, true)
	case CLD:
		flags = set(flags, registers.DecimalMode, false)
	case SED:
		flags = set(flags, registers.DecimalMode, true)
	case CLI:
		flags = set(flags, registers.InterruptDisable, false)
	case SEI:
		flags = set(flags, registers.InterruptDisable, true)
	case CLV:
		flags = set(flags, registers.Overflow, false)

	default:
		panic(fmt.Sprintf("alu: %s", fn))
	}

	return out, flags | uint8(registers.Unused)
}

// add is binary addition with carry. subtraction is addition of the ones'
// complement of the second operand.
func add(a uint8, b uint8, flags uint8) (uint8, uint8) {
	c := carry(flags)
	sum := uint16(a) + uint16(b) + uint16(c)
	out := uint8(sum)

	// overflow is the carry into bit 7 XOR the carry out of bit 7
	c6 := (a&0x7f + b&0x7f + c) >> 7
	c7 := uint8(sum >> 8)

	flags = setNZ(flags, out)
	flags = set(flags, registers.Carry, c7 == 1)
	flags = set(flags, registers.Overflow, c6 != c7)
	return out, flags
}
