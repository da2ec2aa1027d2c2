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

package instructions

type form struct {
	op   Operator
	mode AddressingMode
}

// opcodes that don't fit the aaa-bbb-cc pattern. matched by the full byte
// before any field decoding happens.
var fixed = map[uint8]form{
	0x00: {BRK, Implied},
	0x20: {JSR, Absolute},
	0x40: {RTI, Implied},
	0x60: {RTS, Implied},
	0x4c: {JMP, Absolute},
	0x6c: {JMP, Indirect},

	0x08: {PHP, Implied},
	0x28: {PLP, Implied},
	0x48: {PHA, Implied},
	0x68: {PLA, Implied},

	0x88: {DEY, Implied},
	0xa8: {TAY, Implied},
	0xc8: {INY, Implied},
	0xe8: {INX, Implied},
	0xca: {DEX, Implied},

	0x18: {CLC, Implied},
	0x38: {SEC, Implied},
	0x58: {CLI, Implied},
	0x78: {SEI, Implied},
	0xb8: {CLV, Implied},
	0xd8: {CLD, Implied},
	0xf8: {SED, Implied},

	0x98: {TYA, Implied},
	0x8a: {TXA, Implied},
	0x9a: {TXS, Implied},
	0xaa: {TAX, Implied},
	0xba: {TSX, Implied},

	0xea: {NOP, Implied},
}

// branch condition selected by the aaa field of xxx10000 opcodes
var branches = [8]Operator{BPL, BMI, BVC, BVS, BCC, BCS, BNE, BEQ}

// group one (cc == 01)
var groupOne = [8]Operator{ORA, AND, EOR, ADC, STA, LDA, CMP, SBC}

var groupOneModes = [8]AddressingMode{
	IndexedIndirect, ZeroPage, Immediate, Absolute,
	IndirectIndexed, ZeroPageIndexedX, AbsoluteIndexedY, AbsoluteIndexedX,
}

// group two (cc == 10)
var groupTwo = [8]Operator{ASL, ROL, LSR, ROR, STX, LDX, DEC, INC}

// group three (cc == 00). JMP is decoded by the fixed table
var groupThree = [8]Operator{Illegal, BIT, Illegal, Illegal, STY, LDY, CPY, CPX}

// addressing modes of groups two and three by bbb. an entry of Implied in
// these tables means that the bbb value is not used by the group, except for
// the accumulator shifts of group two
var groupTwoThreeModes = [8]AddressingMode{
	Immediate, ZeroPage, Implied, Absolute,
	Implied, ZeroPageIndexedX, Implied, AbsoluteIndexedX,
}

// bbb values accepted by each operator in groups two and three
var allowed = map[Operator][]uint8{
	ASL: {1, 2, 3, 5, 7},
	ROL: {1, 2, 3, 5, 7},
	LSR: {1, 2, 3, 5, 7},
	ROR: {1, 2, 3, 5, 7},
	STX: {1, 3, 5},
	LDX: {0, 1, 3, 5, 7},
	DEC: {1, 3, 5, 7},
	INC: {1, 3, 5, 7},
	BIT: {1, 3},
	STY: {1, 3, 5},
	LDY: {0, 1, 3, 5, 7},
	CPY: {0, 1, 3},
	CPX: {0, 1, 3},
}

func accepts(op Operator, bbb uint8) bool {
	for _, b := range allowed[op] {
		if b == bbb {
			return true
		}
	}
	return false
}

// Decode splits the opcode into its aaa-bbb-cc fields and returns the
// definition of the instruction. Opcodes that do not decode to a documented
// instruction return a definition with the Illegal operator.
func Decode(opcode uint8) Definition {
	f, ok := fixed[opcode]
	if !ok {
		f = decodeFields(opcode)
	}

	if f.op == Illegal {
		return Definition{
			OpCode:         opcode,
			Operator:       Illegal,
			Bytes:          1,
			Cycles:         2,
			AddressingMode: Implied,
			Effect:         Read,
		}
	}

	defn := Definition{
		OpCode:         opcode,
		Operator:       f.op,
		Bytes:          f.mode.Bytes(),
		AddressingMode: f.mode,
		Effect:         f.op.effect(),
	}

	// accumulator shifts modify a register not memory
	if defn.Effect == RMW && defn.AddressingMode == Implied {
		defn.Effect = Read
	}

	defn.PageSensitive = defn.IsBranch() || (defn.Effect == Read &&
		(f.mode == AbsoluteIndexedX || f.mode == AbsoluteIndexedY || f.mode == IndirectIndexed))

	defn.Cycles = cycles(defn)

	return defn
}

func decodeFields(opcode uint8) form {
	aaa := opcode >> 5
	bbb := (opcode >> 2) & 0x07
	cc := opcode & 0x03

	if opcode&0x1f == 0x10 {
		return form{branches[aaa], Relative}
	}

	switch cc {
	case 0x01:
		op := groupOne[aaa]
		mode := groupOneModes[bbb]
		if op == STA && mode == Immediate {
			return form{Illegal, Implied}
		}
		return form{op, mode}

	case 0x02, 0x00:
		var op Operator
		if cc == 0x02 {
			op = groupTwo[aaa]
		} else {
			op = groupThree[aaa]
		}
		if op == Illegal || !accepts(op, bbb) {
			return form{Illegal, Implied}
		}

		mode := groupTwoThreeModes[bbb]

		// X register operations index with Y
		if op == STX || op == LDX {
			switch mode {
			case ZeroPageIndexedX:
				mode = ZeroPageIndexedY
			case AbsoluteIndexedX:
				mode = AbsoluteIndexedY
			}
		}

		return form{op, mode}
	}

	return form{Illegal, Implied}
}

// cycles returns the number of cycles the instruction takes when there is no
// page fault and, for branches, when the branch is not taken.
func cycles(defn Definition) int {
	switch defn.Operator {
	case JMP:
		if defn.AddressingMode == Indirect {
			return 5
		}
		return 3
	case JSR, RTS, RTI:
		return 5
	case BRK:
		return 7
	case PHA, PHP:
		return 3
	case PLA, PLP:
		return 4
	}

	var n int

	switch defn.AddressingMode {
	case Implied, Immediate, Relative:
		return 2
	case ZeroPage:
		n = 3
	case ZeroPageIndexedX, ZeroPageIndexedY, Absolute:
		n = 4
	case AbsoluteIndexedX, AbsoluteIndexedY:
		n = 4
		if defn.Effect != Read {
			n = 5
		}
	case IndexedIndirect:
		n = 6
	case IndirectIndexed:
		n = 5
		if defn.Effect != Read {
			n = 6
		}
	}

	if defn.Effect == RMW {
		n += 2
	}

	return n
}
