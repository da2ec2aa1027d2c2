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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/test"
)

func TestLegalCount(t *testing.T) {
	test.ExpectEquality(t, len(instructions.Legal()), 151)

	// every documented mnemonic appears at least once
	seen := make(map[instructions.Operator]bool)
	for _, d := range instructions.Legal() {
		seen[d.Operator] = true
	}
	test.ExpectEquality(t, len(seen), 56)
}

func TestDecode(t *testing.T) {
	type tc struct {
		opcode uint8
		op     instructions.Operator
		mode   instructions.AddressingMode
		effect instructions.Category
		bytes  int
		cycles int
		page   bool
	}

	for _, c := range []tc{
		{0xa9, instructions.LDA, instructions.Immediate, instructions.Read, 2, 2, false},
		{0xbd, instructions.LDA, instructions.AbsoluteIndexedX, instructions.Read, 3, 4, true},
		{0xb1, instructions.LDA, instructions.IndirectIndexed, instructions.Read, 2, 5, true},
		{0xa1, instructions.LDA, instructions.IndexedIndirect, instructions.Read, 2, 6, false},
		{0x9d, instructions.STA, instructions.AbsoluteIndexedX, instructions.Write, 3, 5, false},
		{0x91, instructions.STA, instructions.IndirectIndexed, instructions.Write, 2, 6, false},
		{0x81, instructions.STA, instructions.IndexedIndirect, instructions.Write, 2, 6, false},
		{0x95, instructions.STA, instructions.ZeroPageIndexedX, instructions.Write, 2, 4, false},
		{0x96, instructions.STX, instructions.ZeroPageIndexedY, instructions.Write, 2, 4, false},
		{0xb6, instructions.LDX, instructions.ZeroPageIndexedY, instructions.Read, 2, 4, false},
		{0xbe, instructions.LDX, instructions.AbsoluteIndexedY, instructions.Read, 3, 4, true},
		{0xa2, instructions.LDX, instructions.Immediate, instructions.Read, 2, 2, false},
		{0x0a, instructions.ASL, instructions.Implied, instructions.Read, 1, 2, false},
		{0x06, instructions.ASL, instructions.ZeroPage, instructions.RMW, 2, 5, false},
		{0x16, instructions.ASL, instructions.ZeroPageIndexedX, instructions.RMW, 2, 6, false},
		{0x0e, instructions.ASL, instructions.Absolute, instructions.RMW, 3, 6, false},
		{0x1e, instructions.ASL, instructions.AbsoluteIndexedX, instructions.RMW, 3, 7, false},
		{0xfe, instructions.INC, instructions.AbsoluteIndexedX, instructions.RMW, 3, 7, false},
		{0x24, instructions.BIT, instructions.ZeroPage, instructions.Read, 2, 3, false},
		{0x2c, instructions.BIT, instructions.Absolute, instructions.Read, 3, 4, false},
		{0xc0, instructions.CPY, instructions.Immediate, instructions.Read, 2, 2, false},
		{0xec, instructions.CPX, instructions.Absolute, instructions.Read, 3, 4, false},
		{0xbc, instructions.LDY, instructions.AbsoluteIndexedX, instructions.Read, 3, 4, true},
		{0x10, instructions.BPL, instructions.Relative, instructions.Flow, 2, 2, true},
		{0xf0, instructions.BEQ, instructions.Relative, instructions.Flow, 2, 2, true},
		{0x4c, instructions.JMP, instructions.Absolute, instructions.Flow, 3, 3, false},
		{0x6c, instructions.JMP, instructions.Indirect, instructions.Flow, 3, 5, false},
		{0x20, instructions.JSR, instructions.Absolute, instructions.Subroutine, 3, 5, false},
		{0x60, instructions.RTS, instructions.Implied, instructions.Subroutine, 1, 5, false},
		{0x40, instructions.RTI, instructions.Implied, instructions.Interrupt, 1, 5, false},
		{0x00, instructions.BRK, instructions.Implied, instructions.Interrupt, 1, 7, false},
		{0x48, instructions.PHA, instructions.Implied, instructions.Write, 1, 3, false},
		{0x08, instructions.PHP, instructions.Implied, instructions.Write, 1, 3, false},
		{0x68, instructions.PLA, instructions.Implied, instructions.Read, 1, 4, false},
		{0x28, instructions.PLP, instructions.Implied, instructions.Read, 1, 4, false},
		{0xe8, instructions.INX, instructions.Implied, instructions.Read, 1, 2, false},
		{0x9a, instructions.TXS, instructions.Implied, instructions.Read, 1, 2, false},
		{0xea, instructions.NOP, instructions.Implied, instructions.Read, 1, 2, false},
	} {
		d := instructions.Definitions[c.opcode]
		test.ExpectEquality(t, d.OpCode, c.opcode, c.opcode)
		test.ExpectEquality(t, d.Operator, c.op, c.opcode)
		test.ExpectEquality(t, d.AddressingMode, c.mode, c.opcode)
		test.ExpectEquality(t, d.Effect, c.effect, c.opcode)
		test.ExpectEquality(t, d.Bytes, c.bytes, c.opcode)
		test.ExpectEquality(t, d.Cycles, c.cycles, c.opcode)
		test.ExpectEquality(t, d.PageSensitive, c.page, c.opcode)
	}
}

func TestIllegal(t *testing.T) {
	for _, opcode := range []uint8{0x02, 0x03, 0x04, 0x0c, 0x1a, 0x80, 0x89, 0x9c, 0x9e, 0xeb, 0xff} {
		d := instructions.Definitions[opcode]
		test.ExpectEquality(t, d.Operator, instructions.Illegal, opcode)
		test.ExpectEquality(t, d.IsLegal(), false, opcode)
		test.ExpectEquality(t, d.Bytes, 1, opcode)
		test.ExpectEquality(t, d.Cycles, 2, opcode)
	}
}

func TestParseOperator(t *testing.T) {
	op, ok := instructions.ParseOperator("SBC")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.SBC)

	_, ok = instructions.ParseOperator("XAA")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, instructions.Illegal.String(), "???")
}

func TestBranchDefinitions(t *testing.T) {
	var n int
	for _, d := range instructions.Legal() {
		if d.IsBranch() {
			n++
			test.ExpectEquality(t, d.OpCode&0x1f, uint8(0x10), d.OpCode)
		}
	}
	test.ExpectEquality(t, n, 8)
}
