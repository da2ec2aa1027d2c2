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

package execution_test

import (
	"testing"

	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/test"
)

func defn(opcode uint8) *instructions.Definition {
	return &instructions.Definitions[opcode]
}

func TestValidity(t *testing.T) {
	// LDA #$05
	r := execution.Result{Address: 0x8000, Defn: defn(0xa9), ByteCount: 2, InstructionData: 0x05, Cycles: 2}
	test.ExpectFailure(t, r.IsValid())
	r.Final = true
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 3
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 2
	r.ByteCount = 1
	test.ExpectFailure(t, r.IsValid())
	r.ByteCount = 2
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())

	// LDA $10ff,X
	r = execution.Result{Defn: defn(0xbd), ByteCount: 3, Cycles: 4, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())

	// STA $10ff,X is never page sensitive
	r = execution.Result{Defn: defn(0x9d), ByteCount: 3, Cycles: 5, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
}

func TestBranchValidity(t *testing.T) {
	r := execution.Result{Defn: defn(0xd0), ByteCount: 2, Final: true}

	for cycles, valid := range map[int]bool{1: false, 2: true, 3: true, 4: false, 5: false} {
		r.Cycles = cycles
		test.ExpectEquality(t, r.IsValid() == nil, valid, cycles)
	}

	r.PageFault = true
	for cycles, valid := range map[int]bool{2: false, 3: false, 4: true} {
		r.Cycles = cycles
		test.ExpectEquality(t, r.IsValid() == nil, valid, "page fault", cycles)
	}
}

func TestIllegalValidity(t *testing.T) {
	r := execution.Result{Defn: defn(0x02), ByteCount: 1, Cycles: 2, Final: true}
	test.ExpectFailure(t, r.IsValid())
}

func TestTarget(t *testing.T) {
	r := execution.Result{Address: 0x80f0, Defn: defn(0xd0), ByteCount: 2, InstructionData: 0x7f}
	test.ExpectEquality(t, r.Target(), uint16(0x8171))
	r.InstructionData = 0x80
	test.ExpectEquality(t, r.Target(), uint16(0x8072))
	r.InstructionData = 0xfe
	test.ExpectEquality(t, r.Target(), uint16(0x80f0))

	r = execution.Result{Defn: defn(0x4c), ByteCount: 3, InstructionData: 0x1234}
	test.ExpectEquality(t, r.Target(), uint16(0x1234))
}

func TestString(t *testing.T) {
	r := execution.Result{Address: 0x8000, Defn: defn(0xa9), ByteCount: 2, InstructionData: 0x05, Cycles: 2, Final: true}
	test.ExpectEquality(t, r.GetString(execution.StyleBrief), "LDA #$05")
	test.ExpectEquality(t, r.GetString(execution.StyleFlagAddress|execution.StyleFlagByteCode|execution.StyleFlagCycles), "a9 05 $8000 LDA #$05 [2]")

	r = execution.Result{Address: 0x8000, Defn: defn(0x6c), ByteCount: 3, InstructionData: 0x10ff, Cycles: 5, Final: true, Bug: execution.JmpIndirectAddressingBug}
	test.ExpectEquality(t, r.GetString(execution.StyleBrief), "JMP ($10ff)")
	test.ExpectEquality(t, r.GetString(execution.StyleFlagNotes), "JMP ($10ff) * indirect addressing bug *")

	r = execution.Result{Address: 0x8000, Defn: defn(0xb1), ByteCount: 1}
	test.ExpectEquality(t, r.GetString(execution.StyleBrief), "LDA ($??),Y")

	r = execution.Result{Address: 0x8000, Defn: defn(0x0a), ByteCount: 1, Cycles: 2, Final: true}
	test.ExpectEquality(t, r.GetString(execution.StyleBrief), "ASL A")

	r = execution.Result{Address: 0x8000, Defn: defn(0xf0), ByteCount: 2, InstructionData: 0x10, Cycles: 2, Final: true}
	test.ExpectEquality(t, r.GetString(execution.StyleBrief), "BEQ $8012")

	r = execution.Result{}
	test.ExpectEquality(t, r.GetString(execution.StyleBrief), "???")

	// columns are padded
	r = execution.Result{Address: 0x8000, Defn: defn(0xea), ByteCount: 1, Cycles: 2, Final: true}
	test.ExpectEquality(t, r.String(), "ea       $8000 NOP           [2]")
}
