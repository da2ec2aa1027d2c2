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

package snapshot_test

import (
	"testing"

	"github.com/jetsetilly/cycle6502/hardware/cpu"
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/hardware/cpu/snapshot"
	"github.com/jetsetilly/cycle6502/hardware/memory/ram"
	"github.com/jetsetilly/cycle6502/test"
)

func edge(mc *cpu.CPU, mem *ram.RAM) cpu.Outcome {
	s := mc.State()
	if !s.RW {
		mem.Write(s.Addr, s.Dout)
	}
	return mc.Step(mem.Read(s.Addr))
}

func TestRecorder(t *testing.T) {
	mem := ram.NewRAM()

	// LDA #$80, STA $10, NOP
	test.DemandSuccess(t, mem.Load(0x1000, []uint8{0xa9, 0x80, 0x85, 0x10, 0xea}))
	mem.PokeWord(0xfffe, 0x1000)

	mc := cpu.NewCPU(nil)
	rec := snapshot.NewRecorder(mc, 0)

	var ended int
	for ended < 2 {
		if edge(mc, mem).End {
			ended++
		}
	}

	// the second instruction has ended but the record is not closed until
	// the next fetch or a call to Flush()
	test.ExpectEquality(t, len(rec.Instructions()), 1)
	test.DemandSuccess(t, rec.Flush())
	test.DemandEquality(t, len(rec.Instructions()), 2)

	lda := rec.Instructions()[0]
	lda.AssertCycles(t, 2)
	test.ExpectEquality(t, lda.Pre.PC.Address(), uint16(0x1000))
	test.ExpectEquality(t, lda.Post.A.Value(), uint8(0x80))
	test.ExpectEquality(t, lda.FlagsChanged(), registers.Sign)
	lda.AssertFlagsChanged(t, registers.Sign|registers.Zero)
	test.ExpectSuccess(t, lda.Result.Final)

	sta, ok := rec.Last()
	test.DemandSuccess(t, ok)
	sta.AssertCycles(t, 3)
	sta.AssertCycleData(t, 2, 0x0010, false, 0x80)
	test.DemandEquality(t, len(sta.Writes()), 1)
	test.ExpectEquality(t, mem.Peek(0x0010), uint8(0x80))

	// flushing twice is harmless
	test.ExpectSuccess(t, rec.Flush())
	test.ExpectEquality(t, len(rec.Instructions()), 2)

	// flush fails in the middle of an instruction
	edge(mc, mem)
	test.ExpectFailure(t, rec.Flush())

	rec.Clear()
	_, ok = rec.Last()
	test.ExpectFailure(t, ok)
}

func TestRecorderMax(t *testing.T) {
	mem := ram.NewRAM()
	for i := range 16 {
		mem.Poke(0x2000+uint16(i), 0xe8)
	}
	mem.PokeWord(0xfffe, 0x2000)

	mc := cpu.NewCPU(nil)
	rec := snapshot.NewRecorder(mc, 4)

	var ended int
	for ended < 10 {
		if edge(mc, mem).End {
			ended++
		}
	}
	test.DemandSuccess(t, rec.Flush())

	test.DemandEquality(t, len(rec.Instructions()), 4)
	last, _ := rec.Last()
	test.ExpectEquality(t, last.Pre.PC.Address(), uint16(0x2009))
	test.ExpectEquality(t, last.Post.X.Value(), uint8(10))
}
