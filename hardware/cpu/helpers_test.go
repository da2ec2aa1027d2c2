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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/cycle6502/hardware/cpu"
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/hardware/cpu/snapshot"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
	"github.com/jetsetilly/cycle6502/test"
)

type mockMem struct {
	internal [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

// harness performs the bus cycles requested by the CPU in the same way as
// the hardware.Machine type
type harness struct {
	mc  *cpu.CPU
	mem *mockMem
	rec *snapshot.Recorder
}

// newHarness creates a CPU and runs the reset sequence. execution begins at
// origin
func newHarness(t *testing.T, origin uint16) *harness {
	t.Helper()

	h := &harness{
		mc:  cpu.NewCPU(nil),
		mem: &mockMem{},
	}
	h.rec = snapshot.NewRecorder(h.mc, 0)

	h.mem.internal[bus.StartVector] = uint8(origin)
	h.mem.internal[bus.StartVector+1] = uint8(origin >> 8)

	for range 3 {
		h.edge()
	}
	test.DemandEquality(t, h.mc.State().Boundary(), true)
	test.DemandEquality(t, h.mc.State().PC.Address(), origin)

	return h
}

func (h *harness) edge() cpu.Outcome {
	s := h.mc.State()
	if !s.RW {
		h.mem.Write(s.Addr, s.Dout)
	}
	return h.mc.Step(h.mem.Read(s.Addr))
}

// step runs a single instruction and returns the record of it. the execution
// result is checked for validity against the instruction definition
func (h *harness) step(t *testing.T) snapshot.Instruction {
	t.Helper()

	for i := 0; ; i++ {
		if h.edge().End {
			break
		}
		if i > 8 {
			t.Fatalf("instruction did not end")
		}
	}

	test.DemandSuccess(t, h.rec.Flush())
	ins, ok := h.rec.Last()
	test.DemandSuccess(t, ok)

	if ins.Result.Defn.IsLegal() {
		test.ExpectSuccess(t, ins.Result.IsValid(), ins.Result)
	}

	return ins
}

// setState changes the registers of the CPU between instructions
func (h *harness) setState(f func(*cpu.State)) {
	s := h.mc.State()
	f(&s)
	h.mc.SetState(s)
}

func (h *harness) setFlags(v uint8) {
	h.setState(func(s *cpu.State) {
		s.Status = registers.NewStatusRegister(v)
	})
}
