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

// Package cpu emulates the 6502 microprocessor one clock edge at a time.
//
// The complete state of the processor, visible registers and hidden latches
// alike, is held in the State type. State.Step() is a pure function that
// takes the byte on the data bus and returns the state for the next edge.
// Nothing else in the package changes a State.
//
// The CPU never accesses memory itself. The registered outputs of the State
// (Addr, RW and Dout) describe the bus cycle the processor wants performed
// and it is the job of the harness owning the CPU to perform it. On every
// edge the harness:
//
//  1. writes Dout to Addr if RW indicates a write
//  2. reads the data bus at Addr
//  3. calls CPU.Step() with the value read
//
// The hardware package contains such a harness. For testing purposes the
// loop is easy to write by hand:
//
//	mc := cpu.NewCPU(nil)
//	for {
//		s := mc.State()
//		if !s.RW {
//			mem.Write(s.Addr, s.Dout)
//		}
//		mc.Step(mem.Read(s.Addr))
//	}
//
// A newly powered on CPU runs a three edge reset sequence before the first
// opcode fetch. The reset sequence reads the start address from 0xfffe and
// 0xffff.
//
// Observers can be attached to the CPU with AttachObserver(). An observer is
// called with a bus.Transaction for every edge on which the CPU samples or
// drives the bus. The first edge of the reset sequence does neither.
//
// Each instruction produces an execution.Result, available from the
// LastResult field. The result is final on the edge the instruction ends.
//
// Opcodes that do not decode to a documented instruction take two cycles and
// have no effect other than advancing the program counter by one.
package cpu
