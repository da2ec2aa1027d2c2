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
	"fmt"

	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// Phases of the reset sequence.
const (
	ResetPhase0 = iota
	ResetPhase1
	ResetPhase2
	ResetDone
)

// State is the complete state of the CPU between two clock edges.
type State struct {
	registers.File

	// registered bus outputs. RW is true for a read
	Addr uint16
	RW   bool
	Dout uint8

	// scratch registers for partially fetched operands and addresses
	Tmp8  uint8
	Tmp16 uint16

	// opcode of the current instruction. latched on cycle zero
	Opcode uint8

	// instruction cycle. zero is the opcode fetch
	Cycle int

	// phase of the reset sequence
	Reset int

	// the cycle on which the effective address is accessed. zero until the
	// addressing mode has been resolved
	Access int

	// an indexed address crossed a page boundary
	PageFault bool

	// interrupt lines. the levels are latched but never serviced
	IRQ bool
	NMI bool
}

// PowerOnState returns the State of the CPU at power on. The registers are
// all zero except for the status register, which has only the unused bit set.
// The reset sequence has not yet started.
func PowerOnState() State {
	return State{
		File:  registers.NewFile(),
		RW:    true,
		Reset: ResetPhase0,
	}
}

func (s State) String() string {
	rw := "R"
	if !s.RW {
		rw = "W"
	}
	return fmt.Sprintf("%s %s $%04x %02x cycle=%d", s.File, rw, s.Addr, s.Dout, s.Cycle)
}

// Boundary returns true if the next edge is an opcode fetch.
func (s State) Boundary() bool {
	return s.Reset == ResetDone && s.Cycle == 0
}

// Definition returns the decoded instruction currently being executed. The
// value is meaningless on instruction boundaries.
func (s State) Definition() *instructions.Definition {
	return &instructions.Definitions[s.Opcode]
}

// Outcome annotates a single edge with information that isn't part of the
// State of the CPU but which is needed to build an execution.Result.
type Outcome struct {
	// the edge sampled the bus. false only for the first phase of the reset
	// sequence
	Sampled bool

	// the edge was an opcode fetch
	Fetch bool

	// the data bus held an operand byte of the instruction
	Operand bool

	// the instruction ended on this edge
	End bool

	// the reset sequence completed on this edge
	ResetDone bool

	// the instruction suffered a page fault. valid when End is true
	PageFault bool

	// a known quirk was triggered on this edge
	Bug execution.Bug

	// the instruction ending on this edge was an illegal opcode
	Illegal bool
}

// step is the work area for a single edge. the current state is read only
// and all changes are made to the next state
type step struct {
	cur  State
	next State
	din  uint8
	out  Outcome
}

// Step returns the State of the CPU after the clock edge, given the value on
// the data bus. The receiver is not changed.
func (s State) Step(din uint8) (State, Outcome) {
	st := step{
		cur:  s,
		next: s,
		din:  din,
	}

	st.out.Sampled = true

	switch {
	case s.Reset != ResetDone:
		st.reset()
	case s.Cycle == 0:
		st.fetch()
	default:
		st.next.Cycle = s.Cycle + 1
		st.execute()
	}

	return st.next, st.out
}

func (st *step) fetch() {
	st.next.Opcode = st.din
	st.next.PC.Add(1)
	st.next.Addr = st.next.PC.Address()
	st.next.RW = true
	st.next.Cycle = 1
	st.out.Fetch = true
}

// endInstruction sets up the fetch of the next opcode from addr. the hidden
// latches are cleared
func (st *step) endInstruction(addr uint16) {
	st.out.End = true
	st.out.PageFault = st.next.PageFault

	st.next.PC.Load(addr)
	st.next.Addr = addr
	st.next.RW = true
	st.next.Cycle = 0
	st.next.Tmp8 = 0
	st.next.Tmp16 = 0
	st.next.Access = 0
	st.next.PageFault = false
}

// operand consumes the data bus as an instruction byte and advances the
// program counter
func (st *step) operand() {
	st.out.Operand = true
	st.next.PC.Add(1)
}

// read sets the address of the next bus cycle
func (st *step) read(addr uint16) {
	st.next.Addr = addr
	st.next.RW = true
}

// write sets the address and data of the next bus cycle
func (st *step) write(addr uint16, data uint8) {
	st.next.Addr = addr
	st.next.RW = false
	st.next.Dout = data
}

// stack address of the current stack pointer plus offset. the offset is
// applied to the 8 bit pointer and wraps within the stack page
func (st *step) stack(offset int) uint16 {
	return bus.StackPage | uint16(uint8(int(st.cur.SP.Value())+offset))
}

func (st *step) adjustSP(delta int) {
	st.next.SP.Load(uint8(int(st.cur.SP.Value()) + delta))
}

func (st *step) bug(b execution.Bug) {
	st.out.Bug = b
}
