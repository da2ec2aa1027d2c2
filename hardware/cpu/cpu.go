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
	"github.com/jetsetilly/cycle6502/hardware/instance"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
	"github.com/jetsetilly/cycle6502/logger"
)

// CPU implements the 6502. The state of the processor is advanced one clock
// edge at a time with the Step() function.
type CPU struct {
	instance *instance.Instance

	state State

	observers []bus.Observer

	// the number of edges since power on
	cycles int

	// last result. the result is final on the edge on which the instruction
	// ends and remains so until the next opcode fetch
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// instance argument can be nil, in which case the default preferences are
// used and the CPU always powers on with zeroed registers.
//
// The CPU is returned in its power on state.
func NewCPU(instance *instance.Instance) *CPU {
	mc := &CPU{
		instance: instance,
	}
	mc.PowerOn()
	return mc
}

func (mc *CPU) String() string {
	s := mc.state.File.String()
	if mc.state.IRQ {
		s = fmt.Sprintf("%s IRQ", s)
	}
	if mc.state.NMI {
		s = fmt.Sprintf("%s NMI", s)
	}
	return s
}

// PowerOn puts the CPU into its power on state and arms the reset sequence.
func (mc *CPU) PowerOn() {
	mc.state = PowerOnState()
	mc.cycles = 0
	mc.LastResult = execution.Result{}

	if mc.instance != nil && mc.instance.Prefs.RandomState.Get().(bool) {
		rnd := mc.instance.Random
		mc.state.A.Load(rnd.Uint8(0))
		mc.state.X.Load(rnd.Uint8(1))
		mc.state.Y.Load(rnd.Uint8(2))
		mc.state.SP.Load(rnd.Uint8(3))
		mc.state.PC.Load(uint16(rnd.Uint8(4)) | uint16(rnd.Uint8(5))<<8)
	}
}

// Reset arms the reset sequence. Registers are not changed and any
// instruction in progress is abandoned.
func (mc *CPU) Reset() {
	irq, nmi := mc.state.IRQ, mc.state.NMI
	f := mc.state.File

	mc.state = PowerOnState()
	mc.state.File = f
	mc.state.IRQ = irq
	mc.state.NMI = nmi
	mc.LastResult = execution.Result{}

	logger.Log(logger.Allow, "cpu", "reset")
}

// LoadPC skips the reset sequence and sets up the fetch of the next opcode
// from the address. Any instruction in progress is abandoned.
func (mc *CPU) LoadPC(address uint16) {
	st := step{cur: mc.state, next: mc.state}
	st.next.Reset = ResetDone
	st.endInstruction(address)
	mc.state = st.next
	mc.LastResult = execution.Result{}
}

// State returns a copy of the current state of the CPU.
func (mc *CPU) State() State {
	return mc.state
}

// SetState replaces the state of the CPU. Intended for tests and for tools
// that need to prepare the CPU in a particular state.
func (mc *CPU) SetState(s State) {
	mc.state = s
}

// SetIRQ latches the level of the IRQ line.
func (mc *CPU) SetIRQ(level bool) {
	mc.state.IRQ = level
}

// SetNMI latches the level of the NMI line.
func (mc *CPU) SetNMI(level bool) {
	mc.state.NMI = level
}

// AttachObserver adds a function to be called for every bus transaction.
// Observers are called in the order they were attached.
func (mc *CPU) AttachObserver(obs bus.Observer) {
	mc.observers = append(mc.observers, obs)
}

// DetachObservers removes all observers.
func (mc *CPU) DetachObservers() {
	mc.observers = mc.observers[:0]
}

// Cycles returns the number of clock edges since power on. It implements the
// random.Clock interface.
func (mc *CPU) Cycles() int {
	return mc.cycles
}

// Step advances the CPU by one clock edge. The din argument is the value on
// the data bus, read from the address in the current state.
func (mc *CPU) Step(din uint8) Outcome {
	s := mc.state
	n, out := s.Step(din)

	if out.Sampled && len(mc.observers) > 0 {
		t := bus.Transaction{
			Address: s.Addr,
			Data:    din,
			Read:    s.RW,
			Cycle:   s.Cycle,
		}
		if !s.RW {
			t.Data = s.Dout
		}
		if s.Reset != ResetDone {
			t.Cycle = s.Reset - ResetDone
		}
		for _, obs := range mc.observers {
			obs(t)
		}
	}

	mc.state = n
	mc.cycles++
	mc.updateResult(s, din, out)

	return out
}

func (mc *CPU) updateResult(s State, din uint8, out Outcome) {
	if s.Reset != ResetDone {
		return
	}

	r := &mc.LastResult

	if out.Fetch {
		r.Reset(s.Addr)
		r.Defn = &instructions.Definitions[din]
		r.ByteCount = 1
	}

	r.Cycles++

	if out.Operand {
		r.InstructionData |= uint16(din) << (8 * (r.ByteCount - 1))
		r.ByteCount++
	}

	if out.Bug != execution.NoBug {
		r.Bug = out.Bug
	}

	if out.End {
		r.Final = true
		r.PageFault = out.PageFault

		if out.Illegal {
			logger.Logf(mc.illegalLogging(), "cpu", "illegal opcode %#02x at $%04x", r.Defn.OpCode, r.Address)
		}
	}
}

// permission to log illegal opcodes is given by the cpu.logillegal
// preference
type illegalLogging struct {
	ins *instance.Instance
}

func (p illegalLogging) AllowLogging() bool {
	return p.ins == nil || p.ins.Prefs.LogIllegal.Get().(bool)
}

func (mc *CPU) illegalLogging() logger.Permission {
	return illegalLogging{ins: mc.instance}
}
