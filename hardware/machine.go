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

package hardware

import (
	"github.com/jetsetilly/cycle6502/hardware/cpu"
	"github.com/jetsetilly/cycle6502/hardware/instance"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
	"github.com/jetsetilly/cycle6502/hardware/memory/ram"
	"github.com/jetsetilly/cycle6502/hardware/preferences"
)

// Machine is the harness for the CPU.
type Machine struct {
	Instance *instance.Instance

	CPU *cpu.CPU
	Mem bus.Memory
}

// NewMachine creates a new Machine. If the prefs argument is nil the
// preferences are loaded from the default preferences file. If the mem
// argument is nil a new 64K RAM is created.
//
// The CPU is in its power on state. The reset sequence will run on the first
// steps of the machine.
func NewMachine(prefs *preferences.Preferences, mem bus.Memory) (*Machine, error) {
	ins, err := instance.NewInstance(nil, prefs)
	if err != nil {
		return nil, err
	}

	if mem == nil {
		mem = ram.NewRAM()
	}

	m := &Machine{
		Instance: ins,
		CPU:      cpu.NewCPU(ins),
		Mem:      mem,
	}

	ins.Random.SetClock(m.CPU)

	return m, nil
}

// RAM returns the memory of the machine as a RAM instance. The boolean is
// false if the memory is of another type.
func (m *Machine) RAM() (*ram.RAM, bool) {
	r, ok := m.Mem.(*ram.RAM)
	return r, ok
}

// Peek returns the value at address without creating a bus transaction. If
// the memory does not implement bus.DebuggerBus the value is read with the
// Read() function.
func (m *Machine) Peek(address uint16) uint8 {
	if d, ok := m.Mem.(bus.DebuggerBus); ok {
		return d.Peek(address)
	}
	return m.Mem.Read(address)
}

// Poke changes the value at address without creating a bus transaction.
func (m *Machine) Poke(address uint16, value uint8) {
	if d, ok := m.Mem.(bus.DebuggerBus); ok {
		d.Poke(address, value)
		return
	}
	m.Mem.Write(address, value)
}

// Reset arms the reset sequence of the CPU.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// PowerOn returns the CPU to its power on state.
func (m *Machine) PowerOn() {
	m.CPU.PowerOn()
}

func (m *Machine) String() string {
	return m.CPU.String()
}
