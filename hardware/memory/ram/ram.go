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

// Package ram implements a flat 64K memory suitable for driving the CPU.
package ram

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cycle6502/curated"
)

// Size of the address space.
const Size = 0x10000

// RAM is a flat memory covering the whole address space. It implements the
// bus.Memory and bus.DebuggerBus interfaces.
type RAM struct {
	memory [Size]uint8

	reads  int
	writes int
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{}
}

// Read is an implementation of bus.Memory.
func (mem *RAM) Read(address uint16) uint8 {
	mem.reads++
	return mem.memory[address]
}

// Write is an implementation of bus.Memory.
func (mem *RAM) Write(address uint16, data uint8) {
	mem.writes++
	mem.memory[address] = data
}

// Peek is an implementation of bus.DebuggerBus.
func (mem *RAM) Peek(address uint16) uint8 {
	return mem.memory[address]
}

// Poke is an implementation of bus.DebuggerBus.
func (mem *RAM) Poke(address uint16, value uint8) {
	mem.memory[address] = value
}

// PeekWord returns the little-endian word at address. The high byte is read
// from the following address, wrapping at the top of memory.
func (mem *RAM) PeekWord(address uint16) uint16 {
	return uint16(mem.memory[address]) | uint16(mem.memory[address+1])<<8
}

// PokeWord stores a little-endian word at address.
func (mem *RAM) PokeWord(address uint16, value uint16) {
	mem.memory[address] = uint8(value)
	mem.memory[address+1] = uint8(value >> 8)
}

// Load copies data into memory starting at origin. It is an error for the
// data to extend beyond the top of memory.
func (mem *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf("ram: data of %d bytes at $%04x exceeds memory", len(data), origin)
	}
	copy(mem.memory[origin:], data)
	return nil
}

// Clear sets every location to value and resets the access counts.
func (mem *RAM) Clear(value uint8) {
	for i := range mem.memory {
		mem.memory[i] = value
	}
	mem.reads = 0
	mem.writes = 0
}

// Accesses returns the number of reads and writes made through the bus.Memory
// interface.
func (mem *RAM) Accesses() (reads int, writes int) {
	return mem.reads, mem.writes
}

// Dump returns a hex dump of the memory between from and to inclusive. Lines
// are aligned to sixteen byte boundaries.
func (mem *RAM) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for row := int(from) &^ 0x0f; row <= int(to); row += 16 {
		s.WriteString(fmt.Sprintf("%04X | ", row))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.memory[row+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}
