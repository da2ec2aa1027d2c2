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

package bus

import "fmt"

// Memory defines the operations for the memory system when accessed from the
// CPU. Read data is returned on the same edge the address is presented.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebuggerBus defines the meta-operations for memory. These are operations
// outside of the normal operation of the machine and do not produce bus
// transactions.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// Vectors in the last page of memory.
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IRQVector   uint16 = 0xfffe

	// the address the reset sequence of this CPU reads the start address
	// from. this is the IRQ/BRK vector location
	StartVector = IRQVector
)

// StackPage is the page of memory used by the stack.
const StackPage uint16 = 0x0100

// Transaction is a single bus cycle.
type Transaction struct {
	Address uint16

	// the value read from memory or the value written by the CPU
	Data uint8

	// true if memory was read
	Read bool

	// the instruction cycle on which the transaction occurred. zero is the
	// opcode fetch. transactions during the reset sequence have a negative
	// cycle number
	Cycle int
}

func (t Transaction) String() string {
	rw := "R"
	if !t.Read {
		rw = "W"
	}
	return fmt.Sprintf("%d %s $%04x %02x", t.Cycle, rw, t.Address, t.Data)
}

// Observer receives every bus transaction.
type Observer func(Transaction)
