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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// Disassembly of a range of memory.
type Disassembly struct {
	From uint16
	To   uint16

	// one entry for every address in the range, indexed by the offset of the
	// address from From
	entries []Entry
}

// FromMemory disassembles the memory between from and to inclusive. The
// flow of execution is followed from the entry points. If no entry points
// are given the flow is followed from the start of the range.
func FromMemory(mem bus.DebuggerBus, from uint16, to uint16, entryPoints ...uint16) (*Disassembly, error) {
	if to < from {
		return nil, curated.Errorf("disassembly: %v", fmt.Sprintf("bad range $%04x to $%04x", from, to))
	}

	dsm := &Disassembly{
		From:    from,
		To:      to,
		entries: make([]Entry, int(to)-int(from)+1),
	}

	for i := range dsm.entries {
		dsm.entries[i] = Entry{
			Level:  EntryLevelDecoded,
			Result: decode(mem, from+uint16(i)),
		}
	}

	if len(entryPoints) == 0 {
		entryPoints = []uint16{from}
	}
	for _, a := range entryPoints {
		dsm.Bless(a)
	}

	return dsm, nil
}

// decode the instruction at address. the operand is read even if it lies
// outside the disassembly range
func decode(mem bus.DebuggerBus, address uint16) execution.Result {
	defn := &instructions.Definitions[mem.Peek(address)]

	r := execution.Result{
		Address:   address,
		Defn:      defn,
		ByteCount: defn.Bytes,
		Cycles:    defn.Cycles,
		Final:     true,
	}

	switch defn.Bytes {
	case 3:
		r.InstructionData = uint16(mem.Peek(address+2)) << 8
		fallthrough
	case 2:
		r.InstructionData |= uint16(mem.Peek(address + 1))
	}

	return r
}

// Get returns the entry for the address. The boolean is false if the address
// is outside the range of the disassembly.
func (dsm *Disassembly) Get(address uint16) (Entry, bool) {
	if address < dsm.From || address > dsm.To {
		return Entry{}, false
	}
	return dsm.entries[address-dsm.From], true
}

func (dsm *Disassembly) entry(address uint16) *Entry {
	if address < dsm.From || address > dsm.To {
		return nil
	}
	return &dsm.entries[address-dsm.From]
}

// ExecutedEntry updates the disassembly with the result of an executed
// instruction. Results that are not final or that are outside the range of
// the disassembly are ignored.
func (dsm *Disassembly) ExecutedEntry(r execution.Result) {
	if !r.Final || r.Defn == nil {
		return
	}
	e := dsm.entry(r.Address)
	if e == nil {
		return
	}
	e.Level = EntryLevelExecuted
	e.Result = r
}
