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

// Package snapshot records the execution of instructions for verification.
// A Recorder is attached to a CPU as an observer and captures, for every
// instruction, the state of the CPU before the instruction, every bus
// transaction made by the instruction and the state after the instruction.
//
// The Instruction type has assertion functions suitable for use in tests.
package snapshot

import (
	"strings"
	"testing"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware/cpu"
	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// Instruction is the record of a single instruction.
type Instruction struct {
	Pre  cpu.State
	Post cpu.State
	Bus  []bus.Transaction

	Result execution.Result
}

func (ins Instruction) String() string {
	s := strings.Builder{}
	s.WriteString(ins.Result.String())
	for _, t := range ins.Bus {
		s.WriteString("\n\t")
		s.WriteString(t.String())
	}
	return s.String()
}

// FlagsChanged returns a mask of the status register flags that differ
// between the Pre and Post states.
func (ins Instruction) FlagsChanged() registers.Flag {
	return registers.Flag(ins.Pre.Status.Value() ^ ins.Post.Status.Value())
}

// Writes returns the write transactions made by the instruction.
func (ins Instruction) Writes() []bus.Transaction {
	var w []bus.Transaction
	for _, t := range ins.Bus {
		if !t.Read {
			w = append(w, t)
		}
	}
	return w
}

// AssertCycles fails the test if the instruction did not take n cycles.
func (ins Instruction) AssertCycles(t *testing.T, n int) bool {
	t.Helper()
	if len(ins.Bus) != n {
		t.Errorf("%s: expected %d cycles but took %d", ins.Result.GetString(execution.StyleBrief), n, len(ins.Bus))
		return false
	}
	return true
}

// AssertCycle fails the test if the bus transaction on cycle n was not to the
// address in the direction given. Cycle zero is the opcode fetch.
func (ins Instruction) AssertCycle(t *testing.T, n int, address uint16, read bool) bool {
	t.Helper()
	if n >= len(ins.Bus) {
		t.Errorf("%s: no cycle %d", ins.Result.GetString(execution.StyleBrief), n)
		return false
	}
	b := ins.Bus[n]
	if b.Address != address || b.Read != read {
		t.Errorf("%s: cycle %d: expected %s but got %s", ins.Result.GetString(execution.StyleBrief), n,
			bus.Transaction{Address: address, Read: read, Cycle: n, Data: b.Data}, b)
		return false
	}
	return true
}

// AssertCycleData is like AssertCycle but also checks the data on the bus.
func (ins Instruction) AssertCycleData(t *testing.T, n int, address uint16, read bool, data uint8) bool {
	t.Helper()
	if !ins.AssertCycle(t, n, address, read) {
		return false
	}
	if ins.Bus[n].Data != data {
		t.Errorf("%s: cycle %d: expected data %02x but got %02x", ins.Result.GetString(execution.StyleBrief), n,
			data, ins.Bus[n].Data)
		return false
	}
	return true
}

// AssertFlagsChanged fails the test if any flags other than those in the
// allowed mask changed.
func (ins Instruction) AssertFlagsChanged(t *testing.T, allowed registers.Flag) bool {
	t.Helper()
	if c := ins.FlagsChanged() &^ allowed; c != 0 {
		t.Errorf("%s: unexpected flag change (%08b)", ins.Result.GetString(execution.StyleBrief), uint8(c))
		return false
	}
	return true
}

// Recorder collects Instruction records from a CPU.
type Recorder struct {
	mc *cpu.CPU

	current *Instruction
	done    []Instruction

	// maximum number of records kept. older records are discarded
	max int
}

// NewRecorder attaches a new Recorder to the CPU. The max argument limits the
// number of records kept. A value of zero or less means no limit.
func NewRecorder(mc *cpu.CPU, max int) *Recorder {
	rec := &Recorder{
		mc:  mc,
		max: max,
	}
	mc.AttachObserver(rec.observe)
	return rec
}

func (rec *Recorder) observe(t bus.Transaction) {
	// the observer is called before the state of the CPU is updated, so
	// during the opcode fetch the state is that at the end of the previous
	// instruction
	if t.Cycle == 0 {
		rec.close()
		rec.current = &Instruction{
			Pre: rec.mc.State(),
		}
	}

	// transactions during the reset sequence are not recorded
	if rec.current != nil && t.Cycle >= 0 {
		rec.current.Bus = append(rec.current.Bus, t)
	}
}

func (rec *Recorder) close() {
	if rec.current == nil {
		return
	}
	rec.current.Post = rec.mc.State()
	rec.current.Result = rec.mc.LastResult
	rec.done = append(rec.done, *rec.current)
	rec.current = nil

	if rec.max > 0 && len(rec.done) > rec.max {
		rec.done = rec.done[len(rec.done)-rec.max:]
	}
}

// Flush completes the record of the current instruction. It should be called
// on an instruction boundary, after the last instruction of interest has
// ended.
func (rec *Recorder) Flush() error {
	if rec.current == nil {
		return nil
	}
	if !rec.mc.State().Boundary() {
		return curated.Errorf("snapshot: cannot flush in the middle of an instruction")
	}
	rec.close()
	return nil
}

// Instructions returns the completed records, oldest first.
func (rec *Recorder) Instructions() []Instruction {
	return rec.done
}

// Last returns the most recently completed record. The boolean is false if
// there are no records.
func (rec *Recorder) Last() (Instruction, bool) {
	if len(rec.done) == 0 {
		return Instruction{}, false
	}
	return rec.done[len(rec.done)-1], true
}

// Clear forgets all completed records.
func (rec *Recorder) Clear() {
	rec.done = rec.done[:0]
}
