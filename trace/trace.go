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

package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware/cpu"
	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// Format of the trace output.
type Format int

// List of valid Format values.
const (
	FormatText Format = iota
	FormatJSON
	FormatInstruction
)

// Formats is the list of format names accepted by ParseFormat().
var Formats = []string{"text", "json", "instruction"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(Formats) {
		return fmt.Sprintf("unknown format (%d)", int(f))
	}
	return Formats[f]
}

// ParseFormat returns the Format for the name. Not case sensitive.
func ParseFormat(name string) (Format, error) {
	for i, f := range Formats {
		if strings.EqualFold(f, name) {
			return Format(i), nil
		}
	}
	return FormatText, curated.Errorf("trace: unknown format: %s", name)
}

// record is the JSON representation of a bus transaction
type record struct {
	Edge    int    `json:"edge"`
	Cycle   int    `json:"cycle"`
	Address uint16 `json:"address"`
	Data    uint8  `json:"data"`
	Event   string `json:"event"`
}

// Tracer writes the bus activity of a CPU to an io.Writer.
type Tracer struct {
	mc     *cpu.CPU
	output io.Writer
	format Format

	// addresses to be traced. all addresses are traced if the filter is empty
	filter map[uint16]bool

	// number of transactions seen since the tracer was attached
	edges int

	// number of lines written
	lines int

	// an instruction is in progress. used by the instruction format
	pending bool

	// a paused tracer counts edges but writes nothing
	paused bool

	// the first error encountered when writing. no more output is written
	// once an error has occurred
	err error

	json *json.Encoder
}

// NewTracer is the preferred method of initialisation for the Tracer type. The
// new Tracer is attached to the CPU immediately.
func NewTracer(mc *cpu.CPU, output io.Writer, format Format) *Tracer {
	trc := &Tracer{
		mc:     mc,
		output: output,
		format: format,
		filter: make(map[uint16]bool),
		json:   json.NewEncoder(output),
	}
	mc.AttachObserver(trc.observe)
	return trc
}

// Add an address to the filter. In the instruction format the filter applies
// to the address of the opcode.
func (trc *Tracer) Add(address uint16) error {
	if trc.filter[address] {
		return curated.Errorf("trace: already being traced ($%04x)", address)
	}
	trc.filter[address] = true
	return nil
}

// Drop an address from the filter.
func (trc *Tracer) Drop(address uint16) error {
	if !trc.filter[address] {
		return curated.Errorf("trace: not being traced ($%04x)", address)
	}
	delete(trc.filter, address)
	return nil
}

// Clear the filter. All addresses will be traced.
func (trc *Tracer) Clear() {
	clear(trc.filter)
}

// List the addresses in the filter in ascending order.
func (trc *Tracer) List() []uint16 {
	l := make([]uint16, 0, len(trc.filter))
	for a := range trc.filter {
		l = append(l, a)
	}
	sort.Slice(l, func(i, j int) bool { return l[i] < l[j] })
	return l
}

// Pause stops output without detaching the tracer from the CPU. Edges are
// still counted while paused. Flush() should be called before pausing a
// tracer in the instruction format.
func (trc *Tracer) Pause(paused bool) {
	trc.paused = paused
}

// Lines returns the number of lines written.
func (trc *Tracer) Lines() int {
	return trc.lines
}

// Err returns the first error that occurred when writing the trace.
func (trc *Tracer) Err() error {
	return trc.err
}

// Flush writes any output that is waiting for the next instruction to begin.
// It should be called on an instruction boundary.
func (trc *Tracer) Flush() error {
	if trc.format == FormatInstruction && trc.pending {
		trc.pending = false
		trc.instruction(trc.mc.LastResult, trc.mc.State())
	}
	return trc.err
}

func (trc *Tracer) observe(t bus.Transaction) {
	trc.edges++

	if trc.err != nil || trc.paused {
		return
	}

	switch trc.format {
	case FormatInstruction:
		// the observer is called before the CPU state changes, so on an
		// opcode fetch the result of the previous instruction is still
		// available
		if t.Cycle == 0 {
			if trc.pending {
				trc.instruction(trc.mc.LastResult, trc.mc.State())
			}
			trc.pending = true
		}
		return
	}

	if len(trc.filter) > 0 && !trc.filter[t.Address] {
		return
	}

	switch trc.format {
	case FormatText:
		_, trc.err = fmt.Fprintf(trc.output, "%6d %2d %s $%04x %02x\n", trc.edges, t.Cycle, rw(t), t.Address, t.Data)
	case FormatJSON:
		event := "read"
		if !t.Read {
			event = "write"
		}
		trc.err = trc.json.Encode(record{
			Edge:    trc.edges,
			Cycle:   t.Cycle,
			Address: t.Address,
			Data:    t.Data,
			Event:   event,
		})
	}

	if trc.err == nil {
		trc.lines++
	}
}

func (trc *Tracer) instruction(r execution.Result, s cpu.State) {
	if len(trc.filter) > 0 && !trc.filter[r.Address] {
		return
	}
	_, trc.err = fmt.Fprintf(trc.output, "%s  %s\n", r.GetString(execution.StyleFull), s.File)
	if trc.err == nil {
		trc.lines++
	}
}

func rw(t bus.Transaction) string {
	if t.Read {
		return "R"
	}
	return "W"
}
