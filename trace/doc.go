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

// Package trace writes a record of the bus activity of a CPU. The Tracer type
// is attached to the CPU as an observer and writes every transaction (or, in
// the instruction format, every completed instruction) to an io.Writer.
//
// Three formats are available. The text format writes one line per cycle:
//
//	     7  1 R $8001 05
//
// The columns are the number of the edge since the tracer was attached, the
// cycle of the instruction, the direction and the address and data buses.
// Cycles of the reset sequence are negative.
//
// The JSON format writes one JSON object per line, suitable for processing
// with tools like jq:
//
//	{"edge":7,"cycle":1,"address":32769,"data":5,"event":"read"}
//
// The instruction format writes one line per instruction, with the
// disassembly of the instruction and the registers at the end of the
// instruction.
//
// The text and JSON formats can be filtered so that only transactions with
// particular addresses are written.
package trace
