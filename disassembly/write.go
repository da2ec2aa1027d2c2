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
	"io"

	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

func (attr WriteAttr) style() execution.Style {
	s := execution.StyleFlagAddress | execution.StyleFlagColumns | execution.StyleFlagNotes
	if attr.ByteCode {
		s |= execution.StyleFlagByteCode
	}
	if attr.Cycles {
		s |= execution.StyleFlagCycles
	}
	return s
}

// Write the disassembly to output. Bytes that are not part of an instruction
// are written as data.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	var err error
	dsm.Iterate(true, func(e Entry) bool {
		err = dsm.WriteEntry(output, attr, e)
		return err == nil
	})
	return err
}

// WriteEntry writes a single entry to output.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e Entry) error {
	var s string

	if e.IsInstruction() {
		s = e.Result.GetString(attr.style())
	} else {
		data := fmt.Sprintf("$%02x", e.Result.Defn.OpCode)
		if attr.ByteCode {
			s = fmt.Sprintf("%-8s $%04x .byte %s", data[1:], e.Result.Address, data)
		} else {
			s = fmt.Sprintf("$%04x .byte %s", e.Result.Address, data)
		}
	}

	_, err := io.WriteString(output, s+"\n")
	return err
}
