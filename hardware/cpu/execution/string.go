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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
)

// Style is the type used to specify what to include in a disassembly string.
type Style int

// style flags to hint at what to include when creating disassembly output
const (
	StyleFlagAddress Style = 0x01 << iota
	StyleFlagByteCode
	StyleFlagCycles
	StyleFlagNotes
	StyleFlagColumns
	StyleFlagCompact
)

// compound styles
const (
	StyleBrief = StyleFlagCompact
	StyleFull  = StyleFlagAddress | StyleFlagByteCode | StyleFlagCycles | StyleFlagNotes | StyleFlagColumns
)

// Has tests to see if style has the supplied flag in its definition.
func (style Style) Has(flag Style) bool {
	return style&flag == flag
}

// String returns the result in the StyleFull style.
func (r Result) String() string {
	return r.GetString(StyleFull)
}

// GetString returns a human readable version of Result.
func (r Result) GetString(style Style) string {
	var hex string
	var programCounter string
	var operator, operand string
	var notes string

	if r.Final && style.Has(StyleFlagAddress) {
		programCounter = fmt.Sprintf("$%04x", r.Address)
	}

	if r.Defn == nil {
		// nothing has been decoded yet
		operator = "???"
	} else {
		operator = r.Defn.Operator.String()

		// operand bytes not yet read are shown as question marks
		switch r.Defn.Bytes {
		case 2:
			if r.ByteCount < 2 {
				operand = "$??"
			} else if r.Defn.IsBranch() {
				operand = fmt.Sprintf("$%04x", r.Target())
			} else {
				operand = fmt.Sprintf("$%02x", r.InstructionData&0xff)
			}
		case 3:
			if r.ByteCount < 3 {
				operand = "$????"
			} else {
				operand = fmt.Sprintf("$%04x", r.InstructionData)
			}
		}

		if r.Final && style.Has(StyleFlagByteCode) {
			switch r.Defn.Bytes {
			case 3:
				hex = fmt.Sprintf("%02x", r.InstructionData>>8)
				fallthrough
			case 2:
				hex = strings.TrimSpace(fmt.Sprintf("%02x %s", r.InstructionData&0xff, hex))
				fallthrough
			case 1:
				hex = strings.TrimSpace(fmt.Sprintf("%02x %s", r.Defn.OpCode, hex))
			}
		}

		// decorate operand with addressing mode indicators
		switch r.Defn.AddressingMode {
		case instructions.Immediate:
			operand = fmt.Sprintf("#%s", operand)
		case instructions.Indirect:
			operand = fmt.Sprintf("(%s)", operand)
		case instructions.IndexedIndirect:
			operand = fmt.Sprintf("(%s,X)", operand)
		case instructions.IndirectIndexed:
			operand = fmt.Sprintf("(%s),Y", operand)
		case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
			operand = fmt.Sprintf("%s,X", operand)
		case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
			operand = fmt.Sprintf("%s,Y", operand)
		case instructions.Implied:
			// accumulator shifts
			if r.Defn.Effect == instructions.Read && r.Defn.Bytes == 1 {
				switch r.Defn.Operator {
				case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR:
					operand = "A"
				}
			}
		}
	}

	if style.Has(StyleFlagCycles) {
		if r.Final {
			notes = fmt.Sprintf("[%d]", r.Cycles)
		} else {
			notes = fmt.Sprintf("[%d..]", r.Cycles)
		}
	}

	if style.Has(StyleFlagNotes) {
		if r.PageFault {
			notes += " page-fault"
		}
		if r.Bug != NoBug {
			notes += fmt.Sprintf(" * %s *", r.Bug)
		}
		if r.Defn != nil && !r.Defn.IsLegal() {
			notes += " illegal"
		}
	}

	if style.Has(StyleFlagColumns) {
		if style.Has(StyleFlagByteCode) {
			hex = columnise(hex, 8)
		}
		if style.Has(StyleFlagAddress) {
			programCounter = columnise(programCounter, 5)
		}
		operator = columnise(operator, 3)
		operand = columnise(operand, 9)
	}

	var f []string
	if style.Has(StyleFlagByteCode) {
		f = append(f, hex)
	}
	if style.Has(StyleFlagAddress) {
		f = append(f, programCounter)
	}
	f = append(f, operator, operand, notes)

	s := strings.Join(f, " ")

	if style.Has(StyleFlagCompact) || !style.Has(StyleFlagColumns) {
		return strings.Join(strings.Fields(s), " ")
	}

	return strings.TrimRight(s, " ")
}

// columnise forces the string into the given width. used for outputting
// disassembly into columns
func columnise(s string, width int) string {
	if width > len(s) {
		return s + strings.Repeat(" ", width-len(s))
	}
	return s[:width]
}
