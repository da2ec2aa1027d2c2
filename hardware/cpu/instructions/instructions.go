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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Illegal {
		return fmt.Sprintf("%02x illegal opcode", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsLegal returns false for opcodes that don't decode to a documented
// instruction.
func (defn Definition) IsLegal() bool {
	return defn.Operator != Illegal
}

// Definitions is the decoded instruction table, indexed by opcode.
var Definitions [256]Definition

func init() {
	for i := range Definitions {
		Definitions[i] = Decode(uint8(i))
	}
}

// Legal returns the definitions of every documented opcode in opcode order.
func Legal() []Definition {
	l := make([]Definition, 0, 151)
	for _, d := range Definitions {
		if d.IsLegal() {
			l = append(l, d)
		}
	}
	return l
}
