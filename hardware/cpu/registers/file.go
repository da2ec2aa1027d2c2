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

package registers

import (
	"fmt"
	"strings"
)

// Select identifies one of the 8 bit registers in the register file.
type Select int

// List of valid Select values.
const (
	SelectA Select = iota
	SelectX
	SelectY
	SelectSP
	SelectStatus
)

func (s Select) String() string {
	switch s {
	case SelectA:
		return "A"
	case SelectX:
		return "X"
	case SelectY:
		return "Y"
	case SelectSP:
		return "SP"
	case SelectStatus:
		return "SR"
	}
	return fmt.Sprintf("unknown register (%d)", int(s))
}

// ParseSelect returns the Select value for the register name. Not case
// sensitive. The status register can be named "SR" or "P".
func ParseSelect(name string) (Select, bool) {
	switch strings.ToUpper(name) {
	case "A":
		return SelectA, true
	case "X":
		return SelectX, true
	case "Y":
		return SelectY, true
	case "SP", "S":
		return SelectSP, true
	case "SR", "P":
		return SelectStatus, true
	}
	return SelectA, false
}

// File is the complete set of visible registers of the CPU. It is a value
// type and can be copied freely.
type File struct {
	PC     ProgramCounter
	A      Register
	X      Register
	Y      Register
	SP     Register
	Status StatusRegister
}

// NewFile is the preferred method of initialisation for the File type. The
// status register is initialised to its power on value and all other
// registers are zero.
func NewFile() File {
	return File{
		PC:     NewProgramCounter(0),
		A:      NewRegister(0, "A"),
		X:      NewRegister(0, "X"),
		Y:      NewRegister(0, "Y"),
		SP:     NewRegister(0, "SP"),
		Status: NewStatusRegister(PowerOnStatus),
	}
}

func (f File) String() string {
	return fmt.Sprintf("PC=%s %s %s %s %s P=%02x %s", f.PC, f.A, f.X, f.Y, f.SP,
		f.Status.Value(), f.Status)
}

// Get returns the value of the selected register.
func (f File) Get(s Select) uint8 {
	switch s {
	case SelectA:
		return f.A.Value()
	case SelectX:
		return f.X.Value()
	case SelectY:
		return f.Y.Value()
	case SelectSP:
		return f.SP.Value()
	case SelectStatus:
		return f.Status.Value()
	}
	panic(fmt.Sprintf("registers: cannot get %s", s))
}

// Set the value of the selected register.
func (f *File) Set(s Select, v uint8) {
	switch s {
	case SelectA:
		f.A.Load(v)
	case SelectX:
		f.X.Load(v)
	case SelectY:
		f.Y.Load(v)
	case SelectSP:
		f.SP.Load(v)
	case SelectStatus:
		f.Status.Load(v)
	default:
		panic(fmt.Sprintf("registers: cannot set %s", s))
	}
}
