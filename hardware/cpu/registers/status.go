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
	"strings"
)

// Flag is a bit mask for a single flag in the packed form of the status
// register.
type Flag uint8

// List of valid Flag values. The packed layout is NV-BDIZC.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Sign             Flag = 0x80
)

// PowerOnStatus is the packed value of the status register at power on.
const PowerOnStatus = uint8(Unused)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister(v uint8) StatusRegister {
	var sr StatusRegister
	sr.Load(v)
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of letters. Upper case letters
// indicate a set flag. The unused bit is shown as a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(set bool, on rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(on + 'a' - 'A')
		}
	}

	flag(sr.Sign, 'S')
	flag(sr.Overflow, 'V')
	s.WriteRune('-')
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Value returns the status register in its packed form. The unused bit 5 is
// always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(Unused)

	if sr.Sign {
		v |= uint8(Sign)
	}
	if sr.Overflow {
		v |= uint8(Overflow)
	}
	if sr.Break {
		v |= uint8(Break)
	}
	if sr.DecimalMode {
		v |= uint8(DecimalMode)
	}
	if sr.InterruptDisable {
		v |= uint8(InterruptDisable)
	}
	if sr.Zero {
		v |= uint8(Zero)
	}
	if sr.Carry {
		v |= uint8(Carry)
	}

	return v
}

// Load the status register from its packed form. Bit 5 is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&uint8(Sign) != 0
	sr.Overflow = v&uint8(Overflow) != 0
	sr.Break = v&uint8(Break) != 0
	sr.DecimalMode = v&uint8(DecimalMode) != 0
	sr.InterruptDisable = v&uint8(InterruptDisable) != 0
	sr.Zero = v&uint8(Zero) != 0
	sr.Carry = v&uint8(Carry) != 0
}
