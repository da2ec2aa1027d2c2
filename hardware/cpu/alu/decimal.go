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

package alu

import (
	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
)

// addDecimal is the NMOS decimal mode addition.
func addDecimal(a uint8, b uint8, flags uint8) (uint8, uint8) {
	c := int(carry(flags))

	// the zero flag is computed before any decimal adjustment
	flags = set(flags, registers.Zero, a+b+uint8(c) == 0)

	lo := int(a&0x0f) + int(b&0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	sum := int(a&0xf0) + int(b&0xf0) + lo

	// sign and overflow are taken from the intermediate sum, before the high
	// nibble has been adjusted. overflow is determined with the high nibbles
	// treated as signed values
	signed := int(int8(a&0xf0)) + int(int8(b&0xf0)) + lo
	flags = set(flags, registers.Sign, sum&0x80 == 0x80)
	flags = set(flags, registers.Overflow, signed < -128 || signed > 127)

	if sum >= 0xa0 {
		sum += 0x60
	}
	flags = set(flags, registers.Carry, sum >= 0x100)

	return uint8(sum), flags
}

// subtractDecimal is the NMOS decimal mode subtraction. flags are the same as
// for binary subtraction.
func subtractDecimal(a uint8, b uint8, flags uint8) (uint8, uint8) {
	c := int(carry(flags))

	_, flags = add(a, ^b, flags)

	lo := int(a&0x0f) - int(b&0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	r := int(a&0xf0) - int(b&0xf0) + lo
	if r < 0 {
		r -= 0x60
	}

	return uint8(r), flags
}
