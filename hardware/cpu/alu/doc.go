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

// Package alu implements the arithmetic and logic unit of the 6502.
//
// The ALU is a pure function. Execute() takes two operands, a function
// selector and the current flags in their packed form and returns the result
// and the new flags. Nothing is remembered between calls. The only link
// between one invocation and the next is the flags value that the caller
// passes in.
//
// Bit 5 of the returned flags is always set.
//
// Each function only changes the flags listed for it. For example, the
// logical functions (ORA, AND, EOR) never change the carry or overflow flags.
//
// Decimal mode (the D flag) affects ADC and SBC only. The NMOS behaviour is
// modelled. For ADC, the N and V flags are taken from the intermediate result
// after the low nibble has been adjusted but before the high nibble has been
// adjusted, and the Z flag is taken from the binary sum. For SBC all flags
// are the same as for binary subtraction. A consequence of this is that in
// decimal mode the N flag does not necessarily reflect bit 7 of the result.
//
// The decimal mode algorithm follows the description in "Decimal Mode" by
// Bruce Clark (6502.org tutorials), appendix A.
package alu
