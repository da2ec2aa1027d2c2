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

// Package registers implements the visible registers of the 6502 and the
// register file that groups them.
//
// The 8 bit registers (A, X, Y and SP) are instances of the Register type.
// The program counter is an instance of ProgramCounter and the flags are held
// in a StatusRegister.
//
// Registers do not perform arithmetic. All arithmetic and flag computation is
// done by the alu package, which takes and returns flags in their packed
// form. The StatusRegister converts between the packed and unpacked forms:
//
//	out, flags := alu.Execute(alu.ADC, a.Value(), operand, sr.Value())
//	a.Load(out)
//	sr.Load(flags)
//
// The unused bit 5 of the status register cannot be cleared. The Value()
// function always returns it set, whatever was loaded.
//
// The File type is the complete register file. Individual 8 bit registers can
// be selected with a Select value, which is how the instruction engine
// routes transfer instructions (TAX, TSX, etc.) without a case for every
// combination of source and destination.
package registers
