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

// Package disassembly creates a static disassembly of a range of memory.
//
// Every address in the range is decoded as though it were the start of an
// instruction. Entries reached by following the flow of execution from one
// or more entry points are then "blessed". Blessed entries are the ones
// written by Write(); bytes that are not part of a blessed instruction are
// written as data.
//
// The disassembly can be updated with the results of executed instructions
// with the ExecutedEntry() function. This is useful for interactive front
// ends that want to show the cycle count of executed instructions.
package disassembly
