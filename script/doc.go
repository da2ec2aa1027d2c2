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

// Package script drives a hardware.Machine with Lua scripts. The Lua
// environment is the standard gopher-lua environment with the following
// functions added:
//
//	peek(addr)                       value at address
//	poke(addr, value)                change value at address
//	load(file [, origin [, format]]) load image and patch the reset vector
//	step()                           one clock edge. returns true if an instruction ended
//	stepi()                          one instruction. returns the number of edges
//	run([limit])                     run until halt. returns reason and number of edges
//	reset()                          arm the reset sequence
//	reg(name)                        value of register (PC, A, X, Y, SP, P)
//	setreg(name, value)              change register value
//	cycles()                         number of edges since power on
//	trace(on [, format])             per-cycle trace to the script output
//	dot()                            write DOT file of CPU state. returns filename
//	log(message)                     add message to the central log
//
// The print() function writes to the output given to NewScript().
//
// Errors raised by a script, including syntax errors, are returned as curated
// errors with the ScriptError pattern.
package script
