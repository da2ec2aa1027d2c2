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

// Package hardware is the base package for the 6502 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation. It owns a CPU and a memory
// implementing the bus.Memory interface and performs the bus cycle the CPU
// requests on every clock edge.
//
// The Run() function steps the machine until the context is cancelled, a
// cycle limit is reached or a halt condition is met. The halt conditions are
// controlled by preferences (see the hardware/preferences package):
//
//	machine.trapdetect	an instruction that jumps or branches to itself
//	machine.haltonbrk	a BRK instruction
package hardware
