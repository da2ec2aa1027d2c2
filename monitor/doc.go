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

// Package monitor is an interactive front end for a hardware.Machine. Each
// command is a single key press and the terminal is put into cbreak mode so
// that keys are acted upon immediately.
//
// The keys are:
//
//	space, c    step one cycle
//	i           step one instruction
//	r           run until the machine halts
//	s           reset
//	d           write a Graphviz DOT file of the CPU state
//	h, ?        help
//	q           quit
//
// The monitor can also read keys from any io.Reader, in which case the
// terminal mode is not changed. This is how the package is tested.
package monitor
