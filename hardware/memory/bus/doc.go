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

// Package bus defines the memory bus as seen by the CPU. The CPU never calls
// the bus itself. Instead it drives an address, a direction and, for writes,
// a data value on every clock edge and the harness owning the CPU performs
// the transaction with an implementation of the Memory interface.
//
// Every edge the CPU samples or drives is reported to observers as a
// Transaction.
package bus
