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

package disassembly

// Iterate calls f for every blessed or executed instruction in address
// order, skipping the operand bytes of each instruction. If all is true then
// every byte that is not part of such an instruction is passed as a decoded
// entry. Iteration stops early if f returns false.
func (dsm *Disassembly) Iterate(all bool, f func(e Entry) bool) {
	a := int(dsm.From)
	for a <= int(dsm.To) {
		e := dsm.entries[a-int(dsm.From)]

		if e.IsInstruction() {
			if !f(e) {
				return
			}
			a += e.Result.Defn.Bytes
			continue
		}

		if all && !f(e) {
			return
		}
		a++
	}
}

// Count returns the number of blessed and executed instructions.
func (dsm *Disassembly) Count() int {
	var n int
	dsm.Iterate(false, func(_ Entry) bool {
		n++
		return true
	})
	return n
}
