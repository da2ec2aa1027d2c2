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

package cpu

import (
	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/cpu/instructions"
)

// a resolver is called on every cycle of an instruction until it returns
// true. when it does, the effective address is in the Tmp16 field of the next
// state and will be accessed on the following cycle
type resolver func(*step, *instructions.Definition) bool

var resolvers = map[instructions.AddressingMode]resolver{
	instructions.ZeroPage:         (*step).zeroPage,
	instructions.ZeroPageIndexedX: (*step).zeroPageIndexed,
	instructions.ZeroPageIndexedY: (*step).zeroPageIndexed,
	instructions.Absolute:         (*step).absolute,
	instructions.AbsoluteIndexedX: (*step).absoluteIndexed,
	instructions.AbsoluteIndexedY: (*step).absoluteIndexed,
	instructions.IndexedIndirect:  (*step).indexedIndirect,
	instructions.IndirectIndexed:  (*step).indirectIndexed,
}

// index returns the value of the index register used by the addressing mode
func (st *step) index(defn *instructions.Definition) uint8 {
	switch defn.AddressingMode {
	case instructions.ZeroPageIndexedX, instructions.AbsoluteIndexedX, instructions.IndexedIndirect:
		return st.cur.X.Value()
	case instructions.ZeroPageIndexedY, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
		return st.cur.Y.Value()
	}
	return 0
}

func (st *step) zeroPage(_ *instructions.Definition) bool {
	st.operand()
	st.next.Tmp16 = uint16(st.din)
	return true
}

// the unindexed zero page address is read while the index is added. the
// indexed address wraps around within the zero page
func (st *step) zeroPageIndexed(defn *instructions.Definition) bool {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.read(uint16(st.din))
		return false
	}

	idx := st.index(defn)
	if uint16(st.cur.Tmp8)+uint16(idx) > 0xff {
		st.bug(execution.ZeroPageIndexWrap)
	}
	st.next.Tmp16 = uint16(st.cur.Tmp8 + idx)
	return true
}

func (st *step) absolute(_ *instructions.Definition) bool {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.read(st.next.PC.Address())
		return false
	}

	st.operand()
	st.next.Tmp16 = uint16(st.din)<<8 | uint16(st.cur.Tmp8)
	return true
}

// the index is added to the low byte of the address before the high byte is
// corrected. the uncorrected address is read while the correction is made.
// read instructions skip the correction cycle if the uncorrected address is
// the effective address
func (st *step) indexed(defn *instructions.Definition, base uint16) bool {
	ea := base + uint16(st.index(defn))
	fault := base&0xff00 != ea&0xff00

	st.next.Tmp16 = ea

	if defn.Effect == instructions.Read {
		st.next.PageFault = fault
		if !fault {
			return true
		}
	}

	st.read(base&0xff00 | ea&0x00ff)
	return false
}

func (st *step) absoluteIndexed(defn *instructions.Definition) bool {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.read(st.next.PC.Address())
		return false
	case 2:
		st.operand()
		return st.indexed(defn, uint16(st.din)<<8|uint16(st.cur.Tmp8))
	}
	return true
}

// the pointer is read while X is added to it. the pointer and the high byte
// of the address both wrap around within the zero page
func (st *step) indexedIndirect(defn *instructions.Definition) bool {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.read(uint16(st.din))
		return false
	case 2:
		ptr := st.cur.Tmp8 + st.index(defn)
		st.next.Tmp8 = ptr
		st.read(uint16(ptr))
		return false
	case 3:
		if st.cur.Tmp8 == 0xff {
			st.bug(execution.ZeroPagePointerWrap)
		}
		st.next.Tmp16 = uint16(st.din)
		st.read(uint16(st.cur.Tmp8 + 1))
		return false
	}

	st.next.Tmp16 = uint16(st.din)<<8 | st.cur.Tmp16&0x00ff
	return true
}

// the high byte of the pointer wraps around within the zero page. Y is added
// to the address in the same way as for the absolute indexed modes
func (st *step) indirectIndexed(defn *instructions.Definition) bool {
	switch st.cur.Cycle {
	case 1:
		st.operand()
		st.next.Tmp8 = st.din
		st.read(uint16(st.din))
		return false
	case 2:
		if st.cur.Tmp8 == 0xff {
			st.bug(execution.ZeroPagePointerWrap)
		}
		st.next.Tmp16 = uint16(st.din)
		st.read(uint16(st.cur.Tmp8 + 1))
		return false
	case 3:
		return st.indexed(defn, uint16(st.din)<<8|st.cur.Tmp16&0x00ff)
	}
	return true
}
