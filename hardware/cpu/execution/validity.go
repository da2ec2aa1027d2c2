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

package execution

import (
	"github.com/jetsetilly/cycle6502/curated"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: not finalised")
	}

	if r.Defn == nil {
		return curated.Errorf("execution: no definition for finalised result")
	}

	if !r.Defn.IsLegal() {
		return curated.Errorf("execution: illegal opcode %#02x", r.Defn.OpCode)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf("execution: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	switch {
	case r.Defn.IsBranch():
		// a taken branch costs one cycle and a further cycle if the
		// destination is in another page
		expected := r.Defn.Cycles + 1
		if r.PageFault {
			expected++
		}
		if r.Cycles != r.Defn.Cycles && r.Cycles != expected {
			return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d or %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				r.Cycles,
				r.Defn.Cycles,
				expected)
		}
		if r.PageFault && r.Cycles != r.Defn.Cycles+2 {
			return curated.Errorf("execution: page fault without penalty for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
		}

	case r.Defn.PageSensitive && r.PageFault:
		if r.Cycles != r.Defn.Cycles+1 {
			return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				r.Cycles,
				r.Defn.Cycles+1)
		}

	default:
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode,
				r.Defn.Operator,
				r.Cycles,
				r.Defn.Cycles)
		}
	}

	return nil
}
