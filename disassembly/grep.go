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

import (
	"io"
	"strings"

	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepAll GrepScope = iota
	GrepOperator
	GrepOperand
)

// Grep searches the instructions of the disassembly for the search string
// and writes every matching instruction to output. The number of matches is
// returned.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	var n int
	var err error

	dsm.Iterate(false, func(e Entry) bool {
		f := strings.Fields(e.Result.GetString(execution.StyleBrief))

		var s string
		switch scope {
		case GrepOperator:
			s = f[0]
		case GrepOperand:
			if len(f) > 1 {
				s = f[1]
			}
		default:
			s = strings.Join(f, " ")
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			n++
			err = dsm.WriteEntry(output, WriteAttr{}, e)
		}

		return err == nil
	})

	return n, err
}
