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

package hardware

import (
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/paths"
)

// WriteDOT writes a Graphviz DOT graph of the current CPU state.
func (m *Machine) WriteDOT(output io.Writer) {
	s := m.CPU.State()
	memviz.Map(output, &s)
}

// DumpDOT writes a Graphviz DOT graph of the current CPU state to a new file
// in the current directory. Returns the name of the new file.
func (m *Machine) DumpDOT() (string, error) {
	fn := paths.UniqueFilename("cpustate", "dot")

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("machine: dot: %v", err)
	}

	m.WriteDOT(f)

	if err := f.Close(); err != nil {
		return "", curated.Errorf("machine: dot: %v", err)
	}

	return fn, nil
}
