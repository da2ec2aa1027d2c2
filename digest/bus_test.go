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

package digest_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cycle6502/digest"
	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/hardware/preferences"
	"github.com/jetsetilly/cycle6502/test"
)

func newMachine(t *testing.T, program ...uint8) *hardware.Machine {
	t.Helper()

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(prefs, nil)
	test.DemandSuccess(t, err)
	m.Instance.Normalise()

	ram, ok := m.RAM()
	test.DemandSuccess(t, ok)
	test.DemandSuccess(t, ram.Load(0x0200, program))
	ram.PokeWord(0xfffe, 0x0200)

	return m
}

// run the program for the number of cycles and return the digest
func run(t *testing.T, cycles int, program ...uint8) (string, int) {
	t.Helper()

	m := newMachine(t, program...)
	dig := digest.NewBus(m.CPU)
	test.DemandImplements(t, dig, digest.Digest(nil))

	for range cycles {
		m.Step()
	}

	return dig.Hash(), dig.Count()
}

func TestDeterminism(t *testing.T) {
	// INX, STX $10, JMP $0200
	program := []uint8{0xe8, 0x86, 0x10, 0x4c, 0x00, 0x02}

	// long enough for the buffer to be flushed many times
	a, n := run(t, 20000, program...)
	b, _ := run(t, 20000, program...)
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, n, 19999)

	// a different number of cycles
	c, _ := run(t, 19999, program...)
	test.ExpectInequality(t, a, c)

	// a different program
	program[1] = 0x84
	d, _ := run(t, 20000, program...)
	test.ExpectInequality(t, a, d)
}

func TestReset(t *testing.T) {
	m := newMachine(t, 0xea)
	dig := digest.NewBus(m.CPU)

	empty := dig.Hash()
	test.ExpectEquality(t, empty, "0000000000000000000000000000000000000000")

	m.StepInstruction()
	test.ExpectInequality(t, dig.Hash(), empty)

	// hashing doesn't change the digest unless there are new transactions
	h := dig.Hash()
	test.ExpectEquality(t, dig.Hash(), h)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), empty)
	test.ExpectEquality(t, dig.Count(), 0)
}
