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

package hardware_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/hardware/preferences"
	"github.com/jetsetilly/cycle6502/random"
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

func TestStepInstruction(t *testing.T) {
	// LDX #$05
	m := newMachine(t, 0xa2, 0x05)

	// the first call completes the reset sequence
	test.ExpectEquality(t, m.StepInstruction(), 5)
	test.ExpectEquality(t, m.CPU.State().X.Value(), uint8(0x05))
	test.ExpectEquality(t, m.CPU.Cycles(), 5)
}

func TestRunTrap(t *testing.T) {
	// LDX #$05, DEX, BNE -3, JMP $0205
	m := newMachine(t, 0xa2, 0x05, 0xca, 0xd0, 0xfd, 0x4c, 0x05, 0x02)

	halt, edges := m.Run(context.Background(), 0)
	test.ExpectEquality(t, halt, hardware.HaltTrap)
	test.ExpectEquality(t, m.CPU.State().X.Value(), uint8(0))
	test.ExpectEquality(t, m.CPU.State().PC.Address(), uint16(0x0205))

	// reset 3, LDX 2, DEX 2 * 5, BNE taken 3 * 4, BNE not taken 2, JMP 3
	test.ExpectEquality(t, edges, 3+2+10+12+2+3)
}

func TestRunBRK(t *testing.T) {
	// NOP, BRK
	m := newMachine(t, 0xea, 0x00)
	test.DemandSuccess(t, m.Instance.Prefs.HaltOnBRK.Set(true))

	halt, _ := m.Run(context.Background(), 1000)
	test.ExpectEquality(t, halt, hardware.HaltBRK)
	test.ExpectEquality(t, m.CPU.State().PC.Address(), uint16(0x0200))

	// the stack pointer is zero at power on so the stack wraps
	test.ExpectEquality(t, m.Peek(0x0100), uint8(0x02))
	test.ExpectEquality(t, m.Peek(0x01ff), uint8(0x03))
}

func TestRunLimit(t *testing.T) {
	// JMP $0200
	m := newMachine(t, 0x4c, 0x00, 0x02)
	test.DemandSuccess(t, m.Instance.Prefs.TrapDetect.Set(false))

	halt, edges := m.Run(context.Background(), 1000)
	test.ExpectEquality(t, halt, hardware.HaltLimit)
	test.ExpectEquality(t, edges, 1000)
}

func TestRunCancelled(t *testing.T) {
	m := newMachine(t, 0x4c, 0x00, 0x02)
	test.DemandSuccess(t, m.Instance.Prefs.TrapDetect.Set(false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	halt, edges := m.Run(ctx, 0)
	test.ExpectEquality(t, halt, hardware.HaltCancelled)
	test.ExpectEquality(t, edges, 0)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	halt, edges = m.Run(ctx, 0)
	test.ExpectEquality(t, halt, hardware.HaltCancelled)
	test.ExpectSuccess(t, edges > 0)

	// cancellation only happens on an instruction boundary
	test.ExpectSuccess(t, m.CPU.State().Boundary())
}

func TestPeekPoke(t *testing.T) {
	m := newMachine(t)
	m.Poke(0x1234, 0x56)
	test.ExpectEquality(t, m.Peek(0x1234), uint8(0x56))

	ram, _ := m.RAM()
	reads, writes := ram.Accesses()
	test.ExpectEquality(t, reads, 0)
	test.ExpectEquality(t, writes, 0)
}

func TestRandomState(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.Instance.Prefs.RandomState.Set(true))
	m.PowerOn()

	rnd := random.NewRandom(nil)
	rnd.ZeroSeed = true

	s := m.CPU.State()
	test.ExpectEquality(t, s.A.Value(), rnd.Uint8(0))
	test.ExpectEquality(t, s.X.Value(), rnd.Uint8(1))
	test.ExpectEquality(t, s.Y.Value(), rnd.Uint8(2))
	test.ExpectEquality(t, s.SP.Value(), rnd.Uint8(3))

	// reset leaves the random registers untouched
	m.Reset()
	m.StepInstruction()
	test.ExpectEquality(t, m.CPU.State().A.Value(), rnd.Uint8(0))
}

func TestWriteDOT(t *testing.T) {
	m := newMachine(t, 0xa2, 0x05)
	m.StepInstruction()

	var b strings.Builder
	m.WriteDOT(&b)
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "digraph"))
}
