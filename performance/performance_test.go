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

package performance_test

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/hardware/preferences"
	"github.com/jetsetilly/cycle6502/performance"
	"github.com/jetsetilly/cycle6502/test"
)

func TestCalcRate(t *testing.T) {
	rate, accuracy := performance.CalcRate(2_000_000, 4)
	test.ExpectEquality(t, rate, 500_000.0)
	test.ExpectEquality(t, accuracy, 50.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("NONE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("CPU,GPU")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	t.Chdir(t.TempDir())

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(prefs, nil)
	test.DemandSuccess(t, err)
	m.Instance.Normalise()

	// JMP $0200. would be a trap but halt conditions are disabled by Check()
	ram, ok := m.RAM()
	test.DemandSuccess(t, ok)
	test.DemandSuccess(t, ram.Load(0x0200, []uint8{0x4c, 0x00, 0x02}))
	ram.PokeWord(0xfffe, 0x0200)

	out := &test.CompareWriter{}
	err = performance.Check(context.Background(), out, m, performance.ProfileCPU|performance.ProfileMem, "50ms", "10ms")
	test.DemandSuccess(t, err)

	match, err := regexp.MatchString(`^[0-9.]+ MHz \([0-9]+ cycles in [0-9.]+ seconds\) [0-9.]+%\n$`, out.String())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, match, out.String())

	for _, fn := range []string{"performance_cpu.profile", "performance_mem.profile"} {
		_, err := os.Stat(fn)
		test.ExpectSuccess(t, err, fn)
	}

	_, err = os.Stat("performance_trace.profile")
	test.ExpectFailure(t, err)

	err = performance.Check(context.Background(), out, m, performance.ProfileNone, "1 fortnight", "0s")
	test.ExpectFailure(t, err)
}
