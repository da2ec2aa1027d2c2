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

package script_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/hardware/preferences"
	"github.com/jetsetilly/cycle6502/logger"
	"github.com/jetsetilly/cycle6502/script"
	"github.com/jetsetilly/cycle6502/test"
)

func newScript(t *testing.T) (*script.Script, *hardware.Machine, *strings.Builder) {
	t.Helper()

	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(prefs, nil)
	test.DemandSuccess(t, err)
	m.Instance.Normalise()

	out := &strings.Builder{}
	scr := script.NewScript(m, out)
	t.Cleanup(scr.Close)

	return scr, m, out
}

// pokes the reset vector and the program at $0200
const preamble = `
poke(0xfffe, 0x00)
poke(0xffff, 0x02)
function program(...)
	for i, v in ipairs({...}) do
		poke(0x0200 + i - 1, v)
	end
end
`

func TestStepAndRegisters(t *testing.T) {
	scr, _, out := newScript(t)

	err := scr.RunString(context.Background(), preamble+`
program(0xa9, 0x05)
n = stepi()
print(n, reg("A"), reg("pc"), cycles())
`, "test")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "5\t5\t514\t5\n")
}

func TestStep(t *testing.T) {
	scr, _, out := newScript(t)

	err := scr.RunString(context.Background(), preamble+`
program(0xea)
local n = 0
repeat
	n = n + 1
until step()
print(n)
`, "test")
	test.DemandSuccess(t, err)

	// three edges of the reset sequence and two for the NOP
	test.ExpectEquality(t, out.String(), "5\n")
}

func TestRun(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.RunString(context.Background(), preamble+`
program(0x4c, 0x00, 0x02)
print(run())
`, "test")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "trap\t6\n")
	test.ExpectEquality(t, m.CPU.State().PC.Address(), uint16(0x0200))
}

func TestSetRegisters(t *testing.T) {
	scr, m, out := newScript(t)

	err := scr.RunString(context.Background(), preamble+`
program(0xe8)
stepi()
setreg("X", 0x10)
setreg("PC", 0x0200)
stepi()
print(reg("X"), reg("PC"))
`, "test")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "17\t513\n")
	test.ExpectEquality(t, m.CPU.State().X.Value(), uint8(0x11))
}

func TestReset(t *testing.T) {
	scr, _, out := newScript(t)

	err := scr.RunString(context.Background(), preamble+`
program(0xea)
stepi()
reset()
print(stepi())
`, "test")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "5\n")
}

func TestLoad(t *testing.T) {
	scr, _, out := newScript(t)

	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0xa9, 0x07}, 0o644))

	err := scr.RunString(context.Background(), fmt.Sprintf(`
print(load(%q, 0x0400))
stepi()
print(reg("A"), peek(0xfffe), peek(0xffff))
`, fn), "test")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "1024\n7\t0\t4\n")
}

func TestTrace(t *testing.T) {
	scr, _, out := newScript(t)

	err := scr.RunString(context.Background(), preamble+`
program(0xa9, 0x05, 0xea, 0xea)
trace(true)
stepi()
trace(false)
stepi()
trace(true)
stepi()
`, "test")
	test.DemandSuccess(t, err)

	// nothing is written for the first NOP
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.DemandEquality(t, len(lines), 6)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "-2 R $fffe 00"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[3], " 1 R $0201 05"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[4], " 0 R $0203 ea"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[5], " 1 R $0204 00"))
}

func TestLog(t *testing.T) {
	scr, _, _ := newScript(t)

	logger.Clear()
	test.DemandSuccess(t, scr.RunString(context.Background(), `log("hello")`, "test"))

	logger.BorrowLog(func(entries []logger.Entry) {
		test.DemandEquality(t, len(entries), 1)
		test.ExpectEquality(t, entries[0].Tag, "script")
		test.ExpectEquality(t, entries[0].Detail, "hello")
	})
}

func TestErrors(t *testing.T) {
	scr, _, _ := newScript(t)

	for _, src := range []string{
		`peek(0x10000)`,
		`poke(0x10, 256)`,
		`reg("Q")`,
		`trace(true, "xml")`,
		`load("does_not_exist.bin")`,
		`this is not lua`,
		`error("raised")`,
	} {
		err := scr.RunString(context.Background(), src, "test")
		test.ExpectFailure(t, err, src)
		test.ExpectSuccess(t, curated.Is(err, script.ScriptError), src)
	}

	err := scr.RunFile(context.Background(), "does_not_exist.lua")
	test.ExpectSuccess(t, curated.Is(err, script.ScriptUnavailable))
}

func TestRunFile(t *testing.T) {
	scr, _, out := newScript(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print("from file")`), 0o644))

	test.DemandSuccess(t, scr.RunFile(context.Background(), fn))
	test.ExpectEquality(t, out.String(), "from file\n")
}
