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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/test"
)

func TestRegister(t *testing.T) {
	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectFailure(t, r8.IsNegative())
	test.ExpectEquality(t, r8.Label(), "test")

	r8.Load(0x80)
	test.ExpectEquality(t, r8.Value(), 0x80)
	test.ExpectEquality(t, r8.Address(), 0x0080)
	test.ExpectSuccess(t, r8.IsNegative())
	test.ExpectFailure(t, r8.IsZero())
	test.ExpectEquality(t, r8.String(), "test=80")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), 129)

	pc.Load(0x12ff)
	test.ExpectEquality(t, pc.Lo(), 0xff)
	test.ExpectEquality(t, pc.Hi(), 0x12)

	// wrapping around the top of memory
	pc.Load(0xffff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0)
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister(registers.PowerOnStatus)
	test.ExpectEquality(t, sr.Value(), 0x20)
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.Zero = true
	sr.Carry = true
	test.ExpectEquality(t, sr.String(), "sv-bdiZC")
	test.ExpectEquality(t, sr.Value(), 0x23)

	sr.Load(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), 0xff)
}

// bit 5 of the packed status register is set whatever value is loaded
func TestStatusRegisterUnusedBit(t *testing.T) {
	var sr registers.StatusRegister
	for v := range 256 {
		sr.Load(uint8(v))
		test.ExpectEquality(t, sr.Value(), uint8(v)|0x20, v)
	}
}

func TestRegisterFile(t *testing.T) {
	f := registers.NewFile()
	test.ExpectEquality(t, f.Status.Value(), registers.PowerOnStatus)

	sel := []registers.Select{
		registers.SelectA,
		registers.SelectX,
		registers.SelectY,
		registers.SelectSP,
	}
	for i, s := range sel {
		f.Set(s, uint8(i+1))
	}
	for i, s := range sel {
		test.ExpectEquality(t, f.Get(s), uint8(i+1), s)
	}

	test.ExpectEquality(t, f.A.Value(), 1)
	test.ExpectEquality(t, f.SP.Value(), 4)

	// setting the status register through Select also forces bit 5
	f.Set(registers.SelectStatus, 0x00)
	test.ExpectEquality(t, f.Get(registers.SelectStatus), 0x20)

	// the file is a value type. changes to a copy are not seen in the
	// original
	g := f
	g.A.Load(0xaa)
	test.ExpectEquality(t, f.A.Value(), 1)
}

func TestParseSelect(t *testing.T) {
	for name, sel := range map[string]registers.Select{
		"a": registers.SelectA, "X": registers.SelectX, "y": registers.SelectY,
		"sp": registers.SelectSP, "P": registers.SelectStatus, "SR": registers.SelectStatus,
	} {
		s, ok := registers.ParseSelect(name)
		test.ExpectSuccess(t, ok, name)
		test.ExpectEquality(t, s, sel, name)
	}

	_, ok := registers.ParseSelect("PC")
	test.ExpectFailure(t, ok)
}
