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

package script

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cycle6502/hardware/cpu/registers"
	"github.com/jetsetilly/cycle6502/imageloader"
	"github.com/jetsetilly/cycle6502/logger"
	"github.com/jetsetilly/cycle6502/trace"
	lua "github.com/yuin/gopher-lua"
)

// checkAddress returns argument n as a 16 bit address. raises an error if the
// argument is not a number in range.
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range: %d", v))
	}
	return uint16(v)
}

func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("value out of range: %d", v))
	}
	return uint8(v)
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.Peek(checkAddress(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	scr.m.Poke(checkAddress(L, 1), checkByte(L, 2))
	return 0
}

func (scr *Script) load(L *lua.LState) int {
	filename := L.CheckString(1)
	origin := uint16(L.OptInt(2, 0))
	format := L.OptString(3, string(imageloader.FormatAuto))

	ld := imageloader.NewLoader(filename, format, origin)
	if err := ld.Load(); err != nil {
		L.RaiseError("%v", err)
	}
	if err := ld.Apply(scr.m, true); err != nil {
		L.RaiseError("%v", err)
	}

	L.Push(lua.LNumber(ld.Entry))
	return 1
}

func (scr *Script) step(L *lua.LState) int {
	out := scr.m.Step()
	L.Push(lua.LBool(out.End))
	return 1
}

func (scr *Script) stepi(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.StepInstruction()))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	halt, edges := scr.m.Run(L.Context(), L.OptInt(1, 0))
	L.Push(lua.LString(halt.String()))
	L.Push(lua.LNumber(edges))
	return 2
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Reset()
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)
	s := scr.m.CPU.State()

	if strings.EqualFold(name, "PC") {
		L.Push(lua.LNumber(s.PC.Address()))
		return 1
	}

	sel, ok := registers.ParseSelect(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown register: %s", name))
	}
	L.Push(lua.LNumber(s.File.Get(sel)))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	name := L.CheckString(1)

	if strings.EqualFold(name, "PC") {
		scr.m.CPU.LoadPC(checkAddress(L, 2))
		return 0
	}

	sel, ok := registers.ParseSelect(name)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown register: %s", name))
	}

	s := scr.m.CPU.State()
	s.File.Set(sel, checkByte(L, 2))
	scr.m.CPU.SetState(s)
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.CPU.Cycles()))
	return 1
}

func (scr *Script) trace(L *lua.LState) int {
	on := L.CheckBool(1)

	if on && scr.trc == nil {
		format, err := trace.ParseFormat(L.OptString(2, "text"))
		if err != nil {
			L.ArgError(2, err.Error())
		}
		scr.trc = trace.NewTracer(scr.m.CPU, scr.output, format)
	} else if L.GetTop() > 1 {
		L.ArgError(2, "trace format can only be set once")
	}

	if !on && scr.trc != nil {
		if err := scr.trc.Flush(); err != nil {
			L.RaiseError("%v", err)
		}
	}

	if scr.trc != nil {
		scr.trc.Pause(!on)
	}
	return 0
}

func (scr *Script) dot(L *lua.LState) int {
	fn, err := scr.m.DumpDOT()
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LString(fn))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
