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
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/trace"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError       = "script: %v"
	ScriptUnavailable = "script: cannot open file: %v"
)

// Script is a Lua environment attached to a Machine.
type Script struct {
	m      *hardware.Machine
	L      *lua.LState
	output io.Writer

	// the tracer is created on the first call to trace(true) and is paused
	// by trace(false)
	trc *trace.Tracer
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer needed.
func NewScript(m *hardware.Machine, output io.Writer) *Script {
	scr := &Script{
		m:      m,
		L:      lua.NewState(),
		output: output,
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":  scr.print,
		"peek":   scr.peek,
		"poke":   scr.poke,
		"load":   scr.load,
		"step":   scr.step,
		"stepi":  scr.stepi,
		"run":    scr.run,
		"reset":  scr.reset,
		"reg":    scr.reg,
		"setreg": scr.setreg,
		"cycles": scr.cycles,
		"trace":  scr.trace,
		"dot":    scr.dot,
		"log":    scr.log,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf(ScriptUnavailable, err)
	}
	defer f.Close()
	return scr.exec(ctx, f, filepath.Base(filename))
}

// RunString runs the Lua source. The name is used in error messages.
func (scr *Script) RunString(ctx context.Context, source string, name string) error {
	return scr.exec(ctx, strings.NewReader(source), name)
}

func (scr *Script) exec(ctx context.Context, r io.Reader, name string) error {
	scr.L.SetContext(ctx)
	defer scr.L.RemoveContext()

	fn, err := scr.L.Load(r, name)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	scr.L.Push(fn)
	if err := scr.L.PCall(0, lua.MultRet, nil); err != nil {
		return curated.Errorf(ScriptError, err)
	}

	if scr.trc != nil {
		if err := scr.trc.Flush(); err != nil {
			return curated.Errorf(ScriptError, err)
		}
	}

	return nil
}
