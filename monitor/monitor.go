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

package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/hardware/cpu/execution"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
	"github.com/jetsetilly/cycle6502/logger"
	"github.com/jetsetilly/cycle6502/monitor/easyterm"
	"golang.org/x/term"
)

// DefaultRunLimit is the number of cycles after which the run command will
// stop if the machine does not halt for any other reason.
const DefaultRunLimit = 10_000_000

// width of the separator when the size of the terminal is not known
const defaultWidth = 60

// Monitor is an interactive single-step front end for a Machine.
type Monitor struct {
	m      *hardware.Machine
	input  io.Reader
	output io.Writer

	// non-nil if the input is a real terminal
	term *easyterm.Terminal

	// RunLimit is the limit passed to Machine.Run() by the run command
	RunLimit int

	// the most recent bus transaction. valid if sampled is true
	last    bus.Transaction
	sampled bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// If input is an *os.File connected to a terminal, the terminal will be put
// into cbreak mode for the duration of the Run() function.
func NewMonitor(m *hardware.Machine, input io.Reader, output io.Writer) (*Monitor, error) {
	mon := &Monitor{
		m:        m,
		input:    input,
		output:   output,
		RunLimit: DefaultRunLimit,
	}

	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		out, ok := output.(*os.File)
		if !ok {
			out = os.Stdout
		}
		mon.term = &easyterm.Terminal{}
		if err := mon.term.Initialise(f, out); err != nil {
			return nil, curated.Errorf("monitor: %v", err)
		}
	}

	m.CPU.AttachObserver(func(t bus.Transaction) {
		mon.last = t
		mon.sampled = true
	})

	return mon, nil
}

// Run reads and acts upon keys until the quit key is pressed, the input is
// exhausted or the context is cancelled.
func (mon *Monitor) Run(ctx context.Context) error {
	if mon.term != nil {
		defer mon.term.CleanUp()
		if err := mon.term.CBreakMode(); err != nil {
			return curated.Errorf("monitor: %v", err)
		}
	}

	mon.help()
	mon.registers()

	b := make([]byte, 1)

	for {
		if ctx.Err() != nil {
			return nil
		}

		_, err := mon.input.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		quit, err := mon.key(ctx, b[0])
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// key acts upon a single key press. returns true if the monitor should quit.
func (mon *Monitor) key(ctx context.Context, k byte) (bool, error) {
	switch k {
	case ' ', 'c', 'C':
		mon.sampled = false
		out := mon.m.Step()
		if mon.sampled {
			mon.printf("%s\n", mon.last)
		} else {
			mon.printf("(bus not sampled)\n")
		}
		if out.ResetDone {
			mon.printf("reset complete\n")
		}
		if out.End {
			mon.instruction()
		}

	case 'i', 'I':
		mon.m.StepInstruction()
		mon.instruction()

	case 'r', 'R':
		halt, edges := mon.m.Run(ctx, mon.RunLimit)
		mon.printf("halted after %d cycles: %s\n", edges, halt)
		mon.instruction()

	case 's', 'S':
		mon.m.Reset()
		mon.printf("reset sequence armed\n")
		logger.Log(logger.Allow, "monitor", "reset")

	case 'd', 'D':
		fn, err := mon.m.DumpDOT()
		if err != nil {
			mon.printf("* %v\n", err)
			logger.Log(logger.Allow, "monitor", err)
			break
		}
		mon.printf("cpu state written to %s\n", fn)

	case 'h', 'H', '?':
		mon.help()

	case 'q', 'Q', easyterm.KeyInterrupt, easyterm.KeyEOT:
		return true, nil

	case '\n', easyterm.KeyCarriageReturn:
		// ignored so that line buffered input works

	default:
		mon.printf("unknown key (h for help)\n")
	}

	return false, nil
}

func (mon *Monitor) instruction() {
	r := mon.m.CPU.LastResult
	if r.Defn != nil {
		mon.printf("%s\n", r.GetString(execution.StyleFull))
	}
	mon.registers()
}

func (mon *Monitor) registers() {
	mon.printf("%s\n", mon.m.CPU.State().File)
	mon.printf("%s\n", strings.Repeat("-", mon.width()))
}

func (mon *Monitor) help() {
	mon.printf("space/c: cycle  i: instruction  r: run  s: reset  d: dot  q: quit\n")
}

// width of the output terminal
func (mon *Monitor) width() int {
	if mon.term != nil {
		if g := mon.term.Geometry(); g.Cols > 0 {
			return g.Cols
		}
	}
	if f, ok := mon.output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

func (mon *Monitor) printf(format string, a ...any) {
	fmt.Fprintf(mon.output, format, a...)
}
