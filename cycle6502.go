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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/cycle6502/digest"
	"github.com/jetsetilly/cycle6502/disassembly"
	"github.com/jetsetilly/cycle6502/hardware"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
	"github.com/jetsetilly/cycle6502/hardware/memory/ram"
	"github.com/jetsetilly/cycle6502/imageloader"
	"github.com/jetsetilly/cycle6502/logger"
	"github.com/jetsetilly/cycle6502/modalflag"
	"github.com/jetsetilly/cycle6502/monitor"
	"github.com/jetsetilly/cycle6502/performance"
	"github.com/jetsetilly/cycle6502/prefs"
	"github.com/jetsetilly/cycle6502/script"
	"github.com/jetsetilly/cycle6502/statsview"
	"github.com/jetsetilly/cycle6502/trace"
	"github.com/jetsetilly/cycle6502/version"
)

// exit value when a mode fails
const errorExit = 10

// number of log entries printed at the end of RUN mode
const logTail = 10

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. returns the exit
// value of the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "MONITOR", "SCRIPT", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return errorExit
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)
	case "TRACE":
		err = traceMode(ctx, md, output)
	case "MONITOR":
		err = monitorMode(ctx, md, output)
	case "SCRIPT":
		err = scriptMode(ctx, md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(ctx, md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return errorExit
	}

	return 0
}

// flags that affect the environment of every mode that creates a machine
type envFlags struct {
	prefs     *string
	log       *bool
	statsview *bool
}

func addEnvFlags(md *modalflag.Modes) envFlags {
	f := envFlags{
		prefs: md.AddString("prefs", "", "preferences to override for this run. eg. \"machine.haltonbrk::true\""),
		log:   md.AddBool("log", false, "echo debugging log to stderr"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// flags that describe the image to load
type imageFlags struct {
	origin *uint16
	format *string
	reset  *bool
}

func addImageFlags(md *modalflag.Modes) imageFlags {
	return imageFlags{
		origin: md.AddAddress("origin", 0x0000, "load address of binary images"),
		format: md.AddChoice("format", string(imageloader.FormatAuto), imageloader.Formats, "format of image"),
		reset:  md.AddBool("reset", true, "patch the reset vector with the entry address of the image"),
	}
}

// prepare applies the environment flags
func (f envFlags) prepare(output io.Writer) {
	if *f.log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(output)
	}
}

// newMachine creates a machine using the default preferences file with any
// command line preferences applied
func (f envFlags) newMachine() (*hardware.Machine, error) {
	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}
	return hardware.NewMachine(nil, nil)
}

// loadImage loads the image into the machine's memory
func (f imageFlags) loadImage(mem bus.DebuggerBus, filename string) (imageloader.Loader, error) {
	ld := imageloader.NewLoader(filename, *f.format, *f.origin)
	if err := ld.Load(); err != nil {
		return ld, err
	}
	if err := ld.Apply(mem, *f.reset); err != nil {
		return ld, err
	}
	return ld, nil
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvFlags(md)
	img := addImageFlags(md)
	limit := md.AddInt("limit", 0, "number of cycles to run for. zero for no limit")
	showDigest := md.AddBool("digest", false, "print a digest of all bus activity")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one memory image required for %s mode", md)
	}

	env.prepare(output)

	m, err := env.newMachine()
	if err != nil {
		return err
	}

	if _, err := img.loadImage(m, md.GetArg(0)); err != nil {
		return err
	}

	var dig *digest.Bus
	if *showDigest {
		dig = digest.NewBus(m.CPU)
	}

	halt, edges := m.Run(ctx, *limit)

	fmt.Fprintf(output, "halted after %d cycles: %s\n", edges, halt)
	fmt.Fprintln(output, m.CPU.State().File)
	if dig != nil {
		fmt.Fprintf(output, "digest: %s\n", dig.Hash())
	}
	logger.Tail(output, logTail)

	return nil
}

func traceMode(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvFlags(md)
	img := addImageFlags(md)
	limit := md.AddInt("limit", 0, "number of cycles to run for. zero for no limit")
	format := md.AddChoice("trace", trace.Formats[trace.FormatText], trace.Formats, "format of trace")
	filter := md.AddString("filter", "", "comma separated list of addresses to trace")
	outFile := md.AddString("o", "", "write trace to file rather than to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one memory image required for %s mode", md)
	}

	env.prepare(output)

	m, err := env.newMachine()
	if err != nil {
		return err
	}

	if _, err := img.loadImage(m, md.GetArg(0)); err != nil {
		return err
	}

	traceOutput := output
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		traceOutput = f
	}

	tf, err := trace.ParseFormat(*format)
	if err != nil {
		return err
	}

	trc := trace.NewTracer(m.CPU, traceOutput, tf)

	if *filter != "" {
		for _, s := range strings.Split(*filter, ",") {
			a, err := modalflag.ParseAddress(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			if err := trc.Add(a); err != nil {
				return err
			}
		}
	}

	halt, edges := m.Run(ctx, *limit)
	if err := trc.Flush(); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "trace", "%d lines written. halted after %d cycles: %s", trc.Lines(), edges, halt)

	return nil
}

func monitorMode(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvFlags(md)
	img := addImageFlags(md)
	limit := md.AddInt("limit", monitor.DefaultRunLimit, "number of cycles after which the run command will stop")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env.prepare(output)

	m, err := env.newMachine()
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		if _, err := img.loadImage(m, md.GetArg(0)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	mon, err := monitor.NewMonitor(m, os.Stdin, output)
	if err != nil {
		return err
	}
	mon.RunLimit = *limit

	return mon.Run(ctx)
}

func scriptMode(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one lua script required for %s mode", md)
	}

	env.prepare(output)

	m, err := env.newMachine()
	if err != nil {
		return err
	}

	scr := script.NewScript(m, output)
	defer scr.Close()

	return scr.RunFile(ctx, md.GetArg(0))
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	img := addImageFlags(md)
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")
	grep := md.AddString("grep", "", "only show instructions matching the search string")

	md.AdditionalHelp(`Every byte of the image is decoded. Bytes that are not reached by following
the flow of execution from the entry address are shown as data.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one memory image required for %s mode", md)
	}

	mem := ram.NewRAM()

	ld, err := img.loadImage(mem, md.GetArg(0))
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{ByteCode: *bytecode, Cycles: *cycles}

	for _, seg := range ld.Segments {
		dsm, err := disassembly.FromMemory(mem, seg.Origin, seg.End(), ld.Entry)
		if err != nil {
			return err
		}

		if *grep != "" {
			if _, err := dsm.Grep(output, disassembly.GrepAll, *grep, false); err != nil {
				return err
			}
			continue
		}

		if err := dsm.Write(output, attr); err != nil {
			return err
		}
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	env := addEnvFlags(md)
	img := addImageFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional two second lead time)")
	profile := md.AddString("profile", "NONE", fmt.Sprintf("create profile for emulator: %s", strings.Join(performance.ProfileOptions, ", ")))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one memory image required for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	env.prepare(output)

	m, err := env.newMachine()
	if err != nil {
		return err
	}

	if _, err := img.loadImage(m, md.GetArg(0)); err != nil {
		return err
	}

	return performance.Check(ctx, output, m, prf, *duration, "2s")
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information only")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v := version.Version()
	if *revision {
		fmt.Fprintln(output, v.Revision)
		return nil
	}
	fmt.Fprintln(output, v)

	return nil
}
