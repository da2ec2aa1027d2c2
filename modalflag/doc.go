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

// Package modalflag wraps the flag package of the standard library. It
// handles program modes and sub-modes and allows different flags for each
// mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called without arguments. Non-flag arguments are retrieved after parsing
// with RemainingArgs() or GetArg().
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "MONITOR")
//	limit := md.AddInt("limit", 0, "maximum number of cycles")
//
//	switch r, err := md.Parse(); r {
//	case ParseHelp:
//		return
//	case ParseError:
//		return err
//	}
//
// The first sub-mode is the default. After parsing, Mode() returns the
// sub-mode selected by the first non-flag argument, or the default mode if
// the argument is not a sub-mode. Sub-mode comparisons are case insensitive
// and sub-modes are always reported in upper case.
//
// Parsing a sub-mode's own flags is done by calling NewMode(), adding the
// flags (and perhaps further sub-modes) and calling Parse() again. Path()
// returns every mode encountered so far, separated by a slash. For example:
//
//	RUN
//	TRACE
//	SCRIPT
//
// In addition to the usual flag types, AddAddress() accepts a 16 bit address
// in hexadecimal (with or without a "$" or "0x" prefix) and AddChoice() accepts
// one of a fixed list of strings.
//
// Help is printed to the Output writer when the -help flag is given. The help
// lists the flags of the current mode and the available sub-modes.
package modalflag
