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

// Package singlestep runs the CPU against single instruction test vectors in
// the format used by the SingleStepTests project.
//
// https://github.com/SingleStepTests/65x02
//
// A small set of vectors is included in the testdata directory. The full
// set of tests is large and is not included in the repository. To run them,
// add the files for the instructions you want to test from the 6502/v1
// directory on Github to the 6502/v1 directory in this package.
//
// The vectors for JSR, RTS and RTI are skipped because the timing of those
// instructions in this emulation is one cycle shorter than the real 6502.
// Illegal opcodes are also skipped.
package singlestep
