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

// Package test bundles functions that remove common boilerplate from tests
// written for the standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately and should be used when later
// parts of the test depend on the value being correct. For example, testing
// that a bus trace has the expected length before comparing it entry by
// entry.
//
// ExpectSuccess and ExpectFailure interpret the nil value as a success. This
// follows how errors work in Go, where nil indicates the absence of an error.
//
// All the functions accept optional tags. These are printed at the start of
// the failure message and are useful for identifying which iteration of a
// loop failed.
//
// The CompareWriter, CappedWriter and RingWriter types implement io.Writer
// and are useful for capturing output.
package test
