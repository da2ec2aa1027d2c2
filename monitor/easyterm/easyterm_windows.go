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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// Geometry contains the dimensions of a terminal, in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is not supported on windows. Initialise() always fails.
type Terminal struct{}

// Initialise always returns an error on windows.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: terminal modes are not supported on windows")
}

func (pt *Terminal) CleanUp() {}
func (pt *Terminal) UpdateGeometry() error { return nil }
func (pt *Terminal) Geometry() Geometry { return Geometry{} }
func (pt *Terminal) CanonicalMode() error { return nil }
func (pt *Terminal) RawMode() error { return nil }
func (pt *Terminal) CBreakMode() error { return nil }
func (pt *Terminal) Flush() error { return nil }
