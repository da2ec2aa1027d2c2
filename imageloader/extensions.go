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

package imageloader

import (
	"path/filepath"
	"strings"
)

// Format of a memory image.
type Format string

// List of valid Format values.
const (
	FormatAuto   Format = "AUTO"
	FormatBinary Format = "BIN"
	FormatHex    Format = "HEX"
)

// Formats is the list of format names accepted by NewLoader().
var Formats = []string{string(FormatAuto), string(FormatBinary), string(FormatHex)}

// FileExtensions is the list of file extensions that are recognised by the
// imageloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".PRG", ".OBJ", ".HEX", ".IHX", ".IHEX"}

func formatFromExtension(filename string) Format {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".BIN", ".ROM", ".PRG", ".OBJ":
		return FormatBinary
	case ".HEX", ".IHX", ".IHEX":
		return FormatHex
	}
	return FormatAuto
}
