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

// Package imageloader loads memory images from files (or from http/https
// URLs) and copies them into the memory of the machine.
//
// Two formats are supported. Raw binary images are copied to memory starting
// at an origin address. Intel HEX files carry their own addresses; the
// origin is ignored.
//
// The format is decided by the file extension unless it is given explicitly
// to NewLoader(). Extensions are not case sensitive.
//
//	.BIN .ROM .PRG .OBJ	binary
//	.HEX .IHX .IHEX		Intel HEX
//
// The loader can optionally patch the reset vector so that the CPU begins
// execution at the start of the image. For binary images this is the origin.
// For Intel HEX files it is the start address record if present and the
// lowest address of the image otherwise.
//
// Errors are curated errors. An unsupported format can be detected with:
//
//	curated.Is(err, imageloader.UnsupportedFormat)
package imageloader
