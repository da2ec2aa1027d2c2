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

// Package prefs facilitates the storage of preferential values in the
// program. Values are stored in typed containers (Bool, String, Int and
// Generic) which are added to a Disk instance under a key. The Disk can then
// be saved to and loaded from a file on disk.
//
// The file format is a warning banner followed by one entry per line:
//
//	key :: value
//
// Entries in the file that are not added to the Disk instance are preserved
// when the Disk is saved. This means that more than one Disk instance can
// share the same file without clobbering one another.
//
// Values can be overridden from the command line with the
// PushCommandLineStack() function. Overridden values are applied the next
// time a Disk with the key is loaded.
package prefs
