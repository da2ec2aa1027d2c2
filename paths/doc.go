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

// Package paths contains functions to prepare paths to cycle6502 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the preferences file.
//
//	p, err := paths.ResourcePath("", "preferences")
//
// In development builds the base path is ".cycle6502" in the current
// directory. In release builds (build tag "release") the base path is the
// "cycle6502" directory in the user's config directory, as reported by
// os.UserConfigDir(). On a modern Linux system for example:
//
//	/home/user/.config/cycle6502/preferences
//
// In both cases the directory part of the resource is created if it does not
// exist.
package paths
