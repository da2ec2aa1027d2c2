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

// Package version reports the version of the application. The version number
// is set at link time and the revision is taken from the build information
// embedded by the Go toolchain.
//
// To set the version number:
//
//	go build -ldflags "-X github.com/jetsetilly/cycle6502/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "cycle6502"

// set by the linker. empty if the project was built without a version number
var number string

// Info describes the build of the application.
type Info struct {
	// the version number. "unreleased" if there is no number but there is
	// vcs information and "local" if there is neither. the latter happens
	// with "go run ."
	Version string

	// vcs revision suffixed with "+dirty" if the source had been modified
	// but not committed
	Revision string

	// version of the Go toolchain used to build the application
	GoVersion string

	// true if Version is a version number
	Release bool
}

var info Info

// Version returns the build information of the application.
func Version() Info {
	return info
}

func (i Info) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", ApplicationName, i.Version))
	if !i.Release {
		s.WriteString(fmt.Sprintf(" (%s)", i.Revision))
	}
	if i.GoVersion != "" {
		s.WriteString(fmt.Sprintf(" %s", i.GoVersion))
	}
	return s.String()
}

func init() {
	var vcs bool
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				info.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if info.Revision == "" {
		info.Revision = "no revision information"
	} else if modified {
		info.Revision = fmt.Sprintf("%s+dirty", info.Revision)
	}

	switch {
	case number != "":
		info.Version = number
		info.Release = true
	case vcs:
		info.Version = "unreleased"
	default:
		info.Version = "local"
	}
}
