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

// Package preferences collates the preference values that affect the
// hardware emulation.
package preferences

import (
	"github.com/jetsetilly/cycle6502/paths"
	"github.com/jetsetilly/cycle6502/prefs"
)

// Preferences defines and collates the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise the CPU registers to random values on power on
	RandomState prefs.Bool

	// log every illegal opcode encountered
	LogIllegal prefs.Bool

	// stop a running machine when a BRK instruction completes
	HaltOnBRK prefs.Bool

	// stop a running machine when an instruction jumps or branches to itself
	TrapDetect prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. An empty path selects the default preferences file in the resource
// directory.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if path == "" {
		var err error
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for k, v := range map[string]*prefs.Bool{
		"cpu.randomstate":    &p.RandomState,
		"cpu.logillegal":     &p.LogIllegal,
		"machine.haltonbrk":  &p.HaltOnBRK,
		"machine.trapdetect": &p.TrapDetect,
	} {
		if err := p.dsk.Add(k, v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all hardware preferences to their default values. The
// values are not saved to disk.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.LogIllegal.Set(true)
	_ = p.HaltOnBRK.Set(false)
	_ = p.TrapDetect.Set(true)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
