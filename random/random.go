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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of time within the emulation.
type Clock interface {
	Cycles() int
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// The clock argument can be nil, in which case time is always zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// SetClock changes the source of time for the generator.
func (rnd *Random) SetClock(clock Clock) {
	rnd.clock = clock
}

func (rnd *Random) rand(n int) *rand.Rand {
	var t int64
	if rnd.clock != nil {
		t = int64(rnd.clock.Cycles())
	}

	// the argument is mixed into the seed so that successive calls on the
	// same cycle with different ranges do not return correlated values
	seed := t<<8 ^ int64(n)
	if !rnd.ZeroSeed {
		seed += baseSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Intn returns a non-negative random number in [0,n). The number is the same
// for the same cycle count and n.
func (rnd *Random) Intn(n int) int {
	return rnd.rand(n).Intn(n)
}

// Uint8 returns a random byte. The salt distinguishes values drawn on the same
// cycle.
func (rnd *Random) Uint8(salt int) uint8 {
	return uint8(rnd.rand(0x100 + salt).Intn(0x100))
}
