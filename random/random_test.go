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

package random_test

import (
	"testing"

	"github.com/jetsetilly/cycle6502/random"
	"github.com/jetsetilly/cycle6502/test"
)

type clock struct {
	cycles int
}

func (c *clock) Cycles() int {
	return c.cycles
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(&clock{cycles: 1000})
	b := random.NewRandom(&clock{cycles: 1000})
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
		test.ExpectEquality(t, a.Uint8(i), b.Uint8(i))
	}
}

func TestRange(t *testing.T) {
	c := &clock{}
	r := random.NewRandom(c)
	for i := 1; i < 1000; i++ {
		c.cycles = i
		v := r.Intn(10)
		test.ExpectSuccess(t, v >= 0 && v < 10)
	}
}

func TestNilClock(t *testing.T) {
	r := random.NewRandom(nil)
	r.ZeroSeed = true
	test.ExpectEquality(t, r.Intn(100), r.Intn(100))
}
