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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/cycle6502/hardware/cpu"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
)

// the number of bytes used to record a single transaction in the buffer:
// address (two bytes), data, direction and cycle
const transactionSize = 5

// the length of the buffer isn't really important. that said, it needs to be
// at least sha1.Size bytes in length
const busBufferLength = 1024*transactionSize + sha1.Size

// to allow digests of bus activity longer than busBufferLength, the previous
// digest value is stuffed into the first part of the buffer array and
// included when the next digest is created
const busBufferStart = sha1.Size

// Bus is a Digest of every transaction on the bus of a CPU.
type Bus struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int

	// the number of transactions seen since the digest was reset
	count int
}

// NewBus is the preferred method of initialisation for the Bus type. The new
// Bus is attached to the CPU immediately.
func NewBus(mc *cpu.CPU) *Bus {
	dig := &Bus{
		buffer:   make([]uint8, busBufferLength),
		bufferCt: busBufferStart,
	}
	mc.AttachObserver(dig.transaction)
	return dig
}

// Hash implements the Digest interface. Any buffered transactions are
// included in the hash.
func (dig *Bus) Hash() string {
	if dig.bufferCt > busBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Bus) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = busBufferStart
	dig.count = 0
}

// Count returns the number of transactions included in the digest.
func (dig *Bus) Count() int {
	return dig.count
}

func (dig *Bus) transaction(t bus.Transaction) {
	var rw uint8
	if t.Read {
		rw = 1
	}

	b := dig.buffer[dig.bufferCt:]
	b[0] = uint8(t.Address)
	b[1] = uint8(t.Address >> 8)
	b[2] = t.Data
	b[3] = rw
	b[4] = uint8(t.Cycle)

	dig.bufferCt += transactionSize
	dig.count++

	if dig.bufferCt >= busBufferLength {
		dig.flush()
	}
}

func (dig *Bus) flush() {
	copy(dig.buffer, dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = busBufferStart
}
