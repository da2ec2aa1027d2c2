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
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// record types of the Intel HEX format
const (
	hexData                   = 0x00
	hexEndOfFile              = 0x01
	hexExtendedSegmentAddress = 0x02
	hexStartSegmentAddress    = 0x03
	hexExtendedLinearAddress  = 0x04
	hexStartLinearAddress     = 0x05
)

type hexImage struct {
	segments []Segment
	entry    uint16
}

// decodeHex decodes an Intel HEX file. Only addresses in the 64K address
// space of the CPU are accepted.
func decodeHex(data []byte) (hexImage, error) {
	var img hexImage
	var start bool
	var eof bool

	// the upper bits of the address from extended address records
	var base uint32

	mem := make(map[uint16]uint8)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		if eof {
			return img, fmt.Errorf("hex: line %d: data after end of file record", line)
		}
		if s[0] != ':' {
			return img, fmt.Errorf("hex: line %d: missing start code", line)
		}

		rec, err := hex.DecodeString(s[1:])
		if err != nil {
			return img, fmt.Errorf("hex: line %d: %w", line, err)
		}
		if len(rec) < 5 || len(rec) != int(rec[0])+5 {
			return img, fmt.Errorf("hex: line %d: bad record length", line)
		}

		var sum uint8
		for _, b := range rec {
			sum += b
		}
		if sum != 0 {
			return img, fmt.Errorf("hex: line %d: checksum error", line)
		}

		address := uint16(rec[1])<<8 | uint16(rec[2])
		payload := rec[4 : len(rec)-1]

		switch rec[3] {
		case hexData:
			for i, b := range payload {
				a := base + uint32(address) + uint32(i)
				if a > 0xffff {
					return img, fmt.Errorf("hex: line %d: address $%x is outside of memory", line, a)
				}
				mem[uint16(a)] = b
			}

		case hexEndOfFile:
			eof = true

		case hexExtendedSegmentAddress, hexExtendedLinearAddress:
			if len(payload) != 2 {
				return img, fmt.Errorf("hex: line %d: bad extended address record", line)
			}
			v := uint32(payload[0])<<8 | uint32(payload[1])
			if rec[3] == hexExtendedSegmentAddress {
				base = v << 4
			} else {
				base = v << 16
			}

		case hexStartSegmentAddress, hexStartLinearAddress:
			if len(payload) != 4 {
				return img, fmt.Errorf("hex: line %d: bad start address record", line)
			}
			var a uint32
			if rec[3] == hexStartSegmentAddress {
				cs := uint32(payload[0])<<8 | uint32(payload[1])
				ip := uint32(payload[2])<<8 | uint32(payload[3])
				a = cs<<4 + ip
			} else {
				a = uint32(payload[0])<<24 | uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
			}
			if a > 0xffff {
				return img, fmt.Errorf("hex: line %d: start address $%x is outside of memory", line, a)
			}
			img.entry = uint16(a)
			start = true

		default:
			return img, fmt.Errorf("hex: line %d: unknown record type %02x", line, rec[3])
		}
	}
	if err := scanner.Err(); err != nil {
		return img, fmt.Errorf("hex: %w", err)
	}

	if !eof {
		return img, fmt.Errorf("hex: missing end of file record")
	}
	if len(mem) == 0 {
		return img, fmt.Errorf("hex: no data records")
	}

	// collate bytes into contiguous segments
	addresses := make([]int, 0, len(mem))
	for a := range mem {
		addresses = append(addresses, int(a))
	}
	sort.Ints(addresses)

	for i, a := range addresses {
		if i == 0 || a != addresses[i-1]+1 {
			img.segments = append(img.segments, Segment{Origin: uint16(a)})
		}
		seg := &img.segments[len(img.segments)-1]
		seg.Data = append(seg.Data, mem[uint16(a)])
	}

	if !start {
		img.entry = img.segments[0].Origin
	}

	return img, nil
}
