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

package test

import (
	"fmt"
)

// CompareWriter is an implementation of io.Writer that buffers everything
// written to it. Use Compare() to test the buffered output against an
// expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with the expected string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}

// CappedWriter is an implementation of io.Writer that stops buffering once a
// predefined size is reached. Writes beyond the cap are silently dropped.
type CappedWriter struct {
	buffer []byte
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		buffer: make([]byte, 0, size),
	}, nil
}

// Write implements the io.Writer interface.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), cap(w.buffer)-len(w.buffer))
	w.buffer = append(w.buffer, p[:n]...)
	return n, nil
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

// Write implements the io.Writer interface.
func (w *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of an oversized write can ever be seen
	if len(p) > len(w.buffer) {
		p = p[len(p)-len(w.buffer):]
		w.cursor = 0
		w.wrapped = false
	}

	for len(p) > 0 {
		c := copy(w.buffer[w.cursor:], p)
		p = p[c:]
		w.cursor += c
		if w.cursor == len(w.buffer) {
			w.cursor = 0
			w.wrapped = true
		}
	}

	return n, nil
}

// Reset empties the buffer.
func (w *RingWriter) Reset() {
	w.cursor = 0
	w.wrapped = false
}

func (w *RingWriter) String() string {
	if w.wrapped {
		return string(w.buffer[w.cursor:]) + string(w.buffer[:w.cursor])
	}
	return string(w.buffer[:w.cursor])
}
