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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cycle6502/curated"
	"github.com/jetsetilly/cycle6502/hardware/memory/bus"
	"github.com/jetsetilly/cycle6502/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "imageloader: unsupported format: %v"
	ImageTooLarge     = "imageloader: image of %d bytes at $%04x exceeds memory"
	HTTPStatus        = "imageloader: http: %s"
)

// Segment is a contiguous block of the image.
type Segment struct {
	Origin uint16
	Data   []byte
}

// End returns the address of the last byte of the segment.
func (seg Segment) End() uint16 {
	return seg.Origin + uint16(len(seg.Data)-1)
}

// Loader is used to specify and load a memory image.
type Loader struct {
	// filename or URL of the image
	Filename string

	// format of the image. never FormatAuto after a successful Load()
	Format Format

	// load address of binary images
	Origin uint16

	// expected hash of the image file. an empty string indicates that the
	// hash is not known and need not be validated. after a load operation
	// the value will be the hash of the loaded file
	Hash string

	// the raw contents of the file
	Data []byte

	// the image decoded into segments. binary images have exactly one
	// segment
	Segments []Segment

	// the address at which execution should begin. the origin of binary
	// images and the start address of Intel HEX images
	Entry uint16
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The format argument is used to set the Format field unless it is "AUTO" or
// the empty string, in which case the file extension decides.
func NewLoader(filename string, format string, origin uint16) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatAuto,
		Origin:   origin,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != "" && format != string(FormatAuto) {
		ld.Format = Format(format)
	} else {
		ld.Format = formatFromExtension(filename)
	}

	return ld
}

// ShortName returns the filename of the image without path or extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Segments) > 0
}

// Size returns the number of bytes in the decoded image.
func (ld Loader) Size() int {
	var n int
	for _, seg := range ld.Segments {
		n += len(seg.Data)
	}
	return n
}

// Load and decode the image.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return curated.Errorf(HTTPStatus, resp.Status)
		}
		ld.Data, err = io.ReadAll(resp.Body)
	case "file":
		ld.Data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
	default:
		return curated.Errorf("imageloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}
	if err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("imageloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return ld.decode()
}

// LoadData decodes data that has been obtained by other means. The Filename
// field is used only for messages.
func (ld *Loader) LoadData(data []byte) error {
	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	ld.Segments = ld.Segments[:0]
	return ld.decode()
}

func (ld *Loader) decode() error {
	switch ld.Format {
	case FormatBinary:
		if len(ld.Data) == 0 {
			return curated.Errorf("imageloader: %v", "empty image")
		}
		if int(ld.Origin)+len(ld.Data) > 0x10000 {
			return curated.Errorf(ImageTooLarge, len(ld.Data), ld.Origin)
		}
		ld.Segments = []Segment{{Origin: ld.Origin, Data: ld.Data}}
		ld.Entry = ld.Origin

	case FormatHex:
		img, err := decodeHex(ld.Data)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		ld.Segments = img.segments
		ld.Entry = img.entry

	default:
		return curated.Errorf(UnsupportedFormat, ld.Format)
	}

	logger.Logf(logger.Allow, "imageloader", "%s: %d bytes in %d segment(s), entry $%04x",
		ld.ShortName(), ld.Size(), len(ld.Segments), ld.Entry)

	return nil
}

// Apply copies the image into memory without creating bus transactions. If
// patchReset is true the reset vector is changed to the entry address.
func (ld Loader) Apply(mem bus.DebuggerBus, patchReset bool) error {
	if !ld.HasLoaded() {
		return curated.Errorf("imageloader: %v", "image has not been loaded")
	}

	for _, seg := range ld.Segments {
		for i, b := range seg.Data {
			mem.Poke(seg.Origin+uint16(i), b)
		}
	}

	if patchReset {
		mem.Poke(bus.StartVector, uint8(ld.Entry))
		mem.Poke(bus.StartVector+1, uint8(ld.Entry>>8))
		logger.Logf(logger.Allow, "imageloader", "start vector patched to $%04x", ld.Entry)
	}

	return nil
}
