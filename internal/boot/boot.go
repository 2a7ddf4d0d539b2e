// Package boot provides the program images that are placed into memory
// before execution starts. An image is a flat run of bytes with a base
// address: a boot program at 0x0000, or a test program at 0x0100 with
// the CPU started there.
package boot

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

var (
	// ErrEmptyImage is returned when loading an image with no bytes.
	ErrEmptyImage = errors.New("boot: empty image")
	// ErrImageTooLarge is returned when an image would run past 0xFFFF.
	ErrImageTooLarge = errors.New("boot: image does not fit the address space")
)

// addressSpace is the number of bytes an image may span from 0x0000.
const addressSpace = 0x10000

// BlockWriter is the memory an Image is installed into.
type BlockWriter interface {
	WriteBlock(address uint16, data []byte)
}

// Image represents a program image. Images never wrap around the top
// of memory, base+len must not exceed 0x10000.
type Image struct {
	raw      []byte // the raw image
	base     uint16 // the address of the first byte
	checksum uint64 // the xxhash of raw
}

// LoadImage copies b into a new Image placed at base, and calculates its
// checksum.
func LoadImage(b []byte, base uint16) (*Image, error) {
	if len(b) == 0 {
		return nil, ErrEmptyImage
	}
	if int(base)+len(b) > addressSpace {
		return nil, fmt.Errorf("%w: %d bytes at 0x%04X", ErrImageTooLarge, len(b), base)
	}

	raw := make([]byte, len(b))
	copy(raw, b)

	return &Image{
		raw:      raw,
		base:     base,
		checksum: xxhash.Sum64(raw),
	}, nil
}

// Read returns the byte at the given absolute address, or 0xFF when the
// address lies outside of the image.
func (i *Image) Read(addr uint16) byte {
	if addr < i.base || int(addr-i.base) >= len(i.raw) {
		return 0xFF
	}
	return i.raw[addr-i.base]
}

// Base returns the address the image is placed at.
func (i *Image) Base() uint16 { return i.base }

// Len returns the size of the image in bytes.
func (i *Image) Len() int { return len(i.raw) }

// Checksum returns the xxhash of the image.
func (i *Image) Checksum() uint64 {
	if i == nil {
		return 0
	}
	return i.checksum
}

// Install writes the image into memory at its base address.
func (i *Image) Install(w BlockWriter) {
	w.WriteBlock(i.base, i.raw)
}

func (i *Image) String() string {
	if i == nil {
		return "none"
	}
	return fmt.Sprintf("%d bytes at 0x%04X (xxhash %016x)", len(i.raw), i.base, i.checksum)
}
