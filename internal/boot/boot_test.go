package boot

import (
	"testing"

	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/mmu"
)

func TestLoadImage(t *testing.T) {
	b := []byte{0x31, 0xFE, 0xFF, 0xAF}
	img, err := LoadImage(b, 0x0100)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0100), img.Base())
	assert.Equal(t, 4, img.Len())
	assert.Equal(t, xxhash.Sum64(b), img.Checksum())

	// the image holds its own copy
	b[0] = 0x00
	assert.Equal(t, byte(0x31), img.Read(0x0100))
	assert.Equal(t, byte(0xAF), img.Read(0x0103))
	assert.Equal(t, byte(0xFF), img.Read(0x0104))
	assert.Equal(t, byte(0xFF), img.Read(0x00FF))
}

func TestLoadImage_Bounds(t *testing.T) {
	_, err := LoadImage(nil, 0)
	assert.ErrorIs(t, err, ErrEmptyImage)

	// exactly filling the address space is fine
	_, err = LoadImage(make([]byte, 0x10000), 0x0000)
	assert.NoError(t, err)
	_, err = LoadImage([]byte{0x76}, 0xFFFF)
	assert.NoError(t, err)

	_, err = LoadImage([]byte{0x00, 0x00}, 0xFFFF)
	assert.ErrorIs(t, err, ErrImageTooLarge)
	_, err = LoadImage(make([]byte, 0x10001), 0x0000)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestImage_Install(t *testing.T) {
	img, err := LoadImage([]byte{0xC3, 0x50, 0x01}, 0x0100)
	require.NoError(t, err)

	m := mmu.NewMMU()
	img.Install(m)
	assert.Equal(t, []byte{0xC3, 0x50, 0x01}, m.ReadBlock(0x0100, 3))
	assert.Equal(t, uint8(0x00), m.Read(0x0103))
}

func TestImage_String(t *testing.T) {
	var img *Image
	assert.Equal(t, "none", img.String())
	assert.Zero(t, img.Checksum())

	img, err := LoadImage([]byte{0x00}, 0x0150)
	require.NoError(t, err)
	assert.Contains(t, img.String(), "1 bytes at 0x0150")
}
