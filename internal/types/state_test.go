package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RoundTrip(t *testing.T) {
	s := NewState()
	s.Write8(0x12)
	s.Write16(0xBEEF)
	s.WriteBool(true)
	s.WriteBool(false)
	s.WriteData([]byte("sm83"))

	assert.Equal(t, []byte{0x12, 0xEF, 0xBE, 1, 0, 's', 'm', '8', '3'}, s.Bytes())

	r := StateFromBytes(s.Bytes())
	assert.Equal(t, uint8(0x12), r.Read8())
	assert.Equal(t, uint16(0xBEEF), r.Read16())
	assert.True(t, r.ReadBool())
	assert.False(t, r.ReadBool())
	data := make([]byte, 4)
	r.ReadData(data)
	assert.Equal(t, []byte("sm83"), data)
	require.NoError(t, r.Err())

	r.ResetPosition()
	assert.Equal(t, uint8(0x12), r.Read8())
}

func TestState_Short(t *testing.T) {
	r := StateFromBytes([]byte{0x01})
	assert.Equal(t, uint16(0), r.Read16())
	assert.ErrorIs(t, r.Err(), ErrShortState)

	// the error is sticky
	assert.Equal(t, uint8(0), r.Read8())
	assert.ErrorIs(t, r.Err(), ErrShortState)

	r.ResetPosition()
	assert.Equal(t, uint8(0x01), r.Read8())
	assert.NoError(t, r.Err())
}
