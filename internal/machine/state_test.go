package machine

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestMachine_StateRoundTrip(t *testing.T) {
	m := newMachine(t, sumProgram)
	_, err := m.Run(context.Background(), 10)
	require.NoError(t, err)
	m.CPU.SetInterruptsEnabled(false)

	var buf bytes.Buffer
	require.NoError(t, m.SaveState(&buf))
	assert.Equal(t, []byte("SM83"), buf.Bytes()[:4])

	restored := NewMachine()
	require.NoError(t, restored.LoadState(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, m.Registers(), restored.Registers())
	assert.Equal(t, m.CPU.F, restored.CPU.F)
	assert.Equal(t, m.MMU.Checksum(), restored.MMU.Checksum())

	// both machines finish the same way
	_, err = m.Run(context.Background(), 0)
	require.NoError(t, err)
	_, err = restored.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, m.Registers(), restored.Registers())
	assert.Equal(t, uint8(55), restored.CPU.A)
}

func TestMachine_LoadStateRejects(t *testing.T) {
	m := newMachine(t, sumProgram)
	var buf bytes.Buffer
	require.NoError(t, m.SaveState(&buf))
	snapshot := buf.Bytes()

	corrupt := func(fn func(b []byte) []byte) []byte {
		b := append([]byte{}, snapshot...)
		return fn(b)
	}

	for _, test := range []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrBadSnapshot},
		{"short header", snapshot[:6], ErrBadSnapshot},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), ErrBadSnapshot},
		{"version", corrupt(func(b []byte) []byte { b[4] = 9; return b }), ErrBadSnapshot},
		{"checksum", corrupt(func(b []byte) []byte { b[5] ^= 0xFF; return b }), ErrChecksumMismatch},
		{"truncated payload", snapshot[:headerSize+4], ErrBadSnapshot},
	} {
		t.Run(test.name, func(t *testing.T) {
			target := NewMachine(StartAt(0x1234))
			before := target.MMU.Checksum()

			err := target.LoadState(bytes.NewReader(test.data))
			assert.ErrorIs(t, err, test.want)
			assert.Equal(t, uint16(0x1234), target.CPU.PC)
			assert.Equal(t, before, target.MMU.Checksum())
		})
	}
}

// snapshotOf wraps payload in a valid header and compresses it.
func snapshotOf(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(snapshotMagic)
	buf.WriteByte(snapshotVersion)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, xxhash.Sum64(payload)))
	w := brotli.NewWriter(&buf)
	_, err := w.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestMachine_LoadStateSize(t *testing.T) {
	for _, test := range []struct {
		name string
		size int
	}{
		{"oversized", stateSize + 100},
		{"much larger", stateSize * 4},
		{"undersized", stateSize - 1},
	} {
		t.Run(test.name, func(t *testing.T) {
			target := NewMachine(StartAt(0x1234))
			payload := bytes.Repeat([]byte{0xAA}, test.size)

			err := target.LoadState(bytes.NewReader(snapshotOf(t, payload)))
			assert.ErrorIs(t, err, ErrBadSnapshot)
			assert.Equal(t, uint16(0x1234), target.CPU.PC)
		})
	}
}

func TestMachine_LoadPayloadShort(t *testing.T) {
	target := NewMachine(StartAt(0x1234))
	target.MMU.Write(0xC000, 0x42)

	// enough for the registers, not for memory
	payload := bytes.Repeat([]byte{0x11}, cpuStateSize+16)
	err := target.loadPayload(payload)
	assert.ErrorIs(t, err, ErrBadSnapshot)
	assert.ErrorIs(t, err, types.ErrShortState)
	assert.Equal(t, uint16(0x1234), target.CPU.PC)
	assert.Equal(t, uint8(0x42), target.MMU.Read(0xC000))
}
