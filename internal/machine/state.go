package machine

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/internal/types"
)

// snapshot file layout:
// "SM83" | version (1) | xxhash64 of payload (8, little-endian) | brotli(payload)
const (
	snapshotMagic   = "SM83"
	snapshotVersion = 1
	headerSize      = len(snapshotMagic) + 1 + 8

	// cpuStateSize is A, F, B, C, D, E, H, L, SP, PC, halted, stopped and IME.
	cpuStateSize = 8 + 2 + 2 + 3
	stateSize    = cpuStateSize + mmu.Size
)

var (
	// ErrBadSnapshot is returned when a snapshot can't be decoded.
	ErrBadSnapshot = errors.New("machine: bad snapshot")
	// ErrChecksumMismatch is returned when a snapshot payload does not
	// match the checksum stored in its header.
	ErrChecksumMismatch = errors.New("machine: snapshot checksum mismatch")
)

// SaveState writes a compressed snapshot of the CPU and memory to w.
func (m *Machine) SaveState(w io.Writer) error {
	s := types.NewState()
	m.CPU.Save(s)
	m.MMU.Save(s)
	payload := s.Bytes()

	header := make([]byte, headerSize)
	copy(header, snapshotMagic)
	header[len(snapshotMagic)] = snapshotVersion
	binary.LittleEndian.PutUint64(header[len(snapshotMagic)+1:], xxhash.Sum64(payload))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("machine: writing snapshot header: %w", err)
	}

	bw := brotli.NewWriterLevel(w, brotli.BestCompression)
	if _, err := bw.Write(payload); err != nil {
		return fmt.Errorf("machine: compressing snapshot: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("machine: compressing snapshot: %w", err)
	}

	m.Debugf("machine: saved snapshot at 0x%04X (%d bytes uncompressed)", m.CPU.PC, len(payload))
	return nil
}

// LoadState restores a snapshot written by SaveState. The machine is
// left untouched if the snapshot is rejected.
func (m *Machine) LoadState(r io.Reader) error {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("%w: reading header: %v", ErrBadSnapshot, err)
	}
	if !bytes.Equal(header[:len(snapshotMagic)], []byte(snapshotMagic)) {
		return fmt.Errorf("%w: unknown format", ErrBadSnapshot)
	}
	if v := header[len(snapshotMagic)]; v != snapshotVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, v)
	}
	checksum := binary.LittleEndian.Uint64(header[len(snapshotMagic)+1:])

	// one byte past the expected size is enough to reject an oversized payload
	payload, err := io.ReadAll(io.LimitReader(brotli.NewReader(r), int64(stateSize)+1))
	if err != nil {
		return fmt.Errorf("%w: decompressing: %v", ErrBadSnapshot, err)
	}
	if len(payload) != stateSize {
		return fmt.Errorf("%w: payload is %d bytes, expected %d", ErrBadSnapshot, len(payload), stateSize)
	}
	if xxhash.Sum64(payload) != checksum {
		return ErrChecksumMismatch
	}

	if err := m.loadPayload(payload); err != nil {
		return err
	}

	m.Debugf("machine: loaded snapshot at 0x%04X", m.CPU.PC)
	return nil
}

// loadPayload decodes payload into scratch components first, so a payload
// that runs short never reaches the live CPU or memory.
func (m *Machine) loadPayload(payload []byte) error {
	s := types.StateFromBytes(payload)
	cpu.NewCPU(mmu.NewMMU()).Load(s)
	mmu.NewMMU().Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	s = types.StateFromBytes(payload)
	m.CPU.Load(s)
	m.MMU.Load(s)
	return nil
}
