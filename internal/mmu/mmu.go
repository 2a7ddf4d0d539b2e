// Package mmu provides the flat, byte addressable memory seen by the
// SM83 core. Every 16-bit address maps to exactly one byte, there are no
// banks, mirrors or unmapped holes at this layer.
package mmu

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// Size is the number of addressable bytes (0x0000 - 0xFFFF inclusive).
const Size = 0x10000

// IOBus is the interface that the CPU uses to access memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU holds the full 64kB address space.
type MMU struct {
	raw [Size]uint8

	Log log.Logger
}

var (
	_ IOBus        = (*MMU)(nil)
	_ types.Stater = (*MMU)(nil)
)

// NewMMU returns a new, zeroed MMU.
func NewMMU() *MMU {
	return &MMU{
		Log: log.NewNullLogger(),
	}
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write writes value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Read16 returns the little-endian word at address. The high byte is
// read from address+1, which wraps to 0x0000 at the top of memory.
func (m *MMU) Read16(address uint16) uint16 {
	return utils.BytesToUint16(m.raw[address+1], m.raw[address])
}

// Write16 writes value as a little-endian word, low byte first.
func (m *MMU) Write16(address uint16, value uint16) {
	m.raw[address+1], m.raw[address] = utils.Uint16ToBytes(value)
}

// ReadBlock returns a copy of n bytes starting at address. Reads past
// 0xFFFF continue from 0x0000.
func (m *MMU) ReadBlock(address uint16, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = m.raw[address]
		address++
	}
	return b
}

// WriteBlock copies data into memory starting at address, wrapping
// past 0xFFFF.
func (m *MMU) WriteBlock(address uint16, data []byte) {
	m.Log.Debugf("mmu: writing %d bytes at 0x%04X", len(data), address)
	for _, v := range data {
		m.raw[address] = v
		address++
	}
}

// Reset clears the whole address space.
func (m *MMU) Reset() {
	m.raw = [Size]uint8{}
}

// Checksum returns the xxhash of the full address space, handy for
// comparing snapshots.
func (m *MMU) Checksum() uint64 {
	return xxhash.Sum64(m.raw[:])
}

func (m *MMU) Load(s *types.State) {
	s.ReadData(m.raw[:])
}

func (m *MMU) Save(s *types.State) {
	s.WriteData(m.raw[:])
}
