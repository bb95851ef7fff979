package mmu

import "github.com/thelolagemann/gbcore/internal/types"

// WRAM is the work RAM, split into a fixed bank mapped at
// 0xC000 - 0xCFFF and a second bank at 0xD000 - 0xDFFF. The
// echo region 0xE000 - 0xFDFF mirrors it for reads.
type WRAM struct {
	raw [2][0x1000]uint8
}

// NewWRAM returns a new, zeroed WRAM.
func NewWRAM() *WRAM {
	return &WRAM{}
}

// bankOf returns the bank backing addr, which may be in
// either the work RAM or echo region.
func bankOf(addr uint16) int {
	if addr >= types.Echo {
		addr -= types.Echo - types.WRAM0
	}
	if addr < types.WRAMN {
		return 0
	}
	return 1
}

// Read reads from the work RAM, or the echo region.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[bankOf(addr)][addr&0xFFF]
}

// Write writes to the work RAM. The echo region is not
// writable, and is rejected by the MMU before reaching here.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[bankOf(addr)][addr&0xFFF] = v
}
