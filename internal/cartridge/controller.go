package cartridge

import "github.com/thelolagemann/gbcore/pkg/utils"

// BankController interprets CPU accesses to the ROM windows
// (0x0000 - 0x7FFF). Writes never modify ROM contents, instead
// they are interpreted as commands.
type BankController interface {
	// ReadROM reads a byte from the ROM windows.
	ReadROM(address uint16) uint8
	// WriteROM interprets a write to the ROM windows.
	WriteROM(address uint16, value uint8)
	// Bank returns the switchable bank currently mapped into
	// 0x4000 - 0x7FFF, numbered from 1.
	Bank() int
}

// romOnly is a cartridge without a controller. The first
// switchable bank is permanently mapped.
type romOnly struct {
	fixed      []byte
	switchable [][]byte
}

func newROMOnly(fixed []byte, switchable [][]byte) *romOnly {
	return &romOnly{fixed: fixed, switchable: switchable}
}

func (r *romOnly) ReadROM(address uint16) uint8 {
	if address < BankSize {
		return r.fixed[address]
	}
	return r.switchable[0][address&(BankSize-1)]
}

func (r *romOnly) WriteROM(uint16, uint8) {}

func (r *romOnly) Bank() int { return 1 }

// linear is a controller that maps one of N switchable banks
// into the second ROM window. Writes into the first window
// enable external RAM, which is always accessible, and writes
// into the second select the bank.
type linear struct {
	fixed      []byte
	switchable [][]byte
	bank       int
}

func newLinear(fixed []byte, switchable [][]byte) *linear {
	return &linear{fixed: fixed, switchable: switchable, bank: 1}
}

func (l *linear) ReadROM(address uint16) uint8 {
	if address < BankSize {
		return l.fixed[address]
	}
	return l.switchable[l.bank-1][address&(BankSize-1)]
}

func (l *linear) WriteROM(address uint16, value uint8) {
	if address < BankSize {
		// external RAM enable
		return
	}
	l.SelectBank(value)
}

// SelectBank selects the switchable bank, clamping value into
// [1, N]. 0 selects bank 1.
func (l *linear) SelectBank(value uint8) {
	l.bank = utils.Clamp(1, int(utils.ZeroAdjust8(value)), len(l.switchable))
}

func (l *linear) Bank() int { return l.bank }
