// Package mmu provides the memory management unit. The MMU owns
// every region of the 64 KiB address space, and dispatches each
// access by address to the component backing it.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/apu"
	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/joypad"
	"github.com/thelolagemann/gbcore/internal/ppu/lcd"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
	"github.com/thelolagemann/gbcore/pkg/bits"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MemoryFault is returned when the CPU writes to an address
// that cannot be written. It is not fatal.
type MemoryFault struct {
	Address uint16
	Value   uint8
}

func (f *MemoryFault) Error() string {
	return fmt.Sprintf("mmu: illegal write of 0x%02X to 0x%04X", f.Value, f.Address)
}

// MMU is the memory management unit. It handles all memory
// reads and writes, and owns the hardware that is mapped
// into the I/O window.
type MMU struct {
	// 0x0000 - 0x00FF - BOOT ROM (256B), while BDIS is 0
	bootROM *boot.ROM
	bdis    *registers.Hardware

	// 0x0000 - 0x7FFF - ROM (32kB)
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	vRAM *ram.RAM
	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM *ram.RAM
	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	oam *ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers
	registers *registers.Set
	IRQ       *interrupts.Service
	Timer     *timer.Controller
	LCD       *lcd.Controller
	Joypad    *joypad.State
	Serial    *serial.Controller
	Sound     *apu.APU

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	// (0xFFFF) - interrupt enable register, held by IRQ

	Log log.Logger
}

// Opt configures an MMU.
type Opt func(*MMU)

// WithLogger sets the logger used by the MMU.
func WithLogger(l log.Logger) Opt {
	return func(m *MMU) {
		m.Log = l
	}
}

// WithBootROM overlays rom on 0x0000 - 0x00FF until BDIS is
// written.
func WithBootROM(rom *boot.ROM) Opt {
	return func(m *MMU) {
		m.bootROM = rom
	}
}

// NewMMU returns a new MMU, with cart mapped into the ROM
// windows.
func NewMMU(cart *cartridge.Cartridge, opts ...Opt) *MMU {
	regs := registers.NewSet()
	irq := interrupts.NewService(regs)
	m := &MMU{
		Cart: cart,

		vRAM: ram.NewRAM(types.VRAM, 0x2000),
		eRAM: ram.NewRAM(types.ExternalRAM, 0x2000),
		wRAM: NewWRAM(),
		oam:  ram.NewRAM(types.OAM, 0xA0),
		zRAM: ram.NewRAM(types.HRAM, 0x7F),

		registers: regs,
		IRQ:       irq,
		Timer:     timer.NewController(regs, irq),
		LCD:       lcd.NewController(regs, irq),
		Joypad:    joypad.New(regs, irq),
		Serial:    serial.NewController(regs, irq),
		Sound:     apu.New(regs),

		Log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.bdis = regs.Register(types.BDIS,
		registers.IsReadableMasked(0xFE),
		registers.WithWriteFunc(func(h *registers.Hardware, v uint8) {
			// once disabled, the boot ROM can't be mapped again
			if v != 0 && h.Value() == 0 {
				h.Set(1)
				m.Log.Debugf("boot ROM unmapped")
			}
		}),
	)
	if m.bootROM == nil {
		m.bdis.Set(1)
	} else {
		m.Log.Infof("boot ROM attached: %s (%s)", m.bootROM.Model(), m.bootROM.Checksum())
	}
	regs.Register(types.DMA, registers.IsReadable(), registers.WithWriteFunc(func(h *registers.Hardware, v uint8) {
		h.Set(v)
		m.transferOAM(uint16(v) << 8)
	}))

	return m
}

// BootROMActive returns true if reads from 0x0000 - 0x00FF are
// served by the boot ROM.
func (m *MMU) BootROMActive() bool {
	return m.bootROM != nil && m.bdis.Value() == 0
}

// Read returns the value at the given address. Reads never
// fail; unbacked addresses return a fixed value.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= types.BootEnd && m.BootROMActive():
		return m.bootROM.Read(address)
	case address <= types.ROMBankNEnd:
		return m.Cart.ReadROM(address)
	case address <= types.VRAMEnd:
		return m.vRAM.Read(address)
	case address <= types.ExternalEnd:
		return m.eRAM.Read(address)
	case address <= types.EchoEnd:
		return m.wRAM.Read(address)
	case address <= types.OAMEnd:
		return m.oam.Read(address)
	case address <= types.ProhibitedEnd:
		return 0x00
	case address <= types.IOEnd:
		return m.registers.Read(address)
	case address <= types.HRAMEnd:
		return m.zRAM.Read(address)
	default:
		return m.IRQ.Enable
	}
}

// Write writes value to the given address. Writes to the ROM
// windows are handed to the cartridge's bank controller. A
// MemoryFault is returned for writes to the echo region.
func (m *MMU) Write(address uint16, value uint8) error {
	switch {
	case address <= types.ROMBankNEnd:
		m.Cart.WriteROM(address, value)
	case address <= types.VRAMEnd:
		m.vRAM.Write(address, value)
	case address <= types.ExternalEnd:
		m.eRAM.Write(address, value)
	case address <= types.WRAMNEnd:
		m.wRAM.Write(address, value)
	case address <= types.EchoEnd:
		return &MemoryFault{Address: address, Value: value}
	case address <= types.OAMEnd:
		m.oam.Write(address, value)
	case address <= types.ProhibitedEnd:
		// ignored
	case address <= types.IOEnd:
		if !m.registers.Write(address, value) {
			m.Log.Debugf("write of 0x%02X to unmapped I/O register 0x%04X", value, address)
		}
	case address <= types.HRAMEnd:
		m.zRAM.Write(address, value)
	default:
		m.IRQ.Enable = value
	}
	return nil
}

// ReadWord reads the little-endian word at address.
func (m *MMU) ReadWord(address uint16) uint16 {
	low := m.Read(address)
	return bits.Join(m.Read(address+1), low)
}

// WriteWord writes value as a little-endian word at address,
// low byte first. Both bytes are always written, and the first
// fault encountered is returned.
func (m *MMU) WriteWord(address uint16, value uint16) error {
	errLow := m.Write(address, bits.Low(value))
	errHigh := m.Write(address+1, bits.High(value))
	if errLow != nil {
		return errLow
	}
	return errHigh
}

// transferOAM copies 160 bytes from source into OAM.
func (m *MMU) transferOAM(source uint16) {
	for i := uint16(0); i < 0xA0; i++ {
		m.oam.Write(types.OAM+i, m.Read(source+i))
	}
}

// VRAM returns the backing video RAM.
func (m *MMU) VRAM() []uint8 {
	return m.vRAM.Bytes()
}

// Snapshot returns the contents of the address space as seen
// by the CPU.
func (m *MMU) Snapshot() []uint8 {
	s := make([]uint8, 0x10000)
	for i := range s {
		s[i] = m.Read(uint16(i))
	}
	return s
}

// RequestInterrupt requests src.
func (m *MMU) RequestInterrupt(src interrupts.Source) {
	m.IRQ.Request(src)
}

// InterruptPending returns true if an enabled interrupt has
// been requested.
func (m *MMU) InterruptPending() bool {
	return m.IRQ.Pending()
}

// AcknowledgeInterrupt clears the highest priority pending
// interrupt and returns its vector.
func (m *MMU) AcknowledgeInterrupt() uint16 {
	return m.IRQ.Vector()
}

// IncrementDiv increments DIV.
func (m *MMU) IncrementDiv() {
	m.Timer.IncrementDiv()
}

// IncrementTIMA increments TIMA, handling overflow.
func (m *MMU) IncrementTIMA() {
	m.Timer.IncrementTIMA()
}

// IncrementLY advances the LCD to the next scanline.
func (m *MMU) IncrementLY() {
	m.LCD.IncrementLY()
}

// Tick advances the timer and LCD by the given number of cycles.
func (m *MMU) Tick(cycles uint16) {
	m.Timer.Tick(cycles)
	m.LCD.Tick(cycles)
}
