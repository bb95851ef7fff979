// Package gameboy ties the CPU and the address space together
// into a single console that can be stepped one instruction at
// a time.
package gameboy

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/boot"
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// GameBoy represents a Game Boy. It owns the CPU and the MMU, and
// is not safe for concurrent use; see pkg/debugger for a guarded
// wrapper.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU

	log.Logger

	bootROM  *boot.ROM
	skipBoot bool
	serial   serial.Device

	// optErr holds the first error raised by an Opt.
	optErr error
	// err is the fatal error that stopped execution, returned
	// again by every following call to Step.
	err error
}

// NewGameBoy loads rom and returns a GameBoy ready to execute
// its first instruction. Without a boot ROM, execution starts
// at 0x0000 of the cartridge with every register zeroed, unless
// SkipBoot is given.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.optErr != nil {
		return nil, g.optErr
	}

	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}
	header := cart.Header()
	g.Infof("loaded cartridge %s (%d banks, xxhash %016x)", header.String(), cart.Banks(), cart.Hash())
	if !header.Valid() {
		g.Warnf("cartridge header checksum mismatch: 0x%02X", header.HeaderChecksum)
	}

	mmuOpts := []mmu.Opt{mmu.WithLogger(g.Logger)}
	if g.bootROM != nil {
		mmuOpts = append(mmuOpts, mmu.WithBootROM(g.bootROM))
	}
	g.MMU = mmu.NewMMU(cart, mmuOpts...)
	g.CPU = cpu.NewCPU(g.MMU, g.Logger)

	if g.serial != nil {
		g.MMU.Serial.Attach(g.serial)
	}
	if g.skipBoot {
		if err := g.postBoot(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Step executes a single instruction, or dispatches a pending
// interrupt, then advances the timer and LCD by the cycles it
// took. Decode and execute errors are fatal: once one has been
// returned, every following call returns it again.
func (g *GameBoy) Step() (uint8, error) {
	if g.err != nil {
		return 0, g.err
	}

	ticks, err := g.CPU.Step()
	if err != nil {
		g.err = fmt.Errorf("gameboy: step: %w", err)
		g.Errorf("%v", g.err)
		return 0, g.err
	}
	g.MMU.Tick(uint16(ticks))

	return ticks, nil
}

// Err returns the fatal error that stopped execution, if any.
func (g *GameBoy) Err() error {
	return g.err
}

// PC returns the program counter.
func (g *GameBoy) PC() uint16 {
	return g.CPU.PC
}

// Register returns the value of reg.
func (g *GameBoy) Register(reg cpu.Reg) uint16 {
	return g.CPU.Register(reg)
}

// Flag returns true if flag is set.
func (g *GameBoy) Flag(flag cpu.Flag) bool {
	return g.CPU.IsFlagSet(flag)
}

// Read reads the byte at address, as seen by the CPU.
func (g *GameBoy) Read(address uint16) uint8 {
	return g.MMU.Read(address)
}

// ReadWord reads the little-endian word at address.
func (g *GameBoy) ReadWord(address uint16) uint16 {
	return g.MMU.ReadWord(address)
}

// Disassemble decodes the instruction at address without
// executing it.
func (g *GameBoy) Disassemble(address uint16) (cpu.Instruction, error) {
	return cpu.Decode(g.MMU, address)
}

// Title returns the title of the loaded cartridge.
func (g *GameBoy) Title() string {
	return g.MMU.Cart.Title()
}

// Cartridge returns the loaded cartridge.
func (g *GameBoy) Cartridge() *cartridge.Cartridge {
	return g.MMU.Cart
}
