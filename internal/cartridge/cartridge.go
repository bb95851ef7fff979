// Package cartridge loads cartridge images and provides the
// bank controllers that map them into the ROM windows.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// BankSize is the size of a single ROM bank.
const BankSize = 0x4000

// LoadError is returned when a cartridge image cannot be
// loaded, either because it is too small or because its
// controller type is not supported.
type LoadError struct {
	Reason string
	Type   Type
	Size   int
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cartridge: %s", e.Reason)
}

// Cartridge holds a loaded cartridge image, split into a fixed
// bank and a sequence of switchable banks, along with the
// BankController that selects between them.
type Cartridge struct {
	header Header

	fixed      []byte
	switchable [][]byte
	hash       uint64

	BankController
}

// New loads a cartridge from rom. The image must be at least one
// bank long. Successive 16 KiB slices after the first become the
// switchable banks, the last zero-padded, and there is always at
// least one switchable bank.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < BankSize {
		return nil, &LoadError{
			Reason: fmt.Sprintf("image too small: %d bytes, need at least %d", len(rom), BankSize),
			Size:   len(rom),
		}
	}

	c := &Cartridge{
		header: parseHeader(rom),
		fixed:  make([]byte, BankSize),
		hash:   xxhash.Sum64(rom),
	}
	copy(c.fixed, rom[:BankSize])

	for offset := BankSize; offset < len(rom) || len(c.switchable) == 0; offset += BankSize {
		bank := make([]byte, BankSize)
		if offset < len(rom) {
			copy(bank, rom[offset:])
		}
		c.switchable = append(c.switchable, bank)
	}

	switch c.header.CartridgeType {
	case ROM:
		c.BankController = newROMOnly(c.fixed, c.switchable)
	case MBC1:
		c.BankController = newLinear(c.fixed, c.switchable)
	default:
		return nil, &LoadError{
			Reason: fmt.Sprintf("unsupported controller type %s", c.header.CartridgeType),
			Type:   c.header.CartridgeType,
			Size:   len(rom),
		}
	}

	return c, nil
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Banks returns the number of switchable banks.
func (c *Cartridge) Banks() int {
	return len(c.switchable)
}

// Hash returns the xxhash fingerprint of the image the
// cartridge was loaded from.
func (c *Cartridge) Hash() uint64 {
	return c.hash
}
