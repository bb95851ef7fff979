// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM mapped at a fixed base
// address. Addresses passed to Read and Write are absolute.
type RAM struct {
	base uint16
	data []uint8
}

// NewRAM returns a new RAM of size bytes, mapped at base.
func NewRAM(base uint16, size uint32) *RAM {
	return &RAM{
		base: base,
		data: make([]uint8, size),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address-r.base]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address-r.base] = value
}

// Bytes returns the backing memory.
func (r *RAM) Bytes() []uint8 {
	return r.data
}
