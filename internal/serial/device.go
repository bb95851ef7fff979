package serial

import "io"

// Device is a device that can be attached to the Controller.
// A transfer exchanges one byte in each direction.
type Device interface {
	Exchange(out uint8) (in uint8)
}

// nullDevice is an implementation of Device that acts as if
// no cable is plugged in, always shifting in 1s.
type nullDevice struct{}

// Exchange always returns 0xFF.
func (nullDevice) Exchange(uint8) uint8 { return 0xFF }

// writerDevice forwards every transferred byte to an
// io.Writer, which is how test ROMs report their results.
type writerDevice struct {
	w   io.Writer
	err error
}

// NewWriterDevice returns a Device that writes every byte it
// receives to w. Write errors are retained and reported by Err.
func NewWriterDevice(w io.Writer) Device {
	return &writerDevice{w: w}
}

// Exchange writes out to the underlying writer, and returns
// 0xFF as if no cable were connected.
func (d *writerDevice) Exchange(out uint8) uint8 {
	if d.err == nil {
		_, d.err = d.w.Write([]byte{out})
	}
	return 0xFF
}

// Err returns the first error encountered writing.
func (d *writerDevice) Err() error {
	return d.err
}
