package timer

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/internal/types/registers"
)

func newController() (*Controller, *registers.Set, *interrupts.Service) {
	regs := registers.NewSet()
	irq := interrupts.NewService(regs)
	return NewController(regs, irq), regs, irq
}

func TestController_Divider(t *testing.T) {
	c, regs, _ := newController()

	c.Tick(255)
	if regs.Read(types.DIV) != 0 {
		t.Errorf("Expected DIV to be 0, got %d", regs.Read(types.DIV))
	}
	c.Tick(1)
	if regs.Read(types.DIV) != 1 {
		t.Errorf("Expected DIV to be 1, got %d", regs.Read(types.DIV))
	}
	c.Tick(DividerPeriod * 3)
	if regs.Read(types.DIV) != 4 {
		t.Errorf("Expected DIV to be 4, got %d", regs.Read(types.DIV))
	}

	regs.Write(types.DIV, 0xAB)
	if regs.Read(types.DIV) != 0 {
		t.Errorf("Expected write to reset DIV, got %d", regs.Read(types.DIV))
	}
}

func TestController_TIMA(t *testing.T) {
	tests := []struct {
		tac    uint8
		cycles uint16
		want   uint8
	}{
		{0x04, 1024, 1},
		{0x05, 16, 1},
		{0x06, 64 * 3, 3},
		{0x07, 255, 0},
		{0x03, 1024, 0}, // disabled
	}
	for _, tt := range tests {
		c, regs, _ := newController()
		regs.Write(types.TAC, tt.tac)
		c.Tick(tt.cycles)
		if got := regs.Read(types.TIMA); got != tt.want {
			t.Errorf("TAC %#02x after %d cycles: expected TIMA %d, got %d", tt.tac, tt.cycles, tt.want, got)
		}
	}
}

func TestController_Overflow(t *testing.T) {
	c, regs, irq := newController()
	regs.Write(types.TMA, 0x42)
	regs.Write(types.TIMA, 0xFF)

	c.IncrementTIMA()

	if regs.Read(types.TIMA) != 0x42 {
		t.Errorf("Expected TIMA to reload from TMA, got %#02x", regs.Read(types.TIMA))
	}
	if !irq.Requested(interrupts.Timer) {
		t.Errorf("Expected timer interrupt to be requested")
	}
}

func TestController_TACReadMask(t *testing.T) {
	_, regs, _ := newController()
	regs.Write(types.TAC, 0x05)
	if regs.Read(types.TAC) != 0xFD {
		t.Errorf("Expected TAC to read 0xFD, got %#02x", regs.Read(types.TAC))
	}
}
