// Package debugger provides breakpoints, stepping and inspection
// of a gameboy.GameBoy. A Debugger owns the console it wraps and
// serialises every access to it, so it may be driven from more
// than one goroutine.
package debugger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

var (
	// ErrBreakpointExists is returned when placing a breakpoint
	// on an address that already has one.
	ErrBreakpointExists = errors.New("debugger: breakpoint is already placed")
	// ErrBreakpointNotFound is returned when removing a
	// breakpoint that was never placed.
	ErrBreakpointNotFound = errors.New("debugger: breakpoint not found")
)

// StopReason describes why Continue returned.
type StopReason uint8

const (
	// StopBreakpoint means PC reached a breakpoint.
	StopBreakpoint StopReason = iota
	// StopLimit means the step limit was reached.
	StopLimit
	// StopCancelled means the context was cancelled.
	StopCancelled
	// StopError means the console returned a fatal error.
	StopError
)

func (r StopReason) String() string {
	switch r {
	case StopBreakpoint:
		return "breakpoint"
	case StopLimit:
		return "limit"
	case StopCancelled:
		return "cancelled"
	case StopError:
		return "error"
	}
	return "unknown"
}

// Stop reports the outcome of Continue.
type Stop struct {
	Reason StopReason
	PC     uint16
	Steps  uint64
	Cycles uint64
}

// Line is a single disassembled instruction.
type Line struct {
	Address     uint16
	Bytes       []uint8
	Instruction cpu.Instruction
	IsPC        bool
}

func (l Line) String() string {
	marker := "  "
	if l.IsPC {
		marker = "->"
	}
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%s 0x%04X | %-8s | %s", marker, l.Address, strings.Join(hex, " "), l.Instruction)
}

// Debugger wraps a GameBoy.
type Debugger struct {
	mu          sync.Mutex
	gb          *gameboy.GameBoy
	breakpoints map[uint16]struct{}
}

// New returns a Debugger owning gb. gb must not be used directly
// afterwards; use Do instead.
func New(gb *gameboy.GameBoy) *Debugger {
	return &Debugger{
		gb:          gb,
		breakpoints: make(map[uint16]struct{}),
	}
}

// Do calls f with exclusive access to the console.
func (d *Debugger) Do(f func(gb *gameboy.GameBoy)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	f(d.gb)
}

// AddBreakpoint places a breakpoint at address.
func (d *Debugger) AddBreakpoint(address uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.breakpoints[address]; ok {
		return fmt.Errorf("%w: 0x%04X", ErrBreakpointExists, address)
	}
	d.breakpoints[address] = struct{}{}
	return nil
}

// RemoveBreakpoint removes the breakpoint at address.
func (d *Debugger) RemoveBreakpoint(address uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.breakpoints[address]; !ok {
		return fmt.Errorf("%w: 0x%04X", ErrBreakpointNotFound, address)
	}
	delete(d.breakpoints, address)
	return nil
}

// Breakpoints returns every placed breakpoint in ascending order.
func (d *Debugger) Breakpoints() []uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := make([]uint16, 0, len(d.breakpoints))
	for address := range d.breakpoints {
		list = append(list, address)
	}
	slices.Sort(list)
	return list
}

// Step executes a single instruction, ignoring breakpoints.
func (d *Debugger) Step() (uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gb.Step()
}

// Continue steps the console until PC reaches a breakpoint, max
// steps have been taken, ctx is cancelled or a fatal error
// occurs. At least one instruction is executed, so continuing
// from a breakpoint moves past it. A max of 0 means no limit.
// The lock is released between steps.
func (d *Debugger) Continue(ctx context.Context, max uint64) (Stop, error) {
	var stop Stop
	for {
		if err := ctx.Err(); err != nil {
			stop.Reason = StopCancelled
			return stop, err
		}

		d.mu.Lock()
		ticks, err := d.gb.Step()
		stop.PC = d.gb.PC()
		_, hit := d.breakpoints[stop.PC]
		d.mu.Unlock()

		if err != nil {
			stop.Reason = StopError
			return stop, err
		}
		stop.Steps++
		stop.Cycles += uint64(ticks)

		switch {
		case hit:
			stop.Reason = StopBreakpoint
			return stop, nil
		case max > 0 && stop.Steps >= max:
			stop.Reason = StopLimit
			return stop, nil
		}
	}
}

// List disassembles n instructions starting at PC. Listing stops
// early at an illegal opcode, returning the lines decoded so far
// along with the error.
func (d *Debugger) List(n int) ([]Line, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pc := d.gb.PC()
	lines := make([]Line, 0, n)
	for address := pc; len(lines) < n; {
		instr, err := d.gb.Disassemble(address)
		if err != nil {
			return lines, err
		}
		raw := make([]uint8, instr.Length)
		for i := range raw {
			raw[i] = d.gb.Read(address + uint16(i))
		}
		lines = append(lines, Line{
			Address:     address,
			Bytes:       raw,
			Instruction: instr,
			IsPC:        address == pc,
		})
		address += uint16(instr.Length)
	}
	return lines, nil
}

// registerNames maps the names accepted by Print to registers.
var registerNames = map[string]cpu.Reg{}

func init() {
	for _, r := range []cpu.Reg{
		cpu.RegA, cpu.RegF, cpu.RegB, cpu.RegC, cpu.RegD, cpu.RegE, cpu.RegH, cpu.RegL,
		cpu.RegAF, cpu.RegBC, cpu.RegDE, cpu.RegHL, cpu.RegSP, cpu.RegPC,
	} {
		registerNames[strings.ToLower(r.String())] = r
	}
}

// Print formats the register, or the byte at the hexadecimal
// address, named by name.
func (d *Debugger) Print(name string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	name = strings.ToLower(strings.TrimSpace(name))
	if r, ok := registerNames[name]; ok {
		v := d.gb.Register(r)
		switch {
		case r == cpu.RegF:
			return fmt.Sprintf("f : 0b%08b (%s)", v, formatFlags(d.gb)), nil
		case r.Wide():
			return fmt.Sprintf("%s : 0x%04X", name, v), nil
		default:
			return fmt.Sprintf("%s : 0x%02X", name, v), nil
		}
	}

	address, err := strconv.ParseUint(strings.TrimPrefix(name, "0x"), 16, 16)
	if err != nil {
		return "", fmt.Errorf("debugger: unknown register or address %q", name)
	}
	v := d.gb.Read(uint16(address))
	return fmt.Sprintf("0x%04X : 0x%02X (%08b)", address, v, v), nil
}

// Flags formats the flags, as in "Z:1 N:0 H:0 C:1".
func (d *Debugger) Flags() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return formatFlags(d.gb)
}

// Registers formats every register on a single line.
func (d *Debugger) Registers() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	gb := d.gb
	return fmt.Sprintf("AF: 0x%04X BC: 0x%04X DE: 0x%04X HL: 0x%04X SP: 0x%04X PC: 0x%04X IME: %s",
		gb.Register(cpu.RegAF), gb.Register(cpu.RegBC), gb.Register(cpu.RegDE),
		gb.Register(cpu.RegHL), gb.Register(cpu.RegSP), gb.Register(cpu.RegPC),
		utils.BoolToString(gb.CPU.IME()))
}

func formatFlags(gb *gameboy.GameBoy) string {
	parts := make([]string, len(cpu.Flags))
	for i, f := range cpu.Flags {
		parts[i] = f.String() + ":" + utils.BoolToString(gb.Flag(f))
	}
	return strings.Join(parts, " ")
}
