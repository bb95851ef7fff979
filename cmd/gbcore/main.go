// Command gbcore runs a cartridge headlessly, stopping at a
// breakpoint or after a number of instructions, and optionally
// dumps video and work memory when it stops.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/gameboy"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/debugger"
	"github.com/thelolagemann/gbcore/pkg/dump"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the cartridge described by cfg and executes it until
// it stops.
func run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.NewWithLevel(stderr, level)

	rom, err := utils.LoadFile(cfg.ROM)
	if err != nil {
		return err
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if cfg.Boot != "" {
		boot, err := utils.LoadFile(cfg.Boot)
		if err != nil {
			return err
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if cfg.SkipBoot {
		opts = append(opts, gameboy.SkipBoot())
	}
	switch cfg.Serial {
	case "":
	case "-":
		opts = append(opts, gameboy.WithSerialOutput(stdout))
	default:
		f, err := os.Create(cfg.Serial)
		if err != nil {
			return err
		}
		defer f.Close()
		opts = append(opts, gameboy.WithSerialOutput(f))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		return err
	}
	hash := gb.Cartridge().Hash()
	d := debugger.New(gb)

	addresses, _ := cfg.BreakpointAddresses()
	for _, address := range addresses {
		if err := d.AddBreakpoint(address); err != nil {
			logger.Warnf("%v", err)
		}
	}

	stopped, runErr := execute(ctx, d, cfg, stdout)
	switch stopped.Reason {
	case debugger.StopBreakpoint:
		fmt.Fprintf(stdout, "Reached breakpoint (0x%04X) after %d steps\n", stopped.PC, stopped.Steps)
	case debugger.StopLimit:
		fmt.Fprintf(stdout, "Stopped after %d steps (%d cycles, %s emulated)\n", stopped.Steps, stopped.Cycles, emulated(stopped.Cycles))
	}
	fmt.Fprintln(stdout, d.Registers())
	fmt.Fprintln(stdout, d.Flags())

	if err := writeDumps(d, cfg, hash); err != nil {
		return multierror.Append(runErr, err)
	}
	if stopped.Reason == debugger.StopCancelled {
		return nil
	}
	return runErr
}

// execute runs the console until it stops. When tracing, every
// instruction is listed before it is executed.
func execute(ctx context.Context, d *debugger.Debugger, cfg *Config, stdout io.Writer) (debugger.Stop, error) {
	if !cfg.Trace {
		return d.Continue(ctx, cfg.Steps)
	}

	var total debugger.Stop
	for cfg.Steps == 0 || total.Steps < cfg.Steps {
		lines, err := d.List(1)
		if err != nil {
			total.Reason = debugger.StopError
			return total, err
		}
		fmt.Fprintln(stdout, lines[0])

		s, err := d.Continue(ctx, 1)
		total.Steps += s.Steps
		total.Cycles += s.Cycles
		total.PC = s.PC
		total.Reason = s.Reason
		if err != nil || s.Reason != debugger.StopLimit {
			return total, err
		}
	}
	return total, nil
}

// writeDumps writes the dumps requested by cfg, named after the
// cartridge hash.
func writeDumps(d *debugger.Debugger, cfg *Config, hash uint64) error {
	var vram, snapshot []uint8
	var bgp uint8
	d.Do(func(gb *gameboy.GameBoy) {
		vram = append([]uint8(nil), gb.MMU.VRAM()...)
		bgp = gb.Read(types.BGP)
		snapshot = gb.MMU.Snapshot()
	})

	if cfg.DumpVRAM != "" {
		if err := writeFile(filepath.Join(cfg.DumpVRAM, dump.Name(hash, "vram", "bmp")), func(w io.Writer) error {
			return dump.TileAtlas(w, vram, bgp)
		}); err != nil {
			return err
		}
	}
	if cfg.DumpMemory != "" {
		if err := writeFile(filepath.Join(cfg.DumpMemory, dump.Name(hash, "mem", "bin.br")), func(w io.Writer) error {
			return dump.Memory(w, snapshot, true)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// emulated returns how long the given number of cycles takes on
// real hardware.
func emulated(cycles uint64) time.Duration {
	return time.Duration(float64(cycles) / cpu.ClockSpeed * float64(time.Second))
}
