package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/thelolagemann/gbcore/pkg/log"
)

// Config holds the options of a run. It can be loaded from a YAML
// file, and every key can be overridden by the flag of the same
// name.
type Config struct {
	ROM         string   `yaml:"rom"`
	Boot        string   `yaml:"boot"`
	Steps       uint64   `yaml:"steps"`
	Breakpoints []string `yaml:"break"`
	Trace       bool     `yaml:"trace"`
	SkipBoot    bool     `yaml:"skip-boot"`
	// Serial is where serial output is written: "-" for stdout,
	// a file path, or empty to discard it.
	Serial     string `yaml:"serial"`
	DumpVRAM   string `yaml:"dump-vram"`
	DumpMemory string `yaml:"dump-mem"`
	LogLevel   string `yaml:"log-level"`
}

// defaultConfig returns the configuration used when neither a
// file nor a flag sets a key.
func defaultConfig() *Config {
	return &Config{
		Serial:   "-",
		LogLevel: "info",
	}
}

// LoadConfig decodes a YAML configuration from r over c. Unknown
// keys are rejected.
func (c *Config) LoadConfig(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.ROM == "" {
		result = multierror.Append(result, errors.New("no rom given"))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, err)
	}
	addresses, err := c.BreakpointAddresses()
	if err != nil {
		result = multierror.Append(result, err)
	}
	if c.Trace && c.Steps == 0 && len(addresses) == 0 {
		result = multierror.Append(result, errors.New("trace requires a step limit or a breakpoint"))
	}
	return result.ErrorOrNil()
}

// BreakpointAddresses parses the hexadecimal breakpoint addresses.
func (c *Config) BreakpointAddresses() ([]uint16, error) {
	addresses := make([]uint16, 0, len(c.Breakpoints))
	for _, s := range c.Breakpoints {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint %q: %w", s, err)
		}
		addresses = append(addresses, uint16(v))
	}
	return addresses, nil
}

// addressList is a flag.Value holding a comma separated list of
// addresses.
type addressList struct {
	list *[]string
}

func (a addressList) String() string {
	if a.list == nil {
		return ""
	}
	return strings.Join(*a.list, ",")
}

func (a addressList) Set(s string) error {
	*a.list = strings.Split(s, ",")
	return nil
}

// parseArgs builds the configuration from args. Values are taken
// from the defaults, then the file named by -config, then the
// flags given on the command line.
func parseArgs(args []string, output io.Writer) (*Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("gbcore", flag.ContinueOnError)
	fs.SetOutput(output)
	configFile := fs.String("config", "", "A YAML file to load the configuration from")
	fs.StringVar(&cfg.ROM, "rom", cfg.ROM, "The rom file to load")
	fs.StringVar(&cfg.Boot, "boot", cfg.Boot, "The boot rom file to load")
	fs.Uint64Var(&cfg.Steps, "steps", cfg.Steps, "Stop after this many instructions (0 runs until a breakpoint)")
	fs.Var(addressList{&cfg.Breakpoints}, "break", "Comma separated hexadecimal breakpoint addresses")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "Print every instruction as it is executed")
	fs.BoolVar(&cfg.SkipBoot, "skip-boot", cfg.SkipBoot, "Start at 0x0100 with the post boot register state")
	fs.StringVar(&cfg.Serial, "serial", cfg.Serial, "Where to write serial output: - for stdout, a file, or empty to discard")
	fs.StringVar(&cfg.DumpVRAM, "dump-vram", cfg.DumpVRAM, "Directory to write the VRAM tile atlas to when stopped")
	fs.StringVar(&cfg.DumpMemory, "dump-mem", cfg.DumpMemory, "Directory to write a compressed memory snapshot to when stopped")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "The log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *configFile == "" {
		return cfg, nil
	}

	f, err := os.Open(*configFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := cfg.LoadConfig(f); err != nil {
		return nil, err
	}

	// parse again so that flags override the file
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
