package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/thelolagemann/sm83/internal/boot"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/machine"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/statsview"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	imageFile := flag.String("image", "", "The program image to load (raw, .gz, .zip or .7z)")
	base := flag.String("base", "0x0100", "The address the image is loaded at")
	entry := flag.String("pc", "", "The initial program counter (defaults to the image base)")
	stack := flag.String("sp", "", "The initial stack pointer (defaults to 0xFFFF)")
	steps := flag.Uint64("steps", 0, "Stop after this many instructions (0 runs until HALT)")
	timeout := flag.Duration("timeout", 0, "Stop after this long (0 means no timeout)")
	level := flag.String("log", "info", "The log level (debug, info, error)")
	trace := flag.Bool("trace", false, "Log every executed instruction (implies -log debug)")
	disasm := flag.Int("disasm", 0, "Disassemble this many instructions from the entry point and exit")
	stateIn := flag.String("state-in", "", "Restore a snapshot before running")
	stateOut := flag.String("state-out", "", "Write a snapshot after running")
	stats := flag.String("stats", "", "Serve runtime stats on this address, e.g. localhost:12600")
	flag.Parse()

	if *trace {
		*level = "debug"
	}
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.NewWithOutput(os.Stderr, lvl)

	if err := run(logger, config{
		imageFile: *imageFile,
		base:      *base,
		entry:     *entry,
		stack:     *stack,
		steps:     *steps,
		timeout:   *timeout,
		trace:     *trace,
		disasm:    *disasm,
		stateIn:   *stateIn,
		stateOut:  *stateOut,
		stats:     *stats,
	}); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

type config struct {
	imageFile, base, entry, stack string
	steps                         uint64
	timeout                       time.Duration
	trace                         bool
	disasm                        int
	stateIn, stateOut, stats      string
}

func run(logger log.Logger, cfg config) error {
	if cfg.stats != "" {
		srv := statsview.Start(os.Stderr, cfg.stats)
		defer func() {
			if err := srv.Stop(); err != nil {
				logger.Errorf("stats server: %v", err)
			}
		}()
	}

	opts := []machine.Opt{machine.WithLogger(logger)}
	if cfg.trace {
		opts = append(opts, machine.Debug())
	}

	if cfg.imageFile != "" {
		baseAddr, err := parseAddress(cfg.base)
		if err != nil {
			return fmt.Errorf("-base: %w", err)
		}
		b, err := utils.LoadFile(cfg.imageFile)
		if err != nil {
			return err
		}
		img, err := boot.LoadImage(b, baseAddr)
		if err != nil {
			return err
		}
		logger.Infof("loaded %s: %s", cfg.imageFile, img)
		opts = append(opts, machine.WithImage(img))
	} else if cfg.stateIn == "" {
		return errors.New("one of -image or -state-in is required")
	}

	// applied once the machine is built and any snapshot is restored, so
	// they take precedence over both
	var overrides []machine.Opt
	for _, override := range []struct {
		value string
		name  string
		opt   func(uint16) machine.Opt
	}{
		{cfg.entry, "-pc", machine.StartAt},
		{cfg.stack, "-sp", machine.WithStackPointer},
	} {
		if override.value == "" {
			continue
		}
		addr, err := parseAddress(override.value)
		if err != nil {
			return fmt.Errorf("%s: %w", override.name, err)
		}
		overrides = append(overrides, override.opt(addr))
	}

	m := machine.NewMachine(opts...)

	if cfg.stateIn != "" {
		f, err := os.Open(cfg.stateIn)
		if err != nil {
			return err
		}
		err = m.LoadState(f)
		f.Close()
		if err != nil {
			return err
		}
		logger.Infof("restored snapshot %s", cfg.stateIn)
	}
	for _, o := range overrides {
		o(m)
	}

	if cfg.disasm > 0 {
		addr := m.CPU.PC
		for i := 0; i < cfg.disasm; i++ {
			text, length := cpu.Disassemble(m.MMU, addr)
			fmt.Printf("%04X  %s\n", addr, text)
			addr += uint16(length)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	start := time.Now()
	n, runErr := m.Run(ctx, cfg.steps)
	elapsed := time.Since(start)
	logger.Infof("executed %d instructions in %s", n, elapsed)
	logger.Infof("%s", m.Registers())

	// a snapshot is still written when the run stopped on a timeout or interrupt
	if cfg.stateOut != "" {
		if err := writeState(m, cfg.stateOut); err != nil {
			return err
		}
		logger.Infof("wrote snapshot %s", cfg.stateOut)
	}

	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
		return nil
	}
	return runErr
}

func writeState(m *machine.Machine, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.SaveState(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseAddress accepts decimal, 0x prefixed hex and other Go integer literals.
func parseAddress(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
