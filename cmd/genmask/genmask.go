// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genmask prints words from a masking generator stream.  It is primarily
// useful for eyeballing generator output and for piping deterministic
// streams into protocol test fixtures via the --seed flag.
package main

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/decred/maskrand"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for genmask.
type config struct {
	Secure   bool   `short:"s" long:"secure" description:"Generate from the cryptographically strong tier instead of the fast tier"`
	Words    uint   `short:"n" long:"words" default:"8" description:"Number of 32-bit words to generate"`
	Strategy string `long:"strategy" default:"pooled" description:"Instance sharing strategy {pooled, exclusive}"`
	Seed     string `long:"seed" description:"Hex-encoded 32-byte seed material to use in place of the OS entropy source"`
	Verbose  bool   `short:"v" long:"verbose" description:"Enable debug output on stderr"`
}

// loadConfig parses the command line options and returns the resulting
// configuration.
func loadConfig() (*config, error) {
	cfg := new(config)
	parser := flags.NewParser(cfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}
		return nil, err
	}
	return cfg, nil
}

// applySeed decodes the hex-encoded seed material and supplies it to the
// generator subsystem before any generators are constructed.
func applySeed(seedHex string) error {
	seedBytes, err := hex.DecodeString(seedHex)
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	if len(seedBytes) != maskrand.SeedWordCount*4 {
		return fmt.Errorf("invalid seed: want %d bytes, got %d",
			maskrand.SeedWordCount*4, len(seedBytes))
	}

	var words [maskrand.SeedWordCount]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(seedBytes[i*4:])
	}
	maskrand.SetSeedMaterial(words)
	return nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Verbose {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("MASK")
		logger.SetLevel(slog.LevelTrace)
		maskrand.UseLogger(logger)
	}

	strategy, err := maskrand.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	if cfg.Seed != "" {
		if err := applySeed(cfg.Seed); err != nil {
			return err
		}
	}

	supply := maskrand.NewSupply(strategy)
	prng := supply.PRNG(cfg.Secure)
	defer prng.Release()

	for i := uint(0); i < cfg.Words; i++ {
		fmt.Printf("%08x\n", prng.Next())
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
