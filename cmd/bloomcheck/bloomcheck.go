// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bloomcheck builds a Bloom filter from the provided items and reports the
// membership test result for each queried item.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/decred/bloom"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Size  int      `short:"s" long:"size" description:"number of bit positions in the filter"`
	Add   []string `short:"a" long:"add" description:"item to add to the filter; may be specified multiple times"`
	Debug bool     `short:"d" long:"debug" description:"enable debug logging to stderr"`
}

func main() {
	cfg := config{
		Size: bloom.DefaultSize,
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] item..."
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if len(args) == 0 {
		usage(parser)
	}

	if cfg.Debug {
		logger := slog.NewBackend(os.Stderr).Logger("BLOM")
		logger.SetLevel(slog.LevelDebug)
		bloom.UseLogger(logger)
	}

	filter, err := bloom.New(cfg.Size)
	if err != nil {
		fatalf("%s\n", err)
	}
	for _, item := range cfg.Add {
		filter.AddString(item)
	}

	for _, item := range args {
		result := "definitely absent"
		if filter.ContainsString(item) {
			result = "possibly present"
		}
		fmt.Printf("%s: %s\n", item, result)
	}
}
