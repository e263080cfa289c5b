// Package main is the entry point for charat, a small inspection tool that
// indexes a UTF-8 file and resolves rune positions.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/charindex"
	"github.com/dustin/go-humanize"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		n           int
		stats       bool
		showVersion bool
	)

	flag.IntVar(&n, "n", -1, "Rune index to resolve (zero-based)")
	flag.BoolVar(&stats, "stats", false, "Print index statistics for the file")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("charat %s (%s)\n", version, commit)
		return 0
	}

	if flag.NArg() != 1 {
		usage()
		return 2
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	indexed, err := charindex.NewIndexedBytes(data)
	if err != nil {
		if errors.Is(err, charindex.ErrInvalidUTF8) {
			fmt.Fprintf(os.Stderr, "Error: %s is not valid UTF-8\n", flag.Arg(0))
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if stats {
		printStats(indexed)
	}

	if n >= 0 {
		r, ok := indexed.CharAt(n)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: index %d out of range (%d runes)\n", n, indexed.CharCount())
			return 1
		}
		fmt.Printf("%q (U+%04X)\n", r, r)
	} else if !stats {
		usage()
		return 2
	}

	return 0
}

func printStats(indexed charindex.IndexedBytes) {
	ix := indexed.Index()

	fmt.Printf("bytes:     %s\n", humanize.Comma(int64(indexed.Len())))
	fmt.Printf("runes:     %s\n", humanize.Comma(int64(indexed.CharCount())))
	fmt.Printf("ascii:     %v\n", indexed.Ascii())
	fmt.Printf("rollovers: %d\n", ix.Rollovers())
	fmt.Printf("overhead:  %s\n", humanize.Bytes(uint64(ix.Overhead())))
}

func usage() {
	fmt.Fprintf(os.Stderr, `charat - resolve rune positions in a UTF-8 file

Usage:
  charat -n INDEX [-stats] FILE
  charat -stats FILE

Options:
`)
	flag.PrintDefaults()
}
