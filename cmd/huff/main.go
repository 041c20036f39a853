// Command huff compresses text files with the huffman codec, or decompresses
// containers produced by it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/hufftree/huffio"
)

const progName = "huff"

const usageText = `Usage: huff [options] FILE...

Compresses each FILE to FILE.huff.txt, or with -d decompresses each
FILE.huff.txt to FILE.out.txt.

Options:
  -d                  decompress instead of compress
  -strict             reject containers with trailing data after the payload
  -encoded-suffix S   suffix of compressed files (default ".huff.txt")
  -decoded-suffix S   suffix of decompressed files (default ".out.txt")
  -v                  debug logging
`

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-8s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, fmt.Sprintf(format, args...))
	io.WriteString(os.Stderr, usageText)
	os.Exit(2)
}

func main() {
	startLogging()

	cfg := huffio.DefaultConfig()
	var decompress, debugLogging bool

	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	flags.BoolVar(&decompress, "d", false, "")
	flags.BoolVar(&cfg.Strict, "strict", false, "")
	flags.StringVar(&cfg.EncodedSuffix, "encoded-suffix", cfg.EncodedSuffix, "")
	flags.StringVar(&cfg.DecodedSuffix, "decoded-suffix", cfg.DecodedSuffix, "")
	flags.BoolVar(&debugLogging, "v", false, "")

	argErr := flags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageText)
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}
	if flags.NArg() == 0 {
		usageErrorf("no files given")
	}
	if cfg.EncodedSuffix == "" {
		usageErrorf("-encoded-suffix cannot be empty")
	}

	run := cfg.CompressFile
	if decompress {
		run = cfg.DecompressFile
	}

	failed := false
	for _, path := range flags.Args() {
		if _, err := run(path); err != nil {
			log.Errorf("%v", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
