// Command huffpack compresses and decompresses files with Huffman coding.
//
// Usage:
//
//     huffpack [-quiet] compress INPUT OUTPUT
//     huffpack [-quiet] decompress INPUT OUTPUT
//     huffpack inspect [-json] CONTAINER
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	huffman "github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/fileio"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

const usage = `usage:
	huffpack [-quiet] compress INPUT OUTPUT
	huffpack [-quiet] decompress INPUT OUTPUT
	huffpack inspect [-json] CONTAINER
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	quiet := fs.Bool("quiet", false, "suppress status messages")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logg := logger.New(stderr)
	if *quiet {
		logg = logger.Discard()
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	switch cmd, rest := rest[0], rest[1:]; cmd {
	case "compress", "decompress":
		if len(rest) != 2 {
			fs.Usage()
			return 2
		}
		transform := huffman.Compress
		verb := "compressed"
		if cmd == "decompress" {
			transform = huffman.Decompress
			verb = "decompressed"
		}
		if err := convert(rest[0], rest[1], transform); err != nil {
			logg.Errorf("%s %q: %v", cmd, rest[0], err)
			return 1
		}
		logg.Infof("%s %q into %q", verb, rest[0], rest[1])
		return 0

	case "inspect":
		ifs := flag.NewFlagSet("inspect", flag.ContinueOnError)
		ifs.SetOutput(stderr)
		ifs.Usage = fs.Usage
		asJSON := ifs.Bool("json", false, "print the report as JSON")
		if err := ifs.Parse(rest); err != nil {
			return 2
		}
		if ifs.NArg() != 1 {
			fs.Usage()
			return 2
		}
		if err := inspect(stdout, ifs.Arg(0), *asJSON); err != nil {
			logg.Errorf("inspect %q: %v", ifs.Arg(0), err)
			return 1
		}
		return 0

	default:
		logg.Errorf("unknown command %q", cmd)
		fs.Usage()
		return 2
	}
}

func convert(inPath string, outPath string, transform func([]byte) ([]byte, error)) error {
	in, err := fileio.ReadBytes(inPath)
	if err != nil {
		return err
	}
	out, err := transform(in)
	if err != nil {
		return err
	}
	return fileio.WriteBytes(outPath, out)
}

func inspect(w io.Writer, path string, asJSON bool) error {
	data, err := fileio.ReadBytes(path)
	if err != nil {
		return err
	}
	stats, err := huffman.Inspect(data)
	if err != nil {
		return err
	}

	if asJSON {
		raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", raw)
		return err
	}

	fmt.Fprintf(w, "original size:  %d\n", stats.OriginalSize)
	fmt.Fprintf(w, "container size: %d (%.3f)\n", stats.ContainerSize, stats.Ratio())
	fmt.Fprintf(w, "tree nodes:     %d\n", stats.TreeNodes)
	fmt.Fprintf(w, "payload bits:   %d\n", stats.PayloadBits)
	fmt.Fprintf(w, "code sizes:     %d .. %d\n", stats.MinCodeSize, stats.MaxCodeSize)
	for _, cs := range stats.Codes {
		if _, err := fmt.Fprintf(w, "\t%3d %s\n", cs.Symbol, cs.Code); err != nil {
			return err
		}
	}
	return nil
}
