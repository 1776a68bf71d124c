// Command segyls is the example inspector from spec.md §6: it opens a
// SEG-Y file, runs the geometry analyzer over it, and prints the derived
// cube metrics. Grounded in the teacher's go/read_guppy.go and
// scripts/sim_stats.go main packages (flag parsing, then a thin call
// into the library, then formatted stdout output).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mansfield-segy/segy/internal/configio"
	"github.com/mansfield-segy/segy/internal/seglog"
	"github.com/mansfield-segy/segy/segy"
)

const (
	defaultInlineByte    = 189
	defaultCrosslineByte = 193
)

func main() {
	batch := flag.String("batch", "", "read a newline-delimited list of SEG-Y file paths from this file instead of a single path argument")
	flag.Parse()

	if *batch != "" {
		runBatch(*batch)
		return
	}

	args := flag.Args()
	if len(args) != 1 && len(args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <file> [inline-byte crossline-byte]\n", os.Args[0])
		os.Exit(int(segy.InvalidArgs))
	}

	ilByte, xlByte := defaultInlineByte, defaultCrosslineByte
	if len(args) == 3 {
		var err error
		ilByte, err = parseInt(args[1])
		if err != nil {
			seglog.External(int(segy.InvalidArgs), "invalid inline byte %q", args[1])
		}
		xlByte, err = parseInt(args[2])
		if err != nil {
			seglog.External(int(segy.InvalidArgs), "invalid crossline byte %q", args[2])
		}
	}

	if err := inspect(args[0], ilByte, xlByte); err != nil {
		seglog.External(int(segy.CodeOf(err)), "%s", err)
	}
}

func runBatch(path string) {
	f, err := os.Open(path)
	if err != nil {
		seglog.External(int(segy.FOpenError), "%s", err)
	}
	defer f.Close()

	paths, err := configio.ReadFileList(f)
	if err != nil {
		seglog.External(int(segy.FReadError), "%s", err)
	}

	status := 0
	for _, p := range paths {
		if err := inspect(p, defaultInlineByte, defaultCrosslineByte); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", p, err)
			status = int(segy.CodeOf(err))
		}
	}
	os.Exit(status)
}

func inspect(path string, ilByte, xlByte int) error {
	f, err := segy.Open(path, "rb")
	if err != nil {
		return err
	}
	defer f.Close()

	traces, err := f.TraceCount()
	if err != nil {
		return err
	}

	geo, err := f.AnalyzeGeometry(ilByte, xlByte)
	if err != nil {
		return err
	}

	fmt.Printf("file:            %s\n", path)
	fmt.Printf("sample format:   %s\n", sampleFormatName(f.SampleFormat()))
	fmt.Printf("samples/trace:   %d\n", f.SamplesPerTrace())
	fmt.Printf("traces:          %d\n", traces)
	fmt.Printf("sorting:         %s\n", geo.Sorting)
	fmt.Printf("offsets:         %d\n", geo.Offsets)
	fmt.Printf("inline count:    %d\n", geo.InlineCount)
	fmt.Printf("crossline count: %d\n", geo.CrosslineCount)
	fmt.Printf("inline indices:  %v\n", geo.InlineIndices)
	fmt.Printf("crossline idx:   %v\n", geo.CrosslineIndices)
	return nil
}

func sampleFormatName(format int) string {
	switch format {
	case 1:
		return "IBM Float"
	case 2:
		return "Int 32"
	case 3:
		return "Int 16"
	case 4:
		return "Fixed Point with gain (Obsolete)"
	case 5:
		return "IEEE Float"
	case 6, 7:
		return "Reserved"
	case 8:
		return "Int 8"
	default:
		return "Unknown"
	}
}

func parseInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}
