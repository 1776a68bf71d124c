package segy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mansfield-segy/segy/internal/header"
	"github.com/mansfield-segy/segy/internal/sample"
)

// fixtureCube writes a small 2-inline x 2-crossline x 1-offset SEG-Y file
// to disk: 4 traces, 4 IEEE-float samples each, sample interval 4000us.
// Trace n holds samples [n*10, n*10+1, n*10+2, n*10+3] so tests can
// identify which trace they read back.
func fixtureCube(t *testing.T) string {
	t.Helper()

	const (
		samplesPerTrace = 4
		traceCount      = 4
		traceBsize      = samplesPerTrace * 4
	)

	bin := make([]byte, header.BinaryHeaderSize)
	must(t, header.SetBinaryField(bin, 3217, 4000))
	must(t, header.SetBinaryField(bin, 3221, samplesPerTrace))
	must(t, header.SetBinaryField(bin, 3225, int32(sample.IEEEFloat4Byte)))
	must(t, header.SetBinaryField(bin, 3505, 0))

	ils := []int32{1, 1, 2, 2}
	xls := []int32{10, 11, 10, 11}

	path := filepath.Join(t.TempDir(), "cube.sgy")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	if _, err := f.Write(make([]byte, header.TextHeaderSize)); err != nil {
		t.Fatalf("write text header: %v", err)
	}
	if _, err := f.Write(bin); err != nil {
		t.Fatalf("write binary header: %v", err)
	}

	for n := 0; n < traceCount; n++ {
		th := make([]byte, header.TraceHeaderSize)
		must(t, header.SetField(th, 189, ils[n]))
		must(t, header.SetField(th, 193, xls[n]))
		must(t, header.SetField(th, 37, 1))
		if _, err := f.Write(th); err != nil {
			t.Fatalf("write trace header %d: %v", n, err)
		}

		samples := make([]float32, samplesPerTrace)
		for i := range samples {
			samples[i] = float32(n*10 + i)
		}
		body := make([]byte, traceBsize)
		must(t, sample.FromNative(sample.IEEEFloat4Byte, samples, body))
		if _, err := f.Write(body); err != nil {
			t.Fatalf("write trace body %d: %v", n, err)
		}
	}

	return path
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("fixture setup: %v", err)
	}
}
