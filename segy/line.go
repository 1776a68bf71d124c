package segy

import "github.com/mansfield-segy/segy/internal/segyerr"

// ReadLine reads length traces starting at trace firstTrace, stepping by
// stride*offsets between them, and concatenates their sample bodies into
// one contiguous []float32 of length length*SamplesPerTrace. This is
// spec.md §4.7's line accessor; callers typically obtain firstTrace,
// length, stride, and offsets from a *Geometry (see Geometry.InlineTrace0
// / CrosslineTrace0 and LineMetrics).
func (f *File) ReadLine(firstTrace, length, stride, offsets int) ([]float32, error) {
	out := make([]float32, 0, length*f.samplesPerTrace)
	step := stride * offsets
	trace := firstTrace
	for i := 0; i < length; i++ {
		_, samples, err := f.ReadTrace(trace)
		if err != nil {
			return nil, err
		}
		out = append(out, samples...)
		trace += step
	}
	return out, nil
}

// WriteLine is the inverse of ReadLine: buf must hold
// length*SamplesPerTrace native float32 samples, which are sliced into
// length per-trace bodies and written to the traces that ReadLine would
// have read.
func (f *File) WriteLine(firstTrace, length, stride, offsets int, buf []float32) error {
	n := f.samplesPerTrace
	if len(buf) != length*n {
		return segyerr.New(segyerr.InvalidArgs, nil, "line expects %d samples, got %d", length*n, len(buf))
	}
	step := stride * offsets
	trace := firstTrace
	for i := 0; i < length; i++ {
		if err := f.WriteTraceBody(trace, buf[i*n:(i+1)*n]); err != nil {
			return err
		}
		trace += step
	}
	return nil
}
