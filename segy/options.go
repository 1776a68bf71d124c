package segy

// OpenOption configures Open. Selection between the buffered-file and
// memory-map I/O backends happens here, at runtime, rather than via a
// build tag -- the redesign spec.md §9 calls for.
type OpenOption func(*openConfig)

type openConfig struct {
	memoryMap bool
}

// WithMemoryMap selects the memory-mapped I/O backend instead of the
// default buffered-file backend.
func WithMemoryMap(enabled bool) OpenOption {
	return func(c *openConfig) { c.memoryMap = enabled }
}
