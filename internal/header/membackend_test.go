package header

// memBackend is a minimal in-memory ioback.Backend used only by this
// package's tests, so header I/O can be exercised without touching the
// filesystem.
type memBackend struct {
	data     []byte
	writable bool
}

func newMemBackend(size int) *memBackend {
	return &memBackend{data: make([]byte, size), writable: true}
}

func (m *memBackend) ReadAt(p []byte, off int64) (int, error) {
	n := copy(p, m.data[off:])
	return n, nil
}

func (m *memBackend) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[off:], p)
	return n, nil
}

func (m *memBackend) Size() (int64, error) { return int64(len(m.data)), nil }
func (m *memBackend) Flush(sync bool) error { return nil }
func (m *memBackend) Writable() bool        { return m.writable }
func (m *memBackend) Close() error          { return nil }
