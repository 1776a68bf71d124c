package geometry

// memBackend is a minimal in-memory ioback.Backend used only by this
// package's tests.
type memBackend struct {
	data []byte
}

func newMemBackend(size int) *memBackend {
	return &memBackend{data: make([]byte, size)}
}

func (m *memBackend) ReadAt(p []byte, off int64) (int, error) {
	n := copy(p, m.data[off:])
	return n, nil
}

func (m *memBackend) WriteAt(p []byte, off int64) (int, error) {
	n := copy(m.data[off:], p)
	return n, nil
}

func (m *memBackend) Size() (int64, error) { return int64(len(m.data)), nil }
func (m *memBackend) Flush(sync bool) error { return nil }
func (m *memBackend) Writable() bool        { return true }
func (m *memBackend) Close() error          { return nil }
