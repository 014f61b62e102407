package ask

// mockSource implements lineSource for testing.
//
// It serves a pre-configured sequence of lines and then reports
// cancellation, giving tests deterministic conversations without a
// terminal. The read counter lets tests assert that an operation consumed
// exactly the input it should have, including none at all.
type mockSource struct {
	lines  []string // Pre-configured responses, served in order
	pos    int      // Next line to serve
	reads  int      // Total ReadLine calls, including the canceled ones
	closed bool
}

func newMockSource(lines ...string) *mockSource {
	return &mockSource{lines: lines}
}

func (m *mockSource) ReadLine() (string, error) {
	m.reads++
	if m.pos >= len(m.lines) {
		return "", ErrCanceled
	}
	line := m.lines[m.pos]
	m.pos++
	return line, nil
}

func (m *mockSource) Close() error {
	m.closed = true
	return nil
}
