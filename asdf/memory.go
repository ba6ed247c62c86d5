package asdf

// MemoryWriter is an EventWriter that simply appends every emitted event
// to a slice. It is the in-memory stand-in used by this package's own
// tests for the external YAML event sink; a real ASDF writer wires a
// genuine YAML engine behind the same EventWriter interface.
type MemoryWriter struct {
	Events []Event
}

// Emit implements EventWriter.
func (m *MemoryWriter) Emit(ev Event) error {
	m.Events = append(m.Events, ev)
	return nil
}

// MemoryReader is a peekable EventReader backed by a fixed slice of
// events, the in-memory stand-in for the external YAML event source.
type MemoryReader struct {
	events []Event
	pos    int
}

// NewMemoryReader returns a MemoryReader that yields events in order.
func NewMemoryReader(events []Event) *MemoryReader {
	return &MemoryReader{events: events}
}

// Next implements EventReader.
func (m *MemoryReader) Next() (Event, error) {
	ev, err := m.Peek()
	if err != nil {
		return Event{}, err
	}
	m.pos++
	return ev, nil
}

// Peek implements EventReader.
func (m *MemoryReader) Peek() (Event, error) {
	if m.pos >= len(m.events) {
		return Event{}, NoInput{}
	}
	return m.events[m.pos], nil
}
