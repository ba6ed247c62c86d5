// Package asdf implements the ASDF streaming codec: the event producer
// that walks a node.Node tree into a YAML event sequence plus block
// appends, the event consumer that reconstructs a tree from an event
// sequence, the scalar tag dispatcher, and the block-index sink.
//
// The low-level YAML event source/sink is an external collaborator: this
// package only defines the event vocabulary and the EventReader/EventWriter
// interfaces a real YAML engine implements, generalized from libyaml's
// single C-flavored event-type enum into two small Go-idiomatic enums.
package asdf

import "fmt"

// EventKind is the kind of one YAML event in the stream.
type EventKind uint8

const (
	StreamStart EventKind = iota
	StreamEnd
	DocumentStart
	DocumentEnd
	Scalar
	MappingStart
	MappingEnd
	SequenceStart
	SequenceEnd
)

var eventKindNames = [...]string{
	"stream start", "stream end", "document start", "document end",
	"scalar", "mapping start", "mapping end", "sequence start", "sequence end",
}

func (k EventKind) String() string {
	if int(k) >= len(eventKindNames) {
		return fmt.Sprintf("unknown event kind %d", k)
	}
	return eventKindNames[k]
}

// ScalarStyle is the rendering style of a Scalar event.
type ScalarStyle uint8

const (
	Plain ScalarStyle = iota
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

// ContainerStyle is the rendering style of a MappingStart/SequenceStart
// event.
type ContainerStyle uint8

const (
	Block ContainerStyle = iota
	Flow
)

// TagKind discriminates the closed set of tag spellings a Scalar,
// MappingStart, or SequenceStart event can carry.
type TagKind uint8

const (
	NoTagKind TagKind = iota
	StrTagKind
	IntTagKind
	FloatTagKind
	BoolTagKind
	NullTagKind
	UriTagKind
)

// Tag is the tag attached to a Scalar, MappingStart, or SequenceStart
// event. Only UriTagKind carries a payload (the canonical tag URI/name).
type Tag struct {
	Kind TagKind
	URI  string
}

// NoTag is the absent tag.
var NoTag = Tag{Kind: NoTagKind}

// UriTag constructs a Tag carrying a schema URI or short name.
func UriTag(uri string) Tag {
	return Tag{Kind: UriTagKind, URI: uri}
}

// Event is one element of the YAML event stream exchanged with the
// external YAML engine. Which fields are meaningful depends on Kind.
type Event struct {
	Kind EventKind

	// Scalar event fields.
	Bytes       []byte
	ScalarStyle ScalarStyle

	// MappingStart / SequenceStart fields.
	ContainerStyle ContainerStyle

	// Scalar, MappingStart, SequenceStart fields.
	Tag Tag

	// Optional anchor, carried through for engines that support it; the
	// CORE never creates or dereferences anchors itself (no alias event is
	// part of this vocabulary — see EventReader).
	Anchor string
}

// EventWriter is the external collaborator that turns emitted events into
// bytes (or any other sink). Implementations correspond to an ASDF file's
// YAML tree serializer.
type EventWriter interface {
	Emit(Event) error
}

// EventReader is the external collaborator that supplies events pulled
// from a source (typically bytes already framed out of an ASDF file's YAML
// tree document). It must support one event of pushback/peek, which is the
// only requirement sinkWhile (§4.4.1) places on it.
//
// An implementation that encounters a YAML alias/anchor reference where
// this CORE expects a Node-producing event should surface it as an
// ExpectedEvent error: alias resolution is not part of the ASDF tree model
// this package reconstructs.
type EventReader interface {
	// Next consumes and returns the next event, or an error if the
	// underlying source is exhausted or malformed. Next must support
	// calling Peek immediately beforehand without advancing past the
	// peeked event twice.
	Next() (Event, error)
	// Peek returns the next event without consuming it. Calling Peek
	// multiple times in a row before any Next returns the same event.
	Peek() (Event, error)
}
