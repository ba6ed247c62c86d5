package asdf

import (
	"strconv"

	"github.com/stsci-edu/go-asdf/block"
	"github.com/stsci-edu/go-asdf/node"
)

// Tree is the ordered set of top-level entries an ASDF document's root
// object carries, the counterpart of what sinkTree (§4.4) returns on
// decode.
type Tree = node.Object

// Encoder walks a node.Node tree and emits the corresponding YAML event
// sequence to an EventWriter, appending NDArray payloads to a block.Store
// as it encounters them.
//
// Event emission cannot fail intrinsically; only the EventWriter can fail
// (the block store's Append cannot), and its failures propagate unchanged.
// A node whose Value is nil yields InvalidTree.
type Encoder struct {
	w      EventWriter
	blocks *block.Store
}

// NewEncoder returns an Encoder that writes events to w and appends
// ndarray payloads to blocks.
func NewEncoder(w EventWriter, blocks *block.Store) *Encoder {
	return &Encoder{w: w, blocks: blocks}
}

// Encode wraps tree in StreamStart/DocumentStart/.../DocumentEnd/StreamEnd
// framing and emits it as the root mapping.
func (e *Encoder) Encode(tree Tree) error {
	if err := e.emit(Event{Kind: StreamStart}); err != nil {
		return err
	}
	if err := e.emit(Event{Kind: DocumentStart}); err != nil {
		return err
	}
	if err := e.emitNode(node.New(tree)); err != nil {
		return err
	}
	if err := e.emit(Event{Kind: DocumentEnd}); err != nil {
		return err
	}
	return e.emit(Event{Kind: StreamEnd})
}

func (e *Encoder) emit(ev Event) error {
	return e.w.Emit(ev)
}

func tagOf(t node.SchemaTag) Tag {
	if t == node.NoTag {
		return NoTag
	}
	return UriTag(string(t))
}

// emitNode dispatches on the node's value kind, producing the event
// sequence appropriate to each case.
func (e *Encoder) emitNode(n *node.Node) error {
	tag := tagOf(n.Tag)
	switch v := n.Value.(type) {
	case node.Null:
		return e.emit(Event{Kind: Scalar, Bytes: []byte("~"), ScalarStyle: Plain, Tag: tag})
	case node.Bool:
		b := "false"
		if bool(v) {
			b = "true"
		}
		return e.emit(Event{Kind: Scalar, Bytes: []byte(b), ScalarStyle: Plain, Tag: tag})
	case node.Integer:
		return e.emit(Event{Kind: Scalar, Bytes: []byte(strconv.FormatInt(int64(v), 10)), ScalarStyle: Plain, Tag: tag})
	case node.Number:
		return e.emit(Event{Kind: Scalar, Bytes: []byte(strconv.FormatFloat(float64(v), 'g', -1, 64)), ScalarStyle: Plain, Tag: tag})
	case node.String:
		if v == "" {
			return e.emit(Event{Kind: Scalar, Bytes: nil, ScalarStyle: SingleQuoted, Tag: tag})
		}
		return e.emit(Event{Kind: Scalar, Bytes: []byte(v), ScalarStyle: Plain, Tag: tag})
	case node.Array:
		return e.emitArray(tag, v)
	case node.Object:
		return e.emitObject(tag, v)
	case node.NDArray:
		return e.emitNDArray(v)
	case node.InternalRef:
		return e.emitRef(string(v))
	case node.ExternalRef:
		return e.emitRef(string(v))
	default:
		return InvalidTree{Reason: "unsupported value kind", Value: n.Value}
	}
}

func anyComplex(nodes []*node.Node) bool {
	for _, n := range nodes {
		if n.IsComplex() {
			return true
		}
	}
	return false
}

func containerStyle(complex bool) ContainerStyle {
	if complex {
		return Block
	}
	return Flow
}

func (e *Encoder) emitArray(tag Tag, items node.Array) error {
	style := containerStyle(anyComplex(items))
	if err := e.emit(Event{Kind: SequenceStart, Tag: tag, ContainerStyle: style}); err != nil {
		return err
	}
	for _, item := range items {
		if err := e.emitNode(item); err != nil {
			return err
		}
	}
	return e.emit(Event{Kind: SequenceEnd})
}

func (e *Encoder) emitObject(tag Tag, entries node.Object) error {
	values := make([]*node.Node, len(entries))
	for i, ent := range entries {
		values[i] = ent.Value
	}
	style := containerStyle(anyComplex(values))
	if err := e.emit(Event{Kind: MappingStart, Tag: tag, ContainerStyle: style}); err != nil {
		return err
	}
	for _, ent := range entries {
		if err := e.emit(Event{Kind: Scalar, Bytes: []byte(ent.Key), ScalarStyle: Plain, Tag: NoTag}); err != nil {
			return err
		}
		if err := e.emitNode(ent.Value); err != nil {
			return err
		}
	}
	return e.emit(Event{Kind: MappingEnd})
}

// emitNDArray appends the array's bytes to the block store and emits the
// fixed-shape flow mapping in the exact key order: source, datatype,
// shape, byteorder.
func (e *Encoder) emitNDArray(arr node.NDArray) error {
	index := e.blocks.Append(arr.Bytes)

	if err := e.emit(Event{Kind: MappingStart, Tag: UriTag(string(node.NDArrayTag)), ContainerStyle: Flow}); err != nil {
		return err
	}

	if err := e.emitKeyed("source", strconv.Itoa(index)); err != nil {
		return err
	}
	if err := e.emitKeyed("datatype", arr.DataType.String()); err != nil {
		return err
	}
	if err := e.emit(Event{Kind: Scalar, Bytes: []byte("shape"), ScalarStyle: Plain, Tag: NoTag}); err != nil {
		return err
	}
	if err := e.emit(Event{Kind: SequenceStart, Tag: NoTag, ContainerStyle: Flow}); err != nil {
		return err
	}
	for _, axis := range arr.Shape {
		if err := e.emit(Event{Kind: Scalar, Bytes: []byte(strconv.Itoa(axis)), ScalarStyle: Plain, Tag: NoTag}); err != nil {
			return err
		}
	}
	if err := e.emit(Event{Kind: SequenceEnd}); err != nil {
		return err
	}
	if err := e.emitKeyed("byteorder", arr.ByteOrder.String()); err != nil {
		return err
	}

	return e.emit(Event{Kind: MappingEnd})
}

func (e *Encoder) emitKeyed(key, value string) error {
	if err := e.emit(Event{Kind: Scalar, Bytes: []byte(key), ScalarStyle: Plain, Tag: NoTag}); err != nil {
		return err
	}
	return e.emit(Event{Kind: Scalar, Bytes: []byte(value), ScalarStyle: Plain, Tag: NoTag})
}

// emitRef re-serializes a reconstructed $ref node back into the single-key
// flow mapping form it was decoded from, so encode(decode(bytes)) can
// round-trip a canonical document.
func (e *Encoder) emitRef(value string) error {
	if err := e.emit(Event{Kind: MappingStart, Tag: NoTag, ContainerStyle: Flow}); err != nil {
		return err
	}
	if err := e.emitKeyed("$ref", value); err != nil {
		return err
	}
	return e.emit(Event{Kind: MappingEnd})
}
