package asdf

import (
	"strings"

	"github.com/stsci-edu/go-asdf/block"
	"github.com/stsci-edu/go-asdf/node"
)

// Decoder consumes a YAML event stream and reconstructs a node.Node tree,
// recognizing !core/ndarray mappings and $ref mappings along the way.
type Decoder struct {
	r      EventReader
	blocks *block.Store
}

// NewDecoder returns a Decoder that pulls events from r and resolves
// ndarray "source" indices against blocks.
func NewDecoder(r EventReader, blocks *block.Store) *Decoder {
	return &Decoder{r: r, blocks: blocks}
}

// SinkTree is the top-level entry point: it expects StreamStart,
// DocumentStart, parses one Node that must be an Object, and returns its
// entries as a Tree.
func (d *Decoder) SinkTree() (Tree, error) {
	if err := d.expect(StreamStart); err != nil {
		return nil, err
	}
	if err := d.expect(DocumentStart); err != nil {
		return nil, err
	}
	n, err := d.sinkNode()
	if err != nil {
		return nil, err
	}
	obj, ok := n.Value.(node.Object)
	if !ok {
		return nil, InvalidTree{Reason: "root node is not an Object", Value: n.Value}
	}
	if err := d.expect(DocumentEnd); err != nil {
		return nil, err
	}
	if err := d.expect(StreamEnd); err != nil {
		return nil, err
	}
	return Tree(obj), nil
}

func (d *Decoder) expect(kind EventKind) error {
	ev, err := d.r.Next()
	if err != nil {
		return err
	}
	if ev.Kind != kind {
		return ExpectedEvent{Description: kind.String(), Actual: ev}
	}
	return nil
}

func canonicalTag(t Tag) node.SchemaTag {
	if t.Kind != UriTagKind {
		return node.NoTag
	}
	return node.Canonicalize(t.URI)
}

// sinkNode dispatches on the next event's kind.
func (d *Decoder) sinkNode() (*node.Node, error) {
	ev, err := d.r.Next()
	if err != nil {
		return nil, err
	}
	switch ev.Kind {
	case Scalar:
		return DispatchScalar(ev.Bytes, ev.Tag)
	case MappingStart:
		tag := canonicalTag(ev.Tag)
		entries, err := d.sinkMappingEntries()
		if err != nil {
			return nil, err
		}
		return d.resolveMapping(tag, entries)
	case SequenceStart:
		tag := canonicalTag(ev.Tag)
		items, err := d.sinkSequenceItems()
		if err != nil {
			return nil, err
		}
		return node.Tagged(tag, node.Array(items)), nil
	default:
		return nil, ExpectedEvent{Description: "node", Actual: ev}
	}
}

// sinkWhile peeks; while the next event is not terminator, it runs parse
// and collects via parse's own side effects; on the first event equal to
// terminator, it consumes (drops) that event exactly once and stops. This
// is what keeps nested containers from leaking their end event to their
// parent.
func (d *Decoder) sinkWhile(terminator EventKind, parse func() error) error {
	for {
		ev, err := d.r.Peek()
		if err != nil {
			return err
		}
		if ev.Kind == terminator {
			_, err := d.r.Next()
			return err
		}
		if err := parse(); err != nil {
			return err
		}
	}
}

func (d *Decoder) sinkMappingEntries() ([]node.Entry, error) {
	var entries []node.Entry
	err := d.sinkWhile(MappingEnd, func() error {
		keyEv, err := d.r.Next()
		if err != nil {
			return err
		}
		if keyEv.Kind != Scalar {
			return ExpectedEvent{Description: "mapping key scalar", Actual: keyEv}
		}
		valueNode, err := d.sinkNode()
		if err != nil {
			return err
		}
		entries = append(entries, node.Entry{Key: string(keyEv.Bytes), Value: valueNode})
		return nil
	})
	return entries, err
}

func (d *Decoder) sinkSequenceItems() ([]*node.Node, error) {
	var items []*node.Node
	err := d.sinkWhile(SequenceEnd, func() error {
		n, err := d.sinkNode()
		if err != nil {
			return err
		}
		items = append(items, n)
		return nil
	})
	return items, err
}

// resolveMapping tries NDArray, then Reference, then falls back to a plain
// Object. A recognizer that doesn't apply (its first check fails) produces
// no value and falls through silently; a recognizer that applies but is
// malformed returns a hard error that propagates to the caller.
func (d *Decoder) resolveMapping(tag node.SchemaTag, entries []node.Entry) (*node.Node, error) {
	if tag.IsNDArray() {
		data, err := d.extractNDArray(entries)
		if err != nil {
			return nil, err
		}
		return node.Tagged(tag, node.NDArray(data)), nil
	}

	obj := node.Object(entries)
	if refNode, ok := obj.Get("$ref"); ok {
		s, isStr := refNode.Value.(node.String)
		if !isStr {
			return nil, InvalidReference{Value: refNode.Value}
		}
		if isPureFragment(string(s)) {
			return node.Tagged(tag, node.InternalRef(s)), nil
		}
		return node.Tagged(tag, node.ExternalRef(s)), nil
	}

	return node.Tagged(tag, obj), nil
}

func isPureFragment(s string) bool {
	return strings.HasPrefix(s, "#")
}

// extractNDArray pulls the source, datatype, byteorder, and shape fields
// out of an ndarray mapping's entries and resolves the block bytes they
// describe.
func (d *Decoder) extractNDArray(entries []node.Entry) (node.NDArrayData, error) {
	obj := node.Object(entries)

	sourceNode, ok := obj.Get("source")
	if !ok {
		return node.NDArrayData{}, NDArrayMissingKey{Name: "source"}
	}
	datatypeNode, ok := obj.Get("datatype")
	if !ok {
		return node.NDArrayData{}, NDArrayMissingKey{Name: "datatype"}
	}
	byteorderNode, ok := obj.Get("byteorder")
	if !ok {
		return node.NDArrayData{}, NDArrayMissingKey{Name: "byteorder"}
	}
	shapeNode, ok := obj.Get("shape")
	if !ok {
		return node.NDArrayData{}, NDArrayMissingKey{Name: "shape"}
	}

	sourceInt, ok := sourceNode.Value.(node.Integer)
	if !ok {
		return node.NDArrayData{}, NDArrayExpected{Field: "Source", Value: sourceNode.Value}
	}
	blockBytes, err := d.blocks.Get(int(sourceInt))
	if err != nil {
		if _, isMissing := err.(block.ErrMissingBlock); isMissing {
			return node.NDArrayData{}, NDArrayMissingBlock{Index: int(sourceInt)}
		}
		return node.NDArrayData{}, err
	}

	datatypeStr, ok := datatypeNode.Value.(node.String)
	if !ok {
		return node.NDArrayData{}, NDArrayExpected{Field: "DataType", Value: datatypeNode.Value}
	}
	dataType, ok := node.ParseDataType(string(datatypeStr))
	if !ok {
		return node.NDArrayData{}, NDArrayExpected{Field: "DataType", Value: datatypeStr}
	}

	byteorderStr, ok := byteorderNode.Value.(node.String)
	if !ok {
		return node.NDArrayData{}, NDArrayExpected{Field: "ByteOrder", Value: byteorderNode.Value}
	}
	byteOrder, ok := node.ParseByteOrder(string(byteorderStr))
	if !ok {
		return node.NDArrayData{}, NDArrayExpected{Field: "ByteOrder", Value: byteorderStr}
	}

	shapeArr, ok := shapeNode.Value.(node.Array)
	if !ok {
		return node.NDArrayData{}, NDArrayExpected{Field: "Shape", Value: shapeNode.Value}
	}
	shape := make(node.Shape, len(shapeArr))
	for i, item := range shapeArr {
		iv, ok := item.Value.(node.Integer)
		if !ok {
			return node.NDArrayData{}, NDArrayExpected{Field: "Shape", Value: item.Value}
		}
		shape[i] = int(iv)
	}

	return node.NDArrayData{
		Source:    node.BlockSource(sourceInt),
		Bytes:     blockBytes,
		DataType:  dataType,
		ByteOrder: byteOrder,
		Shape:     shape,
	}, nil
}
