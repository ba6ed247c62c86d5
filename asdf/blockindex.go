package asdf

import "strconv"

// DecodeBlockIndex implements the block-index sink's read side. The ASDF
// block index is a separate YAML document whose root is a flat sequence of
// integer byte offsets.
func DecodeBlockIndex(r EventReader) ([]int64, error) {
	d := &Decoder{r: r}
	if err := d.expect(StreamStart); err != nil {
		return nil, err
	}
	if err := d.expect(DocumentStart); err != nil {
		return nil, err
	}
	if err := d.expect(SequenceStart); err != nil {
		return nil, err
	}

	var offsets []int64
	err := d.sinkWhile(SequenceEnd, func() error {
		ev, err := d.r.Next()
		if err != nil {
			return err
		}
		if ev.Kind != Scalar {
			return ExpectedEvent{Description: "index entry scalar", Actual: ev}
		}
		n, err := strconv.ParseInt(string(ev.Bytes), 10, 64)
		if err != nil {
			return InvalidScalar{ExpectedType: "Int Index Entry", Bytes: ev.Bytes}
		}
		offsets = append(offsets, n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := d.expect(DocumentEnd); err != nil {
		return nil, err
	}
	if err := d.expect(StreamEnd); err != nil {
		return nil, err
	}
	return offsets, nil
}

// EncodeBlockIndex implements the block-index sink's write side: it emits
// the offsets as a flat, block-style sequence of plain integer scalars.
func EncodeBlockIndex(w EventWriter, offsets []int64) error {
	emit := func(ev Event) error { return w.Emit(ev) }

	if err := emit(Event{Kind: StreamStart}); err != nil {
		return err
	}
	if err := emit(Event{Kind: DocumentStart}); err != nil {
		return err
	}
	if err := emit(Event{Kind: SequenceStart, ContainerStyle: Block}); err != nil {
		return err
	}
	for _, offset := range offsets {
		if err := emit(Event{Kind: Scalar, Bytes: []byte(strconv.FormatInt(offset, 10)), ScalarStyle: Plain}); err != nil {
			return err
		}
	}
	if err := emit(Event{Kind: SequenceEnd}); err != nil {
		return err
	}
	if err := emit(Event{Kind: DocumentEnd}); err != nil {
		return err
	}
	return emit(Event{Kind: StreamEnd})
}
