package fits

import (
	"bytes"
	"fmt"
	"strings"
)

// RecordKind discriminates the three kinds of user record a header may
// carry.
type RecordKind uint8

const (
	KeywordRecord RecordKind = iota
	CommentRecord
	BlankLineRecord
	endRecord // internal: the mandatory trailing END card
)

// Record is one 80-column line's worth of header content before
// rendering.
type Record struct {
	Kind    RecordKind
	Name    string // KeywordRecord only
	Value   Value  // KeywordRecord only
	Comment string // KeywordRecord (optional trailing comment) or CommentRecord (its text)
}

// Keyword constructs a KeywordRecord.
func Keyword(name string, value Value, comment string) Record {
	return Record{Kind: KeywordRecord, Name: name, Value: value, Comment: comment}
}

// Comment constructs a CommentRecord, rendered as "COMMENT <text>".
func Comment(text string) Record {
	return Record{Kind: CommentRecord, Comment: text}
}

// BlankLine constructs an 80-space BlankLineRecord.
func BlankLine() Record {
	return Record{Kind: BlankLineRecord}
}

// isSystemKeyword reports whether name is one of the keywords filtered out
// of the user section because the renderer emits them itself in the
// required position.
func isSystemKeyword(name string) bool {
	upper := strings.ToUpper(name)
	switch upper {
	case "BITPIX", "EXTEND", "DATASUM", "CHECKSUM":
		return true
	}
	return strings.HasPrefix(upper, "NAXIS")
}

// renderLine renders one Record to exactly 80 bytes.
func renderLine(r Record) string {
	switch r.Kind {
	case CommentRecord:
		return padOrTruncate("COMMENT "+r.Comment, recordWidth)
	case BlankLineRecord:
		return strings.Repeat(" ", recordWidth)
	case endRecord:
		return padOrTruncate("END", recordWidth)
	default:
		return renderKeywordLine(r.Name, r.Value, r.Comment)
	}
}

// renderKeywordLine renders one keyword record to its fixed 80-column
// layout.
func renderKeywordLine(name string, value Value, comment string) string {
	var b strings.Builder
	upper := strings.ToUpper(name)
	if len(upper) > 8 {
		upper = upper[:8]
	}
	b.WriteString(upper)
	for b.Len() < 8 {
		b.WriteByte(' ')
	}
	b.WriteString("= ")
	b.WriteString(value.format())
	if comment != "" {
		b.WriteString(" / ")
		b.WriteString(comment)
	}
	return padOrTruncate(b.String(), recordWidth)
}

func padOrTruncate(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// PadHeader pads b with ASCII spaces to the next multiple of BlockSize. A
// length already aligned receives zero extra bytes.
func PadHeader(b []byte) []byte {
	rem := len(b) % BlockSize
	if rem == 0 {
		return b
	}
	return append(b, bytes.Repeat([]byte{' '}, BlockSize-rem)...)
}

// PadData pads b with NUL bytes to the next multiple of BlockSize.
func PadData(b []byte) []byte {
	rem := len(b) % BlockSize
	if rem == 0 {
		return b
	}
	return append(b, make([]byte, BlockSize-rem)...)
}

const checksumZeros = "0000000000000000"

func requiredPrimaryRecords(bitpix Bitpix, axes []int, extend bool) []Record {
	recs := []Record{
		Keyword("SIMPLE", Logic(true), "conforms to the FITS standard"),
		Keyword("BITPIX", Integer(bitpix), ""),
		Keyword("NAXIS", Integer(len(axes)), ""),
	}
	for i, n := range axes {
		recs = append(recs, Keyword(fmt.Sprintf("NAXIS%d", i+1), Integer(n), ""))
	}
	recs = append(recs,
		Keyword("EXTEND", Logic(extend), ""),
		Keyword("DATASUM", String(""), ""),
		Keyword("CHECKSUM", String(checksumZeros), ""),
	)
	return recs
}

func requiredImageRecords(bitpix Bitpix, axes []int) []Record {
	recs := []Record{
		Keyword("XTENSION", String("IMAGE"), ""),
		Keyword("BITPIX", Integer(bitpix), ""),
		Keyword("NAXIS", Integer(len(axes)), ""),
	}
	for i, n := range axes {
		recs = append(recs, Keyword(fmt.Sprintf("NAXIS%d", i+1), Integer(n), ""))
	}
	recs = append(recs,
		Keyword("PCOUNT", Integer(0), ""),
		Keyword("GCOUNT", Integer(1), ""),
		Keyword("DATASUM", String(""), ""),
		Keyword("CHECKSUM", String(checksumZeros), ""),
	)
	return recs
}

func assembleRecords(required, user []Record) []Record {
	var filtered []Record
	for _, r := range user {
		if r.Kind == KeywordRecord && isSystemKeyword(r.Name) {
			continue
		}
		filtered = append(filtered, r)
	}
	all := append(append([]Record{}, required...), filtered...)
	all = append(all, Record{Kind: endRecord})
	return all
}

func renderRecords(records []Record) []byte {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(renderLine(r))
	}
	return buf.Bytes()
}

// EncodePrimary renders a Primary HDU's header and data, padded to
// BlockSize, with DATASUM precomputed over the raw data and CHECKSUM
// patched in a second pass over the complete unchecksummed HDU.
func EncodePrimary(bitpix Bitpix, axes []int, extend bool, user []Record, data []byte) []byte {
	records := assembleRecords(requiredPrimaryRecords(bitpix, axes, extend), user)
	return encodeHDU(records, data)
}

// EncodeImage renders an Image extension HDU the same way EncodePrimary
// does, with the IMAGE extension's required keyword set.
func EncodeImage(bitpix Bitpix, axes []int, user []Record, data []byte) []byte {
	records := assembleRecords(requiredImageRecords(bitpix, axes), user)
	return encodeHDU(records, data)
}

func encodeHDU(records []Record, data []byte) []byte {
	datasum := ChecksumOf(data)
	records = patchDatasum(records, datasum)

	header := PadHeader(renderRecords(records))
	dataPadded := PadData(data)

	full := make([]byte, 0, len(header)+len(dataPadded))
	full = append(full, header...)
	full = append(full, dataPadded...)

	checksum := ChecksumOf(full)
	encoded := EncodeChecksum(checksum)
	header = patchChecksumLine(header, encoded)

	out := make([]byte, 0, len(header)+len(dataPadded))
	out = append(out, header...)
	out = append(out, dataPadded...)
	return out
}

func patchDatasum(records []Record, datasum uint32) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i, r := range out {
		if r.Kind == KeywordRecord && strings.EqualFold(r.Name, "DATASUM") {
			out[i].Value = String(formatInt(int64(datasum)))
			break
		}
	}
	return out
}

// patchChecksumLine overwrites the first 80-byte CHECKSUM line found in
// header with a freshly rendered line carrying the encoded checksum. This
// is the post-facto patch the CHECKSUM keyword requires: the field must encode the
// checksum of the complete HDU including itself, which can only be known
// once the header (with a zero placeholder) and data have been rendered.
func patchChecksumLine(header []byte, encoded string) []byte {
	for i := 0; i+recordWidth <= len(header); i += recordWidth {
		line := header[i : i+recordWidth]
		if bytes.HasPrefix(line, []byte("CHECKSUM")) {
			newLine := renderKeywordLine("CHECKSUM", String(encoded), "")
			copy(header[i:i+recordWidth], []byte(newLine))
			break
		}
	}
	return header
}
