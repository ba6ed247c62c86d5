package node

import "fmt"

// ByteOrder is the in-block byte order of an NDArray's raw bytes.
type ByteOrder uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian ByteOrder = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
)

// String renders the YAML scalar spelling used on the wire.
func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little"
	}
	return "big"
}

// ParseByteOrder parses the "big"/"little" scalar spelling.
func ParseByteOrder(s string) (ByteOrder, bool) {
	switch s {
	case "big":
		return BigEndian, true
	case "little":
		return LittleEndian, true
	default:
		return 0, false
	}
}

// DataType is the closed set of element types an NDArray's bytes may hold.
type DataType struct {
	kind  dataTypeKind
	width int // element width in bytes; for Ucs4, width = 4*n
	n     int // code-unit count, only meaningful for Ucs4
}

type dataTypeKind uint8

const (
	dtInt dataTypeKind = iota
	dtUint
	dtFloat
	dtUcs4
)

// Int constructs a signed integer DataType of the given byte width (1, 2,
// 4, or 8).
func Int(width int) DataType { return DataType{kind: dtInt, width: width} }

// Uint constructs an unsigned integer DataType of the given byte width.
func Uint(width int) DataType { return DataType{kind: dtUint, width: width} }

// Float constructs a floating point DataType of the given byte width (4 or
// 8).
func Float(width int) DataType { return DataType{kind: dtFloat, width: width} }

// Ucs4 constructs a UTF-32 string DataType of n code units.
func Ucs4(n int) DataType { return DataType{kind: dtUcs4, width: 4 * n, n: n} }

// Width returns the per-element byte width of the type.
func (d DataType) Width() int { return d.width }

// String renders the YAML scalar spelling used on the wire, e.g. "int32",
// "float64", "ucs4".
func (d DataType) String() string {
	switch d.kind {
	case dtInt:
		return fmt.Sprintf("int%d", d.width*8)
	case dtUint:
		return fmt.Sprintf("uint%d", d.width*8)
	case dtFloat:
		return fmt.Sprintf("float%d", d.width*8)
	case dtUcs4:
		return "ucs4"
	default:
		return "invalid"
	}
}

// ParseDataType parses the wire spelling of a DataType, as produced by
// String. The accepted set is fixed and closed: signed and unsigned
// integer widths 8/16/32/64, float widths 32/64, and ucs4. The "ucs4"
// spelling carries no code-unit count: it parses as Ucs4(1), so a Ucs4(n)
// with n > 1 does not survive String followed by ParseDataType.
func ParseDataType(s string) (DataType, bool) {
	switch s {
	case "int8":
		return Int(1), true
	case "int16":
		return Int(2), true
	case "int32":
		return Int(4), true
	case "int64":
		return Int(8), true
	case "uint8":
		return Uint(1), true
	case "uint16":
		return Uint(2), true
	case "uint32":
		return Uint(4), true
	case "uint64":
		return Uint(8), true
	case "float32":
		return Float(4), true
	case "float64":
		return Float(8), true
	case "ucs4":
		return Ucs4(1), true
	default:
		return DataType{}, false
	}
}

// Equal reports whether two DataType values describe the same element
// layout.
func (d DataType) Equal(o DataType) bool {
	return d.kind == o.kind && d.width == o.width
}

// Shape is a sequence of positive axis lengths in row-major (outermost
// first) order.
type Shape []int

// TotalItems returns the product of the axis lengths, or 1 for a scalar
// (empty) shape.
func (s Shape) TotalItems() int {
	total := 1
	for _, n := range s {
		total *= n
	}
	return total
}

// Equal reports whether two shapes have the same axis lengths in the same
// order.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// NDArrayData describes an N-dimensional array whose raw bytes live in a
// block store, referenced by BlockSource.
type NDArrayData struct {
	Source    BlockSource
	Bytes     []byte
	DataType  DataType
	ByteOrder ByteOrder
	Shape     Shape
}

// NDArray wraps NDArrayData as a Value variant.
type NDArray NDArrayData

func (NDArray) isValue() {}

// Equal implements Value. Bytes are compared by content, and Source,
// DataType, ByteOrder and Shape must match as well, so a decoded array
// equals the array it was encoded from only if that array's Source was
// already its block index.
func (n NDArray) Equal(other Value) bool {
	o, ok := other.(NDArray)
	if !ok {
		return false
	}
	return n.Source == o.Source &&
		n.DataType.Equal(o.DataType) &&
		n.ByteOrder == o.ByteOrder &&
		n.Shape.Equal(o.Shape) &&
		bytesEqual(n.Bytes, o.Bytes)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// BlockSource is an integer index into a block store.
type BlockSource int
