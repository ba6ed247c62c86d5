package fits

// Bitpix is the mapped FITS BITPIX enum DataArray carries, the target of
// the classifier's RawBitpix mapping.
type Bitpix int

const (
	BPInt8   Bitpix = 8
	BPInt16  Bitpix = 16
	BPInt32  Bitpix = 32
	BPInt64  Bitpix = 64
	BPFloat  Bitpix = -32
	BPDouble Bitpix = -64
)

// RawBitpix is the bit-depth enum as the external low-level FITS parser
// reports it, before this package's mapping to Bitpix.
type RawBitpix int

const (
	EightBitInt RawBitpix = iota
	SixteenBitInt
	ThirtyTwoBitInt
	SixtyFourBitInt
	ThirtyTwoBitFloat
	SixtyFourBitFloat
)

var bitpixMapping = map[RawBitpix]Bitpix{
	EightBitInt:       BPInt8,
	SixteenBitInt:     BPInt16,
	ThirtyTwoBitInt:   BPInt32,
	SixtyFourBitInt:   BPInt64,
	ThirtyTwoBitFloat: BPFloat,
	SixtyFourBitFloat: BPDouble,
}

// ExtensionKind is the shape of HDU the external FITS parser assigned to
// one record.
type ExtensionKind uint8

const (
	// PrimaryExtension marks the file's mandatory first HDU.
	PrimaryExtension ExtensionKind = iota
	// ImageExtension marks an IMAGE extension HDU.
	ImageExtension
	// BinTableExtension marks a BINTABLE extension HDU (decoding only;
	// BinTable encoding is not supported).
	BinTableExtension
)

func (k ExtensionKind) String() string {
	switch k {
	case PrimaryExtension:
		return "Primary"
	case ImageExtension:
		return "Image"
	case BinTableExtension:
		return "BinTable"
	default:
		return "Unknown"
	}
}

// Dimensions is the bit depth and axis list the external FITS parser
// reports for one HDU, in its own (row-major) order.
type Dimensions struct {
	Bitpix RawBitpix
	Axes   []int
}

// HeaderDataUnit is one record from the external low-level FITS parser:
// bytes already split into a header, a declared shape, the raw data
// payload, and a classification into Primary/Image/BinTable.
type HeaderDataUnit struct {
	Header     []byte
	Dimensions Dimensions
	MainData   []byte
	Extension  ExtensionKind

	// PCount and Heap are only meaningful when Extension is
	// BinTableExtension.
	PCount int
	Heap   []byte
}

// DataArray is the classifier's output for one HDU: the mapped bit depth,
// column-major axes, and the raw data bytes.
type DataArray struct {
	Bitpix  Bitpix
	Axes    []int
	RawData []byte
}

// Classify validates and reshapes a decoded HDU list: the first HDU
// must be Primary, any other kind at position 0 is InvalidExtension, and
// an empty input is MissingPrimary. Every HDU after the first becomes an
// Image or BinTable DataArray.
func Classify(hdus []HeaderDataUnit) (primary DataArray, extensions []DataArray, err error) {
	if len(hdus) == 0 {
		return DataArray{}, nil, MissingPrimary{}
	}
	if hdus[0].Extension != PrimaryExtension {
		return DataArray{}, nil, InvalidExtension{
			Reason: "Primary, expected " + hdus[0].Extension.String(),
		}
	}
	primary = toDataArray(hdus[0])

	for _, h := range hdus[1:] {
		switch h.Extension {
		case ImageExtension, BinTableExtension:
			extensions = append(extensions, toDataArray(h))
		default:
			return DataArray{}, nil, InvalidExtension{
				Reason: "unexpected extension kind " + h.Extension.String() + " after position 0",
			}
		}
	}
	return primary, extensions, nil
}

func toDataArray(h HeaderDataUnit) DataArray {
	return DataArray{
		Bitpix:  bitpixMapping[h.Dimensions.Bitpix],
		Axes:    columnMajor(h.Dimensions.Axes),
		RawData: h.MainData,
	}
}

// columnMajor reverses a row-major axis list into column-major order
// (the classifier reinterprets axes column-major).
func columnMajor(axes []int) []int {
	out := make([]int, len(axes))
	for i, a := range axes {
		out[len(axes)-1-i] = a
	}
	return out
}
