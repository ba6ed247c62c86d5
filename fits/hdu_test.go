package fits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyMissingPrimary(t *testing.T) {
	_, _, err := Classify(nil)
	require.Error(t, err)
	require.IsType(t, MissingPrimary{}, err)
}

func TestClassifyFirstMustBePrimary(t *testing.T) {
	_, _, err := Classify([]HeaderDataUnit{
		{Extension: ImageExtension},
	})
	require.Error(t, err)
	require.IsType(t, InvalidExtension{}, err)
}

func TestClassifyPrimaryAndExtensions(t *testing.T) {
	hdus := []HeaderDataUnit{
		{
			Extension:  PrimaryExtension,
			Dimensions: Dimensions{Bitpix: ThirtyTwoBitInt, Axes: []int{10, 20}},
			MainData:   []byte{1, 2, 3, 4},
		},
		{
			Extension:  ImageExtension,
			Dimensions: Dimensions{Bitpix: SixtyFourBitFloat, Axes: []int{5}},
			MainData:   []byte{5, 6, 7, 8},
		},
		{
			Extension:  BinTableExtension,
			Dimensions: Dimensions{Bitpix: EightBitInt, Axes: []int{1, 2, 3}},
			MainData:   []byte{9},
			PCount:     4,
		},
	}

	primary, extensions, err := Classify(hdus)
	require.NoError(t, err)
	require.Equal(t, BPInt32, primary.Bitpix)
	// Row-major [10, 20] becomes column-major [20, 10].
	require.Equal(t, []int{20, 10}, primary.Axes)
	require.Equal(t, []byte{1, 2, 3, 4}, primary.RawData)

	require.Len(t, extensions, 2)
	require.Equal(t, BPDouble, extensions[0].Bitpix)
	require.Equal(t, []int{5}, extensions[0].Axes)
	require.Equal(t, BPInt8, extensions[1].Bitpix)
	require.Equal(t, []int{3, 2, 1}, extensions[1].Axes)
}

// TestClassifyPreservesDataBytes checks that classifying maps bitpix and
// passes the raw data through bytewise.
func TestClassifyPreservesDataBytes(t *testing.T) {
	raw := []byte{10, 20, 30, 40}
	hdus := []HeaderDataUnit{
		{
			Extension:  PrimaryExtension,
			Dimensions: Dimensions{Bitpix: SixteenBitInt, Axes: []int{2, 2}},
			MainData:   raw,
		},
	}
	primary, _, err := Classify(hdus)
	require.NoError(t, err)
	require.Equal(t, BPInt16, primary.Bitpix)
	require.Equal(t, raw, primary.RawData)
}

func TestChecksumSelfConsistent(t *testing.T) {
	a := ChecksumOf([]byte("hello world"))
	b := ChecksumOf([]byte("hello world"))
	require.Equal(t, a, b)
	require.NotEqual(t, a, ChecksumOf([]byte("hello worle")))

	encoded := EncodeChecksum(a)
	require.Len(t, encoded, 16)
}
