package node

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalizeRoundTrip(t *testing.T) {
	tag := Canonicalize("tag:stsci.edu:asdf/core/ndarray-1.0.0")
	require.Equal(t, SchemaTag("core/ndarray-1.0.0"), tag)
	// Idempotent: canonicalizing an already-short tag is a no-op.
	require.Equal(t, tag, Canonicalize(string(tag)))
	require.Equal(t, "tag:stsci.edu:asdf/core/ndarray-1.0.0", tag.URI())

	other := Canonicalize("tag:other.org:custom/thing-1.0.0")
	require.Equal(t, SchemaTag("tag:other.org:custom/thing-1.0.0"), other)
}

func TestSchemaTagIsNDArray(t *testing.T) {
	require.True(t, SchemaTag("core/ndarray-1.0.0").IsNDArray())
	// Only the prefix is checked, not the version suffix.
	require.True(t, SchemaTag("core/ndarray-99.9.9").IsNDArray())
	require.False(t, SchemaTag("core/table-1.0.0").IsNDArray())
	require.False(t, NoTag.IsNDArray())
}

func TestSchemaTagMergeIdentity(t *testing.T) {
	require.Equal(t, SchemaTag("x"), NoTag.Merge("x"))
	require.Equal(t, SchemaTag("x"), SchemaTag("x").Merge(NoTag))
	require.Equal(t, NoTag, NoTag.Merge(NoTag))
}

func TestObjectGetFirstMatchWins(t *testing.T) {
	// Duplicate keys retain every entry in the ordered list, but Get
	// resolves to the first match.
	obj := Object{
		{Key: "a", Value: New(Integer(1))},
		{Key: "a", Value: New(Integer(2))},
	}
	v, ok := obj.Get("a")
	require.True(t, ok)
	require.Equal(t, Integer(1), v.Value)
	require.Len(t, obj, 2)
}

func TestIsComplex(t *testing.T) {
	require.True(t, IsComplex(Array{}))
	require.True(t, IsComplex(Object{}))
	require.True(t, IsComplex(NDArray{}))
	require.False(t, IsComplex(Null{}))
	require.False(t, IsComplex(String("x")))
	require.False(t, IsComplex(Integer(1)))
}

func TestNodeEqual(t *testing.T) {
	a := Tagged(SchemaTag("core/ndarray-1.0.0"), NDArray{Bytes: []byte{1, 2}, DataType: Int(1), ByteOrder: BigEndian, Shape: Shape{2}})
	b := Tagged(SchemaTag("core/ndarray-1.0.0"), NDArray{Bytes: []byte{1, 2}, DataType: Int(1), ByteOrder: BigEndian, Shape: Shape{2}})
	require.True(t, a.Equal(b))

	c := Tagged(SchemaTag("core/ndarray-1.0.0"), NDArray{Bytes: []byte{1, 3}, DataType: Int(1), ByteOrder: BigEndian, Shape: Shape{2}})
	require.False(t, a.Equal(c))

	require.True(t, (*Node)(nil).Equal(nil))
	require.False(t, a.Equal(nil))
}

func TestDataTypeRoundTrip(t *testing.T) {
	cases := []string{"int8", "int16", "int32", "int64", "uint8", "uint16", "uint32", "uint64", "float32", "float64", "ucs4"}
	for _, c := range cases {
		dt, ok := ParseDataType(c)
		require.Truef(t, ok, "ParseDataType(%q)", c)
		require.Equal(t, c, dt.String())
	}
	_, ok := ParseDataType("complex128")
	require.False(t, ok)
}

func TestShapeTotalItems(t *testing.T) {
	require.Equal(t, 24, Shape{2, 3, 4}.TotalItems())
	require.Equal(t, 1, Shape{}.TotalItems())
}
