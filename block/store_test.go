package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreAppendGet(t *testing.T) {
	s := New()
	i0 := s.Append([]byte("abc"))
	i1 := s.Append([]byte("de"))
	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	require.Equal(t, 2, s.Len())

	b, err := s.Get(0)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), b)

	b, err = s.Get(1)
	require.NoError(t, err)
	require.Equal(t, []byte("de"), b)
}

func TestStoreGetMissing(t *testing.T) {
	s := New()
	_, err := s.Get(0)
	require.Error(t, err)
	require.IsType(t, ErrMissingBlock(0), err)
	require.Equal(t, "block: no block at index 0", err.Error())
}
