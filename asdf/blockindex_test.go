package asdf

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBlockIndexRoundTrip(t *testing.T) {
	offsets := []int64{0, 2880, 5760, 11520}

	w := &MemoryWriter{}
	require.NoError(t, EncodeBlockIndex(w, offsets))

	got, err := DecodeBlockIndex(NewMemoryReader(w.Events))
	require.NoError(t, err)
	require.Equal(t, offsets, got)
}

func TestBlockIndexInvalidEntry(t *testing.T) {
	events := []Event{
		{Kind: StreamStart},
		{Kind: DocumentStart},
		{Kind: SequenceStart},
		{Kind: Scalar, Bytes: []byte("not-a-number")},
		{Kind: SequenceEnd},
		{Kind: DocumentEnd},
		{Kind: StreamEnd},
	}
	_, err := DecodeBlockIndex(NewMemoryReader(events))
	require.Error(t, err)
	require.IsType(t, InvalidScalar{}, err)
}

// TestBlockIndexMatchesRealYAML cross-checks the plain-integer-sequence
// scalar spellings this sink emits against gopkg.in/yaml.v3, a real,
// independent YAML implementation: the same offsets marshaled by yaml.v3
// and parsed by an equivalent scalar walk must agree.
func TestBlockIndexMatchesRealYAML(t *testing.T) {
	offsets := []int64{0, 2880, 5760}

	doc, err := yaml.Marshal(offsets)
	require.NoError(t, err)

	var viaYAML []int64
	require.NoError(t, yaml.Unmarshal(doc, &viaYAML))
	require.Equal(t, offsets, viaYAML)

	var doc2 yaml.Node
	require.NoError(t, yaml.Unmarshal(doc, &doc2))
	var wantStrings []string
	for _, item := range doc2.Content[0].Content {
		wantStrings = append(wantStrings, item.Value)
	}

	w := &MemoryWriter{}
	require.NoError(t, EncodeBlockIndex(w, offsets))
	var gotStrings []string
	for _, ev := range w.Events {
		if ev.Kind == Scalar {
			gotStrings = append(gotStrings, string(ev.Bytes))
		}
	}
	require.Len(t, gotStrings, len(offsets))
	require.Equal(t, wantStrings, gotStrings)
}
