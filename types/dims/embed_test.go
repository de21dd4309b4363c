package dims

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbedIndex(t *testing.T) {
	// Components land in the trailing slots, padding is 0.
	require.Equal(t, New3(0, 0, 7), EmbedIndex(New1(7)))
	require.Equal(t, New3(0, 3, 4), EmbedIndex(New2(3, 4)))
	require.Equal(t, New3(2, 3, 4), EmbedIndex(New3(2, 3, 4)))
}

func TestEmbedExtent(t *testing.T) {
	// Padding is 1, so the number of covered elements is preserved.
	require.Equal(t, New3(1, 1, 7), EmbedExtent(New1(7)))
	require.Equal(t, New3(1, 3, 4), EmbedExtent(New2(3, 4)))
	require.Equal(t, New3(2, 3, 4), EmbedExtent(New3(2, 3, 4)))

	for _, r := range []Range[D2]{New2(3, 4), New2(1, 1), New2(0, 5)} {
		require.Equal(t, r.Size(), EmbedExtent(r).Size())
	}
}

func TestExtractRoundtrip(t *testing.T) {
	// extract(embed(v)) == v for every dimensionality and both roles.
	for _, v := range []Vec[D1]{New1(0), New1(1), New1(12345)} {
		require.Equal(t, v, ExtractIndex[D1](EmbedIndex(v)))
		require.Equal(t, v, ExtractExtent[D1](EmbedExtent(v)))
	}
	for _, v := range []Vec[D2]{New2(0, 0), New2(5, 9), New2(1024, 1)} {
		require.Equal(t, v, ExtractIndex[D2](EmbedIndex(v)))
		require.Equal(t, v, ExtractExtent[D2](EmbedExtent(v)))
	}
	for _, v := range []Vec[D3]{New3(0, 0, 0), New3(2, 3, 4), New3(1, 1, 1)} {
		require.Equal(t, v, ExtractIndex[D3](EmbedIndex(v)))
		require.Equal(t, v, ExtractExtent[D3](EmbedExtent(v)))
	}
}

func TestExtractDiscardsLeadingSlots(t *testing.T) {
	// The reverse composition is not identity: whatever sits outside the trailing
	// slots is dropped.
	c := New3(9, 8, 7)
	require.Equal(t, New1(7), ExtractIndex[D1](c))
	require.Equal(t, New2(8, 7), ExtractIndex[D2](c))
	require.Equal(t, New3(0, 0, 7), EmbedIndex(ExtractIndex[D1](c)))
}
