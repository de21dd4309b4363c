package dims

// Canonicalization: every Dim-polymorphic index or extent is padded to the fixed 3-D
// form before it crosses into the backend-facing execution path, and read back out with
// the Extract functions before returning to Dim-polymorphic callers.
//
// The original components always occupy the trailing (innermost) Rank[D] slots of the
// canonical form. The leading padding slots get the identity of the vector's role: 0 for
// indices (additive) and 1 for extents (multiplicative), so offsets stay no-ops and
// Size is preserved.

// EmbedIndex maps a Dim-dimensional point index into canonical 3-D form, left-padding
// with zeros. ExtractIndex inverts it: ExtractIndex[D](EmbedIndex(v)) == v.
func EmbedIndex[D Dim](v ID[D]) ID3 {
	var c ID3
	r := Rank[D]()
	for i := 0; i < r; i++ {
		c.data[3-r+i] = v.data[i]
	}
	return c
}

// EmbedExtent maps a Dim-dimensional extent into canonical 3-D form, left-padding with
// ones, so that the canonical extent covers the same number of elements:
// EmbedExtent(r).Size() == r.Size().
func EmbedExtent[D Dim](v Range[D]) Range3 {
	c := Range3{data: [3]uint64{1, 1, 1}}
	r := Rank[D]()
	for i := 0; i < r; i++ {
		c.data[3-r+i] = v.data[i]
	}
	return c
}

// ExtractIndex recovers a Dim-dimensional point index from its canonical form by reading
// the trailing Rank[D] slots. Information in the leading padding slots is discarded, so
// Embed(Extract(c)) is not generally c.
func ExtractIndex[D Dim](c ID3) ID[D] {
	return extractTrailing[D](c)
}

// ExtractExtent recovers a Dim-dimensional extent from its canonical form by reading the
// trailing Rank[D] slots.
func ExtractExtent[D Dim](c Range3) Range[D] {
	return extractTrailing[D](c)
}

func extractTrailing[D Dim](c Vec[D3]) Vec[D] {
	var v Vec[D]
	r := Rank[D]()
	for i := 0; i < r; i++ {
		v.data[i] = c.data[3-r+i]
	}
	return v
}
