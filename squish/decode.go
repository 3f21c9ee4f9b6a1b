package squish

// applyRotation implements spec.md §4.6's channel-rotation convention:
// 0 leaves the pixel untouched, 1/2/3 swap the alpha channel with
// R/G/B respectively. The same function undoes itself, since a swap is
// its own inverse - encode.go applies it before fitting, Decode applies
// it again after reconstructing the interpolated color.
func applyRotation(rotation int, v Vec4) Vec4 {
	switch rotation {
	case 1:
		v.X, v.W = v.W, v.X
	case 2:
		v.Y, v.W = v.W, v.Y
	case 3:
		v.Z, v.W = v.W, v.Z
	}
	return v
}

// decodeBlockColors reconstructs a block's 16 pixel colors from its token
// tree: per subset, dequantize the stored lattice endpoints, build that
// subset's interpolated codebook, and look each pixel's stored index up
// in its subset's codebook.
func decodeBlockColors(q vQuantizer, b Block) [16]Vec4 {
	f := b.Format
	partition := b.Partition()

	var codebooks [3][]Vec4
	for s := 0; s < f.PartitionCount; s++ {
		se := b.Subsets[s]
		start := q.LookUpLattice(se.Start)
		end := q.LookUpLattice(se.End)
		codebooks[s] = buildCodebook(start, end, f.CodebookSize)
	}

	var out [16]Vec4
	for i := 0; i < 16; i++ {
		s := partition[i]
		out[i] = applyRotation(b.Rotation, codebooks[s][b.Indices[i]])
	}
	return out
}

// Decode reverses a serialized block back into its 16 pixel colors
// (spec.md §6): the unique left-inverse of the token-tree-to-bytes
// serializer. Kept minimal since full decoder generality is out of
// scope (spec.md §1) - it exists to make spec.md §8's round-trip
// idempotency property checkable.
func Decode(block []byte, format Format) ([16]Pixel, error) {
	b, err := DecodeBlock(format, block)
	if err != nil {
		return [16]Pixel{}, err
	}
	colors := decodeBlockColors(NewQuantizer(format), b)

	var out [16]Pixel
	for i, c := range colors {
		out[i] = Pixel{R: c.X, G: c.Y, B: c.Z, A: c.W, Present: true}
	}
	return out, nil
}
