package squish

// encodeBC7Rotated packs a single-subset RGBA block with a channel
// rotation selector and per-endpoint shared bits into 16 bytes: 2-bit
// rotation, one shared-bit selector per endpoint, the start/end
// endpoints with their shared low bit omitted, then 16 2-bit indices.
func encodeBC7Rotated(b Block) []byte {
	w := newBitWriter(16)
	w.WriteBits(uint32(b.Rotation), 2)

	se := b.Subsets[0]
	bitCount, startForced, endForced := sharedBitParams(b.Format.Shared, se.SharedPattern)
	w.WriteBits(uint32(startForced), 1)
	w.WriteBits(uint32(endForced), 1)

	cbits := [4]int{b.Format.ColorBits[0], b.Format.ColorBits[1], b.Format.ColorBits[2], b.Format.AlphaBits}
	for c := 0; c < 4; c++ {
		w.WriteBits(uint32(se.Start[c]>>uint(bitCount)), cbits[c]-bitCount)
	}
	for c := 0; c < 4; c++ {
		w.WriteBits(uint32(se.End[c]>>uint(bitCount)), cbits[c]-bitCount)
	}

	for i := 0; i < 16; i++ {
		w.WriteBits(uint32(b.Indices[i]&0x3), 2)
	}
	return w.Bytes()
}

func decodeBC7Rotated(data []byte) Block {
	b := Block{Format: FormatBC7Rotated}
	r := newBitReader(data[:16])
	b.Rotation = int(r.ReadBits(2))

	startForced := int(r.ReadBits(1))
	endForced := int(r.ReadBits(1))
	pattern := startForced | endForced<<1
	bitCount, _, _ := sharedBitParams(b.Format.Shared, pattern)

	cbits := [4]int{b.Format.ColorBits[0], b.Format.ColorBits[1], b.Format.ColorBits[2], b.Format.AlphaBits}
	var start, end [4]int
	for c := 0; c < 4; c++ {
		high := int(r.ReadBits(cbits[c] - bitCount))
		start[c] = (high << uint(bitCount)) | startForced
	}
	for c := 0; c < 4; c++ {
		high := int(r.ReadBits(cbits[c] - bitCount))
		end[c] = (high << uint(bitCount)) | endForced
	}
	b.Subsets[0] = SubsetEndpoints{Start: start, End: end, SharedPattern: pattern}

	for i := 0; i < 16; i++ {
		b.Indices[i] = uint8(r.ReadBits(2))
	}
	return b
}
