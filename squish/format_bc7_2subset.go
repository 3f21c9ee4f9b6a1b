package squish

// encodeBC7TwoSubset packs a 2-subset, RGB-only, per-subset-shared-bit
// block into a 16-byte layout: 6-bit partition pattern, one shared-bit
// selector per subset, then each subset's two endpoints stored with
// their shared low bit omitted (it's recovered from the selector on
// decode), followed by 16 2-bit indices. Mirrors how real BC7's
// multi-subset modes omit each endpoint's P-bit from the explicit
// payload.
func encodeBC7TwoSubset(b Block) []byte {
	w := newBitWriter(16)
	w.WriteBits(uint32(b.PatternIndex), 6)

	for s := 0; s < 2; s++ {
		w.WriteBits(uint32(b.Subsets[s].SharedPattern&1), 1)
	}

	bits := b.Format.ColorBits
	for s := 0; s < 2; s++ {
		se := b.Subsets[s]
		bitCount, _, _ := sharedBitParams(b.Format.Shared, se.SharedPattern)
		for c := 0; c < 3; c++ {
			w.WriteBits(uint32(se.Start[c]>>uint(bitCount)), bits[c]-bitCount)
		}
		for c := 0; c < 3; c++ {
			w.WriteBits(uint32(se.End[c]>>uint(bitCount)), bits[c]-bitCount)
		}
	}

	for i := 0; i < 16; i++ {
		w.WriteBits(uint32(b.Indices[i]&0x3), 2)
	}
	return w.Bytes()
}

func decodeBC7TwoSubset(data []byte) Block {
	b := Block{Format: FormatBC7TwoSubset}
	r := newBitReader(data[:16])
	b.PatternIndex = int(r.ReadBits(6))

	var sharedPattern [2]int
	for s := 0; s < 2; s++ {
		sharedPattern[s] = int(r.ReadBits(1))
	}

	bits := b.Format.ColorBits
	for s := 0; s < 2; s++ {
		bitCount, startForced, endForced := sharedBitParams(b.Format.Shared, sharedPattern[s])
		var start, end [4]int
		for c := 0; c < 3; c++ {
			high := int(r.ReadBits(bits[c] - bitCount))
			start[c] = (high << uint(bitCount)) | startForced
		}
		for c := 0; c < 3; c++ {
			high := int(r.ReadBits(bits[c] - bitCount))
			end[c] = (high << uint(bitCount)) | endForced
		}
		b.Subsets[s] = SubsetEndpoints{Start: start, End: end, SharedPattern: sharedPattern[s]}
	}

	for i := 0; i < 16; i++ {
		b.Indices[i] = uint8(r.ReadBits(2))
	}
	return b
}
