package squish

// vQuantizer projects floating-point endpoints onto the legal lattice of a
// target format: per-channel bit depth, optional shared low bits
// (spec.md §4.2). bits holds the R,G,B,A bit depths; a zero entry marks a
// channel the format does not encode.
type vQuantizer struct {
	bits [4]int
}

// NewQuantizer builds the vQuantizer for a Format's channel bit depths.
func NewQuantizer(f Format) vQuantizer {
	bits := [4]int{f.ColorBits[0], f.ColorBits[1], f.ColorBits[2], f.AlphaBits}
	return vQuantizer{bits: bits}
}

func maxIndex(bits int) int {
	if bits <= 0 {
		return 0
	}
	return (1 << bits) - 1
}

// replicateBits expands a b-bit value into an 8-bit byte by replicating its
// top bits into the low bits, the standard BCn dequantization spec.md §4.2
// requires ("0 -> 0.0 and max -> 1.0 exactly").
func replicateBits(v, bits int) int {
	if bits <= 0 {
		return 0
	}
	if bits >= 8 {
		return v
	}
	hi := v << (8 - bits)
	lo := 0
	if 2*bits >= 8 {
		lo = v >> (2*bits - 8)
	}
	return hi | lo
}

// snapChannel rounds v (a float in [0,1]) to the nearest legal b-bit
// lattice index, ties away from zero, clamped to [0, maxIndex(bits)].
func snapChannel(v float32, bits int) int {
	maxI := maxIndex(bits)
	if maxI == 0 {
		return 0
	}
	i := int(roundAwayFromZero(v * float32(maxI)))
	if i < 0 {
		i = 0
	}
	if i > maxI {
		i = maxI
	}
	return i
}

// SnapToLattice rounds each channel of v to the nearest legal lattice
// index for this quantizer's bit depths (spec.md §4.2's plain, unshared
// variant).
func (q vQuantizer) SnapToLattice(v Vec4) [4]int {
	return [4]int{
		snapChannel(v.X, q.bits[0]),
		snapChannel(v.Y, q.bits[1]),
		snapChannel(v.Z, q.bits[2]),
		snapChannel(v.W, q.bits[3]),
	}
}

// SnapToLatticeShared rounds start and end to the nearest legal lattice
// indices subject to sharing the given candidate low-bit pattern between
// them (spec.md §4.2's shared-bit variant): the low sharedBitCount bits of
// every channel's start and end index are forced to match bits drawn from
// pattern, and the remaining high bits are rounded independently.
func (q vQuantizer) SnapToLatticeShared(start, end Vec4, sharedBitCount, pattern int) (s, e [4]int) {
	return q.SnapToLatticeSharedPair(start, end, sharedBitCount, pattern, pattern)
}

// SnapToLatticeSharedPair is the general shared-bit snap: startForced and
// endForced are applied independently, so a format whose endpoints carry
// separate shared bits (SharedBitsOnePerEndpoint) isn't forced to agree
// with SharedBitsOnePerSubset/TwoPerSubset, which pass the same pattern
// for both.
func (q vQuantizer) SnapToLatticeSharedPair(start, end Vec4, sharedBitCount, startForced, endForced int) (s, e [4]int) {
	if sharedBitCount <= 0 {
		return q.SnapToLattice(start), q.SnapToLattice(end)
	}

	mask := (1 << sharedBitCount) - 1
	startForced &= mask
	endForced &= mask
	startV := [4]float32{start.X, start.Y, start.Z, start.W}
	endV := [4]float32{end.X, end.Y, end.Z, end.W}

	for c := 0; c < 4; c++ {
		maxI := maxIndex(q.bits[c])
		if maxI == 0 {
			continue
		}
		s[c] = snapWithForcedLowBits(startV[c], maxI, sharedBitCount, startForced)
		e[c] = snapWithForcedLowBits(endV[c], maxI, sharedBitCount, endForced)
	}
	return s, e
}

// sharedBitParams returns, for a shared-bits kind and a candidate pattern
// index in [0, kind.patternCount()), the bit width shared per channel and
// the forced low-bit values for the start and end endpoints (spec.md
// §4.5 step 4's "candidate shared-bit patterns").
func sharedBitParams(kind SharedBitsKind, pattern int) (bitCount, startForced, endForced int) {
	switch kind {
	case SharedBitsNone:
		return 0, 0, 0
	case SharedBitsOnePerSubset:
		p := pattern & 1
		return 1, p, p
	case SharedBitsOnePerEndpoint:
		return 1, pattern & 1, (pattern >> 1) & 1
	case SharedBitsTwoPerSubset:
		p := pattern & 3
		return 2, p, p
	default:
		return 0, 0, 0
	}
}

// snapWithForcedLowBits rounds v onto the sub-lattice of indices whose low
// sharedBits bits equal forced, choosing the nearest such index.
func snapWithForcedLowBits(v float32, maxI, sharedBits, forced int) int {
	step := 1 << sharedBits
	target := v * float32(maxI)

	base := int(roundAwayFromZero(target/float32(step))) * step
	best := base | forced
	bestDist := absf(float32(best) - target)

	for _, cand := range []int{base - step, base, base + step} {
		i := cand | forced
		if i < 0 || i > maxI {
			continue
		}
		d := absf(float32(i) - target)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		best = forced
	}
	if best > maxI {
		best = maxI - (maxI-forced)%step
	}
	return best
}

// LookUpLattice dequantizes per-channel lattice indices to a float Vec4
// endpoint (spec.md §4.2). Channels with zero bit depth dequantize to 0.
func (q vQuantizer) LookUpLattice(idx [4]int) Vec4 {
	return Vec4{
		float32(replicateBits(idx[0], q.bits[0])) / 255.0,
		float32(replicateBits(idx[1], q.bits[1])) / 255.0,
		float32(replicateBits(idx[2], q.bits[2])) / 255.0,
		float32(replicateBits(idx[3], q.bits[3])) / 255.0,
	}
}

// LookUpLatticeBytes is the convenience form used by the single-color
// fitter, which already works in quantized byte space (spec.md §4.3).
func (q vQuantizer) LookUpLatticeBytes(r, g, b, a int) Vec4 {
	return Vec4{
		float32(r) / 255.0,
		float32(g) / 255.0,
		float32(b) / 255.0,
		float32(a) / 255.0,
	}
}
