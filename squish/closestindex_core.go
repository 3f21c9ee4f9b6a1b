package squish

// lutByteIndex maps a per-channel float difference onto the 0..255 domain
// the error LUT is indexed by (spec.md §4.6): 8-bit absolute difference,
// clamped and rounded the same way SingleColorFit's byte-domain errors
// already are.
func lutByteIndex(diff float32) int {
	i := int(roundAwayFromZero(absf(diff) * 255))
	if i < 0 {
		i = 0
	}
	if i > 255 {
		i = 255
	}
	return i
}

// lutWeightedError scores a candidate-minus-pixel difference through the
// channel-metric and error LUT (spec.md §4.6): each channel's absolute
// difference is mapped to a perceptual weight via lut before the
// channel-metric-weighted squared sum, so SRGB_METRIC changes the score
// everywhere a candidate is compared against a pixel, not just in
// SingleColorFit's precomputed byte tables.
func lutWeightedError(diff Vec4, metric Vec4, lut *[256]float32) Scr4 {
	cerr := Vec4{
		X: lut[lutByteIndex(diff.X)],
		Y: lut[lutByteIndex(diff.Y)],
		Z: lut[lutByteIndex(diff.Z)],
		W: lut[lutByteIndex(diff.W)],
	}
	return LengthSquared(metric.Mul(cerr))
}

// bestIndexScalar finds, among the first k entries of codebook, the index
// minimizing the channel-weighted, LUT-scored distance to pixel, and
// returns that index together with the resulting squared error. This is
// the reference path for index assignment (spec.md §2 step 6); the SIMD
// path in vec_simd_amd64.go is required to return bitwise-identical
// results.
func bestIndexScalar(pixel Vec4, codebook []Vec4, metric Vec4, k int, lut *[256]float32) (int, Scr4) {
	best := 0
	bestErr := lutWeightedError(codebook[0].Sub(pixel), metric, lut)
	for i := 1; i < k; i++ {
		e := lutWeightedError(codebook[i].Sub(pixel), metric, lut)
		if e.Less(bestErr) {
			bestErr = e
			best = i
		}
	}
	return best, bestErr
}
