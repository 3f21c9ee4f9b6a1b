//go:build goexperiment.simd && amd64

package squish

import "simd/archsimd"

// bestIndex is the SIMD fast path for index assignment. It is required by
// spec.md §5/§9 to be bitwise identical to bestIndexScalar: only the
// per-lane elementwise subtract is vectorized, and the error-LUT lookup
// and channel-metric-weighted horizontal reduction are performed in the
// same left-to-right (X,Y,Z,W) scalar order as bestIndexScalar/
// lutWeightedError so IEEE-754 rounding cannot diverge between builds.
// Grounded on astc/avg_block_simd_amd64.go's split between a narrow
// vectorized core and an always-correct scalar fallback.
func bestIndex(pixel Vec4, codebook []Vec4, metric Vec4, k int, lut *[256]float32) (int, Scr4) {
	if !archsimd.X86.AVX() {
		return bestIndexScalar(pixel, codebook, metric, k, lut)
	}

	px := archsimd.LoadFloat32x4(&[4]float32{pixel.X, pixel.Y, pixel.Z, pixel.W})

	best := 0
	var bestErr Scr4
	for i := 0; i < k; i++ {
		c := codebook[i]
		cv := archsimd.LoadFloat32x4(&[4]float32{c.X, c.Y, c.Z, c.W})
		diff := cv.Sub(px)

		var lanes [4]float32
		diff.Store(&lanes)
		e := lutWeightedError(Vec4{X: lanes[0], Y: lanes[1], Z: lanes[2], W: lanes[3]}, metric, lut)

		if i == 0 || e.Less(bestErr) {
			bestErr = e
			best = i
		}
	}
	return best, bestErr
}
