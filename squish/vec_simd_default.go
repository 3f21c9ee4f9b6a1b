//go:build !goexperiment.simd || !amd64

package squish

// bestIndex is the index-assignment entry point used by the fitters. On
// builds without the amd64 SIMD experiment it is the scalar reference path
// directly; see vec_simd_amd64.go for the vectorized build.
func bestIndex(pixel Vec4, codebook []Vec4, metric Vec4, k int, lut *[256]float32) (int, Scr4) {
	return bestIndexScalar(pixel, codebook, metric, k, lut)
}
