package squish

// computeCentroid returns the weighted mean of points (spec.md §4.1's
// centroid, shared by the PCA covariance and both fitters).
func computeCentroid(points []Vec4, weights []float32) Vec4 {
	var total float32
	var sum Vec4
	for i, p := range points {
		total += weights[i]
		sum = sum.Add(p.Scale(weights[i]))
	}
	if total == 0 {
		return Vec4{}
	}
	return sum.Scale(1 / total)
}

// computeAxis returns the principal search axis for a subset (spec.md
// §4.1): the weighted-covariance eigenvector for color-bearing formats, or
// the fixed alpha-axis for an alpha-only format where a 3x3 RGB
// eigensolve would degenerate on an all-zero color block.
func computeAxis(f Format, points []Vec4, weights []float32) Vec4 {
	if !f.hasColor() {
		return Vec4{0, 0, 0, 1}
	}
	cov := ComputeWeightedCovariance4(points, weights)
	return ComputePrincipleComponent4(cov)
}

func dot4(a, b Vec4) float32 {
	return a.Mul(b).HorizontalAdd()
}

// buildCodebook linearly interpolates k entries between start and end
// (spec.md §4's codebook construction, shared by every fitter).
func buildCodebook(start, end Vec4, k int) []Vec4 {
	codebook := make([]Vec4, k)
	if k == 1 {
		codebook[0] = start
		return codebook
	}
	for i := 0; i < k; i++ {
		alpha := float32(i) / float32(k-1)
		codebook[i] = start.Scale(1 - alpha).Add(end.Scale(alpha))
	}
	return codebook
}

// RangeFit projects a subset's points onto their principal axis and takes
// the extreme projections as candidate endpoints (spec.md §4.4): a fast,
// non-exhaustive fallback to the cluster fitter. indices[i] is the
// codebook slot chosen for points[i]; err is the total weighted squared
// error under metric, scored through lut (spec.md §4.6's error LUT;
// ComputeGammaLUT(false) for the linear metric, ComputeGammaLUT(true)
// under SRGB_METRIC).
func RangeFit(points []Vec4, weights []float32, metric Vec4, q vQuantizer, f Format, lut *[256]float32) (start, end Vec4, indices []int, err Scr4) {
	n := len(points)
	if n == 0 {
		return Vec4{}, Vec4{}, nil, Scr4{}
	}
	if n == 1 {
		idx := q.SnapToLattice(points[0])
		v := q.LookUpLattice(idx)
		return v, v, []int{0}, Scr4{}
	}

	axis := computeAxis(f, points, weights)
	centroid := computeCentroid(points, weights)

	minProj := dot4(points[0].Sub(centroid), axis)
	maxProj := minProj
	minPt, maxPt := points[0], points[0]
	for i := 1; i < n; i++ {
		p := dot4(points[i].Sub(centroid), axis)
		if p < minProj {
			minProj = p
			minPt = points[i]
		}
		if p > maxProj {
			maxProj = p
			maxPt = points[i]
		}
	}

	startIdx := q.SnapToLattice(minPt)
	endIdx := q.SnapToLattice(maxPt)
	start = q.LookUpLattice(startIdx)
	end = q.LookUpLattice(endIdx)

	codebook := buildCodebook(start, end, f.CodebookSize)
	indices = make([]int, n)
	for i, p := range points {
		bi, e := bestIndex(p, codebook, metric, f.CodebookSize, lut)
		indices[i] = bi
		err = err.Add(Scr4{weights[i] * e.Value()})
	}
	return start, end, indices, err
}
