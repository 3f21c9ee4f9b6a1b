package squish

import "sort"

// ClusterFit exhaustively searches every contiguous assignment of a
// subset's points onto a k-entry codebook (spec.md §4.5): points are
// sorted by projection onto the principal axis, then for every
// composition of the sorted sequence into k contiguous clusters a
// closed-form least-squares endpoint pair is solved in O(1) via prefix
// sums, quantized, and re-scored against the real quantized codebook. The
// best-scoring composition's (start, end, per-point indices) wins.
//
// When f.Shared is not SharedBitsNone, every candidate shared-bit pattern
// is tried as an outer loop and folded into the same best-of search. err
// is scored through lut (spec.md §4.6's error LUT).
func ClusterFit(points []Vec4, weights []float32, metric Vec4, q vQuantizer, f Format, lut *[256]float32) (start, end Vec4, indices []int, pattern int, err Scr4) {
	return clusterFit(points, weights, metric, q, f, nil, lut)
}

// ClusterFitWithAxis reruns the cluster fitter along a caller-supplied
// search axis instead of the PCA principal axis (spec.md §6's iterative
// refinement: re-deriving the axis from a previous round's quantized
// endpoints, (end - start), and refitting against it).
func ClusterFitWithAxis(points []Vec4, weights []float32, metric Vec4, q vQuantizer, f Format, axis Vec4, lut *[256]float32) (start, end Vec4, indices []int, pattern int, err Scr4) {
	return clusterFit(points, weights, metric, q, f, &axis, lut)
}

func clusterFit(points []Vec4, weights []float32, metric Vec4, q vQuantizer, f Format, axisOverride *Vec4, lut *[256]float32) (start, end Vec4, indices []int, pattern int, err Scr4) {
	n := len(points)
	if n == 0 {
		return Vec4{}, Vec4{}, nil, 0, Scr4{}
	}
	if n == 1 {
		idx := q.SnapToLattice(points[0])
		v := q.LookUpLattice(idx)
		return v, v, []int{0}, 0, Scr4{}
	}

	k := f.CodebookSize
	axis := computeAxis(f, points, weights)
	if axisOverride != nil {
		axis = *axisOverride
	}
	centroid := computeCentroid(points, weights)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	proj := make([]float32, n)
	for i, p := range points {
		proj[i] = dot4(p.Sub(centroid), axis)
	}
	sort.Slice(order, func(a, b int) bool { return proj[order[a]] < proj[order[b]] })

	sorted := make([]Vec4, n)
	sortedWeight := make([]float32, n)
	for i, oi := range order {
		sorted[i] = points[oi]
		sortedWeight[i] = weights[oi]
	}

	// anchorPos is where the subset's first (pre-sort) point landed after
	// sorting; AnchorRule formats require it to end up in cluster 0.
	anchorPos := 0
	for i, oi := range order {
		if oi == 0 {
			anchorPos = i
			break
		}
	}

	wPrefix := make([]float32, n+1)
	pPrefix := make([]Vec4, n+1)
	for i := 0; i < n; i++ {
		wPrefix[i+1] = wPrefix[i] + sortedWeight[i]
		pPrefix[i+1] = pPrefix[i].Add(sorted[i].Scale(sortedWeight[i]))
	}

	clusterWeight := func(lo, hi int) float32 { return wPrefix[hi] - wPrefix[lo] }
	clusterSum := func(lo, hi int) Vec4 { return pPrefix[hi].Sub(pPrefix[lo]) }

	besterr := Scr4{v: maxFloat}
	var beststart, bestend Vec4
	var bestBounds []int
	bestPattern := 0

	patternCount := f.Shared.patternCount()
	bounds := make([]int, k-1)

	for sharedPattern := 0; sharedPattern < patternCount; sharedPattern++ {
		bitCount, startForced, endForced := sharedBitParams(f.Shared, sharedPattern)

		for i := range bounds {
			bounds[i] = 0
		}
		for {
			if f.AnchorRule {
				if clusterOf(bounds, anchorPos) != 0 {
					if !nextComposition(bounds, n) {
						break
					}
					continue
				}
			}

			var a00, a01, a11 float32
			var b0, b1 Vec4
			lo := 0
			for c := 0; c < k; c++ {
				hi := n
				if c < k-1 {
					hi = bounds[c]
				}
				if hi > lo {
					alpha := float32(c) / float32(k-1)
					w := clusterWeight(lo, hi)
					s := clusterSum(lo, hi)
					a00 += w * (1 - alpha) * (1 - alpha)
					a01 += w * (1 - alpha) * alpha
					a11 += w * alpha * alpha
					b0 = b0.Add(s.Scale(1 - alpha))
					b1 = b1.Add(s.Scale(alpha))
				}
				lo = hi
			}

			det := a00*a11 - a01*a01
			var cstart, cend Vec4
			if absf(det) > epsPCA {
				inv := 1 / det
				cstart = b0.Scale(a11 * inv).Sub(b1.Scale(a01 * inv))
				cend = b1.Scale(a00 * inv).Sub(b0.Scale(a01 * inv))
			} else {
				cstart = centroid
				cend = centroid
			}

			var sIdx, eIdx [4]int
			if bitCount > 0 {
				sIdx, eIdx = q.SnapToLatticeSharedPair(cstart, cend, bitCount, startForced, endForced)
			} else {
				sIdx = q.SnapToLattice(cstart)
				eIdx = q.SnapToLattice(cend)
			}
			qstart := q.LookUpLattice(sIdx)
			qend := q.LookUpLattice(eIdx)

			codebook := buildCodebook(qstart, qend, k)
			var total Scr4
			for i, p := range sorted {
				_, e := bestIndex(p, codebook, metric, k, lut)
				total = total.Add(Scr4{sortedWeight[i] * e.Value()})
				if !total.Less(besterr) {
					break
				}
			}

			if total.Less(besterr) {
				besterr = total
				beststart = qstart
				bestend = qend
				bestPattern = sharedPattern
				bestBounds = append(bestBounds[:0], bounds...)
			}

			if !nextComposition(bounds, n) {
				break
			}
		}
	}

	if bestBounds == nil {
		// Defensive fallback: no composition scored below maxFloat. The
		// anchor rule alone cannot cause this, since the composition that
		// puts every point in cluster 0 always satisfies it.
		rstart, rend, rindices, rerr := RangeFit(points, weights, metric, q, f, lut)
		return rstart, rend, rindices, 0, rerr
	}

	codebook := buildCodebook(beststart, bestend, k)
	sortedIndices := make([]int, n)
	for i, p := range sorted {
		bi, _ := bestIndex(p, codebook, metric, k, lut)
		sortedIndices[i] = bi
	}

	indices = make([]int, n)
	for i, oi := range order {
		indices[oi] = sortedIndices[i]
	}

	return beststart, bestend, indices, bestPattern, besterr
}

// clusterOf reports which of the k clusters sorted-position pos falls
// into, given the k-1 composition boundaries in bounds.
func clusterOf(bounds []int, pos int) int {
	for c, b := range bounds {
		if pos < b {
			return c
		}
	}
	return len(bounds)
}

// nextComposition advances bounds (a non-decreasing sequence of k-1
// values in [0, n], spec.md §4.5's "every composition of n points into k
// contiguous clusters") to the next composition in lexicographic order,
// reporting false once every composition has been visited. This is the
// standard combinations-with-repetition successor: bounds[i] may repeat,
// which models an empty cluster at position i.
func nextComposition(bounds []int, n int) bool {
	i := len(bounds) - 1
	for i >= 0 && bounds[i] == n {
		i--
	}
	if i < 0 {
		return false
	}
	bounds[i]++
	for j := i + 1; j < len(bounds); j++ {
		bounds[j] = bounds[i]
	}
	return true
}
