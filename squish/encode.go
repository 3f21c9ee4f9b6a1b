package squish

// Stats reports diagnostic detail about one Encode call beyond the
// achieved error, mirroring the teacher's BlockInfo result (spec.md §6's
// "optional Stats result struct"): which partition pattern and rotation
// won, which fitter produced the winning subset, and how many iterative
// refinement passes ran.
type Stats struct {
	PatternIndex int
	Rotation     int
	UsedCluster  bool
	Refinements  int
	Error        float32
}

// fitResult is one subset's winning (start, end, per-point index, shared
// pattern, error, fitter-used) tuple, tracked across the rotation/
// partition/fitter search in Encode.
type fitResult struct {
	start, end    Vec4
	pointIdx      []int
	sharedPattern int
	err           Scr4
	usedCluster   bool
}

// Encode computes the best-fit block for one 4x4 pixel tile and
// serializes it into dst (spec.md §2's full pipeline: pixel-set
// construction, partition/rotation enumeration, PCA-seeded fitter
// dispatch, quantization, index assignment, error accumulation and
// selection). dst must be at least format.BlockBytes long. mask marks
// which of the 16 pixels are valid (bit i for pixels[i]); an all-zero
// mask produces the canonical zero-error empty block (spec.md §7's
// DegenerateBlock handling).
func Encode(dst []byte, pixels *[16]Pixel, mask uint16, format Format, metric Vec4, flags Flags) (Scr4, error) {
	return EncodeStats(dst, pixels, mask, format, metric, flags, nil)
}

// EncodeStats is Encode plus an optional *Stats out-param filled with
// diagnostic detail about the winning candidate.
func EncodeStats(dst []byte, pixels *[16]Pixel, mask uint16, format Format, metric Vec4, flags Flags, stats *Stats) (Scr4, error) {
	if len(dst) < format.BlockBytes {
		return Scr4{}, newError(ErrShortBuffer, "squish: dst shorter than format.BlockBytes")
	}
	if metric.X < 0 || metric.Y < 0 || metric.Z < 0 || metric.W < 0 || (metric.X == 0 && metric.Y == 0 && metric.Z == 0 && metric.W == 0) {
		return Scr4{}, newError(ErrBadChannelMetric, "squish: channel metric must be non-negative and non-zero")
	}
	if mask&^0xFFFF != 0 {
		return Scr4{}, newError(ErrBadMask, "squish: mask has bits set beyond the 16-pixel block")
	}

	if mask == 0 {
		for i := range dst[:format.BlockBytes] {
			dst[i] = 0
		}
		if stats != nil {
			*stats = Stats{}
		}
		return Scr4{}, nil
	}

	q := NewQuantizer(format)
	lut := ComputeGammaLUT(flags&FlagSRGBMetric != 0)

	patternCount := 1
	if format.PartitionCount > 1 {
		patternCount = NumPartitionPatterns
	}

	besterr := Scr4{v: maxFloat}
	var bestBlock Block
	var bestStats Stats

	for _, rotation := range format.RotationSet {
		rotated := rotatePixels(pixels, mask, rotation)

		for pattern := 0; pattern < patternCount; pattern++ {
			partition := PartitionTable(format.PartitionCount, pattern)
			ps := NewPaletteSet(&rotated, mask, partition, format, flags)

			var total Scr4
			results := make([]fitResult, format.PartitionCount)
			totalRefinements := 0
			ok := true
			for s := 0; s < format.PartitionCount; s++ {
				if ps.IsEmpty(s) {
					results[s] = fitResult{}
					continue
				}
				res, refinements := fitSubset(ps.Points[s], ps.Weights[s], metric, q, format, flags, lut)
				results[s] = res
				total = total.Add(res.err)
				totalRefinements += refinements
				if !total.Less(besterr) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}

			if total.Less(besterr) {
				besterr = total
				bestBlock = buildBlockFromFit(format, pattern, rotation, ps, results)
				bestStats = Stats{
					PatternIndex: pattern,
					Rotation:     rotation,
					UsedCluster:  anyUsedCluster(results),
					Refinements:  totalRefinements,
					Error:        total.Value(),
				}
			}
		}
	}

	out, err := EncodeBlock(bestBlock)
	if err != nil {
		return Scr4{}, err
	}
	copy(dst, out)

	if stats != nil {
		*stats = bestStats
	}
	return besterr, nil
}

// fitSubset runs the configured fitter(s) on one subset's weighted
// points and returns the winning (start, end, index, error) tuple,
// trying single-color, range, and cluster fits as spec.md §4 dictates
// and keeping whichever scores lowest, then optionally iterating the
// cluster fit from its own quantized axis (spec.md §6
// FlagIterativeRefine). lut is the error LUT selected by FlagSRGBMetric
// (spec.md §4.6), threaded through every fitter's per-pixel scoring.
func fitSubset(points []Vec4, weights []float32, metric Vec4, q vQuantizer, f Format, flags Flags, lut *[256]float32) (fitResult, int) {
	if len(points) == 1 {
		start, end, idx, err := SingleColorFit(points[0], metric, q, f, lut)
		// err is one point's channel error; scale by its weight (the
		// number of deduped pixels it represents) for consistency with
		// the range/cluster fitters' already-weighted error sums.
		err = Scr4{v: err.Value() * weights[0]}
		return fitResult{start: start, end: end, pointIdx: []int{idx}, err: err}, 0
	}

	best := fitResult{err: Scr4{v: maxFloat}}
	refinements := 0

	if flags&FlagRangeFit != 0 || flags&FlagClusterFit == 0 {
		start, end, idx, err := RangeFit(points, weights, metric, q, f, lut)
		if err.Less(best.err) {
			best = fitResult{start: start, end: end, pointIdx: idx, err: err}
		}
	}

	if flags&FlagClusterFit != 0 {
		start, end, idx, pattern, err := ClusterFit(points, weights, metric, q, f, lut)
		if err.Less(best.err) {
			best = fitResult{start: start, end: end, pointIdx: idx, sharedPattern: pattern, err: err, usedCluster: true}
		}

		if flags&FlagIterativeRefine != 0 {
			cur := best
			for i := 0; i < IterativeRefineCap; i++ {
				axis := cur.end.Sub(cur.start)
				if axis == (Vec4{}) {
					break
				}
				rs, re, ridx, rpattern, rerr := ClusterFitWithAxis(points, weights, metric, q, f, axis, lut)
				refinements++
				if !rerr.Less(cur.err) {
					break
				}
				cur = fitResult{start: rs, end: re, pointIdx: ridx, sharedPattern: rpattern, err: rerr, usedCluster: true}
			}
			if cur.err.Less(best.err) {
				best = cur
			}
		}
	}

	return best, refinements
}

func anyUsedCluster(results []fitResult) bool {
	for _, r := range results {
		if r.usedCluster {
			return true
		}
	}
	return false
}

// rotatePixels applies spec.md §4.6's channel rotation to every valid
// pixel before subset construction, so the PCA/fitters operate in the
// rotated channel frame and Decode's inverse rotation round-trips
// correctly.
func rotatePixels(pixels *[16]Pixel, mask uint16, rotation int) [16]Pixel {
	var out [16]Pixel
	for i := 0; i < 16; i++ {
		out[i] = pixels[i]
		if mask&(1<<uint(i)) == 0 || !pixels[i].Present {
			continue
		}
		v := applyRotation(rotation, pixels[i].vec())
		out[i] = Pixel{R: v.X, G: v.Y, B: v.Z, A: v.W, Present: true}
	}
	return out
}

// buildBlockFromFit assembles the winning per-subset fits and the
// palette set's remap table into a complete per-pixel Block token tree.
// Re-snapping each fitter's float endpoint is exact, not approximate:
// every fitter already produced that float by dequantizing a lattice
// index via LookUpLattice/LookUpLatticeBytes, and bit-replication
// dequantization round-trips losslessly through SnapToLattice.
func buildBlockFromFit(f Format, pattern, rotation int, ps *PaletteSet, results []fitResult) Block {
	q := NewQuantizer(f)
	b := Block{Format: f, PatternIndex: pattern, Rotation: rotation}

	for s := 0; s < f.PartitionCount; s++ {
		r := results[s]
		b.Subsets[s] = SubsetEndpoints{
			Start:         q.SnapToLattice(r.start),
			End:           q.SnapToLattice(r.end),
			SharedPattern: r.sharedPattern,
		}
	}

	for i := 0; i < 16; i++ {
		entry := ps.Remap[i]
		if entry.Subset < 0 {
			continue
		}
		r := results[entry.Subset]
		if int(entry.Point) < len(r.pointIdx) {
			b.Indices[i] = uint8(r.pointIdx[entry.Point])
		}
	}
	return b
}
