package squish

// Pixel is one of a block's 16 input texels: normalized [0,1] channels
// plus a validity bit (spec.md §3).
type Pixel struct {
	R, G, B, A float32
	Present    bool
}

func (p Pixel) vec() Vec4 { return Vec4{p.R, p.G, p.B, p.A} }

// remapEntry records, per pixel, which subset and which unique point
// within that subset it maps to; Subset is -1 for an invalid (masked-out)
// pixel.
type remapEntry struct {
	Subset int8
	Point  int8
}

// PaletteSet groups a block's pixels into 1-3 weighted subsets by
// partition index (spec.md §3's ColorSet/PaletteSet). Within a subset,
// points are pairwise distinct and weights are strictly positive; the
// remap table covers every valid pixel exactly once.
type PaletteSet struct {
	SubsetCount int
	Points      [3][]Vec4
	Weights     [3][]float32
	Remap       [16]remapEntry

	// AnyTransparent records whether EXCLUDE_TRANSPARENT zeroed out at
	// least one present pixel's weight (spec.md §3: "Transparency is a
	// derived predicate").
	AnyTransparent bool
}

// NewPaletteSet builds a PaletteSet for one block. partition assigns each
// pixel index (0..15) to a subset in [0, format.PartitionCount); callers
// targeting a single-subset format pass an all-zero partition.
func NewPaletteSet(pixels *[16]Pixel, mask uint16, partition [16]uint8, f Format, flags Flags) *PaletteSet {
	ps := &PaletteSet{SubsetCount: f.PartitionCount}
	for i := range ps.Remap {
		ps.Remap[i] = remapEntry{Subset: -1, Point: -1}
	}

	var weight [16]float32
	for i := 0; i < 16; i++ {
		if mask&(1<<uint(i)) == 0 || !pixels[i].Present {
			continue
		}
		w := float32(1.0)
		if flags&FlagWeightByAlpha != 0 {
			w *= pixels[i].A
		}
		if flags&FlagExcludeTransparent != 0 && pixels[i].A < TransparentAlphaThreshold {
			w = 0
			ps.AnyTransparent = true
		}
		weight[i] = w
	}

	for s := 0; s < f.PartitionCount; s++ {
		var points []Vec4
		var weights []float32

		for i := 0; i < 16; i++ {
			if mask&(1<<uint(i)) == 0 || !pixels[i].Present || int(partition[i]) != s || weight[i] <= 0 {
				continue
			}
			c := pixels[i].vec()

			found := -1
			for pi, existing := range points {
				if existing == c {
					found = pi
					break
				}
			}
			if found >= 0 {
				weights[found] += weight[i]
				ps.Remap[i] = remapEntry{Subset: int8(s), Point: int8(found)}
			} else {
				points = append(points, c)
				weights = append(weights, weight[i])
				ps.Remap[i] = remapEntry{Subset: int8(s), Point: int8(len(points) - 1)}
			}
		}

		ps.Points[s] = points
		ps.Weights[s] = weights
	}

	// Map zero-weight (excluded) present pixels to the nearest surviving
	// point in their own subset, so every valid pixel still gets an index
	// assignment even though it contributed no weight to the fit.
	for i := 0; i < 16; i++ {
		if mask&(1<<uint(i)) == 0 || !pixels[i].Present || ps.Remap[i].Subset >= 0 {
			continue
		}
		s := int(partition[i])
		if len(ps.Points[s]) == 0 {
			continue
		}
		c := pixels[i].vec()
		best := 0
		bestD := distSq(c, ps.Points[s][0])
		for pi := 1; pi < len(ps.Points[s]); pi++ {
			d := distSq(c, ps.Points[s][pi])
			if d < bestD {
				bestD = d
				best = pi
			}
		}
		ps.Remap[i] = remapEntry{Subset: int8(s), Point: int8(best)}
	}

	return ps
}

// IsEmpty reports whether a subset has no weighted points, i.e. every
// pixel assigned to it was either invalid or weight-excluded.
func (ps *PaletteSet) IsEmpty(subset int) bool {
	return len(ps.Points[subset]) == 0
}

func distSq(a, b Vec4) float32 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z + d.W*d.W
}
