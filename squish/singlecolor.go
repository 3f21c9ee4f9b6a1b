package squish

import "sync"

// spSource is one precomputed codebook-slot answer: the quantized start/end
// lattice bytes whose interpolant at a given slot best approximates a
// target byte, and the resulting absolute error. Ported from SP_SourceBlock
// in original_source/singlepalettefit.cpp.
type spSource struct {
	start, end uint8
	err        uint8
}

// spTable is indexed [target][slot]; built once per (bits, codebookSize)
// combination actually used by a registered Format.
type spTable struct {
	bits         int
	codebookSize int
	rows         [256][]spSource
}

var (
	spTableCacheMu sync.Mutex
	spTableCache   = map[[2]int]*spTable{}
)

// init prebuilds the tables every canonical format needs, so they exist
// before the first block is encoded; other formats build theirs on first
// use.
func init() {
	for _, f := range []Format{FormatBC1, FormatBC3Alpha, FormatBC7TwoSubset, FormatBC7Rotated} {
		bits := [4]int{f.ColorBits[0], f.ColorBits[1], f.ColorBits[2], f.AlphaBits}
		for _, b := range bits {
			if b > 0 {
				getSinglePaletteLookup(b, f.CodebookSize)
			}
		}
	}
}

// getSinglePaletteLookup returns the cached table for (bits, k), building
// it by exhaustive search on first use; init calls it for the canonical
// formats at package initialization (spec.md §9).
func getSinglePaletteLookup(bits, codebookSize int) *spTable {
	key := [2]int{bits, codebookSize}

	spTableCacheMu.Lock()
	defer spTableCacheMu.Unlock()
	if t, ok := spTableCache[key]; ok {
		return t
	}
	t := buildSinglePaletteLookup(bits, codebookSize)
	spTableCache[key] = t
	return t
}

// buildSinglePaletteLookup performs the exhaustive-over-start,
// analytic-then-neighborhood-search-over-end construction: for every
// target byte and codebook slot, the ideal end value is solved for
// analytically given a candidate start, then a small neighborhood around
// it is checked against the lattice. This keeps the search tractable for
// 8-bit channels while remaining equivalent to the full O(maxI^2)
// exhaustive search the original describes, since the interpolation
// function is monotone in end for fixed start.
func buildSinglePaletteLookup(bits, codebookSize int) *spTable {
	t := &spTable{bits: bits, codebookSize: codebookSize}
	if bits <= 0 {
		return t
	}
	maxI := maxIndex(bits)
	k := codebookSize

	for target := 0; target < 256; target++ {
		row := make([]spSource, k)
		for slot := 0; slot < k; slot++ {
			alpha := float32(slot) / float32(k-1)

			best := spSource{err: 255}
			bestErr := 256

			for startIdx := 0; startIdx <= maxI; startIdx++ {
				startByte := replicateBits(startIdx, bits)

				var endGuess float64
				if alpha == 0 {
					endGuess = float64(startIdx)
				} else {
					endGuess = (float64(target) - float64(startByte)*(1-float64(alpha))) / float64(alpha) / 255.0 * float64(maxI)
				}

				lo := int(endGuess) - 2
				hi := int(endGuess) + 2
				if lo < 0 {
					lo = 0
				}
				if hi > maxI {
					hi = maxI
				}
				for endIdx := lo; endIdx <= hi; endIdx++ {
					endByte := replicateBits(endIdx, bits)
					interp := int(roundAwayFromZero(float32(startByte)*(1-alpha) + float32(endByte)*alpha))
					e := interp - target
					if e < 0 {
						e = -e
					}
					if e < bestErr {
						bestErr = e
						best = spSource{start: uint8(startByte), end: uint8(endByte), err: uint8(e)}
						if bestErr == 0 {
							break
						}
					}
				}
				if bestErr == 0 {
					break
				}
			}
			row[slot] = best
		}
		t.rows[target] = row
	}
	return t
}

// SingleColorFit computes the optimal two-endpoint representation for a
// subset containing a single distinct color (spec.md §4.3). cmask marks
// which of the four channels this format actually encodes (R=1,G=2,B=4,
// A=8); disabled channels contribute zero error and default to an
// opaque/zero placeholder consistent with original_source/
// singlepalettefit.cpp's handling of a nil channel lookup. eLUT is the
// error LUT each candidate's byte error is scored through (spec.md
// §4.6); callers pass ComputeGammaLUT(false) for the linear metric or
// ComputeGammaLUT(true) under SRGB_METRIC.
func SingleColorFit(color Vec4, metric Vec4, q vQuantizer, f Format, eLUT *[256]float32) (start, end Vec4, bestIndex int, err Scr4) {
	cmask := f.channelMask()

	entry := [4]uint8{
		uint8(roundAwayFromZero(clampf(color.X, 0, 1) * 255)),
		uint8(roundAwayFromZero(clampf(color.Y, 0, 1) * 255)),
		uint8(roundAwayFromZero(clampf(color.Z, 0, 1) * 255)),
		uint8(roundAwayFromZero(clampf(color.W, 0, 1) * 255)),
	}

	bits := [4]int{f.ColorBits[0], f.ColorBits[1], f.ColorBits[2], f.AlphaBits}
	tables := [4]*spTable{}
	for c := 0; c < 4; c++ {
		if cmask&(1<<uint(c)) != 0 {
			tables[c] = getSinglePaletteLookup(bits[c], f.CodebookSize)
		}
	}

	maxAlphaByte := 255
	if bits[3] > 0 {
		maxAlphaByte = replicateBits(maxIndex(bits[3]), bits[3])
	}

	besterror := Scr4{v: maxFloat}
	var bestStartBytes, bestEndBytes [4]int

	for idx := 0; idx < f.CodebookSize; idx++ {
		var cerr Vec4
		var src [4]*spSource

		for c := 0; c < 4; c++ {
			if cmask&(1<<uint(c)) == 0 {
				continue
			}
			s := tables[c].rows[entry[c]][idx]
			src[c] = &s
			cerr = cerr.WithLane(c, eLUT[s.err])
		}

		e := LengthSquared(metric.Mul(cerr))
		if e.Less(besterror) {
			besterror = e

			for c := 0; c < 4; c++ {
				switch {
				case src[c] != nil:
					bestStartBytes[c] = int(src[c].start)
					bestEndBytes[c] = int(src[c].end)
				case c == 3:
					// Disabled alpha channel defaults to fully opaque,
					// matching AxFF in singlepalettefit.cpp.
					bestStartBytes[c] = maxAlphaByte
					bestEndBytes[c] = maxAlphaByte
				default:
					bestStartBytes[c] = 0
					bestEndBytes[c] = 0
				}
			}
			bestIndex = idx

			if !(besterror.v > 0) {
				break
			}
		}
	}

	start = q.LookUpLatticeBytes(bestStartBytes[0], bestStartBytes[1], bestStartBytes[2], bestStartBytes[3])
	end = q.LookUpLatticeBytes(bestEndBytes[0], bestEndBytes[1], bestEndBytes[2], bestEndBytes[3])
	return start, end, bestIndex, besterror
}

const maxFloat = float32(3.402823e+38)
