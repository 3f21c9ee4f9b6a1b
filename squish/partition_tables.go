package squish

// NumPartitionPatterns is how many candidate partition layouts exist per
// subset count (spec.md §2's "a fixed finite table of partition
// assignments", enumerated the same way for every multi-subset format).
const NumPartitionPatterns = 64

// partitionHash is adapted from astc/partition.go's hash52/selectPartition
// (ARM astcenc's procedural partition-table generator), reseeded for a
// fixed 4x4 texel footprint instead of ASTC's variable block size: this
// codec targets one block shape, so the smallBlock/z-coordinate/
// small-block-doubling machinery that exists there to cover many ASTC
// footprints is dropped.
func partitionHash(inp uint32) uint32 {
	inp ^= inp >> 15
	inp *= 0xEEDE0891
	inp ^= inp >> 5
	inp += inp << 16
	inp ^= inp >> 7
	inp ^= inp >> 3
	inp ^= inp << 6
	inp ^= inp >> 17
	return inp
}

// selectPartitionTexel assigns texel (x, y) in a 4x4 block to a subset in
// [0, partitionCount) for the given pattern seed.
func selectPartitionTexel(seed, x, y, partitionCount int) uint8 {
	seed += (partitionCount - 1) * 1024
	rnum := partitionHash(uint32(seed))

	seed1 := uint8(rnum & 0xF)
	seed2 := uint8((rnum >> 4) & 0xF)
	seed3 := uint8((rnum >> 8) & 0xF)
	seed4 := uint8((rnum >> 12) & 0xF)
	seed5 := uint8((rnum >> 16) & 0xF)
	seed6 := uint8((rnum >> 20) & 0xF)
	seed7 := uint8((rnum >> 24) & 0xF)
	seed8 := uint8((rnum >> 28) & 0xF)

	seed1 *= seed1
	seed2 *= seed2
	seed3 *= seed3
	seed4 *= seed4
	seed5 *= seed5
	seed6 *= seed6
	seed7 *= seed7
	seed8 *= seed8

	var sh1, sh2 int
	if seed&1 != 0 {
		if seed&2 != 0 {
			sh1 = 4
		} else {
			sh1 = 5
		}
		sh2 = 5
	} else {
		sh1 = 5
		if seed&2 != 0 {
			sh2 = 4
		} else {
			sh2 = 5
		}
	}

	seed1 >>= uint8(sh1)
	seed2 >>= uint8(sh2)
	seed3 >>= uint8(sh1)
	seed4 >>= uint8(sh2)
	seed5 >>= uint8(sh1)
	seed6 >>= uint8(sh2)
	seed7 >>= uint8(sh1)
	seed8 >>= uint8(sh2)

	a := int(seed1)*x + int(seed2)*y + int(rnum>>14)
	b := int(seed3)*x + int(seed4)*y + int(rnum>>10)
	c := int(seed5)*x + int(seed6)*y + int(rnum>>6)
	d := int(seed7)*x + int(seed8)*y + int(rnum>>2)

	a &= 0x3F
	b &= 0x3F
	c &= 0x3F
	d &= 0x3F

	if partitionCount <= 3 {
		d = 0
	}
	if partitionCount <= 2 {
		c = 0
	}
	if partitionCount <= 1 {
		b = 0
	}

	switch {
	case a >= b && a >= c && a >= d:
		return 0
	case b >= c && b >= d:
		return 1
	case c >= d:
		return 2
	default:
		return 3
	}
}

// partitionTables[k] holds the NumPartitionPatterns candidate [16]uint8
// assignments for a k-subset format (k in {2,3}); built once at package
// init rather than per block (spec.md §7's "validated/built once, reused
// per block").
var partitionTables [4][NumPartitionPatterns][16]uint8

func init() {
	for k := 2; k <= 3; k++ {
		for pattern := 0; pattern < NumPartitionPatterns; pattern++ {
			var assign [16]uint8
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					assign[y*4+x] = selectPartitionTexel(pattern, x, y, k)
				}
			}
			partitionTables[k][pattern] = assign
		}
	}
}

// PartitionTable returns the candidate partition assignment for pattern
// (0 <= pattern < NumPartitionPatterns) and a k-subset format. k == 1
// always returns the all-zero assignment, independent of pattern.
func PartitionTable(k, pattern int) [16]uint8 {
	if k <= 1 {
		return [16]uint8{}
	}
	return partitionTables[k][pattern%NumPartitionPatterns]
}
