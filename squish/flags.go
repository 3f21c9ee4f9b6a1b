package squish

// Flags is a bitset of per-block encode options (spec.md §6).
type Flags uint32

const (
	// FlagClusterFit enables the exhaustive cluster fitter (spec.md §4.5).
	FlagClusterFit Flags = 1 << 0
	// FlagRangeFit enables the fast axis-projection fallback (spec.md §4.4).
	FlagRangeFit Flags = 1 << 1
	// FlagIterativeRefine re-runs cluster-fit from the quantized
	// codebook's axis, up to IterativeRefineCap times or until no
	// improvement (spec.md §6).
	FlagIterativeRefine Flags = 1 << 2
	// FlagSRGBMetric selects the sRGB error LUT instead of the linear one
	// (spec.md §4.6).
	FlagSRGBMetric Flags = 1 << 3
	// FlagWeightByAlpha multiplies each pixel's fitting weight by its
	// alpha (spec.md §6).
	FlagWeightByAlpha Flags = 1 << 4
	// FlagExcludeTransparent zeroes the fitting weight of pixels below
	// the format's transparency threshold (spec.md §6).
	FlagExcludeTransparent Flags = 1 << 5
)

// IterativeRefineCap is the fixed iteration cap for FlagIterativeRefine
// (spec.md §6/§9: "cap at 8 iterations... canonical policy").
const IterativeRefineCap = 8

// TransparentAlphaThreshold is the format-independent alpha cutoff below
// which a pixel is considered transparent for FlagExcludeTransparent
// (spec.md §3's "derived predicate"). squish-family formats conventionally
// use the single-bit DXT1 threshold of 0.5/255.
const TransparentAlphaThreshold = float32(0.5 / 255.0)
