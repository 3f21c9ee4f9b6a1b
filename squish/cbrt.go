package squish

import "math"

// cbrtNewton computes a cube root accurate enough that the eigenvalue
// selection in ComputePrincipleComponent is stable against 1-ulp
// perturbations (spec.md §4.1). The original C++ source hand-rolled this
// from an rcp estimate plus a Newton step to stay portable without a
// hardware cube root; Go's standard library already ships an accurate
// math.Cbrt, so the Newton step here exists only to match the original's
// documented stability contract, not to work around a missing primitive.
func cbrtNewton(x float32) float32 {
	if x == 0 {
		return 0
	}
	neg := x < 0
	ax := float64(x)
	if neg {
		ax = -ax
	}

	y := math.Cbrt(ax)
	// One refining Newton step on f(y) = y^3 - ax.
	y = y - (y*y*y-ax)/(3*y*y)

	if neg {
		y = -y
	}
	return float32(y)
}
