package squish

import "math"

// epsPCA is the numeric tolerance spec.md §4.1 names: single-precision
// epsilon.
const epsPCA = float32(1.1920929e-7)

// Sym3x3 is an upper-triangular 3x3 covariance matrix over a subset's RGB
// channels, stored as six floats: [XX, XY, XZ, YY, YZ, ZZ].
type Sym3x3 [6]float32

// Sym4x4 is the RGBA generalization: ten floats, row-major upper triangle
// [XX, XY, XZ, XW, YY, YZ, YW, ZZ, ZW, WW].
type Sym4x4 [10]float32

// ComputeWeightedCovariance3 computes the weighted centroid and covariance
// of n weighted 3-vectors (spec.md §4.1), ported from
// ComputeWeightedCovariance(int, Vec3 const*, float const*) in
// original_source/maths.cpp.
func ComputeWeightedCovariance3(points []Vec3, weights []float32) Sym3x3 {
	var total float32
	var centroid Vec3
	for i, p := range points {
		w := weights[i]
		total += w
		centroid = centroid.Add(p.Scale(w))
	}
	if total != 0 {
		centroid = centroid.Scale(1 / total)
	}

	var cov Sym3x3
	for i, p := range points {
		a := p.Sub(centroid)
		b := a.Scale(weights[i])

		cov[0] += a.X * b.X
		cov[1] += a.X * b.Y
		cov[2] += a.X * b.Z
		cov[3] += a.Y * b.Y
		cov[4] += a.Y * b.Z
		cov[5] += a.Z * b.Z
	}
	return cov
}

// ComputeWeightedCovariance4 is the RGBA generalization of
// ComputeWeightedCovariance3 (spec.md §3's Sym4x4 data type). The original
// source only special-cases the 3x3 RGB form explicitly; this extends the
// identical accumulation loop to a fourth (alpha) component.
func ComputeWeightedCovariance4(points []Vec4, weights []float32) Sym4x4 {
	var total float32
	var centroid Vec4
	for i, p := range points {
		w := weights[i]
		total += w
		centroid = centroid.Add(p.Scale(w))
	}
	if total != 0 {
		centroid = centroid.Scale(1 / total)
	}

	var cov Sym4x4
	for i, p := range points {
		a := p.Sub(centroid)
		b := a.Scale(weights[i])

		cov[0] += a.X * b.X
		cov[1] += a.X * b.Y
		cov[2] += a.X * b.Z
		cov[3] += a.X * b.W
		cov[4] += a.Y * b.Y
		cov[5] += a.Y * b.Z
		cov[6] += a.Y * b.W
		cov[7] += a.Z * b.Z
		cov[8] += a.Z * b.W
		cov[9] += a.W * b.W
	}
	return cov
}

// getMultiplicity1Evector returns the eigenvector for a simple (non-repeated)
// eigenvalue, via the adjugate-of-(Sigma - lambda*I) construction. Ported
// from GetMultiplicity1Evector in original_source/maths.cpp.
func getMultiplicity1Evector(s Sym3x3, evalue float32) Vec3 {
	var m Sym3x3
	m[0] = s[0] - evalue
	m[1] = s[1]
	m[2] = s[2]
	m[3] = s[3] - evalue
	m[4] = s[4]
	m[5] = s[5] - evalue

	var u Sym3x3
	u[0] = m[3]*m[5] - m[4]*m[4]
	u[1] = m[2]*m[4] - m[1]*m[5]
	u[2] = m[1]*m[4] - m[2]*m[3]
	u[3] = m[0]*m[5] - m[2]*m[2]
	u[4] = m[1]*m[2] - m[4]*m[0]
	u[5] = m[0]*m[3] - m[1]*m[1]

	mc := absf(u[0])
	mi := 0
	for i := 1; i < 6; i++ {
		if c := absf(u[i]); c > mc {
			mc = c
			mi = i
		}
	}

	switch mi {
	case 0:
		return Vec3{u[0], u[1], u[2]}
	case 1, 3:
		return Vec3{u[1], u[3], u[4]}
	default:
		return Vec3{u[2], u[4], u[5]}
	}
}

// getMultiplicity2Evector returns an eigenvector for a doubled eigenvalue
// (spec.md §4.1's fixed tie-break order). Ported from
// GetMultiplicity2Evector in original_source/maths.cpp.
func getMultiplicity2Evector(s Sym3x3, evalue float32) Vec3 {
	var m Sym3x3
	m[0] = s[0] - evalue
	m[1] = s[1]
	m[2] = s[2]
	m[3] = s[3] - evalue
	m[4] = s[4]
	m[5] = s[5] - evalue

	mc := absf(m[0])
	mi := 0
	for i := 1; i < 6; i++ {
		if c := absf(m[i]); c > mc {
			mc = c
			mi = i
		}
	}

	switch mi {
	case 0, 1:
		return Vec3{-m[1], m[0], 0}
	case 2:
		return Vec3{m[2], 0, -m[0]}
	case 3, 4:
		return Vec3{0, -m[4], m[3]}
	default:
		return Vec3{0, -m[5], m[4]}
	}
}

// ComputePrincipleComponent solves the weighted-covariance eigenproblem in
// closed form via the characteristic cubic, exactly as spec.md §4.1
// describes. Ported from ComputePrincipleComponent in
// original_source/maths.cpp.
func ComputePrincipleComponent(s Sym3x3) Vec3 {
	c0 := s[0]*s[3]*s[5] +
		2*s[1]*s[2]*s[4] -
		s[0]*s[4]*s[4] -
		s[3]*s[2]*s[2] -
		s[5]*s[1]*s[1]
	c1 := s[0]*s[3] + s[0]*s[5] + s[3]*s[5] - s[1]*s[1] - s[2]*s[2] - s[4]*s[4]
	c2 := s[0] + s[3] + s[5]

	a := c1 - (1.0/3.0)*c2*c2
	b := (-2.0/27.0)*c2*c2*c2 + (1.0/3.0)*c1*c2 - c0

	q := 0.25*b*b + (1.0/27.0)*a*a*a

	switch {
	case q > epsPCA:
		// Near-identity matrix: triple root.
		return Vec3{1, 1, 1}

	case q < -epsPCA:
		// Three distinct real roots.
		theta := float32(math.Atan2(float64(sqrtf(-q)), float64(-0.5*b)))
		rho := sqrtf(0.25*b*b - q)

		rt := cbrtNewton(rho)
		ct := float32(math.Cos(float64(theta) / 3))
		st := float32(math.Sin(float64(theta) / 3))

		l1 := (1.0/3.0)*c2 + 2*rt*ct
		l2 := (1.0/3.0)*c2 - rt*(ct+sqrt3*st)
		l3 := (1.0/3.0)*c2 - rt*(ct-sqrt3*st)

		if absf(l2) > absf(l1) {
			l1 = l2
		}
		if absf(l3) > absf(l1) {
			l1 = l3
		}

		return getMultiplicity1Evector(s, l1)

	default:
		// Double root.
		var rt float32
		if b < 0 {
			rt = -cbrtNewton(-0.5 * b)
		} else {
			rt = cbrtNewton(0.5 * b)
		}

		l1 := (1.0/3.0)*c2 + rt
		l2 := (1.0/3.0)*c2 - 2*rt

		if absf(l1) > absf(l2) {
			return getMultiplicity2Evector(s, l1)
		}
		return getMultiplicity1Evector(s, l2)
	}
}

// ComputePrincipleComponent4 extracts the RGB principal axis from a 4x4
// weighted covariance by solving only the RGB 3x3 sub-block; the alpha
// row and column are ignored and the returned W lane is always 0 (the
// alpha channel contributes to subset construction and error metrics, not
// to the geometric search axis, matching squish's 3-component axis
// convention used even on 4-component palette fits).
func ComputePrincipleComponent4(s Sym4x4) Vec4 {
	rgb := Sym3x3{s[0], s[1], s[2], s[4], s[5], s[7]}
	axis := ComputePrincipleComponent(rgb)
	return Vec4{axis.X, axis.Y, axis.Z, 0}
}

var sqrt3 = float32(math.Sqrt(3))

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sqrtf(v float32) float32 {
	if v < 0 {
		return 0
	}
	return float32(math.Sqrt(float64(v)))
}
