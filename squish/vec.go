// Package squish implements the rate-distortion encoder core of a
// block-based texture compression codec (the BCn / BPTC lineage): 4-color
// interpolated blocks, 8-alpha interpolated blocks, and partitioned
// palette blocks with shared endpoint bits.
package squish

import "math"

// Vec4 is a 4-lane float32 value type, the scalar reference implementation
// of the SIMD abstraction described by the codec's design notes. Its
// operations are scalar only; the one vectorized path is bestIndex behind
// the goexperiment.simd build tag (see vec_simd_amd64.go), which must stay
// bitwise identical to bestIndexScalar.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec3 is the RGB-only reduction of Vec4, used by the 3x3 covariance path.
type Vec3 struct {
	X, Y, Z float32
}

func NewVec4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

// Splat4 broadcasts a single scalar across all four lanes.
func Splat4(v float32) Vec4 { return Vec4{v, v, v, v} }

func (a Vec4) Add(b Vec4) Vec4 { return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }
func (a Vec4) Sub(b Vec4) Vec4 { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (a Vec4) Mul(b Vec4) Vec4 { return Vec4{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W} }

func (a Vec4) Scale(s float32) Vec4 { return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s} }

// MulAdd returns a*b + c (fused multiply-add, scalar emulation).
func (a Vec4) MulAdd(b, c Vec4) Vec4 {
	return Vec4{
		a.X*b.X + c.X,
		a.Y*b.Y + c.Y,
		a.Z*b.Z + c.Z,
		a.W*b.W + c.W,
	}
}

// NegMulAdd returns c - a*b.
func (a Vec4) NegMulAdd(b, c Vec4) Vec4 {
	return Vec4{
		c.X - a.X*b.X,
		c.Y - a.Y*b.Y,
		c.Z - a.Z*b.Z,
		c.W - a.W*b.W,
	}
}

func (a Vec4) Reciprocal() Vec4 {
	return Vec4{1 / a.X, 1 / a.Y, 1 / a.Z, 1 / a.W}
}

func (a Vec4) Min(b Vec4) Vec4 {
	return Vec4{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z), minf(a.W, b.W)}
}

func (a Vec4) Max(b Vec4) Vec4 {
	return Vec4{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z), maxf(a.W, b.W)}
}

func (a Vec4) Clamp(lo, hi Vec4) Vec4 {
	return a.Max(lo).Min(hi)
}

// HorizontalAdd sums all four lanes into a scalar.
func (a Vec4) HorizontalAdd() float32 { return a.X + a.Y + a.Z + a.W }

// Lane extracts lane i (0..3); any other i returns the W lane.
func (a Vec4) Lane(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	default:
		return a.W
	}
}

// WithLane returns a copy of a with lane i replaced by v.
func (a Vec4) WithLane(i int, v float32) Vec4 {
	switch i {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	case 2:
		a.Z = v
	default:
		a.W = v
	}
	return a
}

// RoundInt rounds each lane to the nearest integer, ties away from zero,
// matching the lattice-snap rounding rule (spec.md SnapToLattice).
func (a Vec4) RoundInt() Vec4 {
	return Vec4{roundAwayFromZero(a.X), roundAwayFromZero(a.Y), roundAwayFromZero(a.Z), roundAwayFromZero(a.W)}
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float32   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Scr4 is a scalar squared-error accumulator. Only the first lane is
// semantically meaningful; horizontal sums are deferred to block-result
// boundaries, matching the upstream squish Scr4 contract (spec.md §3).
type Scr4 struct {
	v float32
}

func NewScr4(v float32) Scr4 { return Scr4{v} }

func (a Scr4) Add(b Scr4) Scr4 { return Scr4{a.v + b.v} }
func (a Scr4) Less(b Scr4) bool { return a.v < b.v }
func (a Scr4) Value() float32   { return a.v }

// LengthSquared returns the scalar squared length of a 4-vector as a Scr4,
// the accumulator type used throughout the fitters for candidate errors.
func LengthSquared(v Vec4) Scr4 {
	return Scr4{v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func roundAwayFromZero(v float32) float32 {
	if v >= 0 {
		return float32(math.Floor(float64(v) + 0.5))
	}
	return float32(math.Ceil(float64(v) - 0.5))
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
