package squish_test

import (
	"math"
	"testing"

	"github.com/go-squish/squish/squish"
)

func TestComputeWeightedCovariance3Symmetric(t *testing.T) {
	points := []squish.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	weights := []float32{1, 1, 1, 1}

	cov := squish.ComputeWeightedCovariance3(points, weights)
	// XZ and YZ must be zero: every point's Z is zero.
	if cov[2] != 0 || cov[4] != 0 {
		t.Fatalf("expected zero Z covariance terms, got XZ=%v YZ=%v", cov[2], cov[4])
	}
}

func TestComputePrincipleComponentAxisAligned(t *testing.T) {
	// A subset stretched purely along X should yield an axis with a
	// dominant X component.
	points := []squish.Vec3{
		{X: -1, Y: 0, Z: 0},
		{X: -0.5, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	weights := []float32{1, 1, 1, 1}

	cov := squish.ComputeWeightedCovariance3(points, weights)
	axis := squish.ComputePrincipleComponent(cov)

	if math.Abs(float64(axis.X)) <= math.Abs(float64(axis.Y)) ||
		math.Abs(float64(axis.X)) <= math.Abs(float64(axis.Z)) {
		t.Fatalf("expected X-dominant axis, got %+v", axis)
	}
}

func TestComputePrincipleComponent4IgnoresAlphaAxis(t *testing.T) {
	points := []squish.Vec4{
		{X: -1, Y: 0, Z: 0, W: 1},
		{X: 1, Y: 0, Z: 0, W: 0},
	}
	weights := []float32{1, 1}

	cov := squish.ComputeWeightedCovariance4(points, weights)
	axis := squish.ComputePrincipleComponent4(cov)

	if axis.W != 0 {
		t.Fatalf("expected zero W lane in the RGB-only axis, got %v", axis.W)
	}
}
