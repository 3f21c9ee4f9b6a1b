package squish_test

import (
	"testing"

	"github.com/go-squish/squish/squish"
)

func TestSingleColorFitExactOnBC1(t *testing.T) {
	q := squish.NewQuantizer(squish.FormatBC1)
	metric := squish.NewVec4(1, 1, 1, 1)

	// Pure red should be representable with near-zero error since BC1's
	// 5/6/5 channels already land exactly on a lattice point for 0/1.
	color := squish.NewVec4(1, 0, 0, 0)
	start, end, _, err := squish.SingleColorFit(color, metric, q, squish.FormatBC1, squish.ComputeGammaLUT(false))

	if err.Value() > 0.01 {
		t.Fatalf("pure red single-color error: got %v, want near 0", err.Value())
	}
	if start.X < 0.9 || end.X < 0.9 {
		t.Fatalf("expected both endpoints near full red, got start=%+v end=%+v", start, end)
	}
}

func TestSingleColorFitDisabledChannelDefaultsOpaque(t *testing.T) {
	q := squish.NewQuantizer(squish.FormatBC1)
	metric := squish.NewVec4(1, 1, 1, 1)

	color := squish.NewVec4(0.5, 0.5, 0.5, 0)
	start, end, _, _ := squish.SingleColorFit(color, metric, q, squish.FormatBC1, squish.ComputeGammaLUT(false))

	// BC1 has no alpha channel; SingleColorFit must default it opaque.
	if start.W != 1 || end.W != 1 {
		t.Fatalf("expected opaque default alpha on a format with no alpha channel, got start.W=%v end.W=%v", start.W, end.W)
	}
}

func TestSingleColorFitMonotoneInAlpha(t *testing.T) {
	q := squish.NewQuantizer(squish.FormatBC3Alpha)
	metric := squish.NewVec4(0, 0, 0, 1)

	lut := squish.ComputeGammaLUT(false)
	_, _, _, errLow := squish.SingleColorFit(squish.NewVec4(0, 0, 0, 0.1), metric, q, squish.FormatBC3Alpha, lut)
	_, _, _, errZero := squish.SingleColorFit(squish.NewVec4(0, 0, 0, 0), metric, q, squish.FormatBC3Alpha, lut)

	if errZero.Value() > errLow.Value() {
		t.Fatalf("exact zero alpha should fit at least as well as a near-zero value: zero=%v low=%v", errZero.Value(), errLow.Value())
	}
}
