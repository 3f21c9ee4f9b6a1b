package squish_test

import (
	"testing"

	"github.com/go-squish/squish/squish"
)

func onePixel(r, g, b, a float32) squish.Pixel {
	return squish.Pixel{R: r, G: g, B: b, A: a, Present: true}
}

func TestNewPaletteSetDedupesIdenticalPixels(t *testing.T) {
	var pixels [16]squish.Pixel
	for i := range pixels {
		pixels[i] = onePixel(1, 0, 0, 1)
	}
	var partition [16]uint8

	ps := squish.NewPaletteSet(&pixels, 0xFFFF, partition, squish.FormatBC1, 0)
	if len(ps.Points[0]) != 1 {
		t.Fatalf("expected 16 identical pixels to dedupe to 1 point, got %d", len(ps.Points[0]))
	}
	if ps.Weights[0][0] != 16 {
		t.Fatalf("expected the single point's weight to be 16, got %v", ps.Weights[0][0])
	}
}

func TestNewPaletteSetMaskExcludesPixels(t *testing.T) {
	var pixels [16]squish.Pixel
	for i := range pixels {
		pixels[i] = onePixel(float32(i)/15, 0, 0, 1)
	}
	var partition [16]uint8

	ps := squish.NewPaletteSet(&pixels, 0x0001, partition, squish.FormatBC1, 0)
	if len(ps.Points[0]) != 1 {
		t.Fatalf("expected only the masked-in pixel to contribute a point, got %d points", len(ps.Points[0]))
	}
}

func TestNewPaletteSetPartitionsIntoSubsets(t *testing.T) {
	var pixels [16]squish.Pixel
	var partition [16]uint8
	for i := range pixels {
		pixels[i] = onePixel(float32(i)/15, 0, 0, 1)
		if i >= 8 {
			partition[i] = 1
		}
	}

	ps := squish.NewPaletteSet(&pixels, 0xFFFF, partition, squish.FormatBC7TwoSubset, 0)
	if ps.IsEmpty(0) || ps.IsEmpty(1) {
		t.Fatalf("expected both subsets to be non-empty")
	}
	for i := 0; i < 8; i++ {
		if ps.Remap[i].Subset != 0 {
			t.Fatalf("pixel %d: expected subset 0, got %d", i, ps.Remap[i].Subset)
		}
	}
	for i := 8; i < 16; i++ {
		if ps.Remap[i].Subset != 1 {
			t.Fatalf("pixel %d: expected subset 1, got %d", i, ps.Remap[i].Subset)
		}
	}
}

func TestNewPaletteSetExcludeTransparentZeroesWeight(t *testing.T) {
	var pixels [16]squish.Pixel
	for i := range pixels {
		pixels[i] = onePixel(1, 0, 0, 0)
	}
	var partition [16]uint8

	ps := squish.NewPaletteSet(&pixels, 0xFFFF, partition, squish.FormatBC1, squish.FlagExcludeTransparent)
	if !ps.AnyTransparent {
		t.Fatalf("expected AnyTransparent to be set when every pixel is below the threshold")
	}
	if !ps.IsEmpty(0) {
		t.Fatalf("expected the subset to end up empty once every pixel's weight is zeroed")
	}
}
