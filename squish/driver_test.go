package squish_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-squish/squish/squish"
)

func TestDriverEncodeImageBlockCount(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 9, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 40), B: 128, A: 255})
		}
	}

	d := squish.Driver{Format: squish.FormatBC1, Metric: fullMetric, Flags: squish.FlagClusterFit}
	out, err := d.EncodeImage(img)
	if err != nil {
		t.Fatalf("EncodeImage: unexpected error %v", err)
	}

	blocksX := (9 + 3) / 4
	blocksY := (5 + 3) / 4
	want := blocksX * blocksY * squish.FormatBC1.BlockBytes
	if len(out) != want {
		t.Fatalf("EncodeImage output length: got %d want %d", len(out), want)
	}
}

func TestDriverEncodeImageEmptyBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	d := squish.Driver{Format: squish.FormatBC1, Metric: fullMetric, Flags: squish.FlagClusterFit}
	out, err := d.EncodeImage(img)
	if err != nil {
		t.Fatalf("EncodeImage: unexpected error %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected zero-length output for an empty image, got %d bytes", len(out))
	}
}

func TestDriverEncodeImageLargeParallelPath(t *testing.T) {
	// 32x32 is 64 blocks, past the sequential/parallel split threshold.
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 7), B: uint8((x + y) * 3), A: 255})
		}
	}

	d := squish.Driver{Format: squish.FormatBC1, Metric: fullMetric, Flags: squish.FlagClusterFit}
	out, err := d.EncodeImage(img)
	if err != nil {
		t.Fatalf("EncodeImage: unexpected error %v", err)
	}
	want := 8 * 8 * squish.FormatBC1.BlockBytes
	if len(out) != want {
		t.Fatalf("EncodeImage output length: got %d want %d", len(out), want)
	}
}
