package squish

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// Driver walks an image.Image in 4x4 tiles and dispatches Encode calls
// across a worker pool (spec.md §5). It is intentionally thin - image
// decoding, output-buffer ownership, and format selection are the
// caller's responsibility - matching spec.md §1's framing of the driver
// as an external collaborator with only enough concreteness to compile
// and exercise the core.
type Driver struct {
	Format Format
	Metric Vec4
	Flags  Flags
}

// EncodeImage encodes every 4x4 tile of img (padding partial edge tiles
// with an invalid mask, per spec.md §3's pixel validity bit) into a
// tightly packed byte slice, one Format.BlockBytes block per tile in
// row-major order. Ported from the teacher's sequential-small/parallel-
// large split and atomic next-block counter in astc/codec2d.go's
// EncodeImage, generalized from ASTC's variable block footprint to this
// codec's fixed 4x4 tile.
func (d Driver) EncodeImage(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	blocksX := (width + 3) / 4
	blocksY := (height + 3) / 4
	totalBlocks := blocksX * blocksY

	out := make([]byte, totalBlocks*d.Format.BlockBytes)
	if totalBlocks == 0 {
		return out, nil
	}

	scratch := newScratchPool()

	encodeTile := func(idx int) error {
		bx := idx % blocksX
		by := idx / blocksX

		s := scratch.Get()
		defer scratch.Put(s)

		extractTile(img, bounds, bx*4, by*4, &s.pixels, &s.mask)
		blockOut := out[idx*d.Format.BlockBytes : (idx+1)*d.Format.BlockBytes]
		_, err := Encode(blockOut, &s.pixels, s.mask, d.Format, d.Metric, d.Flags)
		return err
	}

	procs := runtime.GOMAXPROCS(0)
	if procs < 1 {
		procs = 1
	}
	if procs > totalBlocks {
		procs = totalBlocks
	}

	if procs == 1 || totalBlocks < 32 {
		for idx := 0; idx < totalBlocks; idx++ {
			if err := encodeTile(idx); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	var next uint32
	var stop uint32
	var firstErr error
	var errOnce sync.Once

	var wg sync.WaitGroup
	wg.Add(procs)
	for w := 0; w < procs; w++ {
		go func() {
			defer wg.Done()
			for {
				if atomic.LoadUint32(&stop) != 0 {
					return
				}
				idx := int(atomic.AddUint32(&next, 1) - 1)
				if idx >= totalBlocks {
					return
				}
				if err := encodeTile(idx); err != nil {
					errOnce.Do(func() {
						firstErr = err
						atomic.StoreUint32(&stop, 1)
					})
					return
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// extractTile reads a 4x4 pixel tile at (x0, y0) from img into pixels,
// normalizing each channel to [0,1] and marking texels outside bounds
// (a partial edge tile) as invalid via mask.
func extractTile(img image.Image, bounds image.Rectangle, x0, y0 int, pixels *[16]Pixel, mask *uint16) {
	*mask = 0
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			i := dy*4 + dx
			x, y := bounds.Min.X+x0+dx, bounds.Min.Y+y0+dy
			if x >= bounds.Max.X || y >= bounds.Max.Y {
				pixels[i] = Pixel{}
				continue
			}
			r, g, b, a := img.At(x, y).RGBA()
			pixels[i] = Pixel{
				R:       float32(r) / 65535,
				G:       float32(g) / 65535,
				B:       float32(b) / 65535,
				A:       float32(a) / 65535,
				Present: true,
			}
			*mask |= 1 << uint(i)
		}
	}
}
