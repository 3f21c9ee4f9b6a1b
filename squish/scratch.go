package squish

import "sync"

// scratch is one goroutine's per-tile working storage: the pixel/mask
// buffer Driver.EncodeImage fills before calling Encode. Pooling it
// avoids a 16-entry array allocation per tile on the hot path (spec.md
// §5's "scoped acquisition of a per-thread scratch buffer"), the same
// motivation as deepteams-webp's internal/pool package, adapted here
// from a byte-size-bucketed pool to a single fixed-shape struct pool
// since every tile is the same 4x4 shape.
type scratch struct {
	pixels [16]Pixel
	mask   uint16
}

type scratchPool struct {
	pool sync.Pool
}

func newScratchPool() *scratchPool {
	return &scratchPool{
		pool: sync.Pool{
			New: func() any { return new(scratch) },
		},
	}
}

func (p *scratchPool) Get() *scratch {
	return p.pool.Get().(*scratch)
}

func (p *scratchPool) Put(s *scratch) {
	*s = scratch{}
	p.pool.Put(s)
}
