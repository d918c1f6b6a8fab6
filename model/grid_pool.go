package model

import "sync"

// ViewportToPool returns a viewport to the pool for reuse
func ViewportToPool(v *Viewport, pool *ViewportPool) {
	if pool == nil || v == nil {
		return
	}

	pool.Put(v)
}

// ViewportPool recycles viewport buffers between frames
type ViewportPool struct {
	pool sync.Pool
}

func NewViewportPool() *ViewportPool {
	return &ViewportPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Viewport{}
			},
		},
	}
}

// Get retrieves a viewport from the pool and fills it from live
func (p *ViewportPool) Get(live []Cell) (*Viewport, error) {
	v := p.pool.Get().(*Viewport)
	if err := v.Fill(live); err != nil {
		p.pool.Put(v)
		return nil, err
	}
	return v, nil
}

// Put returns a viewport to the pool, clearing its state
func (p *ViewportPool) Put(v *Viewport) {
	v.Clear()
	p.pool.Put(v)
}
