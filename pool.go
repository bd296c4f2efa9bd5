package flexel

// Pool caches per-widget state across tree rebuilds, keyed by stable key
// id. The element tree is discarded and rebuilt every tick; anything that
// must outlive a tick — scroll offsets, text buffers, animation clocks —
// lives here instead.
//
// Uses mark-and-sweep: each tick's Acquire calls mark their keys live,
// and Sweep at the end of the tick evicts everything that was not
// touched, running its cleanup if one was registered.
type Pool struct {
	cache    map[string]any
	cleanups map[string]func()
	live     map[string]bool
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{
		cache:    make(map[string]any),
		cleanups: make(map[string]func()),
		live:     make(map[string]bool),
	}
}

// Acquire returns the state cached under key, creating it with factory on
// first use. The key is marked live for the current tick either way.
func (p *Pool) Acquire(key StableKey, factory func() any) any {
	id := key.ID()
	p.live[id] = true

	state, ok := p.cache[id]
	if !ok {
		state = factory()
		p.cache[id] = state
	}
	return state
}

// Acquire is the typed form of Pool.Acquire.
func Acquire[T any](p *Pool, key StableKey, factory func() T) T {
	return p.Acquire(key, func() any { return factory() }).(T)
}

// OnEvict registers a cleanup to run when key is swept. Only the most
// recent registration per key is kept.
func (p *Pool) OnEvict(key StableKey, cleanup func()) {
	p.cleanups[key.ID()] = cleanup
}

// Len returns the number of cached entries.
func (p *Pool) Len() int {
	return len(p.cache)
}

// Sweep evicts every entry whose key was not acquired since the previous
// sweep, running registered cleanups, then resets the live set for the
// next tick.
func (p *Pool) Sweep() {
	for id := range p.cache {
		if !p.live[id] {
			if cleanup, ok := p.cleanups[id]; ok {
				cleanup()
				delete(p.cleanups, id)
			}
			delete(p.cache, id)
		}
	}
	p.live = make(map[string]bool)
}
