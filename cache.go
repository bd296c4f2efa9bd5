package flexel

// TickContext carries per-tick services into build calls and binding
// resolvers: the externally supplied epoch, the style resolver, and an
// epoch-scoped memoization cache for resolutions shared across bindings.
//
// Resolvers are re-invoked every tick and must derive values from live
// external state through the context, never from handles retained across
// ticks.
type TickContext struct {
	// Epoch is the externally supplied integer scoping the cache's
	// validity. It is not a wall clock or frame counter.
	Epoch int64

	// Styles is the explicit style resolver for this driver; there is no
	// process-wide registry.
	Styles *StyleResolver

	cache *memoCache
}

// Memo returns the cached result for key within the current epoch,
// computing and storing it on first use. The cache is invalidated
// wholesale, never partially, whenever the epoch advances.
func (tc *TickContext) Memo(key string, fn func() any) any {
	if tc.cache == nil {
		return fn()
	}
	if v, ok := tc.cache.entries[key]; ok {
		return v
	}
	v := fn()
	tc.cache.entries[key] = v
	return v
}

// Memo is the typed variant of [TickContext.Memo].
func Memo[T any](tc *TickContext, key string, fn func() T) T {
	v := tc.Memo(key, func() any { return fn() })
	return v.(T)
}

// memoCache holds one epoch's shared resolutions.
type memoCache struct {
	epoch   int64
	primed  bool
	entries map[string]any
}

func newMemoCache() *memoCache {
	return &memoCache{entries: make(map[string]any)}
}

// advance invalidates the whole cache when the epoch changes. Re-entering
// the same epoch keeps existing entries.
func (c *memoCache) advance(epoch int64) {
	if c.primed && c.epoch == epoch {
		return
	}
	c.epoch = epoch
	c.primed = true
	c.entries = make(map[string]any)
}
