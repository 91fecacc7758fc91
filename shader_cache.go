package glbridge

// ShaderCache lazily materializes at most one backend shader per built-in
// ShaderKind, for a single backend association at a time.
//
// The kind space is closed and small, so the cache is a fixed slot array
// indexed by kind rather than a map: no hashing, no key management, and
// "is everything ready" is a constant-size check.
//
// A cache is keyed 1:1 with one backend instance. Handles cached under a
// previous backend belong to that backend and must never be reused, so
// SetBackend clears all slots as a mandatory side effect of rebinding.
// The backend reference is non-owning; the cache must not outlive the
// backend it points at, and rebinding is the only sanctioned way to change
// the reference.
//
// ShaderCache is NOT safe for concurrent use; like Registry, it belongs to
// the thread that owns the backend context.
type ShaderCache struct {
	backend Backend
	slots   [NumShaderKinds]Handle
	filled  [NumShaderKinds]bool
}

// NewShaderCache creates a cache bound to backend.
// A nil backend leaves the cache unbound; GetShader returns InvalidHandle
// until SetBackend provides one.
func NewShaderCache(backend Backend) *ShaderCache {
	return &ShaderCache{backend: backend}
}

// SetBackend rebinds the cache to a new backend instance.
//
// Any live slots are cleared first — destroyed through the OLD backend,
// which still owns them — before the reference changes. This happens even
// when rebinding to the same value; callers wanting a plain flush should
// use Clear instead.
func (c *ShaderCache) SetBackend(backend Backend) {
	c.Clear()
	c.backend = backend
}

// GetShader returns the cached handle for kind, creating it on first use.
//
// On creation failure the slot caches InvalidHandle so that repeated calls
// do not retry indefinitely against a backend that cannot satisfy the
// request; callers that want a retry must Clear first. An unbound cache
// returns InvalidHandle without filling the slot, so creation is attempted
// once a backend arrives.
func (c *ShaderCache) GetShader(kind ShaderKind) Handle {
	if !kind.Valid() {
		return InvalidHandle
	}
	if c.filled[kind] {
		return c.slots[kind]
	}
	if c.backend == nil {
		return InvalidHandle
	}
	h := c.backend.CreateShader(kind)
	if !h.IsValid() {
		Logger().Warn("shader creation failed", "kind", kind.String())
	}
	c.slots[kind] = h
	c.filled[kind] = true
	return h
}

// HasShader reports whether the slot for kind holds a live handle.
// It never triggers creation, and a cached failure counts as absent.
func (c *ShaderCache) HasShader(kind ShaderKind) bool {
	return kind.Valid() && c.filled[kind] && c.slots[kind].IsValid()
}

// Ready reports whether every kind holds a live handle.
func (c *ShaderCache) Ready() bool {
	for kind := ShaderColor; kind.Valid(); kind++ {
		if !c.HasShader(kind) {
			return false
		}
	}
	return true
}

// Clear destroys every live slot through the current backend and empties
// all slots, including cached failures. The backend reference is kept.
// Clearing an already-empty cache is a no-op.
func (c *ShaderCache) Clear() {
	for i := range c.slots {
		if c.filled[i] && c.slots[i].IsValid() && c.backend != nil {
			c.backend.Destroy(c.slots[i])
		}
		c.slots[i] = InvalidHandle
		c.filled[i] = false
	}
}
