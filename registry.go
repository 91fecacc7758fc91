package glbridge

// entry associates one legacy ID with a backend resource and the
// dimensional metadata the legacy API tracked internally.
type entry struct {
	handle Handle
	width  int
	height int
}

// Registry maps legacy integer resource IDs to backend handles.
//
// Legacy-style APIs identify framebuffers and textures by small integer
// IDs; modern backends issue opaque handles. The registry bridges the two:
// call sites register an ID together with the handle the backend actually
// produced, and later calls that receive only the integer ID look the
// handle back up here.
//
// The registry is a pure identity map. It has no capacity limit and no
// eviction: the number of live entries is bounded by the application's own
// resource management. It never destroys backend resources — destruction
// is always the caller's job, performed through the backend around
// Unregister/Clear.
//
// Registry is NOT safe for concurrent use. It is designed to be owned and
// touched exclusively by the thread that owns the backend context; callers
// on other threads must marshal onto that thread.
type Registry struct {
	entries map[uint32]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[uint32]entry),
	}
}

// Register inserts or overwrites the entry for id.
//
// Re-registering an existing id replaces the prior entry silently
// (last-write-wins); legacy APIs reuse integer IDs after destroy/create
// cycles, so replacement is the expected path, not an error. Any handle
// value is accepted, including InvalidHandle, and dimensions are stored as
// given — validation is the caller's responsibility. ID 0 is an ordinary
// key.
func (r *Registry) Register(id uint32, h Handle, width, height int) {
	r.entries[id] = entry{handle: h, width: width, height: height}
}

// Lookup returns the handle registered for id, or InvalidHandle if id is
// not present. A registered-but-invalid handle is indistinguishable from
// absence here; use Dimensions when the distinction matters.
func (r *Registry) Lookup(id uint32) Handle {
	e, ok := r.entries[id]
	if !ok {
		return InvalidHandle
	}
	return e.handle
}

// Dimensions returns the stored width and height for id.
// The bool result distinguishes an absent entry (0, 0, false) from a
// present entry registered with zero dimensions (0, 0, true).
func (r *Registry) Dimensions(id uint32) (width, height int, ok bool) {
	e, ok := r.entries[id]
	if !ok {
		return 0, 0, false
	}
	return e.width, e.height, true
}

// Unregister removes the entry for id. Removing an absent id is a no-op.
// The underlying backend resource is not destroyed; by convention the
// caller destroys it through the backend immediately after this call so no
// dangling entry points at a freed resource.
func (r *Registry) Unregister(id uint32) {
	delete(r.entries, id)
}

// Clear removes every entry. Used at full backend/session shutdown.
// Backend resources are not destroyed; callers tear those down through the
// backend independently.
func (r *Registry) Clear() {
	clear(r.entries)
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
