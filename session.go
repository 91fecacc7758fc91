package glbridge

// Session bundles a registry and a shader cache around one backend
// instance, giving legacy-style call sites a single owner whose lifetime
// brackets all integer-ID traffic.
//
// Historically this state lived in module-level maps reachable from free
// functions, which let it outlive the backend it described. A Session
// makes construction and teardown explicit: create it with the backend,
// shut it down before the backend goes away.
//
// Session is NOT safe for concurrent use; it belongs to the thread that
// owns the backend context.
type Session struct {
	backend Backend
	targets *Registry
	shaders *ShaderCache
}

// NewSession creates a session owning a fresh registry and shader cache,
// both bound to backend.
func NewSession(backend Backend) *Session {
	return &Session{
		backend: backend,
		targets: NewRegistry(),
		shaders: NewShaderCache(backend),
	}
}

// Registry exposes the legacy-ID registry for call sites that manage
// registration directly.
func (s *Session) Registry() *Registry {
	return s.targets
}

// Shaders exposes the default-shader cache.
func (s *Session) Shaders() *ShaderCache {
	return s.shaders
}

// CreateFramebuffer creates a backend render target and registers it under
// the legacy id, mirroring the old create-then-bind calling convention.
//
// On backend failure nothing is registered and InvalidHandle is returned.
// Reusing an id that is still registered replaces the entry; the previous
// backend resource is destroyed first so it cannot leak.
func (s *Session) CreateFramebuffer(id uint32, width, height int) Handle {
	if prev := s.targets.Lookup(id); prev.IsValid() {
		Logger().Debug("framebuffer id reused, destroying previous target", "id", id)
		s.backend.Destroy(prev)
		s.targets.Unregister(id)
	}
	h := s.backend.CreateRenderTarget(width, height)
	if !h.IsValid() {
		Logger().Warn("render target creation failed", "id", id, "width", width, "height", height)
		return InvalidHandle
	}
	s.targets.Register(id, h, width, height)
	return h
}

// Framebuffer returns the backend handle registered under the legacy id,
// or InvalidHandle if the id is unknown.
func (s *Session) Framebuffer(id uint32) Handle {
	return s.targets.Lookup(id)
}

// FramebufferSize returns the dimensions registered for the legacy id.
// ok is false when the id is unknown.
func (s *Session) FramebufferSize(id uint32) (width, height int, ok bool) {
	return s.targets.Dimensions(id)
}

// DeleteFramebuffer destroys the backend resource registered under id and
// removes the entry. Deleting an unknown id is a no-op.
func (s *Session) DeleteFramebuffer(id uint32) {
	h := s.targets.Lookup(id)
	s.targets.Unregister(id)
	if h.IsValid() {
		s.backend.Destroy(h)
	}
}

// DefaultShader returns the cached built-in shader for kind, creating it
// on first use. See ShaderCache.GetShader for the failure contract.
func (s *Session) DefaultShader(kind ShaderKind) Handle {
	return s.shaders.GetShader(kind)
}

// Shutdown destroys every backend resource the session tracks and empties
// both the registry and the shader cache. The session may be reused after
// Shutdown as long as the backend is still alive; typically it is the last
// call before the backend itself is closed.
func (s *Session) Shutdown() {
	for id := range s.targets.entries {
		if h := s.targets.entries[id].handle; h.IsValid() {
			s.backend.Destroy(h)
		}
	}
	s.targets.Clear()
	s.shaders.Clear()
	Logger().Info("bridge session shut down")
}
