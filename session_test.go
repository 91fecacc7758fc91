package glbridge

import "testing"

func TestSessionEndToEnd(t *testing.T) {
	mb := newMockBackend()
	s := NewSession(mb)

	// Legacy code creates framebuffer 7 at 512x256.
	h1 := s.CreateFramebuffer(7, 512, 256)
	if !h1.IsValid() {
		t.Fatal("CreateFramebuffer failed")
	}

	if got := s.Framebuffer(7); got != h1 {
		t.Errorf("Framebuffer(7) = %v, want %v", got, h1)
	}
	w, h, ok := s.FramebufferSize(7)
	if !ok || w != 512 || h != 256 {
		t.Errorf("FramebufferSize(7) = (%d, %d, %v), want (512, 256, true)", w, h, ok)
	}

	s.DeleteFramebuffer(7)
	if got := s.Framebuffer(7); got != InvalidHandle {
		t.Errorf("Framebuffer(7) after delete = %v, want InvalidHandle", got)
	}
	if mb.destroyedCount(h1) != 1 {
		t.Errorf("backend saw %d destroys for %v, want 1", mb.destroyedCount(h1), h1)
	}
}

func TestSessionCreateFailureRegistersNothing(t *testing.T) {
	mb := newMockBackend()
	mb.failTargets = true
	s := NewSession(mb)

	if h := s.CreateFramebuffer(1, 64, 64); h.IsValid() {
		t.Fatalf("CreateFramebuffer under failing backend = %v, want InvalidHandle", h)
	}
	if s.Registry().Len() != 0 {
		t.Error("failed creation left a registry entry")
	}
	if _, _, ok := s.FramebufferSize(1); ok {
		t.Error("failed creation reported as present")
	}
}

func TestSessionIDReuseDestroysPrevious(t *testing.T) {
	mb := newMockBackend()
	s := NewSession(mb)

	h1 := s.CreateFramebuffer(3, 100, 100)
	h2 := s.CreateFramebuffer(3, 200, 200)

	if h1 == h2 {
		t.Fatal("reused id returned the same handle")
	}
	if mb.destroyedCount(h1) != 1 {
		t.Errorf("previous target destroyed %d times, want 1", mb.destroyedCount(h1))
	}
	if got := s.Framebuffer(3); got != h2 {
		t.Errorf("Framebuffer(3) = %v, want %v", got, h2)
	}
	w, h, _ := s.FramebufferSize(3)
	if w != 200 || h != 200 {
		t.Errorf("FramebufferSize(3) = (%d, %d), want (200, 200)", w, h)
	}
}

func TestSessionDeleteUnknownIsNoop(t *testing.T) {
	mb := newMockBackend()
	s := NewSession(mb)

	s.DeleteFramebuffer(77)
	s.DeleteFramebuffer(77)
	if len(mb.destroyed) != 0 {
		t.Errorf("deleting unknown ids destroyed %d handles, want 0", len(mb.destroyed))
	}
}

func TestSessionDefaultShader(t *testing.T) {
	mb := newMockBackend()
	s := NewSession(mb)

	h1 := s.DefaultShader(ShaderMesh)
	h2 := s.DefaultShader(ShaderMesh)
	if h1 != h2 {
		t.Errorf("DefaultShader not cached: %v vs %v", h1, h2)
	}
	if mb.shaderCalls[ShaderMesh] != 1 {
		t.Errorf("creation calls = %d, want 1", mb.shaderCalls[ShaderMesh])
	}
}

func TestSessionShutdown(t *testing.T) {
	mb := newMockBackend()
	s := NewSession(mb)

	fb1 := s.CreateFramebuffer(1, 32, 32)
	fb2 := s.CreateFramebuffer(2, 64, 64)
	sh := s.DefaultShader(ShaderColor)

	s.Shutdown()

	for _, h := range []Handle{fb1, fb2, sh} {
		if mb.destroyedCount(h) != 1 {
			t.Errorf("handle %v destroyed %d times at shutdown, want 1", h, mb.destroyedCount(h))
		}
	}
	if s.Registry().Len() != 0 {
		t.Errorf("registry holds %d entries after Shutdown, want 0", s.Registry().Len())
	}
	if s.Shaders().HasShader(ShaderColor) {
		t.Error("shader cache still filled after Shutdown")
	}

	// Shutdown is idempotent and the session stays usable while the
	// backend is alive.
	s.Shutdown()
	if h := s.CreateFramebuffer(1, 16, 16); !h.IsValid() {
		t.Error("session unusable after Shutdown")
	}
}
