package backend

import (
	"bytes"
	"slices"
	"testing"

	"github.com/gogpu/glbridge"
)

func TestSoftwareBackendName(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestSoftwareBackendInit(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	// Init is idempotent.
	if err := b.Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	b.Close()
}

func TestSoftwareBackendCreateRenderTarget(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	h := b.CreateRenderTarget(64, 32)
	if !h.IsValid() {
		t.Fatal("CreateRenderTarget(64, 32) returned InvalidHandle")
	}

	img := b.RenderTarget(h)
	if img == nil {
		t.Fatal("RenderTarget() returned nil for live handle")
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 32 {
		t.Errorf("target size = %dx%d, want 64x32", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := len(b.ReadPixels(h)); got != 64*32*4 {
		t.Errorf("ReadPixels length = %d, want %d", got, 64*32*4)
	}
}

func TestSoftwareBackendRejectsBadSizes(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	for _, tt := range []struct{ w, h int }{
		{0, 10}, {10, 0}, {-1, 10}, {10, -1}, {0, 0},
	} {
		if h := b.CreateRenderTarget(tt.w, tt.h); h.IsValid() {
			t.Errorf("CreateRenderTarget(%d, %d) = %v, want InvalidHandle", tt.w, tt.h, h)
		}
	}
	if b.TargetCount() != 0 {
		t.Errorf("TargetCount() = %d after rejected creations, want 0", b.TargetCount())
	}
}

func TestSoftwareBackendUseBeforeInit(t *testing.T) {
	b := NewSoftwareBackend()

	if h := b.CreateRenderTarget(16, 16); h.IsValid() {
		t.Error("CreateRenderTarget before Init returned a valid handle")
	}
	if h := b.CreateShader(glbridge.ShaderColor); h.IsValid() {
		t.Error("CreateShader before Init returned a valid handle")
	}
	// Destroy before Init must not panic.
	b.Destroy(glbridge.Handle(1))
}

func TestSoftwareBackendCreateShaderAllKinds(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	for kind := glbridge.ShaderColor; kind.Valid(); kind++ {
		h := b.CreateShader(kind)
		if !h.IsValid() {
			t.Errorf("CreateShader(%v) returned InvalidHandle", kind)
			continue
		}
		got, ok := b.ShaderKindOf(h)
		if !ok || got != kind {
			t.Errorf("ShaderKindOf(%v) = (%v, %v), want (%v, true)", h, got, ok, kind)
		}
	}
	if b.ShaderCount() != glbridge.NumShaderKinds {
		t.Errorf("ShaderCount() = %d, want %d", b.ShaderCount(), glbridge.NumShaderKinds)
	}
}

func TestSoftwareBackendCreateShaderUnknownKind(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	if h := b.CreateShader(glbridge.ShaderKind(99)); h.IsValid() {
		t.Error("CreateShader(unknown) returned a valid handle")
	}
}

func TestSoftwareBackendDestroyIdempotent(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	h := b.CreateRenderTarget(8, 8)
	b.Destroy(h)
	if b.RenderTarget(h) != nil {
		t.Error("RenderTarget() returned pixmap for destroyed handle")
	}

	// Double destroy and destroy of the invalid handle are no-ops.
	b.Destroy(h)
	b.Destroy(glbridge.InvalidHandle)
	if b.TargetCount() != 0 {
		t.Errorf("TargetCount() = %d, want 0", b.TargetCount())
	}
}

func TestSoftwareBackendBlit(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	src := b.CreateRenderTarget(2, 2)
	dst := b.CreateRenderTarget(4, 4)

	// Fill the source with solid red.
	img := b.RenderTarget(src)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
		img.Pix[i+3] = 0xff
	}

	if !b.Blit(dst, src) {
		t.Fatal("Blit(dst, src) = false, want true")
	}

	out := b.ReadPixels(dst)
	if !bytes.Contains(out, []byte{0xff, 0x00, 0x00, 0xff}) {
		t.Error("blit did not propagate source pixels into destination")
	}

	// Blitting with a dead handle fails cleanly.
	b.Destroy(src)
	if b.Blit(dst, src) {
		t.Error("Blit with destroyed source = true, want false")
	}
	if b.Blit(glbridge.InvalidHandle, dst) {
		t.Error("Blit with invalid destination = true, want false")
	}
}

func TestSoftwareBackendAsBridgeBackend(t *testing.T) {
	// The software backend satisfies the bridge contract end to end.
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	session := glbridge.NewSession(b)
	defer session.Shutdown()

	h := session.CreateFramebuffer(7, 512, 256)
	if !h.IsValid() {
		t.Fatal("CreateFramebuffer failed")
	}
	if session.Framebuffer(7) != h {
		t.Error("lookup mismatch")
	}
	sh := session.DefaultShader(glbridge.ShaderTexture)
	if !sh.IsValid() {
		t.Error("DefaultShader(texture) failed against software backend")
	}
	if session.DefaultShader(glbridge.ShaderTexture) != sh {
		t.Error("shader not cached")
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software backend is auto-registered via init().
	if !IsRegistered(BackendSoftware) {
		t.Error("software backend should be auto-registered")
	}

	b := Get(BackendSoftware)
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Errorf("Get(nonexistent) = %v, want nil", b)
	}
}

func TestRegistryAvailable(t *testing.T) {
	names := Available()
	if !slices.Contains(names, BackendSoftware) {
		t.Errorf("Available() = %v, should contain %q", names, BackendSoftware)
	}
}

func TestRegistryRegisterUnregister(t *testing.T) {
	called := false
	Register("test-backend", func() GraphicsBackend {
		called = true
		return NewSoftwareBackend()
	})
	t.Cleanup(func() { Unregister("test-backend") })

	if !IsRegistered("test-backend") {
		t.Fatal("test-backend not registered")
	}
	if b := Get("test-backend"); b == nil {
		t.Fatal("Get(test-backend) returned nil")
	}
	if !called {
		t.Error("factory was not invoked")
	}

	Unregister("test-backend")
	if IsRegistered("test-backend") {
		t.Error("test-backend still registered after Unregister")
	}
}

func TestDefaultPrefersPriorityOrder(t *testing.T) {
	// With only the software backend present, Default returns it.
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault panicked with backends registered: %v", r)
		}
	}()
	b := MustDefault()
	if b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestInitDefaultFallsBack(t *testing.T) {
	// Register a high-priority backend whose Init always fails; InitDefault
	// must fall through to a working one.
	Register(BackendWGPU, func() GraphicsBackend {
		return &failingBackend{}
	})
	t.Cleanup(func() { Unregister(BackendWGPU) })

	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()
	if b.Name() != BackendSoftware {
		t.Errorf("InitDefault() selected %q, want fallback to %q", b.Name(), BackendSoftware)
	}
}

// failingBackend fails Init unconditionally.
type failingBackend struct{}

func (f *failingBackend) Name() string { return "failing" }
func (f *failingBackend) Init() error  { return ErrBackendNotAvailable }
func (f *failingBackend) Close()       {}
func (f *failingBackend) CreateRenderTarget(width, height int) glbridge.Handle {
	return glbridge.InvalidHandle
}
func (f *failingBackend) CreateShader(kind glbridge.ShaderKind) glbridge.Handle {
	return glbridge.InvalidHandle
}
func (f *failingBackend) Destroy(h glbridge.Handle) {}
