package backend

import (
	"image"

	"github.com/gogpu/naga"
	"golang.org/x/image/draw"

	"github.com/gogpu/glbridge"
	"github.com/gogpu/glbridge/internal/shaders"
)

// SoftwareBackend is a CPU-based resource backend.
//
// Render targets are plain *image.RGBA pixmaps, and shader creation
// validates the built-in WGSL through naga without generating code. It is
// always available and serves as the reference implementation for backend
// behavior under test.
type SoftwareBackend struct {
	initialized bool
	nextHandle  uint64
	targets     map[glbridge.Handle]*image.RGBA
	shaders     map[glbridge.Handle]glbridge.ShaderKind
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() GraphicsBackend {
		return NewSoftwareBackend()
	})
}

// NewSoftwareBackend creates a new software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	if b.initialized {
		return nil
	}
	b.targets = make(map[glbridge.Handle]*image.RGBA)
	b.shaders = make(map[glbridge.Handle]glbridge.ShaderKind)
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.targets = nil
	b.shaders = nil
	b.initialized = false
}

// mint issues the next handle. Handles start at 1 so the zero value stays
// the invalid sentinel.
func (b *SoftwareBackend) mint() glbridge.Handle {
	b.nextHandle++
	return glbridge.Handle(b.nextHandle)
}

// CreateRenderTarget allocates a CPU pixmap of the given dimensions.
// Returns InvalidHandle before Init or for non-positive dimensions.
func (b *SoftwareBackend) CreateRenderTarget(width, height int) glbridge.Handle {
	if !b.initialized {
		glbridge.Logger().Warn("software: CreateRenderTarget before Init")
		return glbridge.InvalidHandle
	}
	if width <= 0 || height <= 0 {
		glbridge.Logger().Warn("software: rejected render target size", "width", width, "height", height)
		return glbridge.InvalidHandle
	}
	h := b.mint()
	b.targets[h] = image.NewRGBA(image.Rect(0, 0, width, height))
	glbridge.Logger().Debug("software: created render target", "handle", uint64(h), "width", width, "height", height)
	return h
}

// CreateShader validates the built-in WGSL for kind through naga
// (parse, lower to IR, validate) and mints a handle for it. No code is
// generated; the software backend only needs to know the source is sound.
// Returns InvalidHandle on validation failure or for an unknown kind.
func (b *SoftwareBackend) CreateShader(kind glbridge.ShaderKind) glbridge.Handle {
	if !b.initialized {
		glbridge.Logger().Warn("software: CreateShader before Init")
		return glbridge.InvalidHandle
	}
	src := shaders.Source(kind)
	if src == "" {
		glbridge.Logger().Warn("software: unknown shader kind", "kind", int(kind))
		return glbridge.InvalidHandle
	}

	ast, err := naga.Parse(src)
	if err != nil {
		glbridge.Logger().Warn("software: shader parse failed", "kind", kind.String(), "err", err)
		return glbridge.InvalidHandle
	}
	module, err := naga.LowerWithSource(ast, src)
	if err != nil {
		glbridge.Logger().Warn("software: shader lowering failed", "kind", kind.String(), "err", err)
		return glbridge.InvalidHandle
	}
	verrs, err := naga.Validate(module)
	if err != nil || len(verrs) > 0 {
		glbridge.Logger().Warn("software: shader validation failed", "kind", kind.String(), "err", err, "issues", len(verrs))
		return glbridge.InvalidHandle
	}

	h := b.mint()
	b.shaders[h] = kind
	glbridge.Logger().Debug("software: created shader", "handle", uint64(h), "kind", kind.String())
	return h
}

// Destroy releases the resource behind h. Destroying InvalidHandle or an
// already-destroyed handle is a no-op.
func (b *SoftwareBackend) Destroy(h glbridge.Handle) {
	if !h.IsValid() || !b.initialized {
		return
	}
	delete(b.targets, h)
	delete(b.shaders, h)
}

// RenderTarget returns the pixmap behind a render target handle, or nil
// if h does not name a live render target. The pixmap is shared, not
// copied; legacy readback paths draw into it directly.
func (b *SoftwareBackend) RenderTarget(h glbridge.Handle) *image.RGBA {
	return b.targets[h]
}

// ShaderKindOf returns the kind a live shader handle was created for.
// ok is false for anything that is not a live shader handle.
func (b *SoftwareBackend) ShaderKindOf(h glbridge.Handle) (glbridge.ShaderKind, bool) {
	kind, ok := b.shaders[h]
	return kind, ok
}

// Blit scales the src render target into dst, the software analogue of a
// legacy framebuffer blit. Returns false when either handle does not name
// a live render target.
func (b *SoftwareBackend) Blit(dst, src glbridge.Handle) bool {
	dstImg := b.targets[dst]
	srcImg := b.targets[src]
	if dstImg == nil || srcImg == nil {
		return false
	}
	draw.ApproxBiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Src, nil)
	return true
}

// ReadPixels returns the raw RGBA bytes of a render target, or nil if h
// does not name a live render target. The slice aliases the target's
// backing store.
func (b *SoftwareBackend) ReadPixels(h glbridge.Handle) []byte {
	img := b.targets[h]
	if img == nil {
		return nil
	}
	return img.Pix
}

// TargetCount returns the number of live render targets (for testing).
func (b *SoftwareBackend) TargetCount() int {
	return len(b.targets)
}

// ShaderCount returns the number of live shaders (for testing).
func (b *SoftwareBackend) ShaderCount() int {
	return len(b.shaders)
}
