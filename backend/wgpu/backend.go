// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/glbridge"
	"github.com/gogpu/glbridge/backend"
	"github.com/gogpu/glbridge/internal/shaders"
)

// init registers the wgpu backend on package import.
func init() {
	backend.Register(backend.BackendWGPU, func() backend.GraphicsBackend {
		return New()
	})
}

// renderTarget bundles a HAL texture with its render-attachment view.
type renderTarget struct {
	tex    hal.Texture
	view   hal.TextureView
	width  uint32
	height uint32
}

// Backend is the GPU resource backend on gogpu/wgpu HAL.
//
// It mints one handle per created resource and owns the HAL objects
// behind them until Destroy or Close. The device is created by Init, or
// borrowed from a host application via SetDeviceProvider.
type Backend struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	// externalDevice is true when using a shared device that must not be
	// destroyed on Close.
	externalDevice bool
	initialized    bool

	nextHandle uint64
	targets    map[glbridge.Handle]*renderTarget
	shaders    map[glbridge.Handle]hal.ShaderModule
}

// New creates an uninitialized wgpu backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// Init creates a standalone instance, adapter, and device.
// Discrete and integrated GPUs are preferred over software adapters.
func (b *Backend) Init() error {
	if b.initialized {
		return nil
	}

	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("%w: vulkan HAL backend not registered", backend.ErrBackendNotAvailable)
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("%w: create instance: %w", backend.ErrBackendNotAvailable, err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("%w: no GPU adapters found", backend.ErrBackendNotAvailable)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("%w: open device: %w", backend.ErrBackendNotAvailable, err)
	}

	b.instance = instance
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.attach()
	glbridge.Logger().Info("wgpu: backend initialized", "gpu", selected.Info.Name)
	return nil
}

// InitWithDevice initializes the backend on an externally owned HAL
// device and queue. The device is not destroyed on Close. Used for
// device sharing and for tests running against the noop HAL backend.
func (b *Backend) InitWithDevice(device hal.Device, queue hal.Queue) error {
	if device == nil || queue == nil {
		return fmt.Errorf("%w: nil device or queue", backend.ErrBackendNotAvailable)
	}
	b.Close()
	b.device = device
	b.queue = queue
	b.externalDevice = true
	b.attach()
	return nil
}

// SetDeviceProvider switches the backend to a shared GPU device from a
// host application. The provider must expose HAL types via HalDevice()
// and HalQueue() in addition to the gpucontext.DeviceProvider surface.
func (b *Backend) SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	if err := b.InitWithDevice(device, queue); err != nil {
		return err
	}
	glbridge.Logger().Info("wgpu: switched to shared GPU device")
	return nil
}

// attach finishes initialization once a device and queue are in place.
func (b *Backend) attach() {
	b.targets = make(map[glbridge.Handle]*renderTarget)
	b.shaders = make(map[glbridge.Handle]hal.ShaderModule)
	b.initialized = true
}

// Close destroys every live resource, then the device and instance if the
// backend owns them. Closing an uninitialized backend is a no-op.
func (b *Backend) Close() {
	if !b.initialized {
		return
	}
	for h := range b.targets {
		b.destroyTarget(h)
	}
	for h, module := range b.shaders {
		b.device.DestroyShaderModule(module)
		delete(b.shaders, h)
	}
	if !b.externalDevice {
		if b.device != nil {
			b.device.Destroy()
		}
		if b.instance != nil {
			b.instance.Destroy()
		}
	}
	b.device = nil
	b.queue = nil
	b.instance = nil
	b.externalDevice = false
	b.initialized = false
}

// mint issues the next handle. Handles start at 1 so the zero value stays
// the invalid sentinel.
func (b *Backend) mint() glbridge.Handle {
	b.nextHandle++
	return glbridge.Handle(b.nextHandle)
}

// CreateRenderTarget creates an RGBA8 render-attachment texture of the
// given dimensions with a copy-src usage for readback, plus its view.
// Returns InvalidHandle before Init or on device failure.
func (b *Backend) CreateRenderTarget(width, height int) glbridge.Handle {
	if !b.initialized {
		glbridge.Logger().Warn("wgpu: CreateRenderTarget before Init")
		return glbridge.InvalidHandle
	}
	if width <= 0 || height <= 0 {
		glbridge.Logger().Warn("wgpu: rejected render target size", "width", width, "height", height)
		return glbridge.InvalidHandle
	}
	w, h := uint32(width), uint32(height)

	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "glbridge_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		glbridge.Logger().Warn("wgpu: create render target texture failed", "err", err)
		return glbridge.InvalidHandle
	}
	view, err := b.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "glbridge_target_view",
	})
	if err != nil {
		b.device.DestroyTexture(tex)
		glbridge.Logger().Warn("wgpu: create render target view failed", "err", err)
		return glbridge.InvalidHandle
	}

	handle := b.mint()
	b.targets[handle] = &renderTarget{tex: tex, view: view, width: w, height: h}
	glbridge.Logger().Debug("wgpu: created render target", "handle", uint64(handle), "width", width, "height", height)
	return handle
}

// CreateShader compiles the built-in WGSL for kind to SPIR-V via naga and
// uploads it as a HAL shader module. Returns InvalidHandle before Init,
// for an unknown kind, or on compile/upload failure.
func (b *Backend) CreateShader(kind glbridge.ShaderKind) glbridge.Handle {
	if !b.initialized {
		glbridge.Logger().Warn("wgpu: CreateShader before Init")
		return glbridge.InvalidHandle
	}
	src := shaders.Source(kind)
	if src == "" {
		glbridge.Logger().Warn("wgpu: unknown shader kind", "kind", int(kind))
		return glbridge.InvalidHandle
	}

	spirvCode, err := compileToSPIRV(src)
	if err != nil {
		glbridge.Logger().Warn("wgpu: shader compile failed", "kind", kind.String(), "err", err)
		return glbridge.InvalidHandle
	}
	module, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "glbridge_shader_" + kind.String(),
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
	if err != nil {
		glbridge.Logger().Warn("wgpu: create shader module failed", "kind", kind.String(), "err", err)
		return glbridge.InvalidHandle
	}

	handle := b.mint()
	b.shaders[handle] = module
	glbridge.Logger().Debug("wgpu: created shader", "handle", uint64(handle), "kind", kind.String())
	return handle
}

// Destroy releases the resource behind h. Destroying InvalidHandle or an
// already-destroyed handle is a no-op.
func (b *Backend) Destroy(h glbridge.Handle) {
	if !h.IsValid() || !b.initialized {
		return
	}
	if _, ok := b.targets[h]; ok {
		b.destroyTarget(h)
		return
	}
	if module, ok := b.shaders[h]; ok {
		b.device.DestroyShaderModule(module)
		delete(b.shaders, h)
	}
}

// destroyTarget releases a render target's view and texture.
func (b *Backend) destroyTarget(h glbridge.Handle) {
	rt := b.targets[h]
	if rt == nil {
		return
	}
	if rt.view != nil {
		b.device.DestroyTextureView(rt.view)
	}
	if rt.tex != nil {
		b.device.DestroyTexture(rt.tex)
	}
	delete(b.targets, h)
}

// TargetView returns the render-attachment view behind a render target
// handle, or nil if h does not name a live render target. Draw submission
// layers bind this view; the bridge itself never interprets it.
func (b *Backend) TargetView(h glbridge.Handle) hal.TextureView {
	rt := b.targets[h]
	if rt == nil {
		return nil
	}
	return rt.view
}

// TargetSize returns the pixel dimensions of a live render target.
// ok is false for anything that is not a live render target handle.
func (b *Backend) TargetSize(h glbridge.Handle) (width, height int, ok bool) {
	rt := b.targets[h]
	if rt == nil {
		return 0, 0, false
	}
	return int(rt.width), int(rt.height), true
}

// TargetCount returns the number of live render targets (for testing).
func (b *Backend) TargetCount() int {
	return len(b.targets)
}

// ShaderCount returns the number of live shader modules (for testing).
func (b *Backend) ShaderCount() int {
	return len(b.shaders)
}

// compileToSPIRV compiles WGSL source to SPIR-V uint32 words.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}
