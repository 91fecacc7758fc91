// Package wgpu provides the GPU resource backend using gogpu/wgpu.
//
// Render targets are HAL textures with render-attachment views, and the
// built-in shaders are compiled from WGSL to SPIR-V through gogpu/naga and
// uploaded as HAL shader modules. The gogpu/wgpu Pure Go WebGPU
// implementation supports Vulkan, Metal, and DX12 depending on platform.
//
// # Registration and Selection
//
// The backend registers itself when this package is imported:
//
//	import _ "github.com/gogpu/glbridge/backend/wgpu"
//
// It is preferred over the software backend when a GPU is available; if
// Init fails (no compatible GPU), backend.InitDefault falls back to
// software.
//
// # Device Ownership
//
// The backend creates its own instance/adapter/device by default. Host
// applications that already own a GPU device (e.g., gogpu) can share it
// via SetDeviceProvider with a gpucontext.DeviceProvider that exposes HAL
// types; shared devices are never destroyed on Close.
//
// # Thread Safety
//
// Like the rest of the bridge, a Backend instance belongs to the thread
// that owns the GPU context. The package-level registration is safe; the
// instance methods are not synchronized.
package wgpu
