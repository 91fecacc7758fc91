// Package backend provides pluggable resource backends for glbridge.
//
// A backend implements the glbridge.Backend creation/destruction contract
// plus a Name/Init/Close lifecycle. Backends register themselves via
// init() functions and are selected at runtime.
//
// # Backend Registration
//
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/glbridge/backend"
//
// The GPU backend registers itself when its package is imported:
//
//	import _ "github.com/gogpu/glbridge/backend/wgpu"
//
// # Backend Selection
//
// Use Default() for the best available backend, Get() for a specific one,
// or InitDefault() to select and initialize in one step with fallback:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	session := glbridge.NewSession(b)
//	defer session.Shutdown()
//
// # Available Backends
//
// - "software": CPU pixmap targets, naga-validated shaders (always available)
// - "wgpu": GPU targets and SPIR-V shader modules via gogpu/wgpu
package backend
