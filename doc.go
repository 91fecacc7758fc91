// Package glbridge bridges legacy integer-handle graphics code onto
// modern explicit backends.
//
// # Overview
//
// Applications written against immediate-mode, GL-style APIs identify
// framebuffers, textures, and shaders by small integer IDs. Modern
// backends (wgpu, Vulkan) identify resources by opaque handles issued at
// creation time. glbridge maintains the mapping between the two worlds so
// that legacy call sites run unmodified:
//
//   - Registry maps a legacy integer ID to the backend handle plus the
//     dimensional metadata the legacy API tracked implicitly.
//   - ShaderCache lazily materializes the small closed set of built-in
//     default shaders, one slot per kind, keyed to one backend instance.
//   - Session owns one registry and one cache per backend, with explicit
//     construction and teardown.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glbridge"
//	    "github.com/gogpu/glbridge/backend"
//	)
//
//	b, err := backend.InitDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	session := glbridge.NewSession(b)
//	defer session.Shutdown()
//
//	// Legacy code created framebuffer 7; bridge it.
//	session.CreateFramebuffer(7, 512, 256)
//
//	// Later, "bind framebuffer 7" resolves to the real handle.
//	h := session.Framebuffer(7)
//
//	// Draw calls pick up built-in shaders on demand.
//	shader := session.DefaultShader(glbridge.ShaderTexture)
//	_ = h
//	_ = shader
//
// # Threading
//
// The bridge core (Registry, ShaderCache, Session) is single-threaded by
// contract: it is owned by the thread that owns the backend context, and
// concurrent mutation is out of contract. Only the package logger and the
// backend factory registry are safe for concurrent use.
//
// # Backends
//
// The backend subpackage selects between a wgpu GPU backend and a CPU
// software backend; see github.com/gogpu/glbridge/backend.
package glbridge
