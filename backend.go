package glbridge

// Backend is the creation/destruction contract the bridge consumes.
//
// Full graphics backends (see the backend package) implement this as part
// of their surface; the bridge core depends on nothing else. Creation
// reports failure by returning InvalidHandle — backends carry their own
// error reporting (logging, diagnostics), so no error value travels
// through the bridge.
type Backend interface {
	// CreateRenderTarget creates an offscreen render target of the given
	// pixel dimensions. Returns InvalidHandle on failure.
	CreateRenderTarget(width, height int) Handle

	// CreateShader materializes the built-in shader for kind.
	// Returns InvalidHandle on failure or for an unknown kind.
	CreateShader(kind ShaderKind) Handle

	// Destroy releases the resource behind h.
	// Destroying InvalidHandle or an already-destroyed handle is a no-op.
	Destroy(h Handle)
}
