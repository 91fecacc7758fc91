package backend

import (
	"errors"

	"github.com/gogpu/glbridge"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendWGPU is the name of the GPU backend (gogpu/wgpu HAL).
	BackendWGPU = "wgpu"
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
)

// GraphicsBackend is the interface for resource backends.
//
// It extends the core glbridge.Backend contract (create render targets and
// built-in shaders, destroy by handle) with a lifecycle: backends must be
// registered via Register() and are selected via Get() or Default(), then
// initialized with Init() before any resource creation.
//
// A backend owns every resource it mints. Creation failures are reported
// as glbridge.InvalidHandle, with detail going to the glbridge logger; the
// bridge core never sees an error value.
type GraphicsBackend interface {
	glbridge.Backend

	// Name returns the backend identifier (e.g., "software", "wgpu").
	Name() string

	// Init initializes the backend.
	// This must be called before any resource creation.
	Init() error

	// Close releases every resource the backend still owns.
	// The backend should not be used after Close is called.
	Close()
}
