package glbridge

// Handle identifies a resource owned by a graphics backend.
//
// Handles are opaque: this package never inspects them, it only stores and
// returns them. Valid handles are minted exclusively by backends; the zero
// value is the universal "not present / creation failed" sentinel.
type Handle uint64

// InvalidHandle is the sentinel returned for absent registry entries and
// failed backend creations. Backends never mint it for a live resource.
const InvalidHandle Handle = 0

// IsValid reports whether h refers to a backend resource.
// It returns false exactly for InvalidHandle.
func (h Handle) IsValid() bool {
	return h != InvalidHandle
}
