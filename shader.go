package glbridge

// ShaderKind identifies one of the built-in default shading behaviors.
//
// Unlike legacy resource IDs, the kind space is closed and known at
// compile time, so caches index by kind directly instead of hashing
// externally supplied integers.
type ShaderKind int

const (
	// ShaderColor shades every fragment with a single uniform color.
	ShaderColor ShaderKind = iota

	// ShaderMesh interpolates per-vertex colors across the primitive.
	ShaderMesh

	// ShaderTexture samples a bound 2D texture, mixed with the uniform
	// color by the mix factor.
	ShaderTexture

	// ShaderLighting applies single-light Lambert shading, mixed with
	// the unlit color by the mix factor.
	ShaderLighting

	// NumShaderKinds is the number of built-in kinds. Useful for sizing
	// per-kind tables and for "is everything ready" checks.
	NumShaderKinds int = iota
)

// String returns the shader kind name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderColor:
		return "color"
	case ShaderMesh:
		return "mesh"
	case ShaderTexture:
		return "texture"
	case ShaderLighting:
		return "lighting"
	default:
		return "unknown"
	}
}

// Valid reports whether k names a built-in shader kind.
func (k ShaderKind) Valid() bool {
	return k >= 0 && int(k) < NumShaderKinds
}

// UniformLayout describes the byte layout of a built-in shader's uniform
// block, tagged by the kind it belongs to.
//
// Legacy call sites wrote uniforms through overlapping named byte-offset
// constants whose meaning depended on which default shader was bound (the
// texture-mix and light-mix factors shared one offset). That tagged-union
// layout is made explicit here: query the layout for a kind and use
// MixOffset, whose interpretation follows Kind. Offsets that do not exist
// for a kind are -1.
type UniformLayout struct {
	// Kind tags which shader this layout belongs to.
	Kind ShaderKind

	// MVPOffset is the byte offset of the 4x4 model-view-projection
	// matrix. Present for every kind.
	MVPOffset int

	// ColorOffset is the byte offset of the uniform RGBA color.
	// -1 for ShaderMesh, which takes color from vertex attributes.
	ColorOffset int

	// MixOffset is the byte offset of the mix factor. For ShaderTexture
	// it blends texture sample against uniform color; for ShaderLighting
	// it blends lit against unlit color. -1 for kinds without a mix.
	MixOffset int

	// Size is the total uniform block size in bytes, padded to the
	// 16-byte alignment the backends require.
	Size int
}

// uniform block building blocks, in bytes.
const (
	mat4Size = 64
	vec4Size = 16
)

// LayoutFor returns the uniform layout for kind.
// Unknown kinds return the zero layout with all offsets -1.
func LayoutFor(kind ShaderKind) UniformLayout {
	switch kind {
	case ShaderColor:
		return UniformLayout{
			Kind:        ShaderColor,
			MVPOffset:   0,
			ColorOffset: mat4Size,
			MixOffset:   -1,
			Size:        mat4Size + vec4Size,
		}
	case ShaderMesh:
		return UniformLayout{
			Kind:        ShaderMesh,
			MVPOffset:   0,
			ColorOffset: -1,
			MixOffset:   -1,
			Size:        mat4Size,
		}
	case ShaderTexture, ShaderLighting:
		// Same block shape; the mix slot's meaning follows the kind.
		return UniformLayout{
			Kind:        kind,
			MVPOffset:   0,
			ColorOffset: mat4Size,
			MixOffset:   mat4Size + vec4Size,
			Size:        mat4Size + 2*vec4Size, // mix factor padded to 16
		}
	default:
		return UniformLayout{Kind: kind, MVPOffset: -1, ColorOffset: -1, MixOffset: -1}
	}
}
