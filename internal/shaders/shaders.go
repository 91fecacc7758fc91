// Package shaders holds the WGSL sources for the built-in default
// shaders. Backends translate these through naga (SPIR-V for the wgpu
// backend, validation only for the software backend); the sources
// themselves never leave this module.
package shaders

import "github.com/gogpu/glbridge"

// Source returns the WGSL source for the built-in shader of the given
// kind, or "" for an unknown kind.
func Source(kind glbridge.ShaderKind) string {
	switch kind {
	case glbridge.ShaderColor:
		return colorWGSL
	case glbridge.ShaderMesh:
		return meshWGSL
	case glbridge.ShaderTexture:
		return textureWGSL
	case glbridge.ShaderLighting:
		return lightingWGSL
	default:
		return ""
	}
}

// colorWGSL shades every fragment with the uniform color.
const colorWGSL = `
struct Uniforms {
    mvp: mat4x4<f32>,
    color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return u.mvp * vec4<f32>(position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u.color;
}
`

// meshWGSL interpolates per-vertex colors; no uniform color slot.
const meshWGSL = `
struct Uniforms {
    mvp: mat4x4<f32>,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) color: vec4<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = u.mvp * vec4<f32>(position, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

// textureWGSL samples a bound 2D texture, mixed against the uniform color
// by mix_factor (0 = uniform color, 1 = pure texel).
const textureWGSL = `
struct Uniforms {
    mvp: mat4x4<f32>,
    color: vec4<f32>,
    mix_factor: f32,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;
@group(0) @binding(1) var tex: texture_2d<f32>;
@group(0) @binding(2) var samp: sampler;

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = u.mvp * vec4<f32>(position, 1.0);
    out.uv = uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let texel = textureSample(tex, samp, in.uv);
    return mix(u.color, texel, u.mix_factor);
}
`

// lightingWGSL applies single-light Lambert shading, mixed against the
// unlit color by mix_factor. The light direction is fixed; legacy code
// never exposed it.
const lightingWGSL = `
struct Uniforms {
    mvp: mat4x4<f32>,
    color: vec4<f32>,
    mix_factor: f32,
}

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) normal: vec3<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) normal: vec3<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = u.mvp * vec4<f32>(position, 1.0);
    out.normal = normal;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let light_dir = normalize(vec3<f32>(0.3, 0.7, 0.6));
    let lambert = max(dot(normalize(in.normal), light_dir), 0.0);
    let lit = vec4<f32>(u.color.rgb * lambert, u.color.a);
    return mix(u.color, lit, u.mix_factor);
}
`
