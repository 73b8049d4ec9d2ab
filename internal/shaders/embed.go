// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// Names of the on-disk overrides looked up by shader hot reload.
const (
	SceneVertexFile   = "scene.vert"
	SceneFragmentFile = "scene.frag"
)

// MaxPointLights is the size of the point light uniform arrays.
const MaxPointLights = 4

// SceneVertexShader transforms lit, colored and optionally textured meshes.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies directional, ambient and point lighting.
//
//go:embed scene.frag
var SceneFragmentShader string

// LinesVertexShader is the vertex shader for debug line rendering.
//
//go:embed lines.vert
var LinesVertexShader string

// LinesFragmentShader is the fragment shader for debug line rendering.
//
//go:embed lines.frag
var LinesFragmentShader string
