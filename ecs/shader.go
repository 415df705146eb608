package ecs

import "github.com/go-gl/mathgl/mgl32"

// Shader is a render-shading resource owned by whatever manages render
// resources. Entities only hold a reference to it and never create or release
// one; the shader must outlive every entity that references it.
type Shader interface {
	// Use binds the shader program for subsequent draws.
	Use()
	// SetMat4 uploads a 4x4 matrix uniform.
	SetMat4(name string, m mgl32.Mat4)
}
