package ecs

import "github.com/go-gl/mathgl/mgl32"

// Transform is the spatial state of an entity.
type Transform struct {
	Position mgl32.Vec3
	Scale    mgl32.Vec3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{
		Scale: mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.Position = position
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// GetTranslationMat returns the matrix translating by Position.
func (t *Transform) GetTranslationMat() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
}

// GetRotationMat returns the rotation matrix. Rotation is not tracked yet, so
// this is always the identity.
func (t *Transform) GetRotationMat() mgl32.Mat4 {
	return mgl32.Ident4()
}

// GetScaleMat returns the matrix scaling each axis by Scale.
func (t *Transform) GetScaleMat() mgl32.Mat4 {
	return mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
}

// GetModelMat returns Translation * Rotation * Scale: a point is scaled first,
// then rotated, then translated.
func (t *Transform) GetModelMat() mgl32.Mat4 {
	return t.GetTranslationMat().Mul4(t.GetRotationMat()).Mul4(t.GetScaleMat())
}

// Apply transforms a point by the model matrix.
func (t *Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return t.GetModelMat().Mul4x1(p.Vec4(1)).Vec3()
}
