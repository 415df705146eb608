package ebitenhost

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/scenecore/ecs"
)

// ModelUniform is the uniform name a sprite uploads its model matrix to.
const ModelUniform = "model"

// Sprite draws an image at its entity's transform.
type Sprite struct {
	ecs.BaseComponent
	surface *Surface
	image   *ebiten.Image
	draws   int
}

func (s *Sprite) Init(surface *Surface, image *ebiten.Image) *Sprite {
	s.surface = surface
	s.image = image
	return s
}

// Render binds the entity's shader, if any, and draws the image transformed
// by the model matrix. Nothing is drawn outside of a frame.
func (s *Sprite) Render() {
	model := s.Entity().GetModelMat()
	if shader := s.Entity().Shader(); shader != nil {
		shader.Use()
		shader.SetMat4(ModelUniform, model)
	}

	if s.surface == nil || s.image == nil {
		return
	}
	screen := s.surface.Screen()
	if screen == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoMFromMat4(model)
	screen.DrawImage(s.image, op)
	s.draws++
}

// Draws returns how many times the sprite reached the screen.
func (s *Sprite) Draws() int {
	return s.draws
}

// GeoMFromMat4 extracts the 2D affine part of m: the x/y rows of the upper
// 2x2 block plus the translation column. Z is discarded.
func GeoMFromMat4(m mgl32.Mat4) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(m.At(0, 0)))
	g.SetElement(0, 1, float64(m.At(0, 1)))
	g.SetElement(0, 2, float64(m.At(0, 3)))
	g.SetElement(1, 0, float64(m.At(1, 0)))
	g.SetElement(1, 1, float64(m.At(1, 1)))
	g.SetElement(1, 2, float64(m.At(1, 3)))
	return g
}
