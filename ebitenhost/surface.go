package ebitenhost

import "github.com/hajimehoshi/ebiten/v2"

// Surface exposes the screen being drawn to render components. It is only
// set for the duration of a Draw call.
type Surface struct {
	screen *ebiten.Image
}

func NewSurface() *Surface {
	return &Surface{}
}

// Screen returns the current frame's target, or nil outside of Draw.
func (s *Surface) Screen() *ebiten.Image {
	return s.screen
}

func (s *Surface) set(screen *ebiten.Image) {
	s.screen = screen
}
