package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Material is a shared surface description. Materials live in a material
// library; entities only hold references to them.
type Material struct {
	Name  string
	Color color.RGBA
	// Image is sampled across the primitive's bounding box and tinted by
	// Color. Nil means a flat fill.
	Image *ebiten.Image
}

// MaterialRef points an entity at a library material.
type MaterialRef struct {
	Material *Material
}

var MaterialComponent = NewComponent[MaterialRef]()
