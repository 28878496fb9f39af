package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// imageCache holds decoded material textures by the path they were loaded
// from. Several materials may share one texture.
type imageCache struct {
	mu     sync.Mutex
	images map[string]*ebiten.Image
}

var images = &imageCache{images: make(map[string]*ebiten.Image)}

func (c *imageCache) get(key string) (*ebiten.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.images[key]
	return img, ok
}

func (c *imageCache) put(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[key] = img
}

// ForgetImages drops every cached texture so the next material load reads
// them from disk again.
func ForgetImages() {
	images.mu.Lock()
	defer images.mu.Unlock()
	clear(images.images)
}
