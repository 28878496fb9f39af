package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageDirs are searched in order for relative material image paths.
var ImageDirs = []string{".", "assets"}

// LoadImage loads a material texture from the filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img, ok := images.get(key); ok {
		return img, nil
	}
	img, err := loadImageFromFS(key)
	if err != nil {
		return nil, err
	}
	images.put(key, img)
	return img, nil
}

func loadImageFromFS(path string) (*ebiten.Image, error) {
	tried := []string{path}
	if !filepath.IsAbs(path) {
		for _, dir := range ImageDirs {
			tried = append(tried, filepath.Join(dir, path))
		}
	}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		im, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", p, err)
		}
		return ebiten.NewImageFromImage(im), nil
	}
	return nil, fmt.Errorf("failed to load image %s", path)
}
