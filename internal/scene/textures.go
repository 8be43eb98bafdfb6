package scene

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// LoadTexture decodes an image file, converts it to RGBA, and uploads
// it to the device under tag. Reloading a tag releases the previous
// texture.
func (s *Scene) LoadTexture(tag, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("scene: open texture %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("scene: decode texture %s: %w", path, err)
	}

	rgba, ok := src.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(src.Bounds())
		draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	}

	h, err := s.dev.UploadTexture(rgba)
	if err != nil {
		return fmt.Errorf("scene: upload texture %s: %w", tag, err)
	}
	if old, exists := s.textures[tag]; exists {
		s.dev.ReleaseTexture(old)
	}
	s.textures[tag] = h
	s.log.Logf("scene: loaded texture %s from %s (%dx%d)", tag,
		path, rgba.Bounds().Dx(), rgba.Bounds().Dy())
	return nil
}

// TextureLoaded reports whether a tag has a texture.
func (s *Scene) TextureLoaded(tag string) bool {
	_, ok := s.textures[tag]
	return ok
}
