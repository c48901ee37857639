package media

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResize_ShrinksLandscape(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1024, 768))

	out := Resize(src, 512)

	assert.Equal(t, 512, out.Bounds().Dx())
	assert.Equal(t, 384, out.Bounds().Dy())
}

func TestResize_ShrinksPortrait(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 600, 1200))

	out := Resize(src, 512)

	assert.Equal(t, 256, out.Bounds().Dx())
	assert.Equal(t, 512, out.Bounds().Dy())
}

func TestResize_SmallImagePassesThrough(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))

	out := Resize(src, 512)

	assert.Same(t, src, out)
	assert.Equal(t, 100, out.Bounds().Dx())
}

func TestUpload_DisabledStore(t *testing.T) {
	store := &AvatarStore{}

	assert.False(t, store.Enabled())
}
