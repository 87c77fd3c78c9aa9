package internal

import (
	"fmt"
	"image"
	"unsafe"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/icons"
)

// TextureCache keeps rendered labels and icons between frames. The least
// recently used texture is destroyed once the cache is full.
type TextureCache struct {
	textures *lru.Cache[string, *sdl.Texture]
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	cache, err := lru.NewWithEvict[string, *sdl.Texture](max(maxSize, 1), func(_ string, texture *sdl.Texture) {
		texture.Destroy()
	})
	if err != nil {
		// Only a non-positive size fails.
		panic(err)
	}
	return &TextureCache{textures: cache}
}

// GetOrCreate returns the cached texture for key, calling create on a miss.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture, ok := c.textures.Get(key); ok {
		return texture, nil
	}

	texture, err := create()
	if err != nil {
		return nil, err
	}
	c.textures.Add(key, texture)
	return texture, nil
}

// Text returns a texture of text rendered with font in color.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, error) {
	key := fmt.Sprintf("text:%p:%02x%02x%02x%02x:%s", font, color.R, color.G, color.B, color.A, text)
	return c.GetOrCreate(key, func() (*sdl.Texture, error) {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return nil, err
		}
		defer surface.Free()
		return renderer.CreateTextureFromSurface(surface)
	})
}

// CheckIcon returns the check mark texture at size pixels.
func (c *TextureCache) CheckIcon(renderer *sdl.Renderer, size int32) (*sdl.Texture, error) {
	return c.GetOrCreate(fmt.Sprintf("icon:check:%d", size), func() (*sdl.Texture, error) {
		img, err := icons.Check(int(size))
		if err != nil {
			return nil, err
		}
		return textureFromRGBA(renderer, img)
	})
}

func textureFromRGBA(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return c.textures.Len()
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	c.textures.Purge()
}
