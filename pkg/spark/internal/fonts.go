package internal

import (
	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes before scaling.
const (
	FontSizeLabel = 22
	FontSizeTitle = 32
	FontSizeSmall = 16
)

// Fonts holds the opened font faces used by the components.
type Fonts struct {
	Label *ttf.Font
	Title *ttf.Font
	Small *ttf.Font
}

var fonts Fonts

func initFonts(path string) error {
	scale := GetScaleFactor()

	var err error
	if fonts.Label, err = ttf.OpenFont(path, int(float32(FontSizeLabel)*scale)); err != nil {
		return err
	}
	if fonts.Title, err = ttf.OpenFont(path, int(float32(FontSizeTitle)*scale)); err != nil {
		return err
	}
	if fonts.Small, err = ttf.OpenFont(path, int(float32(FontSizeSmall)*scale)); err != nil {
		return err
	}
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{fonts.Label, fonts.Title, fonts.Small} {
		if f != nil {
			f.Close()
		}
	}
	fonts = Fonts{}
}

// GetFonts returns the fonts opened by Init.
func GetFonts() Fonts {
	return fonts
}

// GetScaleFactor compares the window height against the 480p baseline the
// default sizes were designed for.
func GetScaleFactor() float32 {
	if window == nil {
		return 1
	}
	_, h := window.Size()
	if h <= 0 {
		return 1
	}
	scale := float32(h) / 480
	if scale < 1 {
		return 1
	}
	return scale
}
