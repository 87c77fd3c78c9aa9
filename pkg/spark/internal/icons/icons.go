// Package icons rasterises the SVG glyphs drawn inside step indicators.
package icons

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed check.svg
var checkSVG []byte

// Check returns the completed-step check mark as a size×size image.
func Check(size int) (*image.RGBA, error) {
	return Rasterize(checkSVG, size, size)
}

// Rasterize renders SVG data scaled to fit a width×height RGBA image.
func Rasterize(data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icons: invalid size %dx%d", width, height)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icons: parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return img, nil
}
