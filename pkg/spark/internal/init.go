// Package internal contains the SDL infrastructure of the spark components:
// window and renderer setup, fonts, theming, input translation, touchscreen
// devices and icon rasterisation.
// Types and functions in this package are not part of the public API.
package internal
