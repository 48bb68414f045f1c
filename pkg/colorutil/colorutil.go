// Package colorutil provides the shared color palette for the sprite grid viewer.
package colorutil

import (
	"image/color"
)

// Common colors used throughout the application.
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Render palette. The checkerboard pair is the usual "transparent PNG"
// light/dark gray; the selection color needs to stand apart from the hover
// color even when both cover the same tile.
var (
	Background    = color.RGBA{R: 34, G: 34, B: 38, A: 255}
	CheckerLight  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	CheckerDark   = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	GridLine      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	HoverFill     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	SelectFill    = color.RGBA{R: 64, G: 156, B: 255, A: 255}
	SelectOutline = color.RGBA{R: 64, G: 156, B: 255, A: 255}
)

// Blend mixes src over dst with the given opacity (0..1), ignoring the
// source alpha channel. The result is fully opaque.
func Blend(dst, src color.RGBA, opacity float64) color.RGBA {
	if opacity <= 0 {
		return dst
	}
	if opacity >= 1 {
		return color.RGBA{R: src.R, G: src.G, B: src.B, A: 255}
	}
	inv := 1 - opacity
	return color.RGBA{
		R: uint8(float64(src.R)*opacity + float64(dst.R)*inv),
		G: uint8(float64(src.G)*opacity + float64(dst.G)*inv),
		B: uint8(float64(src.B)*opacity + float64(dst.B)*inv),
		A: 255,
	}
}
