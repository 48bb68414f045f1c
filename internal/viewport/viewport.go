// Package viewport owns the affine mapping between screen coordinates and
// image coordinates: a uniform scale followed by a translation.
package viewport

import (
	"sprite-grid/pkg/geometry"
)

// Zoom bounds. These are deliberate tunables, not derived values.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// Transform maps image space to screen space: screen = image*Scale + Offset.
// Offsets are unbounded; panning the image fully out of view is allowed.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// New returns an identity transform at 100% zoom.
func New() Transform {
	return Transform{Scale: 1}
}

// ToImage converts a screen point to image coordinates.
func (t Transform) ToImage(screenX, screenY float64) (x, y float64) {
	return (screenX - t.OffsetX) / t.Scale, (screenY - t.OffsetY) / t.Scale
}

// ToScreen converts an image point to screen coordinates.
func (t Transform) ToScreen(imageX, imageY float64) (x, y float64) {
	return imageX*t.Scale + t.OffsetX, imageY*t.Scale + t.OffsetY
}

// Matrix returns the image→screen map as an affine transform.
func (t Transform) Matrix() geometry.AffineTransform {
	return geometry.AffineTransform{A: t.Scale, D: t.Scale, TX: t.OffsetX, TY: t.OffsetY}
}

// ZoomAt multiplies the scale by factor while keeping the image point under
// the given screen position fixed. The scale is clamped first and the offset
// correction uses the ratio actually applied, so the anchor holds exactly
// even when the zoom is pinned at a bound.
func (t *Transform) ZoomAt(screenX, screenY, factor float64) {
	newScale := clampScale(t.Scale * factor)
	ratio := newScale / t.Scale
	t.OffsetX = screenX - (screenX-t.OffsetX)*ratio
	t.OffsetY = screenY - (screenY-t.OffsetY)*ratio
	t.Scale = newScale
}

// ZoomAtCenter zooms anchored at the midpoint of a container. Used by the
// discrete zoom buttons.
func (t *Transform) ZoomAtCenter(containerW, containerH, factor float64) {
	t.ZoomAt(containerW/2, containerH/2, factor)
}

// PanBy translates the view by a screen-space delta.
func (t *Transform) PanBy(dx, dy float64) {
	t.OffsetX += dx
	t.OffsetY += dy
}

// FitTo resets the transform so the image fits inside the container with the
// given margin, centered, never scaling above 100%. This is the canonical
// reset applied on image load and on an explicit reset action.
func (t *Transform) FitTo(containerW, containerH, imageW, imageH, padding float64) {
	if imageW <= 0 || imageH <= 0 {
		t.Scale = 1
		t.OffsetX = 0
		t.OffsetY = 0
		return
	}

	scale := (containerW - padding) / imageW
	if sy := (containerH - padding) / imageH; sy < scale {
		scale = sy
	}
	if scale > 1 {
		scale = 1
	}

	t.Scale = clampScale(scale)
	t.OffsetX = (containerW - imageW*t.Scale) / 2
	t.OffsetY = (containerH - imageH*t.Scale) / 2
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
